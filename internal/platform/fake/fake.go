// Package fake provides an in-memory accessibility tree and process table
// implementing the platform interfaces, for tests.
package fake

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mj1618/autosave-cli/internal/model"
	"github.com/mj1618/autosave-cli/internal/platform"
)

// Node is one element of a fake accessibility tree.
type Node struct {
	Title       string
	Description string
	Help        string
	Role        string
	Kids        []*Node

	// FailAttrs makes queries for these attributes fail.
	FailAttrs map[model.Attr]bool
	// ChildrenErr is returned by Children when set.
	ChildrenErr error
	// PressErr is returned by Press when set.
	PressErr error
	// Delay is slept before answering each attribute query.
	Delay time.Duration

	mu      sync.Mutex
	presses int
}

// Window returns a window node with the given title.
func Window(title string, kids ...*Node) *Node {
	return &Node{Title: title, Role: "AXWindow", Kids: kids}
}

// Group returns an anonymous group node.
func Group(kids ...*Node) *Node {
	return &Node{Role: "AXGroup", Kids: kids}
}

// Button returns a button node with the given title.
func Button(title string) *Node {
	return &Node{Title: title, Role: model.ButtonRole}
}

// Text returns a static text node with the given title.
func Text(title string) *Node {
	return &Node{Title: title, Role: "AXStaticText"}
}

// Attribute implements platform.Element.
func (n *Node) Attribute(name model.Attr) model.AttrResult {
	if n.Delay > 0 {
		time.Sleep(n.Delay)
	}
	if n.FailAttrs[name] {
		return model.Failed(errors.New("fake: attribute query failed"))
	}
	var v string
	switch name {
	case model.AttrTitle:
		v = n.Title
	case model.AttrDescription:
		v = n.Description
	case model.AttrHelp:
		v = n.Help
	case model.AttrRole:
		v = n.Role
	}
	if v == "" {
		return model.Absent()
	}
	return model.Present(v)
}

// Children implements platform.Element.
func (n *Node) Children() ([]platform.Element, error) {
	if n.ChildrenErr != nil {
		return nil, n.ChildrenErr
	}
	out := make([]platform.Element, len(n.Kids))
	for i, k := range n.Kids {
		out[i] = k
	}
	return out, nil
}

// Press implements platform.Element.
func (n *Node) Press() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.PressErr != nil {
		return n.PressErr
	}
	n.presses++
	return nil
}

// Presses returns how many times Press succeeded on this node.
func (n *Node) Presses() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.presses
}

// App is a running application in the fake desktop.
type App struct {
	Name    string
	PID     int
	Windows []*Node
}

// Desktop is a fake process table plus accessibility layer.
type Desktop struct {
	mu sync.Mutex

	Apps []*App

	// EmptyWindowCalls makes the first N Windows calls report no windows.
	EmptyWindowCalls int
	// WindowsErr is returned by Windows when set.
	WindowsErr error
	// ActivateErr is returned by Activate when set.
	ActivateErr error

	locateCalls  int
	windowCalls  int
	activations  []int
	locatedNames [][]string
}

// AddApp registers a running application and returns it.
func (d *Desktop) AddApp(name string, pid int, windows ...*Node) *App {
	d.mu.Lock()
	defer d.mu.Unlock()
	app := &App{Name: name, PID: pid, Windows: windows}
	d.Apps = append(d.Apps, app)
	return app
}

// Provider wraps the desktop as a platform.Provider.
func (d *Desktop) Provider() *platform.Provider {
	return &platform.Provider{
		Processes:     d,
		Accessibility: d,
		Activator:     d,
	}
}

// Locate implements platform.ProcessLocator with exact name matching.
func (d *Desktop) Locate(_ context.Context, candidates []string) (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.locateCalls++
	d.locatedNames = append(d.locatedNames, append([]string(nil), candidates...))
	for _, name := range candidates {
		for _, app := range d.Apps {
			if app.Name == name {
				return app.PID, true
			}
		}
	}
	return 0, false
}

// Windows implements platform.Accessibility.
func (d *Desktop) Windows(pid int) ([]platform.Element, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.windowCalls++
	if d.WindowsErr != nil {
		return nil, d.WindowsErr
	}
	if d.windowCalls <= d.EmptyWindowCalls {
		return nil, nil
	}
	for _, app := range d.Apps {
		if app.PID != pid {
			continue
		}
		out := make([]platform.Element, len(app.Windows))
		for i, w := range app.Windows {
			out[i] = w
		}
		return out, nil
	}
	return nil, platform.ErrStaleProcess
}

// Activate implements platform.Activator.
func (d *Desktop) Activate(pid int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ActivateErr != nil {
		return d.ActivateErr
	}
	d.activations = append(d.activations, pid)
	return nil
}

// LocateCalls returns how many times Locate ran.
func (d *Desktop) LocateCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.locateCalls
}

// WindowCalls returns how many times Windows ran.
func (d *Desktop) WindowCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.windowCalls
}

// Activations returns the PIDs passed to successful Activate calls.
func (d *Desktop) Activations() []int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]int(nil), d.activations...)
}

// LocatedNames returns the candidate lists passed to each Locate call.
func (d *Desktop) LocatedNames() [][]string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([][]string(nil), d.locatedNames...)
}
