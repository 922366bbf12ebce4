package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/mj1618/autosave-cli/internal/platform/fake"
)

// chain builds a single-branch tree depth levels deep below the root.
func chain(depth int) *fake.Node {
	root := fake.Window("root")
	cur := root
	for i := 0; i < depth; i++ {
		next := fake.Group()
		cur.Kids = []*fake.Node{next}
		cur = next
	}
	return root
}

func TestWalk_RespectsMaxDepth(t *testing.T) {
	for _, maxDepth := range []int{0, 1, 3, 5} {
		nodes := Walk(context.Background(), chain(8), maxDepth, nil)
		if len(nodes) != maxDepth+1 {
			t.Errorf("maxDepth %d: got %d nodes, want %d", maxDepth, len(nodes), maxDepth+1)
		}
		for _, n := range nodes {
			if n.Depth > maxDepth {
				t.Errorf("maxDepth %d: node at depth %d", maxDepth, n.Depth)
			}
		}
	}
}

func TestWalk_PreOrderRootFirst(t *testing.T) {
	a1, a2 := fake.Text("a1"), fake.Text("a2")
	a := fake.Group(a1, a2)
	a.Title = "a"
	b := fake.Button("b")
	root := fake.Window("root", a, b)

	nodes := Walk(context.Background(), root, 3, nil)

	want := []*fake.Node{root, a, a1, a2, b}
	if len(nodes) != len(want) {
		t.Fatalf("got %d nodes, want %d", len(nodes), len(want))
	}
	for i, n := range nodes {
		if n.Element != want[i] {
			t.Errorf("nodes[%d] = %v, want %q", i, n.Element.(*fake.Node).Title, want[i].Title)
		}
	}
	if nodes[0].Parent != -1 || nodes[2].Parent != 1 || nodes[4].Parent != 0 {
		t.Errorf("unexpected parents: %+v", nodes)
	}
}

func TestWalk_ChildrenFailureSkipsBranchOnly(t *testing.T) {
	broken := fake.Group(fake.Button("hidden"))
	broken.ChildrenErr = errors.New("cannot complete")
	sibling := fake.Button("visible")
	root := fake.Window("root", broken, sibling)

	var errs int
	nodes := Walk(context.Background(), root, 3, func(depth int, err error) {
		errs++
		if depth != 1 {
			t.Errorf("error reported at depth %d, want 1", depth)
		}
	})

	if errs != 1 {
		t.Errorf("onErr called %d times, want 1", errs)
	}
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes, want root, broken group and sibling", len(nodes))
	}
	if nodes[2].Element != sibling {
		t.Error("sibling of a failed branch should still be walked")
	}
}

func TestWalk_CycleTerminates(t *testing.T) {
	root := fake.Window("root")
	loop := fake.Group()
	loop.Kids = []*fake.Node{loop}
	root.Kids = []*fake.Node{loop}

	nodes := Walk(context.Background(), root, 3, nil)
	if len(nodes) != 4 {
		t.Errorf("got %d nodes, want 4 (depth bound stops the cycle)", len(nodes))
	}
}

func TestWalk_StopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	nodes := Walk(ctx, chain(5), 5, nil)
	if len(nodes) != 1 {
		t.Errorf("got %d nodes, want only the root", len(nodes))
	}
}
