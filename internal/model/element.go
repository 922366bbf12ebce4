package model

// Element is a snapshot of one accessibility node taken during a walk.
// It is what gets reported; the live handle never leaves the attempt.
type Element struct {
	Depth       int    `yaml:"depth"          json:"depth"`           // Distance from the scope window
	Role        string `yaml:"r"              json:"r"`               // Abbreviated role code
	Title       string `yaml:"t,omitempty"    json:"t,omitempty"`     // Visible label / title
	Description string `yaml:"d,omitempty"    json:"d,omitempty"`     // Accessibility description
	Help        string `yaml:"h,omitempty"    json:"h,omitempty"`     // Help text / tooltip
	Path        string `yaml:"p,omitempty"    json:"p,omitempty"`     // Role breadcrumb from the scope window
	Match       string `yaml:"match,omitempty" json:"match,omitempty"` // Match decision, set by probe
}

// JoinPath extends a role breadcrumb with one more level.
func JoinPath(parent, role string) string {
	if parent == "" {
		return role
	}
	return parent + " > " + role
}
