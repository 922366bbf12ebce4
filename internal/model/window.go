package model

// Window is a snapshot of one top-level window of the target process.
type Window struct {
	Index    int    `yaml:"index"              json:"index"`
	Title    string `yaml:"title"              json:"title"`
	Selected bool   `yaml:"selected,omitempty" json:"selected,omitempty"`
	Rule     string `yaml:"rule,omitempty"     json:"rule,omitempty"`
}
