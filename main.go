package main

import (
	"github.com/mj1618/autosave-cli/cmd"
	_ "github.com/mj1618/autosave-cli/internal/platform/darwin"
)

func main() {
	cmd.Execute()
}
