package main

import (
	"os"

	"github.com/Dicklesworthstone/responsive_viewer/cmd/rv/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
