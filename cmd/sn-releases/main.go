package main

import "github.com/netrelease/sn-releases/internal/ui"

func main() {
	// Must run before the first lipgloss render.
	ui.InitTerminal()

	Execute()
}
