package main

import (
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/pixsvg/pixsvg/utils"
)

// colorsEnabled gates all ANSI decoration. It is set once per invocation
// from the configured color mode.
var colorsEnabled bool

// setupColors resolves the configured color mode. Auto mode enables colors
// only when stdout is a terminal, NO_COLOR is unset and TERM is not dumb.
func setupColors(mode string) {
	switch mode {
	case colorAlways:
		colorsEnabled = true
	case colorNever:
		colorsEnabled = false
	default:
		colorsEnabled = term.IsTerminal(int(os.Stdout.Fd())) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// decorate colors the message according to its type when colors are enabled.
func decorate(s string, msgType utils.MessageType) string {
	if !colorsEnabled {
		return s
	}
	return utils.DecorateText(s, msgType)
}
