package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

func PrintTitle(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

func Separator() {
	pterm.Println()
	pterm.Println(pterm.Gray("----------------------------------------"))
}
