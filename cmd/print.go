package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal using the snapshot's theme.
// A rendering failure is never fatal: the raw markdown is printed instead.
func printMarkdown(markdown, theme string) {
	out, err := glamour.Render(markdown, theme)
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
