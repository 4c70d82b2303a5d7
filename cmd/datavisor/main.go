// Command datavisor classifies pasted text in a terminal: it detects JSON,
// HTML, Markdown and escaped strings and prints them the way the web viewer
// shows them.
package main

import (
	"os"

	"github.com/atotto/clipboard"
)

func main() {
	a := &app{
		readClipboard:  clipboard.ReadAll,
		writeClipboard: clipboard.WriteAll,
	}
	if err := newRootCmd(a).Execute(); err != nil {
		colorRed.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
