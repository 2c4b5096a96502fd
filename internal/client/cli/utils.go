package cli

import (
	"fmt"
	"io"
)

// banner prints a store's error message, if any, and reports whether one was
// printed. Handlers call it after every store operation so failures surface
// inline instead of vanishing into the log.
func banner(w io.Writer, msg string) bool {
	if msg == "" {
		return false
	}
	fmt.Fprintf(w, "Error: %s\n", msg)
	return true
}

// truncate shortens s for table cells.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

// onOff renders a boolean for table cells.
func onOff(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}
