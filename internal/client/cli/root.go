package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if admin := a.session.Admin(); admin != nil {
		return fmt.Sprintf("(%s) ", admin.Username)
	}
	return ""
}

// Root prints the banner and hands control to the REPL.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "AI Directory admin console (type 'help' for commands)")
	if a.isLoggedIn() {
		if admin := a.session.Admin(); admin != nil {
			fmt.Fprintf(a.out, "Resumed session for %s\n", admin.Username)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
