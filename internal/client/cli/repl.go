package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error

	ListItems(ctx context.Context, args []string) error
	AddItem(ctx context.Context) error
	EditItem(ctx context.Context) error
	DeleteItem(ctx context.Context) error

	ListCategories(ctx context.Context) error
	AddCategory(ctx context.Context) error
	EditCategory(ctx context.Context) error
	DeleteCategory(ctx context.Context) error

	ListTags(ctx context.Context) error
	AddTag(ctx context.Context) error
	EditTag(ctx context.Context) error
	DeleteTag(ctx context.Context) error

	ListCustomers(ctx context.Context) error
	BlockCustomer(ctx context.Context) error
	UnblockCustomer(ctx context.Context) error
	EditCustomer(ctx context.Context) error
	DeleteCustomer(ctx context.Context) error

	ListFavorites(ctx context.Context) error
	ShowStats(ctx context.Context) error
}

const helpLoggedIn = `Available commands:
  items [page]   list website listings (optionally jump to a page)
  additem | edititem | delitem
  categories | addcat | editcat | delcat
  tags | addtag | edittag | deltag
  customers | block | unblock | editcustomer | delcustomer
  favorites      list customer favorites
  stats          dashboard snapshot
  logout | exit`

const helpAnonymous = `Available commands: login, register, exit`

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print their
// own error banners. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("adminctl %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "i", "items":
			_ = a.ListItems(ctx, args)
		case "additem":
			_ = a.AddItem(ctx)
		case "edititem":
			_ = a.EditItem(ctx)
		case "delitem":
			_ = a.DeleteItem(ctx)

		case "categories":
			_ = a.ListCategories(ctx)
		case "addcat":
			_ = a.AddCategory(ctx)
		case "editcat":
			_ = a.EditCategory(ctx)
		case "delcat":
			_ = a.DeleteCategory(ctx)

		case "tags":
			_ = a.ListTags(ctx)
		case "addtag":
			_ = a.AddTag(ctx)
		case "edittag":
			_ = a.EditTag(ctx)
		case "deltag":
			_ = a.DeleteTag(ctx)

		case "customers":
			_ = a.ListCustomers(ctx)
		case "block":
			_ = a.BlockCustomer(ctx)
		case "unblock":
			_ = a.UnblockCustomer(ctx)
		case "editcustomer":
			_ = a.EditCustomer(ctx)
		case "delcustomer":
			_ = a.DeleteCustomer(ctx)

		case "favorites":
			_ = a.ListFavorites(ctx)
		case "stats":
			_ = a.ShowStats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
