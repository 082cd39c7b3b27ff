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
	Lookup(ctx context.Context, subject string) error
	Current(ctx context.Context) error
	ShowHistory(ctx context.Context) error
	ToggleDeleteMode(ctx context.Context) error
	Select(ctx context.Context, arg string) error
	DeleteSelected(ctx context.Context) error
	Account(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the IP Navigator CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - lookup <ip>    — geolocate an IP and record it in history
//	  - current        — geolocate this machine
//	  - history        — list past lookups
//	  - delmode        — toggle history delete mode
//	  - select <n>     — in delete mode, toggle entry n; otherwise re-run it
//	  - delete         — delete the selected history entries
//	  - account        — show the signed-in user
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Commands other than help, login and exit require a session; outside one the
// REPL asks the user to log in instead of dispatching. Any errors returned by
// command handlers are ignored here; handlers report their own errors. This
// keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ipnav> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: lookup <ip>, current, history, delmode, select <n>, delete, account, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}
			continue

		case "login":
			_ = a.Login(ctx)
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			printlnFn("Please log in first.")
			continue
		}

		switch cmd {
		case "lookup":
			if len(parts) < 2 {
				printlnFn("Usage: lookup <ip>")
				continue
			}
			_ = a.Lookup(ctx, parts[1])

		case "current":
			_ = a.Current(ctx)

		case "h", "history":
			_ = a.ShowHistory(ctx)

		case "delmode":
			_ = a.ToggleDeleteMode(ctx)

		case "select":
			if len(parts) < 2 {
				printlnFn("Usage: select <n>")
				continue
			}
			_ = a.Select(ctx, parts[1])

		case "delete":
			_ = a.DeleteSelected(ctx)

		case "account":
			_ = a.Account(ctx)

		case "logout":
			_ = a.Logout(ctx)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
