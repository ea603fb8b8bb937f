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
	Put(ctx context.Context, args []string)
	View(ctx context.Context)
	Get(ctx context.Context, args []string)
	NewUser(ctx context.Context, args []string)
	Login(ctx context.Context, args []string)
	Logout(ctx context.Context)
	Share(ctx context.Context, args []string)
}

// runREPL starts a simple read–eval–print loop for the filebox CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a' with the remaining tokens as
// arguments. Unknown commands are reported back to the user. The loop exits
// on scanner EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current user (from statusFn) and accepts commands:
//
//   - help                         — show available commands
//   - newuser <user> <pass> <confirm> — create an account
//   - login <user> [pass]          — authenticate; password prompted when omitted
//   - put <filename>               — upload a local file
//   - view                         — list visible files
//   - get <filename> [username]    — download a file
//   - share <filename> <dest-user> — grant another user read access
//   - logout                       — forget the current user
//   - exit | quit                  — leave the program
//
// Command handlers print their own OK/FAILED outcome; the loop itself only
// routes input. This keeps the REPL resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fb> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: put <filename>, view, get <filename> [username], share <filename> <dest-user>, logout, exit")
			} else {
				printlnFn("Available commands: newuser <user> <pass> <confirm>, login <user> [pass], exit")
			}

		case "newuser":
			a.NewUser(ctx, args)

		case "login":
			a.Login(ctx, args)

		case "put":
			a.Put(ctx, args)

		case "v", "view":
			a.View(ctx)

		case "get":
			a.Get(ctx, args)

		case "share":
			a.Share(ctx, args)

		case "logout":
			a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
