package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/dpetrovs/filebox/internal/filex"
)

// ok and failed print the outcome of a command. A failure with no reason
// prints a bare FAILED, which is also what every transport or decoding error
// collapses to.
func (a *App) ok() {
	printlnFn("OK")
}

func (a *App) failed(reason string) {
	if reason == "" {
		printlnFn("FAILED")
		return
	}
	printlnFn("FAILED, " + reason)
}

// Put uploads the local file named by args[0] under the current user.
func (a *App) Put(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		a.failed("not logged in")
		return
	}
	if len(args) != 1 {
		a.failed("usage: put <filename>")
		return
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		a.failed("cannot read " + args[0])
		return
	}

	res, err := a.api.Put(ctx, filepath.Base(args[0]), a.session.Username, content)
	if err != nil {
		a.failed("")
		return
	}
	if !res.Success {
		a.failed(res.Message)
		return
	}
	a.ok()
}

// View prints the current user's listing: owned files first, then files
// shared with them.
func (a *App) View(ctx context.Context) {
	if !a.isLoggedIn() {
		a.failed("not logged in")
		return
	}

	res, err := a.api.View(ctx, a.session.Username)
	if err != nil {
		a.failed("")
		return
	}
	if !res.Success {
		a.failed(res.Message)
		return
	}

	if res.Message != "" {
		printlnFn(res.Message)
	}
	a.ok()
}

// Get downloads args[0] and writes it into the configured download directory.
// An optional second argument requests the file on behalf of another user.
func (a *App) Get(ctx context.Context, args []string) {
	if len(args) != 1 && len(args) != 2 {
		a.failed("usage: get <filename> [username]")
		return
	}

	user := a.session.Username
	if len(args) == 2 {
		user = args[1]
	}
	if user == "" {
		a.failed("not logged in")
		return
	}

	res, err := a.api.Get(ctx, args[0], user)
	if err != nil {
		a.failed("")
		return
	}
	if !res.Success {
		a.failed(res.Message)
		return
	}

	dir, err := filex.EnsureSubDir(a.config.DownloadDir)
	if err != nil {
		a.failed("")
		return
	}
	if err := os.WriteFile(filepath.Join(dir, args[0]), res.Content, 0o600); err != nil {
		a.failed("cannot write " + args[0])
		return
	}
	a.ok()
}

// NewUser creates an account. The confirmation password is checked locally;
// no request is sent when it does not match.
func (a *App) NewUser(ctx context.Context, args []string) {
	if len(args) != 3 {
		a.failed("usage: newuser <user> <pass> <confirm>")
		return
	}
	if args[1] != args[2] {
		a.failed("passwords do not match")
		return
	}

	res, err := a.api.NewUser(ctx, args[0], args[1])
	if err != nil {
		a.failed("")
		return
	}
	if !res.Success {
		a.failed(res.Message)
		return
	}
	a.ok()
}

// Login authenticates args[0] and remembers the username in the session.
// When the password argument is omitted it is prompted for without echo.
func (a *App) Login(ctx context.Context, args []string) {
	if len(args) != 1 && len(args) != 2 {
		a.failed("usage: login <user> [pass]")
		return
	}

	password := ""
	if len(args) == 2 {
		password = args[1]
	} else {
		pw, err := GetPassword(os.Stdout)
		if err != nil {
			a.failed("")
			return
		}
		password = string(pw)
	}

	res, err := a.api.Login(ctx, args[0], password)
	if err != nil {
		a.failed("")
		return
	}
	if !res.Success {
		a.failed(res.Message)
		return
	}

	a.session.Username = args[0]
	a.ok()
}

// Logout clears the session.
func (a *App) Logout(ctx context.Context) {
	a.session.Username = ""
	a.ok()
}

// Share grants args[1] read access to the current user's file args[0].
func (a *App) Share(ctx context.Context, args []string) {
	if !a.isLoggedIn() {
		a.failed("not logged in")
		return
	}
	if len(args) != 2 {
		a.failed("usage: share <filename> <dest-user>")
		return
	}

	res, err := a.api.Share(ctx, a.session.Username, args[1], args[0])
	if err != nil {
		a.failed("")
		return
	}
	if !res.Success {
		a.failed(res.Message)
		return
	}
	a.ok()
}
