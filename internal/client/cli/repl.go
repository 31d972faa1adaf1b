package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	CheckIn(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, search string) error
	Week(ctx context.Context) error
	Export(ctx context.Context, dir string) error
	Clear(ctx context.Context) error
	Quote(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, quote, help, exit"
	helpLoggedIn  = "Available commands: checkin, edit <id>, delete <id>, list [search], week, export [dir], clear, quote, whoami, logout, help, exit"
)

// runREPL starts a simple read–eval–print loop for the MoodKeeper CLI.
//
// It reads a line from in, parses the first token as the command and
// dispatches to methods on a. The rest of the line is the argument. The
// loop exits on EOF, when ctx is done, or when the user types "exit" or
// "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - register       create an account
//	  - login          authenticate
//	  - quote          show the quote of the day
//	  - help           show available commands
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - checkin        record today's check-in
//	  - edit <id>      change an entry
//	  - delete <id>    remove an entry
//	  - list [search]  list entries, optionally filtered
//	  - week           last seven days with averages
//	  - export [dir]   write all data to a JSON file
//	  - clear          remove all entries
//	  - quote, whoami, logout, help, exit | quit
//
// Handlers report recoverable problems to the user themselves. An error
// they return is fatal and ends the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader, out io.Writer) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprintf(out, "%s> ", statusFn())

		line, err := readLine(in)
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}

		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)
		if cmd == "" {
			continue
		}

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(out, "Bye!")
			return nil
		}

		if err := dispatch(ctx, a, cmd, arg, out); err != nil {
			return err
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd, arg string, out io.Writer) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			fmt.Fprintln(out, helpLoggedIn)
		} else {
			fmt.Fprintln(out, helpLoggedOut)
		}
		return nil
	case "quote":
		return a.Quote(ctx)
	}

	if !a.isLoggedIn() {
		switch cmd {
		case "register":
			return a.Register(ctx)
		case "login":
			return a.Login(ctx)
		case "checkin", "edit", "delete", "list", "l", "week", "export", "clear", "whoami", "logout":
			fmt.Fprintln(out, "Please log in first.")
		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
		return nil
	}

	switch cmd {
	case "register", "login":
		fmt.Fprintln(out, "Already logged in. Use 'logout' first.")
	case "checkin":
		return a.CheckIn(ctx)
	case "edit":
		if arg == "" {
			fmt.Fprintln(out, "Usage: edit <id>")
			return nil
		}
		return a.Edit(ctx, arg)
	case "delete":
		if arg == "" {
			fmt.Fprintln(out, "Usage: delete <id>")
			return nil
		}
		return a.Delete(ctx, arg)
	case "l", "list":
		return a.List(ctx, arg)
	case "week":
		return a.Week(ctx)
	case "export":
		return a.Export(ctx, arg)
	case "clear":
		return a.Clear(ctx)
	case "whoami":
		return a.WhoAmI(ctx)
	case "logout":
		return a.Logout(ctx)
	default:
		fmt.Fprintln(out, "Unknown command:", cmd)
	}
	return nil
}
