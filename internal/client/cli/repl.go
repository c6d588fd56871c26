package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Home(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Password(ctx context.Context) error
	JBI(ctx context.Context, query string) error
	Orders(ctx context.Context) error
	Forum(ctx context.Context, query string) error
	Topic(ctx context.Context, topic string) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the StuDeaf CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The rest of the line is passed to commands
// that take an argument. The loop exits on EOF, when ctx ends, or when the
// user types "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help                : show available commands
//	  - register            : create an account (resumes a saved draft)
//	  - login               : authenticate
//	  - exit | quit         : leave the program
//
//	Logged in:
//	  - home                : greeting and points
//	  - profile             : show the profile
//	  - edit                : edit the profile
//	  - password            : change the password
//	  - jbi [query]         : list interpreters, optionally filtered
//	  - orders              : list my interpreter bookings
//	  - forum [query]       : list forum summaries, optionally filtered
//	  - topic [name]        : filter the forum by topic, empty for all
//	  - logout              : log out
//	  - exit | quit         : leave the program
//
// Errors returned by command handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("studeaf %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)
		if cmd == "" {
			continue
		}

		if requiresLogin(cmd) && !a.isLoggedIn(ctx) {
			printlnFn("Please login first")
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: home, profile, edit, password, jbi [query], orders, forum [query], topic [name], logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "home":
			cmdErr = a.Home(ctx)

		case "profile":
			cmdErr = a.Profile(ctx)

		case "edit":
			cmdErr = a.EditProfile(ctx)

		case "password":
			cmdErr = a.Password(ctx)

		case "jbi":
			cmdErr = a.JBI(ctx, arg)

		case "orders":
			cmdErr = a.Orders(ctx)

		case "forum":
			cmdErr = a.Forum(ctx, arg)

		case "topic":
			cmdErr = a.Topic(ctx, arg)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(styleError.Render("Error: " + cmdErr.Error()))
		}
		if err != nil {
			return
		}
	}
}

func requiresLogin(cmd string) bool {
	switch cmd {
	case "home", "profile", "edit", "password", "jbi", "orders", "forum", "topic", "logout":
		return true
	}
	return false
}
