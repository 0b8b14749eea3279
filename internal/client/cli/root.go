package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const helpText = `Commands:
  register            create an account and log in
  login               log in with email and password
  me                  show your own profile
  users               list all users
  user <username>     show a user's profile
  thoughts [username] list thoughts, newest first
  thought <id>        show one thought with reactions
  post                post a new thought
  react <thought-id>  react to a thought
  friend <user-id>    add a user to your friend list
  help                show this help
  exit                quit`

// Root runs the REPL until "exit" or EOF.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Deep Thoughts client. Type 'help' for commands.")

	for {
		fmt.Fprint(a.out, "\n")
		line, err := GetSimpleText(a.reader, "Enter command", a.out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			fmt.Fprintf(a.out, "error: %v\n", err)
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "exit", "quit":
			return
		case "help":
			fmt.Fprintln(a.out, helpText)
		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "me":
			a.Me(ctx)
		case "users":
			a.Users(ctx)
		case "user":
			if len(args) != 1 {
				fmt.Fprintln(a.out, "usage: user <username>")
				continue
			}
			a.User(ctx, args[0])
		case "thoughts":
			username := ""
			if len(args) > 0 {
				username = args[0]
			}
			a.Thoughts(ctx, username)
		case "thought":
			if len(args) != 1 {
				fmt.Fprintln(a.out, "usage: thought <id>")
				continue
			}
			a.Thought(ctx, args[0])
		case "post":
			a.Post(ctx)
		case "react":
			if len(args) != 1 {
				fmt.Fprintln(a.out, "usage: react <thought-id>")
				continue
			}
			a.React(ctx, args[0])
		case "friend":
			if len(args) != 1 {
				fmt.Fprintln(a.out, "usage: friend <user-id>")
				continue
			}
			a.Friend(ctx, args[0])
		default:
			fmt.Fprintf(a.out, "unknown command %q, type 'help'\n", cmd)
		}
	}
}

// prompt is a shorthand for a one-line prompt on the app's reader/writer.
func (a *App) prompt(text string) (string, error) {
	return GetSimpleText(a.reader, text, a.out)
}
