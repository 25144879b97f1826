package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Mood(ctx context.Context, args []string) error
	Moods(ctx context.Context) error
	Habit(ctx context.Context, args []string) error
	Habits(ctx context.Context) error
	Suggest(ctx context.Context) error
	Toggle(ctx context.Context, args []string) error
	Chat(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
	Crisis(ctx context.Context) error
	Rooms(ctx context.Context, args []string) error
}

const trackingHelp = "mood <name> <1-10> [notes], moods, habit <category> <name>, habits, suggest, toggle <id>, chat <text>, stats, crisis, rooms [category] [query], exit"

// runREPL reads commands line by line from reader and dispatches them to a.
// The prompt shows statusFn(). The loop exits on EOF or on "exit"/"quit".
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("mindmate (%s)> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: logout, " + trackingHelp)
			} else {
				printlnFn("Available commands: register, login, " + trackingHelp)
				printlnFn("Log in to keep your data between sessions.")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "mood":
			_ = a.Mood(ctx, args)

		case "moods":
			_ = a.Moods(ctx)

		case "habit":
			_ = a.Habit(ctx, args)

		case "habits":
			_ = a.Habits(ctx)

		case "suggest":
			_ = a.Suggest(ctx)

		case "toggle":
			_ = a.Toggle(ctx, args)

		case "chat":
			_ = a.Chat(ctx, args)

		case "stats":
			_ = a.Stats(ctx)

		case "crisis":
			_ = a.Crisis(ctx)

		case "rooms":
			_ = a.Rooms(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
