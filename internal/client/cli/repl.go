package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/vending/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	role() models.Role
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context) error
	AddProduct(ctx context.Context) error
	UpdateProduct(ctx context.Context) error
	DeleteProduct(ctx context.Context) error
	Buy(ctx context.Context) error
	Deposit(ctx context.Context) error
	Reset(ctx context.Context) error
	Refresh(ctx context.Context) error
}

func helpText(role models.Role) string {
	switch role {
	case models.RoleSeller:
		return "Available commands: (l)ist, show, add, update, delete, whoami, refresh, logout, exit"
	case models.RoleBuyer:
		return "Available commands: (l)ist, show, buy, deposit, reset, whoami, refresh, logout, exit"
	default:
		return "Available commands: signup, login, exit"
	}
}

// runREPL reads commands line by line from reader and dispatches them to a.
//
// The prompt shows the status returned by statusFn. Errors returned by
// command handlers are printed once and the loop continues; whether a
// command is allowed for the current role is decided by the handler.
// The loop exits on EOF, on "exit" or "quit", or when ctx is done.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("vending%s> ", prefixSpace(statusFn())))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText(a.role()))

		case "signup", "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami", "status":
			cmdErr = a.Status(ctx)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "show":
			cmdErr = a.Show(ctx)

		case "add":
			cmdErr = a.AddProduct(ctx)

		case "update":
			cmdErr = a.UpdateProduct(ctx)

		case "delete":
			cmdErr = a.DeleteProduct(ctx)

		case "buy":
			cmdErr = a.Buy(ctx)

		case "deposit":
			cmdErr = a.Deposit(ctx)

		case "reset":
			cmdErr = a.Reset(ctx)

		case "refresh":
			cmdErr = a.Refresh(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(cmdErr.Error())
		}
	}
}

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
