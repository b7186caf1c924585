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
	Clients(ctx context.Context) error
	AddClient(ctx context.Context) error
	DeleteClient(ctx context.Context) error
	Transactions(ctx context.Context) error
	AddTransaction(ctx context.Context) error
	DeleteTransaction(ctx context.Context) error
	Credentials(ctx context.Context) error
	AddCredential(ctx context.Context) error
	DeleteCredential(ctx context.Context) error
	Tasks(ctx context.Context) error
	AddTask(ctx context.Context) error
	DeleteTask(ctx context.Context) error
	SetTaskStatus(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Export(ctx context.Context) error
	Backup(ctx context.Context) error
	Restore(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Command handler errors are printed and the loop continues; a bad input
// never terminates the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	report := func(err error) {
		if err != nil {
			printlnFn("Error:", err)
		}
	}

	for {
		printlnFn(fmt.Sprintf("editiq> %s > ", statusFn()))
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
			printlnFn("Clients:      clients, addclient, delclient")
			printlnFn("Ledger:       txs, addtx, deltx")
			printlnFn("Credentials:  creds, addcred, delcred")
			printlnFn("Workspace:    tasks, addtask, deltask, settask")
			printlnFn("Dashboard:    dash")
			printlnFn("Data:         export, backup, restore")
			printlnFn("Other:        help, exit")

		case "clients":
			report(a.Clients(ctx))

		case "addclient":
			report(a.AddClient(ctx))

		case "delclient":
			report(a.DeleteClient(ctx))

		case "txs", "transactions":
			report(a.Transactions(ctx))

		case "addtx":
			report(a.AddTransaction(ctx))

		case "deltx":
			report(a.DeleteTransaction(ctx))

		case "creds":
			report(a.Credentials(ctx))

		case "addcred":
			report(a.AddCredential(ctx))

		case "delcred":
			report(a.DeleteCredential(ctx))

		case "tasks":
			report(a.Tasks(ctx))

		case "addtask":
			report(a.AddTask(ctx))

		case "deltask":
			report(a.DeleteTask(ctx))

		case "settask":
			report(a.SetTaskStatus(ctx))

		case "dash":
			report(a.Dashboard(ctx))

		case "export":
			report(a.Export(ctx))

		case "backup":
			report(a.Backup(ctx))

		case "restore":
			report(a.Restore(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
