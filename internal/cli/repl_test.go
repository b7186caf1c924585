package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) Clients(ctx context.Context) error           { return f.record("clients") }
func (f *fakeExec) AddClient(ctx context.Context) error         { return f.record("addclient") }
func (f *fakeExec) DeleteClient(ctx context.Context) error      { return f.record("delclient") }
func (f *fakeExec) Transactions(ctx context.Context) error      { return f.record("txs") }
func (f *fakeExec) AddTransaction(ctx context.Context) error    { return f.record("addtx") }
func (f *fakeExec) DeleteTransaction(ctx context.Context) error { return f.record("deltx") }
func (f *fakeExec) Credentials(ctx context.Context) error       { return f.record("creds") }
func (f *fakeExec) AddCredential(ctx context.Context) error     { return f.record("addcred") }
func (f *fakeExec) DeleteCredential(ctx context.Context) error  { return f.record("delcred") }
func (f *fakeExec) Tasks(ctx context.Context) error             { return f.record("tasks") }
func (f *fakeExec) AddTask(ctx context.Context) error           { return f.record("addtask") }
func (f *fakeExec) DeleteTask(ctx context.Context) error        { return f.record("deltask") }
func (f *fakeExec) SetTaskStatus(ctx context.Context) error     { return f.record("settask") }
func (f *fakeExec) Dashboard(ctx context.Context) error         { return f.record("dash") }
func (f *fakeExec) Export(ctx context.Context) error            { return f.record("export") }
func (f *fakeExec) Backup(ctx context.Context) error            { return f.record("backup") }
func (f *fakeExec) Restore(ctx context.Context) error           { return f.record("restore") }

func muteOutput(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"clients",
		"addtx",
		"txs",
		"tasks",
		"settask",
		"dash",
		"backup",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	want := []string{"clients", "addtx", "txs", "tasks", "settask", "dash", "backup"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", exec.calls, want)
		}
	}
}

func TestRunREPL_TransactionsAlias(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("transactions\nquit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "txs" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_BlankLinesAndEOF(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("\n\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
