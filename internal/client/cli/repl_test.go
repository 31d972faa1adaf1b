package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	fail     error

	calls []string
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	return f.fail
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.loggedIn = true
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(ctx context.Context) error { return f.record("whoami") }
func (f *fakeExec) CheckIn(ctx context.Context) error { return f.record("checkin") }
func (f *fakeExec) Edit(ctx context.Context, id string) error {
	return f.record("edit " + id)
}
func (f *fakeExec) Delete(ctx context.Context, id string) error {
	return f.record("delete " + id)
}
func (f *fakeExec) List(ctx context.Context, search string) error {
	return f.record(strings.TrimSpace("list " + search))
}
func (f *fakeExec) Week(ctx context.Context) error { return f.record("week") }
func (f *fakeExec) Export(ctx context.Context, dir string) error {
	return f.record(strings.TrimSpace("export " + dir))
}
func (f *fakeExec) Clear(ctx context.Context) error { return f.record("clear") }
func (f *fakeExec) Quote(ctx context.Context) error { return f.record("quote") }

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	in := readerFromLines(
		"help",
		"checkin",
		"quote",
		"login",
		"help",
		"checkin",
		"edit abc",
		"edit",
		"delete  abc ",
		"list long walk",
		"l",
		"week",
		"export /tmp/out",
		"clear",
		"whoami",
		"login",
		"",
		"foobar",
		"logout",
		"exit",
		"week",
	)
	out := &bytes.Buffer{}
	exec := &fakeExec{}

	err := runREPL(context.Background(), exec, func() string { return "status" }, in, out)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"quote", "login", "checkin", "edit abc", "delete abc", "list long walk", "list",
		"week", "export /tmp/out", "clear", "whoami", "logout",
	}, exec.calls)

	text := out.String()
	assert.Contains(t, text, "status> ")
	assert.Contains(t, text, helpLoggedOut)
	assert.Contains(t, text, helpLoggedIn)
	assert.Contains(t, text, "Please log in first.")
	assert.Contains(t, text, "Usage: edit <id>")
	assert.Contains(t, text, "Already logged in.")
	assert.Contains(t, text, "Unknown command: foobar")
	assert.Contains(t, text, "Bye!")
}

func TestRunREPL_EOF(t *testing.T) {
	exec := &fakeExec{}
	err := runREPL(context.Background(), exec, func() string { return "" }, readerFromLines("register"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []string{"register"}, exec.calls)
}

func TestRunREPL_FatalErrorStopsLoop(t *testing.T) {
	boom := errors.New("boom")
	exec := &fakeExec{loggedIn: true, fail: boom}

	err := runREPL(context.Background(), exec, func() string { return "" }, readerFromLines("week", "list"), &bytes.Buffer{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"week"}, exec.calls)
}

func TestRunREPL_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	err := runREPL(ctx, exec, func() string { return "" }, readerFromLines("login"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Empty(t, exec.calls)
}
