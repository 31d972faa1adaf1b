package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
)

// alertBox holds the transient message shown next to the prompt. A message
// disappears once ttl has passed; a new message replaces the old one and
// restarts the timer. With a non-positive ttl messages are printed once
// and not kept.
type alertBox struct {
	mu    sync.Mutex
	text  string
	until time.Time

	ttl time.Duration
	out io.Writer
	now func() time.Time
}

func newAlertBox(ttl time.Duration, out io.Writer) *alertBox {
	return &alertBox{ttl: ttl, out: out, now: time.Now}
}

func (b *alertBox) show(msg string) {
	if b.ttl <= 0 {
		fmt.Fprintln(b.out, msg)
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text, b.until = msg, b.now().Add(b.ttl)
}

func (b *alertBox) current() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.text != "" && !b.now().Before(b.until) {
		b.text = ""
	}
	return b.text
}

// Alert texts for recoverable errors.
const (
	msgEmailTaken    = "That email is already registered. Try logging in."
	msgNoAccount     = "No account found for that email. Register instead."
	msgWrongPassword = "Incorrect password."
	msgNoEntry       = "No check-in with that id."
	msgCouldNotSave  = "Could not save."
)

// alertText maps a recoverable error to the message shown to the user.
// ok is false for errors that are not recoverable.
func alertText(err error) (msg string, ok bool) {
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Error(), true
	case errors.Is(err, common.ErrEmailAlreadyRegistered):
		return msgEmailTaken, true
	case errors.Is(err, common.ErrNoSuchAccount):
		return msgNoAccount, true
	case errors.Is(err, common.ErrWrongPassword):
		return msgWrongPassword, true
	case errors.Is(err, common.ErrorNotFound):
		return msgNoEntry, true
	case errors.Is(err, common.ErrMissingElement):
		return "", false
	default:
		return msgCouldNotSave, true
	}
}

// report turns err into an alert. It returns err only when it is fatal.
func (a *App) report(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	msg, ok := alertText(err)
	if !ok {
		return err
	}
	if msg == msgCouldNotSave {
		a.log.Error(ctx, "command failed", "error", err)
	}
	a.alerts.show(msg)
	return nil
}
