package cli

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// decision is a one-shot accept/reject outcome. Only the first resolve
// counts; later calls are ignored.
type decision struct {
	once sync.Once
	done chan struct{}
	ok   bool
}

func newDecision() *decision {
	return &decision{done: make(chan struct{})}
}

// resolve settles the decision and reports whether this call did so.
func (d *decision) resolve(ok bool) bool {
	won := false
	d.once.Do(func() {
		d.ok = ok
		won = true
		close(d.done)
	})
	return won
}

// wait blocks until the decision is resolved.
func (d *decision) wait() bool {
	<-d.done
	return d.ok
}

// confirm asks the user to approve a destructive action. Anything but an
// explicit yes rejects, and so does cancelling ctx.
func (a *App) confirm(ctx context.Context, title, text string) bool {
	d := newDecision()
	stop := context.AfterFunc(ctx, func() { d.resolve(false) })
	defer stop()

	prompt := fmt.Sprintf("%s\n%s\nType 'yes' to confirm", title, text)
	go func() {
		answer, err := getSimpleText(a.reader, prompt, a.out)
		d.resolve(err == nil && isYes(answer))
	}()

	return d.wait()
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}
