package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
)

// Register prompts for an email, a username and a password, creates the
// account and signs the new user in. The password is wiped before
// returning.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.auth.Register(ctx, email, username, password)
	if err != nil {
		return a.report(ctx, err)
	}
	if err := a.signIn(ctx, u, true); err != nil {
		return a.report(ctx, err)
	}

	a.alerts.show(fmt.Sprintf("Welcome, %s!", u.Username))
	return nil
}

// Login prompts for credentials and starts a session on success. Unknown
// accounts and wrong passwords are reported as alerts.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return a.report(ctx, err)
	}
	if err := a.signIn(ctx, u, true); err != nil {
		return a.report(ctx, err)
	}

	a.alerts.show(fmt.Sprintf("Welcome back, %s!", u.Username))
	return nil
}

// Logout ends the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.End(ctx); err != nil {
		return a.report(ctx, err)
	}
	a.signOut()
	a.alerts.show("Logged out.")
	return nil
}

// WhoAmI prints the signed-in account.
func (a *App) WhoAmI(ctx context.Context) error {
	u, ok, err := a.requireUser(ctx)
	if !ok {
		return err
	}
	fmt.Fprintf(a.out, "%s <%s>\n", u.Username, u.Email)
	return nil
}
