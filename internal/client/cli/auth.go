package cli

import (
	"context"
	"fmt"

	"github.com/aidirectory/adminctl/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getBool = GetBool
var getFloat = GetFloat

// Login prompts for credentials and authenticates against the backend. On
// failure the session's normalized error message is printed; the REPL keeps
// running either way.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	resp, err := a.session.Login(ctx, models.LoginPayload{Username: username, Password: password})
	if err != nil {
		banner(a.out, a.session.Err())
		return err
	}

	fmt.Fprintf(a.out, "%s Welcome, %s.\n", resp.Message, resp.Admin.Username)
	return nil
}

// Register creates a new admin account. The caller stays logged out; the
// backend expects a separate login afterwards.
func (a *App) Register(ctx context.Context) error {
	p := models.RegisterPayload{}
	var err error
	if p.Username, err = getSimpleText(a.reader, "Enter username", a.out); err != nil {
		return err
	}
	if p.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if p.FirstName, err = getSimpleText(a.reader, "Enter first name", a.out); err != nil {
		return err
	}
	if p.LastName, err = getSimpleText(a.reader, "Enter last name", a.out); err != nil {
		return err
	}
	if p.Password, err = getPassword(a.out); err != nil {
		return err
	}

	resp, err := a.session.Register(ctx, p)
	if err != nil {
		banner(a.out, a.session.Err())
		return err
	}

	fmt.Fprintf(a.out, "%s You can log in now.\n", resp.Message)
	return nil
}

// Logout ends the session. The local snapshot is cleared even when the
// server round trip fails.
func (a *App) Logout(ctx context.Context) error {
	fmt.Fprintln(a.out, a.session.Logout(ctx))
	return nil
}
