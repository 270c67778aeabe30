package cli

import (
	"context"
	"os"

	"github.com/aliaa11/userboard/internal/api"
)

// getSimpleText and getPassword are seams so tests can feed canned input
// without a terminal.
var (
	getSimpleText = func(a *App, prompt string) (string, error) {
		return GetSimpleText(a.reader, prompt, os.Stdout)
	}
	getPassword = func(a *App) ([]byte, error) {
		return GetPassword(os.Stdout)
	}
	getTextDefault = func(a *App, prompt, current string) (string, error) {
		return GetTextDefault(a.reader, prompt, current, os.Stdout)
	}
	confirmFn = func(a *App, question string) (bool, error) {
		return Confirm(a.reader, question, os.Stdout)
	}
)

// Register prompts for signup details, validates them locally, and creates
// the account. On success the user still has to log in; the backend does not
// return a token from registration.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a, "Please enter your name")
	if err != nil {
		return err
	}
	email, err := getSimpleText(a, "Please enter your email")
	if err != nil {
		return err
	}
	password, err := getPassword(a)
	if err != nil {
		return err
	}

	form := registerForm{Name: name, Email: email, Password: string(password)}
	if err := form.Validate(); err != nil {
		printlnFn(err)
		return err
	}

	user, err := a.api.Register(ctx, api.RegisterRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		a.log.Debug(ctx, "register failed", "error", err)
		printlnFn(err)
		return err
	}

	printlnFn("Registered", user.Email, "- you can now log in.")
	return nil
}

// Login prompts for credentials, exchanges them for a token, and stores the
// token as the active session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a, "Please enter your email")
	if err != nil {
		return err
	}
	password, err := getPassword(a)
	if err != nil {
		return err
	}

	token, err := a.api.Login(ctx, api.Credentials{Email: email, Password: string(password)})
	if err != nil {
		a.log.Debug(ctx, "login failed", "error", err)
		printlnFn(err)
		return err
	}

	if err := a.session.Login(ctx, token); err != nil {
		printlnFn("Error saving session:", err)
		return err
	}

	printlnFn("Login successful!")
	a.dash.reset()
	return nil
}

// Logout revokes the token server-side on a best-effort basis and always
// clears the local session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		a.log.Debug(ctx, "server-side logout failed", "error", err)
	}
	if err := a.session.Logout(ctx); err != nil {
		printlnFn("Error clearing session:", err)
		return err
	}
	a.dash.reset()
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the authenticated user, or a hint when anonymous.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn(formatUserDetail(user))
	return nil
}
