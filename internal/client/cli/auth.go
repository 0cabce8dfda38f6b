package cli

import (
	"context"
	"fmt"
)

func (a *App) register(ctx context.Context) {
	name, err := prompt(a.reader, "Name (optional)", a.out)
	if err != nil {
		a.fail(err)
		return
	}
	login, err := prompt(a.reader, "Login", a.out)
	if err != nil {
		a.fail(err)
		return
	}
	password, err := promptPassword(a.out)
	if err != nil {
		a.fail(err)
		return
	}

	result, err := a.api.Register(ctx, name, login, password)
	if err != nil {
		a.fail(err)
		return
	}

	a.sessionStarted(ctx, result.Token, result.User.Login)
	fmt.Fprintf(a.out, "Registered and logged in as %s\n", result.User.Login)
}

func (a *App) loginCmd(ctx context.Context) {
	login, err := prompt(a.reader, "Login", a.out)
	if err != nil {
		a.fail(err)
		return
	}
	password, err := promptPassword(a.out)
	if err != nil {
		a.fail(err)
		return
	}

	result, err := a.api.Login(ctx, login, password)
	if err != nil {
		a.fail(err)
		return
	}

	a.sessionStarted(ctx, result.Token, result.User.Login)
	fmt.Fprintf(a.out, "Logged in as %s\n", result.User.Login)
}

func (a *App) logout(ctx context.Context) {
	ack, err := a.api.Logout(ctx)
	if err != nil {
		a.fail(err)
		return
	}
	if err := a.store.ClearToken(ctx); err != nil {
		a.fail(err)
		return
	}
	a.login = ""
	fmt.Fprintln(a.out, ack.Message)
}

// sessionStarted persists the token so the session survives restarts.
func (a *App) sessionStarted(ctx context.Context, token, login string) {
	a.login = login
	if err := a.store.SaveToken(ctx, token); err != nil {
		fmt.Fprintf(a.out, "Warning: session not saved: %v\n", err)
	}
}

func (a *App) fail(err error) {
	fmt.Fprintf(a.out, "Error: %v\n", err)
}
