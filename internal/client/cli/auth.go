package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mindmate/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) credentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

// Register prompts for credentials and creates the account. An already
// known email with the right password simply signs in.
func (a *App) Register(ctx context.Context) error {
	return a.signIn(ctx, "Welcome to MindMate!", a.auth.Register)
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	return a.signIn(ctx, "Welcome back!", a.auth.Login)
}

func (a *App) signIn(ctx context.Context, greeting string, fn func(context.Context, string, string) error) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := fn(ctx, email, string(password)); err != nil {
		printlnFn("Error:", err.Error())
		a.auth.ClearError()
		return err
	}

	printlnFn(fmt.Sprintf("%s Signed in as %s", greeting, a.status()))
	return nil
}

// Logout forgets the saved user. Their data stays in the store for the
// next login.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}
	a.auth.Logout(ctx)
	printlnFn("Logged out")
	return nil
}
