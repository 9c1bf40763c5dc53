package cli

import (
	"context"
	"os"

	"github.com/abhisheksit27/agrovest/internal/client/models"
	"github.com/abhisheksit27/agrovest/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for profile details and attempts to create a new
// account in the session store. A successful registration also logs the user
// in.
//
// The store reports failure as a bare negative result, so the message shown
// here stays generic. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	phone, err := getSimpleText(a.reader, "Enter phone", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	account := models.Account{
		FullName: fullName,
		Email:    email,
		Phone:    phone,
		Password: string(password),
	}

	if !a.store.Register(ctx, account) {
		printlnFn("Registration failed. The email may already be registered.")
		return nil
	}

	printlnFn("Account created. You are now logged in.")
	return nil
}

// Login prompts for credentials and tries to authenticate against the
// session store. A failed attempt prints one generic message; the store does
// not distinguish an unknown email from a wrong password.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if !a.store.Login(ctx, email, string(password)) {
		printlnFn("Invalid email or password.")
		return nil
	}

	printlnFn("Login successful.")
	return nil
}

// Logout clears the in-memory session. The stored accounts are untouched.
func (a *App) Logout(ctx context.Context) error {
	a.store.Logout()
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the profile of the logged-in user.
func (a *App) Whoami(ctx context.Context) error {
	user, ok := a.store.CurrentUser()
	if !ok {
		printlnFn("Not logged in.")
		return nil
	}

	printlnFn("Name:  " + user.FullName)
	printlnFn("Email: " + user.Email)
	printlnFn("Phone: " + user.Phone)
	return nil
}
