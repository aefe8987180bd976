package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/sunflowers/shopfront/internal/client/services"
	"github.com/sunflowers/shopfront/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and tries to authenticate.
// On success the session is persisted and the server-side cart is loaded so
// the prompt reflects the shopper's state. The password byte slice is
// securely wiped before returning.
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

	u, err := a.sessions.Login(ctx, services.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		return a.report(ctx, err)
	}

	fmt.Printf("Welcome back, %s!\n", u.FirstName)

	if err := a.carts.Load(ctx); err != nil {
		return a.report(ctx, err)
	}
	return nil
}

// Register is step 1 of the sign-up flow: it requests a verification
// e-mail. The flow continues with "verify" and "complete"; the registration
// token is persisted, so the remaining steps survive a restart (within the
// grace window).
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.sessions.RequestRegister(ctx, services.RegisterRequest{Email: email}); err != nil {
		return a.report(ctx, err)
	}

	fmt.Println("Check your inbox, then run 'verify' with the code")
	return nil
}

// Verify is step 2: it submits the e-mailed verification code.
func (a *App) Verify(ctx context.Context) error {
	code, err := getSimpleText(a.reader, "Enter the verification code from your inbox", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.sessions.RequestVerify(ctx, services.VerifyRequest{Code: code}); err != nil {
		return a.report(ctx, err)
	}

	fmt.Println("Email verified, run 'complete' to finish")
	return nil
}

// Complete is step 3: profile completion. Success logs the new account in.
func (a *App) Complete(ctx context.Context) error {
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone (optional)", os.Stdout)
	if err != nil {
		return err
	}

	u, err := a.sessions.RequestComplete(ctx, services.CompleteRequest{
		Password:  string(password),
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	})
	if err != nil {
		return a.report(ctx, err)
	}

	fmt.Printf("Account created, welcome %s!\n", u.FirstName)
	return nil
}

// Whoami prints the locally cached session identity without any network
// call.
func (a *App) Whoami(ctx context.Context) error {
	u := a.sessions.User()
	if u == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s %s <%s> [%s]\n", u.FirstName, u.LastName, u.Email, u.Role)
	return nil
}

// Logout clears the persisted session and the local cart state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	a.carts.Purge()
	fmt.Println("Logged out")
	return nil
}
