package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Register(ctx context.Context) error
	Verify(ctx context.Context) error
	Complete(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Products(ctx context.Context) error
	Banners(ctx context.Context) error
	Profile(ctx context.Context) error
	ShowCart(ctx context.Context) error
	AddToCart(ctx context.Context) error
	IncrementItem(ctx context.Context) error
	DecrementItem(ctx context.Context) error
	RemoveItem(ctx context.Context) error
	Checkout(ctx context.Context) error
	OrderStatus(ctx context.Context) error
	AdminUsers(ctx context.Context) error
	AddProduct(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the shop CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — step 1: request a verification e-mail
//	  - verify         — step 2: submit the e-mailed code
//	  - complete       — step 3: set password and profile, logs in
//	  - login          — authenticate
//	  - products       — browse the catalog
//	  - banners        — show promotional banners
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - whoami         — show the cached session identity
//	  - profile        — show the account profile and addresses
//	  - cart           — show the cart lines and total
//	  - add            — put a product variant in the cart
//	  - inc | dec      — change a line's quantity by one
//	  - rm             — remove a whole line
//	  - checkout       — create a PayPal order for the cart
//	  - status         — poll the payment state of an order
//	  - logout         — log out
//
//	Admins additionally get:
//	  - users          — list accounts
//	  - addproduct     — create a product (with optional image upload)
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("shop %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				msg := "Available commands: whoami, products, banners, profile, cart, add, inc, dec, rm, checkout, status, logout, exit"
				if a.isAdmin() {
					msg += ", users, addproduct"
				}
				printlnFn(msg)
			} else {
				printlnFn("Available commands: register, verify, complete, login, products, banners, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "verify":
			_ = a.Verify(ctx)

		case "complete":
			_ = a.Complete(ctx)

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "p", "products":
			_ = a.Products(ctx)

		case "banners":
			_ = a.Banners(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "cart":
			_ = a.ShowCart(ctx)

		case "add":
			_ = a.AddToCart(ctx)

		case "inc":
			_ = a.IncrementItem(ctx)

		case "dec":
			_ = a.DecrementItem(ctx)

		case "rm":
			_ = a.RemoveItem(ctx)

		case "checkout":
			_ = a.Checkout(ctx)

		case "status":
			_ = a.OrderStatus(ctx)

		case "users":
			_ = a.AdminUsers(ctx)

		case "addproduct":
			_ = a.AddProduct(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
