// Package cli provides the interactive shop command-line client.
//
// It wires configuration, the local session store, the API services, and an
// interactive REPL. On startup the persisted session is restored (or purged
// if its token expired), then the shopper browses the catalog, manages the
// cart, and checks out via PayPal.
//
// Key features:
//   - Login / Logout and the three-step e-mail registration flow
//   - Catalog browsing: product listings with filters, banners, profile
//   - Cart management with optimistic local updates
//   - PayPal checkout and order status polling
//   - Admin commands (user listing, product creation) for admin sessions
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
