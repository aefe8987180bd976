// Package services contains the application services of the shopfront
// client: the session manager (login, multi-step registration, logout,
// derived auth queries), the cart reconciler, and the catalog, checkout
// and admin services. All of them talk to the backend through the
// authenticated request gateway and honor context cancellation.
package services
