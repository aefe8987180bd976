// Package session persists the client's durable session state: the bearer
// token, the cached user record, and auxiliary flags. It is the survives-a-
// restart half of client state; the cart cache is the ephemeral half.
package session

import "context"

// Well-known store keys. The layout mirrors what the backend expects a
// browser client to keep across reloads.
const (
	KeyAuthToken       = "authToken"
	KeyUser            = "user"
	KeyRegisterToken   = "registerToken"
	KeyEmailValidated  = "email-validated"
	KeySelectedAddress = "selectedAddress"
	KeyOrderID         = "orderId"
)

// Repository is a durable key-value store. Get returns common.ErrNotFound
// for a missing key. SetAll writes all pairs atomically, which keeps the
// token and the cached user set and cleared together.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetAll(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
