package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/sunflowers/shopfront/internal/client/api"
	"github.com/sunflowers/shopfront/internal/client/config"
	"github.com/sunflowers/shopfront/internal/client/models"
	"github.com/sunflowers/shopfront/internal/logging"
)

func stubInput(t *testing.T, lines []string, password string) {
	t.Helper()

	origText := getSimpleText
	origPw := getPassword
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPw
	})

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
}

func newTestApp(t *testing.T, h http.Handler) *App {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		APIBaseURL:     srv.URL + "/api/v1",
		StoragePath:    filepath.Join(t.TempDir(), "session.db"),
		RequestTimeout: 5 * time.Second,
	}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	app, err := NewApp(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })
	return app
}

func signedToken(t *testing.T, subject string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	s, err := tok.SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return s
}

func TestApp_LoginLogoutRoundTrip(t *testing.T) {
	user := models.User{
		ID:        uuid.New(),
		Email:     "ada@example.com",
		FirstName: "Ada",
		Role:      models.RoleCustomer,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.AuthResponse{
			Token: signedToken(t, user.Email),
			User:  user,
		})
	})
	mux.HandleFunc("GET /api/v1/cart/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.Envelope[[]models.CartItem]{})
	})

	app := newTestApp(t, mux)
	ctx := context.Background()
	stubInput(t, []string{"ada@example.com"}, "hunter2hunter2")

	require.False(t, app.isLoggedIn())

	require.NoError(t, app.Login(ctx))
	require.True(t, app.isLoggedIn())
	require.Contains(t, app.getStatus(), "ada@example.com")

	require.NoError(t, app.Logout(ctx))
	require.False(t, app.isLoggedIn())
	require.Empty(t, app.getStatus())
}

func TestApp_UnauthorizedCommandForcesLocalLogout(t *testing.T) {
	user := models.User{ID: uuid.New(), Email: "ada@example.com", FirstName: "Ada", Role: models.RoleCustomer}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.AuthResponse{Token: signedToken(t, user.Email), User: user})
	})
	mux.HandleFunc("GET /api/v1/cart/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.Envelope[[]models.CartItem]{})
	})
	mux.HandleFunc("GET /api/v1/user/profile", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token revoked", http.StatusUnauthorized)
	})

	app := newTestApp(t, mux)
	ctx := context.Background()
	stubInput(t, []string{"ada@example.com"}, "hunter2hunter2")

	require.NoError(t, app.Login(ctx))
	require.True(t, app.isLoggedIn())

	err := app.Profile(ctx)
	require.Error(t, err)
	require.False(t, app.isLoggedIn(), "a 401 response must clear the local session")
	require.Empty(t, app.carts.Lines())
}
