package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sunflowers/shopfront/internal/client/api"
	"github.com/sunflowers/shopfront/internal/client/models"
	"github.com/sunflowers/shopfront/internal/client/repositories/session"
	"github.com/sunflowers/shopfront/internal/common"
)

// newAdminService returns an AdminService with the session preloaded as the
// given role, talking to the supplied handler.
func newAdminService(t *testing.T, role models.Role, h http.Handler) *AdminService {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	repo := testRepo(t)
	ctx := context.Background()

	u := testUser("root@example.com", role)
	userRaw, err := json.Marshal(u)
	require.NoError(t, err)
	require.NoError(t, repo.SetAll(ctx, map[string][]byte{
		session.KeyAuthToken: []byte(tokenFor(t, u.Email, time.Now().Add(time.Hour))),
		session.KeyUser:      userRaw,
	}))

	sessions, _ := newSessionService(t, srv.URL, repo)
	require.NoError(t, sessions.Initialize(ctx))

	return NewAdminService(sessions, api.NewEndpoints(srv.URL+"/api/v1"), testLogger())
}

func TestAdmin_NonAdminIsRefusedLocally(t *testing.T) {
	svc := newAdminService(t, models.RoleCustomer, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no network call expected for non-admin sessions")
	}))
	ctx := context.Background()

	_, err := svc.ListUsers(ctx)
	require.ErrorIs(t, err, common.ErrAdminOnly)

	_, err = svc.CreateProduct(ctx, CreateProductRequest{Name: "x", Price: 1})
	require.ErrorIs(t, err, common.ErrAdminOnly)

	err = svc.UploadProductImage(ctx, 1, "x.png", bytes.NewReader(nil))
	require.ErrorIs(t, err, common.ErrAdminOnly)
}

func TestAdmin_ListUsers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/admin/user/", func(w http.ResponseWriter, r *http.Request) {
		require.NotEmpty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(api.Envelope[[]models.User]{Data: []models.User{
			testUser("a@example.com", models.RoleCustomer),
			testUser("b@example.com", models.RoleAdmin),
		}})
	})
	svc := newAdminService(t, models.RoleAdmin, mux)

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func TestAdmin_CreateProduct(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/product/", func(w http.ResponseWriter, r *http.Request) {
		var req CreateProductRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		_ = json.NewEncoder(w).Encode(api.Envelope[models.Product]{Data: models.Product{
			ID: 7, Name: req.Name, Price: req.Price,
		}})
	})
	svc := newAdminService(t, models.RoleAdmin, mux)

	p, err := svc.CreateProduct(context.Background(), CreateProductRequest{Name: "linen shirt", Price: 19.99})
	require.NoError(t, err)
	require.Equal(t, int64(7), p.ID)
}

func TestAdmin_CreateProduct_ValidationSkipsNetwork(t *testing.T) {
	svc := newAdminService(t, models.RoleAdmin, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no network call expected")
	}))

	_, err := svc.CreateProduct(context.Background(), CreateProductRequest{Name: "", Price: -1})
	require.Error(t, err)
}

func TestAdmin_UploadProductImage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/product/7/images", func(w http.ResponseWriter, r *http.Request) {
		mt, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		require.Equal(t, "multipart/form-data", mt)
		require.NotEmpty(t, params["boundary"])

		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("image")
		require.NoError(t, err)
		defer f.Close()
		require.Equal(t, "shirt.png", hdr.Filename)
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		require.Equal(t, []byte("png-bytes"), data)
		w.WriteHeader(http.StatusCreated)
	})
	svc := newAdminService(t, models.RoleAdmin, mux)

	err := svc.UploadProductImage(context.Background(), 7, "shirt.png", bytes.NewReader([]byte("png-bytes")))
	require.NoError(t, err)
}
