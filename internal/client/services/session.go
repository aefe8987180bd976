package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/sunflowers/shopfront/internal/auth"
	"github.com/sunflowers/shopfront/internal/client/api"
	"github.com/sunflowers/shopfront/internal/client/models"
	"github.com/sunflowers/shopfront/internal/client/repositories/cartcache"
	"github.com/sunflowers/shopfront/internal/client/repositories/session"
	"github.com/sunflowers/shopfront/internal/common"
	"github.com/sunflowers/shopfront/internal/logging"
)

// SessionState is the session manager's current mode.
type SessionState string

const (
	StateAnonymous      SessionState = "anonymous"
	StateAuthenticating SessionState = "authenticating"
	StateAuthenticated  SessionState = "authenticated"
	StateRegistering    SessionState = "registering"
)

// LoginRequest carries the /auth/login credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest starts the 3-step registration flow (email verification).
type RegisterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyRequest is step 2: the emailed verification code.
type VerifyRequest struct {
	Code string `json:"verificationCode" validate:"required"`
}

// CompleteRequest is step 3: profile completion.
type CompleteRequest struct {
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,e164"`
}

// SessionService owns the authenticated identity: the bearer credential,
// the cached user record, and the registration-in-progress token. It is
// the only writer of the credential; every outbound request reads it
// through the CredentialSource interface the service implements.
type SessionService struct {
	store     session.Repository
	cache     *cartcache.Cache
	endpoints *api.Endpoints
	gateway   *api.Gateway
	validate  *validator.Validate
	log       logging.Logger

	mu         sync.RWMutex
	state      SessionState
	credential string
	user       *models.User
}

func NewSessionService(store session.Repository, cache *cartcache.Cache, endpoints *api.Endpoints, hc *http.Client, log logging.Logger) *SessionService {
	s := &SessionService{
		store:     store,
		cache:     cache,
		endpoints: endpoints,
		validate:  validator.New(),
		log:       log,
		state:     StateAnonymous,
	}
	s.gateway = api.NewGateway(hc, s, log)
	return s
}

// Gateway returns the request gateway bound to this session's credential.
// Every other service issues its calls through it.
func (s *SessionService) Gateway() *api.Gateway {
	return s.gateway
}

// Credential implements api.CredentialSource.
func (s *SessionService) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

// State returns the current session state.
func (s *SessionService) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Initialize restores the session from the durable store at process start.
// A missing, undecodable or expired token — or a missing/unparseable user
// record — purges every session key (including the ephemeral cart) and
// leaves the client anonymous. Otherwise the credential is installed and
// the session is authenticated.
func (s *SessionService) Initialize(ctx context.Context) error {
	tok, err := s.store.Get(ctx, session.KeyAuthToken)
	if err != nil {
		return s.purge(ctx)
	}

	raw := string(tok)
	if auth.IsExpired(raw) {
		s.log.Info(ctx, "stored token expired, clearing session")
		return s.purge(ctx)
	}

	userRaw, err := s.store.Get(ctx, session.KeyUser)
	if err != nil {
		return s.purge(ctx)
	}
	var u models.User
	if err := json.Unmarshal(userRaw, &u); err != nil || u.Email == "" {
		s.log.Warn(ctx, "stored user record unreadable, clearing session")
		return s.purge(ctx)
	}

	s.mu.Lock()
	s.credential = raw
	s.user = &u
	s.state = StateAuthenticated
	s.mu.Unlock()

	s.log.Info(ctx, "session restored", "email", u.Email)
	return nil
}

// Login authenticates against the backend. On success any prior session is
// purged, the new token and user are persisted together, and the
// credential is installed. The caller handles the error branch and uses
// defer for the always-runs branch.
func (s *SessionService) Login(ctx context.Context, req LoginRequest) (*models.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	s.setState(StateAuthenticating)

	var resp api.AuthResponse
	status, err := s.gateway.JSON(ctx, http.MethodPost, s.endpoints.Login(), req, &resp, nil)
	if err != nil {
		s.setState(StateAnonymous)
		return nil, err
	}
	if !api.IsSuccess(status) {
		s.setState(StateAnonymous)
		return nil, statusToErr(status)
	}

	if err := s.installSession(ctx, resp.Token, &resp.User); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "logged in", "email", resp.User.Email)
	return &resp.User, nil
}

// RequestRegister is step 1 of registration: it submits the email and
// persists the short-lived registration token. No session is created yet.
func (s *SessionService) RequestRegister(ctx context.Context, req RegisterRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}

	var resp api.TokenResponse
	status, err := s.gateway.JSON(ctx, http.MethodPost, s.endpoints.Register(), req, &resp, nil)
	if err != nil {
		return err
	}
	if !api.IsSuccess(status) {
		return statusToErr(status)
	}

	if err := s.store.Set(ctx, session.KeyRegisterToken, []byte(resp.Token)); err != nil {
		return fmt.Errorf("persisting registration token: %w", err)
	}
	s.setState(StateRegistering)
	return nil
}

// RequestVerify is step 2: it submits the verification code under the
// registration token. Success replaces the token; failure invalidates the
// whole attempt, forcing a restart from step 1.
func (s *SessionService) RequestVerify(ctx context.Context, req VerifyRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}

	regToken, err := s.registrationToken(ctx)
	if err != nil {
		return err
	}

	var resp api.TokenResponse
	status, err := s.gateway.JSON(ctx, http.MethodPost, s.endpoints.Verify(), req, &resp, bearerHeader(regToken))
	if err != nil {
		return err
	}
	if !api.IsSuccess(status) {
		// A failed verification kills the in-flight attempt.
		_ = s.store.Delete(ctx, session.KeyRegisterToken)
		s.setState(StateAnonymous)
		return statusToErr(status)
	}

	if err := s.store.SetAll(ctx, map[string][]byte{
		session.KeyRegisterToken:  []byte(resp.Token),
		session.KeyEmailValidated: []byte("true"),
	}); err != nil {
		return fmt.Errorf("persisting registration token: %w", err)
	}
	return nil
}

// RequestComplete is step 3: profile completion. On success the prior
// session is purged and the returned token + user become the new session.
func (s *SessionService) RequestComplete(ctx context.Context, req CompleteRequest) (*models.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	regToken, err := s.registrationToken(ctx)
	if err != nil {
		return nil, err
	}

	var resp api.AuthResponse
	status, err := s.gateway.JSON(ctx, http.MethodPost, s.endpoints.Complete(), req, &resp, bearerHeader(regToken))
	if err != nil {
		return nil, err
	}
	if !api.IsSuccess(status) {
		return nil, statusToErr(status)
	}

	if err := s.installSession(ctx, resp.Token, &resp.User); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "registration completed", "email", resp.User.Email)
	return &resp.User, nil
}

// Logout purges the token, the cached user, any registration token, the
// stored address/order selection and the ephemeral cart, and removes the
// credential. Safe to call repeatedly and from the anonymous state.
func (s *SessionService) Logout(ctx context.Context) error {
	return s.purge(ctx)
}

// HandleUnauthorized is the forced-logout path for 401-class responses
// observed by any caller: the stale session is discarded entirely.
func (s *SessionService) HandleUnauthorized(ctx context.Context) {
	s.log.Warn(ctx, "backend rejected credential, clearing session")
	_ = s.purge(ctx)
}

// IsAuthenticated reports whether a credential is installed. The token is
// not re-validated here: expiry is checked at Initialize and on 401
// responses, not on every query.
func (s *SessionService) IsAuthenticated() bool {
	return s.Credential() != ""
}

// IsAdmin reports whether the session belongs to an administrator:
// authenticated, cached role is ADMIN, and the token's subject matches the
// cached user's email (a cross-check against tampering with the stored
// user record).
func (s *SessionService) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.credential == "" || !s.user.IsAdmin() {
		return false
	}
	return auth.Subject(s.credential) == s.user.Email
}

// User returns the cached user record, or nil when anonymous.
func (s *SessionService) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *SessionService) setState(st SessionState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// registrationToken loads the step token and re-derives its validity from
// the embedded expiry plus the grace window. Never trusts a cached flag.
func (s *SessionService) registrationToken(ctx context.Context) (string, error) {
	raw, err := s.store.Get(ctx, session.KeyRegisterToken)
	if err != nil {
		return "", common.ErrNoRegistration
	}
	tok := string(raw)
	if !auth.IsRegistrationValid(tok) {
		_ = s.store.Delete(ctx, session.KeyRegisterToken)
		s.setState(StateAnonymous)
		return "", common.ErrRegistrationExpired
	}
	return tok, nil
}

// installSession replaces whatever session existed before with the given
// token + user, persisting both atomically.
func (s *SessionService) installSession(ctx context.Context, token string, u *models.User) error {
	if err := s.purge(ctx); err != nil {
		return err
	}

	userRaw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encoding user record: %w", err)
	}
	if err := s.store.SetAll(ctx, map[string][]byte{
		session.KeyAuthToken: []byte(token),
		session.KeyUser:      userRaw,
	}); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	s.mu.Lock()
	s.credential = token
	s.user = u
	s.state = StateAuthenticated
	s.mu.Unlock()
	return nil
}

func (s *SessionService) purge(ctx context.Context) error {
	s.mu.Lock()
	s.credential = ""
	s.user = nil
	s.state = StateAnonymous
	s.mu.Unlock()

	s.cache.Purge()
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session store: %w", err)
	}
	return nil
}

func bearerHeader(token string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	return h
}

// statusToErr maps non-success statuses to the errors callers branch on.
func statusToErr(status int) error {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return common.ErrUnauthorized
	}
	return &api.StatusError{Status: status}
}
