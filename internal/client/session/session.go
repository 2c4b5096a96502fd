// Package session owns the authenticated admin's credential and profile:
// anonymous -> authenticating -> authenticated, back to anonymous on logout
// or forced invalidation. The snapshot {access token, admin profile} is
// persisted in the local database so a restart resumes the session.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aidirectory/adminctl/internal/client/api"
	"github.com/aidirectory/adminctl/internal/client/models"
	"github.com/aidirectory/adminctl/internal/client/repositories/state"
	"github.com/aidirectory/adminctl/internal/dbx"
	"github.com/aidirectory/adminctl/internal/logging"
)

type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
)

// ErrBusy is returned when an auth operation is started while another one is
// still in flight.
var ErrBusy = errors.New("auth operation already in flight")

// Persisted keys. Only the token and the profile survive restarts; error and
// loading state never do.
const (
	keyAccessToken = "access_token"
	keyAdmin       = "admin"
)

// Client is the slice of the API surface the session needs.
type Client interface {
	Login(ctx context.Context, p models.LoginPayload) (*models.LoginResponse, error)
	Register(ctx context.Context, p models.RegisterPayload) (*models.RegisterResponse, error)
	Logout(ctx context.Context) (string, error)
}

// Store is the session store. It implements api.Credentials, which is also
// why it is constructed before the gateway and bound to it afterwards via
// Bind.
type Store struct {
	db  *sql.DB
	log logging.Logger

	mu         sync.Mutex
	api        Client
	st         State
	busy       bool
	token      string
	admin      *models.AdminUser
	errMsg     string
	successMsg string
}

func New(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log, st: StateAnonymous}
}

// Bind attaches the API client. Must be called once before any auth
// operation.
func (s *Store) Bind(c Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.api = c
}

func (s *Store) repo(db dbx.DBTX) state.Repository {
	return state.NewSQLiteRepository(db)
}

// Restore loads a persisted session, if any. A token whose JWT expiry has
// passed is discarded together with its profile; an opaque (non-JWT) token is
// kept, since its validity can only be judged by the server.
func (s *Store) Restore(ctx context.Context) error {
	repo := s.repo(s.db)

	token, err := repo.Get(ctx, keyAccessToken)
	if err != nil {
		return err
	}
	if len(token) == 0 {
		return nil
	}

	if tokenExpired(string(token)) {
		s.log.Info(ctx, "persisted session expired, discarding")
		return repo.Clear(ctx)
	}

	admin, err := repo.Get(ctx, keyAdmin)
	if err != nil {
		return err
	}
	var profile models.AdminUser
	if len(admin) > 0 {
		if err := json.Unmarshal(admin, &profile); err != nil {
			s.log.Warn(ctx, "persisted profile unreadable, discarding session", "error", err)
			return repo.Clear(ctx)
		}
	}

	s.mu.Lock()
	s.st = StateAuthenticated
	s.token = string(token)
	s.admin = &profile
	s.mu.Unlock()

	s.log.Info(ctx, "session restored", "username", profile.Username)
	return nil
}

// Login authenticates and, on success, persists the credential and profile.
// On failure the store returns to anonymous, records the display message, and
// re-raises the error: login is the one operation whose failure the caller
// reacts to directly.
func (s *Store) Login(ctx context.Context, p models.LoginPayload) (*models.LoginResponse, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.busy = true
	s.st = StateAuthenticating
	s.errMsg = ""
	c := s.api
	s.mu.Unlock()

	res, err := c.Login(ctx, p)
	if err != nil {
		s.mu.Lock()
		s.busy = false
		s.st = StateAnonymous
		s.errMsg = api.Message(err)
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.busy = false
	s.st = StateAuthenticated
	s.token = res.Token
	admin := res.Admin
	s.admin = &admin
	s.mu.Unlock()

	if err := s.persist(ctx, res.Token, &admin); err != nil {
		// the live session is intact, only restart survival is degraded
		s.log.Warn(ctx, "session persist failed", "error", err)
	}
	return res, nil
}

// Register creates a staff account. It does not transition session state:
// registration does not imply a login.
func (s *Store) Register(ctx context.Context, p models.RegisterPayload) (*models.RegisterResponse, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.busy = true
	s.errMsg = ""
	s.successMsg = ""
	c := s.api
	s.mu.Unlock()

	res, err := c.Register(ctx, p)

	s.mu.Lock()
	s.busy = false
	if err != nil {
		s.errMsg = api.Message(err)
	} else {
		s.successMsg = res.Message
	}
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return res, nil
}

// Logout signs out. The remote call is best-effort: local state and the
// persisted snapshot are cleared even when it fails. The returned string is a
// human message either way.
func (s *Store) Logout(ctx context.Context) string {
	s.mu.Lock()
	c := s.api
	s.mu.Unlock()

	msg, err := c.Logout(ctx)

	s.clear(ctx)

	if err != nil {
		failMsg := api.Message(err)
		s.mu.Lock()
		s.errMsg = failMsg
		s.mu.Unlock()
		return failMsg
	}
	if msg == "" {
		msg = "Logout successful"
	}
	return msg
}

// Token implements api.Credentials.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Invalidate implements api.Credentials: the gateway calls it once per
// authorization failure, before the failing call returns.
func (s *Store) Invalidate(ctx context.Context) {
	s.clear(ctx)
}

func (s *Store) clear(ctx context.Context) {
	s.mu.Lock()
	s.st = StateAnonymous
	s.token = ""
	s.admin = nil
	s.mu.Unlock()

	if err := s.repo(s.db).Clear(ctx); err != nil {
		s.log.Warn(ctx, "clearing persisted session failed", "error", err)
	}
}

func (s *Store) persist(ctx context.Context, token string, admin *models.AdminUser) error {
	profile, err := json.Marshal(admin)
	if err != nil {
		return err
	}
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, keyAccessToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyAdmin, profile)
	})
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st
}

// Admin returns a copy of the authenticated profile, or nil when anonymous.
func (s *Store) Admin() *models.AdminUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.admin == nil {
		return nil
	}
	admin := *s.admin
	return &admin
}

func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *Store) Success() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.successMsg
}

// tokenExpired reports whether token is a JWT with an exp claim in the past.
// The signature is not verified: this is a display-layer freshness check, the
// server remains the authority.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

var _ api.Credentials = (*Store)(nil)
