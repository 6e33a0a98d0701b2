package auth

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/customcraft/customcraft-backend/internal/modules/user"
)

const testSecret = "test-secret"

type fakeUserRepo struct {
	byEmail map[string]*user.User
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u *user.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*user.User, error) {
	for _, u := range f.byEmail {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func repoWithUser(t *testing.T, email, password string) (*fakeUserRepo, *user.User) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	u := &user.User{ID: uuid.New(), Email: email, PasswordHash: string(hash), Name: "Jo"}
	return &fakeUserRepo{byEmail: map[string]*user.User{email: u}}, u
}

func TestLoginUnknownUser(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*user.User{}}
	svc := NewService(repo, testSecret)

	token, _, err := svc.Login(context.Background(), "ghost@example.com", "pw")
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, token)
}

func TestLoginWrongPasswordIssuesNoToken(t *testing.T) {
	repo, _ := repoWithUser(t, "jo@example.com", "correct")
	svc := NewService(repo, testSecret)

	token, u, err := svc.Login(context.Background(), "jo@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
	assert.Nil(t, u)
}

func TestLoginSuccessTokenAuthorizesRequests(t *testing.T) {
	repo, registered := repoWithUser(t, "jo@example.com", "correct")
	svc := NewService(repo, testSecret)

	token, u, err := svc.Login(context.Background(), "jo@example.com", "correct")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, registered.ID, u.ID)

	// The issued token passes the middleware and carries the user id,
	// which is what order creation keys on.
	var gotUserID string
	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(Middleware(testSecret))
		r.Post("/api/orders", func(w http.ResponseWriter, r *http.Request) {
			gotUserID, _ = UserID(r.Context())
			w.WriteHeader(http.StatusCreated)
		})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, registered.ID.String(), gotUserID)
}

func TestMiddlewareRejectsMissingAndBadTokens(t *testing.T) {
	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(Middleware(testSecret))
		r.Get("/protected", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "no header")

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code, "malformed token")

	// A token signed with a different secret is rejected.
	repo, _ := repoWithUser(t, "jo@example.com", "pw")
	otherSvc := NewService(repo, "other-secret")
	token, _, err := otherSvc.Login(context.Background(), "jo@example.com", "pw")
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code, "wrong signing secret")
}
