package user

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	byEmail map[string]*User
}

func newFakeRepo() *fakeRepo { return &fakeRepo{byEmail: map[string]*User{}} }

func (f *fakeRepo) CreateUser(_ context.Context, u *User) error {
	if _, exists := f.byEmail[u.Email]; exists {
		return ErrEmailTaken
	}
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (*User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeRepo) GetUserByID(_ context.Context, id string) (*User, error) {
	for _, u := range f.byEmail {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func TestRegisterUserHashesPassword(t *testing.T) {
	svc := NewService(newFakeRepo())

	u, err := svc.RegisterUser(context.Background(), "jo@example.com", "hunter2", "Jo")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2")))
}

func TestRegisterUserNormalizesEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	u, err := svc.RegisterUser(context.Background(), "  Jo@Example.COM ", "pw", "")
	require.NoError(t, err)
	assert.Equal(t, "jo@example.com", u.Email)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "jo@example.com", "first", "Jo")
	require.NoError(t, err)

	_, err = svc.RegisterUser(ctx, "jo@example.com", "second", "Impostor")
	require.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, repo.byEmail, 1, "no second row created")
}

func TestRegisterUserValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "", "pw", "")
	require.Error(t, err)

	_, err = svc.RegisterUser(ctx, "not-an-email", "pw", "")
	require.Error(t, err)

	_, err = svc.RegisterUser(ctx, "jo@example.com", "", "")
	require.Error(t, err)
}

func TestGetUser(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.RegisterUser(ctx, "jo@example.com", "pw", "Jo")
	require.NoError(t, err)

	got, err := svc.GetUser(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.Email, got.Email)

	_, err = svc.GetUser(ctx, "00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
}

func TestRegisterHandlerDuplicateEmailReturns400(t *testing.T) {
	router := chi.NewRouter()
	NewHandler(NewService(newFakeRepo())).RegisterRoutes(router)

	register := func() *httptest.ResponseRecorder {
		body := strings.NewReader(`{"email":"jo@example.com","password":"pw","name":"Jo"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusCreated, register().Code)

	rec := register()
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists")
}
