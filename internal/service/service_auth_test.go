package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-staffing/internal/crypto"
	"github.com/MKhiriev/go-staffing/internal/logger"
	"github.com/MKhiriev/go-staffing/internal/mock"
	"github.com/MKhiriev/go-staffing/internal/store"
	"github.com/MKhiriev/go-staffing/models"
)

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	return NewAuthService(repo, hasher, logger.Nop()), repo, hasher
}

func TestAuthService_Authenticate_Admin(t *testing.T) {
	svc, repo, hasher := newTestAuthSvc(t)
	ctx := context.Background()
	id := uuid.New()

	repo.EXPECT().
		GetUser(ctx, models.UserFilter{Name: "admin"}).
		Return(models.User{ID: id, Name: "admin", Password: "salt$key", IsAdmin: true}, nil)
	hasher.EXPECT().Verify("secret", "salt$key").Return(true)

	principal, err := svc.Authenticate(ctx, models.Credentials{Name: "admin", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: id, Name: "admin", IsAdmin: true}, principal)
	assert.Empty(t, principal.Password)
}

func TestAuthService_Authenticate_UnknownUser(t *testing.T) {
	svc, repo, hasher := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetUser(ctx, gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	// the derivation runs even though there is nothing to compare against
	hasher.EXPECT().Verify("x", crypto.PlaceholderHash).Return(false)

	_, err := svc.Authenticate(ctx, models.Credentials{Name: "ghost", Password: "x"})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	svc, repo, hasher := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetUser(ctx, gomock.Any()).Return(models.User{Name: "admin", Password: "salt$key", IsAdmin: true}, nil)
	hasher.EXPECT().Verify("wrong", "salt$key").Return(false)

	_, err := svc.Authenticate(ctx, models.Credentials{Name: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.NotErrorIs(t, err, ErrForbidden)
}

func TestAuthService_Authenticate_UserWithoutPassword(t *testing.T) {
	svc, repo, hasher := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetUser(ctx, gomock.Any()).Return(models.User{Name: "admin", IsAdmin: true}, nil)
	hasher.EXPECT().Verify("", crypto.PlaceholderHash).Return(true)

	_, err := svc.Authenticate(ctx, models.Credentials{Name: "admin", Password: ""})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthService_Authenticate_NameMismatch(t *testing.T) {
	svc, repo, hasher := newTestAuthSvc(t)
	ctx := context.Background()

	// a collation-insensitive lookup must not authenticate a different spelling
	repo.EXPECT().GetUser(ctx, gomock.Any()).Return(models.User{Name: "Admin", Password: "salt$key", IsAdmin: true}, nil)
	hasher.EXPECT().Verify("secret", "salt$key").Return(true)

	_, err := svc.Authenticate(ctx, models.Credentials{Name: "admin", Password: "secret"})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthService_Authenticate_NonAdmin(t *testing.T) {
	svc, repo, hasher := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetUser(ctx, gomock.Any()).Return(models.User{Name: "bob", Password: "salt$key"}, nil)
	hasher.EXPECT().Verify("secret", "salt$key").Return(true)

	_, err := svc.Authenticate(ctx, models.Credentials{Name: "bob", Password: "secret"})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthService_Authenticate_StoreFailure(t *testing.T) {
	svc, repo, _ := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetUser(ctx, gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.Authenticate(ctx, models.Credentials{Name: "admin", Password: "secret"})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.False(t, errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrForbidden))
}
