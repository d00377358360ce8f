package service

import (
	"context"
	"testing"

	"github.com/oldsell/oldsell-backend/internal/model"
	"github.com/oldsell/oldsell-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "alice@x.com", "111", "secretpw")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secretpw", user.PasswordHash)
	assert.False(t, user.IsAdmin)

	// Any of the three identity fields works as the login identifier.
	for _, identifier := range []string{"alice", "alice@x.com", "111"} {
		got, err := svc.Login(ctx, identifier, "secretpw")
		require.NoError(t, err, "identifier %q", identifier)
		assert.Equal(t, user.ID, got.ID)
	}
}

func TestRegisterDuplicateIdentity(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@x.com", "111", "pw")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		email    string
		phone    string
	}{
		{"same username", "alice", "other@x.com", "222"},
		{"same email", "bob", "alice@x.com", "222"},
		{"same phone", "bob", "other@x.com", "111"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.username, tt.email, tt.phone, "pw")
			assert.ErrorIs(t, err, ErrDuplicateIdentity)
		})
	}
}

func TestRegisterDuplicateMakesNoStateChange(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@x.com", "111", "pw")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "bob", "alice@x.com", "222", "pw")
	require.ErrorIs(t, err, ErrDuplicateIdentity)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("email = ?", "alice@x.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.Register(context.Background(), "", "a@x.com", "1", "pw")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@x.com", "111", "rightpw")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "wrongpw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "rightpw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUserNotFound(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.GetUser(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
