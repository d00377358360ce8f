package service

import (
	"context"
	"testing"

	"github.com/oldsell/oldsell-backend/internal/model"
	"github.com/oldsell/oldsell-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatFixture(t *testing.T) (ChatService, uint64, uint64, func() int64) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	authSvc := NewAuthService(userRepo)
	ctx := context.Background()

	alice, err := authSvc.Register(ctx, "alice", "alice@x.com", "111", "pw")
	require.NoError(t, err)
	bob, err := authSvc.Register(ctx, "bob", "bob@x.com", "222", "pw")
	require.NoError(t, err)

	count := func() int64 {
		var n int64
		require.NoError(t, db.Model(&model.ChatMessage{}).Count(&n).Error)
		return n
	}
	return NewChatService(repository.NewChatRepository(db), userRepo), alice.ID, bob.ID, count
}

func TestSendAndConversationOrder(t *testing.T) {
	svc, alice, bob, _ := chatFixture(t)
	ctx := context.Background()

	for _, body := range []string{"hi", "is it available?", "yes it is"} {
		from, to := alice, bob
		if body == "yes it is" {
			from, to = bob, alice
		}
		_, err := svc.Send(ctx, from, to, body)
		require.NoError(t, err)
	}

	msgs, err := svc.Conversation(ctx, alice, bob)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "hi", msgs[0].Body)
	assert.Equal(t, "is it available?", msgs[1].Body)
	assert.Equal(t, "yes it is", msgs[2].Body)
	for i := 1; i < len(msgs); i++ {
		assert.False(t, msgs[i].CreatedAt.Before(msgs[i-1].CreatedAt))
	}
}

func TestConversationSymmetric(t *testing.T) {
	svc, alice, bob, _ := chatFixture(t)
	ctx := context.Background()

	_, err := svc.Send(ctx, alice, bob, "one")
	require.NoError(t, err)
	_, err = svc.Send(ctx, bob, alice, "two")
	require.NoError(t, err)

	ab, err := svc.Conversation(ctx, alice, bob)
	require.NoError(t, err)
	ba, err := svc.Conversation(ctx, bob, alice)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
}

func TestConversationExcludesThirdParties(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	authSvc := NewAuthService(userRepo)
	svc := NewChatService(repository.NewChatRepository(db), userRepo)
	ctx := context.Background()

	alice, err := authSvc.Register(ctx, "alice", "a@x.com", "1", "pw")
	require.NoError(t, err)
	bob, err := authSvc.Register(ctx, "bob", "b@x.com", "2", "pw")
	require.NoError(t, err)
	carol, err := authSvc.Register(ctx, "carol", "c@x.com", "3", "pw")
	require.NoError(t, err)

	_, err = svc.Send(ctx, alice.ID, bob.ID, "for bob")
	require.NoError(t, err)
	_, err = svc.Send(ctx, alice.ID, carol.ID, "for carol")
	require.NoError(t, err)

	msgs, err := svc.Conversation(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "for bob", msgs[0].Body)
}

func TestSendValidation(t *testing.T) {
	svc, alice, bob, count := chatFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		from uint64
		to   uint64
		body string
	}{
		{"empty body", alice, bob, ""},
		{"whitespace body", alice, bob, "   "},
		{"zero recipient", alice, 0, "hello"},
		{"unknown recipient", alice, 9999, "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Send(ctx, tt.from, tt.to, tt.body)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
	assert.Equal(t, int64(0), count(), "failed sends must not persist rows")
}
