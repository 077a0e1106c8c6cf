package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"mention_launcher/internal/config"
	"mention_launcher/internal/domain"
	"mention_launcher/internal/service/mocks"
)

func newTestValidator(t *testing.T, transport Transport, now time.Time) *Validator {
	t.Helper()
	v := NewValidator(transport, config.SecurityConfig{
		MinAccountAge:   30 * 24 * time.Hour,
		MinFollowers:    30,
		BlockedKeywords: []string{" Rug ", "SCAM", ""},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	v.now = func() time.Time { return now }
	return v
}

func TestValidator_Validate(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	old := now.AddDate(-1, 0, 0)

	tests := []struct {
		name   string
		author domain.User
		text   string
		want   Rejection
	}{
		{
			name:   "passes",
			author: domain.User{ID: "u1", CreatedAt: old, FollowersCount: 30},
			text:   "@bot launch a frog",
		},
		{
			name:   "account exactly at minimum age",
			author: domain.User{ID: "u1", CreatedAt: now.Add(-30 * 24 * time.Hour), FollowersCount: 100},
			text:   "frog",
		},
		{
			name:   "account too new",
			author: domain.User{ID: "u1", CreatedAt: now.Add(-29 * 24 * time.Hour), FollowersCount: 100},
			text:   "frog",
			want:   RejectAccountTooNew,
		},
		{
			name:   "too few followers",
			author: domain.User{ID: "u1", CreatedAt: old, FollowersCount: 29},
			text:   "frog",
			want:   RejectTooFewFollowers,
		},
		{
			name:   "age checked before followers",
			author: domain.User{ID: "u1", CreatedAt: now, FollowersCount: 0},
			text:   "frog",
			want:   RejectAccountTooNew,
		},
		{
			name:   "blocked keyword case insensitive",
			author: domain.User{ID: "u1", CreatedAt: old, FollowersCount: 100},
			text:   "totally not a sCaM coin",
			want:   RejectBlockedKeyword,
		},
		{
			name:   "keyword as substring",
			author: domain.User{ID: "u1", CreatedAt: old, FollowersCount: 100},
			text:   "the rugpull token",
			want:   RejectBlockedKeyword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestValidator(t, nil, now)
			author := tt.author
			m := domain.MentionWithContext{
				Mention: domain.Mention{ID: "1", AuthorID: author.ID, Text: tt.text},
				Author:  &author,
			}

			got, err := v.Validate(context.Background(), m)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidator_LooksUpMissingAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	v := newTestValidator(t, transport, now)
	ctx := context.Background()

	transport.EXPECT().GetUser(ctx, "u1").Return(&domain.User{ID: "u1", CreatedAt: now.AddDate(-1, 0, 0), FollowersCount: 5}, nil)

	got, err := v.Validate(ctx, domain.MentionWithContext{Mention: domain.Mention{ID: "1", AuthorID: "u1"}})

	require.NoError(t, err)
	assert.Equal(t, RejectTooFewFollowers, got)
}

func TestValidator_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	v := newTestValidator(t, transport, time.Now())
	ctx := context.Background()

	transport.EXPECT().GetUser(ctx, "u1").Return(nil, errors.New("not found"))

	_, err := v.Validate(ctx, domain.MentionWithContext{Mention: domain.Mention{ID: "1", AuthorID: "u1"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "get user u1")
}
