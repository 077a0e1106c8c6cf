package publisher

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mention_launcher/internal/domain"
)

func TestNewLaunchEvent(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	launch := &domain.Launch{
		MentionID:    "1",
		AuthorID:     "42",
		TokenAddress: "0x1111111111111111111111111111111111111111",
		Name:         "Frog",
		Symbol:       "FROG",
		LaunchURL:    "https://tiny.one/frog",
	}

	ev := NewLaunchEvent(launch, now)

	_, err := uuid.Parse(ev.ID)
	require.NoError(t, err)
	assert.Equal(t, ActionLaunched, ev.Action)
	assert.Nil(t, ev.Migration)
	require.NotNil(t, ev.Launch)
	assert.Equal(t, "FROG", ev.Launch.Symbol)
	assert.Equal(t, time.UTC, ev.Timestamp.Location())
	assert.True(t, now.Equal(ev.Timestamp))
}

func TestNewMigrationEvent(t *testing.T) {
	now := time.Now()
	a := NewMigrationEvent(&domain.Migration{TokenAddress: "0xa", TxHash: "0xh"}, now)
	b := NewMigrationEvent(&domain.Migration{TokenAddress: "0xa", TxHash: "0xh"}, now)

	assert.Equal(t, ActionMigrated, a.Action)
	assert.Nil(t, a.Launch)
	assert.Equal(t, "0xh", a.Migration.TxHash)
	assert.NotEqual(t, a.ID, b.ID)
}
