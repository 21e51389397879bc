package repositories

import (
	"campus-chat/domain"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T) BadgerKV {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewBadgerKV(db)
}

func TestBadgerKV_GetSet(t *testing.T) {
	req := require.New(t)
	kv := newTestKV(t)

	value, err := kv.Get("missing")
	req.NoError(err)
	req.Nil(value, "absent key is no prior state, not an error")

	req.NoError(kv.Set("theme", "dark"))
	value, err = kv.Get("theme")
	req.NoError(err)
	req.NotNil(value)
	req.Equal("dark", *value)
}

func TestMessageRepository_RoundTrip(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(newTestKV(t), slog.Default())

	at := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	messages := []domain.Message{
		domain.NewMessage("hello", domain.SenderUser, at),
		domain.NewMessage("Hello! How can I help?", domain.SenderAssistant, at.Add(time.Second)),
		domain.NewMessage("list all bus routes", domain.SenderUser, at.Add(2*time.Second)),
	}
	req.NoError(repo.SaveAll(messages))

	loaded, err := repo.LoadAll()
	req.NoError(err)
	req.Equal(messages, loaded, "content and order preserved")
}

func TestMessageRepository_FirstRunIsEmpty(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(newTestKV(t), slog.Default())

	loaded, err := repo.LoadAll()
	req.NoError(err)
	req.Nil(loaded)
}

func TestMessageRepository_MalformedHistoryRecoversEmpty(t *testing.T) {
	req := require.New(t)
	kv := newTestKV(t)
	repo := NewMessageRepository(kv, slog.Default())

	req.NoError(kv.Set("chat:messages", "{not json"))

	loaded, err := repo.LoadAll()
	req.NoError(err, "malformed state is recovered, never propagated")
	req.Nil(loaded)
}

func TestPreferenceRepository(t *testing.T) {
	req := require.New(t)
	prefs := NewPreferenceRepository(newTestKV(t))

	name, err := prefs.Name()
	req.NoError(err)
	req.Empty(name)

	req.NoError(prefs.SaveName("Sam"))
	name, err = prefs.Name()
	req.NoError(err)
	req.Equal("Sam", name)

	req.NoError(prefs.SaveTheme("dark"))
	theme, err := prefs.Theme()
	req.NoError(err)
	req.Equal("dark", theme)
}
