package services

import (
	"campus-chat/classifier"
	"campus-chat/domain/chat"
	apperrors "campus-chat/errors"
	"campus-chat/knowledge"
	"campus-chat/onboarding"
	"campus-chat/reply"
	"campus-chat/repositories"
	"campus-chat/runtime"
	"campus-chat/timeline"
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *ChatService {
	t.Helper()
	req := require.New(t)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	kv := repositories.NewBadgerKV(db)
	kb := knowledge.Load()
	c, err := classifier.New(kb)
	req.NoError(err)

	tl, err := timeline.New(repositories.NewMessageRepository(kv, slog.Default()), slog.Default())
	req.NoError(err)

	o := runtime.NewOrchestrator(
		slog.Default(), tl,
		repositories.NewPreferenceRepository(kv),
		c, reply.NewGenerator(kb, "Gopal", rand.New(rand.NewSource(1))),
		onboarding.New("Priya"),
		nil, // search index disabled
		"Gopal", 0,
	)
	return NewChatService(o)
}

func TestChatService_SubmitRoundTrip(t *testing.T) {
	req := require.New(t)
	s := newTestService(t)

	user, assistant, err := s.Submit(context.Background(), chat.SubmitCommand{Content: "20 percent of 50"})
	req.NoError(err)
	req.Equal("20 percent of 50", user.Content)
	req.Equal("20% of 50 is 10!", assistant.Content)
	req.Len(s.History(), 2)
}

func TestChatService_ValidationBeforeMutation(t *testing.T) {
	req := require.New(t)
	s := newTestService(t)

	_, _, err := s.Submit(context.Background(), chat.SubmitCommand{Content: "   "})
	req.ErrorIs(err, apperrors.ErrEmptyContent)
	req.Empty(s.History())

	_, _, err = s.Submit(context.Background(), chat.SubmitCommand{Content: strings.Repeat("a", 2001)})
	req.Error(err, "overlong content fails struct validation")
	req.Empty(s.History())

	_, err = s.EditUserMessage(chat.EditCommand{ID: uuid.New(), Content: ""})
	req.ErrorIs(err, apperrors.ErrEmptyContent)
}

func TestChatService_DeleteNilID(t *testing.T) {
	req := require.New(t)
	s := newTestService(t)
	req.ErrorIs(s.DeleteMessage(chat.DeleteCommand{}), apperrors.ErrNotFound)
}

func TestChatService_SearchDisabledIndex(t *testing.T) {
	req := require.New(t)
	s := newTestService(t)

	hits, err := s.Search(context.Background(), chat.SearchCommand{Input: "/find anything"})
	req.NoError(err)
	req.Nil(hits)
}
