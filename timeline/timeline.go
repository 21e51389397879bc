// Package timeline keeps the ordered conversation log. Every mutation
// persists the full sequence before committing in memory, so callers
// always observe committed state or an unmodified store.
package timeline

import (
	"campus-chat/domain"
	apperrors "campus-chat/errors"
	"campus-chat/repositories"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Timeline struct {
	repo     repositories.MessageRepository
	log      *slog.Logger
	messages []domain.Message
}

// New restores the persisted sequence; a first run starts empty.
func New(repo repositories.MessageRepository, log *slog.Logger) (*Timeline, error) {
	messages, err := repo.LoadAll()
	if err != nil {
		return nil, err
	}
	return &Timeline{repo: repo, log: log, messages: messages}, nil
}

// Append records one message at the end of the log.
func (t *Timeline) Append(message domain.Message) error {
	next := append(t.snapshot(), message)
	return t.commit(next)
}

// Update rewrites a user message's content and refreshes its timestamp.
// The id and sender are immutable. Assistant messages are not editable.
func (t *Timeline) Update(id uuid.UUID, content string, at time.Time) (domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Message{}, apperrors.ErrEmptyContent
	}

	pos := t.indexOf(id)
	if pos < 0 {
		return domain.Message{}, apperrors.ErrNotFound
	}
	if !t.messages[pos].Editable() {
		return domain.Message{}, apperrors.ErrNotEditable
	}

	next := t.snapshot()
	next[pos].Content = content
	next[pos].At = at
	if err := t.commit(next); err != nil {
		return domain.Message{}, err
	}
	return t.messages[pos], nil
}

// Remove deletes exactly one message, leaving the relative order of the
// remainder unchanged.
func (t *Timeline) Remove(id uuid.UUID) error {
	pos := t.indexOf(id)
	if pos < 0 {
		return apperrors.ErrNotFound
	}

	snapshot := t.snapshot()
	next := append(snapshot[:pos], snapshot[pos+1:]...)
	return t.commit(next)
}

// List returns a copy of the ordered sequence.
func (t *Timeline) List() []domain.Message {
	return t.snapshot()
}

func (t *Timeline) Len() int {
	return len(t.messages)
}

// Get returns a message by id.
func (t *Timeline) Get(id uuid.UUID) (domain.Message, error) {
	pos := t.indexOf(id)
	if pos < 0 {
		return domain.Message{}, apperrors.ErrNotFound
	}
	return t.messages[pos], nil
}

func (t *Timeline) indexOf(id uuid.UUID) int {
	for i, message := range t.messages {
		if message.ID == id {
			return i
		}
	}
	return -1
}

func (t *Timeline) snapshot() []domain.Message {
	out := make([]domain.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// commit persists first, then swaps the in-memory sequence.
func (t *Timeline) commit(next []domain.Message) error {
	if err := t.repo.SaveAll(next); err != nil {
		return err
	}
	t.messages = next
	return nil
}
