// Package repositories persists the assistant's state through a
// generic key-value collaborator backed by BadgerDB. Three logical
// keys: the serialized message sequence, the captured user name, and
// the opaque theme preference.
package repositories

import (
	"campus-chat/domain"
	"encoding/json"
	"fmt"
	"log/slog"
)

const (
	keyMessages = "chat:messages"
	keyName     = "chat:name"
	keyTheme    = "chat:theme"
)

type MessageRepository struct {
	kv  KV
	log *slog.Logger
}

func NewMessageRepository(kv KV, log *slog.Logger) MessageRepository {
	return MessageRepository{kv: kv, log: log}
}

// LoadAll returns the persisted ordered sequence. An absent key means a
// first run; a malformed payload is recovered as empty history rather
// than propagated.
func (r MessageRepository) LoadAll() ([]domain.Message, error) {
	raw, err := r.kv.Get(keyMessages)
	if err != nil {
		return nil, fmt.Errorf("loading messages: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var messages []domain.Message
	if err := json.Unmarshal([]byte(*raw), &messages); err != nil {
		r.log.Warn("Persisted history is malformed, starting empty", "error", err)
		return nil, nil
	}
	return messages, nil
}

// SaveAll persists the full ordered sequence as one JSON array.
func (r MessageRepository) SaveAll(messages []domain.Message) error {
	if messages == nil {
		messages = []domain.Message{}
	}
	bytes, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("encoding messages: %w", err)
	}
	if err := r.kv.Set(keyMessages, string(bytes)); err != nil {
		return fmt.Errorf("saving messages: %w", err)
	}
	return nil
}

// PreferenceRepository stores the captured name and the theme
// preference. The theme is opaque to the engine.
type PreferenceRepository struct {
	kv KV
}

func NewPreferenceRepository(kv KV) PreferenceRepository {
	return PreferenceRepository{kv: kv}
}

func (r PreferenceRepository) Name() (string, error) {
	raw, err := r.kv.Get(keyName)
	if err != nil {
		return "", fmt.Errorf("loading name: %w", err)
	}
	if raw == nil {
		return "", nil
	}
	return *raw, nil
}

func (r PreferenceRepository) SaveName(name string) error {
	return r.kv.Set(keyName, name)
}

func (r PreferenceRepository) Theme() (string, error) {
	raw, err := r.kv.Get(keyTheme)
	if err != nil {
		return "", fmt.Errorf("loading theme: %w", err)
	}
	if raw == nil {
		return "", nil
	}
	return *raw, nil
}

func (r PreferenceRepository) SaveTheme(theme string) error {
	return r.kv.Set(keyTheme, theme)
}
