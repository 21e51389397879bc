// Package services exposes the caller-facing surface of the engine.
// Commands are validated here, before anything reaches the timeline.
package services

import (
	"campus-chat/domain"
	"campus-chat/domain/chat"
	apperrors "campus-chat/errors"
	"campus-chat/runtime"
	"campus-chat/search"
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type IChatService interface {
	Submit(ctx context.Context, cmd chat.SubmitCommand) (domain.Message, domain.Message, error)
	EditUserMessage(cmd chat.EditCommand) (domain.Message, error)
	DeleteMessage(cmd chat.DeleteCommand) error
	History() []domain.Message
	Search(ctx context.Context, cmd chat.SearchCommand) ([]search.Hit, error)
	Theme() (string, error)
	SetTheme(theme string) error
}

type ChatService struct {
	orchestrator *runtime.Orchestrator
	validate     *validator.Validate
}

func NewChatService(o *runtime.Orchestrator) *ChatService {
	return &ChatService{orchestrator: o, validate: validator.New()}
}

func (s *ChatService) Submit(ctx context.Context, cmd chat.SubmitCommand) (domain.Message, domain.Message, error) {
	if strings.TrimSpace(cmd.Content) == "" {
		return domain.Message{}, domain.Message{}, apperrors.ErrEmptyContent
	}
	if err := s.validate.Struct(cmd); err != nil {
		return domain.Message{}, domain.Message{}, err
	}
	return s.orchestrator.Submit(ctx, cmd.Content)
}

func (s *ChatService) EditUserMessage(cmd chat.EditCommand) (domain.Message, error) {
	if strings.TrimSpace(cmd.Content) == "" {
		return domain.Message{}, apperrors.ErrEmptyContent
	}
	if err := s.validate.Struct(cmd); err != nil {
		return domain.Message{}, err
	}
	return s.orchestrator.EditUserMessage(cmd.ID, cmd.Content)
}

func (s *ChatService) DeleteMessage(cmd chat.DeleteCommand) error {
	if cmd.ID == uuid.Nil {
		return apperrors.ErrNotFound
	}
	return s.orchestrator.DeleteMessage(cmd.ID)
}

func (s *ChatService) History() []domain.Message {
	return s.orchestrator.History()
}

func (s *ChatService) Search(ctx context.Context, cmd chat.SearchCommand) ([]search.Hit, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, err
	}
	return s.orchestrator.SearchHistory(ctx, cmd.Input)
}

func (s *ChatService) Theme() (string, error) {
	return s.orchestrator.Theme()
}

func (s *ChatService) SetTheme(theme string) error {
	return s.orchestrator.SetTheme(theme)
}
