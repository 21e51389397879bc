// Package runtime ties the engine together: it records messages,
// consults the onboarding machine, runs the classifier and the matching
// generator, and keeps the timeline and the search index in step. It is
// the only ordering authority; generators hold no state of their own.
package runtime

import (
	"campus-chat/classifier"
	"campus-chat/domain"
	apperrors "campus-chat/errors"
	"campus-chat/onboarding"
	"campus-chat/reply"
	"campus-chat/repositories"
	"campus-chat/search"
	"campus-chat/timeline"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
)

type Orchestrator struct {
	// One active mutation at a time preserves the append-then-persist
	// invariant when the engine is exposed to concurrent callers.
	mu sync.Mutex

	log           *slog.Logger
	timeline      *timeline.Timeline
	prefs         repositories.PreferenceRepository
	classifier    *classifier.Classifier
	generator     *reply.Generator
	onboarding    *onboarding.Machine
	index         *search.Index
	assistantName string
	replyDelay    time.Duration
	now           func() time.Time
}

func NewOrchestrator(
	log *slog.Logger,
	tl *timeline.Timeline,
	prefs repositories.PreferenceRepository,
	c *classifier.Classifier,
	g *reply.Generator,
	machine *onboarding.Machine,
	index *search.Index,
	assistantName string,
	replyDelay time.Duration,
) *Orchestrator {
	return &Orchestrator{
		log:           log,
		timeline:      tl,
		prefs:         prefs,
		classifier:    c,
		generator:     g,
		onboarding:    machine,
		index:         index,
		assistantName: assistantName,
		replyDelay:    replyDelay,
		now:           time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

// Start seeds the opening assistant message on a first run: the name
// prompt for a fresh session, the plain welcome when a name was
// restored.
func (o *Orchestrator) Start() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.timeline.Len() > 0 {
		return nil
	}

	text := o.welcomeText()
	if !o.onboarding.Ready() {
		text = fmt.Sprintf("Hello! I'm %s, your AI assistant. 🎓 Before we start, what's your name?", o.assistantName)
	}
	return o.appendAssistant(text)
}

// Submit records one user input and produces the assistant's reply.
// Empty or whitespace-only input mutates nothing.
func (o *Orchestrator) Submit(ctx context.Context, text string) (domain.Message, domain.Message, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return domain.Message{}, domain.Message{}, apperrors.ErrEmptyContent
	}

	userMessage := domain.NewMessage(trimmed, domain.SenderUser, o.now())
	if err := o.timeline.Append(userMessage); err != nil {
		return domain.Message{}, domain.Message{}, err
	}
	o.indexPut(userMessage)

	replyText := o.onboardingReply(trimmed)
	if replyText == "" {
		normalized := classifier.Normalize(trimmed)
		category := o.classifier.Classify(normalized)
		replyText = o.generator.Reply(category, normalized, o.now())

		info := whatlanggo.Detect(trimmed)
		o.log.Info("Classified input",
			"category", category,
			"lang", info.Lang.Iso6391(),
			"message_id", userMessage.ID)
	}

	// Simulated thinking latency. Once the reply is scheduled it is
	// always produced: cancellation must not strand a user message
	// without its answer.
	if o.replyDelay > 0 {
		time.Sleep(o.replyDelay)
	}

	assistantMessage := domain.NewMessage(replyText, domain.SenderAssistant, o.now())
	if err := o.timeline.Append(assistantMessage); err != nil {
		return userMessage, domain.Message{}, err
	}
	o.indexPut(assistantMessage)
	return userMessage, assistantMessage, nil
}

// onboardingReply consumes the one name-candidate message. It returns
// the acknowledgement text on acceptance, empty otherwise.
func (o *Orchestrator) onboardingReply(input string) string {
	if o.onboarding.Ready() {
		return ""
	}
	name, captured := o.onboarding.Capture(input)
	if !captured {
		return ""
	}
	if err := o.prefs.SaveName(name); err != nil {
		o.log.Error("Persisting captured name failed", "error", err)
	}
	return fmt.Sprintf("Nice to meet you, %s! 🎓 I'm %s. %s", name, o.assistantName, welcomeCapabilities)
}

// EditUserMessage rewrites a user message. Id and sender are immutable;
// assistant messages are rejected.
func (o *Orchestrator) EditUserMessage(id uuid.UUID, text string) (domain.Message, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	updated, err := o.timeline.Update(id, text, o.now())
	if err != nil {
		return domain.Message{}, err
	}
	o.indexPut(updated)
	return updated, nil
}

// DeleteMessage removes one message from the timeline and the index.
func (o *Orchestrator) DeleteMessage(id uuid.UUID) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.timeline.Remove(id); err != nil {
		return err
	}
	if o.index != nil {
		if err := o.index.Delete(id); err != nil {
			o.log.Warn("Search index delete failed", "error", err)
		}
	}
	return nil
}

// History returns the ordered message sequence.
func (o *Orchestrator) History() []domain.Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.timeline.List()
}

// SearchHistory runs a /find query against the message index.
func (o *Orchestrator) SearchHistory(ctx context.Context, input string) ([]search.Hit, error) {
	if o.index == nil {
		return nil, nil
	}
	return o.index.Search(ctx, search.NewQuery(input))
}

// Theme passthrough; the preference is opaque to the engine.
func (o *Orchestrator) Theme() (string, error) {
	return o.prefs.Theme()
}

func (o *Orchestrator) SetTheme(theme string) error {
	return o.prefs.SaveTheme(theme)
}

func (o *Orchestrator) appendAssistant(text string) error {
	message := domain.NewMessage(text, domain.SenderAssistant, o.now())
	if err := o.timeline.Append(message); err != nil {
		return err
	}
	o.indexPut(message)
	return nil
}

// indexPut keeps the search index best-effort: a failed index write is
// logged, never surfaced, since the timeline stays the source of truth.
func (o *Orchestrator) indexPut(message domain.Message) {
	if o.index == nil {
		return
	}
	if err := o.index.Put(message); err != nil {
		o.log.Warn("Search index update failed", "error", err)
	}
}

const welcomeCapabilities = "I can help you with:\n• Information about Takshashila University\n• Shuttle routes, stops, and pickup times\n• Student clubs and their rooms\n• Math calculations and general questions\n\nFeel free to ask me anything! What would you like to know?"

func (o *Orchestrator) welcomeText() string {
	return fmt.Sprintf("Hello! I'm %s, your AI assistant. I'm here to help you with anything you need! 🎓\n\n%s", o.assistantName, welcomeCapabilities)
}
