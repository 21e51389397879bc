package chat

import (
	"github.com/google/uuid"
)

// SubmitCommand carries one raw user input into the engine.
type SubmitCommand struct {
	Content string `validate:"required,max=2000"`
}

// EditCommand rewrites the content of a user-authored message.
type EditCommand struct {
	ID      uuid.UUID `validate:"required"`
	Content string    `validate:"required,max=2000"`
}

// DeleteCommand removes one message from the timeline.
type DeleteCommand struct {
	ID uuid.UUID `validate:"required"`
}

// SearchCommand queries the history index, /find style.
type SearchCommand struct {
	Input string `validate:"required"`
}
