// Package transcript models the chat widget's side of a conversation: the
// ordered turns the user sees and the history sent to the relay with each
// new message.
package transcript

import (
	"errors"
	"fmt"
	"strings"

	"clickconnect-backend/internal/models"
)

type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

var ErrEmptyText = errors.New("turn text is empty")

// Turn is one committed utterance. It cannot change after construction.
type Turn struct {
	speaker Speaker
	text    string
}

// NewTurn rejects any speaker other than user or assistant and blank text.
func NewTurn(speaker Speaker, text string) (Turn, error) {
	switch speaker {
	case SpeakerUser, SpeakerAssistant:
	default:
		return Turn{}, fmt.Errorf("unknown speaker %q", speaker)
	}
	if strings.TrimSpace(text) == "" {
		return Turn{}, ErrEmptyText
	}
	return Turn{speaker: speaker, text: text}, nil
}

func (t Turn) Speaker() Speaker { return t.speaker }
func (t Turn) Text() string     { return t.text }

// role maps the speaker onto the generation API's vocabulary.
func (t Turn) role() string {
	if t.speaker == SpeakerAssistant {
		return models.RoleModel
	}
	return models.RoleUser
}

// DeriveHistory returns the wire history for the most recent turn: every
// turn before it, with any leading model turns removed because the
// generation API requires a history to open with a user turn.
func DeriveHistory(turns []Turn) []models.Content {
	if len(turns) <= 1 {
		return []models.Content{}
	}

	prior := turns[:len(turns)-1]
	start := 0
	for start < len(prior) && prior[start].speaker == SpeakerAssistant {
		start++
	}

	history := make([]models.Content, 0, len(prior)-start)
	for _, t := range prior[start:] {
		history = append(history, models.Content{
			Role:  t.role(),
			Parts: []models.Part{{Text: t.text}},
		})
	}
	return history
}
