package transcript

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"clickconnect-backend/internal/models"
)

const (
	// Greeting opens every fresh conversation. It is never sent as history.
	Greeting = "Olá! Sou o assistente da Click & Connect. Como posso ajudar?"

	// FallbackReply is shown when the relay cannot be reached or fails.
	FallbackReply = "Desculpe, não consegui me conectar. Tente novamente."
)

var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrSendInProgress = errors.New("a message is already being sent")
)

type State int

const (
	StateIdle State = iota
	StateSending
)

func (s State) String() string {
	if s == StateSending {
		return "sending"
	}
	return "idle"
}

// Relay delivers a message plus history and returns the assistant's reply.
type Relay interface {
	Chat(ctx context.Context, req models.ChatRequest) (string, error)
}

// Store owns one session's conversation. Turns are only ever appended.
type Store struct {
	relay Relay

	mu    sync.Mutex
	turns []Turn
	state State
}

// NewStore starts a conversation with the assistant greeting as its first
// turn. An empty greeting starts with no turns at all.
func NewStore(relay Relay, greeting string) *Store {
	s := &Store{relay: relay}
	if t, err := NewTurn(SpeakerAssistant, greeting); err == nil {
		s.turns = append(s.turns, t)
	}
	return s
}

// AppendUserTurn adds the trimmed text as a user turn. Blank text is
// ignored and reported with ok == false.
func (s *Store) AppendUserTurn(text string) (snapshot []Turn, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := NewTurn(SpeakerUser, strings.TrimSpace(text))
	if err != nil {
		return s.snapshotLocked(), false
	}
	s.turns = append(s.turns, t)
	return s.snapshotLocked(), true
}

// AppendAssistantTurn adds a reply from the relay, or the fallback apology.
// Blank text is replaced by the fallback so no empty turn is committed.
func (s *Store) AppendAssistantTurn(text string) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendAssistantLocked(text)
	return s.snapshotLocked()
}

func (s *Store) appendAssistantLocked(text string) Turn {
	t, err := NewTurn(SpeakerAssistant, text)
	if err != nil {
		t = Turn{speaker: SpeakerAssistant, text: FallbackReply}
	}
	s.turns = append(s.turns, t)
	return t
}

// Turns returns a copy of the conversation in chronological order.
func (s *Store) Turns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Send runs one round trip: append the user turn, relay it with the prior
// history, append the reply. On relay failure the fallback turn is appended
// and returned together with the error; the user turn stays in place.
func (s *Store) Send(ctx context.Context, text string) (Turn, error) {
	s.mu.Lock()
	if s.state == StateSending {
		s.mu.Unlock()
		return Turn{}, ErrSendInProgress
	}
	userTurn, err := NewTurn(SpeakerUser, strings.TrimSpace(text))
	if err != nil {
		s.mu.Unlock()
		return Turn{}, ErrEmptyMessage
	}
	s.turns = append(s.turns, userTurn)
	snapshot := s.snapshotLocked()
	s.state = StateSending
	s.mu.Unlock()

	req := models.ChatRequest{
		Message: userTurn.Text(),
		History: DeriveHistory(snapshot),
	}

	reply, err := s.relay.Chat(ctx, req)
	if err != nil {
		log.Printf("Erro ao enviar mensagem: %v", err)
		reply = FallbackReply
	}

	s.mu.Lock()
	botTurn := s.appendAssistantLocked(reply)
	s.state = StateIdle
	s.mu.Unlock()

	return botTurn, err
}

func (s *Store) snapshotLocked() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}
