package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"clickconnect-backend/internal/models"
)

// ErrEmptyReply is returned when Gemini answers without any text, usually
// because the candidate was blocked by a safety filter.
var ErrEmptyReply = errors.New("gemini returned empty text")

// GenerateRequest is everything one chat turn needs from the model.
type GenerateRequest struct {
	SystemInstruction string
	History           []models.Content
	Message           string
	Temperature       float32
	MaxOutputTokens   int
}

type GeminiService struct {
	apiKey    string
	modelName string
	timeout   time.Duration
	opts      []option.ClientOption
	newClient func(ctx context.Context, opts ...option.ClientOption) (*genai.Client, error)

	mu     sync.Mutex
	client *genai.Client
	models map[string]*genai.GenerativeModel // keyed by generation settings
}

// NewGeminiService does not dial anything. The client is created on the
// first Generate call and reused by every request after that. Extra
// options (endpoint, HTTP client) are applied after the API key.
func NewGeminiService(apiKey, modelName string, timeout time.Duration, opts ...option.ClientOption) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
		timeout:   timeout,
		opts:      opts,
		newClient: genai.NewClient,
		models:    make(map[string]*genai.GenerativeModel),
	}
}

func (s *GeminiService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		s.client.Close()
		s.client = nil
		s.models = make(map[string]*genai.GenerativeModel)
	}
}

// model returns the shared model handle for the given settings, building
// the client on first use. A failed construction is not remembered.
func (s *GeminiService) model(req GenerateRequest) (*genai.GenerativeModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		// The client outlives the request that happens to create it.
		opts := append([]option.ClientOption{option.WithAPIKey(s.apiKey)}, s.opts...)
		client, err := s.newClient(context.Background(), opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.client = client
		log.Printf("✓ Gemini client initialized (%s)", s.modelName)
	}

	key := fmt.Sprintf("%g|%d|%s", req.Temperature, req.MaxOutputTokens, req.SystemInstruction)
	if m, ok := s.models[key]; ok {
		return m, nil
	}

	m := s.client.GenerativeModel(s.modelName)
	m.SetTemperature(req.Temperature)
	if req.MaxOutputTokens > 0 {
		m.SetMaxOutputTokens(int32(min(req.MaxOutputTokens, math.MaxInt32)))
	}
	if req.SystemInstruction != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.SystemInstruction)}}
	}
	s.models[key] = m
	return m, nil
}

// Generate starts a chat seeded with req.History and sends req.Message as
// the newest turn. The model handle is never mutated after construction,
// so concurrent calls only share read-only state.
func (s *GeminiService) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	model, err := s.model(req)
	if err != nil {
		return "", err
	}

	cs := model.StartChat()
	cs.History = toGenaiHistory(req.History)

	resp, err := cs.SendMessage(ctx, genai.Text(req.Message))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	for i, cand := range resp.Candidates {
		if cand.FinishReason != genai.FinishReasonStop {
			log.Printf("WARNING: Gemini candidate %d stopped due to %s", i, cand.FinishReason)
		}
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}

// toGenaiHistory converts wire history into SDK contents. Roles are passed
// through untouched; Gemini itself rejects an invalid turn order.
func toGenaiHistory(history []models.Content) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, h := range history {
		parts := make([]genai.Part, 0, len(h.Parts))
		for _, p := range h.Parts {
			parts = append(parts, genai.Text(p.Text))
		}
		out = append(out, &genai.Content{Role: h.Role, Parts: parts})
	}
	return out
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
