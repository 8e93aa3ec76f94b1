package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"clickconnect-backend/internal/models"
	"clickconnect-backend/internal/services"
)

const (
	msgNoMessage   = "Nenhuma mensagem recebida."
	msgBadRequest  = "Requisição inválida."
	msgServerError = "Ocorreu um erro no servidor ao tentar processar sua mensagem."

	// maxChatBodyBytes bounds message plus resent history.
	maxChatBodyBytes = 1 << 20
)

// generator is the text-generation capability behind the chat relay.
type generator interface {
	Generate(ctx context.Context, req services.GenerateRequest) (string, error)
}

// GenerationSettings are passed to the model unchanged on every request.
type GenerationSettings struct {
	Temperature     float32
	MaxOutputTokens int
}

type ChatHandler struct {
	generator         generator
	systemInstruction string
	settings          GenerationSettings
}

// NewChatHandler takes the grounding instruction already rendered from the
// catalog; it is reused as-is for every request.
func NewChatHandler(gen generator, systemInstruction string, settings GenerationSettings) *ChatHandler {
	return &ChatHandler{
		generator:         gen,
		systemInstruction: systemInstruction,
		settings:          settings,
	}
}

func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxChatBodyBytes)

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp(msgBadRequest))
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp(msgNoMessage))
		return
	}

	history := req.History
	if history == nil {
		history = []models.Content{}
	}

	reply, err := h.generator.Generate(r.Context(), services.GenerateRequest{
		SystemInstruction: h.systemInstruction,
		History:           history,
		Message:           req.Message,
		Temperature:       h.settings.Temperature,
		MaxOutputTokens:   h.settings.MaxOutputTokens,
	})
	if err != nil {
		log.Printf("✗ chat request %s failed: %v", requestID(r), err)
		writeJSON(w, http.StatusInternalServerError, errorResp(msgServerError))
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Response: reply})
}
