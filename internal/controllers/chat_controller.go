package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/dtos"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/services"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

// ChatController answers with the chat endpoint's own {error, details}
// envelope rather than the standard error body.
type ChatController struct {
	chatService *services.ChatService
}

func NewChatController(s *services.ChatService) *ChatController {
	return &ChatController{chatService: s}
}

// POST /api/chat
func (c *ChatController) ChatHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondChatError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	reply, err := c.chatService.Reply(r.Context(), req.Message, req.ConversationHistory)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, dtos.ChatResponse{Response: reply, Success: true})
	case errors.Is(err, utils.ErrChatMessageRequired):
		respondChatError(w, http.StatusBadRequest, "Message is required", "")
	case errors.Is(err, utils.ErrChatNotConfigured):
		utils.Logger.Error("chat relay called without GROK_API_KEY")
		respondChatError(w, http.StatusInternalServerError, "Grok API key not configured", "")
	default:
		utils.Logger.WithError(err).Error("chat relay upstream failure")
		respondChatError(w, http.StatusInternalServerError, "Failed to get response from Grok", err.Error())
	}
}

func respondChatError(w http.ResponseWriter, status int, msg, details string) {
	utils.RespondWithJSON(w, status, dtos.ChatErrorResponse{Error: msg, Details: details})
}
