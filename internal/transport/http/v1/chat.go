package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akshajravi/Intervue/internal/domain"
)

// SendMessage sends a chat message and returns the AI response.
// POST /api/v1/chat/message
func (h *Handler) SendMessage(c echo.Context) error {
	var req domain.ChatMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Content == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "content is required"})
	}

	ctx := c.Request().Context()
	message := h.service.GenerateResponse(ctx, req.Content, req.SessionID, req.QuestionContext, req.CodeContext)

	return c.JSON(http.StatusOK, domain.ChatMessageResponse{
		Message:   message,
		SessionID: message.SessionID,
	})
}

// SendVoiceMessage processes a voice message and returns the AI response.
// POST /api/v1/chat/voice
func (h *Handler) SendVoiceMessage(c echo.Context) error {
	var req domain.VoiceMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.AudioData == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "audio_data is required"})
	}

	ctx := c.Request().Context()
	transcript, response := h.service.ProcessVoiceMessage(ctx, req.AudioData, req.SessionID)

	return c.JSON(http.StatusOK, domain.VoiceMessageResponse{
		TranscribedText: transcript,
		AIResponse:      response,
		SessionID:       response.SessionID,
	})
}

// GetConversationHistory retrieves the message history for a session.
// GET /api/v1/chat/conversation/:session_id
func (h *Handler) GetConversationHistory(c echo.Context) error {
	sessionID := c.Param("session_id")

	session, err := h.service.GetConversation(sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Conversation not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve conversation history"})
	}

	return c.JSON(http.StatusOK, domain.ConversationHistoryResponse{
		SessionID:    sessionID,
		Messages:     session.Messages,
		Context:      session.Context,
		MessageCount: len(session.Messages),
	})
}

// CreateSession creates a new conversation session.
// POST /api/v1/chat/session
func (h *Handler) CreateSession(c echo.Context) error {
	sessionID := h.service.CreateSession()
	return c.JSON(http.StatusOK, map[string]string{"session_id": sessionID})
}

// UpdateSessionContext applies a partial context update to a session.
// PUT /api/v1/chat/session/:session_id/context
func (h *Handler) UpdateSessionContext(c echo.Context) error {
	sessionID := c.Param("session_id")

	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := h.service.UpdateContext(sessionID, fields); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Session not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update context"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Context updated successfully"})
}
