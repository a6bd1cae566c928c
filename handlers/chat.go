package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internmatch/backend/agent"
	"github.com/internmatch/backend/models"
)

// ChatHandler answers questions about a single internship
type ChatHandler struct {
	assistant *agent.Assistant
}

// NewChatHandler creates a new chat handler
func NewChatHandler(assistant *agent.Assistant) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

// Chat answers a question about one internship
// @Summary Ask about an internship
// @Description Answer a free-text question about one internship in the requested language. If the language model fails, a short templated summary is returned instead.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Chat request"
// @Success 200 {object} models.ChatResponse "Answer"
// @Failure 400 {object} models.ErrorResponse "internshipId and question are required"
// @Failure 404 {object} models.ErrorResponse "Internship not found"
// @Failure 503 {object} models.ErrorResponse "Chat assistant not configured"
// @Router /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "internshipId and question are required",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	answer, err := h.assistant.Ask(c.Request.Context(), req.InternshipID, req.Question, req.Language)
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrInternshipNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Internship not found",
				Code:  http.StatusNotFound,
			})
		case errors.Is(err, agent.ErrAssistantUnavailable):
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error: "Chat assistant is not configured",
				Code:  http.StatusServiceUnavailable,
			})
		default:
			log.Printf("[Handler] Chat error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "Failed to answer question",
				Code:    http.StatusInternalServerError,
				Details: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Answer: answer})
}
