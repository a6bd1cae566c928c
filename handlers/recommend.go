package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internmatch/backend/agent"
	"github.com/internmatch/backend/models"
	"github.com/internmatch/backend/tools"
)

// RecommendHandler handles recommendation requests
type RecommendHandler struct {
	recommender *agent.Recommender
	registry    *tools.ToolRegistry
}

// NewRecommendHandler creates a new recommendation handler
func NewRecommendHandler(recommender *agent.Recommender, registry *tools.ToolRegistry) *RecommendHandler {
	return &RecommendHandler{
		recommender: recommender,
		registry:    registry,
	}
}

// Recommend ranks the catalog against a student profile
// @Summary Recommend internships
// @Description Score every catalog internship against the profile and return best_fit, growth and alternative buckets (max 10 each). When nothing fits, returns status "no_matches" with a learning path instead. Malformed profile fields are coerced, never rejected.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.UserProfile true "Student profile"
// @Success 200 {object} models.Buckets "Ranked recommendations"
// @Failure 400 {object} models.ErrorResponse "Body is not a JSON object"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /recommend [post]
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	result, err := h.recommender.Recommend(c.Request.Context(), &profile)
	if err != nil {
		log.Printf("[Handler] Recommendation error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to compute recommendations",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result.Body())
}

// GetTools returns available MCP tools
// @Summary List available tools
// @Description Get a list of all available MCP tools for AI agents
// @Tags Tools
// @Produce json
// @Success 200 {object} map[string]interface{} "List of tools"
// @Router /tools [get]
func (h *RecommendHandler) GetTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tools": h.registry.GetToolDefinitions(),
	})
}
