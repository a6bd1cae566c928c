package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/internmatch/backend/agent"
	"github.com/internmatch/backend/models"
	"github.com/internmatch/backend/storage"
)

// InternshipHandler serves the catalog for browsing
type InternshipHandler struct {
	catalog agent.CatalogSource
}

// NewInternshipHandler creates a new catalog handler
func NewInternshipHandler(catalog agent.CatalogSource) *InternshipHandler {
	return &InternshipHandler{catalog: catalog}
}

// List returns catalog internships matching the query filters
// @Summary List internships
// @Description List catalog internships. Attribute filters are exact and case-insensitive; skills match by substring; q searches title, company, description, sector, location and skills.
// @Tags Internships
// @Produce json
// @Param education query string false "Education filter"
// @Param department query string false "Department filter"
// @Param sector query string false "Sector filter"
// @Param location query string false "Location filter"
// @Param skills query string false "Comma-separated skills"
// @Param q query string false "Free-text search"
// @Success 200 {object} models.InternshipListResponse "Internships"
// @Router /internships [get]
func (h *InternshipHandler) List(c *gin.Context) {
	filter := storage.Filter{
		Education:  c.Query("education"),
		Department: c.Query("department"),
		Sector:     c.Query("sector"),
		Location:   c.Query("location"),
		Query:      c.Query("q"),
	}
	if skills := c.Query("skills"); skills != "" {
		for _, s := range strings.Split(skills, ",") {
			if s = strings.TrimSpace(s); s != "" {
				filter.Skills = append(filter.Skills, s)
			}
		}
	}

	items := h.catalog.Snapshot().Filter(filter)
	c.JSON(http.StatusOK, models.InternshipListResponse{
		Internships: items,
		Total:       len(items),
	})
}

// Get returns one internship by id
// @Summary Get internship
// @Description Get a single catalog internship by id
// @Tags Internships
// @Produce json
// @Param id path string true "Internship id"
// @Success 200 {object} models.Internship "Internship"
// @Failure 404 {object} models.ErrorResponse "Internship not found"
// @Router /internships/{id} [get]
func (h *InternshipHandler) Get(c *gin.Context) {
	item, err := h.catalog.Snapshot().Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Internship not found",
			Code:  http.StatusNotFound,
		})
		return
	}
	c.JSON(http.StatusOK, item)
}
