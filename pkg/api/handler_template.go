package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourmoment/yourmoment/pkg/models"
)

// createTemplateHandler handles POST /api/v1/templates. Templates
// created through the API always belong to the acting user; system
// templates are seeded out of band.
func (s *Server) createTemplateHandler(c *gin.Context) {
	var req models.CreatePromptTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := actingUser(c)
	req.OwnerUserID = &userID

	tmpl, err := s.templates.Create(c.Request.Context(), req)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.PromptTemplateResponse{PromptTemplate: tmpl})
}

// listTemplatesHandler handles GET /api/v1/templates.
func (s *Server) listTemplatesHandler(c *gin.Context) {
	templates, err := s.templates.List(c.Request.Context(), actingUser(c))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	out := make([]models.PromptTemplateResponse, 0, len(templates))
	for _, tmpl := range templates {
		out = append(out, models.PromptTemplateResponse{PromptTemplate: tmpl})
	}
	c.JSON(http.StatusOK, out)
}

// getTemplateHandler handles GET /api/v1/templates/:id.
func (s *Server) getTemplateHandler(c *gin.Context) {
	tmpl, err := s.templates.Get(c.Request.Context(), actingUser(c), c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PromptTemplateResponse{PromptTemplate: tmpl})
}

// updateTemplateHandler handles PATCH /api/v1/templates/:id.
func (s *Server) updateTemplateHandler(c *gin.Context) {
	var req models.UpdatePromptTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tmpl, err := s.templates.Update(c.Request.Context(), actingUser(c), c.Param("id"), req)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PromptTemplateResponse{PromptTemplate: tmpl})
}

// deleteTemplateHandler handles DELETE /api/v1/templates/:id.
func (s *Server) deleteTemplateHandler(c *gin.Context) {
	if err := s.templates.Delete(c.Request.Context(), actingUser(c), c.Param("id")); err != nil {
		abortServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
