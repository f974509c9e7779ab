package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourmoment/yourmoment/pkg/models"
)

// createProviderHandler handles POST /api/v1/providers.
func (s *Server) createProviderHandler(c *gin.Context) {
	var req models.CreateLLMProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.UserID = actingUser(c)

	provider, err := s.providers.Create(c.Request.Context(), req)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.LLMProviderResponse{LLMProviderConfig: provider})
}

// listProvidersHandler handles GET /api/v1/providers.
func (s *Server) listProvidersHandler(c *gin.Context) {
	providers, err := s.providers.List(c.Request.Context(), actingUser(c))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	out := make([]models.LLMProviderResponse, 0, len(providers))
	for _, provider := range providers {
		out = append(out, models.LLMProviderResponse{LLMProviderConfig: provider})
	}
	c.JSON(http.StatusOK, out)
}

// getProviderHandler handles GET /api/v1/providers/:id.
func (s *Server) getProviderHandler(c *gin.Context) {
	provider, err := s.providers.Get(c.Request.Context(), actingUser(c), c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.LLMProviderResponse{LLMProviderConfig: provider})
}

// updateProviderHandler handles PATCH /api/v1/providers/:id.
func (s *Server) updateProviderHandler(c *gin.Context) {
	var req models.UpdateLLMProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	provider, err := s.providers.Update(c.Request.Context(), actingUser(c), c.Param("id"), req)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.LLMProviderResponse{LLMProviderConfig: provider})
}

// deleteProviderHandler handles DELETE /api/v1/providers/:id.
func (s *Server) deleteProviderHandler(c *gin.Context) {
	if err := s.providers.Delete(c.Request.Context(), actingUser(c), c.Param("id")); err != nil {
		abortServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
