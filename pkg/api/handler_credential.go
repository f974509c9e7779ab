package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourmoment/yourmoment/pkg/models"
)

// createCredentialHandler handles POST /api/v1/credentials.
func (s *Server) createCredentialHandler(c *gin.Context) {
	var req models.CreateCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.UserID = actingUser(c)

	cred, err := s.credentials.Create(c.Request.Context(), req)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.CredentialResponse{UpstreamCredential: cred})
}

// listCredentialsHandler handles GET /api/v1/credentials.
func (s *Server) listCredentialsHandler(c *gin.Context) {
	creds, err := s.credentials.List(c.Request.Context(), actingUser(c))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	out := make([]models.CredentialResponse, 0, len(creds))
	for _, cred := range creds {
		out = append(out, models.CredentialResponse{UpstreamCredential: cred})
	}
	c.JSON(http.StatusOK, out)
}

// getCredentialHandler handles GET /api/v1/credentials/:id.
func (s *Server) getCredentialHandler(c *gin.Context) {
	cred, err := s.credentials.Get(c.Request.Context(), actingUser(c), c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CredentialResponse{UpstreamCredential: cred})
}

// updateCredentialHandler handles PATCH /api/v1/credentials/:id.
func (s *Server) updateCredentialHandler(c *gin.Context) {
	var req models.UpdateCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cred, err := s.credentials.Update(c.Request.Context(), actingUser(c), c.Param("id"), req)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CredentialResponse{UpstreamCredential: cred})
}

// deleteCredentialHandler handles DELETE /api/v1/credentials/:id.
func (s *Server) deleteCredentialHandler(c *gin.Context) {
	if err := s.credentials.Delete(c.Request.Context(), actingUser(c), c.Param("id")); err != nil {
		abortServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
