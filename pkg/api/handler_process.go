package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourmoment/yourmoment/pkg/models"
)

// createProcessHandler handles POST /api/v1/processes.
func (s *Server) createProcessHandler(c *gin.Context) {
	var req models.CreateProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.UserID = actingUser(c)

	process, err := s.processes.Create(c.Request.Context(), req)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.ProcessResponse{MonitoringProcess: process})
}

// listProcessesHandler handles GET /api/v1/processes.
func (s *Server) listProcessesHandler(c *gin.Context) {
	processes, err := s.processes.List(c.Request.Context(), actingUser(c))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	out := make([]models.ProcessResponse, 0, len(processes))
	for _, process := range processes {
		out = append(out, models.ProcessResponse{MonitoringProcess: process})
	}
	c.JSON(http.StatusOK, out)
}

// getProcessHandler handles GET /api/v1/processes/:id.
func (s *Server) getProcessHandler(c *gin.Context) {
	process, err := s.processes.Get(c.Request.Context(), actingUser(c), c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ProcessResponse{MonitoringProcess: process})
}

// updateProcessHandler handles PATCH /api/v1/processes/:id.
func (s *Server) updateProcessHandler(c *gin.Context) {
	var req models.UpdateProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	process, err := s.processes.Update(c.Request.Context(), actingUser(c), c.Param("id"), req)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ProcessResponse{MonitoringProcess: process})
}

// deleteProcessHandler handles DELETE /api/v1/processes/:id.
func (s *Server) deleteProcessHandler(c *gin.Context) {
	if err := s.processes.Delete(c.Request.Context(), actingUser(c), c.Param("id")); err != nil {
		abortServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// startProcessHandler handles POST /api/v1/processes/:id/start.
func (s *Server) startProcessHandler(c *gin.Context) {
	process, err := s.processes.Start(c.Request.Context(), actingUser(c), c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ProcessResponse{MonitoringProcess: process})
}

// stopProcessHandler handles POST /api/v1/processes/:id/stop.
func (s *Server) stopProcessHandler(c *gin.Context) {
	process, err := s.processes.Stop(c.Request.Context(), actingUser(c), c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ProcessResponse{MonitoringProcess: process})
}

// processStatusHandler handles GET /api/v1/processes/:id/status.
func (s *Server) processStatusHandler(c *gin.Context) {
	status, err := s.processes.Status(c.Request.Context(), actingUser(c), c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// pipelineCountsHandler handles GET /api/v1/processes/:id/pipeline-counts.
func (s *Server) pipelineCountsHandler(c *gin.Context) {
	counts, err := s.processes.PipelineCounts(c.Request.Context(), actingUser(c), c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}
