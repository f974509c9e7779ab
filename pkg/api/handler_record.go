package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourmoment/yourmoment/pkg/models"
)

// listRecordsHandler handles GET /api/v1/records.
func (s *Server) listRecordsHandler(c *gin.Context) {
	var filter models.ListRecordsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, err := s.records.List(c.Request.Context(), actingUser(c), filter)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	out := make([]models.WorkRecordResponse, 0, len(records))
	for _, record := range records {
		out = append(out, models.WorkRecordResponse{WorkRecord: record})
	}
	c.JSON(http.StatusOK, out)
}

// getRecordHandler handles GET /api/v1/records/:id.
func (s *Server) getRecordHandler(c *gin.Context) {
	record, err := s.records.Get(c.Request.Context(), actingUser(c), c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.WorkRecordResponse{WorkRecord: record})
}

// retryRecordHandler handles POST /api/v1/records/:id/retry. A failed
// record re-enters the pipeline at the furthest stage its stored data
// supports.
func (s *Server) retryRecordHandler(c *gin.Context) {
	record, err := s.records.Retry(c.Request.Context(), actingUser(c), c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.WorkRecordResponse{WorkRecord: record})
}
