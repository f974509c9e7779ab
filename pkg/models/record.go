package models

import "github.com/yourmoment/yourmoment/ent"

// WorkRecordResponse wraps a WorkRecord
type WorkRecordResponse struct {
	*ent.WorkRecord
}

// ListRecordsFilter narrows work record listings.
type ListRecordsFilter struct {
	ProcessID string `form:"process_id"`
	Status    string `form:"status"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}
