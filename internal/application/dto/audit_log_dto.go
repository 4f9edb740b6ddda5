package dto

import "time"

// CreateAuditLogRequest body para POST /api/logs.
type CreateAuditLogRequest struct {
	Status  string `json:"status"`
	Action  string `json:"action"`
	UserID  *int64 `json:"userId,omitempty"`
	Details string `json:"details,omitempty"`
}

// AuditLogResponse registro de auditoría en respuestas.
type AuditLogResponse struct {
	ID        int64     `json:"id"`
	Status    string    `json:"status"`
	Action    string    `json:"action"`
	UserID    *int64    `json:"userId,omitempty"`
	UserEmail string    `json:"userEmail,omitempty"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
