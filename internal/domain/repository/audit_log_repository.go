package repository

import (
	"context"

	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
)

// AuditLogRepository define el puerto de persistencia para registros de auditoría.
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	List(ctx context.Context) ([]*entity.AuditLog, error)
}
