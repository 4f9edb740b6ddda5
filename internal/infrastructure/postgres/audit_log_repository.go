package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementación de AuditLogRepository.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador.
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create inserta una entrada de auditoría.
func (r *AuditLogRepo) Create(ctx context.Context, l *entity.AuditLog) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO audit_logs (status, action, user_id, details, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		l.Status, l.Action, l.UserID, nullIfEmpty(l.Details), l.Timestamp,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List devuelve las entradas con el email del usuario, más recientes primero.
func (r *AuditLogRepo) List(ctx context.Context) ([]*entity.AuditLog, error) {
	rows, err := r.q.Query(ctx, `
		SELECT l.id, l.status, l.action, l.user_id, u.email, l.details, l.timestamp
		FROM audit_logs l
		LEFT JOIN users u ON u.id = l.user_id
		ORDER BY l.timestamp DESC, l.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var out []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		var email, details *string
		if err := rows.Scan(&l.ID, &l.Status, &l.Action, &l.UserID, &email, &details, &l.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		l.UserEmail = derefStr(email)
		l.Details = derefStr(details)
		out = append(out, &l)
	}
	return out, rows.Err()
}
