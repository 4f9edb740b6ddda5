package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/gestor-ventas-api/internal/application/dto"
	"github.com/jhoicas/gestor-ventas-api/internal/domain"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/repository"
	"github.com/rs/zerolog/log"
)

// AuditLogUseCase registra y consulta la bitácora de acciones.
type AuditLogUseCase struct {
	repo repository.AuditLogRepository
}

// NewAuditLogUseCase construye el caso de uso.
func NewAuditLogUseCase(repo repository.AuditLogRepository) *AuditLogUseCase {
	return &AuditLogUseCase{repo: repo}
}

// Create registra una entrada validando estado y acción.
func (uc *AuditLogUseCase) Create(ctx context.Context, in dto.CreateAuditLogRequest) (*dto.AuditLogResponse, error) {
	if !entity.ValidLogStatus(in.Status) || strings.TrimSpace(in.Action) == "" {
		return nil, domain.ErrInvalidInput
	}
	entry := &entity.AuditLog{
		Status:    in.Status,
		Action:    strings.TrimSpace(in.Action),
		UserID:    in.UserID,
		Details:   in.Details,
		Timestamp: time.Now(),
	}
	if err := uc.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return toAuditLogResponse(entry), nil
}

// List devuelve todas las entradas, más recientes primero.
func (uc *AuditLogUseCase) List(ctx context.Context) ([]dto.AuditLogResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditLogResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toAuditLogResponse(l))
	}
	return out, nil
}

// Success registra una acción exitosa.
func (uc *AuditLogUseCase) Success(ctx context.Context, action string, userID *int64, details string) {
	uc.record(ctx, entity.LogStatusSuccess, action, userID, details)
}

// Info registra una acción informativa.
func (uc *AuditLogUseCase) Info(ctx context.Context, action string, userID *int64, details string) {
	uc.record(ctx, entity.LogStatusInfo, action, userID, details)
}

// Failure registra una acción fallida.
func (uc *AuditLogUseCase) Failure(ctx context.Context, action string, userID *int64, details string) {
	uc.record(ctx, entity.LogStatusFailure, action, userID, details)
}

// record no propaga errores: la auditoría nunca hace fallar la operación auditada.
func (uc *AuditLogUseCase) record(ctx context.Context, status, action string, userID *int64, details string) {
	entry := &entity.AuditLog{
		Status:    status,
		Action:    action,
		UserID:    userID,
		Details:   details,
		Timestamp: time.Now(),
	}
	if err := uc.repo.Create(ctx, entry); err != nil {
		log.Error().Err(err).Str("action", action).Str("status", status).Msg("no se pudo registrar auditoría")
	}
}

func toAuditLogResponse(l *entity.AuditLog) *dto.AuditLogResponse {
	return &dto.AuditLogResponse{
		ID:        l.ID,
		Status:    l.Status,
		Action:    l.Action,
		UserID:    l.UserID,
		UserEmail: l.UserEmail,
		Details:   l.Details,
		Timestamp: l.Timestamp,
	}
}
