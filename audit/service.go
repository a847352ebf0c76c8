// api/audit/service.go
package audit

import (
	"context"
	"time"
)

type Service interface {
	LogChange(ctx context.Context, entry AuditLog) error
	QueryLogs(ctx context.Context, from, to time.Time, entityType string, entityID int) ([]AuditLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogChange(ctx context.Context, entry AuditLog) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	return s.repo.LogChange(ctx, entry)
}

func (s *service) QueryLogs(ctx context.Context, from, to time.Time, entityType string, entityID int) ([]AuditLog, error) {
	return s.repo.QueryLogs(ctx, from, to, entityType, entityID)
}
