package services

import (
	"context"

	"notes-api/models"
	"notes-api/telemetry"
)

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

// HealthService reports API and storage status. Storage problems are
// reported as degraded, never as a failure.
type HealthService struct {
	db ConnectionChecker
}

func NewHealthService(db ConnectionChecker) *HealthService {
	return &HealthService{db: db}
}

func (hs *HealthService) Check(ctx context.Context) models.PingResponse {
	up := hs.db != nil && hs.db.IsConnected(ctx)
	telemetry.SetDatabaseUp(up)

	if !up {
		return models.PingResponse{
			Status:  StatusDegraded,
			Message: "API is running but database connection is unavailable",
		}
	}
	return models.PingResponse{
		Status:  StatusHealthy,
		Message: "API and database are operational",
	}
}
