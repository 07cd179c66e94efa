package services

import (
	"context"

	"notes-api/models"
)

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	Create(ctx context.Context, title, description string, completed bool) (int64, error)
	Get(ctx context.Context, id int64) (models.Note, bool, error)
	List(ctx context.Context, params models.ListParams) ([]models.Note, error)
	Count(ctx context.Context, params models.ListParams) (int64, error)
	Update(ctx context.Context, id int64, title, description string, completed bool) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// ConnectionChecker reports storage liveness without failing.
type ConnectionChecker interface {
	IsConnected(ctx context.Context) bool
}
