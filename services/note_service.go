package services

import (
	"context"
	"fmt"

	"notes-api/models"
	"notes-api/telemetry"
)

// NoteService composes repository calls into request-level outcomes. The
// repository never checks existence; get-then-mutate happens here and is not
// atomic, so two concurrent writers on the same id can race.
type NoteService struct {
	repo NoteRepository
}

// NewNoteService creates a new note service
func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// Create stores a note and returns it as persisted, with id and created_date set.
func (ns *NoteService) Create(ctx context.Context, req models.CreateNoteRequest) (*models.Note, error) {
	id, err := ns.repo.Create(ctx, req.Title, req.Description, req.IsCompleted())
	if err != nil {
		return nil, err
	}
	telemetry.TrackNoteOperation("create")

	note, found, err := ns.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("note %d not readable after insert", id)
	}
	return &note, nil
}

// Get retrieves a note by id
func (ns *NoteService) Get(ctx context.Context, id int64) (*models.Note, error) {
	note, found, err := ns.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoteNotFound
	}
	return &note, nil
}

// List returns one page of notes and the number of notes matching the filters.
func (ns *NoteService) List(ctx context.Context, params models.ListParams) ([]models.Note, int64, error) {
	notes, err := ns.repo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	total, err := ns.repo.Count(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return notes, total, nil
}

// Update overwrites title, description and completed of an existing note.
func (ns *NoteService) Update(ctx context.Context, id int64, req models.UpdateNoteRequest) (*models.Note, error) {
	if _, err := ns.Get(ctx, id); err != nil {
		return nil, err
	}

	if _, err := ns.repo.Update(ctx, id, req.Title, req.Description, req.IsCompleted()); err != nil {
		return nil, err
	}
	telemetry.TrackNoteOperation("update")

	// A concurrent delete between the two reads surfaces as not found.
	return ns.Get(ctx, id)
}

// Delete removes an existing note and returns it as it was before removal.
func (ns *NoteService) Delete(ctx context.Context, id int64) (*models.Note, error) {
	note, err := ns.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := ns.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	telemetry.TrackNoteOperation("delete")

	return note, nil
}

// DeleteAll removes every note. Only maintenance tooling calls it.
func (ns *NoteService) DeleteAll(ctx context.Context) (int64, error) {
	removed, err := ns.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	telemetry.TrackNoteOperation("delete_all")
	return removed, nil
}
