package database

import (
	"context"
	"database/sql"
	"errors"

	"notes-api/models"
	"notes-api/telemetry"
)

// Repository is the only reader and writer of the notes table. Every method
// issues exactly one statement.
type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a note and returns the id assigned by storage.
func (r *Repository) Create(ctx context.Context, title, description string, completed bool) (int64, error) {
	defer telemetry.TrackDBOperation("create").ObserveDuration()

	pool, err := r.db.conn()
	if err != nil {
		return 0, storageErr("create", err)
	}

	query, args, err := r.builder().
		Insert("notes").
		Columns("title", "description", "completed").
		Values(title, description, completed).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, storageErr("create", err)
	}

	var id int64
	if err := pool.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, storageErr("create", err)
	}
	return id, nil
}

// Get looks a note up by primary key. A missing row is reported through the
// boolean, not as an error.
func (r *Repository) Get(ctx context.Context, id int64) (models.Note, bool, error) {
	defer telemetry.TrackDBOperation("get").ObserveDuration()

	pool, err := r.db.conn()
	if err != nil {
		return models.Note{}, false, storageErr("get", err)
	}

	query, args, err := r.builder().
		Select(noteColumns...).
		From("notes").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return models.Note{}, false, storageErr("get", err)
	}

	note, err := scanNote(pool.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, false, nil
	}
	if err != nil {
		return models.Note{}, false, storageErr("get", err)
	}
	return note, true, nil
}

// List returns notes matching params, newest first, ties broken by id.
func (r *Repository) List(ctx context.Context, params models.ListParams) ([]models.Note, error) {
	defer telemetry.TrackDBOperation("list").ObserveDuration()

	pool, err := r.db.conn()
	if err != nil {
		return nil, storageErr("list", err)
	}

	query, args, err := r.listQuery(params).ToSql()
	if err != nil {
		return nil, storageErr("list", err)
	}

	rows, err := pool.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("list", err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, storageErr("list", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list", err)
	}
	return notes, nil
}

// Count returns how many notes match the filters of params, ignoring paging.
func (r *Repository) Count(ctx context.Context, params models.ListParams) (int64, error) {
	defer telemetry.TrackDBOperation("count").ObserveDuration()

	pool, err := r.db.conn()
	if err != nil {
		return 0, storageErr("count", err)
	}

	query, args, err := r.countQuery(params).ToSql()
	if err != nil {
		return 0, storageErr("count", err)
	}

	var total int64
	if err := pool.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, storageErr("count", err)
	}
	return total, nil
}

// Update overwrites the mutable fields of a note and returns the number of
// rows affected. Zero rows is not an error; no row is ever inserted.
func (r *Repository) Update(ctx context.Context, id int64, title, description string, completed bool) (int64, error) {
	defer telemetry.TrackDBOperation("update").ObserveDuration()

	query, args, err := r.builder().
		Update("notes").
		Set("title", title).
		Set("description", description).
		Set("completed", completed).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return 0, storageErr("update", err)
	}
	return r.exec(ctx, "update", query, args...)
}

// Delete removes one note and returns the number of rows affected.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	defer telemetry.TrackDBOperation("delete").ObserveDuration()

	query, args, err := r.builder().Delete("notes").Where("id = ?", id).ToSql()
	if err != nil {
		return 0, storageErr("delete", err)
	}
	return r.exec(ctx, "delete", query, args...)
}

// DeleteAll removes every note. Callers decide whether that is allowed.
func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	defer telemetry.TrackDBOperation("delete_all").ObserveDuration()

	query, args, err := r.builder().Delete("notes").ToSql()
	if err != nil {
		return 0, storageErr("delete_all", err)
	}
	return r.exec(ctx, "delete_all", query, args...)
}

func (r *Repository) exec(ctx context.Context, op, query string, args ...interface{}) (int64, error) {
	pool, err := r.db.conn()
	if err != nil {
		return 0, storageErr(op, err)
	}

	result, err := pool.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, storageErr(op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, storageErr(op, err)
	}
	return affected, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanNote(s scanner) (models.Note, error) {
	var note models.Note
	err := s.Scan(&note.ID, &note.Title, &note.Description, &note.Completed, &note.CreatedDate)
	return note, err
}
