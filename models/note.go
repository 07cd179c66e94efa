package models

import "time"

type Note struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedDate time.Time `json:"created_date"`
}

// CreateNoteRequest and UpdateNoteRequest treat a missing completed as false.
type CreateNoteRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=255"`
	Description string `json:"description" validate:"required,min=3,max=1000"`
	Completed   *bool  `json:"completed"`
}

type UpdateNoteRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=255"`
	Description string `json:"description" validate:"required,min=3,max=1000"`
	Completed   *bool  `json:"completed"`
}

// NotePath is the :id route parameter.
type NotePath struct {
	ID int64 `params:"id" json:"id" validate:"gt=0"`
}

// ListNotesQuery is the query string of GET /notes/.
type ListNotesQuery struct {
	Skip      int    `query:"skip" json:"skip" validate:"gte=0"`
	Limit     int    `query:"limit" json:"limit" validate:"gte=1,lte=100"`
	Search    string `query:"search" json:"search" validate:"max=255"`
	Completed *bool  `query:"completed" json:"completed"`
}

// ListParams carries optional list filters down to storage. A nil
// Completed means "any", an empty Search means "no search".
type ListParams struct {
	Skip      int
	Limit     int
	Search    string
	Completed *bool
}

func (q ListNotesQuery) Params() ListParams {
	return ListParams{
		Skip:      q.Skip,
		Limit:     q.Limit,
		Search:    q.Search,
		Completed: q.Completed,
	}
}

// IsCompleted resolves the optional completed flag.
func (r CreateNoteRequest) IsCompleted() bool {
	return r.Completed != nil && *r.Completed
}

func (r UpdateNoteRequest) IsCompleted() bool {
	return r.Completed != nil && *r.Completed
}

type PingResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
