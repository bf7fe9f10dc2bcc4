package models

import "time"

type MediaItem struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Path      string    `db:"path" json:"path"`
	MimeType  string    `db:"mime_type" json:"mime_type"`
	MediaType string    `db:"media_type" json:"media_type"` // IMAGE, VIDEO, DOCUMENT
	Status    string    `db:"status" json:"status"`         // NEW, PROCESSED
	Meta      string    `db:"meta" json:"meta"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

const (
	MediaTypeImage    = "IMAGE"
	MediaTypeVideo    = "VIDEO"
	MediaTypeDocument = "DOCUMENT"
)

const (
	MediaStatusNew       = "NEW"
	MediaStatusProcessed = "PROCESSED"
)
