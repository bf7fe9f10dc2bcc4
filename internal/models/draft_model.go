package models

import (
	"database/sql"
	"time"
)

type PostDraft struct {
	ID          int64         `db:"id" json:"id"`
	UserID      int64         `db:"user_id" json:"user_id"`
	MediaItemID sql.NullInt64 `db:"media_item_id" json:"media_item_id"`
	Hook        string        `db:"hook" json:"hook"`
	Body        string        `db:"body" json:"body"`
	Hashtags    string        `db:"hashtags" json:"hashtags"`
	AltText     string        `db:"alt_text" json:"alt_text"`
	Score       int           `db:"score" json:"score"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
}
