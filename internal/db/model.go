// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
	StatusArchived  = "ARCHIVED"
)

var Columns = struct {
	Content struct {
		ID, Title, Description, Body, Category, Language, Status,
		AuthorID, PublishedAt, CreatedAt, UpdatedAt, MetaData string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
}{
	Content: struct {
		ID, Title, Description, Body, Category, Language, Status,
		AuthorID, PublishedAt, CreatedAt, UpdatedAt, MetaData string
	}{
		ID:          "contentId",
		Title:       "title",
		Description: "description",
		Body:        "body",
		Category:    "category",
		Language:    "language",
		Status:      "status",
		AuthorID:    "authorId",
		PublishedAt: "publishedAt",
		CreatedAt:   "createdAt",
		UpdatedAt:   "updatedAt",
		MetaData:    "metaData",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
}

var Tables = struct {
	Content struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
}{
	Content: struct {
		Name, Alias string
	}{
		Name:  "contents",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
}

type Content struct {
	tableName struct{} `pg:"contents,alias:t,discard_unknown_columns"`

	ID          string                 `pg:"contentId,pk"`
	Title       string                 `pg:"title,use_zero"`
	Description string                 `pg:"description,use_zero"`
	Body        string                 `pg:"body,use_zero"`
	Category    string                 `pg:"category,use_zero"`
	Language    string                 `pg:"language,use_zero"`
	Status      string                 `pg:"status,use_zero"`
	AuthorID    string                 `pg:"authorId,use_zero"`
	PublishedAt *time.Time             `pg:"publishedAt"`
	CreatedAt   time.Time              `pg:"createdAt,use_zero"`
	UpdatedAt   time.Time              `pg:"updatedAt,use_zero"`
	MetaData    map[string]interface{} `pg:"metaData,type:jsonb"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}
