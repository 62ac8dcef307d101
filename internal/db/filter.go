package db

import (
	"time"

	"github.com/go-pg/pg/v10/orm"
)

const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"

	DefaultSortBy    = "created_at"
	DefaultSortOrder = SortOrderDesc
	DefaultPage      = 1
	DefaultLimit     = 10
)

// sortColumns maps external sort keys to table columns.
var sortColumns = map[string]string{
	"created_at":   Columns.Content.CreatedAt,
	"updated_at":   Columns.Content.UpdatedAt,
	"published_at": Columns.Content.PublishedAt,
	"title":        Columns.Content.Title,
}

// ContentFilter describes a validated list/search command: optional equality
// and range predicates plus sort and pagination. A nil pointer field imposes
// no constraint. Query, when set, adds a case-insensitive contains match over
// title, description and body.
type ContentFilter struct {
	Category      *string
	Language      *string
	Status        *string
	AuthorID      *string
	PublishedFrom *time.Time
	PublishedTo   *time.Time
	Query         *string
	ExcludeID     *string

	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// Normalize applies defaults and clamps pagination to its minimums.
// Unknown sort keys fall back to the default so ordering stays deterministic.
func (f *ContentFilter) Normalize() {
	if _, ok := sortColumns[f.SortBy]; !ok {
		f.SortBy = DefaultSortBy
	}
	if f.SortOrder != SortOrderAsc && f.SortOrder != SortOrderDesc {
		f.SortOrder = DefaultSortOrder
	}
	if f.Page < DefaultPage {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
}

// Offset returns the pagination window start for the normalized filter.
func (f *ContentFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// OrderExpr returns the ORDER BY expression for the normalized filter.
// Ties are broken by contentId ASC so pagination stays stable when the
// sort key is non-unique.
func (f *ContentFilter) OrderExpr() string {
	dir := "DESC"
	if f.SortOrder == SortOrderAsc {
		dir = "ASC"
	}
	return `"t"."` + sortColumns[f.SortBy] + `" ` + dir + `, "t"."contentId" ASC`
}

// apply adds the conjunctive predicates to a content query. Pagination and
// ordering are added separately so the same predicates serve count queries.
func (f *ContentFilter) apply(q *orm.Query) *orm.Query {
	if f.Category != nil {
		q = q.Where(`"t"."category" = ?`, *f.Category)
	}

	if f.Language != nil {
		q = q.Where(`"t"."language" = ?`, *f.Language)
	}

	if f.Status != nil {
		q = q.Where(`"t"."status" = ?`, *f.Status)
	}

	if f.AuthorID != nil {
		q = q.Where(`"t"."authorId" = ?`, *f.AuthorID)
	}

	if f.PublishedFrom != nil {
		q = q.Where(`"t"."publishedAt" >= ?`, *f.PublishedFrom)
	}

	if f.PublishedTo != nil {
		q = q.Where(`"t"."publishedAt" <= ?`, *f.PublishedTo)
	}

	if f.ExcludeID != nil {
		q = q.Where(`"t"."contentId" <> ?`, *f.ExcludeID)
	}

	if f.Query != nil && *f.Query != "" {
		pattern := "%" + *f.Query + "%"
		q = q.WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			q = q.WhereOr(`"t"."title" ILIKE ?`, pattern).
				WhereOr(`"t"."description" ILIKE ?`, pattern).
				WhereOr(`"t"."body" ILIKE ?`, pattern)
			return q, nil
		})
	}

	return q
}
