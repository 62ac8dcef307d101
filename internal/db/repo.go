package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// ErrContentNotFound is returned when the referenced content id is absent.
var ErrContentNotFound = errors.New("content not found")

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// CreateContent inserts a new content record. The caller is responsible for
// the generated id and server-managed timestamps.
func (r *Repository) CreateContent(ctx context.Context, content *Content) error {
	if _, err := r.db.ModelContext(ctx, content).Insert(); err != nil {
		return fmt.Errorf("failed to insert content: %w", err)
	}

	return nil
}

// UpdateContent writes the full merged record identified by its primary key.
func (r *Repository) UpdateContent(ctx context.Context, content *Content) error {
	res, err := r.db.ModelContext(ctx, content).WherePK().Update()
	if err != nil {
		return fmt.Errorf("failed to update content: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("update content %q: %w", content.ID, ErrContentNotFound)
	}

	return nil
}

// DeleteContent removes a record by id. Deletion is terminal, there are no
// tombstone semantics.
func (r *Repository) DeleteContent(ctx context.Context, id string) error {
	res, err := r.db.ModelContext(ctx, (*Content)(nil)).
		Where(`"t"."contentId" = ?`, id).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("delete content %q: %w", id, ErrContentNotFound)
	}

	return nil
}

func (r *Repository) ContentByID(ctx context.Context, id string) (*Content, error) {
	content := &Content{}
	err := r.db.ModelContext(ctx, content).
		Where(`"t"."contentId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, fmt.Errorf("get content by id %q: %w", id, ErrContentNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to get content by id: %w", err)
	}

	return content, nil
}

// ContentByFilter retrieves one ordered page of content matching the filter.
// The filter must be normalized by the caller.
func (r *Repository) ContentByFilter(ctx context.Context, filter *ContentFilter) ([]Content, error) {
	if filter.Page < 1 || filter.Limit < 1 {
		return nil, fmt.Errorf(
			"page or limit must be greater than 0: page=%d, limit=%d",
			filter.Page, filter.Limit,
		)
	}

	var contents []Content
	query := filter.apply(r.db.ModelContext(ctx, &contents))

	err := query.
		OrderExpr(filter.OrderExpr()).
		Limit(filter.Limit).
		Offset(filter.Offset()).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query contents: %w", err)
	}

	return contents, nil
}

// ContentCount returns the number of records matching the filter predicates.
// Pagination and ordering fields are ignored.
func (r *Repository) ContentCount(ctx context.Context, filter *ContentFilter) (int, error) {
	query := filter.apply(r.db.ModelContext(ctx, (*Content)(nil)))

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get content count: %w", err)
	}

	return count, nil
}
