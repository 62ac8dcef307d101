//go:build integration

package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

var (
	testDB   *pg.DB
	testRepo *Repository
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	opt, err := pg.ParseURL(TestDBURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse database URL: %v\n", err)
		os.Exit(1)
	}

	testDB = pg.Connect(opt)

	if err := testDB.Ping(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := ResetPublicSchema(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to reset schema: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := RunMigrations(ctx, MigrationsDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := EnsureTablesExist(ctx, testDB, []string{"contents"}); err != nil {
		fmt.Fprintf(os.Stderr, "schema verification failed: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := LoadTestData(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load test data: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	testRepo = New(testDB)

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func newTestContent() *Content {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &Content{
		ID:          uuid.NewString(),
		Title:       "Integration Test Article",
		Description: "Created by the integration suite",
		Body:        "Body text for integration testing.",
		Category:    "testing",
		Language:    "en",
		Status:      StatusDraft,
		AuthorID:    "author-it",
		CreatedAt:   now,
		UpdatedAt:   now,
		MetaData:    map[string]interface{}{"source": "test"},
	}
}

func TestCreateAndGetContent_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	want := newTestContent()
	if err := repo.CreateContent(ctx, want); err != nil {
		t.Fatalf("create content: %v", err)
	}

	got, err := repo.ContentByID(ctx, want.ID)
	if err != nil {
		t.Fatalf("get content by id: %v", err)
	}

	if got.Title != want.Title || got.Status != want.Status || got.AuthorID != want.AuthorID {
		t.Errorf("stored content mismatch: got %+v, want %+v", got, want)
	}
	if got.PublishedAt != nil {
		t.Errorf("expected nil publishedAt for draft, got %v", got.PublishedAt)
	}
	if got.MetaData["source"] != "test" {
		t.Errorf("metaData not round-tripped: %+v", got.MetaData)
	}
}

func TestContentByID_Missing_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	_, err := repo.ContentByID(ctx, uuid.NewString())
	if !errors.Is(err, ErrContentNotFound) {
		t.Errorf("expected ErrContentNotFound, got %v", err)
	}
}

func TestUpdateContent_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	content := newTestContent()
	if err := repo.CreateContent(ctx, content); err != nil {
		t.Fatalf("create content: %v", err)
	}

	publishedAt := time.Now().UTC().Truncate(time.Microsecond)
	content.Status = StatusPublished
	content.PublishedAt = &publishedAt
	content.UpdatedAt = publishedAt

	if err := repo.UpdateContent(ctx, content); err != nil {
		t.Fatalf("update content: %v", err)
	}

	got, err := repo.ContentByID(ctx, content.ID)
	if err != nil {
		t.Fatalf("get content by id: %v", err)
	}
	if got.Status != StatusPublished {
		t.Errorf("expected status %q, got %q", StatusPublished, got.Status)
	}
	if got.PublishedAt == nil || !got.PublishedAt.Equal(publishedAt) {
		t.Errorf("expected publishedAt %v, got %v", publishedAt, got.PublishedAt)
	}
}

func TestUpdateContent_Missing_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	content := newTestContent()
	err := repo.UpdateContent(ctx, content)
	if !errors.Is(err, ErrContentNotFound) {
		t.Errorf("expected ErrContentNotFound, got %v", err)
	}
}

func TestDeleteContent_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	content := newTestContent()
	if err := repo.CreateContent(ctx, content); err != nil {
		t.Fatalf("create content: %v", err)
	}

	if err := repo.DeleteContent(ctx, content.ID); err != nil {
		t.Fatalf("delete content: %v", err)
	}

	_, err := repo.ContentByID(ctx, content.ID)
	if !errors.Is(err, ErrContentNotFound) {
		t.Errorf("expected ErrContentNotFound after delete, got %v", err)
	}

	if err := repo.DeleteContent(ctx, content.ID); !errors.Is(err, ErrContentNotFound) {
		t.Errorf("expected ErrContentNotFound on second delete, got %v", err)
	}
}

func TestContentByFilter_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	filterTests := []struct {
		name     string
		filter   ContentFilter
		validate func(t *testing.T, items []Content)
	}{
		{
			name:   "WithoutPredicatesReturnsEverything",
			filter: ContentFilter{},
			validate: func(t *testing.T, items []Content) {
				t.Helper()
				if len(items) != len(SeedContents()) {
					t.Errorf("expected %d items, got %d", len(SeedContents()), len(items))
				}
			},
		},
		{
			name:   "StatusFilterReturnsOnlyPublished",
			filter: ContentFilter{Status: strPtr(StatusPublished)},
			validate: func(t *testing.T, items []Content) {
				t.Helper()
				if len(items) == 0 {
					t.Fatal("expected published items")
				}
				for _, item := range items {
					if item.Status != StatusPublished {
						t.Errorf("expected status %q, got %q", StatusPublished, item.Status)
					}
				}
			},
		},
		{
			name: "PredicatesAreConjunctive",
			filter: ContentFilter{
				Category: strPtr("engineering"),
				Language: strPtr("en"),
				Status:   strPtr(StatusPublished),
			},
			validate: func(t *testing.T, items []Content) {
				t.Helper()
				for _, item := range items {
					if item.Category != "engineering" || item.Language != "en" || item.Status != StatusPublished {
						t.Errorf("item escapes conjunction: %+v", item)
					}
				}
			},
		},
		{
			name:   "SearchMatchesBodyCaseInsensitively",
			filter: ContentFilter{Query: strPtr("KUBE-SCHEDULER")},
			validate: func(t *testing.T, items []Content) {
				t.Helper()
				if len(items) != 1 {
					t.Fatalf("expected 1 item, got %d", len(items))
				}
				if items[0].Category != "podcast" {
					t.Errorf("unexpected search hit: %+v", items[0])
				}
			},
		},
		{
			name: "PublishedWindowBoundsInclusive",
			filter: ContentFilter{
				PublishedFrom: timePtr(BaseTime.Add(-24 * time.Hour)),
				PublishedTo:   timePtr(BaseTime),
			},
			validate: func(t *testing.T, items []Content) {
				t.Helper()
				for _, item := range items {
					if item.PublishedAt == nil {
						t.Fatalf("unpublished item in window: %+v", item)
					}
					if item.PublishedAt.Before(BaseTime.Add(-24*time.Hour)) || item.PublishedAt.After(BaseTime) {
						t.Errorf("publishedAt %v outside window", item.PublishedAt)
					}
				}
			},
		},
	}

	for _, tt := range filterTests {
		t.Run(tt.name, func(t *testing.T) {
			filter := tt.filter
			filter.Normalize()
			filter.Limit = 100

			items, err := repo.ContentByFilter(ctx, &filter)
			if err != nil {
				t.Fatalf("content by filter: %v", err)
			}
			tt.validate(t, items)

			count, err := repo.ContentCount(ctx, &filter)
			if err != nil {
				t.Fatalf("content count: %v", err)
			}
			if count != len(items) {
				t.Errorf("count %d disagrees with unpaginated result %d", count, len(items))
			}
		})
	}
}

func TestContentByFilter_ExcludeID_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	all := ContentFilter{Limit: 100}
	all.Normalize()
	all.Limit = 100

	items, err := repo.ContentByFilter(ctx, &all)
	if err != nil {
		t.Fatalf("content by filter: %v", err)
	}
	if len(items) < 2 {
		t.Fatalf("expected at least 2 seeded items, got %d", len(items))
	}
	excluded := items[0].ID

	filter := all
	filter.ExcludeID = &excluded

	remaining, err := repo.ContentByFilter(ctx, &filter)
	if err != nil {
		t.Fatalf("content by filter: %v", err)
	}
	if len(remaining) != len(items)-1 {
		t.Errorf("expected %d items, got %d", len(items)-1, len(remaining))
	}
	for _, item := range remaining {
		if item.ID == excluded {
			t.Errorf("excluded id %q still present", excluded)
		}
	}

	count, err := repo.ContentCount(ctx, &filter)
	if err != nil {
		t.Fatalf("content count: %v", err)
	}
	if count != len(items)-1 {
		t.Errorf("count %d disagrees with exclusion, want %d", count, len(items)-1)
	}
}

func TestContentByFilter_Pagination_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	collect := func(limit int) []string {
		var ids []string
		for page := 1; ; page++ {
			filter := ContentFilter{Page: page, Limit: limit, SortBy: "created_at", SortOrder: SortOrderAsc}
			filter.Normalize()
			items, err := repo.ContentByFilter(ctx, &filter)
			if err != nil {
				t.Fatalf("page %d: %v", page, err)
			}
			if len(items) == 0 {
				return ids
			}
			for _, item := range items {
				ids = append(ids, item.ID)
			}
		}
	}

	whole := collect(100)
	paged := collect(2)

	if len(whole) != len(paged) {
		t.Fatalf("pagination lost rows: %d vs %d", len(whole), len(paged))
	}
	for i := range whole {
		if whole[i] != paged[i] {
			t.Errorf("page walk diverges at %d: %s vs %s", i, whole[i], paged[i])
		}
	}
}

func TestContentByFilter_Ordering_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	filter := ContentFilter{
		Status:    strPtr(StatusPublished),
		SortBy:    "published_at",
		SortOrder: SortOrderDesc,
	}
	filter.Normalize()
	filter.Limit = 100

	items, err := repo.ContentByFilter(ctx, &filter)
	if err != nil {
		t.Fatalf("content by filter: %v", err)
	}

	for i := 1; i < len(items); i++ {
		prev, cur := items[i-1].PublishedAt, items[i].PublishedAt
		if prev == nil || cur == nil {
			t.Fatal("published item without publishedAt")
		}
		if prev.Before(*cur) {
			t.Errorf("not sorted desc at %d: %v before %v", i, prev, cur)
		}
	}
}

func timePtr(t time.Time) *time.Time { return &t }
