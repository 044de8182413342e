package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/feedbackhq/feedbackhq/internal/models"
)

func TestFeedbackInsertTrimsAndAssignsID(t *testing.T) {
	t.Parallel()

	db := setupStoreTestDB(t)
	feedbacks := NewFeedbackStore(db)

	feedback, errInsert := feedbacks.Insert(context.Background(), "  Alice  ", " alice@example.com ", "  Great service  ", 5)
	if errInsert != nil {
		t.Fatalf("insert feedback: %v", errInsert)
	}
	if feedback.ID == 0 {
		t.Fatalf("expected server-assigned id")
	}
	if feedback.Name != "Alice" || feedback.Message != "Great service" || feedback.Email != "alice@example.com" {
		t.Fatalf("expected trimmed fields, got %+v", feedback)
	}
	if feedback.CreatedAt.IsZero() {
		t.Fatalf("expected server-assigned timestamp")
	}
}

func TestFeedbackInsertOptionalEmail(t *testing.T) {
	t.Parallel()

	db := setupStoreTestDB(t)
	feedbacks := NewFeedbackStore(db)

	feedback, errInsert := feedbacks.Insert(context.Background(), "Bob", "", "Fine", 3)
	if errInsert != nil {
		t.Fatalf("insert feedback: %v", errInsert)
	}
	if feedback.Email != "" {
		t.Fatalf("expected empty email, got %q", feedback.Email)
	}
}

func TestFeedbackInsertRejectsInvalidInputWithoutWrite(t *testing.T) {
	t.Parallel()

	db := setupStoreTestDB(t)
	feedbacks := NewFeedbackStore(db)
	ctx := context.Background()

	cases := []struct {
		name    string
		rName   string
		message string
		rating  int
		wantErr error
	}{
		{"blank name", "  ", "msg", 3, ErrBlankName},
		{"empty name", "", "msg", 3, ErrBlankName},
		{"blank message", "Alice", "   ", 3, ErrBlankMessage},
		{"rating zero", "Alice", "msg", 0, ErrRatingRange},
		{"rating six", "Alice", "msg", 6, ErrRatingRange},
		{"rating negative", "Alice", "msg", -1, ErrRatingRange},
	}
	for _, tc := range cases {
		if _, errInsert := feedbacks.Insert(ctx, tc.rName, "", tc.message, tc.rating); !errors.Is(errInsert, tc.wantErr) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.wantErr, errInsert)
		}
	}

	var count int64
	if errCount := db.Model(&models.Feedback{}).Count(&count).Error; errCount != nil {
		t.Fatalf("count feedback: %v", errCount)
	}
	if count != 0 {
		t.Fatalf("rejected submissions must not write, got %d rows", count)
	}
}

func TestFeedbackListNewestFirst(t *testing.T) {
	t.Parallel()

	db := setupStoreTestDB(t)
	feedbacks := NewFeedbackStore(db)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, name := range []string{"first", "second", "third"} {
		row := models.Feedback{
			Name:      name,
			Message:   "msg",
			Rating:    3,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if errCreate := db.Create(&row).Error; errCreate != nil {
			t.Fatalf("seed feedback: %v", errCreate)
		}
	}

	rows, errList := feedbacks.List(context.Background(), FeedbackFilter{})
	if errList != nil {
		t.Fatalf("list feedback: %v", errList)
	}
	want := []string{"third", "second", "first"}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i, name := range want {
		if rows[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, rows[i].Name)
		}
	}
}

func TestFeedbackListFilters(t *testing.T) {
	t.Parallel()

	db := setupStoreTestDB(t)
	feedbacks := NewFeedbackStore(db)
	ctx := context.Background()

	seed := []models.Feedback{
		{Name: "Alice Smith", Message: "m", Rating: 5},
		{Name: "alison", Message: "m", Rating: 2},
		{Name: "Bob", Message: "m", Rating: 5},
	}
	for i := range seed {
		if errCreate := db.Create(&seed[i]).Error; errCreate != nil {
			t.Fatalf("seed feedback: %v", errCreate)
		}
	}

	byName, errName := feedbacks.List(ctx, FeedbackFilter{Name: "ali"})
	if errName != nil {
		t.Fatalf("list by name: %v", errName)
	}
	if len(byName) != 2 {
		t.Fatalf("expected 2 name matches, got %d", len(byName))
	}

	byRating, errRating := feedbacks.List(ctx, FeedbackFilter{Rating: 5})
	if errRating != nil {
		t.Fatalf("list by rating: %v", errRating)
	}
	if len(byRating) != 2 {
		t.Fatalf("expected 2 rating matches, got %d", len(byRating))
	}

	combined, errCombined := feedbacks.List(ctx, FeedbackFilter{Name: "ali", Rating: 5})
	if errCombined != nil {
		t.Fatalf("list combined: %v", errCombined)
	}
	if len(combined) != 1 || combined[0].Name != "Alice Smith" {
		t.Fatalf("expected only Alice Smith, got %+v", combined)
	}
}

func TestFeedbackAggregateEmpty(t *testing.T) {
	t.Parallel()

	db := setupStoreTestDB(t)
	feedbacks := NewFeedbackStore(db)

	stats, errAggregate := feedbacks.Aggregate(context.Background())
	if errAggregate != nil {
		t.Fatalf("aggregate: %v", errAggregate)
	}
	if stats.TotalFeedbacks != 0 || stats.AvgRating != 0 || stats.PositiveCount != 0 || stats.NegativeCount != 0 {
		t.Fatalf("expected all-zero stats, got %+v", stats)
	}
}

func TestFeedbackAggregateCounts(t *testing.T) {
	t.Parallel()

	db := setupStoreTestDB(t)
	feedbacks := NewFeedbackStore(db)
	ctx := context.Background()

	for _, rating := range []int{5, 5, 4, 2, 1} {
		if _, errInsert := feedbacks.Insert(ctx, "Tester", "", "msg", rating); errInsert != nil {
			t.Fatalf("insert feedback: %v", errInsert)
		}
	}

	stats, errAggregate := feedbacks.Aggregate(ctx)
	if errAggregate != nil {
		t.Fatalf("aggregate: %v", errAggregate)
	}
	if stats.TotalFeedbacks != 5 {
		t.Fatalf("expected total 5, got %d", stats.TotalFeedbacks)
	}
	if stats.AvgRating != 3.4 {
		t.Fatalf("expected avg 3.4, got %v", stats.AvgRating)
	}
	if stats.PositiveCount != 3 {
		t.Fatalf("expected 3 positive, got %d", stats.PositiveCount)
	}
	if stats.NegativeCount != 2 {
		t.Fatalf("expected 2 negative, got %d", stats.NegativeCount)
	}
}

func TestFeedbackAggregateRounding(t *testing.T) {
	t.Parallel()

	db := setupStoreTestDB(t)
	feedbacks := NewFeedbackStore(db)
	ctx := context.Background()

	// 1 + 2 + 5 = 8, avg 2.666... rounds to 2.67.
	for _, rating := range []int{1, 2, 5} {
		if _, errInsert := feedbacks.Insert(ctx, "Tester", "", "msg", rating); errInsert != nil {
			t.Fatalf("insert feedback: %v", errInsert)
		}
	}

	stats, errAggregate := feedbacks.Aggregate(ctx)
	if errAggregate != nil {
		t.Fatalf("aggregate: %v", errAggregate)
	}
	if stats.AvgRating != 2.67 {
		t.Fatalf("expected avg 2.67, got %v", stats.AvgRating)
	}
}
