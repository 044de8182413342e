package store

import (
	"context"
	"errors"
	"math"
	"strings"

	dbutil "github.com/feedbackhq/feedbackhq/internal/db"
	"github.com/feedbackhq/feedbackhq/internal/models"
	"gorm.io/gorm"
)

// Feedback validation errors.
var (
	// ErrBlankName indicates a missing or whitespace-only name.
	ErrBlankName = errors.New("name is required")
	// ErrBlankMessage indicates a missing or whitespace-only message.
	ErrBlankMessage = errors.New("message is required")
	// ErrRatingRange indicates a rating outside 1..5.
	ErrRatingRange = errors.New("rating must be between 1 and 5")
)

// FeedbackStore persists feedback submissions.
type FeedbackStore struct {
	db *gorm.DB
}

// NewFeedbackStore constructs a FeedbackStore.
func NewFeedbackStore(db *gorm.DB) *FeedbackStore {
	return &FeedbackStore{db: db}
}

// FeedbackFilter narrows List results. Zero values mean no filtering.
type FeedbackFilter struct {
	// Name matches as a case-insensitive substring.
	Name string
	// Rating matches exactly when in 1..5.
	Rating int
}

// Stats summarizes the feedback collection.
type Stats struct {
	TotalFeedbacks int64   `json:"totalFeedbacks"`
	AvgRating      float64 `json:"avgRating"`
	PositiveCount  int64   `json:"positiveCount"`
	NegativeCount  int64   `json:"negativeCount"`
}

// Insert validates and persists a new feedback record. All validation happens
// before any write; the id and creation timestamp are server-assigned.
func (s *FeedbackStore) Insert(ctx context.Context, name, email, message string, rating int) (*models.Feedback, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBlankName
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrBlankMessage
	}
	if rating < 1 || rating > 5 {
		return nil, ErrRatingRange
	}

	feedback := models.Feedback{
		Name:    name,
		Email:   strings.TrimSpace(email),
		Message: message,
		Rating:  rating,
	}
	if err := s.db.WithContext(ctx).Create(&feedback).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

// List returns feedback ordered newest-created-first, optionally filtered.
func (s *FeedbackStore) List(ctx context.Context, filter FeedbackFilter) ([]models.Feedback, error) {
	q := s.db.WithContext(ctx).Model(&models.Feedback{})
	if name := strings.TrimSpace(filter.Name); name != "" {
		pattern := dbutil.NormalizeLikePattern(s.db, "%"+name+"%")
		q = q.Where(dbutil.CaseInsensitiveLikeExpr(s.db, "name"), pattern)
	}
	if filter.Rating >= 1 && filter.Rating <= 5 {
		q = q.Where("rating = ?", filter.Rating)
	}

	var feedbacks []models.Feedback
	if err := q.Order("created_at DESC").Find(&feedbacks).Error; err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// Aggregate computes collection statistics in a single query. The average is
// rounded to two decimals and reported as 0 when the collection is empty.
func (s *FeedbackStore) Aggregate(ctx context.Context) (Stats, error) {
	var row struct {
		Total    int64
		Avg      float64
		Positive int64
		Negative int64
	}
	err := s.db.WithContext(ctx).Model(&models.Feedback{}).
		Select(`COUNT(*) AS total,
			COALESCE(AVG(rating), 0) AS avg,
			COALESCE(SUM(CASE WHEN rating >= 4 THEN 1 ELSE 0 END), 0) AS positive,
			COALESCE(SUM(CASE WHEN rating <= 2 THEN 1 ELSE 0 END), 0) AS negative`).
		Scan(&row).Error
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		TotalFeedbacks: row.Total,
		AvgRating:      math.Round(row.Avg*100) / 100,
		PositiveCount:  row.Positive,
		NegativeCount:  row.Negative,
	}, nil
}
