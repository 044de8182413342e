package handlers

import (
	"net/http"

	"github.com/feedbackhq/feedbackhq/internal/store"
	"github.com/gin-gonic/gin"
)

// StatsHandler serves aggregated feedback statistics.
type StatsHandler struct {
	feedbacks *store.FeedbackStore
}

// NewStatsHandler constructs a StatsHandler.
func NewStatsHandler(feedbacks *store.FeedbackStore) *StatsHandler {
	return &StatsHandler{feedbacks: feedbacks}
}

// Get returns feedback statistics: total count, average rating (2 decimals, 0
// when empty), and positive/negative threshold counts.
func (h *StatsHandler) Get(c *gin.Context) {
	stats, errAggregate := h.feedbacks.Aggregate(c.Request.Context())
	if errAggregate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": errAggregate.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
