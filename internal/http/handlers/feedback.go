package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/feedbackhq/feedbackhq/internal/store"
	"github.com/gin-gonic/gin"
)

// FeedbackHandler handles feedback submission and listing.
type FeedbackHandler struct {
	feedbacks *store.FeedbackStore
}

// NewFeedbackHandler constructs a FeedbackHandler.
func NewFeedbackHandler(feedbacks *store.FeedbackStore) *FeedbackHandler {
	return &FeedbackHandler{feedbacks: feedbacks}
}

// submitRequest defines the request body for a public feedback submission.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Rating  int    `json:"rating"`
}

// Submit accepts a public feedback submission. All validation happens before
// any write; the first failing check short-circuits.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var body submitRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name is required"})
		return
	}

	feedback, errInsert := h.feedbacks.Insert(c.Request.Context(), body.Name, body.Email, body.Message, body.Rating)
	if errInsert != nil {
		switch {
		case errors.Is(errInsert, store.ErrBlankName):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name is required"})
		case errors.Is(errInsert, store.ErrBlankMessage):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Message is required"})
		case errors.Is(errInsert, store.ErrRatingRange):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Rating must be between 1 and 5"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": errInsert.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Feedback submitted successfully",
		"feedback": feedback,
	})
}

// List returns all feedback, newest first. Optional query filters: ?name=
// matches a case-insensitive substring, ?rating= matches exactly.
func (h *FeedbackHandler) List(c *gin.Context) {
	filter := store.FeedbackFilter{
		Name: strings.TrimSpace(c.Query("name")),
	}
	if ratingQ := strings.TrimSpace(c.Query("rating")); ratingQ != "" {
		if rating, errParse := strconv.Atoi(ratingQ); errParse == nil {
			filter.Rating = rating
		}
	}

	feedbacks, errList := h.feedbacks.List(c.Request.Context(), filter)
	if errList != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": errList.Error()})
		return
	}
	c.JSON(http.StatusOK, feedbacks)
}
