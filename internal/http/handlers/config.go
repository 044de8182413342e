package handlers

import (
	"net/http"
	"strings"

	"github.com/feedbackhq/feedbackhq/internal/settings"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ConfigHandler serves runtime settings backed by the settings snapshot.
type ConfigHandler struct {
	db *gorm.DB
}

// NewConfigHandler constructs a ConfigHandler.
func NewConfigHandler(db *gorm.DB) *ConfigHandler {
	return &ConfigHandler{db: db}
}

// GetPublic returns settings safe to expose without authentication.
func (h *ConfigHandler) GetPublic(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"siteName": settings.SiteName()})
}

// updateConfigRequest defines the request body for settings updates.
type updateConfigRequest struct {
	SiteName string `json:"siteName"`
}

// Update changes runtime settings and refreshes the snapshot.
func (h *ConfigHandler) Update(c *gin.Context) {
	var body updateConfigRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Site name is required"})
		return
	}
	siteName := strings.TrimSpace(body.SiteName)
	if siteName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Site name is required"})
		return
	}

	if errSet := settings.Set(c.Request.Context(), h.db, settings.SiteNameKey, siteName); errSet != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": errSet.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated", "siteName": siteName})
}
