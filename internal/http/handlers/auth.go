package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/feedbackhq/feedbackhq/internal/config"
	"github.com/feedbackhq/feedbackhq/internal/security"
	"github.com/feedbackhq/feedbackhq/internal/store"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// minPasswordLength is the minimum accepted admin password length.
const minPasswordLength = 6

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	admins *store.AdminStore
	jwtCfg config.JWTConfig
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(admins *store.AdminStore, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{admins: admins, jwtCfg: jwtCfg}
}

// loginRequest defines the request body for login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an admin and issues a bearer token.
//
// Unknown email and wrong password return the same generic message so the
// response does not reveal which field was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var body loginRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}
	if strings.TrimSpace(body.Email) == "" || body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	admin, errFind := h.admins.FindByEmail(c.Request.Context(), body.Email)
	if errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			log.Warnf("login failed: admin not found for email %s", store.NormalizeEmail(body.Email))
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": errFind.Error()})
		return
	}

	if !security.CheckPassword(admin.Password, body.Password) {
		log.Warnf("login failed: invalid password for email %s", admin.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, errToken := security.GenerateAdminToken(h.jwtCfg.Secret, admin.ID, admin.Email, h.jwtCfg.TokenTTL)
	if errToken != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": errToken.Error()})
		return
	}

	log.Infof("login successful for %s", admin.Email)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"email": admin.Email,
			"name":  admin.Name,
			"id":    admin.ID,
		},
	})
}

// registerRequest defines the request body for admin registration.
type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Register creates a new admin account. The route is protected, so only an
// authenticated admin can create another one.
func (h *AuthHandler) Register(c *gin.Context) {
	var body registerRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}
	if strings.TrimSpace(body.Email) == "" || body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}
	if len(body.Password) < minPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 6 characters"})
		return
	}

	admin, errCreate := h.admins.Create(c.Request.Context(), body.Email, body.Password, body.Name)
	if errCreate != nil {
		if errors.Is(errCreate, store.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Admin with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": errCreate.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin created successfully",
		"admin":   admin,
	})
}

// ListAdmins returns all admin accounts, newest first. Password hashes are
// never serialized.
func (h *AuthHandler) ListAdmins(c *gin.Context) {
	admins, errList := h.admins.ListAll(c.Request.Context())
	if errList != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": errList.Error()})
		return
	}
	c.JSON(http.StatusOK, admins)
}
