package admin

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sahilchouksey/pixel-portfolio/model"
	authutil "github.com/sahilchouksey/pixel-portfolio/utils/auth"
	"github.com/sahilchouksey/pixel-portfolio/utils/middleware"
	"github.com/sahilchouksey/pixel-portfolio/utils/response"
	"github.com/sahilchouksey/pixel-portfolio/utils/validation"
	"gorm.io/gorm"
)

// AuthHandler handles admin console sessions
type AuthHandler struct {
	db                   *gorm.DB
	jwtManager           *authutil.JWTManager
	blacklistService     *authutil.BlacklistService
	bruteForceProtection *middleware.BruteForceProtection
	validator            *validation.Validator

	// unknownUserHash is compared against when the username does not exist
	// so both failure paths pay for a bcrypt comparison.
	unknownUserHash string
	verifyPassword  func(hashedPassword, password string) error
}

// NewAuthHandler creates a new auth handler. bruteForceProtection may be nil.
func NewAuthHandler(db *gorm.DB, jwtManager *authutil.JWTManager, bruteForceProtection *middleware.BruteForceProtection) *AuthHandler {
	unknownUserHash, err := authutil.HashPassword(uuid.NewString())
	if err != nil {
		log.Printf("Failed to prepare login hash: %v", err)
	}

	return &AuthHandler{
		db:                   db,
		jwtManager:           jwtManager,
		blacklistService:     authutil.NewBlacklistService(db),
		bruteForceProtection: bruteForceProtection,
		validator:            validation.NewValidator(),
		unknownUserHash:      unknownUserHash,
		verifyPassword:       authutil.VerifyPassword,
	}
}

// LoginRequest represents an admin login request
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required"`
}

// UserResponse represents the operator in responses
type UserResponse struct {
	ID          uint       `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	ExpiresIn   int          `json:"expires_in"` // in seconds
}

func toUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Role:        user.Role(),
		LastLoginAt: user.LastLoginAt,
	}
}

// Login handles POST /admin/api/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Username = strings.TrimSpace(req.Username)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, validation.FormatValidationErrors(err))
	}

	var user model.User
	if err := h.db.WithContext(c.UserContext()).Where("username = ?", req.Username).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return response.InternalServerError(c, "Failed to load user")
		}
		_ = h.verifyPassword(h.unknownUserHash, req.Password)
		// Record failed attempt even if user not found
		h.bruteForceProtection.RecordFailedAttempt(c, req.Username)
		return response.Unauthorized(c, "Invalid username or password")
	}

	if err := h.verifyPassword(user.PasswordHash, req.Password); err != nil {
		h.bruteForceProtection.RecordFailedAttempt(c, req.Username)
		return response.Unauthorized(c, "Invalid username or password")
	}

	if !user.IsSuperuser {
		return response.Forbidden(c, "Admin access required")
	}

	h.bruteForceProtection.RecordSuccessfulAttempt(c)

	issued, err := h.jwtManager.GenerateAccessToken(user.ID, user.Username, user.Role(), user.TokenVersion)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate access token")
	}

	now := time.Now()
	if err := h.db.WithContext(c.UserContext()).Model(&user).UpdateColumn("last_login_at", now).Error; err != nil {
		return response.InternalServerError(c, "Failed to record login")
	}
	user.LastLoginAt = &now

	c.Locals("user", &user)
	h.audit(c, middleware.AuditLogin, user.ID)

	return response.Success(c, LoginResponse{
		User:        toUserResponse(&user),
		AccessToken: issued.Token,
		ExpiresIn:   int(time.Until(issued.ExpiresAt).Seconds()),
	})
}

// Logout handles POST /admin/api/logout by revoking the presented token
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	expiresAt := time.Now().Add(authutil.DefaultTokenExpiry)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	if err := h.blacklistService.RevokeToken(c.UserContext(), claims.ID, claims.UserID, expiresAt, "logout"); err != nil {
		return response.InternalServerError(c, "Failed to revoke token")
	}
	h.audit(c, middleware.AuditLogout, claims.UserID)

	return response.SuccessWithMessage(c, "Logged out successfully", nil)
}

// Me handles GET /admin/api/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "")
	}
	return response.Success(c, toUserResponse(user))
}

func (h *AuthHandler) audit(c *fiber.Ctx, action string, userID uint) {
	entry := middleware.AuditEntry{Action: action, Resource: "users", ResourceID: userID}
	if err := middleware.RecordAudit(h.db, c, entry); err != nil {
		logAuditFailure(entry, err)
	}
}
