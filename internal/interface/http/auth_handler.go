package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/argentum-labs/argentum/internal/application"
	"github.com/argentum-labs/argentum/internal/domain/domainerr"
	"github.com/argentum-labs/argentum/internal/domain/entity"
	repo "github.com/argentum-labs/argentum/internal/domain/repository"
	"github.com/argentum-labs/argentum/internal/interface/middleware"
	"github.com/argentum-labs/argentum/pkg/helpers"
	"github.com/argentum-labs/argentum/pkg/response"
	"github.com/argentum-labs/argentum/pkg/validation"
)

const profileCacheTTL = 5 * time.Minute

// AuthHandler exposes register, login and "who am I" over HTTP. It wraps the
// use cases, maps domain errors to transport status codes and emits the
// structured event log at each transition; the use cases themselves stay
// free of side channels.
type AuthHandler struct {
	Register *application.RegisterUser
	Login    *application.LoginUser
	Users    repo.UserRepository
	Tokens   application.TokenService
	RDB      *redis.Client
	Logger   *logrus.Logger
}

func NewAuthHandler(register *application.RegisterUser, login *application.LoginUser, users repo.UserRepository, tokens application.TokenService, rdb *redis.Client, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Register: register, Login: login, Users: users, Tokens: tokens, RDB: rdb, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,strongpwd"`
	Username string `json:"username" binding:"required,min=3,max=50"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

type tokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func clientIP(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

func sessionKey(userID string) string { return "user:session:" + userID }
func profileKey(userID string) string { return "user:profile:" + userID }

// RegisterUser handles POST /auth/register.
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	h.log(c).WithFields(logrus.Fields{"email": req.Email, "username": req.Username}).Info("register_request_received")

	out, err := h.Register.Execute(c.Request.Context(), application.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
	})
	if err != nil {
		var vErr *domainerr.ValidationError
		var existsErr *domainerr.UserAlreadyExistsError
		switch {
		case errors.As(err, &vErr):
			h.log(c).WithFields(logrus.Fields{"email": req.Email, "field": vErr.Field, "reason": "validation_error"}).Warn("register_request_failed")
			response.Error(c, http.StatusBadRequest, vErr.Message, map[string]string{vErr.Field: vErr.Message})
		case errors.As(err, &existsErr):
			h.log(c).WithFields(logrus.Fields{"email": req.Email, "field": existsErr.Field, "reason": "user_already_exists"}).Warn("register_request_failed")
			response.Error(c, http.StatusConflict, existsErr.Error(), map[string]string{"field": existsErr.Field})
		default:
			h.log(c).WithError(err).WithField("email", req.Email).Error("register_request_error")
			response.Error(c, http.StatusInternalServerError, "registration failed", nil)
		}
		return
	}

	h.log(c).WithFields(logrus.Fields{"user_id": out.ID, "email": out.Email, "username": out.Username}).Info("register_request_success")
	response.Success(c, http.StatusCreated, toUserResponse(out), "user registered", nil)
}

// LoginUser handles POST /auth/login.
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	h.log(c).WithField("email", req.Email).Info("login_request_received")

	out, err := h.Login.Execute(c.Request.Context(), application.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var vErr *domainerr.ValidationError
		var credErr *domainerr.InvalidCredentialsError
		var inactiveErr *domainerr.UserNotActiveError
		switch {
		case errors.As(err, &vErr):
			h.log(c).WithFields(logrus.Fields{"email": req.Email, "reason": "validation_error"}).Warn("login_request_failed")
			response.Error(c, http.StatusBadRequest, vErr.Message, map[string]string{vErr.Field: vErr.Message})
		case errors.As(err, &credErr):
			h.log(c).WithFields(logrus.Fields{"email": req.Email, "ip": clientIP(c), "reason": "invalid_credentials"}).Warn("login_request_failed")
			response.Error(c, http.StatusUnauthorized, credErr.Error(), nil)
		case errors.As(err, &inactiveErr):
			h.log(c).WithFields(logrus.Fields{"email": req.Email, "reason": "inactive_user"}).Warn("login_request_failed")
			response.Error(c, http.StatusForbidden, inactiveErr.Error(), nil)
		default:
			h.log(c).WithError(err).WithField("email", req.Email).Error("login_request_error")
			response.Error(c, http.StatusInternalServerError, "login failed", nil)
		}
		return
	}

	h.recordSession(c, out)

	h.log(c).WithField("email", req.Email).Info("login_request_success")
	response.Success(c, http.StatusOK, tokenResponse{
		AccessToken: out.AccessToken,
		TokenType:   out.TokenType,
		ExpiresAt:   out.ExpiresAt,
	}, "login successful", map[string]any{"expires_at": out.ExpiresAt})
}

// Me handles GET /auth/me. BearerAuth has already verified the token; a
// valid token whose subject no longer exists is a 404, distinct from the
// 401 the middleware produces for token failures.
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	userID, err := uuid.Parse(uid)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "invalid token subject", nil)
		return
	}

	if h.RDB != nil {
		var cached userResponse
		if hit, _ := helpers.RedisGetJSON(c.Request.Context(), h.RDB, profileKey(uid), &cached); hit {
			response.Success(c, http.StatusOK, cached, "current user", nil)
			return
		}
	}

	user, err := h.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		h.log(c).WithError(err).WithField("user_id", uid).Error("get_me_request_error")
		response.Error(c, http.StatusInternalServerError, "lookup failed", nil)
		return
	}
	if user == nil {
		h.log(c).WithFields(logrus.Fields{"user_id": uid, "reason": "user_not_found"}).Warn("get_me_request_failed")
		response.Error(c, http.StatusNotFound, "user not found", nil)
		return
	}

	resp := toEntityResponse(user)
	if h.RDB != nil {
		_ = helpers.RedisSetJSON(c.Request.Context(), h.RDB, profileKey(uid), resp, profileCacheTTL)
	}

	h.log(c).WithFields(logrus.Fields{"user_id": uid, "username": user.Username()}).Info("get_me_request_success")
	response.Success(c, http.StatusOK, resp, "current user", nil)
}

// recordSession keeps a login record in Redis. Best effort: a cache miss or
// a down Redis never fails the login.
func (h *AuthHandler) recordSession(c *gin.Context, out *application.LoginOutput) {
	if h.RDB == nil {
		return
	}
	claims, err := h.Tokens.Validate(out.AccessToken)
	if err != nil {
		return
	}
	key := sessionKey(claims.UserID)
	pipe := h.RDB.Pipeline()
	pipe.HSet(c.Request.Context(), key, map[string]any{
		"user_id":    claims.UserID,
		"email":      claims.Email,
		"ip":         clientIP(c),
		"logged_in":  true,
		"created_at": time.Now().UTC().Format(time.RFC3339Nano),
	})
	pipe.ExpireAt(c.Request.Context(), key, out.ExpiresAt)
	if _, err := pipe.Exec(c.Request.Context()); err != nil {
		h.log(c).WithError(err).WithField("key", key).Warn("redis pipeline failed")
	}
}

func (h *AuthHandler) log(c *gin.Context) *logrus.Entry {
	return h.Logger.WithField("request_id", c.GetString("request_id"))
}

func toUserResponse(out *application.RegisterOutput) userResponse {
	return userResponse{
		ID:         out.ID,
		Email:      out.Email,
		Username:   out.Username,
		IsActive:   out.IsActive,
		IsVerified: out.IsVerified,
		CreatedAt:  out.CreatedAt,
	}
}

func toEntityResponse(u *entity.User) userResponse {
	return userResponse{
		ID:         u.ID().String(),
		Email:      u.Email().String(),
		Username:   u.Username(),
		IsActive:   u.IsActive(),
		IsVerified: u.IsVerified(),
		CreatedAt:  u.CreatedAt(),
	}
}
