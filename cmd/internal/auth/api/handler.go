package authapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"marketplace/cmd/identity"
	"marketplace/cmd/internal/auth/session"
	"marketplace/cmd/internal/metrics"
)

// Handler wires user registration, login, logout and profile endpoints to the
// identity store and the session authority.
type Handler struct {
	log      *slog.Logger
	users    identity.Store
	sessions *session.Authority

	dummyHash string
}

// NewHandler constructs an auth Handler.
func NewHandler(log *slog.Logger, users identity.Store, sessions *session.Authority) *Handler {
	if log == nil {
		log = slog.Default()
	}

	h := &Handler{log: log, users: users, sessions: sessions}

	// Dummy hash for timing-resistant login checks.
	if hash, err := identity.HashPassword("dummy-password-for-timing-only"); err == nil {
		h.dummyHash = hash
	}

	return h
}

// Register wires auth routes onto the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/user/data", h.handleRegister)
	rg.POST("/user/auth/login", h.handleLogin)

	protected := rg.Group("/", h.RequireAuth())
	protected.PUT("/user/data", h.handleUpdate)
	protected.GET("/user/me", h.handleMe)
	protected.POST("/user/auth/logout", h.handleLogout)
}

func (h *Handler) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", "username, password and phone are required")
		return
	}

	hash, err := identity.HashPassword(req.Password)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid_password", "password does not meet length bounds")
		return
	}

	user, err := h.users.Create(c.Request.Context(), identity.User{
		Username: req.Username,
		Password: hash,
		FullName: req.FullName,
		Phone:    identity.NormalizePhone(req.Phone),
		Email:    req.Email,
	})
	if err != nil {
		if identity.IsConflict(err) {
			writeError(c, http.StatusBadRequest, "username_taken", "username is already used")
			return
		}
		h.log.Error("auth.register.fail", "err", err)
		writeError(c, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	c.JSON(http.StatusCreated, registerResponse{User: toUserResponse(user)})
}

func (h *Handler) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", "username and password are required")
		return
	}

	ctx := c.Request.Context()
	now := time.Now().UTC()

	user, err := h.users.GetByUsername(ctx, req.Username)
	if err != nil {
		// Timing resistance: perform a dummy verify when the user is missing.
		if h.dummyHash != "" {
			_ = identity.VerifyPassword(req.Password, h.dummyHash)
		}
		metrics.Logins.WithLabelValues("invalid_credentials").Inc()
		writeError(c, http.StatusUnauthorized, "invalid_credentials", "username or password is incorrect")
		return
	}

	if !identity.VerifyPassword(req.Password, user.Password) {
		metrics.Logins.WithLabelValues("invalid_credentials").Inc()
		writeError(c, http.StatusUnauthorized, "invalid_credentials", "username or password is incorrect")
		return
	}

	minted, err := h.sessions.Mint(ctx, now, user.Username, user.Phone)
	if err != nil {
		metrics.Logins.WithLabelValues("error").Inc()
		h.log.Error("auth.login.mint.fail", "err", err, "kind", session.Kind(err))
		writeError(c, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	metrics.Logins.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, loginResponse{
		Username:  user.Username,
		Token:     minted.Credential,
		ExpiresAt: minted.ExpiresAt,
	})
}

func (h *Handler) handleLogout(c *gin.Context) {
	owner, ok := OwnerFromContext(c)
	if !ok {
		writeUnauthorized(c)
		return
	}

	if err := h.sessions.Revoke(c.Request.Context(), owner); err != nil {
		// Logout never fails visibly; the row is gone or will expire.
		h.log.Error("auth.logout.revoke.fail", "err", err, "owner", owner)
	}

	c.JSON(http.StatusOK, statusResponse{Status: "OK", Message: "user " + owner + " is logged out"})
}

func (h *Handler) handleMe(c *gin.Context) {
	owner, ok := OwnerFromContext(c)
	if !ok {
		writeUnauthorized(c)
		return
	}

	user, err := h.users.GetByUsername(c.Request.Context(), owner)
	if err != nil {
		h.log.Error("auth.me.fail", "err", err, "owner", owner)
		writeError(c, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	c.JSON(http.StatusOK, meResponse{User: toUserResponse(user)})
}

func (h *Handler) handleUpdate(c *gin.Context) {
	owner, ok := OwnerFromContext(c)
	if !ok {
		writeUnauthorized(c)
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	ctx := c.Request.Context()
	user, err := h.users.GetByUsername(ctx, owner)
	if err != nil {
		h.log.Error("auth.update.lookup.fail", "err", err, "owner", owner)
		writeError(c, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = identity.NormalizePhone(*req.Phone)
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if req.Password != nil {
		hash, err := identity.HashPassword(*req.Password)
		if err != nil {
			writeError(c, http.StatusBadRequest, "invalid_password", "password does not meet length bounds")
			return
		}
		user.Password = hash
	}

	updated, err := h.users.Update(ctx, user)
	if err != nil {
		if identity.IsConflict(err) {
			writeError(c, http.StatusBadRequest, "conflict", "phone or email is already used")
			return
		}
		h.log.Error("auth.update.fail", "err", err, "owner", owner)
		writeError(c, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	c.JSON(http.StatusOK, meResponse{User: toUserResponse(updated)})
}
