package merchant

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	authapi "marketplace/cmd/internal/auth/api"
)

// Handler exposes merchant CRUD over HTTP. Reads are public; writes require a
// verified session, and update/delete additionally require ownership.
type Handler struct {
	log   *slog.Logger
	store Store
}

func NewHandler(log *slog.Logger, store Store) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{log: log, store: store}
}

// Register wires merchant routes. requireAuth guards the mutating endpoints.
func (h *Handler) Register(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("/merchant/data", h.handleList)
	rg.GET("/merchant/data/:id", h.handleGet)

	protected := rg.Group("/", requireAuth)
	protected.POST("/merchant/data", h.handleCreate)
	protected.PUT("/merchant/data/:id", h.handleUpdate)
	protected.DELETE("/merchant/data/:id", h.handleDelete)
}

type createRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	City        string `json:"city"`
}

type updateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	City        *string `json:"city"`
}

func (h *Handler) handleList(c *gin.Context) {
	merchants, err := h.store.List(c.Request.Context())
	if err != nil {
		h.log.Error("merchant.list.fail", "err", err)
		errJSON(c, http.StatusInternalServerError, "server_error", "internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"merchants": merchants})
}

func (h *Handler) handleGet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	m, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			errJSON(c, http.StatusNotFound, "not_found", "merchant not found")
			return
		}
		h.log.Error("merchant.get.fail", "err", err, "id", id)
		errJSON(c, http.StatusInternalServerError, "server_error", "internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"merchant": m})
}

func (h *Handler) handleCreate(c *gin.Context) {
	owner, ok := authapi.OwnerFromContext(c)
	if !ok {
		errJSON(c, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errJSON(c, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	m, err := h.store.Create(c.Request.Context(), Merchant{
		Name:        req.Name,
		Description: req.Description,
		City:        req.City,
		Owner:       owner,
	})
	if err != nil {
		if errors.Is(err, ErrNameTaken) {
			errJSON(c, http.StatusBadRequest, "name_taken", "merchant name is already used")
			return
		}
		h.log.Error("merchant.create.fail", "err", err, "owner", owner)
		errJSON(c, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"merchant": m})
}

func (h *Handler) handleUpdate(c *gin.Context) {
	m, ok := h.ownedMerchant(c)
	if !ok {
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.City != nil {
		m.City = *req.City
	}

	updated, err := h.store.Update(c.Request.Context(), m)
	if err != nil {
		if errors.Is(err, ErrNameTaken) {
			errJSON(c, http.StatusBadRequest, "name_taken", "merchant name is already used")
			return
		}
		h.log.Error("merchant.update.fail", "err", err, "id", m.ID)
		errJSON(c, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"merchant": updated})
}

func (h *Handler) handleDelete(c *gin.Context) {
	m, ok := h.ownedMerchant(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), m.ID); err != nil {
		h.log.Error("merchant.delete.fail", "err", err, "id", m.ID)
		errJSON(c, http.StatusInternalServerError, "server_error", "internal error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// ownedMerchant loads the path merchant and enforces that the verified session
// owner matches the merchant owner. It writes the response on failure.
func (h *Handler) ownedMerchant(c *gin.Context) (Merchant, bool) {
	owner, ok := authapi.OwnerFromContext(c)
	if !ok {
		errJSON(c, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return Merchant{}, false
	}

	id, ok := pathID(c)
	if !ok {
		return Merchant{}, false
	}

	m, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			errJSON(c, http.StatusNotFound, "not_found", "merchant not found")
			return Merchant{}, false
		}
		h.log.Error("merchant.lookup.fail", "err", err, "id", id)
		errJSON(c, http.StatusInternalServerError, "server_error", "internal error")
		return Merchant{}, false
	}

	if m.Owner != owner {
		errJSON(c, http.StatusForbidden, "forbidden", "merchant belongs to another user")
		return Merchant{}, false
	}
	return m, true
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errJSON(c, http.StatusBadRequest, "invalid_request", "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

func errJSON(c *gin.Context, status int, code, msg string) {
	c.JSON(status, gin.H{"error": gin.H{"code": code, "message": msg}})
}
