package product

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Handler exposes category, item and pricing CRUD over HTTP. Reads are
// public; writes require a verified session.
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

// Register wires product routes. requireAuth guards the mutating endpoints.
func (h *Handler) Register(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("/product/category", h.handleListCategories)
	rg.GET("/product/category/:id", h.handleGetCategory)
	rg.GET("/product/item", h.handleListItems)
	rg.GET("/product/item/:id", h.handleGetItem)
	rg.GET("/product/item/:id/pricing", h.handleListPricing)

	protected := rg.Group("/", requireAuth)
	protected.POST("/product/category", h.handleCreateCategory)
	protected.PUT("/product/category/:id", h.handleUpdateCategory)
	protected.DELETE("/product/category/:id", h.handleDeleteCategory)
	protected.POST("/product/item", h.handleCreateItem)
	protected.PUT("/product/item/:id", h.handleUpdateItem)
	protected.DELETE("/product/item/:id", h.handleDeleteItem)
	protected.POST("/product/pricing", h.handleCreatePricing)
	protected.PUT("/product/pricing/:id", h.handleUpdatePricing)
}

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	ParentID    *uint  `json:"parent_id"`
	Description string `json:"description"`
}

type categoryUpdateRequest struct {
	Name        *string `json:"name"`
	ParentID    *uint   `json:"parent_id"`
	Description *string `json:"description"`
}

type itemRequest struct {
	SellerID    uint   `json:"seller_id" binding:"required"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Currency    string `json:"currency"`
	Stock       int    `json:"stock"`
	SKU         string `json:"sku" binding:"required"`
	Status      string `json:"status"`
}

type itemUpdateRequest struct {
	CategoryID  *uint   `json:"category_id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Currency    *string `json:"currency"`
	Stock       *int    `json:"stock"`
	Status      *string `json:"status"`
}

type pricingRequest struct {
	ProductID     uint       `json:"product_id" binding:"required"`
	BasePrice     int64      `json:"base_price" binding:"required"`
	DiscountPrice int64      `json:"discount_price"`
	Currency      string     `json:"currency"`
	ValidFrom     *time.Time `json:"valid_from"`
	ValidTo       *time.Time `json:"valid_to"`
}

type pricingUpdateRequest struct {
	BasePrice     *int64     `json:"base_price"`
	DiscountPrice *int64     `json:"discount_price"`
	Currency      *string    `json:"currency"`
	ValidFrom     *time.Time `json:"valid_from"`
	ValidTo       *time.Time `json:"valid_to"`
}

func (h *Handler) handleListCategories(c *gin.Context) {
	cats, err := h.store.ListCategories(c.Request.Context())
	if err != nil {
		h.serverError(c, "product.category.list.fail", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

func (h *Handler) handleGetCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cat, err := h.store.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.lookupError(c, "product.category.get.fail", err, id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": cat})
}

func (h *Handler) handleCreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errJSON(c, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	cat, err := h.store.CreateCategory(c.Request.Context(), Category{
		Name:        req.Name,
		ParentID:    req.ParentID,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, ErrNameTaken) {
			errJSON(c, http.StatusBadRequest, "name_taken", "category name is already used")
			return
		}
		h.serverError(c, "product.category.create.fail", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": cat})
}

func (h *Handler) handleUpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cat, err := h.store.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.lookupError(c, "product.category.lookup.fail", err, id)
		return
	}

	var req categoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}
	if req.Name != nil {
		cat.Name = *req.Name
	}
	if req.ParentID != nil {
		cat.ParentID = req.ParentID
	}
	if req.Description != nil {
		cat.Description = *req.Description
	}

	updated, err := h.store.UpdateCategory(c.Request.Context(), cat)
	if err != nil {
		if errors.Is(err, ErrNameTaken) {
			errJSON(c, http.StatusBadRequest, "name_taken", "category name is already used")
			return
		}
		h.serverError(c, "product.category.update.fail", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": updated})
}

func (h *Handler) handleDeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteCategory(c.Request.Context(), id); err != nil {
		h.serverError(c, "product.category.delete.fail", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (h *Handler) handleListItems(c *gin.Context) {
	items, err := h.store.ListItems(c.Request.Context())
	if err != nil {
		h.serverError(c, "product.item.list.fail", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) handleGetItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	it, err := h.store.GetItem(c.Request.Context(), id)
	if err != nil {
		h.lookupError(c, "product.item.get.fail", err, id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": it})
}

func (h *Handler) handleCreateItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errJSON(c, http.StatusBadRequest, "invalid_request", "seller_id, category_id, name and sku are required")
		return
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}
	currency := req.Currency
	if currency == "" {
		currency = "IDR"
	}

	it, err := h.store.CreateItem(c.Request.Context(), Item{
		SellerID:    req.SellerID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    currency,
		Stock:       req.Stock,
		SKU:         req.SKU,
		Status:      status,
	})
	if err != nil {
		if errors.Is(err, ErrSKUTaken) {
			errJSON(c, http.StatusBadRequest, "sku_taken", "sku is already used")
			return
		}
		h.serverError(c, "product.item.create.fail", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": it})
}

func (h *Handler) handleUpdateItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	it, err := h.store.GetItem(c.Request.Context(), id)
	if err != nil {
		h.lookupError(c, "product.item.lookup.fail", err, id)
		return
	}

	var req itemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}
	if req.CategoryID != nil {
		it.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		it.Name = *req.Name
	}
	if req.Description != nil {
		it.Description = *req.Description
	}
	if req.Price != nil {
		it.Price = *req.Price
	}
	if req.Currency != nil {
		it.Currency = *req.Currency
	}
	if req.Stock != nil {
		it.Stock = *req.Stock
	}
	if req.Status != nil {
		it.Status = *req.Status
	}

	updated, err := h.store.UpdateItem(c.Request.Context(), it)
	if err != nil {
		h.serverError(c, "product.item.update.fail", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": updated})
}

func (h *Handler) handleDeleteItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteItem(c.Request.Context(), id); err != nil {
		h.serverError(c, "product.item.delete.fail", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (h *Handler) handleListPricing(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	prices, err := h.store.ListPricingByProduct(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "product.pricing.list.fail", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pricing": prices})
}

func (h *Handler) handleCreatePricing(c *gin.Context) {
	var req pricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errJSON(c, http.StatusBadRequest, "invalid_request", "product_id and base_price are required")
		return
	}

	// Pricing must reference an existing item.
	if _, err := h.store.GetItem(c.Request.Context(), req.ProductID); err != nil {
		h.lookupError(c, "product.pricing.item.fail", err, req.ProductID)
		return
	}

	p := Pricing{
		ProductID:     req.ProductID,
		BasePrice:     req.BasePrice,
		DiscountPrice: req.DiscountPrice,
		Currency:      req.Currency,
	}
	if req.ValidFrom != nil {
		p.ValidFrom = *req.ValidFrom
	}
	if req.ValidTo != nil {
		p.ValidTo = *req.ValidTo
	}

	created, err := h.store.CreatePricing(c.Request.Context(), p)
	if err != nil {
		h.serverError(c, "product.pricing.create.fail", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"pricing": created})
}

func (h *Handler) handleUpdatePricing(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.store.GetPricing(c.Request.Context(), id)
	if err != nil {
		h.lookupError(c, "product.pricing.lookup.fail", err, id)
		return
	}

	var req pricingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errJSON(c, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}
	if req.BasePrice != nil {
		p.BasePrice = *req.BasePrice
	}
	if req.DiscountPrice != nil {
		p.DiscountPrice = *req.DiscountPrice
	}
	if req.Currency != nil {
		p.Currency = *req.Currency
	}
	if req.ValidFrom != nil {
		p.ValidFrom = *req.ValidFrom
	}
	if req.ValidTo != nil {
		p.ValidTo = *req.ValidTo
	}

	updated, err := h.store.UpdatePricing(c.Request.Context(), p)
	if err != nil {
		h.serverError(c, "product.pricing.update.fail", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pricing": updated})
}

func (h *Handler) serverError(c *gin.Context, event string, err error) {
	h.log.Error(event, "err", err)
	errJSON(c, http.StatusInternalServerError, "server_error", "internal error")
}

func (h *Handler) lookupError(c *gin.Context, event string, err error, id uint) {
	if errors.Is(err, ErrNotFound) {
		errJSON(c, http.StatusNotFound, "not_found", "not found")
		return
	}
	h.log.Error(event, "err", err, "id", id)
	errJSON(c, http.StatusInternalServerError, "server_error", "internal error")
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
