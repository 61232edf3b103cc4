package catalog

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	v1 "github.com/acquisitions-lab/acquisitions/internal/api/v1"
	"github.com/acquisitions-lab/acquisitions/internal/auth"
	httperr "github.com/acquisitions-lab/acquisitions/internal/core/errors"
	"github.com/acquisitions-lab/acquisitions/internal/core/storage"
	"github.com/gin-gonic/gin"
)

const (
	msgProductNotFound = "Product not found"
	msgProductRemoved  = "Product removed"
)

type createProductRequest struct {
	Name     string      `json:"name" binding:"required,min=2,max=255"`
	Category v1.Category `json:"category" binding:"required,oneof=beauty supplement"`
	ImageURL string      `json:"imageUrl" binding:"required,url"`
	LinkURL  string      `json:"linkUrl" binding:"required,url"`
}

type updateProductRequest struct {
	Name     *string      `json:"name" binding:"omitempty,min=2,max=255"`
	Category *v1.Category `json:"category" binding:"omitempty,oneof=beauty supplement"`
	ImageURL *string      `json:"imageUrl" binding:"omitempty,url"`
	LinkURL  *string      `json:"linkUrl" binding:"omitempty,url"`
}

func (r updateProductRequest) patch() v1.ProductPatch {
	return v1.ProductPatch{
		Name:     r.Name,
		Category: r.Category,
		ImageURL: r.ImageURL,
		LinkURL:  r.LinkURL,
	}
}

// RegisterRoutes mounts the catalog under /api/products. Writes go through guard,
// typically authentication followed by an admin role check.
func (s *Service) RegisterRoutes(r gin.IRouter, guard ...gin.HandlerFunc) {
	group := r.Group("/api/products")
	group.GET("", s.listHandler)
	group.POST("", append(guard, s.createHandler)...)
	group.PATCH("/:id", append(guard, s.updateHandler)...)
	group.DELETE("/:id", append(guard, s.deleteHandler)...)
}

func validationFailed(c *gin.Context, details []httperr.FieldError) {
	c.JSON(http.StatusBadRequest, httperr.ErrorResponse{Error: httperr.HttpValidationFailed, Details: details})
}

// productID parses :id as a positive integer, answering 400 otherwise.
func productID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		validationFailed(c, []httperr.FieldError{{Field: "id", Message: "must be a positive integer"}})
		return 0, false
	}
	return id, true
}

func (s *Service) listHandler(c *gin.Context) {
	products, err := s.ListProducts(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (s *Service) createHandler(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err, httperr.HttpValidationFailed)
		return
	}

	product := &v1.NewProduct{
		Name:     req.Name,
		Category: req.Category,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
	}
	if claims, ok := auth.CurrentClaims(c); ok {
		product.CreatedBy = &claims.ID
	}

	created, err := s.CreateProduct(c.Request.Context(), product)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": created})
}

func (s *Service) updateHandler(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err, httperr.HttpValidationFailed)
		return
	}

	updated, err := s.UpdateProduct(c.Request.Context(), id, req.patch())
	switch {
	case errors.Is(err, ErrNoUpdates):
		validationFailed(c, []httperr.FieldError{{Field: "body", Message: ErrNoUpdates.Error()}})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{Error: msgProductNotFound})
	case err != nil:
		_ = c.Error(err)
	default:
		c.JSON(http.StatusOK, gin.H{"product": updated})
	}
}

func (s *Service) deleteHandler(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	_, err := s.DeleteProduct(c.Request.Context(), id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		slog.Debug("[Catalog] Delete of unknown product", "product_id", id)
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{Error: msgProductNotFound})
	case err != nil:
		_ = c.Error(err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": msgProductRemoved})
	}
}
