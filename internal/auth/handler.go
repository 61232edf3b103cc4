package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	v1 "github.com/acquisitions-lab/acquisitions/internal/api/v1"
	httperr "github.com/acquisitions-lab/acquisitions/internal/core/errors"
	"github.com/acquisitions-lab/acquisitions/internal/core/storage"
	"github.com/gin-gonic/gin"
)

const (
	msgSignedUp     = "User signed up successfully"
	msgSignedIn     = "User signed in successfully"
	msgSignedOut    = "User signed out successfully"
	msgUserExists   = "User already exists"
	msgBadLogin     = "Invalid email or password"
	msgUserNotFound = "User not found"
)

type signUpRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Email    string  `json:"email" binding:"required,min=2,max=255,contains=@"`
	Password string  `json:"password" binding:"required,min=6,max=25"`
	Role     v1.Role `json:"role" binding:"omitempty,oneof=user admin"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,min=2,max=255"`
	Password string `json:"password" binding:"required,min=6,max=25"`
}

// Handler serves the /api/auth endpoints.
type Handler struct {
	svc    *Service
	authn  *Authenticator
	cookie CookieOptions
}

func NewHandler(svc *Service, authn *Authenticator, cookie CookieOptions) *Handler {
	return &Handler{svc: svc, authn: authn, cookie: cookie}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	group := r.Group("/api/auth")
	group.POST("/sign-up", h.SignUp)
	group.POST("/sign-in", h.SignIn)
	group.POST("/sign-out", h.SignOut)
	group.GET("/me", h.authn.Authenticate(), h.Me)
}

func invalidInput(c *gin.Context, details []httperr.FieldError) {
	c.JSON(http.StatusBadRequest, httperr.ErrorResponse{Error: httperr.HttpInvalidInput, Details: details})
}

func (h *Handler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("[Auth] Validation error during sign-up", "error", err)
		httperr.AbortBind(c, err, httperr.HttpInvalidInput)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(req.Name) < 2 {
		invalidInput(c, []httperr.FieldError{{Field: "name", Message: "must be at least 2 characters"}})
		return
	}

	user, token, err := h.svc.SignUp(c.Request.Context(), SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if errors.Is(err, ErrUserExists) {
		c.JSON(http.StatusConflict, httperr.ErrorResponse{Error: msgUserExists})
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.cookie.set(c, token)
	c.JSON(http.StatusCreated, gin.H{"message": msgSignedUp, "user": user.Public()})
}

func (h *Handler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("[Auth] Validation error during sign-in", "error", err)
		httperr.AbortBind(c, err, httperr.HttpInvalidInput)
		return
	}

	user, token, err := h.svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, httperr.ErrorResponse{Error: msgBadLogin})
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.cookie.set(c, token)
	c.JSON(http.StatusOK, gin.H{"message": msgSignedIn, "user": user.Public()})
}

func (h *Handler) SignOut(c *gin.Context) {
	h.cookie.clear(c)
	c.JSON(http.StatusOK, gin.H{"message": msgSignedOut})
}

func (h *Handler) Me(c *gin.Context) {
	claims, _ := CurrentClaims(c)

	user, err := h.svc.Me(c.Request.Context(), claims)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{Error: msgUserNotFound})
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}
