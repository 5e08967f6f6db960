package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/kyystore-api/internal/application"
	"github.com/oksasatya/kyystore-api/internal/interface/middleware"
	"github.com/oksasatya/kyystore-api/pkg/response"
	"github.com/oksasatya/kyystore-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewAuthHandler(svc *userapp.Service, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`

	NIK         string `json:"nik" binding:"required,nik"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Address     string `json:"address" binding:"required"`

	CardNumber string `json:"cardNumber" binding:"required,cardnum"`
	CardExpiry string `json:"cardExpiry" binding:"required"`
	CardCVV    string `json:"cardCvv" binding:"required,cvv"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Register(c.Request.Context(), userapp.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		NIK:         req.NIK,
		DateOfBirth: req.DateOfBirth,
		Phone:       req.Phone,
		Address:     req.Address,
		CardNumber:  req.CardNumber,
		CardExpiry:  req.CardExpiry,
		CardCVV:     req.CardCVV,
	})
	switch {
	case errors.Is(err, userapp.ErrEmailTaken):
		response.Error[any](c, http.StatusBadRequest, "email already registered", nil)
		return
	case err != nil:
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("register failed")
		response.Error[any](c, http.StatusInternalServerError, "registration failed", nil)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user": res.User,
		"encryption": gin.H{
			"algorithm":       res.Algorithm,
			"fieldsEncrypted": res.FieldsEncrypted,
		},
	}, "registration successful; sensitive data encrypted with "+res.Algorithm, nil)
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid email or password", nil)
		return
	}
	response.Success(c, http.StatusOK, res, "login successful", map[string]any{"expires_at": res.ExpiresAt})
}

// Me GET /api/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "no token", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"user": gin.H{
			"id":    claims.Subject,
			"role":  claims.Role,
			"name":  claims.Name,
			"email": claims.Email,
		},
	}, "current user", nil)
}
