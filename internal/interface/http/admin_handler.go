package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/kyystore-api/internal/application"
	"github.com/oksasatya/kyystore-api/internal/domain/entity"
	"github.com/oksasatya/kyystore-api/internal/interface/middleware"
	"github.com/oksasatya/kyystore-api/pkg/response"
)

type AdminHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewAdminHandler(svc *application.Service, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

// ListCustomers GET /api/admin/users
// Decrypts customer PII on demand; every call is logged with the viewer id.
func (h *AdminHandler) ListCustomers(c *gin.Context) {
	role := entity.Role(c.GetString(middleware.CtxRoleKey))
	report, err := h.Svc.CustomerReport(c.Request.Context(), role)
	switch {
	case errors.Is(err, application.ErrForbidden):
		response.Error[any](c, http.StatusForbidden, "forbidden", nil)
		return
	case err != nil:
		h.Logger.WithError(err).Error("customer report failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to load users", nil)
		return
	}

	h.Logger.WithFields(logrus.Fields{
		"viewer_id": c.GetString(middleware.CtxUserIDKey),
		"records":   len(report.Items),
	}).Info("customer data decrypted for display")

	response.Success(c, http.StatusOK, report, "users", nil)
}
