package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/apperrors"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto a status code and JSON body.
// fallback is the message used for unexpected failures.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var validationErrs *services.ValidationErrors
	var appErr *apperrors.AppError

	switch {
	case errors.As(err, &validationErrs):
		logger.Warn("Voucher failed validation", slog.Int("failed_fields", validationErrs.Len()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"message": validationErrs.First().Message,
			"errors":  validationErrs.Map(),
		})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Invalid request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No backend session. Please log in again."})
	case errors.As(err, &appErr) && appErr.Code >= 400:
		logger.Error("Backend call failed", slog.String("error", err.Error()))
		c.JSON(appErr.Code, gin.H{"success": false, "error": appErr.Message})
	case errors.Is(err, apperrors.ErrBackend):
		logger.Error("Backend call failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": services.FriendlyBackendMessage(err)})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// userID reads the authenticated user and writes a 401 when absent.
func userID(c *gin.Context, logger *slog.Logger) (string, bool) {
	id, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return id, ok
}
