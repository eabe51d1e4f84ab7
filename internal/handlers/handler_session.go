package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/dto"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sessionHandler stores the ERP token used when a request carries no bearer token of its own.
type sessionHandler struct {
	credentials portssvc.CredentialProvider
}

func newSessionHandler(cp portssvc.CredentialProvider) *sessionHandler {
	return &sessionHandler{credentials: cp}
}

func registerSessionRoutes(rg *gin.RouterGroup, cp portssvc.CredentialProvider) {
	h := newSessionHandler(cp)

	session := rg.Group("/session")
	{
		session.PUT("/token", h.setToken)
		session.DELETE("/token", h.clearToken)
	}
}

// setToken godoc
// @Summary Store the ERP backend token
// @Tags session
// @Accept  json
// @Param   token body dto.SetTokenRequest true "Backend token"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Failed to store token"
// @Security BearerAuth
// @Router /session/token [put]
func (h *sessionHandler) setToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for SetToken", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.credentials.SetToken(req.Token); err != nil {
		respondError(c, logger, err, "Failed to store token")
		return
	}
	logger.Info("Backend token stored")
	c.Status(http.StatusNoContent)
}

// clearToken godoc
// @Summary Forget the ERP backend token
// @Tags session
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string "Failed to clear token"
// @Security BearerAuth
// @Router /session/token [delete]
func (h *sessionHandler) clearToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.credentials.Clear(); err != nil {
		respondError(c, logger, err, "Failed to clear token")
		return
	}
	logger.Info("Backend token cleared")
	c.Status(http.StatusNoContent)
}
