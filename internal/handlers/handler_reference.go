package handlers

import (
	"net/http"

	portssvc "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/middleware"
	"github.com/gin-gonic/gin"
)

// referenceHandler serves the account, bank and party lists used by voucher forms.
type referenceHandler struct {
	referenceService portssvc.ReferenceSvc
}

func newReferenceHandler(rs portssvc.ReferenceSvc) *referenceHandler {
	return &referenceHandler{referenceService: rs}
}

func registerReferenceRoutes(rg *gin.RouterGroup, rs portssvc.ReferenceSvc) {
	h := newReferenceHandler(rs)

	ref := rg.Group("/reference")
	{
		ref.GET("", h.getReferenceData)
		ref.POST("/refresh", h.refreshReferenceData)
	}
}

// getReferenceData godoc
// @Summary Get reference lists
// @Description Returns chart accounts, cash accounts, banks, customers and suppliers. Lists are cached.
// @Tags reference
// @Produce  json
// @Success 200 {object} domain.ReferenceData
// @Failure 401 {object} map[string]string "No backend session"
// @Failure 502 {object} map[string]string "Backend error"
// @Security BearerAuth
// @Router /reference [get]
func (h *referenceHandler) getReferenceData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ref, err := h.referenceService.GetReferenceData(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to load reference data")
		return
	}
	c.JSON(http.StatusOK, ref)
}

// refreshReferenceData godoc
// @Summary Reload reference lists
// @Description Drops the cached lists and loads them again from the backend.
// @Tags reference
// @Produce  json
// @Success 200 {object} domain.ReferenceData
// @Failure 502 {object} map[string]string "Backend error"
// @Security BearerAuth
// @Router /reference/refresh [post]
func (h *referenceHandler) refreshReferenceData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ref, err := h.referenceService.Refresh(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to reload reference data")
		return
	}
	logger.Info("Reference data reloaded")
	c.JSON(http.StatusOK, ref)
}
