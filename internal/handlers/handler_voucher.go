package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	portssvc "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/dto"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/middleware"
	"github.com/gin-gonic/gin"
)

// voucherHandler handles HTTP requests for vouchers saved on the ERP backend.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
	draftService   portssvc.DraftSvcFacade
}

// newVoucherHandler creates a new voucherHandler.
func newVoucherHandler(vs portssvc.VoucherSvcFacade, ds portssvc.DraftSvcFacade) *voucherHandler {
	return &voucherHandler{voucherService: vs, draftService: ds}
}

// registerVoucherRoutes registers routes for saved vouchers and batches.
func registerVoucherRoutes(rg *gin.RouterGroup, vs portssvc.VoucherSvcFacade, ds portssvc.DraftSvcFacade, submitLimit gin.HandlerFunc) {
	h := newVoucherHandler(vs, ds)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", submitLimit, h.submitVoucher)
		vouchers.POST("/validate", h.validateVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.PUT("/:id", h.updateVoucher)
		vouchers.DELETE("/:id", h.deleteVoucher)
		vouchers.PATCH("/:id/status", h.changeStatus)
	}

	batches := rg.Group("/batches")
	{
		batches.GET("", h.listBatches)
		batches.PUT("/:id", h.updateBatch)
		batches.DELETE("/:id", h.deleteBatch)
	}
}

// bindVoucherDraft decodes a complete draft body and writes a 400 on failure.
func bindVoucherDraft(c *gin.Context, logger *slog.Logger) (domain.VoucherDraft, bool) {
	var draft domain.VoucherDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		logger.Error("Failed to bind voucher JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return draft, false
	}
	return draft, true
}

// validateVoucher godoc
// @Summary Validate a complete voucher
// @Description Runs the voucher rules on a draft supplied in the body. Failures are keyed by field.
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   voucher body domain.VoucherDraft true "Voucher draft"
// @Success 200 {object} map[string]bool "valid"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 422 {object} map[string]interface{} "Validation failures"
// @Security BearerAuth
// @Router /vouchers/validate [post]
func (h *voucherHandler) validateVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	draft, ok := bindVoucherDraft(c, logger)
	if !ok {
		return
	}

	if err := h.draftService.ValidateVoucher(c.Request.Context(), draft); err != nil {
		respondError(c, logger, err, "Failed to validate voucher")
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// submitVoucher godoc
// @Summary Submit a complete voucher
// @Description Validates a draft supplied in the body and posts it to the ERP backend.
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   voucher body domain.VoucherDraft true "Voucher draft"
// @Success 201 {object} dto.SubmitResult
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Submission already in progress"
// @Failure 422 {object} map[string]interface{} "Validation failures"
// @Failure 502 {object} map[string]string "Backend rejected the voucher"
// @Security BearerAuth
// @Router /vouchers [post]
func (h *voucherHandler) submitVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	draft, ok := bindVoucherDraft(c, logger)
	if !ok {
		return
	}
	ownerID, ok := userID(c, logger)
	if !ok {
		return
	}

	result, err := h.draftService.SubmitVoucher(c.Request.Context(), ownerID, draft)
	if err != nil {
		respondError(c, logger, err, "Failed to submit voucher")
		return
	}

	logger.Info("Voucher submitted", slog.String("voucher_number", result.VoucherNumber))
	c.JSON(http.StatusCreated, result)
}

// listVouchers godoc
// @Summary List saved vouchers
// @Tags vouchers
// @Produce  json
// @Param   page query int false "Page number"
// @Param   limit query int false "Page size (max 100)"
// @Param   search query string false "Search text"
// @Param   voucherType query string false "Payment, Receipt, Journal or Batch"
// @Param   status query string false "Draft, Posted or Void"
// @Param   isBatch query bool false "Only batch vouchers"
// @Param   nextToken query string false "Token of the next page"
// @Success 200 {object} dto.ListVouchersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 502 {object} map[string]string "Backend error"
// @Security BearerAuth
// @Router /vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListVouchers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.voucherService.ListVouchers(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list vouchers")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateVoucher godoc
// @Summary Update a saved voucher
// @Description Validates the edited voucher and replaces it on the backend. Journal vouchers cannot be edited.
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   id path string true "Voucher ID"
// @Param   voucher body domain.VoucherDraft true "Edited voucher"
// @Success 200 {object} domain.Voucher
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 422 {object} map[string]interface{} "Validation failures"
// @Failure 502 {object} map[string]string "Backend error"
// @Security BearerAuth
// @Router /vouchers/{id} [put]
func (h *voucherHandler) updateVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	draft, ok := bindVoucherDraft(c, logger)
	if !ok {
		return
	}

	v, err := h.voucherService.UpdateVoucher(c.Request.Context(), c.Param("id"), draft)
	if err != nil {
		respondError(c, logger, err, "Failed to update voucher")
		return
	}
	logger.Info("Voucher updated", slog.String("voucher_id", c.Param("id")))
	c.JSON(http.StatusOK, v)
}

// deleteVoucher godoc
// @Summary Delete a saved voucher
// @Tags vouchers
// @Param   id path string true "Voucher ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 502 {object} map[string]string "Backend error"
// @Security BearerAuth
// @Router /vouchers/{id} [delete]
func (h *voucherHandler) deleteVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.voucherService.DeleteVoucher(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete voucher")
		return
	}
	logger.Info("Voucher deleted", slog.String("voucher_id", c.Param("id")))
	c.Status(http.StatusNoContent)
}

// changeStatus godoc
// @Summary Change the status of a saved voucher
// @Description Only Draft vouchers can be moved to Posted.
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   id path string true "Voucher ID"
// @Param   status body dto.ChangeStatusRequest true "Current and new status"
// @Success 200 {object} domain.Voucher
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Failure 502 {object} map[string]string "Backend error"
// @Security BearerAuth
// @Router /vouchers/{id}/status [patch]
func (h *voucherHandler) changeStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for ChangeStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	v, err := h.voucherService.ChangeStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to change voucher status")
		return
	}
	logger.Info("Voucher status changed", slog.String("voucher_id", c.Param("id")), slog.String("status", string(req.Status)))
	c.JSON(http.StatusOK, v)
}

// listBatches godoc
// @Summary List saved batch vouchers
// @Tags batches
// @Produce  json
// @Param   page query int false "Page number"
// @Param   limit query int false "Page size (max 100)"
// @Param   search query string false "Search text"
// @Param   nextToken query string false "Token of the next page"
// @Success 200 {object} dto.ListVouchersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 502 {object} map[string]string "Backend error"
// @Security BearerAuth
// @Router /batches [get]
func (h *voucherHandler) listBatches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListBatches", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.voucherService.ListBatches(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list batches")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateBatch godoc
// @Summary Update a saved batch voucher
// @Tags batches
// @Accept  json
// @Produce  json
// @Param   id path string true "Batch ID"
// @Param   voucher body domain.VoucherDraft true "Edited batch"
// @Success 200 {object} domain.Voucher
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 422 {object} map[string]interface{} "Validation failures"
// @Failure 502 {object} map[string]string "Backend error"
// @Security BearerAuth
// @Router /batches/{id} [put]
func (h *voucherHandler) updateBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	draft, ok := bindVoucherDraft(c, logger)
	if !ok {
		return
	}

	v, err := h.voucherService.UpdateBatch(c.Request.Context(), c.Param("id"), draft)
	if err != nil {
		respondError(c, logger, err, "Failed to update batch")
		return
	}
	c.JSON(http.StatusOK, v)
}

// deleteBatch godoc
// @Summary Delete a saved batch voucher
// @Tags batches
// @Param   id path string true "Batch ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 502 {object} map[string]string "Backend error"
// @Security BearerAuth
// @Router /batches/{id} [delete]
func (h *voucherHandler) deleteBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.voucherService.DeleteBatch(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete batch")
		return
	}
	c.Status(http.StatusNoContent)
}
