package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/domain"
	portssvc "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/core/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/dto"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/middleware"
	"github.com/gin-gonic/gin"
)

// draftHandler handles HTTP requests for voucher drafts.
type draftHandler struct {
	draftService portssvc.DraftSvcFacade
}

// newDraftHandler creates a new draftHandler.
func newDraftHandler(ds portssvc.DraftSvcFacade) *draftHandler {
	return &draftHandler{draftService: ds}
}

// registerDraftRoutes registers routes related to drafts. submitLimit guards the submit route.
func registerDraftRoutes(rg *gin.RouterGroup, draftService portssvc.DraftSvcFacade, submitLimit gin.HandlerFunc) {
	h := newDraftHandler(draftService)

	drafts := rg.Group("/drafts")
	{
		drafts.POST("", h.createDraft)
		drafts.GET("", h.listDrafts)
		drafts.POST("/open", h.openVoucher)
		drafts.GET("/:draftID", h.getDraft)
		drafts.PUT("/:draftID", h.updateDraftHeader)
		drafts.DELETE("/:draftID", h.discardDraft)
		drafts.POST("/:draftID/rows", h.addRow)
		drafts.DELETE("/:draftID/rows/:index", h.removeRow)
		drafts.PATCH("/:draftID/rows/:index", h.updateRow)
		drafts.POST("/:draftID/rows/:index/commit", h.commitRow)
		drafts.POST("/:draftID/validate", h.validateDraft)
		drafts.POST("/:draftID/submit", submitLimit, h.submitDraft)
	}
}

func draftResponse(d *domain.VoucherDraft) dto.DraftResponse {
	return dto.DraftResponse{Draft: *d, VisibleFields: services.VisibleFields(*d).List()}
}

// createDraft godoc
// @Summary Open a voucher draft
// @Description Creates an empty draft in the initial shape of the voucher type
// @Tags drafts
// @Accept  json
// @Produce  json
// @Param   draft body dto.CreateDraftRequest true "Voucher type"
// @Success 201 {object} dto.DraftResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create draft"
// @Security BearerAuth
// @Router /drafts [post]
func (h *draftHandler) createDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreateDraft", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ownerID, ok := userID(c, logger)
	if !ok {
		return
	}

	draft, err := h.draftService.CreateDraft(c.Request.Context(), ownerID, req.VoucherType)
	if err != nil {
		respondError(c, logger, err, "Failed to create draft")
		return
	}

	logger.Info("Draft created", slog.String("draft_id", draft.DraftID), slog.String("voucher_type", string(draft.VoucherType)))
	c.JSON(http.StatusCreated, draftResponse(draft))
}

// openVoucher godoc
// @Summary Edit a saved voucher
// @Description Copies a voucher taken from the voucher list into a new draft. Submitting that draft updates the saved voucher.
// @Tags drafts
// @Accept  json
// @Produce  json
// @Param   voucher body domain.Voucher true "Saved voucher"
// @Success 201 {object} dto.DraftResponse
// @Failure 400 {object} map[string]string "Invalid request or voucher cannot be edited"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /drafts/open [post]
func (h *draftHandler) openVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var voucher domain.Voucher
	if err := c.ShouldBindJSON(&voucher); err != nil {
		logger.Error("Failed to bind JSON for OpenVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ownerID, ok := userID(c, logger)
	if !ok {
		return
	}

	draft, err := h.draftService.OpenVoucher(c.Request.Context(), ownerID, voucher)
	if err != nil {
		respondError(c, logger, err, "Failed to open voucher")
		return
	}
	c.JSON(http.StatusCreated, draftResponse(draft))
}

// listDrafts godoc
// @Summary List my drafts
// @Description Pages through the drafts of the authenticated user, newest first
// @Tags drafts
// @Produce  json
// @Param   limit query int false "Page size (max 100)"
// @Param   nextToken query string false "Token of the next page"
// @Success 200 {object} dto.ListDraftsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list drafts"
// @Security BearerAuth
// @Router /drafts [get]
func (h *draftHandler) listDrafts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListDraftsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListDrafts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	ownerID, ok := userID(c, logger)
	if !ok {
		return
	}

	resp, err := h.draftService.ListDrafts(c.Request.Context(), ownerID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list drafts")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getDraft godoc
// @Summary Get a draft
// @Description Returns a draft together with the fields currently shown for it
// @Tags drafts
// @Produce  json
// @Param   draftID path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /drafts/{draftID} [get]
func (h *draftHandler) getDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := userID(c, logger)
	if !ok {
		return
	}

	draft, err := h.draftService.GetDraft(c.Request.Context(), c.Param("draftID"), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to get draft")
		return
	}
	c.JSON(http.StatusOK, draftResponse(draft))
}

// updateDraftHeader godoc
// @Summary Update draft header fields
// @Description Changes date, reference, settlement and party fields. Omitted fields are left untouched.
// @Tags drafts
// @Accept  json
// @Produce  json
// @Param   draftID path string true "Draft ID"
// @Param   header body dto.UpdateDraftHeaderRequest true "Header fields"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Conflict"
// @Security BearerAuth
// @Router /drafts/{draftID} [put]
func (h *draftHandler) updateDraftHeader(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateDraftHeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for UpdateDraftHeader", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ownerID, ok := userID(c, logger)
	if !ok {
		return
	}

	draft, err := h.draftService.UpdateHeader(c.Request.Context(), c.Param("draftID"), ownerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update draft")
		return
	}
	c.JSON(http.StatusOK, draftResponse(draft))
}

// discardDraft godoc
// @Summary Discard a draft
// @Tags drafts
// @Param   draftID path string true "Draft ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /drafts/{draftID} [delete]
func (h *draftHandler) discardDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := userID(c, logger)
	if !ok {
		return
	}

	if err := h.draftService.DiscardDraft(c.Request.Context(), c.Param("draftID"), ownerID); err != nil {
		respondError(c, logger, err, "Failed to discard draft")
		return
	}
	logger.Info("Draft discarded", slog.String("draft_id", c.Param("draftID")))
	c.Status(http.StatusNoContent)
}

// addRow godoc
// @Summary Append an entry row
// @Tags drafts
// @Produce  json
// @Param   draftID path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /drafts/{draftID}/rows [post]
func (h *draftHandler) addRow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := userID(c, logger)
	if !ok {
		return
	}

	draft, err := h.draftService.AddRow(c.Request.Context(), c.Param("draftID"), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to add row")
		return
	}
	c.JSON(http.StatusOK, draftResponse(draft))
}

// removeRow godoc
// @Summary Remove an entry row
// @Description Removes the row at index. The first row and the last two journal rows cannot be removed.
// @Tags drafts
// @Produce  json
// @Param   draftID path string true "Draft ID"
// @Param   index path int true "Row index"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} map[string]string "Row cannot be removed"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /drafts/{draftID}/rows/{index} [delete]
func (h *draftHandler) removeRow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	index, ok := rowIndex(c, logger)
	if !ok {
		return
	}
	ownerID, ok := userID(c, logger)
	if !ok {
		return
	}

	draft, err := h.draftService.RemoveRow(c.Request.Context(), c.Param("draftID"), ownerID, index)
	if err != nil {
		respondError(c, logger, err, "Failed to remove row")
		return
	}
	c.JSON(http.StatusOK, draftResponse(draft))
}

// updateRow godoc
// @Summary Update one field of an entry row
// @Description Amount fields are buffered as typed until committed.
// @Tags drafts
// @Accept  json
// @Produce  json
// @Param   draftID path string true "Draft ID"
// @Param   index path int true "Row index"
// @Param   row body dto.UpdateRowRequest true "Field and value"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /drafts/{draftID}/rows/{index} [patch]
func (h *draftHandler) updateRow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	index, ok := rowIndex(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for UpdateRow", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ownerID, ok := userID(c, logger)
	if !ok {
		return
	}

	draft, err := h.draftService.UpdateRow(c.Request.Context(), c.Param("draftID"), ownerID, index, req.Field, req.Value)
	if err != nil {
		respondError(c, logger, err, "Failed to update row")
		return
	}
	c.JSON(http.StatusOK, draftResponse(draft))
}

// commitRow godoc
// @Summary Commit a buffered amount
// @Description Parses the buffered amount, stores it and recomputes the voucher total.
// @Tags drafts
// @Accept  json
// @Produce  json
// @Param   draftID path string true "Draft ID"
// @Param   index path int true "Row index"
// @Param   row body dto.CommitRowRequest true "Field"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /drafts/{draftID}/rows/{index}/commit [post]
func (h *draftHandler) commitRow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	index, ok := rowIndex(c, logger)
	if !ok {
		return
	}

	var req dto.CommitRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CommitRow", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ownerID, ok := userID(c, logger)
	if !ok {
		return
	}

	draft, err := h.draftService.CommitRow(c.Request.Context(), c.Param("draftID"), ownerID, index, req.Field)
	if err != nil {
		respondError(c, logger, err, "Failed to commit row")
		return
	}
	c.JSON(http.StatusOK, draftResponse(draft))
}

// validateDraft godoc
// @Summary Validate a draft
// @Description Runs the voucher rules without submitting. Failures are keyed by field.
// @Tags drafts
// @Produce  json
// @Param   draftID path string true "Draft ID"
// @Success 200 {object} map[string]bool "valid"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 422 {object} map[string]interface{} "Validation failures"
// @Security BearerAuth
// @Router /drafts/{draftID}/validate [post]
func (h *draftHandler) validateDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := userID(c, logger)
	if !ok {
		return
	}

	if err := h.draftService.ValidateDraft(c.Request.Context(), c.Param("draftID"), ownerID); err != nil {
		respondError(c, logger, err, "Failed to validate draft")
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// submitDraft godoc
// @Summary Submit a draft
// @Description Validates the draft, posts it to the ERP backend and resets the form.
// @Tags drafts
// @Produce  json
// @Param   draftID path string true "Draft ID"
// @Success 201 {object} dto.SubmitResult
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Submission already in progress"
// @Failure 422 {object} map[string]interface{} "Validation failures"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 502 {object} map[string]string "Backend rejected the voucher"
// @Security BearerAuth
// @Router /drafts/{draftID}/submit [post]
func (h *draftHandler) submitDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := userID(c, logger)
	if !ok {
		return
	}

	result, err := h.draftService.SubmitDraft(c.Request.Context(), c.Param("draftID"), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to submit voucher")
		return
	}

	logger.Info("Voucher submitted", slog.String("draft_id", c.Param("draftID")), slog.String("voucher_number", result.VoucherNumber))
	c.JSON(http.StatusCreated, result)
}

// rowIndex parses the :index path parameter and writes a 400 when it is not a number.
func rowIndex(c *gin.Context, logger *slog.Logger) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		logger.Warn("Invalid row index", slog.String("index", c.Param("index")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid row index"})
		return 0, false
	}
	return index, true
}
