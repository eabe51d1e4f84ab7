package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/services"
	"github.com/Syed-Hadii/ERP-Software-sub003/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// printHandler serves archived print views of submitted vouchers.
type printHandler struct {
	printService portssvc.PrintSvc
}

func newPrintHandler(ps portssvc.PrintSvc) *printHandler {
	return &printHandler{printService: ps}
}

func registerPrintRoutes(rg *gin.RouterGroup, ps portssvc.PrintSvc) {
	h := newPrintHandler(ps)
	rg.GET("/print/:voucherNumber", h.getPrintView)
}

// getPrintView godoc
// @Summary Get the print view of a submitted voucher
// @Description Returns the rendered voucher as JSON, or as a spreadsheet with format=xlsx.
// @Tags print
// @Produce  json
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   voucherNumber path string true "Voucher number"
// @Param   format query string false "json (default) or xlsx"
// @Success 200 {object} domain.PrintView
// @Failure 400 {object} map[string]string "Unsupported format"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /print/{voucherNumber} [get]
func (h *printHandler) getPrintView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voucherNumber := c.Param("voucherNumber")

	switch c.DefaultQuery("format", "json") {
	case "json":
		view, err := h.printService.GetPrintView(c.Request.Context(), voucherNumber)
		if err != nil {
			respondError(c, logger, err, "Failed to load print view")
			return
		}
		c.JSON(http.StatusOK, view)
	case "xlsx":
		var buf bytes.Buffer
		if err := h.printService.ExportXLSX(c.Request.Context(), voucherNumber, &buf); err != nil {
			respondError(c, logger, err, "Failed to export voucher")
			return
		}
		logger.Info("Voucher exported", slog.String("voucher_number", voucherNumber))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", voucherNumber+".xlsx"))
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported format"})
	}
}
