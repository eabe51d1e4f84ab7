package handlers

import (
	"net/http"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/utils/numfmt"
	"github.com/gin-gonic/gin"
)

// formatHandler exposes the amount formatter to form clients.
type formatHandler struct {
	formatter *numfmt.Formatter
}

func registerFormatRoutes(rg *gin.RouterGroup, f *numfmt.Formatter) {
	h := &formatHandler{formatter: f}
	rg.GET("/format", h.format)
	rg.GET("/format/settings", h.settings)
	rg.GET("/parse", h.parse)
}

// format godoc
// @Summary Format an amount for display
// @Description Groups thousands and trims the fraction. Unparseable input formats as an empty string.
// @Tags format
// @Produce  json
// @Param   value query string true "Raw amount"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /format [get]
func (h *formatHandler) format(c *gin.Context) {
	value := c.Query("value")
	c.JSON(http.StatusOK, gin.H{"value": value, "formatted": h.formatter.Format(value)})
}

// settings godoc
// @Summary Number format of the desk
// @Description Locale and separators clients use to mask amount inputs
// @Tags format
// @Produce  json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /format/settings [get]
func (h *formatHandler) settings(c *gin.Context) {
	group, dec := h.formatter.Separators()
	c.JSON(http.StatusOK, gin.H{
		"locale":            h.formatter.Locale(),
		"groupSeparator":    group,
		"decimalSeparator":  dec,
		"maxFractionDigits": numfmt.MaxFractionDigits,
		"maxIntegerDigits":  numfmt.MaxIntegerDigits,
	})
}

// parse godoc
// @Summary Parse a displayed amount
// @Description Strips grouping separators. Unparseable input yields 0 and valid=false.
// @Tags format
// @Produce  json
// @Param   value query string true "Displayed amount"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /parse [get]
func (h *formatHandler) parse(c *gin.Context) {
	value := c.Query("value")
	amount, ok := h.formatter.Parse(value)
	c.JSON(http.StatusOK, gin.H{"value": value, "amount": amount.String(), "valid": ok})
}
