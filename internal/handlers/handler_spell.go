package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/logiport/logiport_backend/internal/dto"
	"github.com/logiport/logiport_backend/internal/utils/tafqit"
)

// spellHandler handles amount-in-words requests.
type spellHandler struct{}

// registerSpellRoutes sets up the spell route under the given group.
func registerSpellRoutes(rg *gin.RouterGroup) {
	h := &spellHandler{}

	rg.POST("/spell", h.spellAmount)
}

// spellAmount godoc
// @Summary Spell an amount in words
// @Description Spells a monetary amount out in words in the requested language (Arabic, English or Turkish), with the currency and fraction unit names.
// @Tags spell
// @Accept json
// @Produce json
// @Param request body dto.SpellAmountRequest true "Amount to spell"
// @Success 200 {object} dto.SpellAmountResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /spell [post]
func (h *spellHandler) spellAmount(c *gin.Context) {
	var req dto.SpellAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	lang := tafqit.ParseLanguage(req.Language)
	currencyCode := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))

	words := tafqit.AmountInWords(req.Amount, currencyCode, lang)

	c.JSON(http.StatusOK, dto.SpellAmountResponse{
		Amount:       req.Amount,
		CurrencyCode: currencyCode,
		Language:     string(lang),
		Words:        words,
	})
}
