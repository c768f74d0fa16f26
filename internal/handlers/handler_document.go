package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/logiport/logiport_backend/internal/apperrors"
	portssvc "github.com/logiport/logiport_backend/internal/core/ports/services"
	"github.com/logiport/logiport_backend/internal/dto"
	"github.com/logiport/logiport_backend/internal/middleware"
)

// documentHandler handles trade document context requests.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

// newDocumentHandler creates a new documentHandler.
func newDocumentHandler(ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{documentService: ds}
}

// registerDocumentRoutes sets up the document routes under the given group.
func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)

	rg.GET("/transactions/:transactionID/document", h.buildDocumentContext)
}

// buildDocumentContext godoc
// @Summary Build a document context
// @Description Builds the language-resolved data a renderer needs for a trade document (invoice, packing list, ...) of a transaction, including the total spelled out in words.
// @Tags documents
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Param documentCode query string true "Document code (e.g. invoice.proforma)"
// @Param language query string false "Language" Enums(ar, en, tr)
// @Success 200 {object} dto.DocumentContextResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transactionID}/document [get]
func (h *documentHandler) buildDocumentContext(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var req dto.BuildDocumentRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	docCtx, err := h.documentService.BuildContext(c.Request.Context(), transactionID, req)
	if err != nil {
		logger.Error("Failed to build document context",
			slog.String("transaction_id", transactionID),
			slog.String("document_code", req.DocumentCode),
			slog.String("error", err.Error()))
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build document context"})
		}
		return
	}

	c.JSON(http.StatusOK, docCtx)
}
