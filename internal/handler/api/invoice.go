package api

import (
	"errors"
	"net/http"

	reqdto "invoice-service/internal/handler/dto/request"
	resdto "invoice-service/internal/handler/dto/response"
	"invoice-service/internal/handler/httperr"
	"invoice-service/internal/pkg/errs"
	"invoice-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	invoiceUseCase usecase.InvoiceUseCase
}

func NewInvoiceHandler(invoiceUseCase usecase.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceUseCase: invoiceUseCase,
	}
}

// @Summary New invoice draft
// @Description Get the default draft for the invoice form: today's date and one empty line item
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DraftResponse
// @Failure 401 {object} map[string]string
// @Router /invoices/draft [get]
func (h *InvoiceHandler) NewDraft(c *gin.Context) {
	draft := h.invoiceUseCase.NewDraft(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromDraft(draft))
}

// @Summary Create invoice
// @Description Validate the draft, compute the total and persist a new invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaveInvoiceRequest true "Invoice draft"
// @Success 201 {object} resdto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} httperr.Response
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req reqdto.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	invoiceRM, err := h.invoiceUseCase.CreateInvoice(c.Request.Context(), req.ToDraft())
	if err != nil {
		h.handleSaveError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromInvoiceRM(invoiceRM))
}

// @Summary Update invoice
// @Description Validate the edited draft and merge it into the stored invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Param request body reqdto.SaveInvoiceRequest true "Invoice draft"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} httperr.Response
// @Router /invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	invoiceRM, err := h.invoiceUseCase.UpdateInvoice(c.Request.Context(), id, req.ToDraft())
	if err != nil {
		h.handleSaveError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceRM(invoiceRM))
}

// @Summary Delete invoice
// @Description Delete an invoice; deleting an absent id is a no-op
// @Tags invoices
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.invoiceUseCase.DeleteInvoice(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get invoice
// @Description Get invoice by ID
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	invoiceRM, err := h.invoiceUseCase.GetInvoice(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Invoice not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceRM(invoiceRM))
}

// @Summary List invoices
// @Description List all invoices in creation order
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.InvoiceResponse
// @Failure 401 {object} map[string]string
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoicesRM, err := h.invoiceUseCase.ListInvoices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.InvoiceResponse, len(invoicesRM))
	for i, rm := range invoicesRM {
		response[i] = resdto.FromInvoiceRM(rm)
	}

	c.JSON(http.StatusOK, response)
}

func (h *InvoiceHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid invoice ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *InvoiceHandler) handleSaveError(c *gin.Context, err error) {
	var validationErr *errs.ValidationError
	switch {
	case errors.As(err, &validationErr):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", validationErr.Fields)
	case errors.Is(err, errs.ErrInvoiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Invoice not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
