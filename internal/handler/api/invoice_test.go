//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"invoice-service/internal/domain/invoice"
	"invoice-service/internal/handler/api"
	resdto "invoice-service/internal/handler/dto/response"
	"invoice-service/internal/pkg/errs"
	"invoice-service/internal/usecase/mocks"
	"invoice-service/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InvoiceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *mocks.MockInvoiceUseCase
	handler     *api.InvoiceHandler
}

func (s *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = mocks.NewMockInvoiceUseCase(s.mockCtrl)
	s.handler = api.NewInvoiceHandler(s.mockUseCase)

	s.router.GET("/invoices/draft", s.handler.NewDraft)
	s.router.GET("/invoices", s.handler.ListInvoices)
	s.router.POST("/invoices", s.handler.CreateInvoice)
	s.router.GET("/invoices/:id", s.handler.GetInvoice)
	s.router.PUT("/invoices/:id", s.handler.UpdateInvoice)
	s.router.DELETE("/invoices/:id", s.handler.DeleteInvoice)
}

func (s *InvoiceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInvoiceHandlerSuite(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}

func saveRequestBody() map[string]any {
	return map[string]any{
		"date":         "2025-06-15",
		"customerName": "Acme Corp",
		"products": []map[string]any{
			{"name": "Widget", "quantity": 3, "price": 10.0},
		},
	}
}

func (s *InvoiceHandlerTestSuite) TestNewDraft() {
	s.Run("success: returns today's date and one empty line item", func() {
		draft := invoice.Draft{
			Date:     "2025-06-15",
			Products: []invoice.LineItem{invoice.NewLineItem()},
		}
		s.mockUseCase.EXPECT().NewDraft(gomock.Any()).Return(draft).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodGet, "/invoices/draft", nil)

		var response resdto.DraftResponse
		decodeResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2025-06-15", response.Date)
		s.Require().Len(response.Products, 1)
		s.Equal(1, response.Products[0].Quantity)
	})
}

func (s *InvoiceHandlerTestSuite) TestCreateInvoice() {
	url := "/invoices"

	s.Run("success: returns 201 with the created invoice", func() {
		returnInvoice := invoiceRM()
		s.mockUseCase.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
			Return(returnInvoice, nil).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodPost, url, saveRequestBody())

		var response resdto.InvoiceResponse
		decodeResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("INVOICE-0001", response.InvoiceNumber)
		s.Equal(30.0, response.Total)
	})

	s.Run("success: accepts and ignores a client-supplied total", func() {
		// The form posts the total it displayed; the server recomputes
		// it. Strict decoding (as enabled at startup) must not reject it.
		gin.EnableJsonDecoderDisallowUnknownFields()

		body := saveRequestBody()
		body["total"] = 999.99

		returnInvoice := invoiceRM()
		s.mockUseCase.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
			Return(returnInvoice, nil).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodPost, url, body)

		var response resdto.InvoiceResponse
		decodeResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(30.0, response.Total)
	})

	s.Run("error: 422 with the collected field errors", func() {
		fieldErrs := map[string]string{
			"customerName":       "Customer name is required",
			"product_0_quantity": "Quantity must be greater than 0",
		}
		s.mockUseCase.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
			Return(nil, errs.NewValidationError(fieldErrs)).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodPost, url, saveRequestBody())

		var response struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
			Detail map[string]string `json:"detail"`
		}
		decodeResponse(s.T(), rec, http.StatusUnprocessableEntity, &response)
		s.Equal("Validation failed", response.Error.Message)
		s.Equal("Customer name is required", response.Detail["customerName"])
		s.Equal("Quantity must be greater than 0", response.Detail["product_0_quantity"])
	})

	s.Run("error: 400 on malformed JSON", func() {
		rec := performRequest(s.T(), s.router, http.MethodPost, url, "not an object")
		assertErrorBody(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockUseCase.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("storage failure")).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodPost, url, saveRequestBody())
		assertErrorBody(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *InvoiceHandlerTestSuite) TestUpdateInvoice() {
	id := uuid.New()
	url := "/invoices/" + id.String()

	s.Run("success: returns 200 with the updated invoice", func() {
		returnInvoice := invoiceRM()
		s.mockUseCase.EXPECT().UpdateInvoice(gomock.Any(), id, gomock.Any()).
			Return(returnInvoice, nil).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodPut, url, saveRequestBody())

		var response resdto.InvoiceResponse
		decodeResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnInvoice.CustomerName, response.CustomerName)
	})

	s.Run("error: 404 on unknown id", func() {
		s.mockUseCase.EXPECT().UpdateInvoice(gomock.Any(), id, gomock.Any()).
			Return(nil, errs.ErrInvoiceNotFound).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodPut, url, saveRequestBody())
		assertErrorBody(s.T(), rec, http.StatusNotFound, "Invoice not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := performRequest(s.T(), s.router, http.MethodPut, "/invoices/not-a-uuid", saveRequestBody())
		assertErrorBody(s.T(), rec, http.StatusBadRequest, "Invalid invoice ID format")
	})
}

func (s *InvoiceHandlerTestSuite) TestDeleteInvoice() {
	id := uuid.New()

	s.Run("success: returns 204", func() {
		s.mockUseCase.EXPECT().DeleteInvoice(gomock.Any(), id).Return(nil).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodDelete, "/invoices/"+id.String(), nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: absent id is still 204", func() {
		absent := uuid.New()
		s.mockUseCase.EXPECT().DeleteInvoice(gomock.Any(), absent).Return(nil).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodDelete, "/invoices/"+absent.String(), nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := performRequest(s.T(), s.router, http.MethodDelete, "/invoices/not-a-uuid", nil)
		assertErrorBody(s.T(), rec, http.StatusBadRequest, "Invalid invoice ID format")
	})
}

func (s *InvoiceHandlerTestSuite) TestGetInvoice() {
	id := uuid.New()

	s.Run("success: returns the invoice", func() {
		returnInvoice := invoiceRM()
		s.mockUseCase.EXPECT().GetInvoice(gomock.Any(), id).
			Return(returnInvoice, nil).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodGet, "/invoices/"+id.String(), nil)

		var response resdto.InvoiceResponse
		decodeResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnInvoice.InvoiceNumber, response.InvoiceNumber)
	})

	s.Run("error: 404 on unknown id", func() {
		s.mockUseCase.EXPECT().GetInvoice(gomock.Any(), id).
			Return(nil, errs.ErrInvoiceNotFound).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodGet, "/invoices/"+id.String(), nil)
		assertErrorBody(s.T(), rec, http.StatusNotFound, "Invoice not found")
	})
}

func (s *InvoiceHandlerTestSuite) TestListInvoices() {
	url := "/invoices"

	s.Run("success: returns all invoices", func() {
		first := invoiceRM()
		second := invoiceRM()
		second.InvoiceNumber = "INVOICE-0002"
		s.mockUseCase.EXPECT().ListInvoices(gomock.Any()).
			Return([]*readmodel.InvoiceRM{first, second}, nil).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response []resdto.InvoiceResponse
		decodeResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("INVOICE-0001", response[0].InvoiceNumber)
		s.Equal("INVOICE-0002", response[1].InvoiceNumber)
	})

	s.Run("success: empty list", func() {
		s.mockUseCase.EXPECT().ListInvoices(gomock.Any()).
			Return(nil, nil).Times(1)

		rec := performRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response []resdto.InvoiceResponse
		decodeResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})
}
