package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fieldops-pro/internal/application/billing"
	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
)

// InvoiceHandler maneja facturas: CRUD, generación desde pricebook, PDF y links de pago.
type InvoiceHandler struct {
	invoiceUC  *billing.InvoiceUseCase
	generateUC *billing.GenerateInvoiceUseCase
	pdfUC      *billing.PDFUseCase
	paymentUC  *billing.PaymentUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(
	invoiceUC *billing.InvoiceUseCase,
	generateUC *billing.GenerateInvoiceUseCase,
	pdfUC *billing.PDFUseCase,
	paymentUC *billing.PaymentUseCase,
) *InvoiceHandler {
	return &InvoiceHandler{invoiceUC: invoiceUC, generateUC: generateUC, pdfUC: pdfUC, paymentUC: paymentUC}
}

// Create POST /api/invoices — factura vacía en Draft para un trabajo.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	invoice, err := h.invoiceUC.Create(tenantID, in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// Generate POST /api/invoices/generate — cabecera + líneas en una transacción.
// Precios consultados en vivo del pricebook; sin items ⇒ línea "Service Call".
func (h *InvoiceHandler) Generate(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	var in dto.GenerateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	invoice, err := h.generateUC.Generate(c.UserContext(), tenantID, in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// List GET /api/invoices?limit=20&offset=0
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.invoiceUC.List(tenantID, dto.PageRequest{Limit: limit, Offset: offset})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	invoice, err := h.invoiceUC.GetByID(tenantID, c.Params("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(invoice)
}

// Delete DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if err := h.invoiceUC.Delete(tenantID, c.Params("id")); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF GET /api/invoices/:id/pdf — descarga el documento de la factura.
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	pdfBytes, filename, err := h.pdfUC.DownloadInvoicePDF(c.UserContext(), tenantID, c.Params("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdfBytes)
}

// StripeLink POST /api/invoices/stripe — crea un payment link en Stripe.
func (h *InvoiceHandler) StripeLink(c *fiber.Ctx) error {
	return h.paymentLink(c, "stripe")
}

// PayPalLink POST /api/invoices/paypal — crea una orden de pago en PayPal.
func (h *InvoiceHandler) PayPalLink(c *fiber.Ctx) error {
	return h.paymentLink(c, "paypal")
}

func (h *InvoiceHandler) paymentLink(c *fiber.Ctx, provider string) error {
	tenantID := GetTenantID(c)
	var in dto.PaymentLinkRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	link, err := h.paymentUC.CreateLink(c.UserContext(), tenantID, provider, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invoice_id es requerido"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		// error de la pasarela externa
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PAYMENT_PROVIDER", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

func (h *InvoiceHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
