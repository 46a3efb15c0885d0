package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/fieldops-pro/internal/application/billing"
)

// Verificar en tiempo de compilación que StripeClient implementa PaymentProvider.
var _ billing.PaymentProvider = (*StripeClient)(nil)

const stripeAPIBase = "https://api.stripe.com/v1"

// StripeClient crea Payment Links vía la API REST de Stripe (form-encoded).
// Usa net/http de la librería estándar de Go; no requiere el SDK oficial.
// Sin STRIPE_SECRET_KEY opera en modo simulado y devuelve un link ficticio.
type StripeClient struct {
	secretKey  string
	httpClient *http.Client
}

// NewStripeClient construye el cliente.
func NewStripeClient(secretKey string) *StripeClient {
	return &StripeClient{
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 25 * time.Second},
	}
}

// Name identifica la pasarela en las rutas (/invoices/:id/stripe-link).
func (c *StripeClient) Name() string { return "stripe" }

// CreatePaymentLink crea un price ad-hoc y su payment link.
// El monto se envía en centavos (Stripe no acepta decimales).
func (c *StripeClient) CreatePaymentLink(ctx context.Context, invoiceID string, amount decimal.Decimal) (string, bool, error) {
	if c.secretKey == "" {
		return fmt.Sprintf("https://buy.stripe.com/test_mock_%s", shortID(invoiceID)), true, nil
	}

	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	// Paso 1: price ad-hoc para la factura.
	priceForm := url.Values{
		"currency":     {"usd"},
		"unit_amount":  {fmt.Sprintf("%d", cents)},
		"product_data[name]": {fmt.Sprintf("Invoice %s", shortID(invoiceID))},
	}
	var price struct {
		ID string `json:"id"`
	}
	if err := c.post(ctx, "/prices", priceForm, &price); err != nil {
		return "", false, fmt.Errorf("stripe price: %w", err)
	}

	// Paso 2: payment link con ese price.
	linkForm := url.Values{
		"line_items[0][price]":    {price.ID},
		"line_items[0][quantity]": {"1"},
		"metadata[invoice_id]":    {invoiceID},
	}
	var link struct {
		URL string `json:"url"`
	}
	if err := c.post(ctx, "/payment_links", linkForm, &link); err != nil {
		return "", false, fmt.Errorf("stripe payment link: %w", err)
	}
	return link.URL, false, nil
}

func (c *StripeClient) post(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, stripeAPIBase+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error.Message != "" {
			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, errResp.Error.Message)
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(rawBody))
	}
	return json.Unmarshal(rawBody, out)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
