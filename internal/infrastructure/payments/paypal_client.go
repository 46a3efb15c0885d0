package payments

import (
	"bytes"
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

// Verificar en tiempo de compilación que PayPalClient implementa PaymentProvider.
var _ billing.PaymentProvider = (*PayPalClient)(nil)

// PayPalClient crea órdenes de pago vía la API REST v2 de PayPal.
// Flujo: OAuth client_credentials → POST /v2/checkout/orders → link "approve".
// Sin credenciales opera en modo simulado y devuelve un link ficticio.
type PayPalClient struct {
	clientID   string
	secret     string
	baseURL    string // sandbox o live según configuración
	httpClient *http.Client
}

// NewPayPalClient construye el cliente. baseURL vacío apunta al sandbox.
func NewPayPalClient(clientID, secret, baseURL string) *PayPalClient {
	base := baseURL
	if base == "" {
		base = "https://api-m.sandbox.paypal.com"
	}
	return &PayPalClient{
		clientID:   clientID,
		secret:     secret,
		baseURL:    base,
		httpClient: &http.Client{Timeout: 25 * time.Second},
	}
}

// Name identifica la pasarela en las rutas (/invoices/:id/paypal-link).
func (c *PayPalClient) Name() string { return "paypal" }

// CreatePaymentLink crea una orden y devuelve el link de aprobación del pagador.
func (c *PayPalClient) CreatePaymentLink(ctx context.Context, invoiceID string, amount decimal.Decimal) (string, bool, error) {
	if c.clientID == "" || c.secret == "" {
		return fmt.Sprintf("https://www.sandbox.paypal.com/checkoutnow?token=MOCK-%s", shortID(invoiceID)), true, nil
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return "", false, fmt.Errorf("paypal oauth: %w", err)
	}

	order := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{{
			"reference_id": invoiceID,
			"amount": map[string]string{
				"currency_code": "USD",
				"value":         amount.StringFixed(2),
			},
		}},
	}
	body, err := json.Marshal(order)
	if err != nil {
		return "", false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/checkout/orders", bytes.NewReader(body))
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", false, err
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("paypal HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var created struct {
		Links []struct {
			Rel  string `json:"rel"`
			Href string `json:"href"`
		} `json:"links"`
	}
	if err := json.Unmarshal(rawBody, &created); err != nil {
		return "", false, fmt.Errorf("paypal: deserializar orden: %w", err)
	}
	for _, l := range created.Links {
		if l.Rel == "approve" {
			return l.Href, false, nil
		}
	}
	return "", false, fmt.Errorf("paypal: la orden no trae link de aprobación")
}

// accessToken obtiene un token OAuth con client_credentials.
func (c *PayPalClient) accessToken(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.clientID, c.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(rawBody))
	}
	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(rawBody, &tok); err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token vacío")
	}
	return tok.AccessToken, nil
}
