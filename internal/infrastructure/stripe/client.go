// Package stripe implementa el puerto de pagos contra la API REST de Stripe.
// Usa net/http de la stdlib; no requiere librerías de terceros.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dishdash/dishdash-api/internal/application/checkout"
)

const defaultBaseURL = "https://api.stripe.com"

var _ checkout.PaymentIntentCreator = (*Client)(nil)

// Client cliente mínimo de la API de Stripe: solo payment intents.
type Client struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

// New construye el cliente. baseURL vacío usa el endpoint real de Stripe;
// los tests inyectan un servidor propio.
func New(secretKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		secretKey:  secretKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// paymentIntentResponse subconjunto de la respuesta de Stripe que usamos.
type paymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreatePaymentIntent crea un cobro con tarjeta y devuelve el client secret.
// La API de Stripe recibe form data y autentica con el secret key como bearer.
func (c *Client) CreatePaymentIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("stripe: crear request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("stripe: payment intent: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("stripe: leer respuesta: %w", err)
	}

	var out paymentIntentResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("stripe: respuesta inesperada (HTTP %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := "error desconocido"
		if out.Error != nil {
			msg = out.Error.Message
		}
		return "", fmt.Errorf("stripe: HTTP %d: %s", resp.StatusCode, msg)
	}
	if out.ClientSecret == "" {
		return "", fmt.Errorf("stripe: respuesta sin client_secret")
	}
	return out.ClientSecret, nil
}
