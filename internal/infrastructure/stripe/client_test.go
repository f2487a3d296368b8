package stripe_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishdash/dishdash-api/internal/infrastructure/stripe"
)

// El cliente envía form data con los campos que Stripe espera y autentica
// con el secret key como bearer.
func TestClient_CreatePaymentIntent_EnviaFormYBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "2500", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "card", r.PostForm.Get("payment_method_types[]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_abc"}`))
	}))
	defer srv.Close()

	client := stripe.New("sk_test_123", srv.URL)

	secret, err := client.CreatePaymentIntent(context.Background(), 2500, "usd")
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_abc", secret)
}

// Un error de Stripe se propaga con el mensaje del cuerpo.
func TestClient_CreatePaymentIntent_ErrorDeStripe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"type":"card_error","message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	client := stripe.New("sk_test_123", srv.URL)

	_, err := client.CreatePaymentIntent(context.Background(), 2500, "usd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 402")
	assert.Contains(t, err.Error(), "Your card was declined.")
}

// Una respuesta 200 sin client_secret es un error, no un secret vacío.
func TestClient_CreatePaymentIntent_RespuestaSinSecret(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123"}`))
	}))
	defer srv.Close()

	client := stripe.New("sk_test_123", srv.URL)

	_, err := client.CreatePaymentIntent(context.Background(), 2500, "usd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client_secret")
}
