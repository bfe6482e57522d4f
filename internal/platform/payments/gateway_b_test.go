package payments_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safarnama/travel_booking_app/internal/platform/payments"
)

func TestGetCheckoutSession_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions/cs_test_1", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "cs_test_1", "payment_status": "paid", "payment_intent": "pi_789"}`))
	}))
	defer server.Close()

	client := payments.NewGatewayBClient(server.URL, "sk_test_secret")
	session, err := client.GetCheckoutSession(context.Background(), "cs_test_1")

	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", session.ID)
	assert.Equal(t, "paid", session.PaymentStatus)
	assert.Equal(t, "pi_789", session.PaymentIntentID)
}

func TestGetCheckoutSession_Non2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "no such session"}`))
	}))
	defer server.Close()

	client := payments.NewGatewayBClient(server.URL, "sk_test_secret")
	session, err := client.GetCheckoutSession(context.Background(), "cs_missing")

	assert.Nil(t, session)
	assert.ErrorContains(t, err, "status 404")
}

func TestGetCheckoutSession_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := payments.NewGatewayBClient(server.URL, "sk_test_secret")
	session, err := client.GetCheckoutSession(context.Background(), "cs_test_1")

	assert.Nil(t, session)
	assert.Error(t, err)
}

func TestGetCheckoutSession_ConnectionRefused(t *testing.T) {
	client := payments.NewGatewayBClient("http://127.0.0.1:1", "sk_test_secret")
	session, err := client.GetCheckoutSession(context.Background(), "cs_test_1")

	assert.Nil(t, session)
	assert.Error(t, err)
}
