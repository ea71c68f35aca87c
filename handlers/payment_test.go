package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"broheal/config"
	"broheal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPaymentService struct {
	handled []models.PaymentCallback
	err     error
}

func (s *stubPaymentService) CreateIntent(ctx context.Context, userID, orderID string) (*models.Order, string, error) {
	return nil, "", s.err
}

func (s *stubPaymentService) HandleCallback(ctx context.Context, cb models.PaymentCallback) error {
	s.handled = append(s.handled, cb)
	return s.err
}

func (s *stubPaymentService) GetOrder(ctx context.Context, userID, orderID string) (*models.Order, error) {
	return nil, s.err
}

func callbackRouter(svc *stubPaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &PaymentHandler{Payments: svc}
	r.POST("/api/payments/callback", h.Callback)
	return r
}

func postCallback(t *testing.T, r *gin.Engine, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/callback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(CallbackTokenHeader, token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentCallbackRejectsMissingToken(t *testing.T) {
	config.AppConfig.StripeCallbackToken = "cb-secret"
	t.Cleanup(func() { config.AppConfig.StripeCallbackToken = "" })

	svc := &stubPaymentService{}
	r := callbackRouter(svc)

	w := postCallback(t, r, "", `{"orderId":"o1","status":"succeeded"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, svc.handled)
}

func TestPaymentCallbackRejectsWrongToken(t *testing.T) {
	config.AppConfig.StripeCallbackToken = "cb-secret"
	t.Cleanup(func() { config.AppConfig.StripeCallbackToken = "" })

	svc := &stubPaymentService{}
	r := callbackRouter(svc)

	w := postCallback(t, r, "guessed", `{"orderId":"o1","status":"succeeded"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, svc.handled)
}

func TestPaymentCallbackRejectsWhenTokenUnconfigured(t *testing.T) {
	config.AppConfig.StripeCallbackToken = ""

	svc := &stubPaymentService{}
	r := callbackRouter(svc)

	// An empty header must not match an empty configured token.
	w := postCallback(t, r, "", `{"orderId":"o1","status":"succeeded"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, svc.handled)
}

func TestPaymentCallbackAcceptsValidToken(t *testing.T) {
	config.AppConfig.StripeCallbackToken = "cb-secret"
	t.Cleanup(func() { config.AppConfig.StripeCallbackToken = "" })

	svc := &stubPaymentService{}
	r := callbackRouter(svc)

	w := postCallback(t, r, "cb-secret", `{"orderId":"o1","status":"failed","failureReason":"card_declined"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, svc.handled, 1)
	assert.Equal(t, "o1", svc.handled[0].OrderID)
	assert.Equal(t, "failed", svc.handled[0].Status)
}
