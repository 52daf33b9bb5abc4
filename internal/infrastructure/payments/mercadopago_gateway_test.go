package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"limpeza_xpto/pkg/logger"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway("", false, logger.NewNop())
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("", true, logger.NewNop())
		if err != nil || g == nil || !g.mockMode {
			t.Fatalf("expected mock gateway, got %+v err=%v", g, err)
		}
	})
}

func TestMercadoPagoGateway_CreatePaymentMock(t *testing.T) {
	g, _ := NewMercadoPagoGateway("", true, logger.NewNop())
	fixed := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":50,"external_reference":"b1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "approved" || id == "" {
		t.Fatalf("unexpected result id=%s status=%s", id, status)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if body["external_reference"] != "b1" || body["transaction_amount"] != float64(50) || body["status_detail"] != "accredited" {
		t.Fatalf("unexpected response: %v", body)
	}
	if body["date_created"] != fixed.Format(time.RFC3339Nano) {
		t.Fatalf("unexpected date_created: %v", body["date_created"])
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
