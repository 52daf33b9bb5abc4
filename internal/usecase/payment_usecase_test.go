package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"limpeza_xpto/internal/adapter/persistence/repository"
	"limpeza_xpto/internal/domain/entities"
	mock_interfaces "limpeza_xpto/internal/usecase/interfaces/mocks"
	"limpeza_xpto/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPaymentUseCase(h *harness, gateway *mock_interfaces.MockIPaymentGateway, opts PaymentOptions) *PaymentUseCase {
	uc := NewPaymentUseCase(h.bookings, repository.NewPaymentDocumentRepository(h.store), gateway, h.sync, h.queue, h.notifier, opts, time.Second, logger.NewNop(), h.metrics)
	uc.now = fixedNow
	return uc
}

func TestPaymentUseCase_RecordPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("approved payment lowers due balance and syncs mirror", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := newHarness(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newPaymentUseCase(h, gateway, PaymentOptions{MockMode: true})
		b := h.createBooking(t, 1, 2, 100)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				require.NoError(t, json.Unmarshal(payload, &req))
				assert.Equal(t, 40.0, req["transaction_amount"])
				assert.Equal(t, b.ID, req["external_reference"])
				return "pay-1", "approved", json.RawMessage(`{"id":"pay-1","status":"approved"}`), nil
			})

		res, err := uc.RecordPayment(ctx, b.ID, 40, nil)
		require.NoError(t, err)
		assert.Empty(t, res.Warnings)
		assert.Equal(t, "pay-1", res.Payment.ID)
		assert.Equal(t, entities.PaymentStatusApproved, res.Payment.Status)
		assert.Equal(t, 60.0, res.Booking.DueBalance)
		assert.Equal(t, entities.PaymentStatePartial, res.Booking.PaymentStatus)

		m := h.mirrorOf(t, b)
		assert.Equal(t, 60.0, m.DueBalance)
		assert.Equal(t, entities.PaymentStatePartial, m.PaymentStatus)
		assert.Contains(t, h.notifier.sent(), entities.RKPaymentReceived)

		list, err := uc.ListPayments(ctx, b.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, 40.0, list[0].Amount)
	})

	t.Run("pending payment leaves balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := newHarness(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newPaymentUseCase(h, gateway, PaymentOptions{MockMode: true})
		b := h.createBooking(t, 1, 2, 100)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-2", "in_process", json.RawMessage(`{}`), nil)

		res, err := uc.RecordPayment(ctx, b.ID, 100, json.RawMessage(`{}`))
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusPending, res.Payment.Status)
		assert.Equal(t, 100.0, h.master(t, b.ID).DueBalance)
	})

	t.Run("validations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := newHarness(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		strict := newPaymentUseCase(h, gateway, PaymentOptions{})
		b := h.createBooking(t, 1, 2, 100)

		_, err := strict.RecordPayment(ctx, b.ID, 0, json.RawMessage(`{}`))
		require.ErrorIs(t, err, ErrInvalidPaymentAmount)
		_, err = strict.RecordPayment(ctx, b.ID, 10, json.RawMessage(`{`))
		require.ErrorIs(t, err, ErrInvalidMPPayload)
		_, err = strict.RecordPayment(ctx, b.ID, 10, json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		require.ErrorIs(t, err, ErrInvalidMPPayload, "payment_method_id required")
		_, err = strict.RecordPayment(ctx, b.ID, 500, json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		require.ErrorIs(t, err, ErrPreconditionViolation)
		_, err = strict.RecordPayment(ctx, "ghost", 10, json.RawMessage(`{"payment_method_id":"pix"}`))
		require.ErrorIs(t, err, ErrMasterNotFound)
	})

	t.Run("gateway errors are mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := newHarness(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newPaymentUseCase(h, gateway, PaymentOptions{AccessToken: "TEST-123"})
		b := h.createBooking(t, 1, 2, 100)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				require.NoError(t, json.Unmarshal(payload, &req))
				payer := req["payer"].(map[string]any)
				assert.Equal(t, "test_user_br@testuser.com", payer["email"], "sandbox default payer")
				return "", "", nil, errors.New(`{"status":401,"error":"unauthorized"}`)
			})

		_, err := uc.RecordPayment(ctx, b.ID, 10, json.RawMessage(`{"payment_method_id":"pix"}`))
		require.ErrorIs(t, err, ErrPaymentGatewayUnauthorized)
		assert.Equal(t, 100.0, h.master(t, b.ID).DueBalance)
	})
}

func TestPaymentUseCase_SandboxPayerMapping(t *testing.T) {
	uc := &PaymentUseCase{opts: PaymentOptions{AccessToken: "TEST-1", SandboxPayerUserID: "42", SandboxPayerEmail: "buyer@test.com"}, log: logger.NewNop()}
	req := map[string]any{"payer": map[string]any{"id": 42}}
	uc.normalizeSandboxPayer(req)
	payer := req["payer"].(map[string]any)
	assert.Equal(t, "buyer@test.com", payer["email"])
	assert.NotContains(t, payer, "id")
}

func TestPaymentStatusFrom(t *testing.T) {
	assert.Equal(t, entities.PaymentStatusApproved, paymentStatusFrom("APPROVED"))
	assert.Equal(t, entities.PaymentStatusRejected, paymentStatusFrom("rejected"))
	assert.Equal(t, entities.PaymentStatusPending, paymentStatusFrom("in_process"))
}

func TestMapGatewayError(t *testing.T) {
	cases := map[string]error{
		`{"status":400,"error":"bad_request"}`: ErrPaymentGatewayBadRequest,
		`Invalid users involved`:               ErrPaymentGatewayInvalidUsers,
		`{"code":2002}`:                        ErrPaymentGatewayCustomerNotFound,
	}
	for msg, want := range cases {
		assert.ErrorIs(t, mapGatewayError(errors.New(msg)), want, msg)
	}
	other := errors.New("boom")
	assert.Equal(t, other, mapGatewayError(other))
}
