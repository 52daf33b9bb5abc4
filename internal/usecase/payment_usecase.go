package usecase

//go:generate mockgen -source=payment_usecase.go -destination=../adapter/http/handlers/mocks/payment_usecase_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase/interfaces"
	"limpeza_xpto/pkg/logger"
	"limpeza_xpto/pkg/metrics"
)

var (
	ErrInvalidPaymentAmount           = errors.New("invalid payment amount")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
)

// PaymentOptions tunes payload checks for the Mercado Pago gateway.
//
// With MockMode the payment_method_id and payer checks are skipped. The
// sandbox fields fill in a test payer when the access token is a TEST- token.
type PaymentOptions struct {
	MockMode           bool
	AccessToken        string
	SandboxPayerEmail  string
	SandboxPayerUserID string
}

// IPaymentUseCase records payments against a booking's due balance.
type IPaymentUseCase interface {
	RecordPayment(ctx context.Context, bookingID string, amount float64, mpPayload json.RawMessage) (PaymentResult, error)
	ListPayments(ctx context.Context, bookingID string) ([]entities.Payment, error)
}

// PaymentResult is the stored payment and the booking after its balance moved.
type PaymentResult struct {
	Payment  entities.Payment `json:"payment"`
	Booking  entities.Booking `json:"booking"`
	Warnings []string         `json:"warnings,omitempty"`
}

type PaymentUseCase struct {
	bookings interfaces.IBookingRepository
	payments interfaces.IPaymentRepository
	gateway  interfaces.IPaymentGateway
	prop     propagator
	opts     PaymentOptions
	log      logger.Logger
	now      func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	bookings interfaces.IBookingRepository,
	payments interfaces.IPaymentRepository,
	gateway interfaces.IPaymentGateway,
	sync IStatusSyncUseCase,
	queue interfaces.IIntentQueue,
	notifier interfaces.INotifier,
	opts PaymentOptions,
	notifyTimeout time.Duration,
	log logger.Logger,
	m *metrics.Metrics,
) *PaymentUseCase {
	return &PaymentUseCase{
		bookings: bookings,
		payments: payments,
		gateway:  gateway,
		prop:     newPropagator(sync, queue, notifier, notifyTimeout, log, m),
		opts:     opts,
		log:      log,
		now:      time.Now,
	}
}

// RecordPayment charges amount through the gateway and, once approved, lowers
// the booking's due balance and syncs the financial fields to the mirror.
func (u *PaymentUseCase) RecordPayment(ctx context.Context, bookingID string, amount float64, mpPayload json.RawMessage) (PaymentResult, error) {
	u.log.Info("[payment][usecase] record payment start", "booking_id", bookingID, "amount", amount, "payload_len", len(mpPayload))
	bookingID, err := trimID(bookingID, ErrInvalidBookingID)
	if err != nil {
		return PaymentResult{}, err
	}
	if amount <= 0 {
		return PaymentResult{}, fmt.Errorf("%w: must be > 0", ErrInvalidPaymentAmount)
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.MockMode {
			u.log.Warn("[payment][usecase] invalid payload", "booking_id", bookingID)
			return PaymentResult{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return PaymentResult{}, ErrPaymentGatewayNotConfigured
	}

	b, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		u.log.Error("[payment][usecase] failed loading booking", "booking_id", bookingID, "error", err)
		return PaymentResult{}, err
	}
	if b.ID == "" {
		return PaymentResult{}, ErrMasterNotFound
	}
	if b.AssignedStatus == entities.AssignmentStatusDrop {
		return PaymentResult{}, preconditionf("booking %s is dropped", b.ID)
	}
	if amount > b.DueBalance {
		return PaymentResult{}, preconditionf("payment %.2f exceeds due balance %.2f on booking %s", amount, b.DueBalance, b.ID)
	}

	payload, err := u.enrichPayload(b, amount, mpPayload)
	if err != nil {
		return PaymentResult{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		u.log.Error("[payment][usecase] payment gateway failed", "booking_id", b.ID, "error", err)
		return PaymentResult{}, mapGatewayError(err)
	}
	u.log.Info("[payment][usecase] payment gateway success", "booking_id", b.ID, "provider_payment_id", providerID, "provider_status", providerStatus)

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Warn("[payment][usecase] provider response unmarshal failed", "booking_id", b.ID, "error", err)
	}

	now := u.now().UTC()
	p, err := u.payments.Create(ctx, entities.Payment{
		ID:                 providerID,
		BookingID:          b.ID,
		CustomerID:         b.CustomerID,
		Amount:             amount,
		Date:               now,
		Status:             paymentStatusFrom(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	})
	if err != nil {
		u.log.Error("[payment][usecase] payment repository create failed", "booking_id", b.ID, "payment_id", providerID, "error", err)
		return PaymentResult{}, err
	}
	if p.Status != entities.PaymentStatusApproved {
		return PaymentResult{Payment: p, Booking: b}, nil
	}

	b.DueBalance -= amount
	if b.DueBalance < 0 {
		b.DueBalance = 0
	}
	b.PaymentStatus = entities.DerivePaymentState(b.TotalAmount, b.DueBalance)
	b.UpdatedAt = now
	saved, err := u.bookings.Save(ctx, b)
	if err != nil {
		u.log.Error("[payment][usecase] master write failed after approved payment", "booking_id", b.ID, "payment_id", p.ID, "error", err)
		return PaymentResult{}, err
	}

	warnings := u.prop.syncMirror(ctx, saved, saved.FinancialFields())

	ev := entities.NewBookingEvent(saved, now)
	ev.Amount = amount
	u.prop.notify(ctx, entities.RKPaymentReceived, ev)

	u.log.Info("[payment][usecase] payment recorded", "booking_id", saved.ID, "payment_id", p.ID,
		"due_balance", saved.DueBalance, "payment_status", saved.PaymentStatus)
	return PaymentResult{Payment: p, Booking: saved, Warnings: warnings}, nil
}

func (u *PaymentUseCase) ListPayments(ctx context.Context, bookingID string) ([]entities.Payment, error) {
	bookingID, err := trimID(bookingID, ErrInvalidBookingID)
	if err != nil {
		return nil, err
	}
	return u.payments.ListByBookingID(ctx, bookingID)
}

// enrichPayload links the request to the booking. The charged amount always
// comes from the caller's validated amount, never from the payload.
func (u *PaymentUseCase) enrichPayload(b entities.Booking, amount float64, raw json.RawMessage) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(raw, &req); err != nil || req == nil {
		if !u.opts.MockMode {
			return nil, ErrInvalidMPPayload
		}
		req = map[string]any{}
	}

	if !u.opts.MockMode {
		if !hasNonEmptyString(req, "payment_method_id") {
			u.log.Warn("[payment][usecase] missing payment_method_id", "booking_id", b.ID)
			return nil, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(req)
		u.ensurePayerDefaults(req)
		if !hasPayer(req) {
			u.log.Warn("[payment][usecase] missing/invalid payer", "booking_id", b.ID)
			return nil, ErrInvalidMPPayload
		}
	}

	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = b.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Booking %s", b.ID)
	}
	req["transaction_amount"] = amount

	out, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *PaymentUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.opts.AccessToken), "TEST-")
}

func (u *PaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	switch {
	case u.opts.SandboxPayerEmail != "":
		payer["email"] = u.opts.SandboxPayerEmail
	case u.sandbox():
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its e-mail;
// the sandbox rejects payer ids of test users.
func (u *PaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !u.sandbox() || u.opts.SandboxPayerUserID == "" || u.opts.SandboxPayerEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.opts.SandboxPayerUserID {
		return
	}
	payer["email"] = u.opts.SandboxPayerEmail
	delete(payer, "id")
	u.log.Debug("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func paymentStatusFrom(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "accredited":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusRejected
	default:
		return entities.PaymentStatusPending
	}
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
