package response

import (
	"time"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase"
)

type PaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	BookingID   string    `json:"booking_id"`
	CustomerID  string    `json:"customer_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		BookingID:    p.BookingID,
		CustomerID:   p.CustomerID,
		Amount:       p.Amount,
		PaymentDate:  p.Date,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.ProviderPayloadRaw),
		MPPayload:    p.ProviderPayload,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}

type PaymentResultResponse struct {
	Payment  PaymentResponse `json:"payment"`
	Booking  BookingResponse `json:"booking"`
	Warnings []string        `json:"warnings,omitempty"`
}

func FromPaymentResult(r usecase.PaymentResult) PaymentResultResponse {
	return PaymentResultResponse{
		Payment:  FromPayment(r.Payment),
		Booking:  FromBooking(r.Booking),
		Warnings: r.Warnings,
	}
}
