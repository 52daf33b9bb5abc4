package request

import "encoding/json"

// PaymentCreateRequest is the payload for recording a booking payment.
//
// `mp_payload` is forwarded as raw JSON to support varying Mercado Pago schemas;
// amount, description and external_reference are filled in by the service.
type PaymentCreateRequest struct {
	Amount    float64         `json:"amount"`
	MPPayload json.RawMessage `json:"mp_payload"`
}
