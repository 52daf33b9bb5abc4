package response

import (
	"encoding/json"
	"testing"
	"time"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase"
)

func TestFromBooking(t *testing.T) {
	now := time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

	t.Run("multi crew", func(t *testing.T) {
		b := entities.Booking{
			ID:                     "bk-1",
			CustomerID:             "cust-1",
			Professionals:          2,
			AssignedCrews:          []string{"crew-a", "crew-b"},
			ConfirmedCrews:         []string{"crew-a"},
			ProfessionalsAssigned:  2,
			ProfessionalsConfirmed: 1,
			AssignedStatus:         entities.AssignmentStatusAssigned,
			TotalAmount:            100,
			DueBalance:             40,
			PaymentStatus:          entities.PaymentStatePartial,
			UpdatedAt:              now,
		}

		res := FromBooking(b)
		if res.AssignedTo != nil {
			t.Fatalf("expected null assigned_to, got %v", *res.AssignedTo)
		}
		if res.AssignedStatus != "assigned" || res.PaymentStatus != "partial" {
			t.Fatalf("unexpected statuses: %+v", res)
		}
		if len(res.AssignedCrews) != 2 || len(res.ConfirmedCrews) != 1 {
			t.Fatalf("unexpected crews: %+v", res)
		}
		if !res.UpdatedAt.Equal(now) {
			t.Fatalf("unexpected updated_at: %v", res.UpdatedAt)
		}
	})

	t.Run("empty crew sets encode as arrays", func(t *testing.T) {
		raw, err := json.Marshal(FromBooking(entities.Booking{ID: "bk-2", AssignedTo: "crew-a"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var decoded map[string]any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if decoded["assigned_to"] != "crew-a" {
			t.Fatalf("expected assigned_to crew-a, got %v", decoded["assigned_to"])
		}
		if crews, ok := decoded["assigned_crews"].([]any); !ok || len(crews) != 0 {
			t.Fatalf("expected empty array, got %v", decoded["assigned_crews"])
		}
	})
}

func TestFromTransitionResult(t *testing.T) {
	res := FromTransitionResult(usecase.TransitionResult{
		Booking:  entities.Booking{ID: "bk-1"},
		Warnings: []string{"partial sync failure: mirror"},
	})
	if res.Booking.ID != "bk-1" || len(res.Warnings) != 1 {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.Payment{
		ID:                 "pay-1",
		BookingID:          "bk-1",
		CustomerID:         "cust-1",
		Amount:             50,
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: raw,
		ProviderPayload:    payload,
	}

	res := FromPayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.BookingID != "bk-1" || res.Status != "approved" || res.Amount != 50 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.MPPayloadRaw)
	}
	if res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}
	if got := FromPayments(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestFromSyncReport(t *testing.T) {
	mirrored := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	res := FromSyncReport(usecase.SyncReport{
		BookingID:    "bk-1",
		CustomerID:   "cust-1",
		MasterStatus: entities.AssignmentStatusConfirm,
		MirrorStatus: entities.AssignmentStatusAssigned,
		MirrorExists: true,
		MirroredAt:   &mirrored,
	})
	if res.MasterStatus != "confirm" || res.MirrorStatus != "assigned" || res.InSync {
		t.Fatalf("unexpected report: %+v", res)
	}
	if res.MirroredAt == nil || !res.MirroredAt.Equal(mirrored) || res.LastSyncAt != nil {
		t.Fatalf("unexpected timestamps: %+v", res)
	}
}

func TestFromValidationResult(t *testing.T) {
	res := FromValidationResult(usecase.ValidationResult{
		BookingID:    "bk-1",
		InSync:       false,
		Reason:       usecase.ReasonMirrorMissing,
		MasterStatus: entities.AssignmentStatusUnassigned,
	})
	if res.Reason != "mirror_missing" || res.InSync {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.DriftFields == nil {
		t.Fatalf("expected non-nil drift fields")
	}
}
