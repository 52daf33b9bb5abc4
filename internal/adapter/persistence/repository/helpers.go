package repository

import (
	"encoding/json"
	"fmt"
)

const (
	bookingsCollection    = "bookings"
	customersCollection   = "customers"
	crewsCollection       = "crews"
	paymentsCollection    = "payments"
	syncIntentsCollection = "syncIntents"

	failedSyncIntentsCollection = "failedSyncIntents"
)

func bookingPath(id string) string {
	return bookingsCollection + "/" + id
}

func mirrorCollection(customerID string) string {
	return customersCollection + "/" + customerID + "/" + bookingsCollection
}

func mirrorPath(customerID, bookingID string) string {
	return mirrorCollection(customerID) + "/" + bookingID
}

func crewPath(id string) string {
	return crewsCollection + "/" + id
}

func paymentCollection(bookingID string) string {
	return bookingPath(bookingID) + "/" + paymentsCollection
}

func paymentPath(bookingID, paymentID string) string {
	return paymentCollection(bookingID) + "/" + paymentID
}

func syncIntentPath(id string) string {
	return syncIntentsCollection + "/" + id
}

func failedSyncIntentPath(id string) string {
	return failedSyncIntentsCollection + "/" + id
}

// toFields renders an entity as document fields.
func toFields(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode entity: %w", err)
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("encode entity: %w", err)
	}
	if at, ok := fields["assignedTo"]; ok && at == "" {
		fields["assignedTo"] = nil
	}
	return fields, nil
}

// fromFields decodes document fields into an entity.
func fromFields(fields map[string]any, out any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("decode entity: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode entity: %w", err)
	}
	return nil
}
