package entities

import (
	"bytes"
	"encoding/json"
	"strings"
)

const DefaultProductName = "Booking"

type bookingService struct {
	Name string `json:"name"`
}

// BookingProductName derives the checkout line-item label from an opaque
// booking: the joined service names, else the customer name, else "Booking".
// Malformed parts are ignored rather than rejected.
func BookingProductName(booking json.RawMessage) string {
	var fields map[string]json.RawMessage
	if len(booking) == 0 || json.Unmarshal(booking, &fields) != nil {
		return DefaultProductName
	}

	var services []bookingService
	if raw, ok := fields["services"]; ok && json.Unmarshal(raw, &services) == nil {
		names := make([]string, 0, len(services))
		for _, s := range services {
			if name := strings.TrimSpace(s.Name); name != "" {
				names = append(names, name)
			}
		}
		if len(names) > 0 {
			return strings.Join(names, ", ")
		}
	}

	var customerName string
	if raw, ok := fields["customerName"]; ok && json.Unmarshal(raw, &customerName) == nil {
		if customerName = strings.TrimSpace(customerName); customerName != "" {
			return customerName
		}
	}

	return DefaultProductName
}

// CompactBooking returns the booking as compact JSON, "{}" when absent or null.
func CompactBooking(booking json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(booking)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "{}", nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return "", err
	}
	return buf.String(), nil
}
