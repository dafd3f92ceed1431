package processor

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ShareFrame/order-handler/models"
)

// TimestampLayout matches the ISO-8601 form upstream producers emit.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var errMissingOrderID = errors.New("orderId is missing or empty")

// ParseOrder decodes an SQS message body into an order document, unwrapping
// an SNS envelope when the body carries a non-empty Message string. Keys are
// matched exactly; encoding/json's case folding is not applied.
func ParseOrder(body string) (models.OrderDocument, error) {
	var doc models.OrderDocument

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &top); err != nil {
		return doc, fmt.Errorf("decode message body: %w", err)
	}

	inner, wrapped, err := envelopePayload(top[models.EnvelopeMessageKey])
	if err != nil {
		return doc, err
	}
	fields := top
	if wrapped {
		fields = nil
		if err := json.Unmarshal(inner, &fields); err != nil {
			return doc, fmt.Errorf("decode envelope message: %w", err)
		}
	}

	if err := decodeOrder(fields, &doc); err != nil {
		return doc, fmt.Errorf("decode order: %w", err)
	}
	return doc, nil
}

// envelopePayload treats a missing, null or empty Message as "not wrapped".
func envelopePayload(raw json.RawMessage) ([]byte, bool, error) {
	if len(raw) == 0 {
		return nil, false, nil
	}
	var msg *string
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, false, fmt.Errorf("envelope Message is not a string: %w", err)
	}
	if msg == nil || *msg == "" {
		return nil, false, nil
	}
	return []byte(*msg), true, nil
}

func decodeOrder(fields map[string]json.RawMessage, doc *models.OrderDocument) error {
	targets := []struct {
		key string
		dst any
	}{
		{models.KeyOrderID, &doc.OrderID},
		{models.KeyUserID, &doc.UserID},
		{models.KeyItemName, &doc.ItemName},
		{models.KeyQuantity, &doc.Quantity},
		{models.KeyStatus, &doc.Status},
		{models.KeyTimestamp, &doc.Timestamp},
	}
	for _, t := range targets {
		raw, ok := fields[t.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, t.dst); err != nil {
			return fmt.Errorf("field %s: %w", t.key, err)
		}
	}
	return nil
}

// Normalize projects an order document onto the persisted record. Optional
// fields stay nil when absent; timestamp falls back to now in UTC.
func Normalize(doc models.OrderDocument, now time.Time) (models.OrderRecord, error) {
	if doc.OrderID == nil || *doc.OrderID == "" {
		return models.OrderRecord{}, errMissingOrderID
	}

	rec := models.OrderRecord{
		OrderID:  *doc.OrderID,
		UserID:   doc.UserID,
		ItemName: doc.ItemName,
		Quantity: doc.Quantity,
		Status:   doc.Status,
	}
	if doc.Timestamp != nil && *doc.Timestamp != "" {
		rec.Timestamp = *doc.Timestamp
	} else {
		rec.Timestamp = now.UTC().Format(TimestampLayout)
	}
	return rec, nil
}
