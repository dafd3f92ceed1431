package models

// EnvelopeMessageKey is the SNS notification field carrying the order JSON
// when the queue is subscribed to a topic. The match is case-sensitive.
const EnvelopeMessageKey = "Message"

// Order document keys, matched exactly.
const (
	KeyOrderID   = "orderId"
	KeyUserID    = "userId"
	KeyItemName  = "itemName"
	KeyQuantity  = "quantity"
	KeyStatus    = "status"
	KeyTimestamp = "timestamp"
)

// OrderDocument is an order as published upstream. Fields outside this set are ignored.
type OrderDocument struct {
	OrderID   *string
	UserID    *string
	ItemName  *string
	Quantity  *float64
	Status    *string
	Timestamp *string
}

// OrderRecord is the item written to the orders table, keyed by OrderID.
type OrderRecord struct {
	OrderID   string   `json:"orderId" dynamodbav:"orderId"`
	UserID    *string  `json:"userId,omitempty" dynamodbav:"userId,omitempty"`
	ItemName  *string  `json:"itemName,omitempty" dynamodbav:"itemName,omitempty"`
	Quantity  *float64 `json:"quantity,omitempty" dynamodbav:"quantity,omitempty"`
	Status    *string  `json:"status,omitempty" dynamodbav:"status,omitempty"`
	Timestamp string   `json:"timestamp" dynamodbav:"timestamp"`
}

// Acknowledgment is the invocation result once every record has been written.
type Acknowledgment struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}
