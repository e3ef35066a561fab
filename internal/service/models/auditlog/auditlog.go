package auditlog

import "time"

// Entry records one order lifecycle event: the creation or a status change.
// Entries are written in the same transaction as the mutation they describe.
type Entry struct {
	ID          int64     `json:"id"`
	OrderID     int64     `json:"order_id"`
	CustomerID  int64     `json:"customer_id"`
	OrderStatus string    `json:"order_status"`
	ChangedBy   int64     `json:"changed_by"`
	CreatedAt   time.Time `json:"created_at"`
}
