package domain

import "time"

// Customer is a record in the external customer registry. AccountNumber is
// the natural key and carries a unique constraint in the store.
type Customer struct {
	ID            int64     `json:"id"`
	AccountNumber string    `json:"account_number"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Branch        string    `json:"branch"`
	CreatedAt     time.Time `json:"created_at"`
}
