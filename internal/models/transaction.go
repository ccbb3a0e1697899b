package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionAction string

const (
	ActionAdded   TransactionAction = "Added"
	ActionUpdated TransactionAction = "Updated"
)

// Transaction is one entry of the append-only inventory log.
type Transaction struct {
	ID        uuid.UUID         `json:"id"`
	Action    TransactionAction `json:"action"`
	SKU       string            `json:"sku"`
	CreatedAt time.Time         `json:"created_at"`
}

func (t Transaction) String() string {
	return string(t.Action) + " " + t.SKU
}
