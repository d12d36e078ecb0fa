package models

import (
	"time"

	"github.com/themuzzleflare/provenance/internal/types"
)

// MaxTagsPerTransaction is the hard ceiling the API enforces on the
// number of tags associated with a single transaction.
const MaxTagsPerTransaction = 6

// TransactionStatus is the lifecycle status of a transaction. Held
// funds are provisional, settled funds are final.
type TransactionStatus string

const (
	TransactionStatusHeld    TransactionStatus = "HELD"
	TransactionStatusSettled TransactionStatus = "SETTLED"
)

// Transaction represents a single transaction on an account.
type Transaction struct {
	ID                string            `json:"id"`
	Description       string            `json:"description"`
	RawText           string            `json:"rawText,omitempty"`
	Message           string            `json:"message,omitempty"`
	Status            TransactionStatus `json:"status"`
	Amount            types.Money       `json:"amount"`
	ForeignAmount     *types.Money      `json:"foreignAmount,omitempty"`
	HoldAmount        *types.Money      `json:"holdAmount,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	SettledAt         *time.Time        `json:"settledAt,omitempty"`
	AccountID         string            `json:"accountId"`
	TransferAccountID string            `json:"transferAccountId,omitempty"`
	CategoryID        string            `json:"categoryId,omitempty"`
	ParentCategoryID  string            `json:"parentCategoryId,omitempty"`
	TagIDs            []string          `json:"tagIds"`
}

// IsSettled reports whether the transaction has settled.
func (t Transaction) IsSettled() bool {
	return t.Status == TransactionStatusSettled
}

// HasTag reports whether the transaction carries the given tag.
func (t Transaction) HasTag(id string) bool {
	for _, tag := range t.TagIDs {
		if tag == id {
			return true
		}
	}
	return false
}
