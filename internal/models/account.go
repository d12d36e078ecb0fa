// Package models implements the resources returned by the Up API.
package models

import (
	"time"

	"github.com/themuzzleflare/provenance/internal/types"
)

// AccountType is the kind of a bank account.
type AccountType string

const (
	AccountTypeSaver         AccountType = "SAVER"
	AccountTypeTransactional AccountType = "TRANSACTIONAL"
)

// Account represents a bank account held with the provider.
type Account struct {
	ID          string      `json:"id"`
	DisplayName string      `json:"displayName"`
	AccountType AccountType `json:"accountType"`
	Balance     types.Money `json:"balance"`
	CreatedAt   time.Time   `json:"createdAt"`
}
