package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/themuzzleflare/provenance/internal/models"
)

func TestTransactionIsSettled(t *testing.T) {
	assert.True(t, models.Transaction{Status: models.TransactionStatusSettled}.IsSettled())
	assert.False(t, models.Transaction{Status: models.TransactionStatusHeld}.IsSettled())
}

func TestTransactionHasTag(t *testing.T) {
	transaction := models.Transaction{TagIDs: []string{"coffee", "work"}}

	assert.True(t, transaction.HasTag("coffee"))
	assert.False(t, transaction.HasTag("groceries"))
}
