package upclient

import (
	"context"

	"github.com/google/uuid"
	"github.com/themuzzleflare/provenance/internal/models"
)

// Accounts returns all accounts, following pagination to the end.
func (c *Client) Accounts(ctx context.Context) ([]models.Account, error) {
	return listAll[models.Account](ctx, c, "/accounts", pageQuery(pageSizeDefault))
}

// Account returns a single account by id.
func (c *Client) Account(ctx context.Context, id string) (models.Account, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Account{}, ErrInvalidResourceID
	}

	var envelope SingleResourceEnvelope[models.Account]
	if err := c.get(ctx, "/accounts/"+id, nil, &envelope); err != nil {
		return models.Account{}, err
	}

	return envelope.Data, nil
}

// AccountTransactions returns all transactions for one account.
func (c *Client) AccountTransactions(ctx context.Context, accountID string) ([]models.Transaction, error) {
	if _, err := uuid.Parse(accountID); err != nil {
		return nil, ErrInvalidResourceID
	}

	return listAll[models.Transaction](ctx, c, "/accounts/"+accountID+"/transactions", pageQuery(pageSizeDefault))
}
