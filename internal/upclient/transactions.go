package upclient

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/themuzzleflare/provenance/internal/models"
)

// TransactionFilter narrows the transactions listing server-side.
// The zero value applies no filters.
type TransactionFilter struct {
	Status   models.TransactionStatus
	Since    time.Time
	Until    time.Time
	Category string
	Tag      string
}

// query converts the filter into request parameters. A Since value in
// the future is rejected before any request is constructed.
func (f TransactionFilter) query(now time.Time) (url.Values, error) {
	if !f.Since.IsZero() && f.Since.After(now) {
		return nil, ErrFutureSince
	}

	query := pageQuery(pageSizeDefault)
	if f.Status != "" {
		query.Set("filter[status]", string(f.Status))
	}
	if !f.Since.IsZero() {
		query.Set("filter[since]", f.Since.Format(time.RFC3339))
	}
	if !f.Until.IsZero() {
		query.Set("filter[until]", f.Until.Format(time.RFC3339))
	}
	if f.Category != "" {
		query.Set("filter[category]", f.Category)
	}
	if f.Tag != "" {
		query.Set("filter[tag]", f.Tag)
	}

	return query, nil
}

// Transactions returns all transactions matching the filter, following
// pagination to the end.
func (c *Client) Transactions(ctx context.Context, filter TransactionFilter) ([]models.Transaction, error) {
	query, err := filter.query(time.Now())
	if err != nil {
		return nil, err
	}

	return listAll[models.Transaction](ctx, c, "/transactions", query)
}

// Transaction returns a single transaction by id.
func (c *Client) Transaction(ctx context.Context, id string) (models.Transaction, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Transaction{}, ErrInvalidResourceID
	}

	var envelope SingleResourceEnvelope[models.Transaction]
	if err := c.get(ctx, "/transactions/"+id, nil, &envelope); err != nil {
		return models.Transaction{}, err
	}

	return envelope.Data, nil
}
