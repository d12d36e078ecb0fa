package upclient

import (
	"context"

	"github.com/themuzzleflare/provenance/internal/models"
)

// Categories returns all categories. The listing is a single page and
// takes no pagination parameters.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var envelope ResourceEnvelope[models.Category]
	if err := c.get(ctx, "/categories", nil, &envelope); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}
