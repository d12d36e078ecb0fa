package upclient

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/themuzzleflare/provenance/internal/models"
)

// Tags returns all tags, following pagination to the end.
func (c *Client) Tags(ctx context.Context) ([]models.Tag, error) {
	return listAll[models.Tag](ctx, c, "/tags", pageQuery(pageSizeTags))
}

// AddTags associates the given tags with a transaction. Tags already
// present on the transaction are ignored by the server.
func (c *Client) AddTags(ctx context.Context, transactionID string, tagIDs []string) error {
	return c.mutateTags(ctx, http.MethodPatch, transactionID, tagIDs)
}

// RemoveTags removes the given tags from a transaction.
func (c *Client) RemoveTags(ctx context.Context, transactionID string, tagIDs []string) error {
	return c.mutateTags(ctx, http.MethodDelete, transactionID, tagIDs)
}

func (c *Client) mutateTags(ctx context.Context, method, transactionID string, tagIDs []string) error {
	if _, err := uuid.Parse(transactionID); err != nil {
		return ErrInvalidResourceID
	}

	body := relationshipsBody{}
	for _, id := range tagIDs {
		body.Data = append(body.Data, resourceIdentifier{Type: "tags", ID: id})
	}

	_, err := c.do(ctx, method, c.url("/transactions/"+transactionID+"/relationships/tags", nil), body)
	return err
}
