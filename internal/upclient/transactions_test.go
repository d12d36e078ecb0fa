package upclient_test

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/themuzzleflare/provenance/internal/models"
	"github.com/themuzzleflare/provenance/internal/upclient"
)

func (suite *TestSuiteStandard) TestFutureSinceRejected() {
	t := suite.T()

	server, requests := suite.server(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[],"pagination":{}}`)
	})

	_, err := suite.client(server).Transactions(context.Background(), upclient.TransactionFilter{
		Since: time.Now().Add(24 * time.Hour),
	})

	assert.ErrorIs(t, err, upclient.ErrFutureSince)
	assert.Zero(t, requests.Load(), "a future since filter must never reach the wire")
}

func (suite *TestSuiteStandard) TestTransactionFilterQuery() {
	t := suite.T()

	since := time.Now().Add(-48 * time.Hour).Truncate(time.Second)

	var query url.Values
	server, _ := suite.server(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		fmt.Fprint(w, `{"data":[],"pagination":{}}`)
	})

	_, err := suite.client(server).Transactions(context.Background(), upclient.TransactionFilter{
		Status:   models.TransactionStatusSettled,
		Since:    since,
		Category: "booze",
		Tag:      "work",
	})
	require.NoError(t, err)

	assert.Equal(t, "SETTLED", query.Get("filter[status]"))
	assert.Equal(t, since.Format(time.RFC3339), query.Get("filter[since]"))
	assert.Equal(t, "booze", query.Get("filter[category]"))
	assert.Equal(t, "work", query.Get("filter[tag]"))
	assert.Equal(t, "100", query.Get("page[size]"))
	assert.Empty(t, query.Get("filter[until]"))
}

func (suite *TestSuiteStandard) TestTransactionDetail() {
	t := suite.T()

	id := uuid.NewString()
	server, _ := suite.server(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions/"+id, r.URL.Path)
		fmt.Fprintf(w, `{"data":{"id":"%s","description":"Coffee","status":"SETTLED","amount":{"currencyCode":"AUD","value":"-4.50","valueInBaseUnits":-450},"tagIds":["coffee"]}}`, id)
	})

	transaction, err := suite.client(server).Transaction(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "Coffee", transaction.Description)
	assert.True(t, transaction.IsSettled())
	assert.Equal(t, "-$4.50", transaction.Amount.Display())
}

func (suite *TestSuiteStandard) TestInvalidResourceID() {
	t := suite.T()

	server, requests := suite.server(func(w http.ResponseWriter, r *http.Request) {})
	client := suite.client(server)

	_, err := client.Transaction(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, upclient.ErrInvalidResourceID)

	_, err = client.Account(context.Background(), "also-not-a-uuid")
	assert.ErrorIs(t, err, upclient.ErrInvalidResourceID)

	assert.Zero(t, requests.Load())
}
