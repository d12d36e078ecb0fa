package upclient_test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/themuzzleflare/provenance/internal/upclient"
)

func (suite *TestSuiteStandard) TestPaginationCompleteness() {
	t := suite.T()

	// Three synthetic pages, each carrying a next link except the last.
	var serverURL string
	server, requests := suite.server(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("page[size]"))

		switch r.URL.Query().Get("page[after]") {
		case "":
			fmt.Fprintf(w, `{"data":[{"id":"a"},{"id":"b"}],"pagination":{"next":"%s/accounts?page[after]=2&page[size]=100"}}`, serverURL)
		case "2":
			fmt.Fprintf(w, `{"data":[{"id":"c"}],"pagination":{"next":"%s/accounts?page[after]=3&page[size]=100"}}`, serverURL)
		case "3":
			fmt.Fprint(w, `{"data":[{"id":"d"},{"id":"e"}],"pagination":{}}`)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	})
	serverURL = server.URL

	accounts, err := suite.client(server).Accounts(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(accounts))
	for _, account := range accounts {
		ids = append(ids, account.ID)
	}

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids, "pages must concatenate in response order")
	assert.EqualValues(t, 3, requests.Load(), "exactly one request per page")
}

func (suite *TestSuiteStandard) TestPaginationAbortsOnError() {
	t := suite.T()

	var serverURL string
	server, _ := suite.server(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page[after]") == "" {
			fmt.Fprintf(w, `{"data":[{"id":"a"}],"pagination":{"next":"%s/tags?page[after]=2"}}`, serverURL)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"errors":[{"status":"500","title":"Server error","detail":"Something went wrong."}]}`)
	})
	serverURL = server.URL

	tags, err := suite.client(server).Tags(context.Background())

	var apiErr upclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Nil(t, tags, "partial pages must be discarded")
}

func (suite *TestSuiteStandard) TestTagsPageSize() {
	t := suite.T()

	server, _ := suite.server(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "200", r.URL.Query().Get("page[size]"))
		fmt.Fprint(w, `{"data":[],"pagination":{}}`)
	})

	_, err := suite.client(server).Tags(context.Background())
	require.NoError(t, err)
}
