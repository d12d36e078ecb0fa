package upclient_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/themuzzleflare/provenance/internal/config"
	"github.com/themuzzleflare/provenance/internal/upclient"
)

func (suite *TestSuiteStandard) TestUnauthenticatedShortCircuits() {
	t := suite.T()

	server, requests := suite.server(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[],"pagination":{}}`)
	})
	client := suite.clientWithToken(server, "")

	_, err := client.Accounts(context.Background())
	assert.ErrorIs(t, err, upclient.ErrUnauthenticated)
	assert.Zero(t, requests.Load(), "no request may be issued without a token")
}

func (suite *TestSuiteStandard) TestRequestHeaders() {
	t := suite.T()

	server, _ := suite.server(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer up:yeah:abc123", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"data":[],"pagination":{}}`)
	})

	_, err := suite.client(server).Accounts(context.Background())
	require.NoError(t, err)
}

func (suite *TestSuiteStandard) TestAPIError() {
	t := suite.T()

	server, _ := suite.server(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"errors":[{"status":"404","title":"Record not found","detail":"The requested resource was not found."}]}`)
	})

	_, err := suite.client(server).Transactions(context.Background(), upclient.TransactionFilter{})

	var apiErr upclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Record not found", apiErr.Title)
	assert.Equal(t, "The requested resource was not found.", apiErr.Detail)
}

func (suite *TestSuiteStandard) TestUnknownHTTPError() {
	t := suite.T()

	server, _ := suite.server(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "upstream exploded")
	})

	_, err := suite.client(server).Tags(context.Background())

	var httpErr upclient.UnknownHTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
}

func (suite *TestSuiteStandard) TestDecodingError() {
	t := suite.T()

	server, _ := suite.server(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": "this is not a list"`)
	})

	_, err := suite.client(server).Accounts(context.Background())

	var decodingErr upclient.DecodingError
	assert.ErrorAs(t, err, &decodingErr)
	assert.False(t, upclient.IsTransport(err))
}

func (suite *TestSuiteStandard) TestTransportError() {
	t := suite.T()

	server, _ := suite.server(func(w http.ResponseWriter, r *http.Request) {})
	client := suite.client(server)
	server.Close()

	_, err := client.Accounts(context.Background())

	var transportErr upclient.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.True(t, upclient.IsTransport(err))
	assert.False(t, errors.Is(err, upclient.ErrUnauthenticated))
}

func (suite *TestSuiteStandard) TestBaseURLFollowsSettingsWrite() {
	t := suite.T()

	first, firstRequests := suite.server(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[],"pagination":{}}`)
	})
	second, secondRequests := suite.server(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[],"pagination":{}}`)
	})

	store := config.NewStore(config.Settings{Token: "up:yeah:abc123", BaseURL: first.URL})
	client := upclient.New(store)

	_, err := client.Accounts(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, firstRequests.Load())

	// An existing client observes a base URL write, like it does for
	// the token.
	store.SetBaseURL(second.URL)

	_, err = client.Accounts(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, firstRequests.Load())
	assert.EqualValues(t, 1, secondRequests.Load())
}

func (suite *TestSuiteStandard) TestPing() {
	t := suite.T()

	server, _ := suite.server(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/util/ping", r.URL.Path)
		fmt.Fprint(w, `{"meta":{"id":"1","statusEmoji":"⚡️"}}`)
	})

	assert.NoError(t, suite.client(server).Ping(context.Background()))
}

func (suite *TestSuiteStandard) TestPingRejectedToken() {
	t := suite.T()

	server, _ := suite.server(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"errors":[{"status":"401","title":"Not Authorized","detail":"The request was not authenticated."}]}`)
	})

	err := suite.client(server).Ping(context.Background())

	var apiErr upclient.APIError
	assert.ErrorAs(t, err, &apiErr)
}
