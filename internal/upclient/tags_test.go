package upclient_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAddTags() {
	t := suite.T()

	id := uuid.NewString()

	var method, path, body string
	server, _ := suite.server(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.WriteHeader(http.StatusNoContent)
	})

	err := suite.client(server).AddTags(context.Background(), id, []string{"coffee", "work"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, method)
	assert.Equal(t, "/transactions/"+id+"/relationships/tags", path)
	assert.JSONEq(t, `{"data":[{"type":"tags","id":"coffee"},{"type":"tags","id":"work"}]}`, body)
}

func (suite *TestSuiteStandard) TestRemoveTags() {
	t := suite.T()

	id := uuid.NewString()

	var method string
	var identifiers struct {
		Data []struct {
			Type string `json:"type"`
			ID   string `json:"id"`
		} `json:"data"`
	}
	server, _ := suite.server(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&identifiers))
		w.WriteHeader(http.StatusNoContent)
	})

	err := suite.client(server).RemoveTags(context.Background(), id, []string{"coffee"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, method)
	require.Len(t, identifiers.Data, 1)
	assert.Equal(t, "tags", identifiers.Data[0].Type)
	assert.Equal(t, "coffee", identifiers.Data[0].ID)
}
