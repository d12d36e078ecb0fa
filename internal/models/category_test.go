package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/themuzzleflare/provenance/internal/models"
)

func TestCategoryIsParent(t *testing.T) {
	tests := []struct {
		name     string
		category models.Category
		isParent bool
	}{
		{"no parent", models.Category{ID: "good-life", Name: "Good Life"}, true},
		{"with parent", models.Category{ID: "booze", Name: "Booze", ParentID: "good-life"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isParent, tt.category.IsParent())
		})
	}
}

func TestCategoryRoundTrip(t *testing.T) {
	raw := `{"id":"booze","name":"Booze","parentId":"good-life"}`

	var category models.Category
	require.NoError(t, json.Unmarshal([]byte(raw), &category))

	assert.Equal(t, "booze", category.ID)
	assert.False(t, category.IsParent())

	var parent models.Category
	require.NoError(t, json.Unmarshal([]byte(`{"id":"good-life","name":"Good Life","childIds":["booze"]}`), &parent))
	assert.True(t, parent.IsParent())
}
