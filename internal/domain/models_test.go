package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiderDecodesUnderscoreID(t *testing.T) {
	var r Rider
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"a1","Id":"R-001","Name":"Alice"}`), &r))

	assert.Equal(t, "a1", r.ID)
	assert.Equal(t, "R-001", r.RiderID)
}

func TestRiderFallsBackToLowercaseID(t *testing.T) {
	var riders []Rider
	data := `[{"id":"a1","name":"Alice","status":true},{"id":"a2","name":"Bob","status":false}]`
	require.NoError(t, json.Unmarshal([]byte(data), &riders))

	require.Len(t, riders, 2)
	assert.Equal(t, "a1", riders[0].ID)
	assert.Equal(t, "Alice", riders[0].Name)
	assert.Equal(t, "Active", riders[0].StatusLabel())
	assert.Equal(t, "a2", riders[1].ID)
	assert.Equal(t, "/edit/a2", riders[1].EditPath())
}

func TestRiderEncodesWireKeys(t *testing.T) {
	out, err := json.Marshal(Rider{ID: "a1", Name: "Alice"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"_id":"a1"`)
}
