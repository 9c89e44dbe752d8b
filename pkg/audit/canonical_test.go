package audit_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductor-hq/conductor/pkg/audit"
)

func decodeJSON(t *testing.T, raw string) interface{} {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestCanonicalJSON_KeyOrderIndependent(t *testing.T) {
	a := decodeJSON(t, `{"b":{"y":2,"x":1},"a":[1,2,3],"c":"s"}`)
	b := decodeJSON(t, `{"c":"s","a":[1,2,3],"b":{"x":1,"y":2}}`)

	ca, err := audit.CanonicalJSON(a)
	require.NoError(t, err)
	cb, err := audit.CanonicalJSON(b)
	require.NoError(t, err)

	assert.Equal(t, string(ca), string(cb))
	assert.Equal(t, `{"a":[1,2,3],"b":{"x":1,"y":2},"c":"s"}`, string(ca))
}

func TestCanonicalJSON_ArraysKeepOrder(t *testing.T) {
	c, err := audit.CanonicalJSON(decodeJSON(t, `{"seq":[3,1,2]}`))
	require.NoError(t, err)
	assert.Equal(t, `{"seq":[3,1,2]}`, string(c))
}

func TestHashJSON_StructAndMapAgree(t *testing.T) {
	type payload struct {
		RunID  string `json:"run_id"`
		Status string `json:"status"`
	}
	h1, err := audit.HashJSON(payload{RunID: "r1", Status: "completed"})
	require.NoError(t, err)
	h2, err := audit.HashJSON(map[string]interface{}{
		"status": "completed",
		"run_id": "r1",
	})
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
}

func TestHashJSON_SensitiveToValues(t *testing.T) {
	h1, err := audit.HashJSON(map[string]interface{}{"n": 1})
	require.NoError(t, err)
	h2, err := audit.HashJSON(map[string]interface{}{"n": 2})
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
