package audit_test

import (
	"crypto/rand"
	"crypto/rsa"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductor-hq/conductor/pkg/audit"
)

var (
	testKeyOnce sync.Once
	testKey     *rsa.PrivateKey
)

func testSigner(t *testing.T) *audit.Signer {
	t.Helper()
	testKeyOnce.Do(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(err)
		}
		testKey = key
	})
	return audit.NewSigner(testKey, "platform-test")
}

func TestSigner_SignVerifyRoundTrip(t *testing.T) {
	s := testSigner(t)
	payload := map[string]interface{}{
		"run_id":   "r1",
		"stage_id": "a",
		"status":   "completed",
	}

	sig, err := s.Sign(payload)
	require.NoError(t, err)
	assert.NoError(t, s.Verify(payload, sig))
	assert.Equal(t, "platform-test", s.Name())
}

func TestSigner_KeyOrderDoesNotChangeSignature(t *testing.T) {
	s := testSigner(t)
	a := decodeJSON(t, `{"run_id":"r1","status":"completed","nested":{"x":1,"y":2}}`)
	b := decodeJSON(t, `{"nested":{"y":2,"x":1},"status":"completed","run_id":"r1"}`)

	// PKCS#1 v1.5 is deterministic, so equal canonical forms sign equally.
	sigA, err := s.Sign(a)
	require.NoError(t, err)
	sigB, err := s.Sign(b)
	require.NoError(t, err)
	assert.Equal(t, sigA, sigB)
	assert.NoError(t, s.Verify(a, sigB))
}

func TestSigner_VerifyRejectsTampering(t *testing.T) {
	s := testSigner(t)
	payload := map[string]interface{}{"run_id": "r1", "status": "completed"}
	sig, err := s.Sign(payload)
	require.NoError(t, err)

	altered := map[string]interface{}{"run_id": "r1", "status": "failed"}
	assert.Error(t, s.Verify(altered, sig))

	// A single flipped character in the signature invalidates it.
	flipped := []byte(sig)
	if flipped[0] == 'a' {
		flipped[0] = 'b'
	} else {
		flipped[0] = 'a'
	}
	assert.Error(t, s.Verify(payload, string(flipped)))

	assert.Error(t, s.Verify(payload, "not-hex"))
}
