package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSign_MatchesReferenceHMAC(t *testing.T) {
	body := []byte(`{"event":"task:updated","timestamp":"2026-01-01T00:00:00Z","payload":{}}`)
	secret := "whsec_test"

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, expected, Sign(body, secret))
}

func TestSign_DifferentSecretsDiffer(t *testing.T) {
	body := []byte(`{"event":"x"}`)
	assert.NotEqual(t, Sign(body, "a"), Sign(body, "b"))
}

func TestBackoff_ExponentialWithCap(t *testing.T) {
	base := 60 * time.Second
	max := 3600 * time.Second

	assert.Equal(t, 60*time.Second, Backoff(1, base, max))
	assert.Equal(t, 120*time.Second, Backoff(2, base, max))
	assert.Equal(t, 240*time.Second, Backoff(3, base, max))
	assert.Equal(t, 480*time.Second, Backoff(4, base, max))
	// 60s * 2^6 = 3840s exceeds the cap.
	assert.Equal(t, max, Backoff(7, base, max))
	assert.Equal(t, max, Backoff(50, base, max))
}

func TestBackoff_FloorsAtOneAttempt(t *testing.T) {
	base := 60 * time.Second
	assert.Equal(t, base, Backoff(0, base, time.Hour))
	assert.Equal(t, base, Backoff(-3, base, time.Hour))
}

func TestBody_CanonicalShape(t *testing.T) {
	raw, err := json.Marshal(Body{
		Event:     "task:dead_letter",
		Timestamp: "2026-08-24T10:00:00Z",
		Payload:   map[string]interface{}{"task_uuid": "t-1"},
	})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "task:dead_letter", decoded["event"])
	assert.Equal(t, "2026-08-24T10:00:00Z", decoded["timestamp"])
	assert.Contains(t, decoded, "payload")

	assert.Equal(t, "task:dead_letter", hookEvent(raw))
}
