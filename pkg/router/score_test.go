package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreOne_FullyIdleOnlineAgent(t *testing.T) {
	s := scoreOne(Factors{
		AgentID:       "a1",
		Status:        "online",
		MaxConcurrent: 5,
		CurrentTasks:  0,
	}, defaultMaxRT)

	// No samples means worst-case latency: response_time scores zero.
	assert.Equal(t, 100.0, s.Capacity)
	assert.Equal(t, 0.0, s.ResponseTime)
	assert.Equal(t, 100.0, s.Health)
	assert.Equal(t, 100.0, s.Recency)
	assert.Equal(t, 70.0, s.Total) // 0.4*100 + 0.2*100 + 0.1*100
}

func TestScoreOne_Weights(t *testing.T) {
	s := scoreOne(Factors{
		AgentID:          "a1",
		Status:           "degraded",
		MaxConcurrent:    4,
		CurrentTasks:     1,
		MeanResponseTime: 1000,
	}, 2000)

	assert.Equal(t, 75.0, s.Capacity)     // (4-1)/4
	assert.Equal(t, 50.0, s.ResponseTime) // 1 - 1000/2000
	assert.Equal(t, 40.0, s.Health)
	assert.Equal(t, 80.0, s.Recency) // 100 - 20*1
	assert.Equal(t, 61.0, s.Total)   // 30 + 15 + 8 + 8
}

func TestScoreOne_OfflineScoresZeroHealth(t *testing.T) {
	s := scoreOne(Factors{AgentID: "a1", Status: "offline", MaxConcurrent: 1}, defaultMaxRT)
	assert.Equal(t, 0.0, s.Health)
}

func TestScoreOne_RecencyFloorsAtZero(t *testing.T) {
	s := scoreOne(Factors{
		AgentID:       "a1",
		Status:        "online",
		MaxConcurrent: 10,
		CurrentTasks:  7,
	}, defaultMaxRT)
	assert.Equal(t, 0.0, s.Recency)
}

func TestScoreOne_CapacityClampsWhenOversubscribed(t *testing.T) {
	s := scoreOne(Factors{
		AgentID:       "a1",
		Status:        "online",
		MaxConcurrent: 2,
		CurrentTasks:  3,
	}, defaultMaxRT)
	assert.Equal(t, 0.0, s.Capacity)
}

func TestScoreCandidates_MaxRTFromSlowestCandidate(t *testing.T) {
	scores := scoreCandidates([]Factors{
		{AgentID: "fast", Status: "online", MaxConcurrent: 1, MeanResponseTime: 500},
		{AgentID: "slow", Status: "online", MaxConcurrent: 1, MeanResponseTime: 2000},
	})

	// Slowest candidate defines the scale and scores zero on latency.
	assert.Equal(t, 75.0, scores[0].ResponseTime) // 1 - 500/2000
	assert.Equal(t, 0.0, scores[1].ResponseTime)
}

func TestScoreCandidates_DefaultMaxRTWithoutSamples(t *testing.T) {
	scores := scoreCandidates([]Factors{
		{AgentID: "a1", Status: "online", MaxConcurrent: 1},
	})
	// effective rt equals the 5000ms default, scoring zero.
	assert.Equal(t, 0.0, scores[0].ResponseTime)
}

func TestScoreOne_RoundsToTwoDecimals(t *testing.T) {
	s := scoreOne(Factors{
		AgentID:       "a1",
		Status:        "online",
		MaxConcurrent: 3,
		CurrentTasks:  1,
	}, defaultMaxRT)
	assert.Equal(t, 66.67, s.Capacity)
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, mean(nil))
	assert.Equal(t, 150.0, mean([]int64{100, 200}))
}
