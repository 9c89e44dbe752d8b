// Package router selects the best available agent for a capability using
// multi-factor scoring over capacity, latency, health, and recency.
package router

import "math"

// defaultMaxRT is assumed when no candidate has response-time samples.
const defaultMaxRT = 5000.0

// Factors holds the per-agent inputs to scoring.
type Factors struct {
	AgentID       string
	Status        string // online | degraded | offline
	MaxConcurrent int
	CurrentTasks  int
	// MeanResponseTime is the mean over the agent's recent samples in
	// milliseconds; <= 0 means no samples.
	MeanResponseTime float64
}

// Score is the weighted routing score for one candidate.
type Score struct {
	AgentID      string  `json:"agent_id"`
	Capacity     float64 `json:"capacity"`
	ResponseTime float64 `json:"response_time"`
	Health       float64 `json:"health"`
	Recency      float64 `json:"recency"`
	Total        float64 `json:"total"`
}

// scoreCandidates computes weighted scores for all candidates. maxRT is
// derived from the slowest known candidate; agents without samples are
// treated as worst-case.
func scoreCandidates(factors []Factors) []Score {
	maxRT := 0.0
	for _, f := range factors {
		if f.MeanResponseTime > maxRT {
			maxRT = f.MeanResponseTime
		}
	}
	if maxRT <= 0 {
		maxRT = defaultMaxRT
	}

	scores := make([]Score, len(factors))
	for i, f := range factors {
		scores[i] = scoreOne(f, maxRT)
	}
	return scores
}

func scoreOne(f Factors, maxRT float64) Score {
	capacity := 0.0
	if f.MaxConcurrent > 0 {
		capacity = 100 * float64(f.MaxConcurrent-f.CurrentTasks) / float64(f.MaxConcurrent)
	}
	capacity = clamp(capacity, 0, 100)

	effectiveRT := f.MeanResponseTime
	if effectiveRT <= 0 {
		effectiveRT = maxRT
	}
	responseTime := clamp(100*(1-effectiveRT/maxRT), 0, 100)

	var health float64
	switch f.Status {
	case "online":
		health = 100
	case "degraded":
		health = 40
	default:
		health = 0
	}

	recency := clamp(100-20*float64(f.CurrentTasks), 0, 100)

	total := 0.4*capacity + 0.3*responseTime + 0.2*health + 0.1*recency

	return Score{
		AgentID:      f.AgentID,
		Capacity:     round2(capacity),
		ResponseTime: round2(responseTime),
		Health:       round2(health),
		Recency:      round2(recency),
		Total:        round2(total),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func mean(samples []int64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum int64
	for _, s := range samples {
		sum += s
	}
	return float64(sum) / float64(len(samples))
}
