package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conductor-hq/conductor/pkg/models"
)

func stageIDs(level []models.StageDefinition) []string {
	ids := make([]string, len(level))
	for i, s := range level {
		ids[i] = s.ID
	}
	return ids
}

func TestLevels_Diamond(t *testing.T) {
	def := models.WorkflowDefinition{Stages: []models.StageDefinition{
		{ID: "a", Capability: "c"},
		{ID: "b", Capability: "c", Dependencies: []string{"a"}},
		{ID: "c", Capability: "c", Dependencies: []string{"a"}},
		{ID: "d", Capability: "c", Dependencies: []string{"b", "c"}},
	}}

	levels, err := Levels(def)
	require.NoError(t, err)
	require.Len(t, levels, 3)
	assert.Equal(t, []string{"a"}, stageIDs(levels[0]))
	assert.Equal(t, []string{"b", "c"}, stageIDs(levels[1]))
	assert.Equal(t, []string{"d"}, stageIDs(levels[2]))
}

func TestLevels_RootsInLevelZero(t *testing.T) {
	def := models.WorkflowDefinition{Stages: []models.StageDefinition{
		{ID: "r1", Capability: "c"},
		{ID: "r2", Capability: "c"},
		{ID: "sink", Capability: "c", Dependencies: []string{"r1", "r2"}},
	}}

	levels, err := Levels(def)
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, []string{"r1", "r2"}, stageIDs(levels[0]))
	assert.Equal(t, []string{"sink"}, stageIDs(levels[1]))
}

func TestLevels_CycleDetected(t *testing.T) {
	def := models.WorkflowDefinition{Stages: []models.StageDefinition{
		{ID: "a", Capability: "c", Dependencies: []string{"b"}},
		{ID: "b", Capability: "c", Dependencies: []string{"a"}},
	}}

	_, err := Levels(def)
	assert.ErrorContains(t, err, "cycle")
}

func TestLevels_TopologicalPrefix(t *testing.T) {
	def := models.WorkflowDefinition{Stages: []models.StageDefinition{
		{ID: "fetch", Capability: "c"},
		{ID: "parse", Capability: "c", Dependencies: []string{"fetch"}},
		{ID: "store", Capability: "c", Dependencies: []string{"parse"}},
	}}

	levels, err := Levels(def)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, level := range levels {
		for _, s := range level {
			for _, dep := range s.Dependencies {
				assert.True(t, seen[dep], "dependency %s of %s must appear in an earlier level", dep, s.ID)
			}
		}
		for _, s := range level {
			seen[s.ID] = true
		}
	}
}
