package workflow

import (
	"fmt"
	"sort"

	"github.com/conductor-hq/conductor/pkg/models"
)

// Levels computes execution levels by Kahn's algorithm: each level is the
// set of stages whose dependencies are all satisfied by earlier levels.
// Stages within a level are sorted by id for deterministic ordering.
func Levels(def models.WorkflowDefinition) ([][]models.StageDefinition, error) {
	inDegree := make(map[string]int, len(def.Stages))
	downstream := make(map[string][]string, len(def.Stages))
	byID := make(map[string]models.StageDefinition, len(def.Stages))

	for _, s := range def.Stages {
		byID[s.ID] = s
		inDegree[s.ID] += 0
		for _, dep := range s.Dependencies {
			downstream[dep] = append(downstream[dep], s.ID)
			inDegree[s.ID]++
		}
	}

	var levels [][]models.StageDefinition
	ready := make([]string, 0, len(def.Stages))
	for id, deg := range inDegree {
		if deg == 0 {
			ready = append(ready, id)
		}
	}

	visited := 0
	for len(ready) > 0 {
		sort.Strings(ready)
		level := make([]models.StageDefinition, 0, len(ready))
		var next []string
		for _, id := range ready {
			level = append(level, byID[id])
			visited++
			for _, dep := range downstream[id] {
				inDegree[dep]--
				if inDegree[dep] == 0 {
					next = append(next, dep)
				}
			}
		}
		levels = append(levels, level)
		ready = next
	}

	if visited != len(def.Stages) {
		return nil, fmt.Errorf("workflow contains a dependency cycle")
	}
	return levels, nil
}
