package kanban

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conductor-hq/conductor/ent"
)

func depTask(result string, output map[string]interface{}) *ent.Task {
	t := &ent.Task{Output: output}
	if result != "" {
		t.Result = &result
	}
	return t
}

func TestResolveInputMapping_OutputPath(t *testing.T) {
	deps := map[string]*ent.Task{
		"dep-1": depTask("", map[string]interface{}{
			"report": map[string]interface{}{"url": "https://example.com/r1"},
			"items":  []interface{}{"alpha", "beta"},
		}),
	}

	resolved := ResolveInputMapping(map[string]string{
		"report_url": "{{dep-1.output.report.url}}",
		"first_item": "{{dep-1.output.items.0}}",
	}, deps)

	assert.Equal(t, "https://example.com/r1", resolved["report_url"])
	assert.Equal(t, "alpha", resolved["first_item"])
}

func TestResolveInputMapping_Result(t *testing.T) {
	deps := map[string]*ent.Task{
		"dep-1": depTask("analysis complete", nil),
	}

	resolved := ResolveInputMapping(map[string]string{
		"context": "previous step said: {{dep-1.result}}",
	}, deps)

	assert.Equal(t, "previous step said: analysis complete", resolved["context"])
}

func TestResolveInputMapping_MissingReferencesPreservedVerbatim(t *testing.T) {
	deps := map[string]*ent.Task{
		"dep-1": depTask("done", map[string]interface{}{"key": "value"}),
	}

	resolved := ResolveInputMapping(map[string]string{
		"unknown_task": "{{ghost.output.key}}",
		"unknown_path": "{{dep-1.output.missing}}",
		"no_result":    "{{dep-1.output}}",
	}, deps)

	assert.Equal(t, "{{ghost.output.key}}", resolved["unknown_task"])
	assert.Equal(t, "{{dep-1.output.missing}}", resolved["unknown_path"])
	assert.Equal(t, "{{dep-1.output}}", resolved["no_result"])
}

func TestResolveInputMapping_NumericAndBoolStringified(t *testing.T) {
	deps := map[string]*ent.Task{
		"dep-1": depTask("", map[string]interface{}{
			"count": float64(7),
			"ok":    true,
		}),
	}

	resolved := ResolveInputMapping(map[string]string{
		"count": "{{dep-1.output.count}}",
		"ok":    "{{dep-1.output.ok}}",
	}, deps)

	assert.Equal(t, "7", resolved["count"])
	assert.Equal(t, "true", resolved["ok"])
}

func TestFormatInputBlock_SortedAndReadable(t *testing.T) {
	block := formatInputBlock(map[string]string{
		"zeta":  "last",
		"alpha": "first",
	})

	assert.Contains(t, block, "--- Inputs from dependencies ---")
	assert.Less(t,
		strings.Index(block, "alpha: first"),
		strings.Index(block, "zeta: last"))
}

func TestFormatInputBlock_EmptyMapping(t *testing.T) {
	assert.Empty(t, formatInputBlock(nil))
	assert.Empty(t, formatInputBlock(map[string]string{}))
}
