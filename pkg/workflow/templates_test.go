package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testResolutionContext() ResolutionContext {
	return ResolutionContext{
		Input: map[string]interface{}{
			"topic": "incidents",
			"count": float64(3),
		},
		StageOutputs: map[string]map[string]interface{}{
			"gather": {
				"summary": "all clear",
				"items": []interface{}{
					map[string]interface{}{"name": "first"},
					map[string]interface{}{"name": "second"},
				},
				"meta": map[string]interface{}{"score": float64(0.9)},
			},
		},
	}
}

func TestResolveTemplates_WorkflowInput(t *testing.T) {
	out := ResolveTemplates(map[string]interface{}{
		"subject": "${workflow.input.topic}",
	}, testResolutionContext())
	assert.Equal(t, "incidents", out["subject"])
}

func TestResolveTemplates_StageOutputNestedPath(t *testing.T) {
	out := ResolveTemplates(map[string]interface{}{
		"prev":  "${gather.output.summary}",
		"score": "${gather.output.meta.score}",
		"first": "${gather.output.items.0.name}",
	}, testResolutionContext())

	assert.Equal(t, "all clear", out["prev"])
	assert.Equal(t, float64(0.9), out["score"])
	assert.Equal(t, "first", out["first"])
}

func TestResolveTemplates_WholeStringKeepsType(t *testing.T) {
	out := ResolveTemplates(map[string]interface{}{
		"count": "${workflow.input.count}",
		"items": "${gather.output.items}",
	}, testResolutionContext())

	assert.Equal(t, float64(3), out["count"])
	assert.IsType(t, []interface{}{}, out["items"])
}

func TestResolveTemplates_EmbeddedReferenceIsStringified(t *testing.T) {
	out := ResolveTemplates(map[string]interface{}{
		"prompt": "summarize ${workflow.input.count} ${workflow.input.topic}",
	}, testResolutionContext())
	assert.Equal(t, "summarize 3 incidents", out["prompt"])
}

func TestResolveTemplates_UnknownReferenceIsEmptyString(t *testing.T) {
	out := ResolveTemplates(map[string]interface{}{
		"missing_key":   "${workflow.input.nope}",
		"missing_stage": "${ghost.output.value}",
		"missing_path":  "${gather.output.summary.deeper}",
		"bad_index":     "${gather.output.items.9.name}",
		"garbage":       "${just_garbage}",
	}, testResolutionContext())

	for k, v := range out {
		assert.Equal(t, "", v, "key %s", k)
	}
}

func TestResolveTemplates_NestedStructures(t *testing.T) {
	out := ResolveTemplates(map[string]interface{}{
		"wrapper": map[string]interface{}{
			"inner": []interface{}{"${workflow.input.topic}", "static"},
		},
	}, testResolutionContext())

	wrapper := out["wrapper"].(map[string]interface{})
	inner := wrapper["inner"].([]interface{})
	assert.Equal(t, "incidents", inner[0])
	assert.Equal(t, "static", inner[1])
}

func TestResolveTemplates_Idempotent(t *testing.T) {
	rc := testResolutionContext()
	tmpl := map[string]interface{}{
		"subject": "${workflow.input.topic}",
		"prev":    "${gather.output.summary}",
	}
	once := ResolveTemplates(tmpl, rc)
	twice := ResolveTemplates(once, rc)
	assert.Equal(t, once, twice)
}

func TestResolveTemplates_NilTemplate(t *testing.T) {
	out := ResolveTemplates(nil, testResolutionContext())
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
