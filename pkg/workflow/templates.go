package workflow

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// templateRef matches ${X.Y.Z} references inside template strings.
var templateRef = regexp.MustCompile(`\$\{([^}]+)\}`)

// ResolutionContext holds the values template references resolve against.
type ResolutionContext struct {
	// Input is the run input, addressed as workflow.input.<key>.
	Input map[string]interface{}
	// StageOutputs maps stage id → output, addressed as <stage_id>.output.<path>.
	StageOutputs map[string]map[string]interface{}
}

// ResolveTemplates walks a stage input template and substitutes every
// ${X.Y.Z} reference. A string that is exactly one reference keeps the
// referenced value's type; references embedded in longer strings are
// stringified. Unknown references resolve to the empty string.
func ResolveTemplates(template map[string]interface{}, rc ResolutionContext) map[string]interface{} {
	if template == nil {
		return map[string]interface{}{}
	}
	resolved := resolveValue(template, rc)
	out, ok := resolved.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return out
}

func resolveValue(v interface{}, rc ResolutionContext) interface{} {
	switch val := v.(type) {
	case string:
		return resolveString(val, rc)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = resolveValue(item, rc)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = resolveValue(item, rc)
		}
		return out
	default:
		return v
	}
}

func resolveString(s string, rc ResolutionContext) interface{} {
	// A whole-string reference keeps the value's type.
	if m := templateRef.FindStringSubmatch(s); m != nil && m[0] == s {
		return lookupRef(m[1], rc)
	}
	return templateRef.ReplaceAllStringFunc(s, func(match string) string {
		ref := match[2 : len(match)-1]
		return stringify(lookupRef(ref, rc))
	})
}

// lookupRef resolves one dotted reference. Returns "" for anything the
// context cannot answer.
func lookupRef(ref string, rc ResolutionContext) interface{} {
	parts := strings.Split(ref, ".")
	switch {
	case len(parts) >= 3 && parts[0] == "workflow" && parts[1] == "input":
		return traverse(rc.Input, parts[2:])
	case len(parts) >= 3 && parts[1] == "output":
		output, ok := rc.StageOutputs[parts[0]]
		if !ok {
			return ""
		}
		return traverse(output, parts[2:])
	default:
		return ""
	}
}

// traverse follows a dotted path through nested maps and arrays. Numeric
// path segments index into arrays.
func traverse(v interface{}, path []string) interface{} {
	current := v
	for _, seg := range path {
		switch node := current.(type) {
		case map[string]interface{}:
			next, ok := node[seg]
			if !ok {
				return ""
			}
			current = next
		case []interface{}:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return ""
			}
			current = node[idx]
		default:
			return ""
		}
	}
	if current == nil {
		return ""
	}
	return current
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
