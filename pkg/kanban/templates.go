package kanban

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/conductor-hq/conductor/ent"
)

// mappingRef matches {{task_uuid.output.path}} and {{task_uuid.result}}
// references inside input-mapping values.
var mappingRef = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// ResolveInputMapping substitutes dependency references in an input
// mapping. deps maps task uuid → completed dependency task. References
// that cannot be resolved are preserved verbatim so the receiving agent
// can see what was expected.
func ResolveInputMapping(mapping map[string]string, deps map[string]*ent.Task) map[string]string {
	resolved := make(map[string]string, len(mapping))
	for key, tmpl := range mapping {
		resolved[key] = mappingRef.ReplaceAllStringFunc(tmpl, func(match string) string {
			ref := strings.TrimSpace(match[2 : len(match)-2])
			if value, ok := lookupDepRef(ref, deps); ok {
				return value
			}
			return match
		})
	}
	return resolved
}

func lookupDepRef(ref string, deps map[string]*ent.Task) (string, bool) {
	parts := strings.Split(ref, ".")
	if len(parts) < 2 {
		return "", false
	}
	dep, ok := deps[parts[0]]
	if !ok {
		return "", false
	}

	switch parts[1] {
	case "result":
		if len(parts) != 2 || dep.Result == nil {
			return "", false
		}
		return *dep.Result, true
	case "output":
		if len(parts) < 3 || dep.Output == nil {
			return "", false
		}
		return traverseOutput(dep.Output, parts[2:])
	default:
		return "", false
	}
}

// traverseOutput follows a dotted path through the dependency's output.
// Numeric segments index into arrays.
func traverseOutput(v interface{}, path []string) (string, bool) {
	current := v
	for _, seg := range path {
		switch node := current.(type) {
		case map[string]interface{}:
			next, ok := node[seg]
			if !ok {
				return "", false
			}
			current = next
		case []interface{}:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return "", false
			}
			current = node[idx]
		default:
			return "", false
		}
	}
	switch val := current.(type) {
	case string:
		return val, true
	case nil:
		return "", false
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		return fmt.Sprintf("%v", val), true
	}
}

// formatInputBlock renders resolved inputs as the human-readable block
// appended to the unblocked task's description. Keys are sorted so the
// block is deterministic.
func formatInputBlock(resolved map[string]string) string {
	if len(resolved) == 0 {
		return ""
	}
	keys := make([]string, 0, len(resolved))
	for k := range resolved {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("\n\n--- Inputs from dependencies ---\n")
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(resolved[k])
		b.WriteString("\n")
	}
	return b.String()
}
