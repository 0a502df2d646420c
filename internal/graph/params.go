package graph

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// encodeParams renders parameters as a "CYPHER k=v ..." query prefix.
// Keys are sorted so the produced query text is deterministic.
func encodeParams(params map[string]any) (string, error) {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("CYPHER")
	for _, k := range keys {
		v, err := encodeValue(params[k])
		if err != nil {
			return "", fmt.Errorf("encoding parameter %q: %w", k, err)
		}
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(v)
	}
	return b.String(), nil
}

func encodeValue(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "null", nil
	case string:
		return quoteString(val), nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int32:
		return strconv.FormatInt(int64(val), 10), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			enc, err := encodeValue(item)
			if err != nil {
				return "", err
			}
			parts[i] = enc
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	default:
		return "", fmt.Errorf("unsupported parameter type %T", v)
	}
}

// quoteString single-quotes a string, escaping backslashes and quotes so
// user input cannot break out of the literal.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
