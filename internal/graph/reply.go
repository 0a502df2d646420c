package graph

import (
	"fmt"
)

// parseReply converts a raw GRAPH.QUERY reply into a Result.
//
// The verbose reply is a RESP array of either one element (statistics only,
// for write queries with no RETURN) or three elements: column headers, row
// values, statistics. go-redis hands the whole thing over as nested
// []interface{} values.
func parseReply(raw any) (*Result, error) {
	top, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("graph: unexpected reply type %T", raw)
	}

	// Stats-only reply: the query returned nothing.
	if len(top) < 3 {
		return Empty(), nil
	}

	headers, err := parseHeaders(top[0])
	if err != nil {
		return nil, err
	}

	rawRows, ok := top[1].([]any)
	if !ok {
		return nil, fmt.Errorf("graph: unexpected rows type %T", top[1])
	}

	rows := make([]map[string]any, 0, len(rawRows))
	for _, rawRow := range rawRows {
		cells, ok := rawRow.([]any)
		if !ok {
			return nil, fmt.Errorf("graph: unexpected row type %T", rawRow)
		}
		row := make(map[string]any, len(cells))
		for i, cell := range cells {
			name := fmt.Sprintf("col%d", i)
			if i < len(headers) {
				name = headers[i]
			}
			row[name] = convertValue(cell)
		}
		rows = append(rows, row)
	}

	return &Result{Headers: headers, Rows: rows}, nil
}

// parseHeaders accepts both plain string headers and [type, name] pairs,
// taking the last string element as the column name.
func parseHeaders(raw any) ([]string, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("graph: unexpected header type %T", raw)
	}

	headers := make([]string, 0, len(items))
	for _, item := range items {
		switch h := item.(type) {
		case string:
			headers = append(headers, h)
		case []any:
			name := ""
			for _, part := range h {
				if s, ok := part.(string); ok {
					name = s
				}
			}
			headers = append(headers, name)
		default:
			headers = append(headers, fmt.Sprintf("%v", item))
		}
	}
	return headers, nil
}

// convertValue turns a RESP value into something JSON-friendly. Nodes and
// relationships arrive as arrays of [key, value] pairs and become maps;
// everything else passes through (or recurses for plain lists).
func convertValue(v any) any {
	items, ok := v.([]any)
	if !ok {
		return v
	}

	if m, ok := pairsToMap(items); ok {
		return m
	}

	out := make([]any, len(items))
	for i, item := range items {
		out[i] = convertValue(item)
	}
	return out
}

// pairsToMap detects the [[key, value], ...] shape FalkorDB uses for node
// and relationship attributes. All elements must be two-element arrays
// with a string key, otherwise the value is left as a list.
func pairsToMap(items []any) (map[string]any, bool) {
	if len(items) == 0 {
		return nil, false
	}
	m := make(map[string]any, len(items))
	for _, item := range items {
		pair, ok := item.([]any)
		if !ok || len(pair) != 2 {
			return nil, false
		}
		key, ok := pair[0].(string)
		if !ok {
			return nil, false
		}
		m[key] = convertValue(pair[1])
	}
	return m, true
}
