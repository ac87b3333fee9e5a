package docpath

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

// Delete removes every path in `paths` from doc. Paths that do not exist are
// ignored. The input document is left untouched: containers along a removed
// path are copied, everything else is shared with the input.
func Delete(doc bson.D, paths []string) bson.D {
	for _, path := range paths {
		doc = Unset(doc, path)
	}
	return doc
}

// Unset removes a single dotted path from doc
func Unset(doc bson.D, path string) bson.D {
	segments := parse(path)
	if len(segments) == 0 {
		return doc
	}
	out, _ := unsetInDocument(doc, segments)
	return out
}

func unsetValue(value interface{}, segments []segment) (interface{}, bool) {
	switch v := value.(type) {
	case bson.D:
		return unsetInDocument(v, segments)
	case bson.M:
		return unsetInMap(v, segments)
	case map[string]interface{}:
		return unsetInMap(v, segments)
	case bson.A:
		return unsetInArray(v, segments)
	case []interface{}:
		return unsetInArray(v, segments)
	}
	return value, false
}

func unsetInDocument(doc bson.D, segments []segment) (bson.D, bool) {
	seg := segments[0]
	for i, elem := range doc {
		if elem.Key != seg.key {
			continue
		}
		if len(segments) == 1 {
			out := make(bson.D, 0, len(doc)-1)
			out = append(out, doc[:i]...)
			return append(out, doc[i+1:]...), true
		}
		child, changed := unsetChild(elem.Value, seg, segments[1:])
		if !changed {
			return doc, false
		}
		out := make(bson.D, len(doc))
		copy(out, doc)
		out[i].Value = child
		return out, true
	}
	return doc, false
}

func unsetInMap(m map[string]interface{}, segments []segment) (interface{}, bool) {
	seg := segments[0]
	value, ok := m[seg.key]
	if !ok {
		return m, false
	}
	var child interface{}
	if len(segments) > 1 {
		var changed bool
		child, changed = unsetChild(value, seg, segments[1:])
		if !changed {
			return m, false
		}
	}
	out := make(bson.M, len(m))
	for k, v := range m {
		out[k] = v
	}
	if len(segments) == 1 {
		delete(out, seg.key)
	} else {
		out[seg.key] = child
	}
	return out, true
}

// Numeric segments address array positions. Unsetting a position leaves a
// null in place so the positions of other elements do not shift.
func unsetInArray(arr []interface{}, segments []segment) (interface{}, bool) {
	seg := segments[0]
	idx, err := strconv.Atoi(seg.key)
	if err != nil || idx < 0 || idx >= len(arr) {
		return arr, false
	}
	out := make(bson.A, len(arr))
	copy(out, arr)
	if len(segments) == 1 {
		out[idx] = nil
		return out, true
	}
	child, changed := unsetChild(arr[idx], seg, segments[1:])
	if !changed {
		return arr, false
	}
	out[idx] = child
	return out, true
}

func unsetChild(value interface{}, seg segment, rest []segment) (interface{}, bool) {
	if seg.wildcard {
		return unsetEach(value, rest)
	}
	return unsetValue(value, rest)
}

func unsetEach(value interface{}, segments []segment) (interface{}, bool) {
	var items []interface{}
	switch v := value.(type) {
	case bson.A:
		items = v
	case []interface{}:
		items = v
	default:
		return value, false
	}
	out := make(bson.A, len(items))
	changed := false
	for i, item := range items {
		out[i] = item
		if child, ok := unsetValue(item, segments); ok {
			out[i] = child
			changed = true
		}
	}
	if !changed {
		return value, false
	}
	return out, true
}
