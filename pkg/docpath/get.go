package docpath

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

// Get returns the value stored at a dotted path. Wildcard paths are not
// supported and never match.
func Get(doc bson.D, path string) (interface{}, bool) {
	if isComplexPath(path) {
		return nil, false
	}
	var current interface{} = doc
	for _, seg := range parse(path) {
		next, ok := child(current, seg.key)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func child(value interface{}, key string) (interface{}, bool) {
	switch v := value.(type) {
	case bson.D:
		for _, elem := range v {
			if elem.Key == key {
				return elem.Value, true
			}
		}
	case bson.M:
		c, ok := v[key]
		return c, ok
	case map[string]interface{}:
		c, ok := v[key]
		return c, ok
	case bson.A:
		return index(v, key)
	case []interface{}:
		return index(v, key)
	}
	return nil, false
}

func index(arr []interface{}, key string) (interface{}, bool) {
	idx, err := strconv.Atoi(key)
	if err != nil || idx < 0 || idx >= len(arr) {
		return nil, false
	}
	return arr[idx], true
}
