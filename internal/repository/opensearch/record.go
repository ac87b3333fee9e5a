package opensearch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/openshift-assisted/assisted-mongodb-sync/internal/types"
	"github.com/tidwall/sjson"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const recordTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// NewDestinationRecord renders a source document as the JSON record stored in the index.
// The source _id is dropped and emitted again as a string id field.
func NewDestinationRecord(document types.Document) (string, []byte, error) {
	var (
		id      string
		foundID bool
		buf     bytes.Buffer
	)
	buf.WriteByte('{')
	first := true
	for _, elem := range document {
		if elem.Key == types.IDField {
			value, err := identifierString(elem.Value)
			if err != nil {
				return "", nil, err
			}
			id, foundID = value, true
			continue
		}
		if err := writeMember(&buf, &first, elem.Key, elem.Value); err != nil {
			return "", nil, err
		}
	}
	buf.WriteByte('}')
	if !foundID {
		return "", nil, fmt.Errorf("document has no %s", types.IDField)
	}
	record, err := sjson.SetBytes(buf.Bytes(), escapePathKey(types.DestinationIDField), id)
	if err != nil {
		return "", nil, err
	}
	return id, record, nil
}

func identifierString(value interface{}) (string, error) {
	switch v := value.(type) {
	case primitive.ObjectID:
		return v.Hex(), nil
	case string:
		return v, nil
	case int32, int64, float64:
		return fmt.Sprint(v), nil
	}
	var buf bytes.Buffer
	if err := writeValue(&buf, value); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeMember(buf *bytes.Buffer, first *bool, key string, value interface{}) error {
	if !*first {
		buf.WriteByte(',')
	}
	*first = false
	if err := writeJSON(buf, key); err != nil {
		return err
	}
	buf.WriteByte(':')
	if err := writeValue(buf, value); err != nil {
		return fmt.Errorf("field %s: %w", key, err)
	}
	return nil
}

func writeValue(buf *bytes.Buffer, value interface{}) error {
	switch v := value.(type) {
	case nil, primitive.Null, primitive.Undefined, primitive.MinKey, primitive.MaxKey:
		buf.WriteString("null")
	case bson.D:
		return writeDocument(buf, v)
	case bson.M:
		return writeMap(buf, v)
	case map[string]interface{}:
		return writeMap(buf, v)
	case bson.A:
		return writeArray(buf, v)
	case []interface{}:
		return writeArray(buf, v)
	case primitive.ObjectID:
		return writeJSON(buf, v.Hex())
	case primitive.DateTime:
		return writeJSON(buf, v.Time().UTC().Format(recordTimeLayout))
	case time.Time:
		return writeJSON(buf, v.UTC().Format(recordTimeLayout))
	case primitive.Timestamp:
		return writeJSON(buf, time.Unix(int64(v.T), 0).UTC().Format(recordTimeLayout))
	case primitive.Decimal128:
		return writeJSON(buf, v.String())
	case primitive.Binary:
		return writeJSON(buf, v.Data)
	case primitive.Regex:
		return writeJSON(buf, v.String())
	case primitive.JavaScript:
		return writeJSON(buf, string(v))
	case primitive.Symbol:
		return writeJSON(buf, string(v))
	case primitive.CodeWithScope:
		return writeJSON(buf, string(v.Code))
	case primitive.DBPointer:
		return writeJSON(buf, v.String())
	default:
		return writeJSON(buf, v)
	}
	return nil
}

func writeDocument(buf *bytes.Buffer, document bson.D) error {
	buf.WriteByte('{')
	first := true
	for _, elem := range document {
		if err := writeMember(buf, &first, elem.Key, elem.Value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeMap[M ~map[string]interface{}](buf *bytes.Buffer, m M) error {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	buf.WriteByte('{')
	first := true
	for _, key := range keys {
		if err := writeMember(buf, &first, key, m[key]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeArray[A ~[]interface{}](buf *bytes.Buffer, items A) error {
	buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeValue(buf, item); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func writeJSON(buf *bytes.Buffer, value interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(encoded)
	return nil
}
