package docstore

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Serialize converts a stored document into a wire-safe map. The native
// identifier is re-keyed to a plain "id" string, temporal values become
// ISO-8601 text (date-only for midnight-UTC values), and documents nested
// inside arrays or maps are serialized recursively. Everything else passes
// through untouched, so serializing an already-serialized document is a
// no-op: string dates stay strings and there is no "_id" left to re-key.
// The input is never mutated.
func Serialize(doc bson.M) map[string]any {
	if doc == nil {
		return nil
	}

	out := make(map[string]any, len(doc))
	for key, value := range doc {
		if key == "_id" {
			if id, ok := value.(primitive.ObjectID); ok {
				out["id"] = EncodeID(id)
				continue
			}
			if id, ok := value.(string); ok {
				out["id"] = id
				continue
			}
		}
		out[key] = serializeValue(value)
	}
	return out
}

func serializeValue(value any) any {
	switch v := value.(type) {
	case time.Time:
		return formatTime(v)
	case primitive.DateTime:
		return formatTime(v.Time())
	case bson.M:
		return Serialize(v)
	case map[string]any:
		return Serialize(bson.M(v))
	case bson.D:
		return Serialize(v.Map())
	case primitive.A:
		return serializeSlice(v)
	case []any:
		return serializeSlice(v)
	default:
		return value
	}
}

func serializeSlice(items []any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, serializeValue(item))
	}
	return out
}

func formatTime(t time.Time) string {
	t = t.UTC()
	if h, m, s := t.Clock(); h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}
