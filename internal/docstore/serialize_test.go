package docstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSerializeRekeysIdentifier(t *testing.T) {
	id := primitive.NewObjectID()
	doc := bson.M{"_id": id, "name": "Rapat"}

	out := Serialize(doc)
	require.Equal(t, id.Hex(), out["id"])
	require.NotContains(t, out, "_id")
	require.Equal(t, "Rapat", out["name"])

	// input untouched
	require.Contains(t, doc, "_id")
}

func TestSerializeDates(t *testing.T) {
	doc := bson.M{
		"date":       time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		"updated_at": primitive.NewDateTimeFromTime(time.Date(2024, time.March, 6, 9, 30, 0, 0, time.UTC)),
	}

	out := Serialize(doc)
	require.Equal(t, "2024-03-05", out["date"])
	require.Equal(t, "2024-03-06T09:30:00Z", out["updated_at"])
}

func TestSerializeNestedAttachments(t *testing.T) {
	doc := bson.M{
		"attachments": primitive.A{
			bson.M{"filename": "bukti.png", "url": "/files/1_bukti.png"},
			"stray-string",
		},
	}

	out := Serialize(doc)
	list, ok := out["attachments"].([]any)
	require.True(t, ok)
	require.Len(t, list, 2)

	nested, ok := list[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "bukti.png", nested["filename"])
	require.Equal(t, "stray-string", list[1])
}

func TestSerializeIdempotent(t *testing.T) {
	doc := bson.M{
		"_id":      primitive.NewObjectID(),
		"date":     time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		"name":     "Rapat",
		"duration": 2.0,
		"attachments": primitive.A{
			bson.M{"filename": "bukti.png", "url": "/files/1_bukti.png"},
		},
	}

	once := Serialize(doc)
	twice := Serialize(bson.M(once))
	require.Equal(t, once, twice)
}

func TestSerializeNilAndAbsentFields(t *testing.T) {
	require.Nil(t, Serialize(nil))

	doc := bson.M{"notes": nil, "income": float64(0)}
	out := Serialize(doc)
	require.Contains(t, out, "notes")
	require.Nil(t, out["notes"])
	require.Equal(t, float64(0), out["income"])
}
