package docstore

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDecodeIDRoundTrip(t *testing.T) {
	id := primitive.NewObjectID()

	decoded, err := DecodeID(EncodeID(id))
	require.NoError(t, err)
	require.Equal(t, id, decoded)
}

func TestDecodeIDMalformed(t *testing.T) {
	cases := []string{
		"",
		"abc",
		"zzzzzzzzzzzzzzzzzzzzzzzz",
		"0123456789abcdef0123456789abcdef",
	}

	for _, raw := range cases {
		_, err := DecodeID(raw)
		require.ErrorIs(t, err, ErrInvalidID, "input %q", raw)
	}
}

func TestDecodeIDTrimsWhitespace(t *testing.T) {
	id := primitive.NewObjectID()

	decoded, err := DecodeID(" " + id.Hex() + " ")
	require.NoError(t, err)
	require.Equal(t, id, decoded)
}
