package docstore

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID indicates a string that is not a well-formed document identifier.
var ErrInvalidID = errors.New("invalid id format")

// EncodeID returns the wire form of a native document identifier.
func EncodeID(id primitive.ObjectID) string {
	return id.Hex()
}

// DecodeID parses a wire identifier back into its native form. Malformed
// input (wrong length, non-hex characters) yields ErrInvalidID so callers
// can reject the request as a client error.
func DecodeID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}
