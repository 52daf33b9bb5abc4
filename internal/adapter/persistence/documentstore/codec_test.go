package documentstore

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestValidatePath(t *testing.T) {
	for _, p := range []string{"bookings/b1", "customers/u1/bookings/b1", "bookings/b1/payments/p1"} {
		assert.NoError(t, validatePath(p), p)
	}
	for _, p := range []string{"", "bookings", "/bookings/b1", "bookings/b1/", "customers/u1/bookings"} {
		assert.ErrorIs(t, validatePath(p), ErrInvalidPath, p)
	}
}

func TestCollectionOf(t *testing.T) {
	assert.Equal(t, "customers/u1/bookings", collectionOf("customers/u1/bookings/b1"))
	assert.Equal(t, "bookings", collectionOf("bookings/b1"))
	assert.True(t, isDirectChild("bookings", "bookings/b1"))
	assert.False(t, isDirectChild("bookings", "bookings/b1/payments/p1"))
	assert.False(t, isDirectChild("bookings", "bookingsx/b1"))
}

func TestBuildSetExpression(t *testing.T) {
	expr, names, values, err := buildSetExpression(map[string]any{
		"hours":      float64(2),
		"assignedTo": nil,
	})
	require.NoError(t, err)

	assert.Equal(t, "SET #f0 = :v0, #f1 = :v1", expr)
	assert.Equal(t, map[string]string{"#f0": "assignedTo", "#f1": "hours"}, names)
	assert.IsType(t, &types.AttributeValueMemberNULL{}, values[":v0"])
	assert.Equal(t, &types.AttributeValueMemberN{Value: "2"}, values[":v1"])
}

func TestMergeNames(t *testing.T) {
	a := map[string]string{"#a": "a"}
	assert.Equal(t, a, mergeNames(a, nil))
	assert.Equal(t, map[string]string{"#a": "a", "#b": "b"}, mergeNames(a, map[string]string{"#b": "b"}))
}

func TestFromBSON(t *testing.T) {
	doc := bson.D{
		{Key: "_id", Value: "bookings/b1"},
		{Key: "_collection", Value: "bookings"},
		{Key: "hours", Value: int32(2)},
		{Key: "totalAmount", Value: 150.5},
		{Key: "assignedCrews", Value: bson.A{"c1", "c2"}},
		{Key: "fields", Value: bson.D{{Key: "professionalsAssigned", Value: int64(2)}}},
		{Key: "assignedTo", Value: nil},
	}
	out, err := fromBSON(doc)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"hours":         float64(2),
		"totalAmount":   150.5,
		"assignedCrews": []any{"c1", "c2"},
		"fields":        map[string]any{"professionalsAssigned": float64(2)},
		"assignedTo":    nil,
	}, out)
}
