package schema_test

import (
	"context"
	"testing"

	"github.com/Sarhan619/grocery-app/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSchemaIdentifier struct {
	mock.Mock
}

func (c *MockSchemaIdentifier) DetermineID(
	ctx context.Context, subject string, avroSchemaText string,
) (id int, err error) {
	args := c.Called(ctx, subject, avroSchemaText)
	return args.Int(0), args.Error(1)
}

func TestSerdeCartEventV1(t *testing.T) {

	t.Run("NoOpts", func(t *testing.T) {
		_, err := schema.NewSerdeCartEventV1(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("OneOpt", func(t *testing.T) {
		_, err := schema.NewSerdeCartEventV1(
			t.Context(),
			schema.SchemaIdentifierOpt(new(MockSchemaIdentifier)),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTooFewOpts)
	})

	t.Run("IdentifierAndSubjectOpts", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaID := 1
		subject := "testTopic-value"

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.CartEventSchemaTextV1,
		).Return(schemaID, nil)

		_, err := schema.NewSerdeCartEventV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)
	})

	t.Run("EncodeDecode", func(t *testing.T) {
		schemaIdentifier := new(MockSchemaIdentifier)
		schemaID := 1
		subject := "testTopic-value"

		schemaIdentifier.On(
			"DetermineID", t.Context(), subject, schema.CartEventSchemaTextV1,
		).Return(schemaID, nil)

		serde, err := schema.NewSerdeCartEventV1(
			t.Context(),
			schema.SubjectOpt(subject),
			schema.SchemaIdentifierOpt(schemaIdentifier),
		)
		require.NoError(t, err)

		eventValue1 := schema.CartEventV1{
			SessionID:   "testSessionID",
			Action:      "added",
			ProductID:   42,
			ProductName: "testProductName",
			Category:    "testCategory",
			UnitPrice:   123.45,
			Quantity:    3,
		}

		encodedData, err := serde.Encode(eventValue1)
		require.NoError(t, err)

		var eventValue2 schema.CartEventV1
		err = serde.Decode(encodedData, &eventValue2)
		require.NoError(t, err)

		assert.Equal(t, eventValue1.SessionID, eventValue2.SessionID)
		assert.Equal(t, eventValue1.Action, eventValue2.Action)
		assert.Equal(t, eventValue1.ProductID, eventValue2.ProductID)
		assert.Equal(t, eventValue1.ProductName, eventValue2.ProductName)
		assert.Equal(t, eventValue1.Category, eventValue2.Category)
		assert.InDelta(t, eventValue1.UnitPrice, eventValue2.UnitPrice, 1e-9)
		assert.Equal(t, eventValue1.Quantity, eventValue2.Quantity)
	})

}
