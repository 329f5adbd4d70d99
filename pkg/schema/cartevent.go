package schema

const CartEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "cart_event",
	"fields": [
		{"name": "session_id", "type": "string"},
		{"name": "action", "type": "string"},
		{"name": "product_id", "type": "long"},
		{"name": "product_name", "type": "string"},
		{"name": "category", "type": "string"},
		{"name": "unit_price", "type": "double"},
		{"name": "quantity", "type": "int"}
	]
}`

type CartEventV1 struct {
	SessionID   string  `avro:"session_id"`
	Action      string  `avro:"action"`
	ProductID   int64   `avro:"product_id"`
	ProductName string  `avro:"product_name"`
	Category    string  `avro:"category"`
	UnitPrice   float64 `avro:"unit_price"`
	Quantity    int     `avro:"quantity"`
}
