package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// OrderItem is one row of the per-order table on the later pages of a
// Lieferando invoice. The online flag mirrors the asterisk marker.
type OrderItem struct{ ent.Schema }

func (OrderItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "order_items"},
	}
}

func (OrderItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.Time("ordered_at"),
		field.String("order_code").NotEmpty(),
		field.Float("amount").SchemaType(money),
		field.Bool("online").Default(false),
	}
}

func (OrderItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY items -> ONE invoice (FK: order_items.invoice_id)
		edge.From("invoice", LieferandoInvoice.Type).
			Ref("order_items").
			Unique().
			Required(),
	}
}
