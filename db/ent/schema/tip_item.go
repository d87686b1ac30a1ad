package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// TipItem is one row of the tip table that follows the order table on a
// Lieferando invoice.
type TipItem struct{ ent.Schema }

func (TipItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tip_items"},
	}
}

func (TipItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.Time("tipped_at"),
		field.String("order_code").NotEmpty(),
		field.Float("amount").SchemaType(money),
	}
}

func (TipItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY tips -> ONE invoice (FK: tip_items.invoice_id)
		edge.From("invoice", LieferandoInvoice.Type).
			Ref("tip_items").
			Unique().
			Required(),
	}
}
