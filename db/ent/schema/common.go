package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"

	"github.com/cc-collective/invoice-ingest/db/ent/schema/utils"
)

// money is the column type for all monetary amounts.
var money = map[string]string{dialect.Postgres: "numeric(12,2)"}

// dateCol stores calendar dates without a time component.
var dateCol = map[string]string{dialect.Postgres: "date"}

// invoiceFields are the columns shared by every platform invoice table.
// invoice_number is the business key: the unique index is what makes
// concurrent inserts of the same invoice lose deterministically.
func invoiceFields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("invoice_number").NotEmpty().Unique(),
		field.Time("invoice_date").Optional().Nillable().
			SchemaType(dateCol),
		field.Time("period_start").Optional().Nillable().
			SchemaType(dateCol),
		field.Time("period_end").Optional().Nillable().
			SchemaType(dateCol),
		field.String("supplier_name").Optional(),
		field.Float("total_amount").Optional().Nillable().
			SchemaType(money),
		field.String("status").
			Default("Draft").
			Validate(utils.EnumValidator("Draft", "Reviewed", "Cancelled")),
		field.Int("extraction_confidence").Default(0),
		field.Bool("needs_review").Default(false),
		field.Text("raw_text").Optional(),
		field.String("source_filename").Optional(),
		field.String("email_subject").Optional(),
		field.String("email_sender").Optional(),
		field.Time("email_date").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
