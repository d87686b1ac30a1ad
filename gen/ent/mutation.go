// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cc-collective/invoice-ingest/gen/ent/lieferandoinvoice"
	"github.com/cc-collective/invoice-ingest/gen/ent/orderitem"
	"github.com/cc-collective/invoice-ingest/gen/ent/predicate"
	"github.com/cc-collective/invoice-ingest/gen/ent/tipitem"
	"github.com/cc-collective/invoice-ingest/gen/ent/ubereatsinvoice"
	"github.com/cc-collective/invoice-ingest/gen/ent/woltinvoice"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLieferandoInvoice = "LieferandoInvoice"
	TypeOrderItem         = "OrderItem"
	TypeTipItem           = "TipItem"
	TypeUberEatsInvoice   = "UberEatsInvoice"
	TypeWoltInvoice       = "WoltInvoice"
)

// LieferandoInvoiceMutation represents an operation that mutates the LieferandoInvoice nodes in the graph.
type LieferandoInvoiceMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	invoice_number             *string
	invoice_date               *time.Time
	period_start               *time.Time
	period_end                 *time.Time
	supplier_name              *string
	total_amount               *float64
	addtotal_amount            *float64
	status                     *string
	extraction_confidence      *int
	addextraction_confidence   *int
	needs_review               *bool
	raw_text                   *string
	source_filename            *string
	email_subject              *string
	email_sender               *string
	email_date                 *time.Time
	created_at                 *time.Time
	updated_at                 *time.Time
	restaurant_name            *string
	customer_number            *string
	customer_company           *string
	customer_tax_number        *string
	customer_bank_iban         *string
	supplier_iban              *string
	supplier_vat_id            *string
	supplier_managing_director *string
	supplier_court_registry    *string
	supplier_hrb               *string
	total_orders               *int
	addtotal_orders            *int
	total_revenue              *float64
	addtotal_revenue           *float64
	online_paid_orders         *int
	addonline_paid_orders      *int
	online_paid_amount         *float64
	addonline_paid_amount      *float64
	cash_paid_orders           *int
	addcash_paid_orders        *int
	cash_paid_amount           *float64
	addcash_paid_amount        *float64
	cash_service_fee_amount    *float64
	addcash_service_fee_amount *float64
	chargeback_orders          *int
	addchargeback_orders       *int
	chargeback_amount          *float64
	addchargeback_amount       *float64
	stamp_card_orders          *int
	addstamp_card_orders       *int
	stamp_card_amount          *float64
	addstamp_card_amount       *float64
	service_fee_rate           *float64
	addservice_fee_rate        *float64
	service_fee_amount         *float64
	addservice_fee_amount      *float64
	admin_fee_rate             *float64
	addadmin_fee_rate          *float64
	admin_fee_amount           *float64
	addadmin_fee_amount        *float64
	subtotal                   *float64
	addsubtotal                *float64
	tax_rate                   *float64
	addtax_rate                *float64
	tax_amount                 *float64
	addtax_amount              *float64
	paid_online_payments       *float64
	addpaid_online_payments    *float64
	outstanding_amount         *float64
	addoutstanding_amount      *float64
	outstanding_balance        *float64
	addoutstanding_balance     *float64
	payout_amount              *float64
	addpayout_amount           *float64
	amount_due                 *float64
	addamount_due              *float64
	confirmation_payment_date  *time.Time
	confirmation_code_message  *string
	clearedFields              map[string]struct{}
	order_items                map[uuid.UUID]struct{}
	removedorder_items         map[uuid.UUID]struct{}
	clearedorder_items         bool
	tip_items                  map[uuid.UUID]struct{}
	removedtip_items           map[uuid.UUID]struct{}
	clearedtip_items           bool
	done                       bool
	oldValue                   func(context.Context) (*LieferandoInvoice, error)
	predicates                 []predicate.LieferandoInvoice
}

var _ ent.Mutation = (*LieferandoInvoiceMutation)(nil)

// lieferandoinvoiceOption allows management of the mutation configuration using functional options.
type lieferandoinvoiceOption func(*LieferandoInvoiceMutation)

// newLieferandoInvoiceMutation creates new mutation for the LieferandoInvoice entity.
func newLieferandoInvoiceMutation(c config, op Op, opts ...lieferandoinvoiceOption) *LieferandoInvoiceMutation {
	m := &LieferandoInvoiceMutation{
		config:        c,
		op:            op,
		typ:           TypeLieferandoInvoice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLieferandoInvoiceID sets the ID field of the mutation.
func withLieferandoInvoiceID(id uuid.UUID) lieferandoinvoiceOption {
	return func(m *LieferandoInvoiceMutation) {
		var (
			err   error
			once  sync.Once
			value *LieferandoInvoice
		)
		m.oldValue = func(ctx context.Context) (*LieferandoInvoice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LieferandoInvoice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLieferandoInvoice sets the old LieferandoInvoice of the mutation.
func withLieferandoInvoice(node *LieferandoInvoice) lieferandoinvoiceOption {
	return func(m *LieferandoInvoiceMutation) {
		m.oldValue = func(context.Context) (*LieferandoInvoice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LieferandoInvoiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LieferandoInvoiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LieferandoInvoice entities.
func (m *LieferandoInvoiceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LieferandoInvoiceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LieferandoInvoiceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LieferandoInvoice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInvoiceNumber sets the "invoice_number" field.
func (m *LieferandoInvoiceMutation) SetInvoiceNumber(s string) {
	m.invoice_number = &s
}

// InvoiceNumber returns the value of the "invoice_number" field in the mutation.
func (m *LieferandoInvoiceMutation) InvoiceNumber() (r string, exists bool) {
	v := m.invoice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNumber returns the old "invoice_number" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldInvoiceNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNumber: %w", err)
	}
	return oldValue.InvoiceNumber, nil
}

// ResetInvoiceNumber resets all changes to the "invoice_number" field.
func (m *LieferandoInvoiceMutation) ResetInvoiceNumber() {
	m.invoice_number = nil
}

// SetInvoiceDate sets the "invoice_date" field.
func (m *LieferandoInvoiceMutation) SetInvoiceDate(t time.Time) {
	m.invoice_date = &t
}

// InvoiceDate returns the value of the "invoice_date" field in the mutation.
func (m *LieferandoInvoiceMutation) InvoiceDate() (r time.Time, exists bool) {
	v := m.invoice_date
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceDate returns the old "invoice_date" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldInvoiceDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceDate: %w", err)
	}
	return oldValue.InvoiceDate, nil
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (m *LieferandoInvoiceMutation) ClearInvoiceDate() {
	m.invoice_date = nil
	m.clearedFields[lieferandoinvoice.FieldInvoiceDate] = struct{}{}
}

// InvoiceDateCleared returns if the "invoice_date" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) InvoiceDateCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldInvoiceDate]
	return ok
}

// ResetInvoiceDate resets all changes to the "invoice_date" field.
func (m *LieferandoInvoiceMutation) ResetInvoiceDate() {
	m.invoice_date = nil
	delete(m.clearedFields, lieferandoinvoice.FieldInvoiceDate)
}

// SetPeriodStart sets the "period_start" field.
func (m *LieferandoInvoiceMutation) SetPeriodStart(t time.Time) {
	m.period_start = &t
}

// PeriodStart returns the value of the "period_start" field in the mutation.
func (m *LieferandoInvoiceMutation) PeriodStart() (r time.Time, exists bool) {
	v := m.period_start
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodStart returns the old "period_start" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldPeriodStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodStart: %w", err)
	}
	return oldValue.PeriodStart, nil
}

// ClearPeriodStart clears the value of the "period_start" field.
func (m *LieferandoInvoiceMutation) ClearPeriodStart() {
	m.period_start = nil
	m.clearedFields[lieferandoinvoice.FieldPeriodStart] = struct{}{}
}

// PeriodStartCleared returns if the "period_start" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) PeriodStartCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldPeriodStart]
	return ok
}

// ResetPeriodStart resets all changes to the "period_start" field.
func (m *LieferandoInvoiceMutation) ResetPeriodStart() {
	m.period_start = nil
	delete(m.clearedFields, lieferandoinvoice.FieldPeriodStart)
}

// SetPeriodEnd sets the "period_end" field.
func (m *LieferandoInvoiceMutation) SetPeriodEnd(t time.Time) {
	m.period_end = &t
}

// PeriodEnd returns the value of the "period_end" field in the mutation.
func (m *LieferandoInvoiceMutation) PeriodEnd() (r time.Time, exists bool) {
	v := m.period_end
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodEnd returns the old "period_end" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldPeriodEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodEnd: %w", err)
	}
	return oldValue.PeriodEnd, nil
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (m *LieferandoInvoiceMutation) ClearPeriodEnd() {
	m.period_end = nil
	m.clearedFields[lieferandoinvoice.FieldPeriodEnd] = struct{}{}
}

// PeriodEndCleared returns if the "period_end" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) PeriodEndCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldPeriodEnd]
	return ok
}

// ResetPeriodEnd resets all changes to the "period_end" field.
func (m *LieferandoInvoiceMutation) ResetPeriodEnd() {
	m.period_end = nil
	delete(m.clearedFields, lieferandoinvoice.FieldPeriodEnd)
}

// SetSupplierName sets the "supplier_name" field.
func (m *LieferandoInvoiceMutation) SetSupplierName(s string) {
	m.supplier_name = &s
}

// SupplierName returns the value of the "supplier_name" field in the mutation.
func (m *LieferandoInvoiceMutation) SupplierName() (r string, exists bool) {
	v := m.supplier_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierName returns the old "supplier_name" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldSupplierName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierName: %w", err)
	}
	return oldValue.SupplierName, nil
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (m *LieferandoInvoiceMutation) ClearSupplierName() {
	m.supplier_name = nil
	m.clearedFields[lieferandoinvoice.FieldSupplierName] = struct{}{}
}

// SupplierNameCleared returns if the "supplier_name" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) SupplierNameCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldSupplierName]
	return ok
}

// ResetSupplierName resets all changes to the "supplier_name" field.
func (m *LieferandoInvoiceMutation) ResetSupplierName() {
	m.supplier_name = nil
	delete(m.clearedFields, lieferandoinvoice.FieldSupplierName)
}

// SetTotalAmount sets the "total_amount" field.
func (m *LieferandoInvoiceMutation) SetTotalAmount(f float64) {
	m.total_amount = &f
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *LieferandoInvoiceMutation) TotalAmount() (r float64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldTotalAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds f to the "total_amount" field.
func (m *LieferandoInvoiceMutation) AddTotalAmount(f float64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += f
	} else {
		m.addtotal_amount = &f
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedTotalAmount() (r float64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (m *LieferandoInvoiceMutation) ClearTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	m.clearedFields[lieferandoinvoice.FieldTotalAmount] = struct{}{}
}

// TotalAmountCleared returns if the "total_amount" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) TotalAmountCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldTotalAmount]
	return ok
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *LieferandoInvoiceMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	delete(m.clearedFields, lieferandoinvoice.FieldTotalAmount)
}

// SetStatus sets the "status" field.
func (m *LieferandoInvoiceMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *LieferandoInvoiceMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LieferandoInvoiceMutation) ResetStatus() {
	m.status = nil
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *LieferandoInvoiceMutation) SetExtractionConfidence(i int) {
	m.extraction_confidence = &i
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *LieferandoInvoiceMutation) ExtractionConfidence() (r int, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldExtractionConfidence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds i to the "extraction_confidence" field.
func (m *LieferandoInvoiceMutation) AddExtractionConfidence(i int) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += i
	} else {
		m.addextraction_confidence = &i
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedExtractionConfidence() (r int, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *LieferandoInvoiceMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *LieferandoInvoiceMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *LieferandoInvoiceMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *LieferandoInvoiceMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetRawText sets the "raw_text" field.
func (m *LieferandoInvoiceMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *LieferandoInvoiceMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *LieferandoInvoiceMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[lieferandoinvoice.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *LieferandoInvoiceMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, lieferandoinvoice.FieldRawText)
}

// SetSourceFilename sets the "source_filename" field.
func (m *LieferandoInvoiceMutation) SetSourceFilename(s string) {
	m.source_filename = &s
}

// SourceFilename returns the value of the "source_filename" field in the mutation.
func (m *LieferandoInvoiceMutation) SourceFilename() (r string, exists bool) {
	v := m.source_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFilename returns the old "source_filename" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldSourceFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFilename: %w", err)
	}
	return oldValue.SourceFilename, nil
}

// ClearSourceFilename clears the value of the "source_filename" field.
func (m *LieferandoInvoiceMutation) ClearSourceFilename() {
	m.source_filename = nil
	m.clearedFields[lieferandoinvoice.FieldSourceFilename] = struct{}{}
}

// SourceFilenameCleared returns if the "source_filename" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) SourceFilenameCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldSourceFilename]
	return ok
}

// ResetSourceFilename resets all changes to the "source_filename" field.
func (m *LieferandoInvoiceMutation) ResetSourceFilename() {
	m.source_filename = nil
	delete(m.clearedFields, lieferandoinvoice.FieldSourceFilename)
}

// SetEmailSubject sets the "email_subject" field.
func (m *LieferandoInvoiceMutation) SetEmailSubject(s string) {
	m.email_subject = &s
}

// EmailSubject returns the value of the "email_subject" field in the mutation.
func (m *LieferandoInvoiceMutation) EmailSubject() (r string, exists bool) {
	v := m.email_subject
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailSubject returns the old "email_subject" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldEmailSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailSubject: %w", err)
	}
	return oldValue.EmailSubject, nil
}

// ClearEmailSubject clears the value of the "email_subject" field.
func (m *LieferandoInvoiceMutation) ClearEmailSubject() {
	m.email_subject = nil
	m.clearedFields[lieferandoinvoice.FieldEmailSubject] = struct{}{}
}

// EmailSubjectCleared returns if the "email_subject" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) EmailSubjectCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldEmailSubject]
	return ok
}

// ResetEmailSubject resets all changes to the "email_subject" field.
func (m *LieferandoInvoiceMutation) ResetEmailSubject() {
	m.email_subject = nil
	delete(m.clearedFields, lieferandoinvoice.FieldEmailSubject)
}

// SetEmailSender sets the "email_sender" field.
func (m *LieferandoInvoiceMutation) SetEmailSender(s string) {
	m.email_sender = &s
}

// EmailSender returns the value of the "email_sender" field in the mutation.
func (m *LieferandoInvoiceMutation) EmailSender() (r string, exists bool) {
	v := m.email_sender
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailSender returns the old "email_sender" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldEmailSender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailSender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailSender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailSender: %w", err)
	}
	return oldValue.EmailSender, nil
}

// ClearEmailSender clears the value of the "email_sender" field.
func (m *LieferandoInvoiceMutation) ClearEmailSender() {
	m.email_sender = nil
	m.clearedFields[lieferandoinvoice.FieldEmailSender] = struct{}{}
}

// EmailSenderCleared returns if the "email_sender" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) EmailSenderCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldEmailSender]
	return ok
}

// ResetEmailSender resets all changes to the "email_sender" field.
func (m *LieferandoInvoiceMutation) ResetEmailSender() {
	m.email_sender = nil
	delete(m.clearedFields, lieferandoinvoice.FieldEmailSender)
}

// SetEmailDate sets the "email_date" field.
func (m *LieferandoInvoiceMutation) SetEmailDate(t time.Time) {
	m.email_date = &t
}

// EmailDate returns the value of the "email_date" field in the mutation.
func (m *LieferandoInvoiceMutation) EmailDate() (r time.Time, exists bool) {
	v := m.email_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailDate returns the old "email_date" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldEmailDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailDate: %w", err)
	}
	return oldValue.EmailDate, nil
}

// ClearEmailDate clears the value of the "email_date" field.
func (m *LieferandoInvoiceMutation) ClearEmailDate() {
	m.email_date = nil
	m.clearedFields[lieferandoinvoice.FieldEmailDate] = struct{}{}
}

// EmailDateCleared returns if the "email_date" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) EmailDateCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldEmailDate]
	return ok
}

// ResetEmailDate resets all changes to the "email_date" field.
func (m *LieferandoInvoiceMutation) ResetEmailDate() {
	m.email_date = nil
	delete(m.clearedFields, lieferandoinvoice.FieldEmailDate)
}

// SetCreatedAt sets the "created_at" field.
func (m *LieferandoInvoiceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LieferandoInvoiceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LieferandoInvoiceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LieferandoInvoiceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LieferandoInvoiceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LieferandoInvoiceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetRestaurantName sets the "restaurant_name" field.
func (m *LieferandoInvoiceMutation) SetRestaurantName(s string) {
	m.restaurant_name = &s
}

// RestaurantName returns the value of the "restaurant_name" field in the mutation.
func (m *LieferandoInvoiceMutation) RestaurantName() (r string, exists bool) {
	v := m.restaurant_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRestaurantName returns the old "restaurant_name" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldRestaurantName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRestaurantName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRestaurantName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRestaurantName: %w", err)
	}
	return oldValue.RestaurantName, nil
}

// ClearRestaurantName clears the value of the "restaurant_name" field.
func (m *LieferandoInvoiceMutation) ClearRestaurantName() {
	m.restaurant_name = nil
	m.clearedFields[lieferandoinvoice.FieldRestaurantName] = struct{}{}
}

// RestaurantNameCleared returns if the "restaurant_name" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) RestaurantNameCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldRestaurantName]
	return ok
}

// ResetRestaurantName resets all changes to the "restaurant_name" field.
func (m *LieferandoInvoiceMutation) ResetRestaurantName() {
	m.restaurant_name = nil
	delete(m.clearedFields, lieferandoinvoice.FieldRestaurantName)
}

// SetCustomerNumber sets the "customer_number" field.
func (m *LieferandoInvoiceMutation) SetCustomerNumber(s string) {
	m.customer_number = &s
}

// CustomerNumber returns the value of the "customer_number" field in the mutation.
func (m *LieferandoInvoiceMutation) CustomerNumber() (r string, exists bool) {
	v := m.customer_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerNumber returns the old "customer_number" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldCustomerNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerNumber: %w", err)
	}
	return oldValue.CustomerNumber, nil
}

// ClearCustomerNumber clears the value of the "customer_number" field.
func (m *LieferandoInvoiceMutation) ClearCustomerNumber() {
	m.customer_number = nil
	m.clearedFields[lieferandoinvoice.FieldCustomerNumber] = struct{}{}
}

// CustomerNumberCleared returns if the "customer_number" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) CustomerNumberCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldCustomerNumber]
	return ok
}

// ResetCustomerNumber resets all changes to the "customer_number" field.
func (m *LieferandoInvoiceMutation) ResetCustomerNumber() {
	m.customer_number = nil
	delete(m.clearedFields, lieferandoinvoice.FieldCustomerNumber)
}

// SetCustomerCompany sets the "customer_company" field.
func (m *LieferandoInvoiceMutation) SetCustomerCompany(s string) {
	m.customer_company = &s
}

// CustomerCompany returns the value of the "customer_company" field in the mutation.
func (m *LieferandoInvoiceMutation) CustomerCompany() (r string, exists bool) {
	v := m.customer_company
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerCompany returns the old "customer_company" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldCustomerCompany(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerCompany: %w", err)
	}
	return oldValue.CustomerCompany, nil
}

// ClearCustomerCompany clears the value of the "customer_company" field.
func (m *LieferandoInvoiceMutation) ClearCustomerCompany() {
	m.customer_company = nil
	m.clearedFields[lieferandoinvoice.FieldCustomerCompany] = struct{}{}
}

// CustomerCompanyCleared returns if the "customer_company" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) CustomerCompanyCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldCustomerCompany]
	return ok
}

// ResetCustomerCompany resets all changes to the "customer_company" field.
func (m *LieferandoInvoiceMutation) ResetCustomerCompany() {
	m.customer_company = nil
	delete(m.clearedFields, lieferandoinvoice.FieldCustomerCompany)
}

// SetCustomerTaxNumber sets the "customer_tax_number" field.
func (m *LieferandoInvoiceMutation) SetCustomerTaxNumber(s string) {
	m.customer_tax_number = &s
}

// CustomerTaxNumber returns the value of the "customer_tax_number" field in the mutation.
func (m *LieferandoInvoiceMutation) CustomerTaxNumber() (r string, exists bool) {
	v := m.customer_tax_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerTaxNumber returns the old "customer_tax_number" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldCustomerTaxNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerTaxNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerTaxNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerTaxNumber: %w", err)
	}
	return oldValue.CustomerTaxNumber, nil
}

// ClearCustomerTaxNumber clears the value of the "customer_tax_number" field.
func (m *LieferandoInvoiceMutation) ClearCustomerTaxNumber() {
	m.customer_tax_number = nil
	m.clearedFields[lieferandoinvoice.FieldCustomerTaxNumber] = struct{}{}
}

// CustomerTaxNumberCleared returns if the "customer_tax_number" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) CustomerTaxNumberCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldCustomerTaxNumber]
	return ok
}

// ResetCustomerTaxNumber resets all changes to the "customer_tax_number" field.
func (m *LieferandoInvoiceMutation) ResetCustomerTaxNumber() {
	m.customer_tax_number = nil
	delete(m.clearedFields, lieferandoinvoice.FieldCustomerTaxNumber)
}

// SetCustomerBankIban sets the "customer_bank_iban" field.
func (m *LieferandoInvoiceMutation) SetCustomerBankIban(s string) {
	m.customer_bank_iban = &s
}

// CustomerBankIban returns the value of the "customer_bank_iban" field in the mutation.
func (m *LieferandoInvoiceMutation) CustomerBankIban() (r string, exists bool) {
	v := m.customer_bank_iban
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerBankIban returns the old "customer_bank_iban" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldCustomerBankIban(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerBankIban is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerBankIban requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerBankIban: %w", err)
	}
	return oldValue.CustomerBankIban, nil
}

// ClearCustomerBankIban clears the value of the "customer_bank_iban" field.
func (m *LieferandoInvoiceMutation) ClearCustomerBankIban() {
	m.customer_bank_iban = nil
	m.clearedFields[lieferandoinvoice.FieldCustomerBankIban] = struct{}{}
}

// CustomerBankIbanCleared returns if the "customer_bank_iban" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) CustomerBankIbanCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldCustomerBankIban]
	return ok
}

// ResetCustomerBankIban resets all changes to the "customer_bank_iban" field.
func (m *LieferandoInvoiceMutation) ResetCustomerBankIban() {
	m.customer_bank_iban = nil
	delete(m.clearedFields, lieferandoinvoice.FieldCustomerBankIban)
}

// SetSupplierIban sets the "supplier_iban" field.
func (m *LieferandoInvoiceMutation) SetSupplierIban(s string) {
	m.supplier_iban = &s
}

// SupplierIban returns the value of the "supplier_iban" field in the mutation.
func (m *LieferandoInvoiceMutation) SupplierIban() (r string, exists bool) {
	v := m.supplier_iban
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierIban returns the old "supplier_iban" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldSupplierIban(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierIban is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierIban requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierIban: %w", err)
	}
	return oldValue.SupplierIban, nil
}

// ClearSupplierIban clears the value of the "supplier_iban" field.
func (m *LieferandoInvoiceMutation) ClearSupplierIban() {
	m.supplier_iban = nil
	m.clearedFields[lieferandoinvoice.FieldSupplierIban] = struct{}{}
}

// SupplierIbanCleared returns if the "supplier_iban" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) SupplierIbanCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldSupplierIban]
	return ok
}

// ResetSupplierIban resets all changes to the "supplier_iban" field.
func (m *LieferandoInvoiceMutation) ResetSupplierIban() {
	m.supplier_iban = nil
	delete(m.clearedFields, lieferandoinvoice.FieldSupplierIban)
}

// SetSupplierVatID sets the "supplier_vat_id" field.
func (m *LieferandoInvoiceMutation) SetSupplierVatID(s string) {
	m.supplier_vat_id = &s
}

// SupplierVatID returns the value of the "supplier_vat_id" field in the mutation.
func (m *LieferandoInvoiceMutation) SupplierVatID() (r string, exists bool) {
	v := m.supplier_vat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierVatID returns the old "supplier_vat_id" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldSupplierVatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierVatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierVatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierVatID: %w", err)
	}
	return oldValue.SupplierVatID, nil
}

// ClearSupplierVatID clears the value of the "supplier_vat_id" field.
func (m *LieferandoInvoiceMutation) ClearSupplierVatID() {
	m.supplier_vat_id = nil
	m.clearedFields[lieferandoinvoice.FieldSupplierVatID] = struct{}{}
}

// SupplierVatIDCleared returns if the "supplier_vat_id" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) SupplierVatIDCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldSupplierVatID]
	return ok
}

// ResetSupplierVatID resets all changes to the "supplier_vat_id" field.
func (m *LieferandoInvoiceMutation) ResetSupplierVatID() {
	m.supplier_vat_id = nil
	delete(m.clearedFields, lieferandoinvoice.FieldSupplierVatID)
}

// SetSupplierManagingDirector sets the "supplier_managing_director" field.
func (m *LieferandoInvoiceMutation) SetSupplierManagingDirector(s string) {
	m.supplier_managing_director = &s
}

// SupplierManagingDirector returns the value of the "supplier_managing_director" field in the mutation.
func (m *LieferandoInvoiceMutation) SupplierManagingDirector() (r string, exists bool) {
	v := m.supplier_managing_director
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierManagingDirector returns the old "supplier_managing_director" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldSupplierManagingDirector(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierManagingDirector is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierManagingDirector requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierManagingDirector: %w", err)
	}
	return oldValue.SupplierManagingDirector, nil
}

// ClearSupplierManagingDirector clears the value of the "supplier_managing_director" field.
func (m *LieferandoInvoiceMutation) ClearSupplierManagingDirector() {
	m.supplier_managing_director = nil
	m.clearedFields[lieferandoinvoice.FieldSupplierManagingDirector] = struct{}{}
}

// SupplierManagingDirectorCleared returns if the "supplier_managing_director" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) SupplierManagingDirectorCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldSupplierManagingDirector]
	return ok
}

// ResetSupplierManagingDirector resets all changes to the "supplier_managing_director" field.
func (m *LieferandoInvoiceMutation) ResetSupplierManagingDirector() {
	m.supplier_managing_director = nil
	delete(m.clearedFields, lieferandoinvoice.FieldSupplierManagingDirector)
}

// SetSupplierCourtRegistry sets the "supplier_court_registry" field.
func (m *LieferandoInvoiceMutation) SetSupplierCourtRegistry(s string) {
	m.supplier_court_registry = &s
}

// SupplierCourtRegistry returns the value of the "supplier_court_registry" field in the mutation.
func (m *LieferandoInvoiceMutation) SupplierCourtRegistry() (r string, exists bool) {
	v := m.supplier_court_registry
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierCourtRegistry returns the old "supplier_court_registry" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldSupplierCourtRegistry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierCourtRegistry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierCourtRegistry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierCourtRegistry: %w", err)
	}
	return oldValue.SupplierCourtRegistry, nil
}

// ClearSupplierCourtRegistry clears the value of the "supplier_court_registry" field.
func (m *LieferandoInvoiceMutation) ClearSupplierCourtRegistry() {
	m.supplier_court_registry = nil
	m.clearedFields[lieferandoinvoice.FieldSupplierCourtRegistry] = struct{}{}
}

// SupplierCourtRegistryCleared returns if the "supplier_court_registry" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) SupplierCourtRegistryCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldSupplierCourtRegistry]
	return ok
}

// ResetSupplierCourtRegistry resets all changes to the "supplier_court_registry" field.
func (m *LieferandoInvoiceMutation) ResetSupplierCourtRegistry() {
	m.supplier_court_registry = nil
	delete(m.clearedFields, lieferandoinvoice.FieldSupplierCourtRegistry)
}

// SetSupplierHrb sets the "supplier_hrb" field.
func (m *LieferandoInvoiceMutation) SetSupplierHrb(s string) {
	m.supplier_hrb = &s
}

// SupplierHrb returns the value of the "supplier_hrb" field in the mutation.
func (m *LieferandoInvoiceMutation) SupplierHrb() (r string, exists bool) {
	v := m.supplier_hrb
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierHrb returns the old "supplier_hrb" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldSupplierHrb(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierHrb is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierHrb requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierHrb: %w", err)
	}
	return oldValue.SupplierHrb, nil
}

// ClearSupplierHrb clears the value of the "supplier_hrb" field.
func (m *LieferandoInvoiceMutation) ClearSupplierHrb() {
	m.supplier_hrb = nil
	m.clearedFields[lieferandoinvoice.FieldSupplierHrb] = struct{}{}
}

// SupplierHrbCleared returns if the "supplier_hrb" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) SupplierHrbCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldSupplierHrb]
	return ok
}

// ResetSupplierHrb resets all changes to the "supplier_hrb" field.
func (m *LieferandoInvoiceMutation) ResetSupplierHrb() {
	m.supplier_hrb = nil
	delete(m.clearedFields, lieferandoinvoice.FieldSupplierHrb)
}

// SetTotalOrders sets the "total_orders" field.
func (m *LieferandoInvoiceMutation) SetTotalOrders(i int) {
	m.total_orders = &i
	m.addtotal_orders = nil
}

// TotalOrders returns the value of the "total_orders" field in the mutation.
func (m *LieferandoInvoiceMutation) TotalOrders() (r int, exists bool) {
	v := m.total_orders
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalOrders returns the old "total_orders" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldTotalOrders(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalOrders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalOrders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalOrders: %w", err)
	}
	return oldValue.TotalOrders, nil
}

// AddTotalOrders adds i to the "total_orders" field.
func (m *LieferandoInvoiceMutation) AddTotalOrders(i int) {
	if m.addtotal_orders != nil {
		*m.addtotal_orders += i
	} else {
		m.addtotal_orders = &i
	}
}

// AddedTotalOrders returns the value that was added to the "total_orders" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedTotalOrders() (r int, exists bool) {
	v := m.addtotal_orders
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalOrders clears the value of the "total_orders" field.
func (m *LieferandoInvoiceMutation) ClearTotalOrders() {
	m.total_orders = nil
	m.addtotal_orders = nil
	m.clearedFields[lieferandoinvoice.FieldTotalOrders] = struct{}{}
}

// TotalOrdersCleared returns if the "total_orders" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) TotalOrdersCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldTotalOrders]
	return ok
}

// ResetTotalOrders resets all changes to the "total_orders" field.
func (m *LieferandoInvoiceMutation) ResetTotalOrders() {
	m.total_orders = nil
	m.addtotal_orders = nil
	delete(m.clearedFields, lieferandoinvoice.FieldTotalOrders)
}

// SetTotalRevenue sets the "total_revenue" field.
func (m *LieferandoInvoiceMutation) SetTotalRevenue(f float64) {
	m.total_revenue = &f
	m.addtotal_revenue = nil
}

// TotalRevenue returns the value of the "total_revenue" field in the mutation.
func (m *LieferandoInvoiceMutation) TotalRevenue() (r float64, exists bool) {
	v := m.total_revenue
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRevenue returns the old "total_revenue" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldTotalRevenue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalRevenue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalRevenue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalRevenue: %w", err)
	}
	return oldValue.TotalRevenue, nil
}

// AddTotalRevenue adds f to the "total_revenue" field.
func (m *LieferandoInvoiceMutation) AddTotalRevenue(f float64) {
	if m.addtotal_revenue != nil {
		*m.addtotal_revenue += f
	} else {
		m.addtotal_revenue = &f
	}
}

// AddedTotalRevenue returns the value that was added to the "total_revenue" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedTotalRevenue() (r float64, exists bool) {
	v := m.addtotal_revenue
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalRevenue clears the value of the "total_revenue" field.
func (m *LieferandoInvoiceMutation) ClearTotalRevenue() {
	m.total_revenue = nil
	m.addtotal_revenue = nil
	m.clearedFields[lieferandoinvoice.FieldTotalRevenue] = struct{}{}
}

// TotalRevenueCleared returns if the "total_revenue" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) TotalRevenueCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldTotalRevenue]
	return ok
}

// ResetTotalRevenue resets all changes to the "total_revenue" field.
func (m *LieferandoInvoiceMutation) ResetTotalRevenue() {
	m.total_revenue = nil
	m.addtotal_revenue = nil
	delete(m.clearedFields, lieferandoinvoice.FieldTotalRevenue)
}

// SetOnlinePaidOrders sets the "online_paid_orders" field.
func (m *LieferandoInvoiceMutation) SetOnlinePaidOrders(i int) {
	m.online_paid_orders = &i
	m.addonline_paid_orders = nil
}

// OnlinePaidOrders returns the value of the "online_paid_orders" field in the mutation.
func (m *LieferandoInvoiceMutation) OnlinePaidOrders() (r int, exists bool) {
	v := m.online_paid_orders
	if v == nil {
		return
	}
	return *v, true
}

// OldOnlinePaidOrders returns the old "online_paid_orders" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldOnlinePaidOrders(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOnlinePaidOrders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOnlinePaidOrders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOnlinePaidOrders: %w", err)
	}
	return oldValue.OnlinePaidOrders, nil
}

// AddOnlinePaidOrders adds i to the "online_paid_orders" field.
func (m *LieferandoInvoiceMutation) AddOnlinePaidOrders(i int) {
	if m.addonline_paid_orders != nil {
		*m.addonline_paid_orders += i
	} else {
		m.addonline_paid_orders = &i
	}
}

// AddedOnlinePaidOrders returns the value that was added to the "online_paid_orders" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedOnlinePaidOrders() (r int, exists bool) {
	v := m.addonline_paid_orders
	if v == nil {
		return
	}
	return *v, true
}

// ClearOnlinePaidOrders clears the value of the "online_paid_orders" field.
func (m *LieferandoInvoiceMutation) ClearOnlinePaidOrders() {
	m.online_paid_orders = nil
	m.addonline_paid_orders = nil
	m.clearedFields[lieferandoinvoice.FieldOnlinePaidOrders] = struct{}{}
}

// OnlinePaidOrdersCleared returns if the "online_paid_orders" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) OnlinePaidOrdersCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldOnlinePaidOrders]
	return ok
}

// ResetOnlinePaidOrders resets all changes to the "online_paid_orders" field.
func (m *LieferandoInvoiceMutation) ResetOnlinePaidOrders() {
	m.online_paid_orders = nil
	m.addonline_paid_orders = nil
	delete(m.clearedFields, lieferandoinvoice.FieldOnlinePaidOrders)
}

// SetOnlinePaidAmount sets the "online_paid_amount" field.
func (m *LieferandoInvoiceMutation) SetOnlinePaidAmount(f float64) {
	m.online_paid_amount = &f
	m.addonline_paid_amount = nil
}

// OnlinePaidAmount returns the value of the "online_paid_amount" field in the mutation.
func (m *LieferandoInvoiceMutation) OnlinePaidAmount() (r float64, exists bool) {
	v := m.online_paid_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldOnlinePaidAmount returns the old "online_paid_amount" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldOnlinePaidAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOnlinePaidAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOnlinePaidAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOnlinePaidAmount: %w", err)
	}
	return oldValue.OnlinePaidAmount, nil
}

// AddOnlinePaidAmount adds f to the "online_paid_amount" field.
func (m *LieferandoInvoiceMutation) AddOnlinePaidAmount(f float64) {
	if m.addonline_paid_amount != nil {
		*m.addonline_paid_amount += f
	} else {
		m.addonline_paid_amount = &f
	}
}

// AddedOnlinePaidAmount returns the value that was added to the "online_paid_amount" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedOnlinePaidAmount() (r float64, exists bool) {
	v := m.addonline_paid_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearOnlinePaidAmount clears the value of the "online_paid_amount" field.
func (m *LieferandoInvoiceMutation) ClearOnlinePaidAmount() {
	m.online_paid_amount = nil
	m.addonline_paid_amount = nil
	m.clearedFields[lieferandoinvoice.FieldOnlinePaidAmount] = struct{}{}
}

// OnlinePaidAmountCleared returns if the "online_paid_amount" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) OnlinePaidAmountCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldOnlinePaidAmount]
	return ok
}

// ResetOnlinePaidAmount resets all changes to the "online_paid_amount" field.
func (m *LieferandoInvoiceMutation) ResetOnlinePaidAmount() {
	m.online_paid_amount = nil
	m.addonline_paid_amount = nil
	delete(m.clearedFields, lieferandoinvoice.FieldOnlinePaidAmount)
}

// SetCashPaidOrders sets the "cash_paid_orders" field.
func (m *LieferandoInvoiceMutation) SetCashPaidOrders(i int) {
	m.cash_paid_orders = &i
	m.addcash_paid_orders = nil
}

// CashPaidOrders returns the value of the "cash_paid_orders" field in the mutation.
func (m *LieferandoInvoiceMutation) CashPaidOrders() (r int, exists bool) {
	v := m.cash_paid_orders
	if v == nil {
		return
	}
	return *v, true
}

// OldCashPaidOrders returns the old "cash_paid_orders" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldCashPaidOrders(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCashPaidOrders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCashPaidOrders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCashPaidOrders: %w", err)
	}
	return oldValue.CashPaidOrders, nil
}

// AddCashPaidOrders adds i to the "cash_paid_orders" field.
func (m *LieferandoInvoiceMutation) AddCashPaidOrders(i int) {
	if m.addcash_paid_orders != nil {
		*m.addcash_paid_orders += i
	} else {
		m.addcash_paid_orders = &i
	}
}

// AddedCashPaidOrders returns the value that was added to the "cash_paid_orders" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedCashPaidOrders() (r int, exists bool) {
	v := m.addcash_paid_orders
	if v == nil {
		return
	}
	return *v, true
}

// ClearCashPaidOrders clears the value of the "cash_paid_orders" field.
func (m *LieferandoInvoiceMutation) ClearCashPaidOrders() {
	m.cash_paid_orders = nil
	m.addcash_paid_orders = nil
	m.clearedFields[lieferandoinvoice.FieldCashPaidOrders] = struct{}{}
}

// CashPaidOrdersCleared returns if the "cash_paid_orders" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) CashPaidOrdersCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldCashPaidOrders]
	return ok
}

// ResetCashPaidOrders resets all changes to the "cash_paid_orders" field.
func (m *LieferandoInvoiceMutation) ResetCashPaidOrders() {
	m.cash_paid_orders = nil
	m.addcash_paid_orders = nil
	delete(m.clearedFields, lieferandoinvoice.FieldCashPaidOrders)
}

// SetCashPaidAmount sets the "cash_paid_amount" field.
func (m *LieferandoInvoiceMutation) SetCashPaidAmount(f float64) {
	m.cash_paid_amount = &f
	m.addcash_paid_amount = nil
}

// CashPaidAmount returns the value of the "cash_paid_amount" field in the mutation.
func (m *LieferandoInvoiceMutation) CashPaidAmount() (r float64, exists bool) {
	v := m.cash_paid_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldCashPaidAmount returns the old "cash_paid_amount" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldCashPaidAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCashPaidAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCashPaidAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCashPaidAmount: %w", err)
	}
	return oldValue.CashPaidAmount, nil
}

// AddCashPaidAmount adds f to the "cash_paid_amount" field.
func (m *LieferandoInvoiceMutation) AddCashPaidAmount(f float64) {
	if m.addcash_paid_amount != nil {
		*m.addcash_paid_amount += f
	} else {
		m.addcash_paid_amount = &f
	}
}

// AddedCashPaidAmount returns the value that was added to the "cash_paid_amount" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedCashPaidAmount() (r float64, exists bool) {
	v := m.addcash_paid_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearCashPaidAmount clears the value of the "cash_paid_amount" field.
func (m *LieferandoInvoiceMutation) ClearCashPaidAmount() {
	m.cash_paid_amount = nil
	m.addcash_paid_amount = nil
	m.clearedFields[lieferandoinvoice.FieldCashPaidAmount] = struct{}{}
}

// CashPaidAmountCleared returns if the "cash_paid_amount" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) CashPaidAmountCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldCashPaidAmount]
	return ok
}

// ResetCashPaidAmount resets all changes to the "cash_paid_amount" field.
func (m *LieferandoInvoiceMutation) ResetCashPaidAmount() {
	m.cash_paid_amount = nil
	m.addcash_paid_amount = nil
	delete(m.clearedFields, lieferandoinvoice.FieldCashPaidAmount)
}

// SetCashServiceFeeAmount sets the "cash_service_fee_amount" field.
func (m *LieferandoInvoiceMutation) SetCashServiceFeeAmount(f float64) {
	m.cash_service_fee_amount = &f
	m.addcash_service_fee_amount = nil
}

// CashServiceFeeAmount returns the value of the "cash_service_fee_amount" field in the mutation.
func (m *LieferandoInvoiceMutation) CashServiceFeeAmount() (r float64, exists bool) {
	v := m.cash_service_fee_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldCashServiceFeeAmount returns the old "cash_service_fee_amount" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldCashServiceFeeAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCashServiceFeeAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCashServiceFeeAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCashServiceFeeAmount: %w", err)
	}
	return oldValue.CashServiceFeeAmount, nil
}

// AddCashServiceFeeAmount adds f to the "cash_service_fee_amount" field.
func (m *LieferandoInvoiceMutation) AddCashServiceFeeAmount(f float64) {
	if m.addcash_service_fee_amount != nil {
		*m.addcash_service_fee_amount += f
	} else {
		m.addcash_service_fee_amount = &f
	}
}

// AddedCashServiceFeeAmount returns the value that was added to the "cash_service_fee_amount" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedCashServiceFeeAmount() (r float64, exists bool) {
	v := m.addcash_service_fee_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearCashServiceFeeAmount clears the value of the "cash_service_fee_amount" field.
func (m *LieferandoInvoiceMutation) ClearCashServiceFeeAmount() {
	m.cash_service_fee_amount = nil
	m.addcash_service_fee_amount = nil
	m.clearedFields[lieferandoinvoice.FieldCashServiceFeeAmount] = struct{}{}
}

// CashServiceFeeAmountCleared returns if the "cash_service_fee_amount" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) CashServiceFeeAmountCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldCashServiceFeeAmount]
	return ok
}

// ResetCashServiceFeeAmount resets all changes to the "cash_service_fee_amount" field.
func (m *LieferandoInvoiceMutation) ResetCashServiceFeeAmount() {
	m.cash_service_fee_amount = nil
	m.addcash_service_fee_amount = nil
	delete(m.clearedFields, lieferandoinvoice.FieldCashServiceFeeAmount)
}

// SetChargebackOrders sets the "chargeback_orders" field.
func (m *LieferandoInvoiceMutation) SetChargebackOrders(i int) {
	m.chargeback_orders = &i
	m.addchargeback_orders = nil
}

// ChargebackOrders returns the value of the "chargeback_orders" field in the mutation.
func (m *LieferandoInvoiceMutation) ChargebackOrders() (r int, exists bool) {
	v := m.chargeback_orders
	if v == nil {
		return
	}
	return *v, true
}

// OldChargebackOrders returns the old "chargeback_orders" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldChargebackOrders(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChargebackOrders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChargebackOrders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChargebackOrders: %w", err)
	}
	return oldValue.ChargebackOrders, nil
}

// AddChargebackOrders adds i to the "chargeback_orders" field.
func (m *LieferandoInvoiceMutation) AddChargebackOrders(i int) {
	if m.addchargeback_orders != nil {
		*m.addchargeback_orders += i
	} else {
		m.addchargeback_orders = &i
	}
}

// AddedChargebackOrders returns the value that was added to the "chargeback_orders" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedChargebackOrders() (r int, exists bool) {
	v := m.addchargeback_orders
	if v == nil {
		return
	}
	return *v, true
}

// ClearChargebackOrders clears the value of the "chargeback_orders" field.
func (m *LieferandoInvoiceMutation) ClearChargebackOrders() {
	m.chargeback_orders = nil
	m.addchargeback_orders = nil
	m.clearedFields[lieferandoinvoice.FieldChargebackOrders] = struct{}{}
}

// ChargebackOrdersCleared returns if the "chargeback_orders" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) ChargebackOrdersCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldChargebackOrders]
	return ok
}

// ResetChargebackOrders resets all changes to the "chargeback_orders" field.
func (m *LieferandoInvoiceMutation) ResetChargebackOrders() {
	m.chargeback_orders = nil
	m.addchargeback_orders = nil
	delete(m.clearedFields, lieferandoinvoice.FieldChargebackOrders)
}

// SetChargebackAmount sets the "chargeback_amount" field.
func (m *LieferandoInvoiceMutation) SetChargebackAmount(f float64) {
	m.chargeback_amount = &f
	m.addchargeback_amount = nil
}

// ChargebackAmount returns the value of the "chargeback_amount" field in the mutation.
func (m *LieferandoInvoiceMutation) ChargebackAmount() (r float64, exists bool) {
	v := m.chargeback_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldChargebackAmount returns the old "chargeback_amount" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldChargebackAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChargebackAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChargebackAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChargebackAmount: %w", err)
	}
	return oldValue.ChargebackAmount, nil
}

// AddChargebackAmount adds f to the "chargeback_amount" field.
func (m *LieferandoInvoiceMutation) AddChargebackAmount(f float64) {
	if m.addchargeback_amount != nil {
		*m.addchargeback_amount += f
	} else {
		m.addchargeback_amount = &f
	}
}

// AddedChargebackAmount returns the value that was added to the "chargeback_amount" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedChargebackAmount() (r float64, exists bool) {
	v := m.addchargeback_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearChargebackAmount clears the value of the "chargeback_amount" field.
func (m *LieferandoInvoiceMutation) ClearChargebackAmount() {
	m.chargeback_amount = nil
	m.addchargeback_amount = nil
	m.clearedFields[lieferandoinvoice.FieldChargebackAmount] = struct{}{}
}

// ChargebackAmountCleared returns if the "chargeback_amount" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) ChargebackAmountCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldChargebackAmount]
	return ok
}

// ResetChargebackAmount resets all changes to the "chargeback_amount" field.
func (m *LieferandoInvoiceMutation) ResetChargebackAmount() {
	m.chargeback_amount = nil
	m.addchargeback_amount = nil
	delete(m.clearedFields, lieferandoinvoice.FieldChargebackAmount)
}

// SetStampCardOrders sets the "stamp_card_orders" field.
func (m *LieferandoInvoiceMutation) SetStampCardOrders(i int) {
	m.stamp_card_orders = &i
	m.addstamp_card_orders = nil
}

// StampCardOrders returns the value of the "stamp_card_orders" field in the mutation.
func (m *LieferandoInvoiceMutation) StampCardOrders() (r int, exists bool) {
	v := m.stamp_card_orders
	if v == nil {
		return
	}
	return *v, true
}

// OldStampCardOrders returns the old "stamp_card_orders" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldStampCardOrders(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStampCardOrders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStampCardOrders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStampCardOrders: %w", err)
	}
	return oldValue.StampCardOrders, nil
}

// AddStampCardOrders adds i to the "stamp_card_orders" field.
func (m *LieferandoInvoiceMutation) AddStampCardOrders(i int) {
	if m.addstamp_card_orders != nil {
		*m.addstamp_card_orders += i
	} else {
		m.addstamp_card_orders = &i
	}
}

// AddedStampCardOrders returns the value that was added to the "stamp_card_orders" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedStampCardOrders() (r int, exists bool) {
	v := m.addstamp_card_orders
	if v == nil {
		return
	}
	return *v, true
}

// ClearStampCardOrders clears the value of the "stamp_card_orders" field.
func (m *LieferandoInvoiceMutation) ClearStampCardOrders() {
	m.stamp_card_orders = nil
	m.addstamp_card_orders = nil
	m.clearedFields[lieferandoinvoice.FieldStampCardOrders] = struct{}{}
}

// StampCardOrdersCleared returns if the "stamp_card_orders" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) StampCardOrdersCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldStampCardOrders]
	return ok
}

// ResetStampCardOrders resets all changes to the "stamp_card_orders" field.
func (m *LieferandoInvoiceMutation) ResetStampCardOrders() {
	m.stamp_card_orders = nil
	m.addstamp_card_orders = nil
	delete(m.clearedFields, lieferandoinvoice.FieldStampCardOrders)
}

// SetStampCardAmount sets the "stamp_card_amount" field.
func (m *LieferandoInvoiceMutation) SetStampCardAmount(f float64) {
	m.stamp_card_amount = &f
	m.addstamp_card_amount = nil
}

// StampCardAmount returns the value of the "stamp_card_amount" field in the mutation.
func (m *LieferandoInvoiceMutation) StampCardAmount() (r float64, exists bool) {
	v := m.stamp_card_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldStampCardAmount returns the old "stamp_card_amount" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldStampCardAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStampCardAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStampCardAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStampCardAmount: %w", err)
	}
	return oldValue.StampCardAmount, nil
}

// AddStampCardAmount adds f to the "stamp_card_amount" field.
func (m *LieferandoInvoiceMutation) AddStampCardAmount(f float64) {
	if m.addstamp_card_amount != nil {
		*m.addstamp_card_amount += f
	} else {
		m.addstamp_card_amount = &f
	}
}

// AddedStampCardAmount returns the value that was added to the "stamp_card_amount" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedStampCardAmount() (r float64, exists bool) {
	v := m.addstamp_card_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearStampCardAmount clears the value of the "stamp_card_amount" field.
func (m *LieferandoInvoiceMutation) ClearStampCardAmount() {
	m.stamp_card_amount = nil
	m.addstamp_card_amount = nil
	m.clearedFields[lieferandoinvoice.FieldStampCardAmount] = struct{}{}
}

// StampCardAmountCleared returns if the "stamp_card_amount" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) StampCardAmountCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldStampCardAmount]
	return ok
}

// ResetStampCardAmount resets all changes to the "stamp_card_amount" field.
func (m *LieferandoInvoiceMutation) ResetStampCardAmount() {
	m.stamp_card_amount = nil
	m.addstamp_card_amount = nil
	delete(m.clearedFields, lieferandoinvoice.FieldStampCardAmount)
}

// SetServiceFeeRate sets the "service_fee_rate" field.
func (m *LieferandoInvoiceMutation) SetServiceFeeRate(f float64) {
	m.service_fee_rate = &f
	m.addservice_fee_rate = nil
}

// ServiceFeeRate returns the value of the "service_fee_rate" field in the mutation.
func (m *LieferandoInvoiceMutation) ServiceFeeRate() (r float64, exists bool) {
	v := m.service_fee_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceFeeRate returns the old "service_fee_rate" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldServiceFeeRate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceFeeRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceFeeRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceFeeRate: %w", err)
	}
	return oldValue.ServiceFeeRate, nil
}

// AddServiceFeeRate adds f to the "service_fee_rate" field.
func (m *LieferandoInvoiceMutation) AddServiceFeeRate(f float64) {
	if m.addservice_fee_rate != nil {
		*m.addservice_fee_rate += f
	} else {
		m.addservice_fee_rate = &f
	}
}

// AddedServiceFeeRate returns the value that was added to the "service_fee_rate" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedServiceFeeRate() (r float64, exists bool) {
	v := m.addservice_fee_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearServiceFeeRate clears the value of the "service_fee_rate" field.
func (m *LieferandoInvoiceMutation) ClearServiceFeeRate() {
	m.service_fee_rate = nil
	m.addservice_fee_rate = nil
	m.clearedFields[lieferandoinvoice.FieldServiceFeeRate] = struct{}{}
}

// ServiceFeeRateCleared returns if the "service_fee_rate" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) ServiceFeeRateCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldServiceFeeRate]
	return ok
}

// ResetServiceFeeRate resets all changes to the "service_fee_rate" field.
func (m *LieferandoInvoiceMutation) ResetServiceFeeRate() {
	m.service_fee_rate = nil
	m.addservice_fee_rate = nil
	delete(m.clearedFields, lieferandoinvoice.FieldServiceFeeRate)
}

// SetServiceFeeAmount sets the "service_fee_amount" field.
func (m *LieferandoInvoiceMutation) SetServiceFeeAmount(f float64) {
	m.service_fee_amount = &f
	m.addservice_fee_amount = nil
}

// ServiceFeeAmount returns the value of the "service_fee_amount" field in the mutation.
func (m *LieferandoInvoiceMutation) ServiceFeeAmount() (r float64, exists bool) {
	v := m.service_fee_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceFeeAmount returns the old "service_fee_amount" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldServiceFeeAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceFeeAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceFeeAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceFeeAmount: %w", err)
	}
	return oldValue.ServiceFeeAmount, nil
}

// AddServiceFeeAmount adds f to the "service_fee_amount" field.
func (m *LieferandoInvoiceMutation) AddServiceFeeAmount(f float64) {
	if m.addservice_fee_amount != nil {
		*m.addservice_fee_amount += f
	} else {
		m.addservice_fee_amount = &f
	}
}

// AddedServiceFeeAmount returns the value that was added to the "service_fee_amount" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedServiceFeeAmount() (r float64, exists bool) {
	v := m.addservice_fee_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearServiceFeeAmount clears the value of the "service_fee_amount" field.
func (m *LieferandoInvoiceMutation) ClearServiceFeeAmount() {
	m.service_fee_amount = nil
	m.addservice_fee_amount = nil
	m.clearedFields[lieferandoinvoice.FieldServiceFeeAmount] = struct{}{}
}

// ServiceFeeAmountCleared returns if the "service_fee_amount" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) ServiceFeeAmountCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldServiceFeeAmount]
	return ok
}

// ResetServiceFeeAmount resets all changes to the "service_fee_amount" field.
func (m *LieferandoInvoiceMutation) ResetServiceFeeAmount() {
	m.service_fee_amount = nil
	m.addservice_fee_amount = nil
	delete(m.clearedFields, lieferandoinvoice.FieldServiceFeeAmount)
}

// SetAdminFeeRate sets the "admin_fee_rate" field.
func (m *LieferandoInvoiceMutation) SetAdminFeeRate(f float64) {
	m.admin_fee_rate = &f
	m.addadmin_fee_rate = nil
}

// AdminFeeRate returns the value of the "admin_fee_rate" field in the mutation.
func (m *LieferandoInvoiceMutation) AdminFeeRate() (r float64, exists bool) {
	v := m.admin_fee_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminFeeRate returns the old "admin_fee_rate" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldAdminFeeRate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminFeeRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminFeeRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminFeeRate: %w", err)
	}
	return oldValue.AdminFeeRate, nil
}

// AddAdminFeeRate adds f to the "admin_fee_rate" field.
func (m *LieferandoInvoiceMutation) AddAdminFeeRate(f float64) {
	if m.addadmin_fee_rate != nil {
		*m.addadmin_fee_rate += f
	} else {
		m.addadmin_fee_rate = &f
	}
}

// AddedAdminFeeRate returns the value that was added to the "admin_fee_rate" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedAdminFeeRate() (r float64, exists bool) {
	v := m.addadmin_fee_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearAdminFeeRate clears the value of the "admin_fee_rate" field.
func (m *LieferandoInvoiceMutation) ClearAdminFeeRate() {
	m.admin_fee_rate = nil
	m.addadmin_fee_rate = nil
	m.clearedFields[lieferandoinvoice.FieldAdminFeeRate] = struct{}{}
}

// AdminFeeRateCleared returns if the "admin_fee_rate" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) AdminFeeRateCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldAdminFeeRate]
	return ok
}

// ResetAdminFeeRate resets all changes to the "admin_fee_rate" field.
func (m *LieferandoInvoiceMutation) ResetAdminFeeRate() {
	m.admin_fee_rate = nil
	m.addadmin_fee_rate = nil
	delete(m.clearedFields, lieferandoinvoice.FieldAdminFeeRate)
}

// SetAdminFeeAmount sets the "admin_fee_amount" field.
func (m *LieferandoInvoiceMutation) SetAdminFeeAmount(f float64) {
	m.admin_fee_amount = &f
	m.addadmin_fee_amount = nil
}

// AdminFeeAmount returns the value of the "admin_fee_amount" field in the mutation.
func (m *LieferandoInvoiceMutation) AdminFeeAmount() (r float64, exists bool) {
	v := m.admin_fee_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminFeeAmount returns the old "admin_fee_amount" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldAdminFeeAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminFeeAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminFeeAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminFeeAmount: %w", err)
	}
	return oldValue.AdminFeeAmount, nil
}

// AddAdminFeeAmount adds f to the "admin_fee_amount" field.
func (m *LieferandoInvoiceMutation) AddAdminFeeAmount(f float64) {
	if m.addadmin_fee_amount != nil {
		*m.addadmin_fee_amount += f
	} else {
		m.addadmin_fee_amount = &f
	}
}

// AddedAdminFeeAmount returns the value that was added to the "admin_fee_amount" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedAdminFeeAmount() (r float64, exists bool) {
	v := m.addadmin_fee_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearAdminFeeAmount clears the value of the "admin_fee_amount" field.
func (m *LieferandoInvoiceMutation) ClearAdminFeeAmount() {
	m.admin_fee_amount = nil
	m.addadmin_fee_amount = nil
	m.clearedFields[lieferandoinvoice.FieldAdminFeeAmount] = struct{}{}
}

// AdminFeeAmountCleared returns if the "admin_fee_amount" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) AdminFeeAmountCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldAdminFeeAmount]
	return ok
}

// ResetAdminFeeAmount resets all changes to the "admin_fee_amount" field.
func (m *LieferandoInvoiceMutation) ResetAdminFeeAmount() {
	m.admin_fee_amount = nil
	m.addadmin_fee_amount = nil
	delete(m.clearedFields, lieferandoinvoice.FieldAdminFeeAmount)
}

// SetSubtotal sets the "subtotal" field.
func (m *LieferandoInvoiceMutation) SetSubtotal(f float64) {
	m.subtotal = &f
	m.addsubtotal = nil
}

// Subtotal returns the value of the "subtotal" field in the mutation.
func (m *LieferandoInvoiceMutation) Subtotal() (r float64, exists bool) {
	v := m.subtotal
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtotal returns the old "subtotal" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldSubtotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtotal: %w", err)
	}
	return oldValue.Subtotal, nil
}

// AddSubtotal adds f to the "subtotal" field.
func (m *LieferandoInvoiceMutation) AddSubtotal(f float64) {
	if m.addsubtotal != nil {
		*m.addsubtotal += f
	} else {
		m.addsubtotal = &f
	}
}

// AddedSubtotal returns the value that was added to the "subtotal" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedSubtotal() (r float64, exists bool) {
	v := m.addsubtotal
	if v == nil {
		return
	}
	return *v, true
}

// ClearSubtotal clears the value of the "subtotal" field.
func (m *LieferandoInvoiceMutation) ClearSubtotal() {
	m.subtotal = nil
	m.addsubtotal = nil
	m.clearedFields[lieferandoinvoice.FieldSubtotal] = struct{}{}
}

// SubtotalCleared returns if the "subtotal" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) SubtotalCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldSubtotal]
	return ok
}

// ResetSubtotal resets all changes to the "subtotal" field.
func (m *LieferandoInvoiceMutation) ResetSubtotal() {
	m.subtotal = nil
	m.addsubtotal = nil
	delete(m.clearedFields, lieferandoinvoice.FieldSubtotal)
}

// SetTaxRate sets the "tax_rate" field.
func (m *LieferandoInvoiceMutation) SetTaxRate(f float64) {
	m.tax_rate = &f
	m.addtax_rate = nil
}

// TaxRate returns the value of the "tax_rate" field in the mutation.
func (m *LieferandoInvoiceMutation) TaxRate() (r float64, exists bool) {
	v := m.tax_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxRate returns the old "tax_rate" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldTaxRate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxRate: %w", err)
	}
	return oldValue.TaxRate, nil
}

// AddTaxRate adds f to the "tax_rate" field.
func (m *LieferandoInvoiceMutation) AddTaxRate(f float64) {
	if m.addtax_rate != nil {
		*m.addtax_rate += f
	} else {
		m.addtax_rate = &f
	}
}

// AddedTaxRate returns the value that was added to the "tax_rate" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedTaxRate() (r float64, exists bool) {
	v := m.addtax_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearTaxRate clears the value of the "tax_rate" field.
func (m *LieferandoInvoiceMutation) ClearTaxRate() {
	m.tax_rate = nil
	m.addtax_rate = nil
	m.clearedFields[lieferandoinvoice.FieldTaxRate] = struct{}{}
}

// TaxRateCleared returns if the "tax_rate" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) TaxRateCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldTaxRate]
	return ok
}

// ResetTaxRate resets all changes to the "tax_rate" field.
func (m *LieferandoInvoiceMutation) ResetTaxRate() {
	m.tax_rate = nil
	m.addtax_rate = nil
	delete(m.clearedFields, lieferandoinvoice.FieldTaxRate)
}

// SetTaxAmount sets the "tax_amount" field.
func (m *LieferandoInvoiceMutation) SetTaxAmount(f float64) {
	m.tax_amount = &f
	m.addtax_amount = nil
}

// TaxAmount returns the value of the "tax_amount" field in the mutation.
func (m *LieferandoInvoiceMutation) TaxAmount() (r float64, exists bool) {
	v := m.tax_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxAmount returns the old "tax_amount" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldTaxAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxAmount: %w", err)
	}
	return oldValue.TaxAmount, nil
}

// AddTaxAmount adds f to the "tax_amount" field.
func (m *LieferandoInvoiceMutation) AddTaxAmount(f float64) {
	if m.addtax_amount != nil {
		*m.addtax_amount += f
	} else {
		m.addtax_amount = &f
	}
}

// AddedTaxAmount returns the value that was added to the "tax_amount" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedTaxAmount() (r float64, exists bool) {
	v := m.addtax_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (m *LieferandoInvoiceMutation) ClearTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
	m.clearedFields[lieferandoinvoice.FieldTaxAmount] = struct{}{}
}

// TaxAmountCleared returns if the "tax_amount" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) TaxAmountCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldTaxAmount]
	return ok
}

// ResetTaxAmount resets all changes to the "tax_amount" field.
func (m *LieferandoInvoiceMutation) ResetTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
	delete(m.clearedFields, lieferandoinvoice.FieldTaxAmount)
}

// SetPaidOnlinePayments sets the "paid_online_payments" field.
func (m *LieferandoInvoiceMutation) SetPaidOnlinePayments(f float64) {
	m.paid_online_payments = &f
	m.addpaid_online_payments = nil
}

// PaidOnlinePayments returns the value of the "paid_online_payments" field in the mutation.
func (m *LieferandoInvoiceMutation) PaidOnlinePayments() (r float64, exists bool) {
	v := m.paid_online_payments
	if v == nil {
		return
	}
	return *v, true
}

// OldPaidOnlinePayments returns the old "paid_online_payments" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldPaidOnlinePayments(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaidOnlinePayments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaidOnlinePayments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaidOnlinePayments: %w", err)
	}
	return oldValue.PaidOnlinePayments, nil
}

// AddPaidOnlinePayments adds f to the "paid_online_payments" field.
func (m *LieferandoInvoiceMutation) AddPaidOnlinePayments(f float64) {
	if m.addpaid_online_payments != nil {
		*m.addpaid_online_payments += f
	} else {
		m.addpaid_online_payments = &f
	}
}

// AddedPaidOnlinePayments returns the value that was added to the "paid_online_payments" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedPaidOnlinePayments() (r float64, exists bool) {
	v := m.addpaid_online_payments
	if v == nil {
		return
	}
	return *v, true
}

// ClearPaidOnlinePayments clears the value of the "paid_online_payments" field.
func (m *LieferandoInvoiceMutation) ClearPaidOnlinePayments() {
	m.paid_online_payments = nil
	m.addpaid_online_payments = nil
	m.clearedFields[lieferandoinvoice.FieldPaidOnlinePayments] = struct{}{}
}

// PaidOnlinePaymentsCleared returns if the "paid_online_payments" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) PaidOnlinePaymentsCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldPaidOnlinePayments]
	return ok
}

// ResetPaidOnlinePayments resets all changes to the "paid_online_payments" field.
func (m *LieferandoInvoiceMutation) ResetPaidOnlinePayments() {
	m.paid_online_payments = nil
	m.addpaid_online_payments = nil
	delete(m.clearedFields, lieferandoinvoice.FieldPaidOnlinePayments)
}

// SetOutstandingAmount sets the "outstanding_amount" field.
func (m *LieferandoInvoiceMutation) SetOutstandingAmount(f float64) {
	m.outstanding_amount = &f
	m.addoutstanding_amount = nil
}

// OutstandingAmount returns the value of the "outstanding_amount" field in the mutation.
func (m *LieferandoInvoiceMutation) OutstandingAmount() (r float64, exists bool) {
	v := m.outstanding_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldOutstandingAmount returns the old "outstanding_amount" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldOutstandingAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutstandingAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutstandingAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutstandingAmount: %w", err)
	}
	return oldValue.OutstandingAmount, nil
}

// AddOutstandingAmount adds f to the "outstanding_amount" field.
func (m *LieferandoInvoiceMutation) AddOutstandingAmount(f float64) {
	if m.addoutstanding_amount != nil {
		*m.addoutstanding_amount += f
	} else {
		m.addoutstanding_amount = &f
	}
}

// AddedOutstandingAmount returns the value that was added to the "outstanding_amount" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedOutstandingAmount() (r float64, exists bool) {
	v := m.addoutstanding_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearOutstandingAmount clears the value of the "outstanding_amount" field.
func (m *LieferandoInvoiceMutation) ClearOutstandingAmount() {
	m.outstanding_amount = nil
	m.addoutstanding_amount = nil
	m.clearedFields[lieferandoinvoice.FieldOutstandingAmount] = struct{}{}
}

// OutstandingAmountCleared returns if the "outstanding_amount" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) OutstandingAmountCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldOutstandingAmount]
	return ok
}

// ResetOutstandingAmount resets all changes to the "outstanding_amount" field.
func (m *LieferandoInvoiceMutation) ResetOutstandingAmount() {
	m.outstanding_amount = nil
	m.addoutstanding_amount = nil
	delete(m.clearedFields, lieferandoinvoice.FieldOutstandingAmount)
}

// SetOutstandingBalance sets the "outstanding_balance" field.
func (m *LieferandoInvoiceMutation) SetOutstandingBalance(f float64) {
	m.outstanding_balance = &f
	m.addoutstanding_balance = nil
}

// OutstandingBalance returns the value of the "outstanding_balance" field in the mutation.
func (m *LieferandoInvoiceMutation) OutstandingBalance() (r float64, exists bool) {
	v := m.outstanding_balance
	if v == nil {
		return
	}
	return *v, true
}

// OldOutstandingBalance returns the old "outstanding_balance" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldOutstandingBalance(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutstandingBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutstandingBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutstandingBalance: %w", err)
	}
	return oldValue.OutstandingBalance, nil
}

// AddOutstandingBalance adds f to the "outstanding_balance" field.
func (m *LieferandoInvoiceMutation) AddOutstandingBalance(f float64) {
	if m.addoutstanding_balance != nil {
		*m.addoutstanding_balance += f
	} else {
		m.addoutstanding_balance = &f
	}
}

// AddedOutstandingBalance returns the value that was added to the "outstanding_balance" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedOutstandingBalance() (r float64, exists bool) {
	v := m.addoutstanding_balance
	if v == nil {
		return
	}
	return *v, true
}

// ClearOutstandingBalance clears the value of the "outstanding_balance" field.
func (m *LieferandoInvoiceMutation) ClearOutstandingBalance() {
	m.outstanding_balance = nil
	m.addoutstanding_balance = nil
	m.clearedFields[lieferandoinvoice.FieldOutstandingBalance] = struct{}{}
}

// OutstandingBalanceCleared returns if the "outstanding_balance" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) OutstandingBalanceCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldOutstandingBalance]
	return ok
}

// ResetOutstandingBalance resets all changes to the "outstanding_balance" field.
func (m *LieferandoInvoiceMutation) ResetOutstandingBalance() {
	m.outstanding_balance = nil
	m.addoutstanding_balance = nil
	delete(m.clearedFields, lieferandoinvoice.FieldOutstandingBalance)
}

// SetPayoutAmount sets the "payout_amount" field.
func (m *LieferandoInvoiceMutation) SetPayoutAmount(f float64) {
	m.payout_amount = &f
	m.addpayout_amount = nil
}

// PayoutAmount returns the value of the "payout_amount" field in the mutation.
func (m *LieferandoInvoiceMutation) PayoutAmount() (r float64, exists bool) {
	v := m.payout_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldPayoutAmount returns the old "payout_amount" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldPayoutAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayoutAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayoutAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayoutAmount: %w", err)
	}
	return oldValue.PayoutAmount, nil
}

// AddPayoutAmount adds f to the "payout_amount" field.
func (m *LieferandoInvoiceMutation) AddPayoutAmount(f float64) {
	if m.addpayout_amount != nil {
		*m.addpayout_amount += f
	} else {
		m.addpayout_amount = &f
	}
}

// AddedPayoutAmount returns the value that was added to the "payout_amount" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedPayoutAmount() (r float64, exists bool) {
	v := m.addpayout_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearPayoutAmount clears the value of the "payout_amount" field.
func (m *LieferandoInvoiceMutation) ClearPayoutAmount() {
	m.payout_amount = nil
	m.addpayout_amount = nil
	m.clearedFields[lieferandoinvoice.FieldPayoutAmount] = struct{}{}
}

// PayoutAmountCleared returns if the "payout_amount" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) PayoutAmountCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldPayoutAmount]
	return ok
}

// ResetPayoutAmount resets all changes to the "payout_amount" field.
func (m *LieferandoInvoiceMutation) ResetPayoutAmount() {
	m.payout_amount = nil
	m.addpayout_amount = nil
	delete(m.clearedFields, lieferandoinvoice.FieldPayoutAmount)
}

// SetAmountDue sets the "amount_due" field.
func (m *LieferandoInvoiceMutation) SetAmountDue(f float64) {
	m.amount_due = &f
	m.addamount_due = nil
}

// AmountDue returns the value of the "amount_due" field in the mutation.
func (m *LieferandoInvoiceMutation) AmountDue() (r float64, exists bool) {
	v := m.amount_due
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountDue returns the old "amount_due" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldAmountDue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountDue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountDue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountDue: %w", err)
	}
	return oldValue.AmountDue, nil
}

// AddAmountDue adds f to the "amount_due" field.
func (m *LieferandoInvoiceMutation) AddAmountDue(f float64) {
	if m.addamount_due != nil {
		*m.addamount_due += f
	} else {
		m.addamount_due = &f
	}
}

// AddedAmountDue returns the value that was added to the "amount_due" field in this mutation.
func (m *LieferandoInvoiceMutation) AddedAmountDue() (r float64, exists bool) {
	v := m.addamount_due
	if v == nil {
		return
	}
	return *v, true
}

// ClearAmountDue clears the value of the "amount_due" field.
func (m *LieferandoInvoiceMutation) ClearAmountDue() {
	m.amount_due = nil
	m.addamount_due = nil
	m.clearedFields[lieferandoinvoice.FieldAmountDue] = struct{}{}
}

// AmountDueCleared returns if the "amount_due" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) AmountDueCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldAmountDue]
	return ok
}

// ResetAmountDue resets all changes to the "amount_due" field.
func (m *LieferandoInvoiceMutation) ResetAmountDue() {
	m.amount_due = nil
	m.addamount_due = nil
	delete(m.clearedFields, lieferandoinvoice.FieldAmountDue)
}

// SetConfirmationPaymentDate sets the "confirmation_payment_date" field.
func (m *LieferandoInvoiceMutation) SetConfirmationPaymentDate(t time.Time) {
	m.confirmation_payment_date = &t
}

// ConfirmationPaymentDate returns the value of the "confirmation_payment_date" field in the mutation.
func (m *LieferandoInvoiceMutation) ConfirmationPaymentDate() (r time.Time, exists bool) {
	v := m.confirmation_payment_date
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmationPaymentDate returns the old "confirmation_payment_date" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldConfirmationPaymentDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmationPaymentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmationPaymentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmationPaymentDate: %w", err)
	}
	return oldValue.ConfirmationPaymentDate, nil
}

// ClearConfirmationPaymentDate clears the value of the "confirmation_payment_date" field.
func (m *LieferandoInvoiceMutation) ClearConfirmationPaymentDate() {
	m.confirmation_payment_date = nil
	m.clearedFields[lieferandoinvoice.FieldConfirmationPaymentDate] = struct{}{}
}

// ConfirmationPaymentDateCleared returns if the "confirmation_payment_date" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) ConfirmationPaymentDateCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldConfirmationPaymentDate]
	return ok
}

// ResetConfirmationPaymentDate resets all changes to the "confirmation_payment_date" field.
func (m *LieferandoInvoiceMutation) ResetConfirmationPaymentDate() {
	m.confirmation_payment_date = nil
	delete(m.clearedFields, lieferandoinvoice.FieldConfirmationPaymentDate)
}

// SetConfirmationCodeMessage sets the "confirmation_code_message" field.
func (m *LieferandoInvoiceMutation) SetConfirmationCodeMessage(s string) {
	m.confirmation_code_message = &s
}

// ConfirmationCodeMessage returns the value of the "confirmation_code_message" field in the mutation.
func (m *LieferandoInvoiceMutation) ConfirmationCodeMessage() (r string, exists bool) {
	v := m.confirmation_code_message
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmationCodeMessage returns the old "confirmation_code_message" field's value of the LieferandoInvoice entity.
// If the LieferandoInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LieferandoInvoiceMutation) OldConfirmationCodeMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmationCodeMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmationCodeMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmationCodeMessage: %w", err)
	}
	return oldValue.ConfirmationCodeMessage, nil
}

// ClearConfirmationCodeMessage clears the value of the "confirmation_code_message" field.
func (m *LieferandoInvoiceMutation) ClearConfirmationCodeMessage() {
	m.confirmation_code_message = nil
	m.clearedFields[lieferandoinvoice.FieldConfirmationCodeMessage] = struct{}{}
}

// ConfirmationCodeMessageCleared returns if the "confirmation_code_message" field was cleared in this mutation.
func (m *LieferandoInvoiceMutation) ConfirmationCodeMessageCleared() bool {
	_, ok := m.clearedFields[lieferandoinvoice.FieldConfirmationCodeMessage]
	return ok
}

// ResetConfirmationCodeMessage resets all changes to the "confirmation_code_message" field.
func (m *LieferandoInvoiceMutation) ResetConfirmationCodeMessage() {
	m.confirmation_code_message = nil
	delete(m.clearedFields, lieferandoinvoice.FieldConfirmationCodeMessage)
}

// AddOrderItemIDs adds the "order_items" edge to the OrderItem entity by ids.
func (m *LieferandoInvoiceMutation) AddOrderItemIDs(ids ...uuid.UUID) {
	if m.order_items == nil {
		m.order_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.order_items[ids[i]] = struct{}{}
	}
}

// ClearOrderItems clears the "order_items" edge to the OrderItem entity.
func (m *LieferandoInvoiceMutation) ClearOrderItems() {
	m.clearedorder_items = true
}

// OrderItemsCleared reports if the "order_items" edge to the OrderItem entity was cleared.
func (m *LieferandoInvoiceMutation) OrderItemsCleared() bool {
	return m.clearedorder_items
}

// RemoveOrderItemIDs removes the "order_items" edge to the OrderItem entity by IDs.
func (m *LieferandoInvoiceMutation) RemoveOrderItemIDs(ids ...uuid.UUID) {
	if m.removedorder_items == nil {
		m.removedorder_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.order_items, ids[i])
		m.removedorder_items[ids[i]] = struct{}{}
	}
}

// RemovedOrderItems returns the removed IDs of the "order_items" edge to the OrderItem entity.
func (m *LieferandoInvoiceMutation) RemovedOrderItemsIDs() (ids []uuid.UUID) {
	for id := range m.removedorder_items {
		ids = append(ids, id)
	}
	return
}

// OrderItemsIDs returns the "order_items" edge IDs in the mutation.
func (m *LieferandoInvoiceMutation) OrderItemsIDs() (ids []uuid.UUID) {
	for id := range m.order_items {
		ids = append(ids, id)
	}
	return
}

// ResetOrderItems resets all changes to the "order_items" edge.
func (m *LieferandoInvoiceMutation) ResetOrderItems() {
	m.order_items = nil
	m.clearedorder_items = false
	m.removedorder_items = nil
}

// AddTipItemIDs adds the "tip_items" edge to the TipItem entity by ids.
func (m *LieferandoInvoiceMutation) AddTipItemIDs(ids ...uuid.UUID) {
	if m.tip_items == nil {
		m.tip_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.tip_items[ids[i]] = struct{}{}
	}
}

// ClearTipItems clears the "tip_items" edge to the TipItem entity.
func (m *LieferandoInvoiceMutation) ClearTipItems() {
	m.clearedtip_items = true
}

// TipItemsCleared reports if the "tip_items" edge to the TipItem entity was cleared.
func (m *LieferandoInvoiceMutation) TipItemsCleared() bool {
	return m.clearedtip_items
}

// RemoveTipItemIDs removes the "tip_items" edge to the TipItem entity by IDs.
func (m *LieferandoInvoiceMutation) RemoveTipItemIDs(ids ...uuid.UUID) {
	if m.removedtip_items == nil {
		m.removedtip_items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.tip_items, ids[i])
		m.removedtip_items[ids[i]] = struct{}{}
	}
}

// RemovedTipItems returns the removed IDs of the "tip_items" edge to the TipItem entity.
func (m *LieferandoInvoiceMutation) RemovedTipItemsIDs() (ids []uuid.UUID) {
	for id := range m.removedtip_items {
		ids = append(ids, id)
	}
	return
}

// TipItemsIDs returns the "tip_items" edge IDs in the mutation.
func (m *LieferandoInvoiceMutation) TipItemsIDs() (ids []uuid.UUID) {
	for id := range m.tip_items {
		ids = append(ids, id)
	}
	return
}

// ResetTipItems resets all changes to the "tip_items" edge.
func (m *LieferandoInvoiceMutation) ResetTipItems() {
	m.tip_items = nil
	m.clearedtip_items = false
	m.removedtip_items = nil
}

// Where appends a list predicates to the LieferandoInvoiceMutation builder.
func (m *LieferandoInvoiceMutation) Where(ps ...predicate.LieferandoInvoice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LieferandoInvoiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LieferandoInvoiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LieferandoInvoice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LieferandoInvoiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LieferandoInvoiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LieferandoInvoice).
func (m *LieferandoInvoiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LieferandoInvoiceMutation) Fields() []string {
	fields := make([]string, 0, 51)
	if m.invoice_number != nil {
		fields = append(fields, lieferandoinvoice.FieldInvoiceNumber)
	}
	if m.invoice_date != nil {
		fields = append(fields, lieferandoinvoice.FieldInvoiceDate)
	}
	if m.period_start != nil {
		fields = append(fields, lieferandoinvoice.FieldPeriodStart)
	}
	if m.period_end != nil {
		fields = append(fields, lieferandoinvoice.FieldPeriodEnd)
	}
	if m.supplier_name != nil {
		fields = append(fields, lieferandoinvoice.FieldSupplierName)
	}
	if m.total_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldTotalAmount)
	}
	if m.status != nil {
		fields = append(fields, lieferandoinvoice.FieldStatus)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, lieferandoinvoice.FieldExtractionConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, lieferandoinvoice.FieldNeedsReview)
	}
	if m.raw_text != nil {
		fields = append(fields, lieferandoinvoice.FieldRawText)
	}
	if m.source_filename != nil {
		fields = append(fields, lieferandoinvoice.FieldSourceFilename)
	}
	if m.email_subject != nil {
		fields = append(fields, lieferandoinvoice.FieldEmailSubject)
	}
	if m.email_sender != nil {
		fields = append(fields, lieferandoinvoice.FieldEmailSender)
	}
	if m.email_date != nil {
		fields = append(fields, lieferandoinvoice.FieldEmailDate)
	}
	if m.created_at != nil {
		fields = append(fields, lieferandoinvoice.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, lieferandoinvoice.FieldUpdatedAt)
	}
	if m.restaurant_name != nil {
		fields = append(fields, lieferandoinvoice.FieldRestaurantName)
	}
	if m.customer_number != nil {
		fields = append(fields, lieferandoinvoice.FieldCustomerNumber)
	}
	if m.customer_company != nil {
		fields = append(fields, lieferandoinvoice.FieldCustomerCompany)
	}
	if m.customer_tax_number != nil {
		fields = append(fields, lieferandoinvoice.FieldCustomerTaxNumber)
	}
	if m.customer_bank_iban != nil {
		fields = append(fields, lieferandoinvoice.FieldCustomerBankIban)
	}
	if m.supplier_iban != nil {
		fields = append(fields, lieferandoinvoice.FieldSupplierIban)
	}
	if m.supplier_vat_id != nil {
		fields = append(fields, lieferandoinvoice.FieldSupplierVatID)
	}
	if m.supplier_managing_director != nil {
		fields = append(fields, lieferandoinvoice.FieldSupplierManagingDirector)
	}
	if m.supplier_court_registry != nil {
		fields = append(fields, lieferandoinvoice.FieldSupplierCourtRegistry)
	}
	if m.supplier_hrb != nil {
		fields = append(fields, lieferandoinvoice.FieldSupplierHrb)
	}
	if m.total_orders != nil {
		fields = append(fields, lieferandoinvoice.FieldTotalOrders)
	}
	if m.total_revenue != nil {
		fields = append(fields, lieferandoinvoice.FieldTotalRevenue)
	}
	if m.online_paid_orders != nil {
		fields = append(fields, lieferandoinvoice.FieldOnlinePaidOrders)
	}
	if m.online_paid_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldOnlinePaidAmount)
	}
	if m.cash_paid_orders != nil {
		fields = append(fields, lieferandoinvoice.FieldCashPaidOrders)
	}
	if m.cash_paid_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldCashPaidAmount)
	}
	if m.cash_service_fee_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldCashServiceFeeAmount)
	}
	if m.chargeback_orders != nil {
		fields = append(fields, lieferandoinvoice.FieldChargebackOrders)
	}
	if m.chargeback_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldChargebackAmount)
	}
	if m.stamp_card_orders != nil {
		fields = append(fields, lieferandoinvoice.FieldStampCardOrders)
	}
	if m.stamp_card_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldStampCardAmount)
	}
	if m.service_fee_rate != nil {
		fields = append(fields, lieferandoinvoice.FieldServiceFeeRate)
	}
	if m.service_fee_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldServiceFeeAmount)
	}
	if m.admin_fee_rate != nil {
		fields = append(fields, lieferandoinvoice.FieldAdminFeeRate)
	}
	if m.admin_fee_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldAdminFeeAmount)
	}
	if m.subtotal != nil {
		fields = append(fields, lieferandoinvoice.FieldSubtotal)
	}
	if m.tax_rate != nil {
		fields = append(fields, lieferandoinvoice.FieldTaxRate)
	}
	if m.tax_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldTaxAmount)
	}
	if m.paid_online_payments != nil {
		fields = append(fields, lieferandoinvoice.FieldPaidOnlinePayments)
	}
	if m.outstanding_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldOutstandingAmount)
	}
	if m.outstanding_balance != nil {
		fields = append(fields, lieferandoinvoice.FieldOutstandingBalance)
	}
	if m.payout_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldPayoutAmount)
	}
	if m.amount_due != nil {
		fields = append(fields, lieferandoinvoice.FieldAmountDue)
	}
	if m.confirmation_payment_date != nil {
		fields = append(fields, lieferandoinvoice.FieldConfirmationPaymentDate)
	}
	if m.confirmation_code_message != nil {
		fields = append(fields, lieferandoinvoice.FieldConfirmationCodeMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LieferandoInvoiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lieferandoinvoice.FieldInvoiceNumber:
		return m.InvoiceNumber()
	case lieferandoinvoice.FieldInvoiceDate:
		return m.InvoiceDate()
	case lieferandoinvoice.FieldPeriodStart:
		return m.PeriodStart()
	case lieferandoinvoice.FieldPeriodEnd:
		return m.PeriodEnd()
	case lieferandoinvoice.FieldSupplierName:
		return m.SupplierName()
	case lieferandoinvoice.FieldTotalAmount:
		return m.TotalAmount()
	case lieferandoinvoice.FieldStatus:
		return m.Status()
	case lieferandoinvoice.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case lieferandoinvoice.FieldNeedsReview:
		return m.NeedsReview()
	case lieferandoinvoice.FieldRawText:
		return m.RawText()
	case lieferandoinvoice.FieldSourceFilename:
		return m.SourceFilename()
	case lieferandoinvoice.FieldEmailSubject:
		return m.EmailSubject()
	case lieferandoinvoice.FieldEmailSender:
		return m.EmailSender()
	case lieferandoinvoice.FieldEmailDate:
		return m.EmailDate()
	case lieferandoinvoice.FieldCreatedAt:
		return m.CreatedAt()
	case lieferandoinvoice.FieldUpdatedAt:
		return m.UpdatedAt()
	case lieferandoinvoice.FieldRestaurantName:
		return m.RestaurantName()
	case lieferandoinvoice.FieldCustomerNumber:
		return m.CustomerNumber()
	case lieferandoinvoice.FieldCustomerCompany:
		return m.CustomerCompany()
	case lieferandoinvoice.FieldCustomerTaxNumber:
		return m.CustomerTaxNumber()
	case lieferandoinvoice.FieldCustomerBankIban:
		return m.CustomerBankIban()
	case lieferandoinvoice.FieldSupplierIban:
		return m.SupplierIban()
	case lieferandoinvoice.FieldSupplierVatID:
		return m.SupplierVatID()
	case lieferandoinvoice.FieldSupplierManagingDirector:
		return m.SupplierManagingDirector()
	case lieferandoinvoice.FieldSupplierCourtRegistry:
		return m.SupplierCourtRegistry()
	case lieferandoinvoice.FieldSupplierHrb:
		return m.SupplierHrb()
	case lieferandoinvoice.FieldTotalOrders:
		return m.TotalOrders()
	case lieferandoinvoice.FieldTotalRevenue:
		return m.TotalRevenue()
	case lieferandoinvoice.FieldOnlinePaidOrders:
		return m.OnlinePaidOrders()
	case lieferandoinvoice.FieldOnlinePaidAmount:
		return m.OnlinePaidAmount()
	case lieferandoinvoice.FieldCashPaidOrders:
		return m.CashPaidOrders()
	case lieferandoinvoice.FieldCashPaidAmount:
		return m.CashPaidAmount()
	case lieferandoinvoice.FieldCashServiceFeeAmount:
		return m.CashServiceFeeAmount()
	case lieferandoinvoice.FieldChargebackOrders:
		return m.ChargebackOrders()
	case lieferandoinvoice.FieldChargebackAmount:
		return m.ChargebackAmount()
	case lieferandoinvoice.FieldStampCardOrders:
		return m.StampCardOrders()
	case lieferandoinvoice.FieldStampCardAmount:
		return m.StampCardAmount()
	case lieferandoinvoice.FieldServiceFeeRate:
		return m.ServiceFeeRate()
	case lieferandoinvoice.FieldServiceFeeAmount:
		return m.ServiceFeeAmount()
	case lieferandoinvoice.FieldAdminFeeRate:
		return m.AdminFeeRate()
	case lieferandoinvoice.FieldAdminFeeAmount:
		return m.AdminFeeAmount()
	case lieferandoinvoice.FieldSubtotal:
		return m.Subtotal()
	case lieferandoinvoice.FieldTaxRate:
		return m.TaxRate()
	case lieferandoinvoice.FieldTaxAmount:
		return m.TaxAmount()
	case lieferandoinvoice.FieldPaidOnlinePayments:
		return m.PaidOnlinePayments()
	case lieferandoinvoice.FieldOutstandingAmount:
		return m.OutstandingAmount()
	case lieferandoinvoice.FieldOutstandingBalance:
		return m.OutstandingBalance()
	case lieferandoinvoice.FieldPayoutAmount:
		return m.PayoutAmount()
	case lieferandoinvoice.FieldAmountDue:
		return m.AmountDue()
	case lieferandoinvoice.FieldConfirmationPaymentDate:
		return m.ConfirmationPaymentDate()
	case lieferandoinvoice.FieldConfirmationCodeMessage:
		return m.ConfirmationCodeMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LieferandoInvoiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lieferandoinvoice.FieldInvoiceNumber:
		return m.OldInvoiceNumber(ctx)
	case lieferandoinvoice.FieldInvoiceDate:
		return m.OldInvoiceDate(ctx)
	case lieferandoinvoice.FieldPeriodStart:
		return m.OldPeriodStart(ctx)
	case lieferandoinvoice.FieldPeriodEnd:
		return m.OldPeriodEnd(ctx)
	case lieferandoinvoice.FieldSupplierName:
		return m.OldSupplierName(ctx)
	case lieferandoinvoice.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case lieferandoinvoice.FieldStatus:
		return m.OldStatus(ctx)
	case lieferandoinvoice.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case lieferandoinvoice.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case lieferandoinvoice.FieldRawText:
		return m.OldRawText(ctx)
	case lieferandoinvoice.FieldSourceFilename:
		return m.OldSourceFilename(ctx)
	case lieferandoinvoice.FieldEmailSubject:
		return m.OldEmailSubject(ctx)
	case lieferandoinvoice.FieldEmailSender:
		return m.OldEmailSender(ctx)
	case lieferandoinvoice.FieldEmailDate:
		return m.OldEmailDate(ctx)
	case lieferandoinvoice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lieferandoinvoice.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case lieferandoinvoice.FieldRestaurantName:
		return m.OldRestaurantName(ctx)
	case lieferandoinvoice.FieldCustomerNumber:
		return m.OldCustomerNumber(ctx)
	case lieferandoinvoice.FieldCustomerCompany:
		return m.OldCustomerCompany(ctx)
	case lieferandoinvoice.FieldCustomerTaxNumber:
		return m.OldCustomerTaxNumber(ctx)
	case lieferandoinvoice.FieldCustomerBankIban:
		return m.OldCustomerBankIban(ctx)
	case lieferandoinvoice.FieldSupplierIban:
		return m.OldSupplierIban(ctx)
	case lieferandoinvoice.FieldSupplierVatID:
		return m.OldSupplierVatID(ctx)
	case lieferandoinvoice.FieldSupplierManagingDirector:
		return m.OldSupplierManagingDirector(ctx)
	case lieferandoinvoice.FieldSupplierCourtRegistry:
		return m.OldSupplierCourtRegistry(ctx)
	case lieferandoinvoice.FieldSupplierHrb:
		return m.OldSupplierHrb(ctx)
	case lieferandoinvoice.FieldTotalOrders:
		return m.OldTotalOrders(ctx)
	case lieferandoinvoice.FieldTotalRevenue:
		return m.OldTotalRevenue(ctx)
	case lieferandoinvoice.FieldOnlinePaidOrders:
		return m.OldOnlinePaidOrders(ctx)
	case lieferandoinvoice.FieldOnlinePaidAmount:
		return m.OldOnlinePaidAmount(ctx)
	case lieferandoinvoice.FieldCashPaidOrders:
		return m.OldCashPaidOrders(ctx)
	case lieferandoinvoice.FieldCashPaidAmount:
		return m.OldCashPaidAmount(ctx)
	case lieferandoinvoice.FieldCashServiceFeeAmount:
		return m.OldCashServiceFeeAmount(ctx)
	case lieferandoinvoice.FieldChargebackOrders:
		return m.OldChargebackOrders(ctx)
	case lieferandoinvoice.FieldChargebackAmount:
		return m.OldChargebackAmount(ctx)
	case lieferandoinvoice.FieldStampCardOrders:
		return m.OldStampCardOrders(ctx)
	case lieferandoinvoice.FieldStampCardAmount:
		return m.OldStampCardAmount(ctx)
	case lieferandoinvoice.FieldServiceFeeRate:
		return m.OldServiceFeeRate(ctx)
	case lieferandoinvoice.FieldServiceFeeAmount:
		return m.OldServiceFeeAmount(ctx)
	case lieferandoinvoice.FieldAdminFeeRate:
		return m.OldAdminFeeRate(ctx)
	case lieferandoinvoice.FieldAdminFeeAmount:
		return m.OldAdminFeeAmount(ctx)
	case lieferandoinvoice.FieldSubtotal:
		return m.OldSubtotal(ctx)
	case lieferandoinvoice.FieldTaxRate:
		return m.OldTaxRate(ctx)
	case lieferandoinvoice.FieldTaxAmount:
		return m.OldTaxAmount(ctx)
	case lieferandoinvoice.FieldPaidOnlinePayments:
		return m.OldPaidOnlinePayments(ctx)
	case lieferandoinvoice.FieldOutstandingAmount:
		return m.OldOutstandingAmount(ctx)
	case lieferandoinvoice.FieldOutstandingBalance:
		return m.OldOutstandingBalance(ctx)
	case lieferandoinvoice.FieldPayoutAmount:
		return m.OldPayoutAmount(ctx)
	case lieferandoinvoice.FieldAmountDue:
		return m.OldAmountDue(ctx)
	case lieferandoinvoice.FieldConfirmationPaymentDate:
		return m.OldConfirmationPaymentDate(ctx)
	case lieferandoinvoice.FieldConfirmationCodeMessage:
		return m.OldConfirmationCodeMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LieferandoInvoice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LieferandoInvoiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lieferandoinvoice.FieldInvoiceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNumber(v)
		return nil
	case lieferandoinvoice.FieldInvoiceDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceDate(v)
		return nil
	case lieferandoinvoice.FieldPeriodStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodStart(v)
		return nil
	case lieferandoinvoice.FieldPeriodEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodEnd(v)
		return nil
	case lieferandoinvoice.FieldSupplierName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierName(v)
		return nil
	case lieferandoinvoice.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case lieferandoinvoice.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case lieferandoinvoice.FieldExtractionConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case lieferandoinvoice.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case lieferandoinvoice.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case lieferandoinvoice.FieldSourceFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFilename(v)
		return nil
	case lieferandoinvoice.FieldEmailSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailSubject(v)
		return nil
	case lieferandoinvoice.FieldEmailSender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailSender(v)
		return nil
	case lieferandoinvoice.FieldEmailDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailDate(v)
		return nil
	case lieferandoinvoice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lieferandoinvoice.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case lieferandoinvoice.FieldRestaurantName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRestaurantName(v)
		return nil
	case lieferandoinvoice.FieldCustomerNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerNumber(v)
		return nil
	case lieferandoinvoice.FieldCustomerCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerCompany(v)
		return nil
	case lieferandoinvoice.FieldCustomerTaxNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerTaxNumber(v)
		return nil
	case lieferandoinvoice.FieldCustomerBankIban:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerBankIban(v)
		return nil
	case lieferandoinvoice.FieldSupplierIban:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierIban(v)
		return nil
	case lieferandoinvoice.FieldSupplierVatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierVatID(v)
		return nil
	case lieferandoinvoice.FieldSupplierManagingDirector:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierManagingDirector(v)
		return nil
	case lieferandoinvoice.FieldSupplierCourtRegistry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierCourtRegistry(v)
		return nil
	case lieferandoinvoice.FieldSupplierHrb:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierHrb(v)
		return nil
	case lieferandoinvoice.FieldTotalOrders:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalOrders(v)
		return nil
	case lieferandoinvoice.FieldTotalRevenue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRevenue(v)
		return nil
	case lieferandoinvoice.FieldOnlinePaidOrders:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOnlinePaidOrders(v)
		return nil
	case lieferandoinvoice.FieldOnlinePaidAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOnlinePaidAmount(v)
		return nil
	case lieferandoinvoice.FieldCashPaidOrders:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCashPaidOrders(v)
		return nil
	case lieferandoinvoice.FieldCashPaidAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCashPaidAmount(v)
		return nil
	case lieferandoinvoice.FieldCashServiceFeeAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCashServiceFeeAmount(v)
		return nil
	case lieferandoinvoice.FieldChargebackOrders:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChargebackOrders(v)
		return nil
	case lieferandoinvoice.FieldChargebackAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChargebackAmount(v)
		return nil
	case lieferandoinvoice.FieldStampCardOrders:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStampCardOrders(v)
		return nil
	case lieferandoinvoice.FieldStampCardAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStampCardAmount(v)
		return nil
	case lieferandoinvoice.FieldServiceFeeRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceFeeRate(v)
		return nil
	case lieferandoinvoice.FieldServiceFeeAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceFeeAmount(v)
		return nil
	case lieferandoinvoice.FieldAdminFeeRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminFeeRate(v)
		return nil
	case lieferandoinvoice.FieldAdminFeeAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminFeeAmount(v)
		return nil
	case lieferandoinvoice.FieldSubtotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtotal(v)
		return nil
	case lieferandoinvoice.FieldTaxRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxRate(v)
		return nil
	case lieferandoinvoice.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxAmount(v)
		return nil
	case lieferandoinvoice.FieldPaidOnlinePayments:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaidOnlinePayments(v)
		return nil
	case lieferandoinvoice.FieldOutstandingAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutstandingAmount(v)
		return nil
	case lieferandoinvoice.FieldOutstandingBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutstandingBalance(v)
		return nil
	case lieferandoinvoice.FieldPayoutAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayoutAmount(v)
		return nil
	case lieferandoinvoice.FieldAmountDue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountDue(v)
		return nil
	case lieferandoinvoice.FieldConfirmationPaymentDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmationPaymentDate(v)
		return nil
	case lieferandoinvoice.FieldConfirmationCodeMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmationCodeMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LieferandoInvoice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LieferandoInvoiceMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldTotalAmount)
	}
	if m.addextraction_confidence != nil {
		fields = append(fields, lieferandoinvoice.FieldExtractionConfidence)
	}
	if m.addtotal_orders != nil {
		fields = append(fields, lieferandoinvoice.FieldTotalOrders)
	}
	if m.addtotal_revenue != nil {
		fields = append(fields, lieferandoinvoice.FieldTotalRevenue)
	}
	if m.addonline_paid_orders != nil {
		fields = append(fields, lieferandoinvoice.FieldOnlinePaidOrders)
	}
	if m.addonline_paid_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldOnlinePaidAmount)
	}
	if m.addcash_paid_orders != nil {
		fields = append(fields, lieferandoinvoice.FieldCashPaidOrders)
	}
	if m.addcash_paid_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldCashPaidAmount)
	}
	if m.addcash_service_fee_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldCashServiceFeeAmount)
	}
	if m.addchargeback_orders != nil {
		fields = append(fields, lieferandoinvoice.FieldChargebackOrders)
	}
	if m.addchargeback_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldChargebackAmount)
	}
	if m.addstamp_card_orders != nil {
		fields = append(fields, lieferandoinvoice.FieldStampCardOrders)
	}
	if m.addstamp_card_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldStampCardAmount)
	}
	if m.addservice_fee_rate != nil {
		fields = append(fields, lieferandoinvoice.FieldServiceFeeRate)
	}
	if m.addservice_fee_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldServiceFeeAmount)
	}
	if m.addadmin_fee_rate != nil {
		fields = append(fields, lieferandoinvoice.FieldAdminFeeRate)
	}
	if m.addadmin_fee_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldAdminFeeAmount)
	}
	if m.addsubtotal != nil {
		fields = append(fields, lieferandoinvoice.FieldSubtotal)
	}
	if m.addtax_rate != nil {
		fields = append(fields, lieferandoinvoice.FieldTaxRate)
	}
	if m.addtax_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldTaxAmount)
	}
	if m.addpaid_online_payments != nil {
		fields = append(fields, lieferandoinvoice.FieldPaidOnlinePayments)
	}
	if m.addoutstanding_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldOutstandingAmount)
	}
	if m.addoutstanding_balance != nil {
		fields = append(fields, lieferandoinvoice.FieldOutstandingBalance)
	}
	if m.addpayout_amount != nil {
		fields = append(fields, lieferandoinvoice.FieldPayoutAmount)
	}
	if m.addamount_due != nil {
		fields = append(fields, lieferandoinvoice.FieldAmountDue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LieferandoInvoiceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lieferandoinvoice.FieldTotalAmount:
		return m.AddedTotalAmount()
	case lieferandoinvoice.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	case lieferandoinvoice.FieldTotalOrders:
		return m.AddedTotalOrders()
	case lieferandoinvoice.FieldTotalRevenue:
		return m.AddedTotalRevenue()
	case lieferandoinvoice.FieldOnlinePaidOrders:
		return m.AddedOnlinePaidOrders()
	case lieferandoinvoice.FieldOnlinePaidAmount:
		return m.AddedOnlinePaidAmount()
	case lieferandoinvoice.FieldCashPaidOrders:
		return m.AddedCashPaidOrders()
	case lieferandoinvoice.FieldCashPaidAmount:
		return m.AddedCashPaidAmount()
	case lieferandoinvoice.FieldCashServiceFeeAmount:
		return m.AddedCashServiceFeeAmount()
	case lieferandoinvoice.FieldChargebackOrders:
		return m.AddedChargebackOrders()
	case lieferandoinvoice.FieldChargebackAmount:
		return m.AddedChargebackAmount()
	case lieferandoinvoice.FieldStampCardOrders:
		return m.AddedStampCardOrders()
	case lieferandoinvoice.FieldStampCardAmount:
		return m.AddedStampCardAmount()
	case lieferandoinvoice.FieldServiceFeeRate:
		return m.AddedServiceFeeRate()
	case lieferandoinvoice.FieldServiceFeeAmount:
		return m.AddedServiceFeeAmount()
	case lieferandoinvoice.FieldAdminFeeRate:
		return m.AddedAdminFeeRate()
	case lieferandoinvoice.FieldAdminFeeAmount:
		return m.AddedAdminFeeAmount()
	case lieferandoinvoice.FieldSubtotal:
		return m.AddedSubtotal()
	case lieferandoinvoice.FieldTaxRate:
		return m.AddedTaxRate()
	case lieferandoinvoice.FieldTaxAmount:
		return m.AddedTaxAmount()
	case lieferandoinvoice.FieldPaidOnlinePayments:
		return m.AddedPaidOnlinePayments()
	case lieferandoinvoice.FieldOutstandingAmount:
		return m.AddedOutstandingAmount()
	case lieferandoinvoice.FieldOutstandingBalance:
		return m.AddedOutstandingBalance()
	case lieferandoinvoice.FieldPayoutAmount:
		return m.AddedPayoutAmount()
	case lieferandoinvoice.FieldAmountDue:
		return m.AddedAmountDue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LieferandoInvoiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lieferandoinvoice.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	case lieferandoinvoice.FieldExtractionConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	case lieferandoinvoice.FieldTotalOrders:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalOrders(v)
		return nil
	case lieferandoinvoice.FieldTotalRevenue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalRevenue(v)
		return nil
	case lieferandoinvoice.FieldOnlinePaidOrders:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOnlinePaidOrders(v)
		return nil
	case lieferandoinvoice.FieldOnlinePaidAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOnlinePaidAmount(v)
		return nil
	case lieferandoinvoice.FieldCashPaidOrders:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCashPaidOrders(v)
		return nil
	case lieferandoinvoice.FieldCashPaidAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCashPaidAmount(v)
		return nil
	case lieferandoinvoice.FieldCashServiceFeeAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCashServiceFeeAmount(v)
		return nil
	case lieferandoinvoice.FieldChargebackOrders:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChargebackOrders(v)
		return nil
	case lieferandoinvoice.FieldChargebackAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChargebackAmount(v)
		return nil
	case lieferandoinvoice.FieldStampCardOrders:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStampCardOrders(v)
		return nil
	case lieferandoinvoice.FieldStampCardAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStampCardAmount(v)
		return nil
	case lieferandoinvoice.FieldServiceFeeRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddServiceFeeRate(v)
		return nil
	case lieferandoinvoice.FieldServiceFeeAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddServiceFeeAmount(v)
		return nil
	case lieferandoinvoice.FieldAdminFeeRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAdminFeeRate(v)
		return nil
	case lieferandoinvoice.FieldAdminFeeAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAdminFeeAmount(v)
		return nil
	case lieferandoinvoice.FieldSubtotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtotal(v)
		return nil
	case lieferandoinvoice.FieldTaxRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaxRate(v)
		return nil
	case lieferandoinvoice.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaxAmount(v)
		return nil
	case lieferandoinvoice.FieldPaidOnlinePayments:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPaidOnlinePayments(v)
		return nil
	case lieferandoinvoice.FieldOutstandingAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutstandingAmount(v)
		return nil
	case lieferandoinvoice.FieldOutstandingBalance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutstandingBalance(v)
		return nil
	case lieferandoinvoice.FieldPayoutAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPayoutAmount(v)
		return nil
	case lieferandoinvoice.FieldAmountDue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountDue(v)
		return nil
	}
	return fmt.Errorf("unknown LieferandoInvoice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LieferandoInvoiceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lieferandoinvoice.FieldInvoiceDate) {
		fields = append(fields, lieferandoinvoice.FieldInvoiceDate)
	}
	if m.FieldCleared(lieferandoinvoice.FieldPeriodStart) {
		fields = append(fields, lieferandoinvoice.FieldPeriodStart)
	}
	if m.FieldCleared(lieferandoinvoice.FieldPeriodEnd) {
		fields = append(fields, lieferandoinvoice.FieldPeriodEnd)
	}
	if m.FieldCleared(lieferandoinvoice.FieldSupplierName) {
		fields = append(fields, lieferandoinvoice.FieldSupplierName)
	}
	if m.FieldCleared(lieferandoinvoice.FieldTotalAmount) {
		fields = append(fields, lieferandoinvoice.FieldTotalAmount)
	}
	if m.FieldCleared(lieferandoinvoice.FieldRawText) {
		fields = append(fields, lieferandoinvoice.FieldRawText)
	}
	if m.FieldCleared(lieferandoinvoice.FieldSourceFilename) {
		fields = append(fields, lieferandoinvoice.FieldSourceFilename)
	}
	if m.FieldCleared(lieferandoinvoice.FieldEmailSubject) {
		fields = append(fields, lieferandoinvoice.FieldEmailSubject)
	}
	if m.FieldCleared(lieferandoinvoice.FieldEmailSender) {
		fields = append(fields, lieferandoinvoice.FieldEmailSender)
	}
	if m.FieldCleared(lieferandoinvoice.FieldEmailDate) {
		fields = append(fields, lieferandoinvoice.FieldEmailDate)
	}
	if m.FieldCleared(lieferandoinvoice.FieldRestaurantName) {
		fields = append(fields, lieferandoinvoice.FieldRestaurantName)
	}
	if m.FieldCleared(lieferandoinvoice.FieldCustomerNumber) {
		fields = append(fields, lieferandoinvoice.FieldCustomerNumber)
	}
	if m.FieldCleared(lieferandoinvoice.FieldCustomerCompany) {
		fields = append(fields, lieferandoinvoice.FieldCustomerCompany)
	}
	if m.FieldCleared(lieferandoinvoice.FieldCustomerTaxNumber) {
		fields = append(fields, lieferandoinvoice.FieldCustomerTaxNumber)
	}
	if m.FieldCleared(lieferandoinvoice.FieldCustomerBankIban) {
		fields = append(fields, lieferandoinvoice.FieldCustomerBankIban)
	}
	if m.FieldCleared(lieferandoinvoice.FieldSupplierIban) {
		fields = append(fields, lieferandoinvoice.FieldSupplierIban)
	}
	if m.FieldCleared(lieferandoinvoice.FieldSupplierVatID) {
		fields = append(fields, lieferandoinvoice.FieldSupplierVatID)
	}
	if m.FieldCleared(lieferandoinvoice.FieldSupplierManagingDirector) {
		fields = append(fields, lieferandoinvoice.FieldSupplierManagingDirector)
	}
	if m.FieldCleared(lieferandoinvoice.FieldSupplierCourtRegistry) {
		fields = append(fields, lieferandoinvoice.FieldSupplierCourtRegistry)
	}
	if m.FieldCleared(lieferandoinvoice.FieldSupplierHrb) {
		fields = append(fields, lieferandoinvoice.FieldSupplierHrb)
	}
	if m.FieldCleared(lieferandoinvoice.FieldTotalOrders) {
		fields = append(fields, lieferandoinvoice.FieldTotalOrders)
	}
	if m.FieldCleared(lieferandoinvoice.FieldTotalRevenue) {
		fields = append(fields, lieferandoinvoice.FieldTotalRevenue)
	}
	if m.FieldCleared(lieferandoinvoice.FieldOnlinePaidOrders) {
		fields = append(fields, lieferandoinvoice.FieldOnlinePaidOrders)
	}
	if m.FieldCleared(lieferandoinvoice.FieldOnlinePaidAmount) {
		fields = append(fields, lieferandoinvoice.FieldOnlinePaidAmount)
	}
	if m.FieldCleared(lieferandoinvoice.FieldCashPaidOrders) {
		fields = append(fields, lieferandoinvoice.FieldCashPaidOrders)
	}
	if m.FieldCleared(lieferandoinvoice.FieldCashPaidAmount) {
		fields = append(fields, lieferandoinvoice.FieldCashPaidAmount)
	}
	if m.FieldCleared(lieferandoinvoice.FieldCashServiceFeeAmount) {
		fields = append(fields, lieferandoinvoice.FieldCashServiceFeeAmount)
	}
	if m.FieldCleared(lieferandoinvoice.FieldChargebackOrders) {
		fields = append(fields, lieferandoinvoice.FieldChargebackOrders)
	}
	if m.FieldCleared(lieferandoinvoice.FieldChargebackAmount) {
		fields = append(fields, lieferandoinvoice.FieldChargebackAmount)
	}
	if m.FieldCleared(lieferandoinvoice.FieldStampCardOrders) {
		fields = append(fields, lieferandoinvoice.FieldStampCardOrders)
	}
	if m.FieldCleared(lieferandoinvoice.FieldStampCardAmount) {
		fields = append(fields, lieferandoinvoice.FieldStampCardAmount)
	}
	if m.FieldCleared(lieferandoinvoice.FieldServiceFeeRate) {
		fields = append(fields, lieferandoinvoice.FieldServiceFeeRate)
	}
	if m.FieldCleared(lieferandoinvoice.FieldServiceFeeAmount) {
		fields = append(fields, lieferandoinvoice.FieldServiceFeeAmount)
	}
	if m.FieldCleared(lieferandoinvoice.FieldAdminFeeRate) {
		fields = append(fields, lieferandoinvoice.FieldAdminFeeRate)
	}
	if m.FieldCleared(lieferandoinvoice.FieldAdminFeeAmount) {
		fields = append(fields, lieferandoinvoice.FieldAdminFeeAmount)
	}
	if m.FieldCleared(lieferandoinvoice.FieldSubtotal) {
		fields = append(fields, lieferandoinvoice.FieldSubtotal)
	}
	if m.FieldCleared(lieferandoinvoice.FieldTaxRate) {
		fields = append(fields, lieferandoinvoice.FieldTaxRate)
	}
	if m.FieldCleared(lieferandoinvoice.FieldTaxAmount) {
		fields = append(fields, lieferandoinvoice.FieldTaxAmount)
	}
	if m.FieldCleared(lieferandoinvoice.FieldPaidOnlinePayments) {
		fields = append(fields, lieferandoinvoice.FieldPaidOnlinePayments)
	}
	if m.FieldCleared(lieferandoinvoice.FieldOutstandingAmount) {
		fields = append(fields, lieferandoinvoice.FieldOutstandingAmount)
	}
	if m.FieldCleared(lieferandoinvoice.FieldOutstandingBalance) {
		fields = append(fields, lieferandoinvoice.FieldOutstandingBalance)
	}
	if m.FieldCleared(lieferandoinvoice.FieldPayoutAmount) {
		fields = append(fields, lieferandoinvoice.FieldPayoutAmount)
	}
	if m.FieldCleared(lieferandoinvoice.FieldAmountDue) {
		fields = append(fields, lieferandoinvoice.FieldAmountDue)
	}
	if m.FieldCleared(lieferandoinvoice.FieldConfirmationPaymentDate) {
		fields = append(fields, lieferandoinvoice.FieldConfirmationPaymentDate)
	}
	if m.FieldCleared(lieferandoinvoice.FieldConfirmationCodeMessage) {
		fields = append(fields, lieferandoinvoice.FieldConfirmationCodeMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LieferandoInvoiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LieferandoInvoiceMutation) ClearField(name string) error {
	switch name {
	case lieferandoinvoice.FieldInvoiceDate:
		m.ClearInvoiceDate()
		return nil
	case lieferandoinvoice.FieldPeriodStart:
		m.ClearPeriodStart()
		return nil
	case lieferandoinvoice.FieldPeriodEnd:
		m.ClearPeriodEnd()
		return nil
	case lieferandoinvoice.FieldSupplierName:
		m.ClearSupplierName()
		return nil
	case lieferandoinvoice.FieldTotalAmount:
		m.ClearTotalAmount()
		return nil
	case lieferandoinvoice.FieldRawText:
		m.ClearRawText()
		return nil
	case lieferandoinvoice.FieldSourceFilename:
		m.ClearSourceFilename()
		return nil
	case lieferandoinvoice.FieldEmailSubject:
		m.ClearEmailSubject()
		return nil
	case lieferandoinvoice.FieldEmailSender:
		m.ClearEmailSender()
		return nil
	case lieferandoinvoice.FieldEmailDate:
		m.ClearEmailDate()
		return nil
	case lieferandoinvoice.FieldRestaurantName:
		m.ClearRestaurantName()
		return nil
	case lieferandoinvoice.FieldCustomerNumber:
		m.ClearCustomerNumber()
		return nil
	case lieferandoinvoice.FieldCustomerCompany:
		m.ClearCustomerCompany()
		return nil
	case lieferandoinvoice.FieldCustomerTaxNumber:
		m.ClearCustomerTaxNumber()
		return nil
	case lieferandoinvoice.FieldCustomerBankIban:
		m.ClearCustomerBankIban()
		return nil
	case lieferandoinvoice.FieldSupplierIban:
		m.ClearSupplierIban()
		return nil
	case lieferandoinvoice.FieldSupplierVatID:
		m.ClearSupplierVatID()
		return nil
	case lieferandoinvoice.FieldSupplierManagingDirector:
		m.ClearSupplierManagingDirector()
		return nil
	case lieferandoinvoice.FieldSupplierCourtRegistry:
		m.ClearSupplierCourtRegistry()
		return nil
	case lieferandoinvoice.FieldSupplierHrb:
		m.ClearSupplierHrb()
		return nil
	case lieferandoinvoice.FieldTotalOrders:
		m.ClearTotalOrders()
		return nil
	case lieferandoinvoice.FieldTotalRevenue:
		m.ClearTotalRevenue()
		return nil
	case lieferandoinvoice.FieldOnlinePaidOrders:
		m.ClearOnlinePaidOrders()
		return nil
	case lieferandoinvoice.FieldOnlinePaidAmount:
		m.ClearOnlinePaidAmount()
		return nil
	case lieferandoinvoice.FieldCashPaidOrders:
		m.ClearCashPaidOrders()
		return nil
	case lieferandoinvoice.FieldCashPaidAmount:
		m.ClearCashPaidAmount()
		return nil
	case lieferandoinvoice.FieldCashServiceFeeAmount:
		m.ClearCashServiceFeeAmount()
		return nil
	case lieferandoinvoice.FieldChargebackOrders:
		m.ClearChargebackOrders()
		return nil
	case lieferandoinvoice.FieldChargebackAmount:
		m.ClearChargebackAmount()
		return nil
	case lieferandoinvoice.FieldStampCardOrders:
		m.ClearStampCardOrders()
		return nil
	case lieferandoinvoice.FieldStampCardAmount:
		m.ClearStampCardAmount()
		return nil
	case lieferandoinvoice.FieldServiceFeeRate:
		m.ClearServiceFeeRate()
		return nil
	case lieferandoinvoice.FieldServiceFeeAmount:
		m.ClearServiceFeeAmount()
		return nil
	case lieferandoinvoice.FieldAdminFeeRate:
		m.ClearAdminFeeRate()
		return nil
	case lieferandoinvoice.FieldAdminFeeAmount:
		m.ClearAdminFeeAmount()
		return nil
	case lieferandoinvoice.FieldSubtotal:
		m.ClearSubtotal()
		return nil
	case lieferandoinvoice.FieldTaxRate:
		m.ClearTaxRate()
		return nil
	case lieferandoinvoice.FieldTaxAmount:
		m.ClearTaxAmount()
		return nil
	case lieferandoinvoice.FieldPaidOnlinePayments:
		m.ClearPaidOnlinePayments()
		return nil
	case lieferandoinvoice.FieldOutstandingAmount:
		m.ClearOutstandingAmount()
		return nil
	case lieferandoinvoice.FieldOutstandingBalance:
		m.ClearOutstandingBalance()
		return nil
	case lieferandoinvoice.FieldPayoutAmount:
		m.ClearPayoutAmount()
		return nil
	case lieferandoinvoice.FieldAmountDue:
		m.ClearAmountDue()
		return nil
	case lieferandoinvoice.FieldConfirmationPaymentDate:
		m.ClearConfirmationPaymentDate()
		return nil
	case lieferandoinvoice.FieldConfirmationCodeMessage:
		m.ClearConfirmationCodeMessage()
		return nil
	}
	return fmt.Errorf("unknown LieferandoInvoice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LieferandoInvoiceMutation) ResetField(name string) error {
	switch name {
	case lieferandoinvoice.FieldInvoiceNumber:
		m.ResetInvoiceNumber()
		return nil
	case lieferandoinvoice.FieldInvoiceDate:
		m.ResetInvoiceDate()
		return nil
	case lieferandoinvoice.FieldPeriodStart:
		m.ResetPeriodStart()
		return nil
	case lieferandoinvoice.FieldPeriodEnd:
		m.ResetPeriodEnd()
		return nil
	case lieferandoinvoice.FieldSupplierName:
		m.ResetSupplierName()
		return nil
	case lieferandoinvoice.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case lieferandoinvoice.FieldStatus:
		m.ResetStatus()
		return nil
	case lieferandoinvoice.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case lieferandoinvoice.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case lieferandoinvoice.FieldRawText:
		m.ResetRawText()
		return nil
	case lieferandoinvoice.FieldSourceFilename:
		m.ResetSourceFilename()
		return nil
	case lieferandoinvoice.FieldEmailSubject:
		m.ResetEmailSubject()
		return nil
	case lieferandoinvoice.FieldEmailSender:
		m.ResetEmailSender()
		return nil
	case lieferandoinvoice.FieldEmailDate:
		m.ResetEmailDate()
		return nil
	case lieferandoinvoice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lieferandoinvoice.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case lieferandoinvoice.FieldRestaurantName:
		m.ResetRestaurantName()
		return nil
	case lieferandoinvoice.FieldCustomerNumber:
		m.ResetCustomerNumber()
		return nil
	case lieferandoinvoice.FieldCustomerCompany:
		m.ResetCustomerCompany()
		return nil
	case lieferandoinvoice.FieldCustomerTaxNumber:
		m.ResetCustomerTaxNumber()
		return nil
	case lieferandoinvoice.FieldCustomerBankIban:
		m.ResetCustomerBankIban()
		return nil
	case lieferandoinvoice.FieldSupplierIban:
		m.ResetSupplierIban()
		return nil
	case lieferandoinvoice.FieldSupplierVatID:
		m.ResetSupplierVatID()
		return nil
	case lieferandoinvoice.FieldSupplierManagingDirector:
		m.ResetSupplierManagingDirector()
		return nil
	case lieferandoinvoice.FieldSupplierCourtRegistry:
		m.ResetSupplierCourtRegistry()
		return nil
	case lieferandoinvoice.FieldSupplierHrb:
		m.ResetSupplierHrb()
		return nil
	case lieferandoinvoice.FieldTotalOrders:
		m.ResetTotalOrders()
		return nil
	case lieferandoinvoice.FieldTotalRevenue:
		m.ResetTotalRevenue()
		return nil
	case lieferandoinvoice.FieldOnlinePaidOrders:
		m.ResetOnlinePaidOrders()
		return nil
	case lieferandoinvoice.FieldOnlinePaidAmount:
		m.ResetOnlinePaidAmount()
		return nil
	case lieferandoinvoice.FieldCashPaidOrders:
		m.ResetCashPaidOrders()
		return nil
	case lieferandoinvoice.FieldCashPaidAmount:
		m.ResetCashPaidAmount()
		return nil
	case lieferandoinvoice.FieldCashServiceFeeAmount:
		m.ResetCashServiceFeeAmount()
		return nil
	case lieferandoinvoice.FieldChargebackOrders:
		m.ResetChargebackOrders()
		return nil
	case lieferandoinvoice.FieldChargebackAmount:
		m.ResetChargebackAmount()
		return nil
	case lieferandoinvoice.FieldStampCardOrders:
		m.ResetStampCardOrders()
		return nil
	case lieferandoinvoice.FieldStampCardAmount:
		m.ResetStampCardAmount()
		return nil
	case lieferandoinvoice.FieldServiceFeeRate:
		m.ResetServiceFeeRate()
		return nil
	case lieferandoinvoice.FieldServiceFeeAmount:
		m.ResetServiceFeeAmount()
		return nil
	case lieferandoinvoice.FieldAdminFeeRate:
		m.ResetAdminFeeRate()
		return nil
	case lieferandoinvoice.FieldAdminFeeAmount:
		m.ResetAdminFeeAmount()
		return nil
	case lieferandoinvoice.FieldSubtotal:
		m.ResetSubtotal()
		return nil
	case lieferandoinvoice.FieldTaxRate:
		m.ResetTaxRate()
		return nil
	case lieferandoinvoice.FieldTaxAmount:
		m.ResetTaxAmount()
		return nil
	case lieferandoinvoice.FieldPaidOnlinePayments:
		m.ResetPaidOnlinePayments()
		return nil
	case lieferandoinvoice.FieldOutstandingAmount:
		m.ResetOutstandingAmount()
		return nil
	case lieferandoinvoice.FieldOutstandingBalance:
		m.ResetOutstandingBalance()
		return nil
	case lieferandoinvoice.FieldPayoutAmount:
		m.ResetPayoutAmount()
		return nil
	case lieferandoinvoice.FieldAmountDue:
		m.ResetAmountDue()
		return nil
	case lieferandoinvoice.FieldConfirmationPaymentDate:
		m.ResetConfirmationPaymentDate()
		return nil
	case lieferandoinvoice.FieldConfirmationCodeMessage:
		m.ResetConfirmationCodeMessage()
		return nil
	}
	return fmt.Errorf("unknown LieferandoInvoice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LieferandoInvoiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.order_items != nil {
		edges = append(edges, lieferandoinvoice.EdgeOrderItems)
	}
	if m.tip_items != nil {
		edges = append(edges, lieferandoinvoice.EdgeTipItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LieferandoInvoiceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lieferandoinvoice.EdgeOrderItems:
		ids := make([]ent.Value, 0, len(m.order_items))
		for id := range m.order_items {
			ids = append(ids, id)
		}
		return ids
	case lieferandoinvoice.EdgeTipItems:
		ids := make([]ent.Value, 0, len(m.tip_items))
		for id := range m.tip_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LieferandoInvoiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedorder_items != nil {
		edges = append(edges, lieferandoinvoice.EdgeOrderItems)
	}
	if m.removedtip_items != nil {
		edges = append(edges, lieferandoinvoice.EdgeTipItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LieferandoInvoiceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case lieferandoinvoice.EdgeOrderItems:
		ids := make([]ent.Value, 0, len(m.removedorder_items))
		for id := range m.removedorder_items {
			ids = append(ids, id)
		}
		return ids
	case lieferandoinvoice.EdgeTipItems:
		ids := make([]ent.Value, 0, len(m.removedtip_items))
		for id := range m.removedtip_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LieferandoInvoiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedorder_items {
		edges = append(edges, lieferandoinvoice.EdgeOrderItems)
	}
	if m.clearedtip_items {
		edges = append(edges, lieferandoinvoice.EdgeTipItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LieferandoInvoiceMutation) EdgeCleared(name string) bool {
	switch name {
	case lieferandoinvoice.EdgeOrderItems:
		return m.clearedorder_items
	case lieferandoinvoice.EdgeTipItems:
		return m.clearedtip_items
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LieferandoInvoiceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown LieferandoInvoice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LieferandoInvoiceMutation) ResetEdge(name string) error {
	switch name {
	case lieferandoinvoice.EdgeOrderItems:
		m.ResetOrderItems()
		return nil
	case lieferandoinvoice.EdgeTipItems:
		m.ResetTipItems()
		return nil
	}
	return fmt.Errorf("unknown LieferandoInvoice edge %s", name)
}

// OrderItemMutation represents an operation that mutates the OrderItem nodes in the graph.
type OrderItemMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	ordered_at     *time.Time
	order_code     *string
	amount         *float64
	addamount      *float64
	online         *bool
	clearedFields  map[string]struct{}
	invoice        *uuid.UUID
	clearedinvoice bool
	done           bool
	oldValue       func(context.Context) (*OrderItem, error)
	predicates     []predicate.OrderItem
}

var _ ent.Mutation = (*OrderItemMutation)(nil)

// orderitemOption allows management of the mutation configuration using functional options.
type orderitemOption func(*OrderItemMutation)

// newOrderItemMutation creates new mutation for the OrderItem entity.
func newOrderItemMutation(c config, op Op, opts ...orderitemOption) *OrderItemMutation {
	m := &OrderItemMutation{
		config:        c,
		op:            op,
		typ:           TypeOrderItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderItemID sets the ID field of the mutation.
func withOrderItemID(id uuid.UUID) orderitemOption {
	return func(m *OrderItemMutation) {
		var (
			err   error
			once  sync.Once
			value *OrderItem
		)
		m.oldValue = func(ctx context.Context) (*OrderItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrderItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrderItem sets the old OrderItem of the mutation.
func withOrderItem(node *OrderItem) orderitemOption {
	return func(m *OrderItemMutation) {
		m.oldValue = func(context.Context) (*OrderItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrderItem entities.
func (m *OrderItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrderItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrderedAt sets the "ordered_at" field.
func (m *OrderItemMutation) SetOrderedAt(t time.Time) {
	m.ordered_at = &t
}

// OrderedAt returns the value of the "ordered_at" field in the mutation.
func (m *OrderItemMutation) OrderedAt() (r time.Time, exists bool) {
	v := m.ordered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderedAt returns the old "ordered_at" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldOrderedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderedAt: %w", err)
	}
	return oldValue.OrderedAt, nil
}

// ResetOrderedAt resets all changes to the "ordered_at" field.
func (m *OrderItemMutation) ResetOrderedAt() {
	m.ordered_at = nil
}

// SetOrderCode sets the "order_code" field.
func (m *OrderItemMutation) SetOrderCode(s string) {
	m.order_code = &s
}

// OrderCode returns the value of the "order_code" field in the mutation.
func (m *OrderItemMutation) OrderCode() (r string, exists bool) {
	v := m.order_code
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderCode returns the old "order_code" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldOrderCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderCode: %w", err)
	}
	return oldValue.OrderCode, nil
}

// ResetOrderCode resets all changes to the "order_code" field.
func (m *OrderItemMutation) ResetOrderCode() {
	m.order_code = nil
}

// SetAmount sets the "amount" field.
func (m *OrderItemMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *OrderItemMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *OrderItemMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *OrderItemMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *OrderItemMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetOnline sets the "online" field.
func (m *OrderItemMutation) SetOnline(b bool) {
	m.online = &b
}

// Online returns the value of the "online" field in the mutation.
func (m *OrderItemMutation) Online() (r bool, exists bool) {
	v := m.online
	if v == nil {
		return
	}
	return *v, true
}

// OldOnline returns the old "online" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldOnline(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOnline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOnline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOnline: %w", err)
	}
	return oldValue.Online, nil
}

// ResetOnline resets all changes to the "online" field.
func (m *OrderItemMutation) ResetOnline() {
	m.online = nil
}

// SetInvoiceID sets the "invoice" edge to the LieferandoInvoice entity by id.
func (m *OrderItemMutation) SetInvoiceID(id uuid.UUID) {
	m.invoice = &id
}

// ClearInvoice clears the "invoice" edge to the LieferandoInvoice entity.
func (m *OrderItemMutation) ClearInvoice() {
	m.clearedinvoice = true
}

// InvoiceCleared reports if the "invoice" edge to the LieferandoInvoice entity was cleared.
func (m *OrderItemMutation) InvoiceCleared() bool {
	return m.clearedinvoice
}

// InvoiceID returns the "invoice" edge ID in the mutation.
func (m *OrderItemMutation) InvoiceID() (id uuid.UUID, exists bool) {
	if m.invoice != nil {
		return *m.invoice, true
	}
	return
}

// InvoiceIDs returns the "invoice" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvoiceID instead. It exists only for internal usage by the builders.
func (m *OrderItemMutation) InvoiceIDs() (ids []uuid.UUID) {
	if id := m.invoice; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvoice resets all changes to the "invoice" edge.
func (m *OrderItemMutation) ResetInvoice() {
	m.invoice = nil
	m.clearedinvoice = false
}

// Where appends a list predicates to the OrderItemMutation builder.
func (m *OrderItemMutation) Where(ps ...predicate.OrderItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrderItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrderItem).
func (m *OrderItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderItemMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.ordered_at != nil {
		fields = append(fields, orderitem.FieldOrderedAt)
	}
	if m.order_code != nil {
		fields = append(fields, orderitem.FieldOrderCode)
	}
	if m.amount != nil {
		fields = append(fields, orderitem.FieldAmount)
	}
	if m.online != nil {
		fields = append(fields, orderitem.FieldOnline)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orderitem.FieldOrderedAt:
		return m.OrderedAt()
	case orderitem.FieldOrderCode:
		return m.OrderCode()
	case orderitem.FieldAmount:
		return m.Amount()
	case orderitem.FieldOnline:
		return m.Online()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orderitem.FieldOrderedAt:
		return m.OldOrderedAt(ctx)
	case orderitem.FieldOrderCode:
		return m.OldOrderCode(ctx)
	case orderitem.FieldAmount:
		return m.OldAmount(ctx)
	case orderitem.FieldOnline:
		return m.OldOnline(ctx)
	}
	return nil, fmt.Errorf("unknown OrderItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orderitem.FieldOrderedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderedAt(v)
		return nil
	case orderitem.FieldOrderCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderCode(v)
		return nil
	case orderitem.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case orderitem.FieldOnline:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOnline(v)
		return nil
	}
	return fmt.Errorf("unknown OrderItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderItemMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, orderitem.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case orderitem.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case orderitem.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown OrderItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OrderItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderItemMutation) ResetField(name string) error {
	switch name {
	case orderitem.FieldOrderedAt:
		m.ResetOrderedAt()
		return nil
	case orderitem.FieldOrderCode:
		m.ResetOrderCode()
		return nil
	case orderitem.FieldAmount:
		m.ResetAmount()
		return nil
	case orderitem.FieldOnline:
		m.ResetOnline()
		return nil
	}
	return fmt.Errorf("unknown OrderItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.invoice != nil {
		edges = append(edges, orderitem.EdgeInvoice)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case orderitem.EdgeInvoice:
		if id := m.invoice; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvoice {
		edges = append(edges, orderitem.EdgeInvoice)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderItemMutation) EdgeCleared(name string) bool {
	switch name {
	case orderitem.EdgeInvoice:
		return m.clearedinvoice
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderItemMutation) ClearEdge(name string) error {
	switch name {
	case orderitem.EdgeInvoice:
		m.ClearInvoice()
		return nil
	}
	return fmt.Errorf("unknown OrderItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderItemMutation) ResetEdge(name string) error {
	switch name {
	case orderitem.EdgeInvoice:
		m.ResetInvoice()
		return nil
	}
	return fmt.Errorf("unknown OrderItem edge %s", name)
}

// TipItemMutation represents an operation that mutates the TipItem nodes in the graph.
type TipItemMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	tipped_at      *time.Time
	order_code     *string
	amount         *float64
	addamount      *float64
	clearedFields  map[string]struct{}
	invoice        *uuid.UUID
	clearedinvoice bool
	done           bool
	oldValue       func(context.Context) (*TipItem, error)
	predicates     []predicate.TipItem
}

var _ ent.Mutation = (*TipItemMutation)(nil)

// tipitemOption allows management of the mutation configuration using functional options.
type tipitemOption func(*TipItemMutation)

// newTipItemMutation creates new mutation for the TipItem entity.
func newTipItemMutation(c config, op Op, opts ...tipitemOption) *TipItemMutation {
	m := &TipItemMutation{
		config:        c,
		op:            op,
		typ:           TypeTipItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTipItemID sets the ID field of the mutation.
func withTipItemID(id uuid.UUID) tipitemOption {
	return func(m *TipItemMutation) {
		var (
			err   error
			once  sync.Once
			value *TipItem
		)
		m.oldValue = func(ctx context.Context) (*TipItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TipItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTipItem sets the old TipItem of the mutation.
func withTipItem(node *TipItem) tipitemOption {
	return func(m *TipItemMutation) {
		m.oldValue = func(context.Context) (*TipItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TipItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TipItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TipItem entities.
func (m *TipItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TipItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TipItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TipItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTippedAt sets the "tipped_at" field.
func (m *TipItemMutation) SetTippedAt(t time.Time) {
	m.tipped_at = &t
}

// TippedAt returns the value of the "tipped_at" field in the mutation.
func (m *TipItemMutation) TippedAt() (r time.Time, exists bool) {
	v := m.tipped_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTippedAt returns the old "tipped_at" field's value of the TipItem entity.
// If the TipItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipItemMutation) OldTippedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTippedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTippedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTippedAt: %w", err)
	}
	return oldValue.TippedAt, nil
}

// ResetTippedAt resets all changes to the "tipped_at" field.
func (m *TipItemMutation) ResetTippedAt() {
	m.tipped_at = nil
}

// SetOrderCode sets the "order_code" field.
func (m *TipItemMutation) SetOrderCode(s string) {
	m.order_code = &s
}

// OrderCode returns the value of the "order_code" field in the mutation.
func (m *TipItemMutation) OrderCode() (r string, exists bool) {
	v := m.order_code
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderCode returns the old "order_code" field's value of the TipItem entity.
// If the TipItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipItemMutation) OldOrderCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderCode: %w", err)
	}
	return oldValue.OrderCode, nil
}

// ResetOrderCode resets all changes to the "order_code" field.
func (m *TipItemMutation) ResetOrderCode() {
	m.order_code = nil
}

// SetAmount sets the "amount" field.
func (m *TipItemMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *TipItemMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the TipItem entity.
// If the TipItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipItemMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *TipItemMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *TipItemMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *TipItemMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetInvoiceID sets the "invoice" edge to the LieferandoInvoice entity by id.
func (m *TipItemMutation) SetInvoiceID(id uuid.UUID) {
	m.invoice = &id
}

// ClearInvoice clears the "invoice" edge to the LieferandoInvoice entity.
func (m *TipItemMutation) ClearInvoice() {
	m.clearedinvoice = true
}

// InvoiceCleared reports if the "invoice" edge to the LieferandoInvoice entity was cleared.
func (m *TipItemMutation) InvoiceCleared() bool {
	return m.clearedinvoice
}

// InvoiceID returns the "invoice" edge ID in the mutation.
func (m *TipItemMutation) InvoiceID() (id uuid.UUID, exists bool) {
	if m.invoice != nil {
		return *m.invoice, true
	}
	return
}

// InvoiceIDs returns the "invoice" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvoiceID instead. It exists only for internal usage by the builders.
func (m *TipItemMutation) InvoiceIDs() (ids []uuid.UUID) {
	if id := m.invoice; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvoice resets all changes to the "invoice" edge.
func (m *TipItemMutation) ResetInvoice() {
	m.invoice = nil
	m.clearedinvoice = false
}

// Where appends a list predicates to the TipItemMutation builder.
func (m *TipItemMutation) Where(ps ...predicate.TipItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TipItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TipItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TipItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TipItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TipItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TipItem).
func (m *TipItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TipItemMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.tipped_at != nil {
		fields = append(fields, tipitem.FieldTippedAt)
	}
	if m.order_code != nil {
		fields = append(fields, tipitem.FieldOrderCode)
	}
	if m.amount != nil {
		fields = append(fields, tipitem.FieldAmount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TipItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tipitem.FieldTippedAt:
		return m.TippedAt()
	case tipitem.FieldOrderCode:
		return m.OrderCode()
	case tipitem.FieldAmount:
		return m.Amount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TipItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tipitem.FieldTippedAt:
		return m.OldTippedAt(ctx)
	case tipitem.FieldOrderCode:
		return m.OldOrderCode(ctx)
	case tipitem.FieldAmount:
		return m.OldAmount(ctx)
	}
	return nil, fmt.Errorf("unknown TipItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TipItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tipitem.FieldTippedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTippedAt(v)
		return nil
	case tipitem.FieldOrderCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderCode(v)
		return nil
	case tipitem.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	}
	return fmt.Errorf("unknown TipItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TipItemMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, tipitem.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TipItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tipitem.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TipItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tipitem.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown TipItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TipItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TipItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TipItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TipItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TipItemMutation) ResetField(name string) error {
	switch name {
	case tipitem.FieldTippedAt:
		m.ResetTippedAt()
		return nil
	case tipitem.FieldOrderCode:
		m.ResetOrderCode()
		return nil
	case tipitem.FieldAmount:
		m.ResetAmount()
		return nil
	}
	return fmt.Errorf("unknown TipItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TipItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.invoice != nil {
		edges = append(edges, tipitem.EdgeInvoice)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TipItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tipitem.EdgeInvoice:
		if id := m.invoice; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TipItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TipItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TipItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvoice {
		edges = append(edges, tipitem.EdgeInvoice)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TipItemMutation) EdgeCleared(name string) bool {
	switch name {
	case tipitem.EdgeInvoice:
		return m.clearedinvoice
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TipItemMutation) ClearEdge(name string) error {
	switch name {
	case tipitem.EdgeInvoice:
		m.ClearInvoice()
		return nil
	}
	return fmt.Errorf("unknown TipItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TipItemMutation) ResetEdge(name string) error {
	switch name {
	case tipitem.EdgeInvoice:
		m.ResetInvoice()
		return nil
	}
	return fmt.Errorf("unknown TipItem edge %s", name)
}

// UberEatsInvoiceMutation represents an operation that mutates the UberEatsInvoice nodes in the graph.
type UberEatsInvoiceMutation struct {
	config
	op                               Op
	typ                              string
	id                               *uuid.UUID
	invoice_number                   *string
	invoice_date                     *time.Time
	period_start                     *time.Time
	period_end                       *time.Time
	supplier_name                    *string
	total_amount                     *float64
	addtotal_amount                  *float64
	status                           *string
	extraction_confidence            *int
	addextraction_confidence         *int
	needs_review                     *bool
	raw_text                         *string
	source_filename                  *string
	email_subject                    *string
	email_sender                     *string
	email_date                       *time.Time
	created_at                       *time.Time
	updated_at                       *time.Time
	tax_date                         *time.Time
	customer_company                 *string
	restaurant_name                  *string
	restaurant_address               *string
	business_id                      *string
	customer_vat_id                  *string
	tax_number                       *string
	total_orders                     *int
	addtotal_orders                  *int
	total_order_value                *float64
	addtotal_order_value             *float64
	gross_revenue_after_discounts    *float64
	addgross_revenue_after_discounts *float64
	commission_own_delivery          *float64
	addcommission_own_delivery       *float64
	commission_pickup                *float64
	addcommission_pickup             *float64
	uber_eats_fee                    *float64
	adduber_eats_fee                 *float64
	vat_19                           *float64
	addvat_19                        *float64
	cash_collected                   *float64
	addcash_collected                *float64
	total_payout                     *float64
	addtotal_payout                  *float64
	net_amount                       *float64
	addnet_amount                    *float64
	vat_amount                       *float64
	addvat_amount                    *float64
	clearedFields                    map[string]struct{}
	done                             bool
	oldValue                         func(context.Context) (*UberEatsInvoice, error)
	predicates                       []predicate.UberEatsInvoice
}

var _ ent.Mutation = (*UberEatsInvoiceMutation)(nil)

// ubereatsinvoiceOption allows management of the mutation configuration using functional options.
type ubereatsinvoiceOption func(*UberEatsInvoiceMutation)

// newUberEatsInvoiceMutation creates new mutation for the UberEatsInvoice entity.
func newUberEatsInvoiceMutation(c config, op Op, opts ...ubereatsinvoiceOption) *UberEatsInvoiceMutation {
	m := &UberEatsInvoiceMutation{
		config:        c,
		op:            op,
		typ:           TypeUberEatsInvoice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUberEatsInvoiceID sets the ID field of the mutation.
func withUberEatsInvoiceID(id uuid.UUID) ubereatsinvoiceOption {
	return func(m *UberEatsInvoiceMutation) {
		var (
			err   error
			once  sync.Once
			value *UberEatsInvoice
		)
		m.oldValue = func(ctx context.Context) (*UberEatsInvoice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UberEatsInvoice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUberEatsInvoice sets the old UberEatsInvoice of the mutation.
func withUberEatsInvoice(node *UberEatsInvoice) ubereatsinvoiceOption {
	return func(m *UberEatsInvoiceMutation) {
		m.oldValue = func(context.Context) (*UberEatsInvoice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UberEatsInvoiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UberEatsInvoiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UberEatsInvoice entities.
func (m *UberEatsInvoiceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UberEatsInvoiceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UberEatsInvoiceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UberEatsInvoice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInvoiceNumber sets the "invoice_number" field.
func (m *UberEatsInvoiceMutation) SetInvoiceNumber(s string) {
	m.invoice_number = &s
}

// InvoiceNumber returns the value of the "invoice_number" field in the mutation.
func (m *UberEatsInvoiceMutation) InvoiceNumber() (r string, exists bool) {
	v := m.invoice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNumber returns the old "invoice_number" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldInvoiceNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNumber: %w", err)
	}
	return oldValue.InvoiceNumber, nil
}

// ResetInvoiceNumber resets all changes to the "invoice_number" field.
func (m *UberEatsInvoiceMutation) ResetInvoiceNumber() {
	m.invoice_number = nil
}

// SetInvoiceDate sets the "invoice_date" field.
func (m *UberEatsInvoiceMutation) SetInvoiceDate(t time.Time) {
	m.invoice_date = &t
}

// InvoiceDate returns the value of the "invoice_date" field in the mutation.
func (m *UberEatsInvoiceMutation) InvoiceDate() (r time.Time, exists bool) {
	v := m.invoice_date
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceDate returns the old "invoice_date" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldInvoiceDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceDate: %w", err)
	}
	return oldValue.InvoiceDate, nil
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (m *UberEatsInvoiceMutation) ClearInvoiceDate() {
	m.invoice_date = nil
	m.clearedFields[ubereatsinvoice.FieldInvoiceDate] = struct{}{}
}

// InvoiceDateCleared returns if the "invoice_date" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) InvoiceDateCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldInvoiceDate]
	return ok
}

// ResetInvoiceDate resets all changes to the "invoice_date" field.
func (m *UberEatsInvoiceMutation) ResetInvoiceDate() {
	m.invoice_date = nil
	delete(m.clearedFields, ubereatsinvoice.FieldInvoiceDate)
}

// SetPeriodStart sets the "period_start" field.
func (m *UberEatsInvoiceMutation) SetPeriodStart(t time.Time) {
	m.period_start = &t
}

// PeriodStart returns the value of the "period_start" field in the mutation.
func (m *UberEatsInvoiceMutation) PeriodStart() (r time.Time, exists bool) {
	v := m.period_start
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodStart returns the old "period_start" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldPeriodStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodStart: %w", err)
	}
	return oldValue.PeriodStart, nil
}

// ClearPeriodStart clears the value of the "period_start" field.
func (m *UberEatsInvoiceMutation) ClearPeriodStart() {
	m.period_start = nil
	m.clearedFields[ubereatsinvoice.FieldPeriodStart] = struct{}{}
}

// PeriodStartCleared returns if the "period_start" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) PeriodStartCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldPeriodStart]
	return ok
}

// ResetPeriodStart resets all changes to the "period_start" field.
func (m *UberEatsInvoiceMutation) ResetPeriodStart() {
	m.period_start = nil
	delete(m.clearedFields, ubereatsinvoice.FieldPeriodStart)
}

// SetPeriodEnd sets the "period_end" field.
func (m *UberEatsInvoiceMutation) SetPeriodEnd(t time.Time) {
	m.period_end = &t
}

// PeriodEnd returns the value of the "period_end" field in the mutation.
func (m *UberEatsInvoiceMutation) PeriodEnd() (r time.Time, exists bool) {
	v := m.period_end
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodEnd returns the old "period_end" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldPeriodEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodEnd: %w", err)
	}
	return oldValue.PeriodEnd, nil
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (m *UberEatsInvoiceMutation) ClearPeriodEnd() {
	m.period_end = nil
	m.clearedFields[ubereatsinvoice.FieldPeriodEnd] = struct{}{}
}

// PeriodEndCleared returns if the "period_end" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) PeriodEndCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldPeriodEnd]
	return ok
}

// ResetPeriodEnd resets all changes to the "period_end" field.
func (m *UberEatsInvoiceMutation) ResetPeriodEnd() {
	m.period_end = nil
	delete(m.clearedFields, ubereatsinvoice.FieldPeriodEnd)
}

// SetSupplierName sets the "supplier_name" field.
func (m *UberEatsInvoiceMutation) SetSupplierName(s string) {
	m.supplier_name = &s
}

// SupplierName returns the value of the "supplier_name" field in the mutation.
func (m *UberEatsInvoiceMutation) SupplierName() (r string, exists bool) {
	v := m.supplier_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierName returns the old "supplier_name" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldSupplierName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierName: %w", err)
	}
	return oldValue.SupplierName, nil
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (m *UberEatsInvoiceMutation) ClearSupplierName() {
	m.supplier_name = nil
	m.clearedFields[ubereatsinvoice.FieldSupplierName] = struct{}{}
}

// SupplierNameCleared returns if the "supplier_name" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) SupplierNameCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldSupplierName]
	return ok
}

// ResetSupplierName resets all changes to the "supplier_name" field.
func (m *UberEatsInvoiceMutation) ResetSupplierName() {
	m.supplier_name = nil
	delete(m.clearedFields, ubereatsinvoice.FieldSupplierName)
}

// SetTotalAmount sets the "total_amount" field.
func (m *UberEatsInvoiceMutation) SetTotalAmount(f float64) {
	m.total_amount = &f
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *UberEatsInvoiceMutation) TotalAmount() (r float64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldTotalAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds f to the "total_amount" field.
func (m *UberEatsInvoiceMutation) AddTotalAmount(f float64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += f
	} else {
		m.addtotal_amount = &f
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *UberEatsInvoiceMutation) AddedTotalAmount() (r float64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (m *UberEatsInvoiceMutation) ClearTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	m.clearedFields[ubereatsinvoice.FieldTotalAmount] = struct{}{}
}

// TotalAmountCleared returns if the "total_amount" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) TotalAmountCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldTotalAmount]
	return ok
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *UberEatsInvoiceMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	delete(m.clearedFields, ubereatsinvoice.FieldTotalAmount)
}

// SetStatus sets the "status" field.
func (m *UberEatsInvoiceMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *UberEatsInvoiceMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UberEatsInvoiceMutation) ResetStatus() {
	m.status = nil
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *UberEatsInvoiceMutation) SetExtractionConfidence(i int) {
	m.extraction_confidence = &i
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *UberEatsInvoiceMutation) ExtractionConfidence() (r int, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldExtractionConfidence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds i to the "extraction_confidence" field.
func (m *UberEatsInvoiceMutation) AddExtractionConfidence(i int) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += i
	} else {
		m.addextraction_confidence = &i
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *UberEatsInvoiceMutation) AddedExtractionConfidence() (r int, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *UberEatsInvoiceMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *UberEatsInvoiceMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *UberEatsInvoiceMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *UberEatsInvoiceMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetRawText sets the "raw_text" field.
func (m *UberEatsInvoiceMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *UberEatsInvoiceMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *UberEatsInvoiceMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[ubereatsinvoice.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *UberEatsInvoiceMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, ubereatsinvoice.FieldRawText)
}

// SetSourceFilename sets the "source_filename" field.
func (m *UberEatsInvoiceMutation) SetSourceFilename(s string) {
	m.source_filename = &s
}

// SourceFilename returns the value of the "source_filename" field in the mutation.
func (m *UberEatsInvoiceMutation) SourceFilename() (r string, exists bool) {
	v := m.source_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFilename returns the old "source_filename" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldSourceFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFilename: %w", err)
	}
	return oldValue.SourceFilename, nil
}

// ClearSourceFilename clears the value of the "source_filename" field.
func (m *UberEatsInvoiceMutation) ClearSourceFilename() {
	m.source_filename = nil
	m.clearedFields[ubereatsinvoice.FieldSourceFilename] = struct{}{}
}

// SourceFilenameCleared returns if the "source_filename" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) SourceFilenameCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldSourceFilename]
	return ok
}

// ResetSourceFilename resets all changes to the "source_filename" field.
func (m *UberEatsInvoiceMutation) ResetSourceFilename() {
	m.source_filename = nil
	delete(m.clearedFields, ubereatsinvoice.FieldSourceFilename)
}

// SetEmailSubject sets the "email_subject" field.
func (m *UberEatsInvoiceMutation) SetEmailSubject(s string) {
	m.email_subject = &s
}

// EmailSubject returns the value of the "email_subject" field in the mutation.
func (m *UberEatsInvoiceMutation) EmailSubject() (r string, exists bool) {
	v := m.email_subject
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailSubject returns the old "email_subject" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldEmailSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailSubject: %w", err)
	}
	return oldValue.EmailSubject, nil
}

// ClearEmailSubject clears the value of the "email_subject" field.
func (m *UberEatsInvoiceMutation) ClearEmailSubject() {
	m.email_subject = nil
	m.clearedFields[ubereatsinvoice.FieldEmailSubject] = struct{}{}
}

// EmailSubjectCleared returns if the "email_subject" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) EmailSubjectCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldEmailSubject]
	return ok
}

// ResetEmailSubject resets all changes to the "email_subject" field.
func (m *UberEatsInvoiceMutation) ResetEmailSubject() {
	m.email_subject = nil
	delete(m.clearedFields, ubereatsinvoice.FieldEmailSubject)
}

// SetEmailSender sets the "email_sender" field.
func (m *UberEatsInvoiceMutation) SetEmailSender(s string) {
	m.email_sender = &s
}

// EmailSender returns the value of the "email_sender" field in the mutation.
func (m *UberEatsInvoiceMutation) EmailSender() (r string, exists bool) {
	v := m.email_sender
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailSender returns the old "email_sender" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldEmailSender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailSender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailSender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailSender: %w", err)
	}
	return oldValue.EmailSender, nil
}

// ClearEmailSender clears the value of the "email_sender" field.
func (m *UberEatsInvoiceMutation) ClearEmailSender() {
	m.email_sender = nil
	m.clearedFields[ubereatsinvoice.FieldEmailSender] = struct{}{}
}

// EmailSenderCleared returns if the "email_sender" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) EmailSenderCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldEmailSender]
	return ok
}

// ResetEmailSender resets all changes to the "email_sender" field.
func (m *UberEatsInvoiceMutation) ResetEmailSender() {
	m.email_sender = nil
	delete(m.clearedFields, ubereatsinvoice.FieldEmailSender)
}

// SetEmailDate sets the "email_date" field.
func (m *UberEatsInvoiceMutation) SetEmailDate(t time.Time) {
	m.email_date = &t
}

// EmailDate returns the value of the "email_date" field in the mutation.
func (m *UberEatsInvoiceMutation) EmailDate() (r time.Time, exists bool) {
	v := m.email_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailDate returns the old "email_date" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldEmailDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailDate: %w", err)
	}
	return oldValue.EmailDate, nil
}

// ClearEmailDate clears the value of the "email_date" field.
func (m *UberEatsInvoiceMutation) ClearEmailDate() {
	m.email_date = nil
	m.clearedFields[ubereatsinvoice.FieldEmailDate] = struct{}{}
}

// EmailDateCleared returns if the "email_date" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) EmailDateCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldEmailDate]
	return ok
}

// ResetEmailDate resets all changes to the "email_date" field.
func (m *UberEatsInvoiceMutation) ResetEmailDate() {
	m.email_date = nil
	delete(m.clearedFields, ubereatsinvoice.FieldEmailDate)
}

// SetCreatedAt sets the "created_at" field.
func (m *UberEatsInvoiceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UberEatsInvoiceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UberEatsInvoiceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UberEatsInvoiceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UberEatsInvoiceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UberEatsInvoiceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTaxDate sets the "tax_date" field.
func (m *UberEatsInvoiceMutation) SetTaxDate(t time.Time) {
	m.tax_date = &t
}

// TaxDate returns the value of the "tax_date" field in the mutation.
func (m *UberEatsInvoiceMutation) TaxDate() (r time.Time, exists bool) {
	v := m.tax_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxDate returns the old "tax_date" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldTaxDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxDate: %w", err)
	}
	return oldValue.TaxDate, nil
}

// ClearTaxDate clears the value of the "tax_date" field.
func (m *UberEatsInvoiceMutation) ClearTaxDate() {
	m.tax_date = nil
	m.clearedFields[ubereatsinvoice.FieldTaxDate] = struct{}{}
}

// TaxDateCleared returns if the "tax_date" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) TaxDateCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldTaxDate]
	return ok
}

// ResetTaxDate resets all changes to the "tax_date" field.
func (m *UberEatsInvoiceMutation) ResetTaxDate() {
	m.tax_date = nil
	delete(m.clearedFields, ubereatsinvoice.FieldTaxDate)
}

// SetCustomerCompany sets the "customer_company" field.
func (m *UberEatsInvoiceMutation) SetCustomerCompany(s string) {
	m.customer_company = &s
}

// CustomerCompany returns the value of the "customer_company" field in the mutation.
func (m *UberEatsInvoiceMutation) CustomerCompany() (r string, exists bool) {
	v := m.customer_company
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerCompany returns the old "customer_company" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldCustomerCompany(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerCompany: %w", err)
	}
	return oldValue.CustomerCompany, nil
}

// ClearCustomerCompany clears the value of the "customer_company" field.
func (m *UberEatsInvoiceMutation) ClearCustomerCompany() {
	m.customer_company = nil
	m.clearedFields[ubereatsinvoice.FieldCustomerCompany] = struct{}{}
}

// CustomerCompanyCleared returns if the "customer_company" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) CustomerCompanyCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldCustomerCompany]
	return ok
}

// ResetCustomerCompany resets all changes to the "customer_company" field.
func (m *UberEatsInvoiceMutation) ResetCustomerCompany() {
	m.customer_company = nil
	delete(m.clearedFields, ubereatsinvoice.FieldCustomerCompany)
}

// SetRestaurantName sets the "restaurant_name" field.
func (m *UberEatsInvoiceMutation) SetRestaurantName(s string) {
	m.restaurant_name = &s
}

// RestaurantName returns the value of the "restaurant_name" field in the mutation.
func (m *UberEatsInvoiceMutation) RestaurantName() (r string, exists bool) {
	v := m.restaurant_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRestaurantName returns the old "restaurant_name" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldRestaurantName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRestaurantName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRestaurantName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRestaurantName: %w", err)
	}
	return oldValue.RestaurantName, nil
}

// ClearRestaurantName clears the value of the "restaurant_name" field.
func (m *UberEatsInvoiceMutation) ClearRestaurantName() {
	m.restaurant_name = nil
	m.clearedFields[ubereatsinvoice.FieldRestaurantName] = struct{}{}
}

// RestaurantNameCleared returns if the "restaurant_name" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) RestaurantNameCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldRestaurantName]
	return ok
}

// ResetRestaurantName resets all changes to the "restaurant_name" field.
func (m *UberEatsInvoiceMutation) ResetRestaurantName() {
	m.restaurant_name = nil
	delete(m.clearedFields, ubereatsinvoice.FieldRestaurantName)
}

// SetRestaurantAddress sets the "restaurant_address" field.
func (m *UberEatsInvoiceMutation) SetRestaurantAddress(s string) {
	m.restaurant_address = &s
}

// RestaurantAddress returns the value of the "restaurant_address" field in the mutation.
func (m *UberEatsInvoiceMutation) RestaurantAddress() (r string, exists bool) {
	v := m.restaurant_address
	if v == nil {
		return
	}
	return *v, true
}

// OldRestaurantAddress returns the old "restaurant_address" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldRestaurantAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRestaurantAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRestaurantAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRestaurantAddress: %w", err)
	}
	return oldValue.RestaurantAddress, nil
}

// ClearRestaurantAddress clears the value of the "restaurant_address" field.
func (m *UberEatsInvoiceMutation) ClearRestaurantAddress() {
	m.restaurant_address = nil
	m.clearedFields[ubereatsinvoice.FieldRestaurantAddress] = struct{}{}
}

// RestaurantAddressCleared returns if the "restaurant_address" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) RestaurantAddressCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldRestaurantAddress]
	return ok
}

// ResetRestaurantAddress resets all changes to the "restaurant_address" field.
func (m *UberEatsInvoiceMutation) ResetRestaurantAddress() {
	m.restaurant_address = nil
	delete(m.clearedFields, ubereatsinvoice.FieldRestaurantAddress)
}

// SetBusinessID sets the "business_id" field.
func (m *UberEatsInvoiceMutation) SetBusinessID(s string) {
	m.business_id = &s
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *UberEatsInvoiceMutation) BusinessID() (r string, exists bool) {
	v := m.business_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldBusinessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ClearBusinessID clears the value of the "business_id" field.
func (m *UberEatsInvoiceMutation) ClearBusinessID() {
	m.business_id = nil
	m.clearedFields[ubereatsinvoice.FieldBusinessID] = struct{}{}
}

// BusinessIDCleared returns if the "business_id" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) BusinessIDCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldBusinessID]
	return ok
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *UberEatsInvoiceMutation) ResetBusinessID() {
	m.business_id = nil
	delete(m.clearedFields, ubereatsinvoice.FieldBusinessID)
}

// SetCustomerVatID sets the "customer_vat_id" field.
func (m *UberEatsInvoiceMutation) SetCustomerVatID(s string) {
	m.customer_vat_id = &s
}

// CustomerVatID returns the value of the "customer_vat_id" field in the mutation.
func (m *UberEatsInvoiceMutation) CustomerVatID() (r string, exists bool) {
	v := m.customer_vat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerVatID returns the old "customer_vat_id" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldCustomerVatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerVatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerVatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerVatID: %w", err)
	}
	return oldValue.CustomerVatID, nil
}

// ClearCustomerVatID clears the value of the "customer_vat_id" field.
func (m *UberEatsInvoiceMutation) ClearCustomerVatID() {
	m.customer_vat_id = nil
	m.clearedFields[ubereatsinvoice.FieldCustomerVatID] = struct{}{}
}

// CustomerVatIDCleared returns if the "customer_vat_id" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) CustomerVatIDCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldCustomerVatID]
	return ok
}

// ResetCustomerVatID resets all changes to the "customer_vat_id" field.
func (m *UberEatsInvoiceMutation) ResetCustomerVatID() {
	m.customer_vat_id = nil
	delete(m.clearedFields, ubereatsinvoice.FieldCustomerVatID)
}

// SetTaxNumber sets the "tax_number" field.
func (m *UberEatsInvoiceMutation) SetTaxNumber(s string) {
	m.tax_number = &s
}

// TaxNumber returns the value of the "tax_number" field in the mutation.
func (m *UberEatsInvoiceMutation) TaxNumber() (r string, exists bool) {
	v := m.tax_number
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxNumber returns the old "tax_number" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldTaxNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxNumber: %w", err)
	}
	return oldValue.TaxNumber, nil
}

// ClearTaxNumber clears the value of the "tax_number" field.
func (m *UberEatsInvoiceMutation) ClearTaxNumber() {
	m.tax_number = nil
	m.clearedFields[ubereatsinvoice.FieldTaxNumber] = struct{}{}
}

// TaxNumberCleared returns if the "tax_number" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) TaxNumberCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldTaxNumber]
	return ok
}

// ResetTaxNumber resets all changes to the "tax_number" field.
func (m *UberEatsInvoiceMutation) ResetTaxNumber() {
	m.tax_number = nil
	delete(m.clearedFields, ubereatsinvoice.FieldTaxNumber)
}

// SetTotalOrders sets the "total_orders" field.
func (m *UberEatsInvoiceMutation) SetTotalOrders(i int) {
	m.total_orders = &i
	m.addtotal_orders = nil
}

// TotalOrders returns the value of the "total_orders" field in the mutation.
func (m *UberEatsInvoiceMutation) TotalOrders() (r int, exists bool) {
	v := m.total_orders
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalOrders returns the old "total_orders" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldTotalOrders(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalOrders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalOrders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalOrders: %w", err)
	}
	return oldValue.TotalOrders, nil
}

// AddTotalOrders adds i to the "total_orders" field.
func (m *UberEatsInvoiceMutation) AddTotalOrders(i int) {
	if m.addtotal_orders != nil {
		*m.addtotal_orders += i
	} else {
		m.addtotal_orders = &i
	}
}

// AddedTotalOrders returns the value that was added to the "total_orders" field in this mutation.
func (m *UberEatsInvoiceMutation) AddedTotalOrders() (r int, exists bool) {
	v := m.addtotal_orders
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalOrders clears the value of the "total_orders" field.
func (m *UberEatsInvoiceMutation) ClearTotalOrders() {
	m.total_orders = nil
	m.addtotal_orders = nil
	m.clearedFields[ubereatsinvoice.FieldTotalOrders] = struct{}{}
}

// TotalOrdersCleared returns if the "total_orders" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) TotalOrdersCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldTotalOrders]
	return ok
}

// ResetTotalOrders resets all changes to the "total_orders" field.
func (m *UberEatsInvoiceMutation) ResetTotalOrders() {
	m.total_orders = nil
	m.addtotal_orders = nil
	delete(m.clearedFields, ubereatsinvoice.FieldTotalOrders)
}

// SetTotalOrderValue sets the "total_order_value" field.
func (m *UberEatsInvoiceMutation) SetTotalOrderValue(f float64) {
	m.total_order_value = &f
	m.addtotal_order_value = nil
}

// TotalOrderValue returns the value of the "total_order_value" field in the mutation.
func (m *UberEatsInvoiceMutation) TotalOrderValue() (r float64, exists bool) {
	v := m.total_order_value
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalOrderValue returns the old "total_order_value" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldTotalOrderValue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalOrderValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalOrderValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalOrderValue: %w", err)
	}
	return oldValue.TotalOrderValue, nil
}

// AddTotalOrderValue adds f to the "total_order_value" field.
func (m *UberEatsInvoiceMutation) AddTotalOrderValue(f float64) {
	if m.addtotal_order_value != nil {
		*m.addtotal_order_value += f
	} else {
		m.addtotal_order_value = &f
	}
}

// AddedTotalOrderValue returns the value that was added to the "total_order_value" field in this mutation.
func (m *UberEatsInvoiceMutation) AddedTotalOrderValue() (r float64, exists bool) {
	v := m.addtotal_order_value
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalOrderValue clears the value of the "total_order_value" field.
func (m *UberEatsInvoiceMutation) ClearTotalOrderValue() {
	m.total_order_value = nil
	m.addtotal_order_value = nil
	m.clearedFields[ubereatsinvoice.FieldTotalOrderValue] = struct{}{}
}

// TotalOrderValueCleared returns if the "total_order_value" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) TotalOrderValueCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldTotalOrderValue]
	return ok
}

// ResetTotalOrderValue resets all changes to the "total_order_value" field.
func (m *UberEatsInvoiceMutation) ResetTotalOrderValue() {
	m.total_order_value = nil
	m.addtotal_order_value = nil
	delete(m.clearedFields, ubereatsinvoice.FieldTotalOrderValue)
}

// SetGrossRevenueAfterDiscounts sets the "gross_revenue_after_discounts" field.
func (m *UberEatsInvoiceMutation) SetGrossRevenueAfterDiscounts(f float64) {
	m.gross_revenue_after_discounts = &f
	m.addgross_revenue_after_discounts = nil
}

// GrossRevenueAfterDiscounts returns the value of the "gross_revenue_after_discounts" field in the mutation.
func (m *UberEatsInvoiceMutation) GrossRevenueAfterDiscounts() (r float64, exists bool) {
	v := m.gross_revenue_after_discounts
	if v == nil {
		return
	}
	return *v, true
}

// OldGrossRevenueAfterDiscounts returns the old "gross_revenue_after_discounts" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldGrossRevenueAfterDiscounts(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrossRevenueAfterDiscounts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrossRevenueAfterDiscounts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrossRevenueAfterDiscounts: %w", err)
	}
	return oldValue.GrossRevenueAfterDiscounts, nil
}

// AddGrossRevenueAfterDiscounts adds f to the "gross_revenue_after_discounts" field.
func (m *UberEatsInvoiceMutation) AddGrossRevenueAfterDiscounts(f float64) {
	if m.addgross_revenue_after_discounts != nil {
		*m.addgross_revenue_after_discounts += f
	} else {
		m.addgross_revenue_after_discounts = &f
	}
}

// AddedGrossRevenueAfterDiscounts returns the value that was added to the "gross_revenue_after_discounts" field in this mutation.
func (m *UberEatsInvoiceMutation) AddedGrossRevenueAfterDiscounts() (r float64, exists bool) {
	v := m.addgross_revenue_after_discounts
	if v == nil {
		return
	}
	return *v, true
}

// ClearGrossRevenueAfterDiscounts clears the value of the "gross_revenue_after_discounts" field.
func (m *UberEatsInvoiceMutation) ClearGrossRevenueAfterDiscounts() {
	m.gross_revenue_after_discounts = nil
	m.addgross_revenue_after_discounts = nil
	m.clearedFields[ubereatsinvoice.FieldGrossRevenueAfterDiscounts] = struct{}{}
}

// GrossRevenueAfterDiscountsCleared returns if the "gross_revenue_after_discounts" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) GrossRevenueAfterDiscountsCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldGrossRevenueAfterDiscounts]
	return ok
}

// ResetGrossRevenueAfterDiscounts resets all changes to the "gross_revenue_after_discounts" field.
func (m *UberEatsInvoiceMutation) ResetGrossRevenueAfterDiscounts() {
	m.gross_revenue_after_discounts = nil
	m.addgross_revenue_after_discounts = nil
	delete(m.clearedFields, ubereatsinvoice.FieldGrossRevenueAfterDiscounts)
}

// SetCommissionOwnDelivery sets the "commission_own_delivery" field.
func (m *UberEatsInvoiceMutation) SetCommissionOwnDelivery(f float64) {
	m.commission_own_delivery = &f
	m.addcommission_own_delivery = nil
}

// CommissionOwnDelivery returns the value of the "commission_own_delivery" field in the mutation.
func (m *UberEatsInvoiceMutation) CommissionOwnDelivery() (r float64, exists bool) {
	v := m.commission_own_delivery
	if v == nil {
		return
	}
	return *v, true
}

// OldCommissionOwnDelivery returns the old "commission_own_delivery" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldCommissionOwnDelivery(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommissionOwnDelivery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommissionOwnDelivery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommissionOwnDelivery: %w", err)
	}
	return oldValue.CommissionOwnDelivery, nil
}

// AddCommissionOwnDelivery adds f to the "commission_own_delivery" field.
func (m *UberEatsInvoiceMutation) AddCommissionOwnDelivery(f float64) {
	if m.addcommission_own_delivery != nil {
		*m.addcommission_own_delivery += f
	} else {
		m.addcommission_own_delivery = &f
	}
}

// AddedCommissionOwnDelivery returns the value that was added to the "commission_own_delivery" field in this mutation.
func (m *UberEatsInvoiceMutation) AddedCommissionOwnDelivery() (r float64, exists bool) {
	v := m.addcommission_own_delivery
	if v == nil {
		return
	}
	return *v, true
}

// ClearCommissionOwnDelivery clears the value of the "commission_own_delivery" field.
func (m *UberEatsInvoiceMutation) ClearCommissionOwnDelivery() {
	m.commission_own_delivery = nil
	m.addcommission_own_delivery = nil
	m.clearedFields[ubereatsinvoice.FieldCommissionOwnDelivery] = struct{}{}
}

// CommissionOwnDeliveryCleared returns if the "commission_own_delivery" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) CommissionOwnDeliveryCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldCommissionOwnDelivery]
	return ok
}

// ResetCommissionOwnDelivery resets all changes to the "commission_own_delivery" field.
func (m *UberEatsInvoiceMutation) ResetCommissionOwnDelivery() {
	m.commission_own_delivery = nil
	m.addcommission_own_delivery = nil
	delete(m.clearedFields, ubereatsinvoice.FieldCommissionOwnDelivery)
}

// SetCommissionPickup sets the "commission_pickup" field.
func (m *UberEatsInvoiceMutation) SetCommissionPickup(f float64) {
	m.commission_pickup = &f
	m.addcommission_pickup = nil
}

// CommissionPickup returns the value of the "commission_pickup" field in the mutation.
func (m *UberEatsInvoiceMutation) CommissionPickup() (r float64, exists bool) {
	v := m.commission_pickup
	if v == nil {
		return
	}
	return *v, true
}

// OldCommissionPickup returns the old "commission_pickup" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldCommissionPickup(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommissionPickup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommissionPickup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommissionPickup: %w", err)
	}
	return oldValue.CommissionPickup, nil
}

// AddCommissionPickup adds f to the "commission_pickup" field.
func (m *UberEatsInvoiceMutation) AddCommissionPickup(f float64) {
	if m.addcommission_pickup != nil {
		*m.addcommission_pickup += f
	} else {
		m.addcommission_pickup = &f
	}
}

// AddedCommissionPickup returns the value that was added to the "commission_pickup" field in this mutation.
func (m *UberEatsInvoiceMutation) AddedCommissionPickup() (r float64, exists bool) {
	v := m.addcommission_pickup
	if v == nil {
		return
	}
	return *v, true
}

// ClearCommissionPickup clears the value of the "commission_pickup" field.
func (m *UberEatsInvoiceMutation) ClearCommissionPickup() {
	m.commission_pickup = nil
	m.addcommission_pickup = nil
	m.clearedFields[ubereatsinvoice.FieldCommissionPickup] = struct{}{}
}

// CommissionPickupCleared returns if the "commission_pickup" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) CommissionPickupCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldCommissionPickup]
	return ok
}

// ResetCommissionPickup resets all changes to the "commission_pickup" field.
func (m *UberEatsInvoiceMutation) ResetCommissionPickup() {
	m.commission_pickup = nil
	m.addcommission_pickup = nil
	delete(m.clearedFields, ubereatsinvoice.FieldCommissionPickup)
}

// SetUberEatsFee sets the "uber_eats_fee" field.
func (m *UberEatsInvoiceMutation) SetUberEatsFee(f float64) {
	m.uber_eats_fee = &f
	m.adduber_eats_fee = nil
}

// UberEatsFee returns the value of the "uber_eats_fee" field in the mutation.
func (m *UberEatsInvoiceMutation) UberEatsFee() (r float64, exists bool) {
	v := m.uber_eats_fee
	if v == nil {
		return
	}
	return *v, true
}

// OldUberEatsFee returns the old "uber_eats_fee" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldUberEatsFee(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUberEatsFee is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUberEatsFee requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUberEatsFee: %w", err)
	}
	return oldValue.UberEatsFee, nil
}

// AddUberEatsFee adds f to the "uber_eats_fee" field.
func (m *UberEatsInvoiceMutation) AddUberEatsFee(f float64) {
	if m.adduber_eats_fee != nil {
		*m.adduber_eats_fee += f
	} else {
		m.adduber_eats_fee = &f
	}
}

// AddedUberEatsFee returns the value that was added to the "uber_eats_fee" field in this mutation.
func (m *UberEatsInvoiceMutation) AddedUberEatsFee() (r float64, exists bool) {
	v := m.adduber_eats_fee
	if v == nil {
		return
	}
	return *v, true
}

// ClearUberEatsFee clears the value of the "uber_eats_fee" field.
func (m *UberEatsInvoiceMutation) ClearUberEatsFee() {
	m.uber_eats_fee = nil
	m.adduber_eats_fee = nil
	m.clearedFields[ubereatsinvoice.FieldUberEatsFee] = struct{}{}
}

// UberEatsFeeCleared returns if the "uber_eats_fee" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) UberEatsFeeCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldUberEatsFee]
	return ok
}

// ResetUberEatsFee resets all changes to the "uber_eats_fee" field.
func (m *UberEatsInvoiceMutation) ResetUberEatsFee() {
	m.uber_eats_fee = nil
	m.adduber_eats_fee = nil
	delete(m.clearedFields, ubereatsinvoice.FieldUberEatsFee)
}

// SetVat19 sets the "vat_19" field.
func (m *UberEatsInvoiceMutation) SetVat19(f float64) {
	m.vat_19 = &f
	m.addvat_19 = nil
}

// Vat19 returns the value of the "vat_19" field in the mutation.
func (m *UberEatsInvoiceMutation) Vat19() (r float64, exists bool) {
	v := m.vat_19
	if v == nil {
		return
	}
	return *v, true
}

// OldVat19 returns the old "vat_19" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldVat19(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVat19 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVat19 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVat19: %w", err)
	}
	return oldValue.Vat19, nil
}

// AddVat19 adds f to the "vat_19" field.
func (m *UberEatsInvoiceMutation) AddVat19(f float64) {
	if m.addvat_19 != nil {
		*m.addvat_19 += f
	} else {
		m.addvat_19 = &f
	}
}

// AddedVat19 returns the value that was added to the "vat_19" field in this mutation.
func (m *UberEatsInvoiceMutation) AddedVat19() (r float64, exists bool) {
	v := m.addvat_19
	if v == nil {
		return
	}
	return *v, true
}

// ClearVat19 clears the value of the "vat_19" field.
func (m *UberEatsInvoiceMutation) ClearVat19() {
	m.vat_19 = nil
	m.addvat_19 = nil
	m.clearedFields[ubereatsinvoice.FieldVat19] = struct{}{}
}

// Vat19Cleared returns if the "vat_19" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) Vat19Cleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldVat19]
	return ok
}

// ResetVat19 resets all changes to the "vat_19" field.
func (m *UberEatsInvoiceMutation) ResetVat19() {
	m.vat_19 = nil
	m.addvat_19 = nil
	delete(m.clearedFields, ubereatsinvoice.FieldVat19)
}

// SetCashCollected sets the "cash_collected" field.
func (m *UberEatsInvoiceMutation) SetCashCollected(f float64) {
	m.cash_collected = &f
	m.addcash_collected = nil
}

// CashCollected returns the value of the "cash_collected" field in the mutation.
func (m *UberEatsInvoiceMutation) CashCollected() (r float64, exists bool) {
	v := m.cash_collected
	if v == nil {
		return
	}
	return *v, true
}

// OldCashCollected returns the old "cash_collected" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldCashCollected(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCashCollected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCashCollected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCashCollected: %w", err)
	}
	return oldValue.CashCollected, nil
}

// AddCashCollected adds f to the "cash_collected" field.
func (m *UberEatsInvoiceMutation) AddCashCollected(f float64) {
	if m.addcash_collected != nil {
		*m.addcash_collected += f
	} else {
		m.addcash_collected = &f
	}
}

// AddedCashCollected returns the value that was added to the "cash_collected" field in this mutation.
func (m *UberEatsInvoiceMutation) AddedCashCollected() (r float64, exists bool) {
	v := m.addcash_collected
	if v == nil {
		return
	}
	return *v, true
}

// ClearCashCollected clears the value of the "cash_collected" field.
func (m *UberEatsInvoiceMutation) ClearCashCollected() {
	m.cash_collected = nil
	m.addcash_collected = nil
	m.clearedFields[ubereatsinvoice.FieldCashCollected] = struct{}{}
}

// CashCollectedCleared returns if the "cash_collected" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) CashCollectedCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldCashCollected]
	return ok
}

// ResetCashCollected resets all changes to the "cash_collected" field.
func (m *UberEatsInvoiceMutation) ResetCashCollected() {
	m.cash_collected = nil
	m.addcash_collected = nil
	delete(m.clearedFields, ubereatsinvoice.FieldCashCollected)
}

// SetTotalPayout sets the "total_payout" field.
func (m *UberEatsInvoiceMutation) SetTotalPayout(f float64) {
	m.total_payout = &f
	m.addtotal_payout = nil
}

// TotalPayout returns the value of the "total_payout" field in the mutation.
func (m *UberEatsInvoiceMutation) TotalPayout() (r float64, exists bool) {
	v := m.total_payout
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPayout returns the old "total_payout" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldTotalPayout(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPayout is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPayout requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPayout: %w", err)
	}
	return oldValue.TotalPayout, nil
}

// AddTotalPayout adds f to the "total_payout" field.
func (m *UberEatsInvoiceMutation) AddTotalPayout(f float64) {
	if m.addtotal_payout != nil {
		*m.addtotal_payout += f
	} else {
		m.addtotal_payout = &f
	}
}

// AddedTotalPayout returns the value that was added to the "total_payout" field in this mutation.
func (m *UberEatsInvoiceMutation) AddedTotalPayout() (r float64, exists bool) {
	v := m.addtotal_payout
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalPayout clears the value of the "total_payout" field.
func (m *UberEatsInvoiceMutation) ClearTotalPayout() {
	m.total_payout = nil
	m.addtotal_payout = nil
	m.clearedFields[ubereatsinvoice.FieldTotalPayout] = struct{}{}
}

// TotalPayoutCleared returns if the "total_payout" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) TotalPayoutCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldTotalPayout]
	return ok
}

// ResetTotalPayout resets all changes to the "total_payout" field.
func (m *UberEatsInvoiceMutation) ResetTotalPayout() {
	m.total_payout = nil
	m.addtotal_payout = nil
	delete(m.clearedFields, ubereatsinvoice.FieldTotalPayout)
}

// SetNetAmount sets the "net_amount" field.
func (m *UberEatsInvoiceMutation) SetNetAmount(f float64) {
	m.net_amount = &f
	m.addnet_amount = nil
}

// NetAmount returns the value of the "net_amount" field in the mutation.
func (m *UberEatsInvoiceMutation) NetAmount() (r float64, exists bool) {
	v := m.net_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldNetAmount returns the old "net_amount" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldNetAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetAmount: %w", err)
	}
	return oldValue.NetAmount, nil
}

// AddNetAmount adds f to the "net_amount" field.
func (m *UberEatsInvoiceMutation) AddNetAmount(f float64) {
	if m.addnet_amount != nil {
		*m.addnet_amount += f
	} else {
		m.addnet_amount = &f
	}
}

// AddedNetAmount returns the value that was added to the "net_amount" field in this mutation.
func (m *UberEatsInvoiceMutation) AddedNetAmount() (r float64, exists bool) {
	v := m.addnet_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearNetAmount clears the value of the "net_amount" field.
func (m *UberEatsInvoiceMutation) ClearNetAmount() {
	m.net_amount = nil
	m.addnet_amount = nil
	m.clearedFields[ubereatsinvoice.FieldNetAmount] = struct{}{}
}

// NetAmountCleared returns if the "net_amount" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) NetAmountCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldNetAmount]
	return ok
}

// ResetNetAmount resets all changes to the "net_amount" field.
func (m *UberEatsInvoiceMutation) ResetNetAmount() {
	m.net_amount = nil
	m.addnet_amount = nil
	delete(m.clearedFields, ubereatsinvoice.FieldNetAmount)
}

// SetVatAmount sets the "vat_amount" field.
func (m *UberEatsInvoiceMutation) SetVatAmount(f float64) {
	m.vat_amount = &f
	m.addvat_amount = nil
}

// VatAmount returns the value of the "vat_amount" field in the mutation.
func (m *UberEatsInvoiceMutation) VatAmount() (r float64, exists bool) {
	v := m.vat_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldVatAmount returns the old "vat_amount" field's value of the UberEatsInvoice entity.
// If the UberEatsInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UberEatsInvoiceMutation) OldVatAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVatAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVatAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVatAmount: %w", err)
	}
	return oldValue.VatAmount, nil
}

// AddVatAmount adds f to the "vat_amount" field.
func (m *UberEatsInvoiceMutation) AddVatAmount(f float64) {
	if m.addvat_amount != nil {
		*m.addvat_amount += f
	} else {
		m.addvat_amount = &f
	}
}

// AddedVatAmount returns the value that was added to the "vat_amount" field in this mutation.
func (m *UberEatsInvoiceMutation) AddedVatAmount() (r float64, exists bool) {
	v := m.addvat_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearVatAmount clears the value of the "vat_amount" field.
func (m *UberEatsInvoiceMutation) ClearVatAmount() {
	m.vat_amount = nil
	m.addvat_amount = nil
	m.clearedFields[ubereatsinvoice.FieldVatAmount] = struct{}{}
}

// VatAmountCleared returns if the "vat_amount" field was cleared in this mutation.
func (m *UberEatsInvoiceMutation) VatAmountCleared() bool {
	_, ok := m.clearedFields[ubereatsinvoice.FieldVatAmount]
	return ok
}

// ResetVatAmount resets all changes to the "vat_amount" field.
func (m *UberEatsInvoiceMutation) ResetVatAmount() {
	m.vat_amount = nil
	m.addvat_amount = nil
	delete(m.clearedFields, ubereatsinvoice.FieldVatAmount)
}

// Where appends a list predicates to the UberEatsInvoiceMutation builder.
func (m *UberEatsInvoiceMutation) Where(ps ...predicate.UberEatsInvoice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UberEatsInvoiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UberEatsInvoiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UberEatsInvoice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UberEatsInvoiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UberEatsInvoiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UberEatsInvoice).
func (m *UberEatsInvoiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UberEatsInvoiceMutation) Fields() []string {
	fields := make([]string, 0, 34)
	if m.invoice_number != nil {
		fields = append(fields, ubereatsinvoice.FieldInvoiceNumber)
	}
	if m.invoice_date != nil {
		fields = append(fields, ubereatsinvoice.FieldInvoiceDate)
	}
	if m.period_start != nil {
		fields = append(fields, ubereatsinvoice.FieldPeriodStart)
	}
	if m.period_end != nil {
		fields = append(fields, ubereatsinvoice.FieldPeriodEnd)
	}
	if m.supplier_name != nil {
		fields = append(fields, ubereatsinvoice.FieldSupplierName)
	}
	if m.total_amount != nil {
		fields = append(fields, ubereatsinvoice.FieldTotalAmount)
	}
	if m.status != nil {
		fields = append(fields, ubereatsinvoice.FieldStatus)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, ubereatsinvoice.FieldExtractionConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, ubereatsinvoice.FieldNeedsReview)
	}
	if m.raw_text != nil {
		fields = append(fields, ubereatsinvoice.FieldRawText)
	}
	if m.source_filename != nil {
		fields = append(fields, ubereatsinvoice.FieldSourceFilename)
	}
	if m.email_subject != nil {
		fields = append(fields, ubereatsinvoice.FieldEmailSubject)
	}
	if m.email_sender != nil {
		fields = append(fields, ubereatsinvoice.FieldEmailSender)
	}
	if m.email_date != nil {
		fields = append(fields, ubereatsinvoice.FieldEmailDate)
	}
	if m.created_at != nil {
		fields = append(fields, ubereatsinvoice.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, ubereatsinvoice.FieldUpdatedAt)
	}
	if m.tax_date != nil {
		fields = append(fields, ubereatsinvoice.FieldTaxDate)
	}
	if m.customer_company != nil {
		fields = append(fields, ubereatsinvoice.FieldCustomerCompany)
	}
	if m.restaurant_name != nil {
		fields = append(fields, ubereatsinvoice.FieldRestaurantName)
	}
	if m.restaurant_address != nil {
		fields = append(fields, ubereatsinvoice.FieldRestaurantAddress)
	}
	if m.business_id != nil {
		fields = append(fields, ubereatsinvoice.FieldBusinessID)
	}
	if m.customer_vat_id != nil {
		fields = append(fields, ubereatsinvoice.FieldCustomerVatID)
	}
	if m.tax_number != nil {
		fields = append(fields, ubereatsinvoice.FieldTaxNumber)
	}
	if m.total_orders != nil {
		fields = append(fields, ubereatsinvoice.FieldTotalOrders)
	}
	if m.total_order_value != nil {
		fields = append(fields, ubereatsinvoice.FieldTotalOrderValue)
	}
	if m.gross_revenue_after_discounts != nil {
		fields = append(fields, ubereatsinvoice.FieldGrossRevenueAfterDiscounts)
	}
	if m.commission_own_delivery != nil {
		fields = append(fields, ubereatsinvoice.FieldCommissionOwnDelivery)
	}
	if m.commission_pickup != nil {
		fields = append(fields, ubereatsinvoice.FieldCommissionPickup)
	}
	if m.uber_eats_fee != nil {
		fields = append(fields, ubereatsinvoice.FieldUberEatsFee)
	}
	if m.vat_19 != nil {
		fields = append(fields, ubereatsinvoice.FieldVat19)
	}
	if m.cash_collected != nil {
		fields = append(fields, ubereatsinvoice.FieldCashCollected)
	}
	if m.total_payout != nil {
		fields = append(fields, ubereatsinvoice.FieldTotalPayout)
	}
	if m.net_amount != nil {
		fields = append(fields, ubereatsinvoice.FieldNetAmount)
	}
	if m.vat_amount != nil {
		fields = append(fields, ubereatsinvoice.FieldVatAmount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UberEatsInvoiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ubereatsinvoice.FieldInvoiceNumber:
		return m.InvoiceNumber()
	case ubereatsinvoice.FieldInvoiceDate:
		return m.InvoiceDate()
	case ubereatsinvoice.FieldPeriodStart:
		return m.PeriodStart()
	case ubereatsinvoice.FieldPeriodEnd:
		return m.PeriodEnd()
	case ubereatsinvoice.FieldSupplierName:
		return m.SupplierName()
	case ubereatsinvoice.FieldTotalAmount:
		return m.TotalAmount()
	case ubereatsinvoice.FieldStatus:
		return m.Status()
	case ubereatsinvoice.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case ubereatsinvoice.FieldNeedsReview:
		return m.NeedsReview()
	case ubereatsinvoice.FieldRawText:
		return m.RawText()
	case ubereatsinvoice.FieldSourceFilename:
		return m.SourceFilename()
	case ubereatsinvoice.FieldEmailSubject:
		return m.EmailSubject()
	case ubereatsinvoice.FieldEmailSender:
		return m.EmailSender()
	case ubereatsinvoice.FieldEmailDate:
		return m.EmailDate()
	case ubereatsinvoice.FieldCreatedAt:
		return m.CreatedAt()
	case ubereatsinvoice.FieldUpdatedAt:
		return m.UpdatedAt()
	case ubereatsinvoice.FieldTaxDate:
		return m.TaxDate()
	case ubereatsinvoice.FieldCustomerCompany:
		return m.CustomerCompany()
	case ubereatsinvoice.FieldRestaurantName:
		return m.RestaurantName()
	case ubereatsinvoice.FieldRestaurantAddress:
		return m.RestaurantAddress()
	case ubereatsinvoice.FieldBusinessID:
		return m.BusinessID()
	case ubereatsinvoice.FieldCustomerVatID:
		return m.CustomerVatID()
	case ubereatsinvoice.FieldTaxNumber:
		return m.TaxNumber()
	case ubereatsinvoice.FieldTotalOrders:
		return m.TotalOrders()
	case ubereatsinvoice.FieldTotalOrderValue:
		return m.TotalOrderValue()
	case ubereatsinvoice.FieldGrossRevenueAfterDiscounts:
		return m.GrossRevenueAfterDiscounts()
	case ubereatsinvoice.FieldCommissionOwnDelivery:
		return m.CommissionOwnDelivery()
	case ubereatsinvoice.FieldCommissionPickup:
		return m.CommissionPickup()
	case ubereatsinvoice.FieldUberEatsFee:
		return m.UberEatsFee()
	case ubereatsinvoice.FieldVat19:
		return m.Vat19()
	case ubereatsinvoice.FieldCashCollected:
		return m.CashCollected()
	case ubereatsinvoice.FieldTotalPayout:
		return m.TotalPayout()
	case ubereatsinvoice.FieldNetAmount:
		return m.NetAmount()
	case ubereatsinvoice.FieldVatAmount:
		return m.VatAmount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UberEatsInvoiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ubereatsinvoice.FieldInvoiceNumber:
		return m.OldInvoiceNumber(ctx)
	case ubereatsinvoice.FieldInvoiceDate:
		return m.OldInvoiceDate(ctx)
	case ubereatsinvoice.FieldPeriodStart:
		return m.OldPeriodStart(ctx)
	case ubereatsinvoice.FieldPeriodEnd:
		return m.OldPeriodEnd(ctx)
	case ubereatsinvoice.FieldSupplierName:
		return m.OldSupplierName(ctx)
	case ubereatsinvoice.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case ubereatsinvoice.FieldStatus:
		return m.OldStatus(ctx)
	case ubereatsinvoice.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case ubereatsinvoice.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case ubereatsinvoice.FieldRawText:
		return m.OldRawText(ctx)
	case ubereatsinvoice.FieldSourceFilename:
		return m.OldSourceFilename(ctx)
	case ubereatsinvoice.FieldEmailSubject:
		return m.OldEmailSubject(ctx)
	case ubereatsinvoice.FieldEmailSender:
		return m.OldEmailSender(ctx)
	case ubereatsinvoice.FieldEmailDate:
		return m.OldEmailDate(ctx)
	case ubereatsinvoice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ubereatsinvoice.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case ubereatsinvoice.FieldTaxDate:
		return m.OldTaxDate(ctx)
	case ubereatsinvoice.FieldCustomerCompany:
		return m.OldCustomerCompany(ctx)
	case ubereatsinvoice.FieldRestaurantName:
		return m.OldRestaurantName(ctx)
	case ubereatsinvoice.FieldRestaurantAddress:
		return m.OldRestaurantAddress(ctx)
	case ubereatsinvoice.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case ubereatsinvoice.FieldCustomerVatID:
		return m.OldCustomerVatID(ctx)
	case ubereatsinvoice.FieldTaxNumber:
		return m.OldTaxNumber(ctx)
	case ubereatsinvoice.FieldTotalOrders:
		return m.OldTotalOrders(ctx)
	case ubereatsinvoice.FieldTotalOrderValue:
		return m.OldTotalOrderValue(ctx)
	case ubereatsinvoice.FieldGrossRevenueAfterDiscounts:
		return m.OldGrossRevenueAfterDiscounts(ctx)
	case ubereatsinvoice.FieldCommissionOwnDelivery:
		return m.OldCommissionOwnDelivery(ctx)
	case ubereatsinvoice.FieldCommissionPickup:
		return m.OldCommissionPickup(ctx)
	case ubereatsinvoice.FieldUberEatsFee:
		return m.OldUberEatsFee(ctx)
	case ubereatsinvoice.FieldVat19:
		return m.OldVat19(ctx)
	case ubereatsinvoice.FieldCashCollected:
		return m.OldCashCollected(ctx)
	case ubereatsinvoice.FieldTotalPayout:
		return m.OldTotalPayout(ctx)
	case ubereatsinvoice.FieldNetAmount:
		return m.OldNetAmount(ctx)
	case ubereatsinvoice.FieldVatAmount:
		return m.OldVatAmount(ctx)
	}
	return nil, fmt.Errorf("unknown UberEatsInvoice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UberEatsInvoiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ubereatsinvoice.FieldInvoiceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNumber(v)
		return nil
	case ubereatsinvoice.FieldInvoiceDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceDate(v)
		return nil
	case ubereatsinvoice.FieldPeriodStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodStart(v)
		return nil
	case ubereatsinvoice.FieldPeriodEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodEnd(v)
		return nil
	case ubereatsinvoice.FieldSupplierName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierName(v)
		return nil
	case ubereatsinvoice.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case ubereatsinvoice.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ubereatsinvoice.FieldExtractionConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case ubereatsinvoice.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case ubereatsinvoice.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case ubereatsinvoice.FieldSourceFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFilename(v)
		return nil
	case ubereatsinvoice.FieldEmailSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailSubject(v)
		return nil
	case ubereatsinvoice.FieldEmailSender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailSender(v)
		return nil
	case ubereatsinvoice.FieldEmailDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailDate(v)
		return nil
	case ubereatsinvoice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ubereatsinvoice.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case ubereatsinvoice.FieldTaxDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxDate(v)
		return nil
	case ubereatsinvoice.FieldCustomerCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerCompany(v)
		return nil
	case ubereatsinvoice.FieldRestaurantName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRestaurantName(v)
		return nil
	case ubereatsinvoice.FieldRestaurantAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRestaurantAddress(v)
		return nil
	case ubereatsinvoice.FieldBusinessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case ubereatsinvoice.FieldCustomerVatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerVatID(v)
		return nil
	case ubereatsinvoice.FieldTaxNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxNumber(v)
		return nil
	case ubereatsinvoice.FieldTotalOrders:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalOrders(v)
		return nil
	case ubereatsinvoice.FieldTotalOrderValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalOrderValue(v)
		return nil
	case ubereatsinvoice.FieldGrossRevenueAfterDiscounts:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrossRevenueAfterDiscounts(v)
		return nil
	case ubereatsinvoice.FieldCommissionOwnDelivery:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommissionOwnDelivery(v)
		return nil
	case ubereatsinvoice.FieldCommissionPickup:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommissionPickup(v)
		return nil
	case ubereatsinvoice.FieldUberEatsFee:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUberEatsFee(v)
		return nil
	case ubereatsinvoice.FieldVat19:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVat19(v)
		return nil
	case ubereatsinvoice.FieldCashCollected:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCashCollected(v)
		return nil
	case ubereatsinvoice.FieldTotalPayout:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPayout(v)
		return nil
	case ubereatsinvoice.FieldNetAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetAmount(v)
		return nil
	case ubereatsinvoice.FieldVatAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVatAmount(v)
		return nil
	}
	return fmt.Errorf("unknown UberEatsInvoice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UberEatsInvoiceMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_amount != nil {
		fields = append(fields, ubereatsinvoice.FieldTotalAmount)
	}
	if m.addextraction_confidence != nil {
		fields = append(fields, ubereatsinvoice.FieldExtractionConfidence)
	}
	if m.addtotal_orders != nil {
		fields = append(fields, ubereatsinvoice.FieldTotalOrders)
	}
	if m.addtotal_order_value != nil {
		fields = append(fields, ubereatsinvoice.FieldTotalOrderValue)
	}
	if m.addgross_revenue_after_discounts != nil {
		fields = append(fields, ubereatsinvoice.FieldGrossRevenueAfterDiscounts)
	}
	if m.addcommission_own_delivery != nil {
		fields = append(fields, ubereatsinvoice.FieldCommissionOwnDelivery)
	}
	if m.addcommission_pickup != nil {
		fields = append(fields, ubereatsinvoice.FieldCommissionPickup)
	}
	if m.adduber_eats_fee != nil {
		fields = append(fields, ubereatsinvoice.FieldUberEatsFee)
	}
	if m.addvat_19 != nil {
		fields = append(fields, ubereatsinvoice.FieldVat19)
	}
	if m.addcash_collected != nil {
		fields = append(fields, ubereatsinvoice.FieldCashCollected)
	}
	if m.addtotal_payout != nil {
		fields = append(fields, ubereatsinvoice.FieldTotalPayout)
	}
	if m.addnet_amount != nil {
		fields = append(fields, ubereatsinvoice.FieldNetAmount)
	}
	if m.addvat_amount != nil {
		fields = append(fields, ubereatsinvoice.FieldVatAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UberEatsInvoiceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ubereatsinvoice.FieldTotalAmount:
		return m.AddedTotalAmount()
	case ubereatsinvoice.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	case ubereatsinvoice.FieldTotalOrders:
		return m.AddedTotalOrders()
	case ubereatsinvoice.FieldTotalOrderValue:
		return m.AddedTotalOrderValue()
	case ubereatsinvoice.FieldGrossRevenueAfterDiscounts:
		return m.AddedGrossRevenueAfterDiscounts()
	case ubereatsinvoice.FieldCommissionOwnDelivery:
		return m.AddedCommissionOwnDelivery()
	case ubereatsinvoice.FieldCommissionPickup:
		return m.AddedCommissionPickup()
	case ubereatsinvoice.FieldUberEatsFee:
		return m.AddedUberEatsFee()
	case ubereatsinvoice.FieldVat19:
		return m.AddedVat19()
	case ubereatsinvoice.FieldCashCollected:
		return m.AddedCashCollected()
	case ubereatsinvoice.FieldTotalPayout:
		return m.AddedTotalPayout()
	case ubereatsinvoice.FieldNetAmount:
		return m.AddedNetAmount()
	case ubereatsinvoice.FieldVatAmount:
		return m.AddedVatAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UberEatsInvoiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ubereatsinvoice.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	case ubereatsinvoice.FieldExtractionConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	case ubereatsinvoice.FieldTotalOrders:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalOrders(v)
		return nil
	case ubereatsinvoice.FieldTotalOrderValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalOrderValue(v)
		return nil
	case ubereatsinvoice.FieldGrossRevenueAfterDiscounts:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrossRevenueAfterDiscounts(v)
		return nil
	case ubereatsinvoice.FieldCommissionOwnDelivery:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommissionOwnDelivery(v)
		return nil
	case ubereatsinvoice.FieldCommissionPickup:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommissionPickup(v)
		return nil
	case ubereatsinvoice.FieldUberEatsFee:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUberEatsFee(v)
		return nil
	case ubereatsinvoice.FieldVat19:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVat19(v)
		return nil
	case ubereatsinvoice.FieldCashCollected:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCashCollected(v)
		return nil
	case ubereatsinvoice.FieldTotalPayout:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPayout(v)
		return nil
	case ubereatsinvoice.FieldNetAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNetAmount(v)
		return nil
	case ubereatsinvoice.FieldVatAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVatAmount(v)
		return nil
	}
	return fmt.Errorf("unknown UberEatsInvoice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UberEatsInvoiceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ubereatsinvoice.FieldInvoiceDate) {
		fields = append(fields, ubereatsinvoice.FieldInvoiceDate)
	}
	if m.FieldCleared(ubereatsinvoice.FieldPeriodStart) {
		fields = append(fields, ubereatsinvoice.FieldPeriodStart)
	}
	if m.FieldCleared(ubereatsinvoice.FieldPeriodEnd) {
		fields = append(fields, ubereatsinvoice.FieldPeriodEnd)
	}
	if m.FieldCleared(ubereatsinvoice.FieldSupplierName) {
		fields = append(fields, ubereatsinvoice.FieldSupplierName)
	}
	if m.FieldCleared(ubereatsinvoice.FieldTotalAmount) {
		fields = append(fields, ubereatsinvoice.FieldTotalAmount)
	}
	if m.FieldCleared(ubereatsinvoice.FieldRawText) {
		fields = append(fields, ubereatsinvoice.FieldRawText)
	}
	if m.FieldCleared(ubereatsinvoice.FieldSourceFilename) {
		fields = append(fields, ubereatsinvoice.FieldSourceFilename)
	}
	if m.FieldCleared(ubereatsinvoice.FieldEmailSubject) {
		fields = append(fields, ubereatsinvoice.FieldEmailSubject)
	}
	if m.FieldCleared(ubereatsinvoice.FieldEmailSender) {
		fields = append(fields, ubereatsinvoice.FieldEmailSender)
	}
	if m.FieldCleared(ubereatsinvoice.FieldEmailDate) {
		fields = append(fields, ubereatsinvoice.FieldEmailDate)
	}
	if m.FieldCleared(ubereatsinvoice.FieldTaxDate) {
		fields = append(fields, ubereatsinvoice.FieldTaxDate)
	}
	if m.FieldCleared(ubereatsinvoice.FieldCustomerCompany) {
		fields = append(fields, ubereatsinvoice.FieldCustomerCompany)
	}
	if m.FieldCleared(ubereatsinvoice.FieldRestaurantName) {
		fields = append(fields, ubereatsinvoice.FieldRestaurantName)
	}
	if m.FieldCleared(ubereatsinvoice.FieldRestaurantAddress) {
		fields = append(fields, ubereatsinvoice.FieldRestaurantAddress)
	}
	if m.FieldCleared(ubereatsinvoice.FieldBusinessID) {
		fields = append(fields, ubereatsinvoice.FieldBusinessID)
	}
	if m.FieldCleared(ubereatsinvoice.FieldCustomerVatID) {
		fields = append(fields, ubereatsinvoice.FieldCustomerVatID)
	}
	if m.FieldCleared(ubereatsinvoice.FieldTaxNumber) {
		fields = append(fields, ubereatsinvoice.FieldTaxNumber)
	}
	if m.FieldCleared(ubereatsinvoice.FieldTotalOrders) {
		fields = append(fields, ubereatsinvoice.FieldTotalOrders)
	}
	if m.FieldCleared(ubereatsinvoice.FieldTotalOrderValue) {
		fields = append(fields, ubereatsinvoice.FieldTotalOrderValue)
	}
	if m.FieldCleared(ubereatsinvoice.FieldGrossRevenueAfterDiscounts) {
		fields = append(fields, ubereatsinvoice.FieldGrossRevenueAfterDiscounts)
	}
	if m.FieldCleared(ubereatsinvoice.FieldCommissionOwnDelivery) {
		fields = append(fields, ubereatsinvoice.FieldCommissionOwnDelivery)
	}
	if m.FieldCleared(ubereatsinvoice.FieldCommissionPickup) {
		fields = append(fields, ubereatsinvoice.FieldCommissionPickup)
	}
	if m.FieldCleared(ubereatsinvoice.FieldUberEatsFee) {
		fields = append(fields, ubereatsinvoice.FieldUberEatsFee)
	}
	if m.FieldCleared(ubereatsinvoice.FieldVat19) {
		fields = append(fields, ubereatsinvoice.FieldVat19)
	}
	if m.FieldCleared(ubereatsinvoice.FieldCashCollected) {
		fields = append(fields, ubereatsinvoice.FieldCashCollected)
	}
	if m.FieldCleared(ubereatsinvoice.FieldTotalPayout) {
		fields = append(fields, ubereatsinvoice.FieldTotalPayout)
	}
	if m.FieldCleared(ubereatsinvoice.FieldNetAmount) {
		fields = append(fields, ubereatsinvoice.FieldNetAmount)
	}
	if m.FieldCleared(ubereatsinvoice.FieldVatAmount) {
		fields = append(fields, ubereatsinvoice.FieldVatAmount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UberEatsInvoiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UberEatsInvoiceMutation) ClearField(name string) error {
	switch name {
	case ubereatsinvoice.FieldInvoiceDate:
		m.ClearInvoiceDate()
		return nil
	case ubereatsinvoice.FieldPeriodStart:
		m.ClearPeriodStart()
		return nil
	case ubereatsinvoice.FieldPeriodEnd:
		m.ClearPeriodEnd()
		return nil
	case ubereatsinvoice.FieldSupplierName:
		m.ClearSupplierName()
		return nil
	case ubereatsinvoice.FieldTotalAmount:
		m.ClearTotalAmount()
		return nil
	case ubereatsinvoice.FieldRawText:
		m.ClearRawText()
		return nil
	case ubereatsinvoice.FieldSourceFilename:
		m.ClearSourceFilename()
		return nil
	case ubereatsinvoice.FieldEmailSubject:
		m.ClearEmailSubject()
		return nil
	case ubereatsinvoice.FieldEmailSender:
		m.ClearEmailSender()
		return nil
	case ubereatsinvoice.FieldEmailDate:
		m.ClearEmailDate()
		return nil
	case ubereatsinvoice.FieldTaxDate:
		m.ClearTaxDate()
		return nil
	case ubereatsinvoice.FieldCustomerCompany:
		m.ClearCustomerCompany()
		return nil
	case ubereatsinvoice.FieldRestaurantName:
		m.ClearRestaurantName()
		return nil
	case ubereatsinvoice.FieldRestaurantAddress:
		m.ClearRestaurantAddress()
		return nil
	case ubereatsinvoice.FieldBusinessID:
		m.ClearBusinessID()
		return nil
	case ubereatsinvoice.FieldCustomerVatID:
		m.ClearCustomerVatID()
		return nil
	case ubereatsinvoice.FieldTaxNumber:
		m.ClearTaxNumber()
		return nil
	case ubereatsinvoice.FieldTotalOrders:
		m.ClearTotalOrders()
		return nil
	case ubereatsinvoice.FieldTotalOrderValue:
		m.ClearTotalOrderValue()
		return nil
	case ubereatsinvoice.FieldGrossRevenueAfterDiscounts:
		m.ClearGrossRevenueAfterDiscounts()
		return nil
	case ubereatsinvoice.FieldCommissionOwnDelivery:
		m.ClearCommissionOwnDelivery()
		return nil
	case ubereatsinvoice.FieldCommissionPickup:
		m.ClearCommissionPickup()
		return nil
	case ubereatsinvoice.FieldUberEatsFee:
		m.ClearUberEatsFee()
		return nil
	case ubereatsinvoice.FieldVat19:
		m.ClearVat19()
		return nil
	case ubereatsinvoice.FieldCashCollected:
		m.ClearCashCollected()
		return nil
	case ubereatsinvoice.FieldTotalPayout:
		m.ClearTotalPayout()
		return nil
	case ubereatsinvoice.FieldNetAmount:
		m.ClearNetAmount()
		return nil
	case ubereatsinvoice.FieldVatAmount:
		m.ClearVatAmount()
		return nil
	}
	return fmt.Errorf("unknown UberEatsInvoice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UberEatsInvoiceMutation) ResetField(name string) error {
	switch name {
	case ubereatsinvoice.FieldInvoiceNumber:
		m.ResetInvoiceNumber()
		return nil
	case ubereatsinvoice.FieldInvoiceDate:
		m.ResetInvoiceDate()
		return nil
	case ubereatsinvoice.FieldPeriodStart:
		m.ResetPeriodStart()
		return nil
	case ubereatsinvoice.FieldPeriodEnd:
		m.ResetPeriodEnd()
		return nil
	case ubereatsinvoice.FieldSupplierName:
		m.ResetSupplierName()
		return nil
	case ubereatsinvoice.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case ubereatsinvoice.FieldStatus:
		m.ResetStatus()
		return nil
	case ubereatsinvoice.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case ubereatsinvoice.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case ubereatsinvoice.FieldRawText:
		m.ResetRawText()
		return nil
	case ubereatsinvoice.FieldSourceFilename:
		m.ResetSourceFilename()
		return nil
	case ubereatsinvoice.FieldEmailSubject:
		m.ResetEmailSubject()
		return nil
	case ubereatsinvoice.FieldEmailSender:
		m.ResetEmailSender()
		return nil
	case ubereatsinvoice.FieldEmailDate:
		m.ResetEmailDate()
		return nil
	case ubereatsinvoice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ubereatsinvoice.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case ubereatsinvoice.FieldTaxDate:
		m.ResetTaxDate()
		return nil
	case ubereatsinvoice.FieldCustomerCompany:
		m.ResetCustomerCompany()
		return nil
	case ubereatsinvoice.FieldRestaurantName:
		m.ResetRestaurantName()
		return nil
	case ubereatsinvoice.FieldRestaurantAddress:
		m.ResetRestaurantAddress()
		return nil
	case ubereatsinvoice.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case ubereatsinvoice.FieldCustomerVatID:
		m.ResetCustomerVatID()
		return nil
	case ubereatsinvoice.FieldTaxNumber:
		m.ResetTaxNumber()
		return nil
	case ubereatsinvoice.FieldTotalOrders:
		m.ResetTotalOrders()
		return nil
	case ubereatsinvoice.FieldTotalOrderValue:
		m.ResetTotalOrderValue()
		return nil
	case ubereatsinvoice.FieldGrossRevenueAfterDiscounts:
		m.ResetGrossRevenueAfterDiscounts()
		return nil
	case ubereatsinvoice.FieldCommissionOwnDelivery:
		m.ResetCommissionOwnDelivery()
		return nil
	case ubereatsinvoice.FieldCommissionPickup:
		m.ResetCommissionPickup()
		return nil
	case ubereatsinvoice.FieldUberEatsFee:
		m.ResetUberEatsFee()
		return nil
	case ubereatsinvoice.FieldVat19:
		m.ResetVat19()
		return nil
	case ubereatsinvoice.FieldCashCollected:
		m.ResetCashCollected()
		return nil
	case ubereatsinvoice.FieldTotalPayout:
		m.ResetTotalPayout()
		return nil
	case ubereatsinvoice.FieldNetAmount:
		m.ResetNetAmount()
		return nil
	case ubereatsinvoice.FieldVatAmount:
		m.ResetVatAmount()
		return nil
	}
	return fmt.Errorf("unknown UberEatsInvoice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UberEatsInvoiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UberEatsInvoiceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UberEatsInvoiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UberEatsInvoiceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UberEatsInvoiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UberEatsInvoiceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UberEatsInvoiceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UberEatsInvoice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UberEatsInvoiceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UberEatsInvoice edge %s", name)
}

// WoltInvoiceMutation represents an operation that mutates the WoltInvoice nodes in the graph.
type WoltInvoiceMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	invoice_number              *string
	invoice_date                *time.Time
	period_start                *time.Time
	period_end                  *time.Time
	supplier_name               *string
	total_amount                *float64
	addtotal_amount             *float64
	status                      *string
	extraction_confidence       *int
	addextraction_confidence    *int
	needs_review                *bool
	raw_text                    *string
	source_filename             *string
	email_subject               *string
	email_sender                *string
	email_date                  *time.Time
	created_at                  *time.Time
	updated_at                  *time.Time
	supplier_address            *string
	supplier_vat_id             *string
	restaurant_name             *string
	business_id                 *string
	goods_net_7                 *float64
	addgoods_net_7              *float64
	goods_vat_7                 *float64
	addgoods_vat_7              *float64
	goods_gross_7               *float64
	addgoods_gross_7            *float64
	goods_net_19                *float64
	addgoods_net_19             *float64
	goods_vat_19                *float64
	addgoods_vat_19             *float64
	goods_gross_19              *float64
	addgoods_gross_19           *float64
	goods_net_total             *float64
	addgoods_net_total          *float64
	goods_vat_total             *float64
	addgoods_vat_total          *float64
	goods_gross_total           *float64
	addgoods_gross_total        *float64
	distribution_net_total      *float64
	adddistribution_net_total   *float64
	distribution_vat_total      *float64
	adddistribution_vat_total   *float64
	distribution_gross_total    *float64
	adddistribution_gross_total *float64
	netprice_net_7              *float64
	addnetprice_net_7           *float64
	netprice_vat_7              *float64
	addnetprice_vat_7           *float64
	netprice_gross_7            *float64
	addnetprice_gross_7         *float64
	netprice_net_19             *float64
	addnetprice_net_19          *float64
	netprice_vat_19             *float64
	addnetprice_vat_19          *float64
	netprice_gross_19           *float64
	addnetprice_gross_19        *float64
	netprice_net_total          *float64
	addnetprice_net_total       *float64
	netprice_vat_total          *float64
	addnetprice_vat_total       *float64
	netprice_gross_total        *float64
	addnetprice_gross_total     *float64
	end_amount_net              *float64
	addend_amount_net           *float64
	end_amount_vat              *float64
	addend_amount_vat           *float64
	end_amount_gross            *float64
	addend_amount_gross         *float64
	netting_merchant_invoice    *string
	netting_merchant_net        *float64
	addnetting_merchant_net     *float64
	netting_merchant_vat        *float64
	addnetting_merchant_vat     *float64
	netting_merchant_gross      *float64
	addnetting_merchant_gross   *float64
	netting_wolt_invoice        *string
	netting_wolt_net            *float64
	addnetting_wolt_net         *float64
	netting_wolt_vat            *float64
	addnetting_wolt_vat         *float64
	netting_wolt_gross          *float64
	addnetting_wolt_gross       *float64
	netting_net_payout          *float64
	addnetting_net_payout       *float64
	netting_parsed_json         *map[string]interface{}
	netting_raw_text            *string
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*WoltInvoice, error)
	predicates                  []predicate.WoltInvoice
}

var _ ent.Mutation = (*WoltInvoiceMutation)(nil)

// woltinvoiceOption allows management of the mutation configuration using functional options.
type woltinvoiceOption func(*WoltInvoiceMutation)

// newWoltInvoiceMutation creates new mutation for the WoltInvoice entity.
func newWoltInvoiceMutation(c config, op Op, opts ...woltinvoiceOption) *WoltInvoiceMutation {
	m := &WoltInvoiceMutation{
		config:        c,
		op:            op,
		typ:           TypeWoltInvoice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWoltInvoiceID sets the ID field of the mutation.
func withWoltInvoiceID(id uuid.UUID) woltinvoiceOption {
	return func(m *WoltInvoiceMutation) {
		var (
			err   error
			once  sync.Once
			value *WoltInvoice
		)
		m.oldValue = func(ctx context.Context) (*WoltInvoice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WoltInvoice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWoltInvoice sets the old WoltInvoice of the mutation.
func withWoltInvoice(node *WoltInvoice) woltinvoiceOption {
	return func(m *WoltInvoiceMutation) {
		m.oldValue = func(context.Context) (*WoltInvoice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WoltInvoiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WoltInvoiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WoltInvoice entities.
func (m *WoltInvoiceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WoltInvoiceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WoltInvoiceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WoltInvoice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInvoiceNumber sets the "invoice_number" field.
func (m *WoltInvoiceMutation) SetInvoiceNumber(s string) {
	m.invoice_number = &s
}

// InvoiceNumber returns the value of the "invoice_number" field in the mutation.
func (m *WoltInvoiceMutation) InvoiceNumber() (r string, exists bool) {
	v := m.invoice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNumber returns the old "invoice_number" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldInvoiceNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNumber: %w", err)
	}
	return oldValue.InvoiceNumber, nil
}

// ResetInvoiceNumber resets all changes to the "invoice_number" field.
func (m *WoltInvoiceMutation) ResetInvoiceNumber() {
	m.invoice_number = nil
}

// SetInvoiceDate sets the "invoice_date" field.
func (m *WoltInvoiceMutation) SetInvoiceDate(t time.Time) {
	m.invoice_date = &t
}

// InvoiceDate returns the value of the "invoice_date" field in the mutation.
func (m *WoltInvoiceMutation) InvoiceDate() (r time.Time, exists bool) {
	v := m.invoice_date
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceDate returns the old "invoice_date" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldInvoiceDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceDate: %w", err)
	}
	return oldValue.InvoiceDate, nil
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (m *WoltInvoiceMutation) ClearInvoiceDate() {
	m.invoice_date = nil
	m.clearedFields[woltinvoice.FieldInvoiceDate] = struct{}{}
}

// InvoiceDateCleared returns if the "invoice_date" field was cleared in this mutation.
func (m *WoltInvoiceMutation) InvoiceDateCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldInvoiceDate]
	return ok
}

// ResetInvoiceDate resets all changes to the "invoice_date" field.
func (m *WoltInvoiceMutation) ResetInvoiceDate() {
	m.invoice_date = nil
	delete(m.clearedFields, woltinvoice.FieldInvoiceDate)
}

// SetPeriodStart sets the "period_start" field.
func (m *WoltInvoiceMutation) SetPeriodStart(t time.Time) {
	m.period_start = &t
}

// PeriodStart returns the value of the "period_start" field in the mutation.
func (m *WoltInvoiceMutation) PeriodStart() (r time.Time, exists bool) {
	v := m.period_start
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodStart returns the old "period_start" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldPeriodStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodStart: %w", err)
	}
	return oldValue.PeriodStart, nil
}

// ClearPeriodStart clears the value of the "period_start" field.
func (m *WoltInvoiceMutation) ClearPeriodStart() {
	m.period_start = nil
	m.clearedFields[woltinvoice.FieldPeriodStart] = struct{}{}
}

// PeriodStartCleared returns if the "period_start" field was cleared in this mutation.
func (m *WoltInvoiceMutation) PeriodStartCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldPeriodStart]
	return ok
}

// ResetPeriodStart resets all changes to the "period_start" field.
func (m *WoltInvoiceMutation) ResetPeriodStart() {
	m.period_start = nil
	delete(m.clearedFields, woltinvoice.FieldPeriodStart)
}

// SetPeriodEnd sets the "period_end" field.
func (m *WoltInvoiceMutation) SetPeriodEnd(t time.Time) {
	m.period_end = &t
}

// PeriodEnd returns the value of the "period_end" field in the mutation.
func (m *WoltInvoiceMutation) PeriodEnd() (r time.Time, exists bool) {
	v := m.period_end
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodEnd returns the old "period_end" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldPeriodEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodEnd: %w", err)
	}
	return oldValue.PeriodEnd, nil
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (m *WoltInvoiceMutation) ClearPeriodEnd() {
	m.period_end = nil
	m.clearedFields[woltinvoice.FieldPeriodEnd] = struct{}{}
}

// PeriodEndCleared returns if the "period_end" field was cleared in this mutation.
func (m *WoltInvoiceMutation) PeriodEndCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldPeriodEnd]
	return ok
}

// ResetPeriodEnd resets all changes to the "period_end" field.
func (m *WoltInvoiceMutation) ResetPeriodEnd() {
	m.period_end = nil
	delete(m.clearedFields, woltinvoice.FieldPeriodEnd)
}

// SetSupplierName sets the "supplier_name" field.
func (m *WoltInvoiceMutation) SetSupplierName(s string) {
	m.supplier_name = &s
}

// SupplierName returns the value of the "supplier_name" field in the mutation.
func (m *WoltInvoiceMutation) SupplierName() (r string, exists bool) {
	v := m.supplier_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierName returns the old "supplier_name" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldSupplierName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierName: %w", err)
	}
	return oldValue.SupplierName, nil
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (m *WoltInvoiceMutation) ClearSupplierName() {
	m.supplier_name = nil
	m.clearedFields[woltinvoice.FieldSupplierName] = struct{}{}
}

// SupplierNameCleared returns if the "supplier_name" field was cleared in this mutation.
func (m *WoltInvoiceMutation) SupplierNameCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldSupplierName]
	return ok
}

// ResetSupplierName resets all changes to the "supplier_name" field.
func (m *WoltInvoiceMutation) ResetSupplierName() {
	m.supplier_name = nil
	delete(m.clearedFields, woltinvoice.FieldSupplierName)
}

// SetTotalAmount sets the "total_amount" field.
func (m *WoltInvoiceMutation) SetTotalAmount(f float64) {
	m.total_amount = &f
	m.addtotal_amount = nil
}

// TotalAmount returns the value of the "total_amount" field in the mutation.
func (m *WoltInvoiceMutation) TotalAmount() (r float64, exists bool) {
	v := m.total_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmount returns the old "total_amount" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldTotalAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmount: %w", err)
	}
	return oldValue.TotalAmount, nil
}

// AddTotalAmount adds f to the "total_amount" field.
func (m *WoltInvoiceMutation) AddTotalAmount(f float64) {
	if m.addtotal_amount != nil {
		*m.addtotal_amount += f
	} else {
		m.addtotal_amount = &f
	}
}

// AddedTotalAmount returns the value that was added to the "total_amount" field in this mutation.
func (m *WoltInvoiceMutation) AddedTotalAmount() (r float64, exists bool) {
	v := m.addtotal_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalAmount clears the value of the "total_amount" field.
func (m *WoltInvoiceMutation) ClearTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	m.clearedFields[woltinvoice.FieldTotalAmount] = struct{}{}
}

// TotalAmountCleared returns if the "total_amount" field was cleared in this mutation.
func (m *WoltInvoiceMutation) TotalAmountCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldTotalAmount]
	return ok
}

// ResetTotalAmount resets all changes to the "total_amount" field.
func (m *WoltInvoiceMutation) ResetTotalAmount() {
	m.total_amount = nil
	m.addtotal_amount = nil
	delete(m.clearedFields, woltinvoice.FieldTotalAmount)
}

// SetStatus sets the "status" field.
func (m *WoltInvoiceMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *WoltInvoiceMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WoltInvoiceMutation) ResetStatus() {
	m.status = nil
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *WoltInvoiceMutation) SetExtractionConfidence(i int) {
	m.extraction_confidence = &i
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *WoltInvoiceMutation) ExtractionConfidence() (r int, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldExtractionConfidence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds i to the "extraction_confidence" field.
func (m *WoltInvoiceMutation) AddExtractionConfidence(i int) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += i
	} else {
		m.addextraction_confidence = &i
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *WoltInvoiceMutation) AddedExtractionConfidence() (r int, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *WoltInvoiceMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *WoltInvoiceMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *WoltInvoiceMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *WoltInvoiceMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetRawText sets the "raw_text" field.
func (m *WoltInvoiceMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *WoltInvoiceMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *WoltInvoiceMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[woltinvoice.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *WoltInvoiceMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *WoltInvoiceMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, woltinvoice.FieldRawText)
}

// SetSourceFilename sets the "source_filename" field.
func (m *WoltInvoiceMutation) SetSourceFilename(s string) {
	m.source_filename = &s
}

// SourceFilename returns the value of the "source_filename" field in the mutation.
func (m *WoltInvoiceMutation) SourceFilename() (r string, exists bool) {
	v := m.source_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFilename returns the old "source_filename" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldSourceFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFilename: %w", err)
	}
	return oldValue.SourceFilename, nil
}

// ClearSourceFilename clears the value of the "source_filename" field.
func (m *WoltInvoiceMutation) ClearSourceFilename() {
	m.source_filename = nil
	m.clearedFields[woltinvoice.FieldSourceFilename] = struct{}{}
}

// SourceFilenameCleared returns if the "source_filename" field was cleared in this mutation.
func (m *WoltInvoiceMutation) SourceFilenameCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldSourceFilename]
	return ok
}

// ResetSourceFilename resets all changes to the "source_filename" field.
func (m *WoltInvoiceMutation) ResetSourceFilename() {
	m.source_filename = nil
	delete(m.clearedFields, woltinvoice.FieldSourceFilename)
}

// SetEmailSubject sets the "email_subject" field.
func (m *WoltInvoiceMutation) SetEmailSubject(s string) {
	m.email_subject = &s
}

// EmailSubject returns the value of the "email_subject" field in the mutation.
func (m *WoltInvoiceMutation) EmailSubject() (r string, exists bool) {
	v := m.email_subject
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailSubject returns the old "email_subject" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldEmailSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailSubject: %w", err)
	}
	return oldValue.EmailSubject, nil
}

// ClearEmailSubject clears the value of the "email_subject" field.
func (m *WoltInvoiceMutation) ClearEmailSubject() {
	m.email_subject = nil
	m.clearedFields[woltinvoice.FieldEmailSubject] = struct{}{}
}

// EmailSubjectCleared returns if the "email_subject" field was cleared in this mutation.
func (m *WoltInvoiceMutation) EmailSubjectCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldEmailSubject]
	return ok
}

// ResetEmailSubject resets all changes to the "email_subject" field.
func (m *WoltInvoiceMutation) ResetEmailSubject() {
	m.email_subject = nil
	delete(m.clearedFields, woltinvoice.FieldEmailSubject)
}

// SetEmailSender sets the "email_sender" field.
func (m *WoltInvoiceMutation) SetEmailSender(s string) {
	m.email_sender = &s
}

// EmailSender returns the value of the "email_sender" field in the mutation.
func (m *WoltInvoiceMutation) EmailSender() (r string, exists bool) {
	v := m.email_sender
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailSender returns the old "email_sender" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldEmailSender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailSender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailSender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailSender: %w", err)
	}
	return oldValue.EmailSender, nil
}

// ClearEmailSender clears the value of the "email_sender" field.
func (m *WoltInvoiceMutation) ClearEmailSender() {
	m.email_sender = nil
	m.clearedFields[woltinvoice.FieldEmailSender] = struct{}{}
}

// EmailSenderCleared returns if the "email_sender" field was cleared in this mutation.
func (m *WoltInvoiceMutation) EmailSenderCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldEmailSender]
	return ok
}

// ResetEmailSender resets all changes to the "email_sender" field.
func (m *WoltInvoiceMutation) ResetEmailSender() {
	m.email_sender = nil
	delete(m.clearedFields, woltinvoice.FieldEmailSender)
}

// SetEmailDate sets the "email_date" field.
func (m *WoltInvoiceMutation) SetEmailDate(t time.Time) {
	m.email_date = &t
}

// EmailDate returns the value of the "email_date" field in the mutation.
func (m *WoltInvoiceMutation) EmailDate() (r time.Time, exists bool) {
	v := m.email_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailDate returns the old "email_date" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldEmailDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailDate: %w", err)
	}
	return oldValue.EmailDate, nil
}

// ClearEmailDate clears the value of the "email_date" field.
func (m *WoltInvoiceMutation) ClearEmailDate() {
	m.email_date = nil
	m.clearedFields[woltinvoice.FieldEmailDate] = struct{}{}
}

// EmailDateCleared returns if the "email_date" field was cleared in this mutation.
func (m *WoltInvoiceMutation) EmailDateCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldEmailDate]
	return ok
}

// ResetEmailDate resets all changes to the "email_date" field.
func (m *WoltInvoiceMutation) ResetEmailDate() {
	m.email_date = nil
	delete(m.clearedFields, woltinvoice.FieldEmailDate)
}

// SetCreatedAt sets the "created_at" field.
func (m *WoltInvoiceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WoltInvoiceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WoltInvoiceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WoltInvoiceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WoltInvoiceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WoltInvoiceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSupplierAddress sets the "supplier_address" field.
func (m *WoltInvoiceMutation) SetSupplierAddress(s string) {
	m.supplier_address = &s
}

// SupplierAddress returns the value of the "supplier_address" field in the mutation.
func (m *WoltInvoiceMutation) SupplierAddress() (r string, exists bool) {
	v := m.supplier_address
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierAddress returns the old "supplier_address" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldSupplierAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierAddress: %w", err)
	}
	return oldValue.SupplierAddress, nil
}

// ClearSupplierAddress clears the value of the "supplier_address" field.
func (m *WoltInvoiceMutation) ClearSupplierAddress() {
	m.supplier_address = nil
	m.clearedFields[woltinvoice.FieldSupplierAddress] = struct{}{}
}

// SupplierAddressCleared returns if the "supplier_address" field was cleared in this mutation.
func (m *WoltInvoiceMutation) SupplierAddressCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldSupplierAddress]
	return ok
}

// ResetSupplierAddress resets all changes to the "supplier_address" field.
func (m *WoltInvoiceMutation) ResetSupplierAddress() {
	m.supplier_address = nil
	delete(m.clearedFields, woltinvoice.FieldSupplierAddress)
}

// SetSupplierVatID sets the "supplier_vat_id" field.
func (m *WoltInvoiceMutation) SetSupplierVatID(s string) {
	m.supplier_vat_id = &s
}

// SupplierVatID returns the value of the "supplier_vat_id" field in the mutation.
func (m *WoltInvoiceMutation) SupplierVatID() (r string, exists bool) {
	v := m.supplier_vat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierVatID returns the old "supplier_vat_id" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldSupplierVatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierVatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierVatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierVatID: %w", err)
	}
	return oldValue.SupplierVatID, nil
}

// ClearSupplierVatID clears the value of the "supplier_vat_id" field.
func (m *WoltInvoiceMutation) ClearSupplierVatID() {
	m.supplier_vat_id = nil
	m.clearedFields[woltinvoice.FieldSupplierVatID] = struct{}{}
}

// SupplierVatIDCleared returns if the "supplier_vat_id" field was cleared in this mutation.
func (m *WoltInvoiceMutation) SupplierVatIDCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldSupplierVatID]
	return ok
}

// ResetSupplierVatID resets all changes to the "supplier_vat_id" field.
func (m *WoltInvoiceMutation) ResetSupplierVatID() {
	m.supplier_vat_id = nil
	delete(m.clearedFields, woltinvoice.FieldSupplierVatID)
}

// SetRestaurantName sets the "restaurant_name" field.
func (m *WoltInvoiceMutation) SetRestaurantName(s string) {
	m.restaurant_name = &s
}

// RestaurantName returns the value of the "restaurant_name" field in the mutation.
func (m *WoltInvoiceMutation) RestaurantName() (r string, exists bool) {
	v := m.restaurant_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRestaurantName returns the old "restaurant_name" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldRestaurantName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRestaurantName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRestaurantName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRestaurantName: %w", err)
	}
	return oldValue.RestaurantName, nil
}

// ClearRestaurantName clears the value of the "restaurant_name" field.
func (m *WoltInvoiceMutation) ClearRestaurantName() {
	m.restaurant_name = nil
	m.clearedFields[woltinvoice.FieldRestaurantName] = struct{}{}
}

// RestaurantNameCleared returns if the "restaurant_name" field was cleared in this mutation.
func (m *WoltInvoiceMutation) RestaurantNameCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldRestaurantName]
	return ok
}

// ResetRestaurantName resets all changes to the "restaurant_name" field.
func (m *WoltInvoiceMutation) ResetRestaurantName() {
	m.restaurant_name = nil
	delete(m.clearedFields, woltinvoice.FieldRestaurantName)
}

// SetBusinessID sets the "business_id" field.
func (m *WoltInvoiceMutation) SetBusinessID(s string) {
	m.business_id = &s
}

// BusinessID returns the value of the "business_id" field in the mutation.
func (m *WoltInvoiceMutation) BusinessID() (r string, exists bool) {
	v := m.business_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessID returns the old "business_id" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldBusinessID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessID: %w", err)
	}
	return oldValue.BusinessID, nil
}

// ClearBusinessID clears the value of the "business_id" field.
func (m *WoltInvoiceMutation) ClearBusinessID() {
	m.business_id = nil
	m.clearedFields[woltinvoice.FieldBusinessID] = struct{}{}
}

// BusinessIDCleared returns if the "business_id" field was cleared in this mutation.
func (m *WoltInvoiceMutation) BusinessIDCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldBusinessID]
	return ok
}

// ResetBusinessID resets all changes to the "business_id" field.
func (m *WoltInvoiceMutation) ResetBusinessID() {
	m.business_id = nil
	delete(m.clearedFields, woltinvoice.FieldBusinessID)
}

// SetGoodsNet7 sets the "goods_net_7" field.
func (m *WoltInvoiceMutation) SetGoodsNet7(f float64) {
	m.goods_net_7 = &f
	m.addgoods_net_7 = nil
}

// GoodsNet7 returns the value of the "goods_net_7" field in the mutation.
func (m *WoltInvoiceMutation) GoodsNet7() (r float64, exists bool) {
	v := m.goods_net_7
	if v == nil {
		return
	}
	return *v, true
}

// OldGoodsNet7 returns the old "goods_net_7" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldGoodsNet7(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoodsNet7 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoodsNet7 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoodsNet7: %w", err)
	}
	return oldValue.GoodsNet7, nil
}

// AddGoodsNet7 adds f to the "goods_net_7" field.
func (m *WoltInvoiceMutation) AddGoodsNet7(f float64) {
	if m.addgoods_net_7 != nil {
		*m.addgoods_net_7 += f
	} else {
		m.addgoods_net_7 = &f
	}
}

// AddedGoodsNet7 returns the value that was added to the "goods_net_7" field in this mutation.
func (m *WoltInvoiceMutation) AddedGoodsNet7() (r float64, exists bool) {
	v := m.addgoods_net_7
	if v == nil {
		return
	}
	return *v, true
}

// ClearGoodsNet7 clears the value of the "goods_net_7" field.
func (m *WoltInvoiceMutation) ClearGoodsNet7() {
	m.goods_net_7 = nil
	m.addgoods_net_7 = nil
	m.clearedFields[woltinvoice.FieldGoodsNet7] = struct{}{}
}

// GoodsNet7Cleared returns if the "goods_net_7" field was cleared in this mutation.
func (m *WoltInvoiceMutation) GoodsNet7Cleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldGoodsNet7]
	return ok
}

// ResetGoodsNet7 resets all changes to the "goods_net_7" field.
func (m *WoltInvoiceMutation) ResetGoodsNet7() {
	m.goods_net_7 = nil
	m.addgoods_net_7 = nil
	delete(m.clearedFields, woltinvoice.FieldGoodsNet7)
}

// SetGoodsVat7 sets the "goods_vat_7" field.
func (m *WoltInvoiceMutation) SetGoodsVat7(f float64) {
	m.goods_vat_7 = &f
	m.addgoods_vat_7 = nil
}

// GoodsVat7 returns the value of the "goods_vat_7" field in the mutation.
func (m *WoltInvoiceMutation) GoodsVat7() (r float64, exists bool) {
	v := m.goods_vat_7
	if v == nil {
		return
	}
	return *v, true
}

// OldGoodsVat7 returns the old "goods_vat_7" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldGoodsVat7(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoodsVat7 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoodsVat7 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoodsVat7: %w", err)
	}
	return oldValue.GoodsVat7, nil
}

// AddGoodsVat7 adds f to the "goods_vat_7" field.
func (m *WoltInvoiceMutation) AddGoodsVat7(f float64) {
	if m.addgoods_vat_7 != nil {
		*m.addgoods_vat_7 += f
	} else {
		m.addgoods_vat_7 = &f
	}
}

// AddedGoodsVat7 returns the value that was added to the "goods_vat_7" field in this mutation.
func (m *WoltInvoiceMutation) AddedGoodsVat7() (r float64, exists bool) {
	v := m.addgoods_vat_7
	if v == nil {
		return
	}
	return *v, true
}

// ClearGoodsVat7 clears the value of the "goods_vat_7" field.
func (m *WoltInvoiceMutation) ClearGoodsVat7() {
	m.goods_vat_7 = nil
	m.addgoods_vat_7 = nil
	m.clearedFields[woltinvoice.FieldGoodsVat7] = struct{}{}
}

// GoodsVat7Cleared returns if the "goods_vat_7" field was cleared in this mutation.
func (m *WoltInvoiceMutation) GoodsVat7Cleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldGoodsVat7]
	return ok
}

// ResetGoodsVat7 resets all changes to the "goods_vat_7" field.
func (m *WoltInvoiceMutation) ResetGoodsVat7() {
	m.goods_vat_7 = nil
	m.addgoods_vat_7 = nil
	delete(m.clearedFields, woltinvoice.FieldGoodsVat7)
}

// SetGoodsGross7 sets the "goods_gross_7" field.
func (m *WoltInvoiceMutation) SetGoodsGross7(f float64) {
	m.goods_gross_7 = &f
	m.addgoods_gross_7 = nil
}

// GoodsGross7 returns the value of the "goods_gross_7" field in the mutation.
func (m *WoltInvoiceMutation) GoodsGross7() (r float64, exists bool) {
	v := m.goods_gross_7
	if v == nil {
		return
	}
	return *v, true
}

// OldGoodsGross7 returns the old "goods_gross_7" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldGoodsGross7(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoodsGross7 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoodsGross7 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoodsGross7: %w", err)
	}
	return oldValue.GoodsGross7, nil
}

// AddGoodsGross7 adds f to the "goods_gross_7" field.
func (m *WoltInvoiceMutation) AddGoodsGross7(f float64) {
	if m.addgoods_gross_7 != nil {
		*m.addgoods_gross_7 += f
	} else {
		m.addgoods_gross_7 = &f
	}
}

// AddedGoodsGross7 returns the value that was added to the "goods_gross_7" field in this mutation.
func (m *WoltInvoiceMutation) AddedGoodsGross7() (r float64, exists bool) {
	v := m.addgoods_gross_7
	if v == nil {
		return
	}
	return *v, true
}

// ClearGoodsGross7 clears the value of the "goods_gross_7" field.
func (m *WoltInvoiceMutation) ClearGoodsGross7() {
	m.goods_gross_7 = nil
	m.addgoods_gross_7 = nil
	m.clearedFields[woltinvoice.FieldGoodsGross7] = struct{}{}
}

// GoodsGross7Cleared returns if the "goods_gross_7" field was cleared in this mutation.
func (m *WoltInvoiceMutation) GoodsGross7Cleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldGoodsGross7]
	return ok
}

// ResetGoodsGross7 resets all changes to the "goods_gross_7" field.
func (m *WoltInvoiceMutation) ResetGoodsGross7() {
	m.goods_gross_7 = nil
	m.addgoods_gross_7 = nil
	delete(m.clearedFields, woltinvoice.FieldGoodsGross7)
}

// SetGoodsNet19 sets the "goods_net_19" field.
func (m *WoltInvoiceMutation) SetGoodsNet19(f float64) {
	m.goods_net_19 = &f
	m.addgoods_net_19 = nil
}

// GoodsNet19 returns the value of the "goods_net_19" field in the mutation.
func (m *WoltInvoiceMutation) GoodsNet19() (r float64, exists bool) {
	v := m.goods_net_19
	if v == nil {
		return
	}
	return *v, true
}

// OldGoodsNet19 returns the old "goods_net_19" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldGoodsNet19(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoodsNet19 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoodsNet19 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoodsNet19: %w", err)
	}
	return oldValue.GoodsNet19, nil
}

// AddGoodsNet19 adds f to the "goods_net_19" field.
func (m *WoltInvoiceMutation) AddGoodsNet19(f float64) {
	if m.addgoods_net_19 != nil {
		*m.addgoods_net_19 += f
	} else {
		m.addgoods_net_19 = &f
	}
}

// AddedGoodsNet19 returns the value that was added to the "goods_net_19" field in this mutation.
func (m *WoltInvoiceMutation) AddedGoodsNet19() (r float64, exists bool) {
	v := m.addgoods_net_19
	if v == nil {
		return
	}
	return *v, true
}

// ClearGoodsNet19 clears the value of the "goods_net_19" field.
func (m *WoltInvoiceMutation) ClearGoodsNet19() {
	m.goods_net_19 = nil
	m.addgoods_net_19 = nil
	m.clearedFields[woltinvoice.FieldGoodsNet19] = struct{}{}
}

// GoodsNet19Cleared returns if the "goods_net_19" field was cleared in this mutation.
func (m *WoltInvoiceMutation) GoodsNet19Cleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldGoodsNet19]
	return ok
}

// ResetGoodsNet19 resets all changes to the "goods_net_19" field.
func (m *WoltInvoiceMutation) ResetGoodsNet19() {
	m.goods_net_19 = nil
	m.addgoods_net_19 = nil
	delete(m.clearedFields, woltinvoice.FieldGoodsNet19)
}

// SetGoodsVat19 sets the "goods_vat_19" field.
func (m *WoltInvoiceMutation) SetGoodsVat19(f float64) {
	m.goods_vat_19 = &f
	m.addgoods_vat_19 = nil
}

// GoodsVat19 returns the value of the "goods_vat_19" field in the mutation.
func (m *WoltInvoiceMutation) GoodsVat19() (r float64, exists bool) {
	v := m.goods_vat_19
	if v == nil {
		return
	}
	return *v, true
}

// OldGoodsVat19 returns the old "goods_vat_19" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldGoodsVat19(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoodsVat19 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoodsVat19 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoodsVat19: %w", err)
	}
	return oldValue.GoodsVat19, nil
}

// AddGoodsVat19 adds f to the "goods_vat_19" field.
func (m *WoltInvoiceMutation) AddGoodsVat19(f float64) {
	if m.addgoods_vat_19 != nil {
		*m.addgoods_vat_19 += f
	} else {
		m.addgoods_vat_19 = &f
	}
}

// AddedGoodsVat19 returns the value that was added to the "goods_vat_19" field in this mutation.
func (m *WoltInvoiceMutation) AddedGoodsVat19() (r float64, exists bool) {
	v := m.addgoods_vat_19
	if v == nil {
		return
	}
	return *v, true
}

// ClearGoodsVat19 clears the value of the "goods_vat_19" field.
func (m *WoltInvoiceMutation) ClearGoodsVat19() {
	m.goods_vat_19 = nil
	m.addgoods_vat_19 = nil
	m.clearedFields[woltinvoice.FieldGoodsVat19] = struct{}{}
}

// GoodsVat19Cleared returns if the "goods_vat_19" field was cleared in this mutation.
func (m *WoltInvoiceMutation) GoodsVat19Cleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldGoodsVat19]
	return ok
}

// ResetGoodsVat19 resets all changes to the "goods_vat_19" field.
func (m *WoltInvoiceMutation) ResetGoodsVat19() {
	m.goods_vat_19 = nil
	m.addgoods_vat_19 = nil
	delete(m.clearedFields, woltinvoice.FieldGoodsVat19)
}

// SetGoodsGross19 sets the "goods_gross_19" field.
func (m *WoltInvoiceMutation) SetGoodsGross19(f float64) {
	m.goods_gross_19 = &f
	m.addgoods_gross_19 = nil
}

// GoodsGross19 returns the value of the "goods_gross_19" field in the mutation.
func (m *WoltInvoiceMutation) GoodsGross19() (r float64, exists bool) {
	v := m.goods_gross_19
	if v == nil {
		return
	}
	return *v, true
}

// OldGoodsGross19 returns the old "goods_gross_19" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldGoodsGross19(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoodsGross19 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoodsGross19 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoodsGross19: %w", err)
	}
	return oldValue.GoodsGross19, nil
}

// AddGoodsGross19 adds f to the "goods_gross_19" field.
func (m *WoltInvoiceMutation) AddGoodsGross19(f float64) {
	if m.addgoods_gross_19 != nil {
		*m.addgoods_gross_19 += f
	} else {
		m.addgoods_gross_19 = &f
	}
}

// AddedGoodsGross19 returns the value that was added to the "goods_gross_19" field in this mutation.
func (m *WoltInvoiceMutation) AddedGoodsGross19() (r float64, exists bool) {
	v := m.addgoods_gross_19
	if v == nil {
		return
	}
	return *v, true
}

// ClearGoodsGross19 clears the value of the "goods_gross_19" field.
func (m *WoltInvoiceMutation) ClearGoodsGross19() {
	m.goods_gross_19 = nil
	m.addgoods_gross_19 = nil
	m.clearedFields[woltinvoice.FieldGoodsGross19] = struct{}{}
}

// GoodsGross19Cleared returns if the "goods_gross_19" field was cleared in this mutation.
func (m *WoltInvoiceMutation) GoodsGross19Cleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldGoodsGross19]
	return ok
}

// ResetGoodsGross19 resets all changes to the "goods_gross_19" field.
func (m *WoltInvoiceMutation) ResetGoodsGross19() {
	m.goods_gross_19 = nil
	m.addgoods_gross_19 = nil
	delete(m.clearedFields, woltinvoice.FieldGoodsGross19)
}

// SetGoodsNetTotal sets the "goods_net_total" field.
func (m *WoltInvoiceMutation) SetGoodsNetTotal(f float64) {
	m.goods_net_total = &f
	m.addgoods_net_total = nil
}

// GoodsNetTotal returns the value of the "goods_net_total" field in the mutation.
func (m *WoltInvoiceMutation) GoodsNetTotal() (r float64, exists bool) {
	v := m.goods_net_total
	if v == nil {
		return
	}
	return *v, true
}

// OldGoodsNetTotal returns the old "goods_net_total" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldGoodsNetTotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoodsNetTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoodsNetTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoodsNetTotal: %w", err)
	}
	return oldValue.GoodsNetTotal, nil
}

// AddGoodsNetTotal adds f to the "goods_net_total" field.
func (m *WoltInvoiceMutation) AddGoodsNetTotal(f float64) {
	if m.addgoods_net_total != nil {
		*m.addgoods_net_total += f
	} else {
		m.addgoods_net_total = &f
	}
}

// AddedGoodsNetTotal returns the value that was added to the "goods_net_total" field in this mutation.
func (m *WoltInvoiceMutation) AddedGoodsNetTotal() (r float64, exists bool) {
	v := m.addgoods_net_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearGoodsNetTotal clears the value of the "goods_net_total" field.
func (m *WoltInvoiceMutation) ClearGoodsNetTotal() {
	m.goods_net_total = nil
	m.addgoods_net_total = nil
	m.clearedFields[woltinvoice.FieldGoodsNetTotal] = struct{}{}
}

// GoodsNetTotalCleared returns if the "goods_net_total" field was cleared in this mutation.
func (m *WoltInvoiceMutation) GoodsNetTotalCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldGoodsNetTotal]
	return ok
}

// ResetGoodsNetTotal resets all changes to the "goods_net_total" field.
func (m *WoltInvoiceMutation) ResetGoodsNetTotal() {
	m.goods_net_total = nil
	m.addgoods_net_total = nil
	delete(m.clearedFields, woltinvoice.FieldGoodsNetTotal)
}

// SetGoodsVatTotal sets the "goods_vat_total" field.
func (m *WoltInvoiceMutation) SetGoodsVatTotal(f float64) {
	m.goods_vat_total = &f
	m.addgoods_vat_total = nil
}

// GoodsVatTotal returns the value of the "goods_vat_total" field in the mutation.
func (m *WoltInvoiceMutation) GoodsVatTotal() (r float64, exists bool) {
	v := m.goods_vat_total
	if v == nil {
		return
	}
	return *v, true
}

// OldGoodsVatTotal returns the old "goods_vat_total" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldGoodsVatTotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoodsVatTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoodsVatTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoodsVatTotal: %w", err)
	}
	return oldValue.GoodsVatTotal, nil
}

// AddGoodsVatTotal adds f to the "goods_vat_total" field.
func (m *WoltInvoiceMutation) AddGoodsVatTotal(f float64) {
	if m.addgoods_vat_total != nil {
		*m.addgoods_vat_total += f
	} else {
		m.addgoods_vat_total = &f
	}
}

// AddedGoodsVatTotal returns the value that was added to the "goods_vat_total" field in this mutation.
func (m *WoltInvoiceMutation) AddedGoodsVatTotal() (r float64, exists bool) {
	v := m.addgoods_vat_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearGoodsVatTotal clears the value of the "goods_vat_total" field.
func (m *WoltInvoiceMutation) ClearGoodsVatTotal() {
	m.goods_vat_total = nil
	m.addgoods_vat_total = nil
	m.clearedFields[woltinvoice.FieldGoodsVatTotal] = struct{}{}
}

// GoodsVatTotalCleared returns if the "goods_vat_total" field was cleared in this mutation.
func (m *WoltInvoiceMutation) GoodsVatTotalCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldGoodsVatTotal]
	return ok
}

// ResetGoodsVatTotal resets all changes to the "goods_vat_total" field.
func (m *WoltInvoiceMutation) ResetGoodsVatTotal() {
	m.goods_vat_total = nil
	m.addgoods_vat_total = nil
	delete(m.clearedFields, woltinvoice.FieldGoodsVatTotal)
}

// SetGoodsGrossTotal sets the "goods_gross_total" field.
func (m *WoltInvoiceMutation) SetGoodsGrossTotal(f float64) {
	m.goods_gross_total = &f
	m.addgoods_gross_total = nil
}

// GoodsGrossTotal returns the value of the "goods_gross_total" field in the mutation.
func (m *WoltInvoiceMutation) GoodsGrossTotal() (r float64, exists bool) {
	v := m.goods_gross_total
	if v == nil {
		return
	}
	return *v, true
}

// OldGoodsGrossTotal returns the old "goods_gross_total" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldGoodsGrossTotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoodsGrossTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoodsGrossTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoodsGrossTotal: %w", err)
	}
	return oldValue.GoodsGrossTotal, nil
}

// AddGoodsGrossTotal adds f to the "goods_gross_total" field.
func (m *WoltInvoiceMutation) AddGoodsGrossTotal(f float64) {
	if m.addgoods_gross_total != nil {
		*m.addgoods_gross_total += f
	} else {
		m.addgoods_gross_total = &f
	}
}

// AddedGoodsGrossTotal returns the value that was added to the "goods_gross_total" field in this mutation.
func (m *WoltInvoiceMutation) AddedGoodsGrossTotal() (r float64, exists bool) {
	v := m.addgoods_gross_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearGoodsGrossTotal clears the value of the "goods_gross_total" field.
func (m *WoltInvoiceMutation) ClearGoodsGrossTotal() {
	m.goods_gross_total = nil
	m.addgoods_gross_total = nil
	m.clearedFields[woltinvoice.FieldGoodsGrossTotal] = struct{}{}
}

// GoodsGrossTotalCleared returns if the "goods_gross_total" field was cleared in this mutation.
func (m *WoltInvoiceMutation) GoodsGrossTotalCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldGoodsGrossTotal]
	return ok
}

// ResetGoodsGrossTotal resets all changes to the "goods_gross_total" field.
func (m *WoltInvoiceMutation) ResetGoodsGrossTotal() {
	m.goods_gross_total = nil
	m.addgoods_gross_total = nil
	delete(m.clearedFields, woltinvoice.FieldGoodsGrossTotal)
}

// SetDistributionNetTotal sets the "distribution_net_total" field.
func (m *WoltInvoiceMutation) SetDistributionNetTotal(f float64) {
	m.distribution_net_total = &f
	m.adddistribution_net_total = nil
}

// DistributionNetTotal returns the value of the "distribution_net_total" field in the mutation.
func (m *WoltInvoiceMutation) DistributionNetTotal() (r float64, exists bool) {
	v := m.distribution_net_total
	if v == nil {
		return
	}
	return *v, true
}

// OldDistributionNetTotal returns the old "distribution_net_total" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldDistributionNetTotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistributionNetTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistributionNetTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistributionNetTotal: %w", err)
	}
	return oldValue.DistributionNetTotal, nil
}

// AddDistributionNetTotal adds f to the "distribution_net_total" field.
func (m *WoltInvoiceMutation) AddDistributionNetTotal(f float64) {
	if m.adddistribution_net_total != nil {
		*m.adddistribution_net_total += f
	} else {
		m.adddistribution_net_total = &f
	}
}

// AddedDistributionNetTotal returns the value that was added to the "distribution_net_total" field in this mutation.
func (m *WoltInvoiceMutation) AddedDistributionNetTotal() (r float64, exists bool) {
	v := m.adddistribution_net_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearDistributionNetTotal clears the value of the "distribution_net_total" field.
func (m *WoltInvoiceMutation) ClearDistributionNetTotal() {
	m.distribution_net_total = nil
	m.adddistribution_net_total = nil
	m.clearedFields[woltinvoice.FieldDistributionNetTotal] = struct{}{}
}

// DistributionNetTotalCleared returns if the "distribution_net_total" field was cleared in this mutation.
func (m *WoltInvoiceMutation) DistributionNetTotalCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldDistributionNetTotal]
	return ok
}

// ResetDistributionNetTotal resets all changes to the "distribution_net_total" field.
func (m *WoltInvoiceMutation) ResetDistributionNetTotal() {
	m.distribution_net_total = nil
	m.adddistribution_net_total = nil
	delete(m.clearedFields, woltinvoice.FieldDistributionNetTotal)
}

// SetDistributionVatTotal sets the "distribution_vat_total" field.
func (m *WoltInvoiceMutation) SetDistributionVatTotal(f float64) {
	m.distribution_vat_total = &f
	m.adddistribution_vat_total = nil
}

// DistributionVatTotal returns the value of the "distribution_vat_total" field in the mutation.
func (m *WoltInvoiceMutation) DistributionVatTotal() (r float64, exists bool) {
	v := m.distribution_vat_total
	if v == nil {
		return
	}
	return *v, true
}

// OldDistributionVatTotal returns the old "distribution_vat_total" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldDistributionVatTotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistributionVatTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistributionVatTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistributionVatTotal: %w", err)
	}
	return oldValue.DistributionVatTotal, nil
}

// AddDistributionVatTotal adds f to the "distribution_vat_total" field.
func (m *WoltInvoiceMutation) AddDistributionVatTotal(f float64) {
	if m.adddistribution_vat_total != nil {
		*m.adddistribution_vat_total += f
	} else {
		m.adddistribution_vat_total = &f
	}
}

// AddedDistributionVatTotal returns the value that was added to the "distribution_vat_total" field in this mutation.
func (m *WoltInvoiceMutation) AddedDistributionVatTotal() (r float64, exists bool) {
	v := m.adddistribution_vat_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearDistributionVatTotal clears the value of the "distribution_vat_total" field.
func (m *WoltInvoiceMutation) ClearDistributionVatTotal() {
	m.distribution_vat_total = nil
	m.adddistribution_vat_total = nil
	m.clearedFields[woltinvoice.FieldDistributionVatTotal] = struct{}{}
}

// DistributionVatTotalCleared returns if the "distribution_vat_total" field was cleared in this mutation.
func (m *WoltInvoiceMutation) DistributionVatTotalCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldDistributionVatTotal]
	return ok
}

// ResetDistributionVatTotal resets all changes to the "distribution_vat_total" field.
func (m *WoltInvoiceMutation) ResetDistributionVatTotal() {
	m.distribution_vat_total = nil
	m.adddistribution_vat_total = nil
	delete(m.clearedFields, woltinvoice.FieldDistributionVatTotal)
}

// SetDistributionGrossTotal sets the "distribution_gross_total" field.
func (m *WoltInvoiceMutation) SetDistributionGrossTotal(f float64) {
	m.distribution_gross_total = &f
	m.adddistribution_gross_total = nil
}

// DistributionGrossTotal returns the value of the "distribution_gross_total" field in the mutation.
func (m *WoltInvoiceMutation) DistributionGrossTotal() (r float64, exists bool) {
	v := m.distribution_gross_total
	if v == nil {
		return
	}
	return *v, true
}

// OldDistributionGrossTotal returns the old "distribution_gross_total" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldDistributionGrossTotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistributionGrossTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistributionGrossTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistributionGrossTotal: %w", err)
	}
	return oldValue.DistributionGrossTotal, nil
}

// AddDistributionGrossTotal adds f to the "distribution_gross_total" field.
func (m *WoltInvoiceMutation) AddDistributionGrossTotal(f float64) {
	if m.adddistribution_gross_total != nil {
		*m.adddistribution_gross_total += f
	} else {
		m.adddistribution_gross_total = &f
	}
}

// AddedDistributionGrossTotal returns the value that was added to the "distribution_gross_total" field in this mutation.
func (m *WoltInvoiceMutation) AddedDistributionGrossTotal() (r float64, exists bool) {
	v := m.adddistribution_gross_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearDistributionGrossTotal clears the value of the "distribution_gross_total" field.
func (m *WoltInvoiceMutation) ClearDistributionGrossTotal() {
	m.distribution_gross_total = nil
	m.adddistribution_gross_total = nil
	m.clearedFields[woltinvoice.FieldDistributionGrossTotal] = struct{}{}
}

// DistributionGrossTotalCleared returns if the "distribution_gross_total" field was cleared in this mutation.
func (m *WoltInvoiceMutation) DistributionGrossTotalCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldDistributionGrossTotal]
	return ok
}

// ResetDistributionGrossTotal resets all changes to the "distribution_gross_total" field.
func (m *WoltInvoiceMutation) ResetDistributionGrossTotal() {
	m.distribution_gross_total = nil
	m.adddistribution_gross_total = nil
	delete(m.clearedFields, woltinvoice.FieldDistributionGrossTotal)
}

// SetNetpriceNet7 sets the "netprice_net_7" field.
func (m *WoltInvoiceMutation) SetNetpriceNet7(f float64) {
	m.netprice_net_7 = &f
	m.addnetprice_net_7 = nil
}

// NetpriceNet7 returns the value of the "netprice_net_7" field in the mutation.
func (m *WoltInvoiceMutation) NetpriceNet7() (r float64, exists bool) {
	v := m.netprice_net_7
	if v == nil {
		return
	}
	return *v, true
}

// OldNetpriceNet7 returns the old "netprice_net_7" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNetpriceNet7(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetpriceNet7 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetpriceNet7 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetpriceNet7: %w", err)
	}
	return oldValue.NetpriceNet7, nil
}

// AddNetpriceNet7 adds f to the "netprice_net_7" field.
func (m *WoltInvoiceMutation) AddNetpriceNet7(f float64) {
	if m.addnetprice_net_7 != nil {
		*m.addnetprice_net_7 += f
	} else {
		m.addnetprice_net_7 = &f
	}
}

// AddedNetpriceNet7 returns the value that was added to the "netprice_net_7" field in this mutation.
func (m *WoltInvoiceMutation) AddedNetpriceNet7() (r float64, exists bool) {
	v := m.addnetprice_net_7
	if v == nil {
		return
	}
	return *v, true
}

// ClearNetpriceNet7 clears the value of the "netprice_net_7" field.
func (m *WoltInvoiceMutation) ClearNetpriceNet7() {
	m.netprice_net_7 = nil
	m.addnetprice_net_7 = nil
	m.clearedFields[woltinvoice.FieldNetpriceNet7] = struct{}{}
}

// NetpriceNet7Cleared returns if the "netprice_net_7" field was cleared in this mutation.
func (m *WoltInvoiceMutation) NetpriceNet7Cleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldNetpriceNet7]
	return ok
}

// ResetNetpriceNet7 resets all changes to the "netprice_net_7" field.
func (m *WoltInvoiceMutation) ResetNetpriceNet7() {
	m.netprice_net_7 = nil
	m.addnetprice_net_7 = nil
	delete(m.clearedFields, woltinvoice.FieldNetpriceNet7)
}

// SetNetpriceVat7 sets the "netprice_vat_7" field.
func (m *WoltInvoiceMutation) SetNetpriceVat7(f float64) {
	m.netprice_vat_7 = &f
	m.addnetprice_vat_7 = nil
}

// NetpriceVat7 returns the value of the "netprice_vat_7" field in the mutation.
func (m *WoltInvoiceMutation) NetpriceVat7() (r float64, exists bool) {
	v := m.netprice_vat_7
	if v == nil {
		return
	}
	return *v, true
}

// OldNetpriceVat7 returns the old "netprice_vat_7" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNetpriceVat7(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetpriceVat7 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetpriceVat7 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetpriceVat7: %w", err)
	}
	return oldValue.NetpriceVat7, nil
}

// AddNetpriceVat7 adds f to the "netprice_vat_7" field.
func (m *WoltInvoiceMutation) AddNetpriceVat7(f float64) {
	if m.addnetprice_vat_7 != nil {
		*m.addnetprice_vat_7 += f
	} else {
		m.addnetprice_vat_7 = &f
	}
}

// AddedNetpriceVat7 returns the value that was added to the "netprice_vat_7" field in this mutation.
func (m *WoltInvoiceMutation) AddedNetpriceVat7() (r float64, exists bool) {
	v := m.addnetprice_vat_7
	if v == nil {
		return
	}
	return *v, true
}

// ClearNetpriceVat7 clears the value of the "netprice_vat_7" field.
func (m *WoltInvoiceMutation) ClearNetpriceVat7() {
	m.netprice_vat_7 = nil
	m.addnetprice_vat_7 = nil
	m.clearedFields[woltinvoice.FieldNetpriceVat7] = struct{}{}
}

// NetpriceVat7Cleared returns if the "netprice_vat_7" field was cleared in this mutation.
func (m *WoltInvoiceMutation) NetpriceVat7Cleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldNetpriceVat7]
	return ok
}

// ResetNetpriceVat7 resets all changes to the "netprice_vat_7" field.
func (m *WoltInvoiceMutation) ResetNetpriceVat7() {
	m.netprice_vat_7 = nil
	m.addnetprice_vat_7 = nil
	delete(m.clearedFields, woltinvoice.FieldNetpriceVat7)
}

// SetNetpriceGross7 sets the "netprice_gross_7" field.
func (m *WoltInvoiceMutation) SetNetpriceGross7(f float64) {
	m.netprice_gross_7 = &f
	m.addnetprice_gross_7 = nil
}

// NetpriceGross7 returns the value of the "netprice_gross_7" field in the mutation.
func (m *WoltInvoiceMutation) NetpriceGross7() (r float64, exists bool) {
	v := m.netprice_gross_7
	if v == nil {
		return
	}
	return *v, true
}

// OldNetpriceGross7 returns the old "netprice_gross_7" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNetpriceGross7(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetpriceGross7 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetpriceGross7 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetpriceGross7: %w", err)
	}
	return oldValue.NetpriceGross7, nil
}

// AddNetpriceGross7 adds f to the "netprice_gross_7" field.
func (m *WoltInvoiceMutation) AddNetpriceGross7(f float64) {
	if m.addnetprice_gross_7 != nil {
		*m.addnetprice_gross_7 += f
	} else {
		m.addnetprice_gross_7 = &f
	}
}

// AddedNetpriceGross7 returns the value that was added to the "netprice_gross_7" field in this mutation.
func (m *WoltInvoiceMutation) AddedNetpriceGross7() (r float64, exists bool) {
	v := m.addnetprice_gross_7
	if v == nil {
		return
	}
	return *v, true
}

// ClearNetpriceGross7 clears the value of the "netprice_gross_7" field.
func (m *WoltInvoiceMutation) ClearNetpriceGross7() {
	m.netprice_gross_7 = nil
	m.addnetprice_gross_7 = nil
	m.clearedFields[woltinvoice.FieldNetpriceGross7] = struct{}{}
}

// NetpriceGross7Cleared returns if the "netprice_gross_7" field was cleared in this mutation.
func (m *WoltInvoiceMutation) NetpriceGross7Cleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldNetpriceGross7]
	return ok
}

// ResetNetpriceGross7 resets all changes to the "netprice_gross_7" field.
func (m *WoltInvoiceMutation) ResetNetpriceGross7() {
	m.netprice_gross_7 = nil
	m.addnetprice_gross_7 = nil
	delete(m.clearedFields, woltinvoice.FieldNetpriceGross7)
}

// SetNetpriceNet19 sets the "netprice_net_19" field.
func (m *WoltInvoiceMutation) SetNetpriceNet19(f float64) {
	m.netprice_net_19 = &f
	m.addnetprice_net_19 = nil
}

// NetpriceNet19 returns the value of the "netprice_net_19" field in the mutation.
func (m *WoltInvoiceMutation) NetpriceNet19() (r float64, exists bool) {
	v := m.netprice_net_19
	if v == nil {
		return
	}
	return *v, true
}

// OldNetpriceNet19 returns the old "netprice_net_19" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNetpriceNet19(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetpriceNet19 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetpriceNet19 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetpriceNet19: %w", err)
	}
	return oldValue.NetpriceNet19, nil
}

// AddNetpriceNet19 adds f to the "netprice_net_19" field.
func (m *WoltInvoiceMutation) AddNetpriceNet19(f float64) {
	if m.addnetprice_net_19 != nil {
		*m.addnetprice_net_19 += f
	} else {
		m.addnetprice_net_19 = &f
	}
}

// AddedNetpriceNet19 returns the value that was added to the "netprice_net_19" field in this mutation.
func (m *WoltInvoiceMutation) AddedNetpriceNet19() (r float64, exists bool) {
	v := m.addnetprice_net_19
	if v == nil {
		return
	}
	return *v, true
}

// ClearNetpriceNet19 clears the value of the "netprice_net_19" field.
func (m *WoltInvoiceMutation) ClearNetpriceNet19() {
	m.netprice_net_19 = nil
	m.addnetprice_net_19 = nil
	m.clearedFields[woltinvoice.FieldNetpriceNet19] = struct{}{}
}

// NetpriceNet19Cleared returns if the "netprice_net_19" field was cleared in this mutation.
func (m *WoltInvoiceMutation) NetpriceNet19Cleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldNetpriceNet19]
	return ok
}

// ResetNetpriceNet19 resets all changes to the "netprice_net_19" field.
func (m *WoltInvoiceMutation) ResetNetpriceNet19() {
	m.netprice_net_19 = nil
	m.addnetprice_net_19 = nil
	delete(m.clearedFields, woltinvoice.FieldNetpriceNet19)
}

// SetNetpriceVat19 sets the "netprice_vat_19" field.
func (m *WoltInvoiceMutation) SetNetpriceVat19(f float64) {
	m.netprice_vat_19 = &f
	m.addnetprice_vat_19 = nil
}

// NetpriceVat19 returns the value of the "netprice_vat_19" field in the mutation.
func (m *WoltInvoiceMutation) NetpriceVat19() (r float64, exists bool) {
	v := m.netprice_vat_19
	if v == nil {
		return
	}
	return *v, true
}

// OldNetpriceVat19 returns the old "netprice_vat_19" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNetpriceVat19(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetpriceVat19 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetpriceVat19 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetpriceVat19: %w", err)
	}
	return oldValue.NetpriceVat19, nil
}

// AddNetpriceVat19 adds f to the "netprice_vat_19" field.
func (m *WoltInvoiceMutation) AddNetpriceVat19(f float64) {
	if m.addnetprice_vat_19 != nil {
		*m.addnetprice_vat_19 += f
	} else {
		m.addnetprice_vat_19 = &f
	}
}

// AddedNetpriceVat19 returns the value that was added to the "netprice_vat_19" field in this mutation.
func (m *WoltInvoiceMutation) AddedNetpriceVat19() (r float64, exists bool) {
	v := m.addnetprice_vat_19
	if v == nil {
		return
	}
	return *v, true
}

// ClearNetpriceVat19 clears the value of the "netprice_vat_19" field.
func (m *WoltInvoiceMutation) ClearNetpriceVat19() {
	m.netprice_vat_19 = nil
	m.addnetprice_vat_19 = nil
	m.clearedFields[woltinvoice.FieldNetpriceVat19] = struct{}{}
}

// NetpriceVat19Cleared returns if the "netprice_vat_19" field was cleared in this mutation.
func (m *WoltInvoiceMutation) NetpriceVat19Cleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldNetpriceVat19]
	return ok
}

// ResetNetpriceVat19 resets all changes to the "netprice_vat_19" field.
func (m *WoltInvoiceMutation) ResetNetpriceVat19() {
	m.netprice_vat_19 = nil
	m.addnetprice_vat_19 = nil
	delete(m.clearedFields, woltinvoice.FieldNetpriceVat19)
}

// SetNetpriceGross19 sets the "netprice_gross_19" field.
func (m *WoltInvoiceMutation) SetNetpriceGross19(f float64) {
	m.netprice_gross_19 = &f
	m.addnetprice_gross_19 = nil
}

// NetpriceGross19 returns the value of the "netprice_gross_19" field in the mutation.
func (m *WoltInvoiceMutation) NetpriceGross19() (r float64, exists bool) {
	v := m.netprice_gross_19
	if v == nil {
		return
	}
	return *v, true
}

// OldNetpriceGross19 returns the old "netprice_gross_19" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNetpriceGross19(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetpriceGross19 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetpriceGross19 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetpriceGross19: %w", err)
	}
	return oldValue.NetpriceGross19, nil
}

// AddNetpriceGross19 adds f to the "netprice_gross_19" field.
func (m *WoltInvoiceMutation) AddNetpriceGross19(f float64) {
	if m.addnetprice_gross_19 != nil {
		*m.addnetprice_gross_19 += f
	} else {
		m.addnetprice_gross_19 = &f
	}
}

// AddedNetpriceGross19 returns the value that was added to the "netprice_gross_19" field in this mutation.
func (m *WoltInvoiceMutation) AddedNetpriceGross19() (r float64, exists bool) {
	v := m.addnetprice_gross_19
	if v == nil {
		return
	}
	return *v, true
}

// ClearNetpriceGross19 clears the value of the "netprice_gross_19" field.
func (m *WoltInvoiceMutation) ClearNetpriceGross19() {
	m.netprice_gross_19 = nil
	m.addnetprice_gross_19 = nil
	m.clearedFields[woltinvoice.FieldNetpriceGross19] = struct{}{}
}

// NetpriceGross19Cleared returns if the "netprice_gross_19" field was cleared in this mutation.
func (m *WoltInvoiceMutation) NetpriceGross19Cleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldNetpriceGross19]
	return ok
}

// ResetNetpriceGross19 resets all changes to the "netprice_gross_19" field.
func (m *WoltInvoiceMutation) ResetNetpriceGross19() {
	m.netprice_gross_19 = nil
	m.addnetprice_gross_19 = nil
	delete(m.clearedFields, woltinvoice.FieldNetpriceGross19)
}

// SetNetpriceNetTotal sets the "netprice_net_total" field.
func (m *WoltInvoiceMutation) SetNetpriceNetTotal(f float64) {
	m.netprice_net_total = &f
	m.addnetprice_net_total = nil
}

// NetpriceNetTotal returns the value of the "netprice_net_total" field in the mutation.
func (m *WoltInvoiceMutation) NetpriceNetTotal() (r float64, exists bool) {
	v := m.netprice_net_total
	if v == nil {
		return
	}
	return *v, true
}

// OldNetpriceNetTotal returns the old "netprice_net_total" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNetpriceNetTotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetpriceNetTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetpriceNetTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetpriceNetTotal: %w", err)
	}
	return oldValue.NetpriceNetTotal, nil
}

// AddNetpriceNetTotal adds f to the "netprice_net_total" field.
func (m *WoltInvoiceMutation) AddNetpriceNetTotal(f float64) {
	if m.addnetprice_net_total != nil {
		*m.addnetprice_net_total += f
	} else {
		m.addnetprice_net_total = &f
	}
}

// AddedNetpriceNetTotal returns the value that was added to the "netprice_net_total" field in this mutation.
func (m *WoltInvoiceMutation) AddedNetpriceNetTotal() (r float64, exists bool) {
	v := m.addnetprice_net_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearNetpriceNetTotal clears the value of the "netprice_net_total" field.
func (m *WoltInvoiceMutation) ClearNetpriceNetTotal() {
	m.netprice_net_total = nil
	m.addnetprice_net_total = nil
	m.clearedFields[woltinvoice.FieldNetpriceNetTotal] = struct{}{}
}

// NetpriceNetTotalCleared returns if the "netprice_net_total" field was cleared in this mutation.
func (m *WoltInvoiceMutation) NetpriceNetTotalCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldNetpriceNetTotal]
	return ok
}

// ResetNetpriceNetTotal resets all changes to the "netprice_net_total" field.
func (m *WoltInvoiceMutation) ResetNetpriceNetTotal() {
	m.netprice_net_total = nil
	m.addnetprice_net_total = nil
	delete(m.clearedFields, woltinvoice.FieldNetpriceNetTotal)
}

// SetNetpriceVatTotal sets the "netprice_vat_total" field.
func (m *WoltInvoiceMutation) SetNetpriceVatTotal(f float64) {
	m.netprice_vat_total = &f
	m.addnetprice_vat_total = nil
}

// NetpriceVatTotal returns the value of the "netprice_vat_total" field in the mutation.
func (m *WoltInvoiceMutation) NetpriceVatTotal() (r float64, exists bool) {
	v := m.netprice_vat_total
	if v == nil {
		return
	}
	return *v, true
}

// OldNetpriceVatTotal returns the old "netprice_vat_total" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNetpriceVatTotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetpriceVatTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetpriceVatTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetpriceVatTotal: %w", err)
	}
	return oldValue.NetpriceVatTotal, nil
}

// AddNetpriceVatTotal adds f to the "netprice_vat_total" field.
func (m *WoltInvoiceMutation) AddNetpriceVatTotal(f float64) {
	if m.addnetprice_vat_total != nil {
		*m.addnetprice_vat_total += f
	} else {
		m.addnetprice_vat_total = &f
	}
}

// AddedNetpriceVatTotal returns the value that was added to the "netprice_vat_total" field in this mutation.
func (m *WoltInvoiceMutation) AddedNetpriceVatTotal() (r float64, exists bool) {
	v := m.addnetprice_vat_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearNetpriceVatTotal clears the value of the "netprice_vat_total" field.
func (m *WoltInvoiceMutation) ClearNetpriceVatTotal() {
	m.netprice_vat_total = nil
	m.addnetprice_vat_total = nil
	m.clearedFields[woltinvoice.FieldNetpriceVatTotal] = struct{}{}
}

// NetpriceVatTotalCleared returns if the "netprice_vat_total" field was cleared in this mutation.
func (m *WoltInvoiceMutation) NetpriceVatTotalCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldNetpriceVatTotal]
	return ok
}

// ResetNetpriceVatTotal resets all changes to the "netprice_vat_total" field.
func (m *WoltInvoiceMutation) ResetNetpriceVatTotal() {
	m.netprice_vat_total = nil
	m.addnetprice_vat_total = nil
	delete(m.clearedFields, woltinvoice.FieldNetpriceVatTotal)
}

// SetNetpriceGrossTotal sets the "netprice_gross_total" field.
func (m *WoltInvoiceMutation) SetNetpriceGrossTotal(f float64) {
	m.netprice_gross_total = &f
	m.addnetprice_gross_total = nil
}

// NetpriceGrossTotal returns the value of the "netprice_gross_total" field in the mutation.
func (m *WoltInvoiceMutation) NetpriceGrossTotal() (r float64, exists bool) {
	v := m.netprice_gross_total
	if v == nil {
		return
	}
	return *v, true
}

// OldNetpriceGrossTotal returns the old "netprice_gross_total" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNetpriceGrossTotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetpriceGrossTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetpriceGrossTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetpriceGrossTotal: %w", err)
	}
	return oldValue.NetpriceGrossTotal, nil
}

// AddNetpriceGrossTotal adds f to the "netprice_gross_total" field.
func (m *WoltInvoiceMutation) AddNetpriceGrossTotal(f float64) {
	if m.addnetprice_gross_total != nil {
		*m.addnetprice_gross_total += f
	} else {
		m.addnetprice_gross_total = &f
	}
}

// AddedNetpriceGrossTotal returns the value that was added to the "netprice_gross_total" field in this mutation.
func (m *WoltInvoiceMutation) AddedNetpriceGrossTotal() (r float64, exists bool) {
	v := m.addnetprice_gross_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearNetpriceGrossTotal clears the value of the "netprice_gross_total" field.
func (m *WoltInvoiceMutation) ClearNetpriceGrossTotal() {
	m.netprice_gross_total = nil
	m.addnetprice_gross_total = nil
	m.clearedFields[woltinvoice.FieldNetpriceGrossTotal] = struct{}{}
}

// NetpriceGrossTotalCleared returns if the "netprice_gross_total" field was cleared in this mutation.
func (m *WoltInvoiceMutation) NetpriceGrossTotalCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldNetpriceGrossTotal]
	return ok
}

// ResetNetpriceGrossTotal resets all changes to the "netprice_gross_total" field.
func (m *WoltInvoiceMutation) ResetNetpriceGrossTotal() {
	m.netprice_gross_total = nil
	m.addnetprice_gross_total = nil
	delete(m.clearedFields, woltinvoice.FieldNetpriceGrossTotal)
}

// SetEndAmountNet sets the "end_amount_net" field.
func (m *WoltInvoiceMutation) SetEndAmountNet(f float64) {
	m.end_amount_net = &f
	m.addend_amount_net = nil
}

// EndAmountNet returns the value of the "end_amount_net" field in the mutation.
func (m *WoltInvoiceMutation) EndAmountNet() (r float64, exists bool) {
	v := m.end_amount_net
	if v == nil {
		return
	}
	return *v, true
}

// OldEndAmountNet returns the old "end_amount_net" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldEndAmountNet(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndAmountNet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndAmountNet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndAmountNet: %w", err)
	}
	return oldValue.EndAmountNet, nil
}

// AddEndAmountNet adds f to the "end_amount_net" field.
func (m *WoltInvoiceMutation) AddEndAmountNet(f float64) {
	if m.addend_amount_net != nil {
		*m.addend_amount_net += f
	} else {
		m.addend_amount_net = &f
	}
}

// AddedEndAmountNet returns the value that was added to the "end_amount_net" field in this mutation.
func (m *WoltInvoiceMutation) AddedEndAmountNet() (r float64, exists bool) {
	v := m.addend_amount_net
	if v == nil {
		return
	}
	return *v, true
}

// ClearEndAmountNet clears the value of the "end_amount_net" field.
func (m *WoltInvoiceMutation) ClearEndAmountNet() {
	m.end_amount_net = nil
	m.addend_amount_net = nil
	m.clearedFields[woltinvoice.FieldEndAmountNet] = struct{}{}
}

// EndAmountNetCleared returns if the "end_amount_net" field was cleared in this mutation.
func (m *WoltInvoiceMutation) EndAmountNetCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldEndAmountNet]
	return ok
}

// ResetEndAmountNet resets all changes to the "end_amount_net" field.
func (m *WoltInvoiceMutation) ResetEndAmountNet() {
	m.end_amount_net = nil
	m.addend_amount_net = nil
	delete(m.clearedFields, woltinvoice.FieldEndAmountNet)
}

// SetEndAmountVat sets the "end_amount_vat" field.
func (m *WoltInvoiceMutation) SetEndAmountVat(f float64) {
	m.end_amount_vat = &f
	m.addend_amount_vat = nil
}

// EndAmountVat returns the value of the "end_amount_vat" field in the mutation.
func (m *WoltInvoiceMutation) EndAmountVat() (r float64, exists bool) {
	v := m.end_amount_vat
	if v == nil {
		return
	}
	return *v, true
}

// OldEndAmountVat returns the old "end_amount_vat" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldEndAmountVat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndAmountVat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndAmountVat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndAmountVat: %w", err)
	}
	return oldValue.EndAmountVat, nil
}

// AddEndAmountVat adds f to the "end_amount_vat" field.
func (m *WoltInvoiceMutation) AddEndAmountVat(f float64) {
	if m.addend_amount_vat != nil {
		*m.addend_amount_vat += f
	} else {
		m.addend_amount_vat = &f
	}
}

// AddedEndAmountVat returns the value that was added to the "end_amount_vat" field in this mutation.
func (m *WoltInvoiceMutation) AddedEndAmountVat() (r float64, exists bool) {
	v := m.addend_amount_vat
	if v == nil {
		return
	}
	return *v, true
}

// ClearEndAmountVat clears the value of the "end_amount_vat" field.
func (m *WoltInvoiceMutation) ClearEndAmountVat() {
	m.end_amount_vat = nil
	m.addend_amount_vat = nil
	m.clearedFields[woltinvoice.FieldEndAmountVat] = struct{}{}
}

// EndAmountVatCleared returns if the "end_amount_vat" field was cleared in this mutation.
func (m *WoltInvoiceMutation) EndAmountVatCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldEndAmountVat]
	return ok
}

// ResetEndAmountVat resets all changes to the "end_amount_vat" field.
func (m *WoltInvoiceMutation) ResetEndAmountVat() {
	m.end_amount_vat = nil
	m.addend_amount_vat = nil
	delete(m.clearedFields, woltinvoice.FieldEndAmountVat)
}

// SetEndAmountGross sets the "end_amount_gross" field.
func (m *WoltInvoiceMutation) SetEndAmountGross(f float64) {
	m.end_amount_gross = &f
	m.addend_amount_gross = nil
}

// EndAmountGross returns the value of the "end_amount_gross" field in the mutation.
func (m *WoltInvoiceMutation) EndAmountGross() (r float64, exists bool) {
	v := m.end_amount_gross
	if v == nil {
		return
	}
	return *v, true
}

// OldEndAmountGross returns the old "end_amount_gross" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldEndAmountGross(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndAmountGross is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndAmountGross requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndAmountGross: %w", err)
	}
	return oldValue.EndAmountGross, nil
}

// AddEndAmountGross adds f to the "end_amount_gross" field.
func (m *WoltInvoiceMutation) AddEndAmountGross(f float64) {
	if m.addend_amount_gross != nil {
		*m.addend_amount_gross += f
	} else {
		m.addend_amount_gross = &f
	}
}

// AddedEndAmountGross returns the value that was added to the "end_amount_gross" field in this mutation.
func (m *WoltInvoiceMutation) AddedEndAmountGross() (r float64, exists bool) {
	v := m.addend_amount_gross
	if v == nil {
		return
	}
	return *v, true
}

// ClearEndAmountGross clears the value of the "end_amount_gross" field.
func (m *WoltInvoiceMutation) ClearEndAmountGross() {
	m.end_amount_gross = nil
	m.addend_amount_gross = nil
	m.clearedFields[woltinvoice.FieldEndAmountGross] = struct{}{}
}

// EndAmountGrossCleared returns if the "end_amount_gross" field was cleared in this mutation.
func (m *WoltInvoiceMutation) EndAmountGrossCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldEndAmountGross]
	return ok
}

// ResetEndAmountGross resets all changes to the "end_amount_gross" field.
func (m *WoltInvoiceMutation) ResetEndAmountGross() {
	m.end_amount_gross = nil
	m.addend_amount_gross = nil
	delete(m.clearedFields, woltinvoice.FieldEndAmountGross)
}

// SetNettingMerchantInvoice sets the "netting_merchant_invoice" field.
func (m *WoltInvoiceMutation) SetNettingMerchantInvoice(s string) {
	m.netting_merchant_invoice = &s
}

// NettingMerchantInvoice returns the value of the "netting_merchant_invoice" field in the mutation.
func (m *WoltInvoiceMutation) NettingMerchantInvoice() (r string, exists bool) {
	v := m.netting_merchant_invoice
	if v == nil {
		return
	}
	return *v, true
}

// OldNettingMerchantInvoice returns the old "netting_merchant_invoice" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNettingMerchantInvoice(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNettingMerchantInvoice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNettingMerchantInvoice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNettingMerchantInvoice: %w", err)
	}
	return oldValue.NettingMerchantInvoice, nil
}

// ClearNettingMerchantInvoice clears the value of the "netting_merchant_invoice" field.
func (m *WoltInvoiceMutation) ClearNettingMerchantInvoice() {
	m.netting_merchant_invoice = nil
	m.clearedFields[woltinvoice.FieldNettingMerchantInvoice] = struct{}{}
}

// NettingMerchantInvoiceCleared returns if the "netting_merchant_invoice" field was cleared in this mutation.
func (m *WoltInvoiceMutation) NettingMerchantInvoiceCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldNettingMerchantInvoice]
	return ok
}

// ResetNettingMerchantInvoice resets all changes to the "netting_merchant_invoice" field.
func (m *WoltInvoiceMutation) ResetNettingMerchantInvoice() {
	m.netting_merchant_invoice = nil
	delete(m.clearedFields, woltinvoice.FieldNettingMerchantInvoice)
}

// SetNettingMerchantNet sets the "netting_merchant_net" field.
func (m *WoltInvoiceMutation) SetNettingMerchantNet(f float64) {
	m.netting_merchant_net = &f
	m.addnetting_merchant_net = nil
}

// NettingMerchantNet returns the value of the "netting_merchant_net" field in the mutation.
func (m *WoltInvoiceMutation) NettingMerchantNet() (r float64, exists bool) {
	v := m.netting_merchant_net
	if v == nil {
		return
	}
	return *v, true
}

// OldNettingMerchantNet returns the old "netting_merchant_net" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNettingMerchantNet(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNettingMerchantNet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNettingMerchantNet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNettingMerchantNet: %w", err)
	}
	return oldValue.NettingMerchantNet, nil
}

// AddNettingMerchantNet adds f to the "netting_merchant_net" field.
func (m *WoltInvoiceMutation) AddNettingMerchantNet(f float64) {
	if m.addnetting_merchant_net != nil {
		*m.addnetting_merchant_net += f
	} else {
		m.addnetting_merchant_net = &f
	}
}

// AddedNettingMerchantNet returns the value that was added to the "netting_merchant_net" field in this mutation.
func (m *WoltInvoiceMutation) AddedNettingMerchantNet() (r float64, exists bool) {
	v := m.addnetting_merchant_net
	if v == nil {
		return
	}
	return *v, true
}

// ClearNettingMerchantNet clears the value of the "netting_merchant_net" field.
func (m *WoltInvoiceMutation) ClearNettingMerchantNet() {
	m.netting_merchant_net = nil
	m.addnetting_merchant_net = nil
	m.clearedFields[woltinvoice.FieldNettingMerchantNet] = struct{}{}
}

// NettingMerchantNetCleared returns if the "netting_merchant_net" field was cleared in this mutation.
func (m *WoltInvoiceMutation) NettingMerchantNetCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldNettingMerchantNet]
	return ok
}

// ResetNettingMerchantNet resets all changes to the "netting_merchant_net" field.
func (m *WoltInvoiceMutation) ResetNettingMerchantNet() {
	m.netting_merchant_net = nil
	m.addnetting_merchant_net = nil
	delete(m.clearedFields, woltinvoice.FieldNettingMerchantNet)
}

// SetNettingMerchantVat sets the "netting_merchant_vat" field.
func (m *WoltInvoiceMutation) SetNettingMerchantVat(f float64) {
	m.netting_merchant_vat = &f
	m.addnetting_merchant_vat = nil
}

// NettingMerchantVat returns the value of the "netting_merchant_vat" field in the mutation.
func (m *WoltInvoiceMutation) NettingMerchantVat() (r float64, exists bool) {
	v := m.netting_merchant_vat
	if v == nil {
		return
	}
	return *v, true
}

// OldNettingMerchantVat returns the old "netting_merchant_vat" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNettingMerchantVat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNettingMerchantVat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNettingMerchantVat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNettingMerchantVat: %w", err)
	}
	return oldValue.NettingMerchantVat, nil
}

// AddNettingMerchantVat adds f to the "netting_merchant_vat" field.
func (m *WoltInvoiceMutation) AddNettingMerchantVat(f float64) {
	if m.addnetting_merchant_vat != nil {
		*m.addnetting_merchant_vat += f
	} else {
		m.addnetting_merchant_vat = &f
	}
}

// AddedNettingMerchantVat returns the value that was added to the "netting_merchant_vat" field in this mutation.
func (m *WoltInvoiceMutation) AddedNettingMerchantVat() (r float64, exists bool) {
	v := m.addnetting_merchant_vat
	if v == nil {
		return
	}
	return *v, true
}

// ClearNettingMerchantVat clears the value of the "netting_merchant_vat" field.
func (m *WoltInvoiceMutation) ClearNettingMerchantVat() {
	m.netting_merchant_vat = nil
	m.addnetting_merchant_vat = nil
	m.clearedFields[woltinvoice.FieldNettingMerchantVat] = struct{}{}
}

// NettingMerchantVatCleared returns if the "netting_merchant_vat" field was cleared in this mutation.
func (m *WoltInvoiceMutation) NettingMerchantVatCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldNettingMerchantVat]
	return ok
}

// ResetNettingMerchantVat resets all changes to the "netting_merchant_vat" field.
func (m *WoltInvoiceMutation) ResetNettingMerchantVat() {
	m.netting_merchant_vat = nil
	m.addnetting_merchant_vat = nil
	delete(m.clearedFields, woltinvoice.FieldNettingMerchantVat)
}

// SetNettingMerchantGross sets the "netting_merchant_gross" field.
func (m *WoltInvoiceMutation) SetNettingMerchantGross(f float64) {
	m.netting_merchant_gross = &f
	m.addnetting_merchant_gross = nil
}

// NettingMerchantGross returns the value of the "netting_merchant_gross" field in the mutation.
func (m *WoltInvoiceMutation) NettingMerchantGross() (r float64, exists bool) {
	v := m.netting_merchant_gross
	if v == nil {
		return
	}
	return *v, true
}

// OldNettingMerchantGross returns the old "netting_merchant_gross" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNettingMerchantGross(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNettingMerchantGross is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNettingMerchantGross requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNettingMerchantGross: %w", err)
	}
	return oldValue.NettingMerchantGross, nil
}

// AddNettingMerchantGross adds f to the "netting_merchant_gross" field.
func (m *WoltInvoiceMutation) AddNettingMerchantGross(f float64) {
	if m.addnetting_merchant_gross != nil {
		*m.addnetting_merchant_gross += f
	} else {
		m.addnetting_merchant_gross = &f
	}
}

// AddedNettingMerchantGross returns the value that was added to the "netting_merchant_gross" field in this mutation.
func (m *WoltInvoiceMutation) AddedNettingMerchantGross() (r float64, exists bool) {
	v := m.addnetting_merchant_gross
	if v == nil {
		return
	}
	return *v, true
}

// ClearNettingMerchantGross clears the value of the "netting_merchant_gross" field.
func (m *WoltInvoiceMutation) ClearNettingMerchantGross() {
	m.netting_merchant_gross = nil
	m.addnetting_merchant_gross = nil
	m.clearedFields[woltinvoice.FieldNettingMerchantGross] = struct{}{}
}

// NettingMerchantGrossCleared returns if the "netting_merchant_gross" field was cleared in this mutation.
func (m *WoltInvoiceMutation) NettingMerchantGrossCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldNettingMerchantGross]
	return ok
}

// ResetNettingMerchantGross resets all changes to the "netting_merchant_gross" field.
func (m *WoltInvoiceMutation) ResetNettingMerchantGross() {
	m.netting_merchant_gross = nil
	m.addnetting_merchant_gross = nil
	delete(m.clearedFields, woltinvoice.FieldNettingMerchantGross)
}

// SetNettingWoltInvoice sets the "netting_wolt_invoice" field.
func (m *WoltInvoiceMutation) SetNettingWoltInvoice(s string) {
	m.netting_wolt_invoice = &s
}

// NettingWoltInvoice returns the value of the "netting_wolt_invoice" field in the mutation.
func (m *WoltInvoiceMutation) NettingWoltInvoice() (r string, exists bool) {
	v := m.netting_wolt_invoice
	if v == nil {
		return
	}
	return *v, true
}

// OldNettingWoltInvoice returns the old "netting_wolt_invoice" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNettingWoltInvoice(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNettingWoltInvoice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNettingWoltInvoice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNettingWoltInvoice: %w", err)
	}
	return oldValue.NettingWoltInvoice, nil
}

// ClearNettingWoltInvoice clears the value of the "netting_wolt_invoice" field.
func (m *WoltInvoiceMutation) ClearNettingWoltInvoice() {
	m.netting_wolt_invoice = nil
	m.clearedFields[woltinvoice.FieldNettingWoltInvoice] = struct{}{}
}

// NettingWoltInvoiceCleared returns if the "netting_wolt_invoice" field was cleared in this mutation.
func (m *WoltInvoiceMutation) NettingWoltInvoiceCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldNettingWoltInvoice]
	return ok
}

// ResetNettingWoltInvoice resets all changes to the "netting_wolt_invoice" field.
func (m *WoltInvoiceMutation) ResetNettingWoltInvoice() {
	m.netting_wolt_invoice = nil
	delete(m.clearedFields, woltinvoice.FieldNettingWoltInvoice)
}

// SetNettingWoltNet sets the "netting_wolt_net" field.
func (m *WoltInvoiceMutation) SetNettingWoltNet(f float64) {
	m.netting_wolt_net = &f
	m.addnetting_wolt_net = nil
}

// NettingWoltNet returns the value of the "netting_wolt_net" field in the mutation.
func (m *WoltInvoiceMutation) NettingWoltNet() (r float64, exists bool) {
	v := m.netting_wolt_net
	if v == nil {
		return
	}
	return *v, true
}

// OldNettingWoltNet returns the old "netting_wolt_net" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNettingWoltNet(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNettingWoltNet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNettingWoltNet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNettingWoltNet: %w", err)
	}
	return oldValue.NettingWoltNet, nil
}

// AddNettingWoltNet adds f to the "netting_wolt_net" field.
func (m *WoltInvoiceMutation) AddNettingWoltNet(f float64) {
	if m.addnetting_wolt_net != nil {
		*m.addnetting_wolt_net += f
	} else {
		m.addnetting_wolt_net = &f
	}
}

// AddedNettingWoltNet returns the value that was added to the "netting_wolt_net" field in this mutation.
func (m *WoltInvoiceMutation) AddedNettingWoltNet() (r float64, exists bool) {
	v := m.addnetting_wolt_net
	if v == nil {
		return
	}
	return *v, true
}

// ClearNettingWoltNet clears the value of the "netting_wolt_net" field.
func (m *WoltInvoiceMutation) ClearNettingWoltNet() {
	m.netting_wolt_net = nil
	m.addnetting_wolt_net = nil
	m.clearedFields[woltinvoice.FieldNettingWoltNet] = struct{}{}
}

// NettingWoltNetCleared returns if the "netting_wolt_net" field was cleared in this mutation.
func (m *WoltInvoiceMutation) NettingWoltNetCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldNettingWoltNet]
	return ok
}

// ResetNettingWoltNet resets all changes to the "netting_wolt_net" field.
func (m *WoltInvoiceMutation) ResetNettingWoltNet() {
	m.netting_wolt_net = nil
	m.addnetting_wolt_net = nil
	delete(m.clearedFields, woltinvoice.FieldNettingWoltNet)
}

// SetNettingWoltVat sets the "netting_wolt_vat" field.
func (m *WoltInvoiceMutation) SetNettingWoltVat(f float64) {
	m.netting_wolt_vat = &f
	m.addnetting_wolt_vat = nil
}

// NettingWoltVat returns the value of the "netting_wolt_vat" field in the mutation.
func (m *WoltInvoiceMutation) NettingWoltVat() (r float64, exists bool) {
	v := m.netting_wolt_vat
	if v == nil {
		return
	}
	return *v, true
}

// OldNettingWoltVat returns the old "netting_wolt_vat" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNettingWoltVat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNettingWoltVat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNettingWoltVat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNettingWoltVat: %w", err)
	}
	return oldValue.NettingWoltVat, nil
}

// AddNettingWoltVat adds f to the "netting_wolt_vat" field.
func (m *WoltInvoiceMutation) AddNettingWoltVat(f float64) {
	if m.addnetting_wolt_vat != nil {
		*m.addnetting_wolt_vat += f
	} else {
		m.addnetting_wolt_vat = &f
	}
}

// AddedNettingWoltVat returns the value that was added to the "netting_wolt_vat" field in this mutation.
func (m *WoltInvoiceMutation) AddedNettingWoltVat() (r float64, exists bool) {
	v := m.addnetting_wolt_vat
	if v == nil {
		return
	}
	return *v, true
}

// ClearNettingWoltVat clears the value of the "netting_wolt_vat" field.
func (m *WoltInvoiceMutation) ClearNettingWoltVat() {
	m.netting_wolt_vat = nil
	m.addnetting_wolt_vat = nil
	m.clearedFields[woltinvoice.FieldNettingWoltVat] = struct{}{}
}

// NettingWoltVatCleared returns if the "netting_wolt_vat" field was cleared in this mutation.
func (m *WoltInvoiceMutation) NettingWoltVatCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldNettingWoltVat]
	return ok
}

// ResetNettingWoltVat resets all changes to the "netting_wolt_vat" field.
func (m *WoltInvoiceMutation) ResetNettingWoltVat() {
	m.netting_wolt_vat = nil
	m.addnetting_wolt_vat = nil
	delete(m.clearedFields, woltinvoice.FieldNettingWoltVat)
}

// SetNettingWoltGross sets the "netting_wolt_gross" field.
func (m *WoltInvoiceMutation) SetNettingWoltGross(f float64) {
	m.netting_wolt_gross = &f
	m.addnetting_wolt_gross = nil
}

// NettingWoltGross returns the value of the "netting_wolt_gross" field in the mutation.
func (m *WoltInvoiceMutation) NettingWoltGross() (r float64, exists bool) {
	v := m.netting_wolt_gross
	if v == nil {
		return
	}
	return *v, true
}

// OldNettingWoltGross returns the old "netting_wolt_gross" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNettingWoltGross(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNettingWoltGross is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNettingWoltGross requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNettingWoltGross: %w", err)
	}
	return oldValue.NettingWoltGross, nil
}

// AddNettingWoltGross adds f to the "netting_wolt_gross" field.
func (m *WoltInvoiceMutation) AddNettingWoltGross(f float64) {
	if m.addnetting_wolt_gross != nil {
		*m.addnetting_wolt_gross += f
	} else {
		m.addnetting_wolt_gross = &f
	}
}

// AddedNettingWoltGross returns the value that was added to the "netting_wolt_gross" field in this mutation.
func (m *WoltInvoiceMutation) AddedNettingWoltGross() (r float64, exists bool) {
	v := m.addnetting_wolt_gross
	if v == nil {
		return
	}
	return *v, true
}

// ClearNettingWoltGross clears the value of the "netting_wolt_gross" field.
func (m *WoltInvoiceMutation) ClearNettingWoltGross() {
	m.netting_wolt_gross = nil
	m.addnetting_wolt_gross = nil
	m.clearedFields[woltinvoice.FieldNettingWoltGross] = struct{}{}
}

// NettingWoltGrossCleared returns if the "netting_wolt_gross" field was cleared in this mutation.
func (m *WoltInvoiceMutation) NettingWoltGrossCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldNettingWoltGross]
	return ok
}

// ResetNettingWoltGross resets all changes to the "netting_wolt_gross" field.
func (m *WoltInvoiceMutation) ResetNettingWoltGross() {
	m.netting_wolt_gross = nil
	m.addnetting_wolt_gross = nil
	delete(m.clearedFields, woltinvoice.FieldNettingWoltGross)
}

// SetNettingNetPayout sets the "netting_net_payout" field.
func (m *WoltInvoiceMutation) SetNettingNetPayout(f float64) {
	m.netting_net_payout = &f
	m.addnetting_net_payout = nil
}

// NettingNetPayout returns the value of the "netting_net_payout" field in the mutation.
func (m *WoltInvoiceMutation) NettingNetPayout() (r float64, exists bool) {
	v := m.netting_net_payout
	if v == nil {
		return
	}
	return *v, true
}

// OldNettingNetPayout returns the old "netting_net_payout" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNettingNetPayout(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNettingNetPayout is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNettingNetPayout requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNettingNetPayout: %w", err)
	}
	return oldValue.NettingNetPayout, nil
}

// AddNettingNetPayout adds f to the "netting_net_payout" field.
func (m *WoltInvoiceMutation) AddNettingNetPayout(f float64) {
	if m.addnetting_net_payout != nil {
		*m.addnetting_net_payout += f
	} else {
		m.addnetting_net_payout = &f
	}
}

// AddedNettingNetPayout returns the value that was added to the "netting_net_payout" field in this mutation.
func (m *WoltInvoiceMutation) AddedNettingNetPayout() (r float64, exists bool) {
	v := m.addnetting_net_payout
	if v == nil {
		return
	}
	return *v, true
}

// ClearNettingNetPayout clears the value of the "netting_net_payout" field.
func (m *WoltInvoiceMutation) ClearNettingNetPayout() {
	m.netting_net_payout = nil
	m.addnetting_net_payout = nil
	m.clearedFields[woltinvoice.FieldNettingNetPayout] = struct{}{}
}

// NettingNetPayoutCleared returns if the "netting_net_payout" field was cleared in this mutation.
func (m *WoltInvoiceMutation) NettingNetPayoutCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldNettingNetPayout]
	return ok
}

// ResetNettingNetPayout resets all changes to the "netting_net_payout" field.
func (m *WoltInvoiceMutation) ResetNettingNetPayout() {
	m.netting_net_payout = nil
	m.addnetting_net_payout = nil
	delete(m.clearedFields, woltinvoice.FieldNettingNetPayout)
}

// SetNettingParsedJSON sets the "netting_parsed_json" field.
func (m *WoltInvoiceMutation) SetNettingParsedJSON(value map[string]interface{}) {
	m.netting_parsed_json = &value
}

// NettingParsedJSON returns the value of the "netting_parsed_json" field in the mutation.
func (m *WoltInvoiceMutation) NettingParsedJSON() (r map[string]interface{}, exists bool) {
	v := m.netting_parsed_json
	if v == nil {
		return
	}
	return *v, true
}

// OldNettingParsedJSON returns the old "netting_parsed_json" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNettingParsedJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNettingParsedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNettingParsedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNettingParsedJSON: %w", err)
	}
	return oldValue.NettingParsedJSON, nil
}

// ClearNettingParsedJSON clears the value of the "netting_parsed_json" field.
func (m *WoltInvoiceMutation) ClearNettingParsedJSON() {
	m.netting_parsed_json = nil
	m.clearedFields[woltinvoice.FieldNettingParsedJSON] = struct{}{}
}

// NettingParsedJSONCleared returns if the "netting_parsed_json" field was cleared in this mutation.
func (m *WoltInvoiceMutation) NettingParsedJSONCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldNettingParsedJSON]
	return ok
}

// ResetNettingParsedJSON resets all changes to the "netting_parsed_json" field.
func (m *WoltInvoiceMutation) ResetNettingParsedJSON() {
	m.netting_parsed_json = nil
	delete(m.clearedFields, woltinvoice.FieldNettingParsedJSON)
}

// SetNettingRawText sets the "netting_raw_text" field.
func (m *WoltInvoiceMutation) SetNettingRawText(s string) {
	m.netting_raw_text = &s
}

// NettingRawText returns the value of the "netting_raw_text" field in the mutation.
func (m *WoltInvoiceMutation) NettingRawText() (r string, exists bool) {
	v := m.netting_raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldNettingRawText returns the old "netting_raw_text" field's value of the WoltInvoice entity.
// If the WoltInvoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WoltInvoiceMutation) OldNettingRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNettingRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNettingRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNettingRawText: %w", err)
	}
	return oldValue.NettingRawText, nil
}

// ClearNettingRawText clears the value of the "netting_raw_text" field.
func (m *WoltInvoiceMutation) ClearNettingRawText() {
	m.netting_raw_text = nil
	m.clearedFields[woltinvoice.FieldNettingRawText] = struct{}{}
}

// NettingRawTextCleared returns if the "netting_raw_text" field was cleared in this mutation.
func (m *WoltInvoiceMutation) NettingRawTextCleared() bool {
	_, ok := m.clearedFields[woltinvoice.FieldNettingRawText]
	return ok
}

// ResetNettingRawText resets all changes to the "netting_raw_text" field.
func (m *WoltInvoiceMutation) ResetNettingRawText() {
	m.netting_raw_text = nil
	delete(m.clearedFields, woltinvoice.FieldNettingRawText)
}

// Where appends a list predicates to the WoltInvoiceMutation builder.
func (m *WoltInvoiceMutation) Where(ps ...predicate.WoltInvoice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WoltInvoiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WoltInvoiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WoltInvoice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WoltInvoiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WoltInvoiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WoltInvoice).
func (m *WoltInvoiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WoltInvoiceMutation) Fields() []string {
	fields := make([]string, 0, 55)
	if m.invoice_number != nil {
		fields = append(fields, woltinvoice.FieldInvoiceNumber)
	}
	if m.invoice_date != nil {
		fields = append(fields, woltinvoice.FieldInvoiceDate)
	}
	if m.period_start != nil {
		fields = append(fields, woltinvoice.FieldPeriodStart)
	}
	if m.period_end != nil {
		fields = append(fields, woltinvoice.FieldPeriodEnd)
	}
	if m.supplier_name != nil {
		fields = append(fields, woltinvoice.FieldSupplierName)
	}
	if m.total_amount != nil {
		fields = append(fields, woltinvoice.FieldTotalAmount)
	}
	if m.status != nil {
		fields = append(fields, woltinvoice.FieldStatus)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, woltinvoice.FieldExtractionConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, woltinvoice.FieldNeedsReview)
	}
	if m.raw_text != nil {
		fields = append(fields, woltinvoice.FieldRawText)
	}
	if m.source_filename != nil {
		fields = append(fields, woltinvoice.FieldSourceFilename)
	}
	if m.email_subject != nil {
		fields = append(fields, woltinvoice.FieldEmailSubject)
	}
	if m.email_sender != nil {
		fields = append(fields, woltinvoice.FieldEmailSender)
	}
	if m.email_date != nil {
		fields = append(fields, woltinvoice.FieldEmailDate)
	}
	if m.created_at != nil {
		fields = append(fields, woltinvoice.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, woltinvoice.FieldUpdatedAt)
	}
	if m.supplier_address != nil {
		fields = append(fields, woltinvoice.FieldSupplierAddress)
	}
	if m.supplier_vat_id != nil {
		fields = append(fields, woltinvoice.FieldSupplierVatID)
	}
	if m.restaurant_name != nil {
		fields = append(fields, woltinvoice.FieldRestaurantName)
	}
	if m.business_id != nil {
		fields = append(fields, woltinvoice.FieldBusinessID)
	}
	if m.goods_net_7 != nil {
		fields = append(fields, woltinvoice.FieldGoodsNet7)
	}
	if m.goods_vat_7 != nil {
		fields = append(fields, woltinvoice.FieldGoodsVat7)
	}
	if m.goods_gross_7 != nil {
		fields = append(fields, woltinvoice.FieldGoodsGross7)
	}
	if m.goods_net_19 != nil {
		fields = append(fields, woltinvoice.FieldGoodsNet19)
	}
	if m.goods_vat_19 != nil {
		fields = append(fields, woltinvoice.FieldGoodsVat19)
	}
	if m.goods_gross_19 != nil {
		fields = append(fields, woltinvoice.FieldGoodsGross19)
	}
	if m.goods_net_total != nil {
		fields = append(fields, woltinvoice.FieldGoodsNetTotal)
	}
	if m.goods_vat_total != nil {
		fields = append(fields, woltinvoice.FieldGoodsVatTotal)
	}
	if m.goods_gross_total != nil {
		fields = append(fields, woltinvoice.FieldGoodsGrossTotal)
	}
	if m.distribution_net_total != nil {
		fields = append(fields, woltinvoice.FieldDistributionNetTotal)
	}
	if m.distribution_vat_total != nil {
		fields = append(fields, woltinvoice.FieldDistributionVatTotal)
	}
	if m.distribution_gross_total != nil {
		fields = append(fields, woltinvoice.FieldDistributionGrossTotal)
	}
	if m.netprice_net_7 != nil {
		fields = append(fields, woltinvoice.FieldNetpriceNet7)
	}
	if m.netprice_vat_7 != nil {
		fields = append(fields, woltinvoice.FieldNetpriceVat7)
	}
	if m.netprice_gross_7 != nil {
		fields = append(fields, woltinvoice.FieldNetpriceGross7)
	}
	if m.netprice_net_19 != nil {
		fields = append(fields, woltinvoice.FieldNetpriceNet19)
	}
	if m.netprice_vat_19 != nil {
		fields = append(fields, woltinvoice.FieldNetpriceVat19)
	}
	if m.netprice_gross_19 != nil {
		fields = append(fields, woltinvoice.FieldNetpriceGross19)
	}
	if m.netprice_net_total != nil {
		fields = append(fields, woltinvoice.FieldNetpriceNetTotal)
	}
	if m.netprice_vat_total != nil {
		fields = append(fields, woltinvoice.FieldNetpriceVatTotal)
	}
	if m.netprice_gross_total != nil {
		fields = append(fields, woltinvoice.FieldNetpriceGrossTotal)
	}
	if m.end_amount_net != nil {
		fields = append(fields, woltinvoice.FieldEndAmountNet)
	}
	if m.end_amount_vat != nil {
		fields = append(fields, woltinvoice.FieldEndAmountVat)
	}
	if m.end_amount_gross != nil {
		fields = append(fields, woltinvoice.FieldEndAmountGross)
	}
	if m.netting_merchant_invoice != nil {
		fields = append(fields, woltinvoice.FieldNettingMerchantInvoice)
	}
	if m.netting_merchant_net != nil {
		fields = append(fields, woltinvoice.FieldNettingMerchantNet)
	}
	if m.netting_merchant_vat != nil {
		fields = append(fields, woltinvoice.FieldNettingMerchantVat)
	}
	if m.netting_merchant_gross != nil {
		fields = append(fields, woltinvoice.FieldNettingMerchantGross)
	}
	if m.netting_wolt_invoice != nil {
		fields = append(fields, woltinvoice.FieldNettingWoltInvoice)
	}
	if m.netting_wolt_net != nil {
		fields = append(fields, woltinvoice.FieldNettingWoltNet)
	}
	if m.netting_wolt_vat != nil {
		fields = append(fields, woltinvoice.FieldNettingWoltVat)
	}
	if m.netting_wolt_gross != nil {
		fields = append(fields, woltinvoice.FieldNettingWoltGross)
	}
	if m.netting_net_payout != nil {
		fields = append(fields, woltinvoice.FieldNettingNetPayout)
	}
	if m.netting_parsed_json != nil {
		fields = append(fields, woltinvoice.FieldNettingParsedJSON)
	}
	if m.netting_raw_text != nil {
		fields = append(fields, woltinvoice.FieldNettingRawText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WoltInvoiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case woltinvoice.FieldInvoiceNumber:
		return m.InvoiceNumber()
	case woltinvoice.FieldInvoiceDate:
		return m.InvoiceDate()
	case woltinvoice.FieldPeriodStart:
		return m.PeriodStart()
	case woltinvoice.FieldPeriodEnd:
		return m.PeriodEnd()
	case woltinvoice.FieldSupplierName:
		return m.SupplierName()
	case woltinvoice.FieldTotalAmount:
		return m.TotalAmount()
	case woltinvoice.FieldStatus:
		return m.Status()
	case woltinvoice.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case woltinvoice.FieldNeedsReview:
		return m.NeedsReview()
	case woltinvoice.FieldRawText:
		return m.RawText()
	case woltinvoice.FieldSourceFilename:
		return m.SourceFilename()
	case woltinvoice.FieldEmailSubject:
		return m.EmailSubject()
	case woltinvoice.FieldEmailSender:
		return m.EmailSender()
	case woltinvoice.FieldEmailDate:
		return m.EmailDate()
	case woltinvoice.FieldCreatedAt:
		return m.CreatedAt()
	case woltinvoice.FieldUpdatedAt:
		return m.UpdatedAt()
	case woltinvoice.FieldSupplierAddress:
		return m.SupplierAddress()
	case woltinvoice.FieldSupplierVatID:
		return m.SupplierVatID()
	case woltinvoice.FieldRestaurantName:
		return m.RestaurantName()
	case woltinvoice.FieldBusinessID:
		return m.BusinessID()
	case woltinvoice.FieldGoodsNet7:
		return m.GoodsNet7()
	case woltinvoice.FieldGoodsVat7:
		return m.GoodsVat7()
	case woltinvoice.FieldGoodsGross7:
		return m.GoodsGross7()
	case woltinvoice.FieldGoodsNet19:
		return m.GoodsNet19()
	case woltinvoice.FieldGoodsVat19:
		return m.GoodsVat19()
	case woltinvoice.FieldGoodsGross19:
		return m.GoodsGross19()
	case woltinvoice.FieldGoodsNetTotal:
		return m.GoodsNetTotal()
	case woltinvoice.FieldGoodsVatTotal:
		return m.GoodsVatTotal()
	case woltinvoice.FieldGoodsGrossTotal:
		return m.GoodsGrossTotal()
	case woltinvoice.FieldDistributionNetTotal:
		return m.DistributionNetTotal()
	case woltinvoice.FieldDistributionVatTotal:
		return m.DistributionVatTotal()
	case woltinvoice.FieldDistributionGrossTotal:
		return m.DistributionGrossTotal()
	case woltinvoice.FieldNetpriceNet7:
		return m.NetpriceNet7()
	case woltinvoice.FieldNetpriceVat7:
		return m.NetpriceVat7()
	case woltinvoice.FieldNetpriceGross7:
		return m.NetpriceGross7()
	case woltinvoice.FieldNetpriceNet19:
		return m.NetpriceNet19()
	case woltinvoice.FieldNetpriceVat19:
		return m.NetpriceVat19()
	case woltinvoice.FieldNetpriceGross19:
		return m.NetpriceGross19()
	case woltinvoice.FieldNetpriceNetTotal:
		return m.NetpriceNetTotal()
	case woltinvoice.FieldNetpriceVatTotal:
		return m.NetpriceVatTotal()
	case woltinvoice.FieldNetpriceGrossTotal:
		return m.NetpriceGrossTotal()
	case woltinvoice.FieldEndAmountNet:
		return m.EndAmountNet()
	case woltinvoice.FieldEndAmountVat:
		return m.EndAmountVat()
	case woltinvoice.FieldEndAmountGross:
		return m.EndAmountGross()
	case woltinvoice.FieldNettingMerchantInvoice:
		return m.NettingMerchantInvoice()
	case woltinvoice.FieldNettingMerchantNet:
		return m.NettingMerchantNet()
	case woltinvoice.FieldNettingMerchantVat:
		return m.NettingMerchantVat()
	case woltinvoice.FieldNettingMerchantGross:
		return m.NettingMerchantGross()
	case woltinvoice.FieldNettingWoltInvoice:
		return m.NettingWoltInvoice()
	case woltinvoice.FieldNettingWoltNet:
		return m.NettingWoltNet()
	case woltinvoice.FieldNettingWoltVat:
		return m.NettingWoltVat()
	case woltinvoice.FieldNettingWoltGross:
		return m.NettingWoltGross()
	case woltinvoice.FieldNettingNetPayout:
		return m.NettingNetPayout()
	case woltinvoice.FieldNettingParsedJSON:
		return m.NettingParsedJSON()
	case woltinvoice.FieldNettingRawText:
		return m.NettingRawText()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WoltInvoiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case woltinvoice.FieldInvoiceNumber:
		return m.OldInvoiceNumber(ctx)
	case woltinvoice.FieldInvoiceDate:
		return m.OldInvoiceDate(ctx)
	case woltinvoice.FieldPeriodStart:
		return m.OldPeriodStart(ctx)
	case woltinvoice.FieldPeriodEnd:
		return m.OldPeriodEnd(ctx)
	case woltinvoice.FieldSupplierName:
		return m.OldSupplierName(ctx)
	case woltinvoice.FieldTotalAmount:
		return m.OldTotalAmount(ctx)
	case woltinvoice.FieldStatus:
		return m.OldStatus(ctx)
	case woltinvoice.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case woltinvoice.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case woltinvoice.FieldRawText:
		return m.OldRawText(ctx)
	case woltinvoice.FieldSourceFilename:
		return m.OldSourceFilename(ctx)
	case woltinvoice.FieldEmailSubject:
		return m.OldEmailSubject(ctx)
	case woltinvoice.FieldEmailSender:
		return m.OldEmailSender(ctx)
	case woltinvoice.FieldEmailDate:
		return m.OldEmailDate(ctx)
	case woltinvoice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case woltinvoice.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case woltinvoice.FieldSupplierAddress:
		return m.OldSupplierAddress(ctx)
	case woltinvoice.FieldSupplierVatID:
		return m.OldSupplierVatID(ctx)
	case woltinvoice.FieldRestaurantName:
		return m.OldRestaurantName(ctx)
	case woltinvoice.FieldBusinessID:
		return m.OldBusinessID(ctx)
	case woltinvoice.FieldGoodsNet7:
		return m.OldGoodsNet7(ctx)
	case woltinvoice.FieldGoodsVat7:
		return m.OldGoodsVat7(ctx)
	case woltinvoice.FieldGoodsGross7:
		return m.OldGoodsGross7(ctx)
	case woltinvoice.FieldGoodsNet19:
		return m.OldGoodsNet19(ctx)
	case woltinvoice.FieldGoodsVat19:
		return m.OldGoodsVat19(ctx)
	case woltinvoice.FieldGoodsGross19:
		return m.OldGoodsGross19(ctx)
	case woltinvoice.FieldGoodsNetTotal:
		return m.OldGoodsNetTotal(ctx)
	case woltinvoice.FieldGoodsVatTotal:
		return m.OldGoodsVatTotal(ctx)
	case woltinvoice.FieldGoodsGrossTotal:
		return m.OldGoodsGrossTotal(ctx)
	case woltinvoice.FieldDistributionNetTotal:
		return m.OldDistributionNetTotal(ctx)
	case woltinvoice.FieldDistributionVatTotal:
		return m.OldDistributionVatTotal(ctx)
	case woltinvoice.FieldDistributionGrossTotal:
		return m.OldDistributionGrossTotal(ctx)
	case woltinvoice.FieldNetpriceNet7:
		return m.OldNetpriceNet7(ctx)
	case woltinvoice.FieldNetpriceVat7:
		return m.OldNetpriceVat7(ctx)
	case woltinvoice.FieldNetpriceGross7:
		return m.OldNetpriceGross7(ctx)
	case woltinvoice.FieldNetpriceNet19:
		return m.OldNetpriceNet19(ctx)
	case woltinvoice.FieldNetpriceVat19:
		return m.OldNetpriceVat19(ctx)
	case woltinvoice.FieldNetpriceGross19:
		return m.OldNetpriceGross19(ctx)
	case woltinvoice.FieldNetpriceNetTotal:
		return m.OldNetpriceNetTotal(ctx)
	case woltinvoice.FieldNetpriceVatTotal:
		return m.OldNetpriceVatTotal(ctx)
	case woltinvoice.FieldNetpriceGrossTotal:
		return m.OldNetpriceGrossTotal(ctx)
	case woltinvoice.FieldEndAmountNet:
		return m.OldEndAmountNet(ctx)
	case woltinvoice.FieldEndAmountVat:
		return m.OldEndAmountVat(ctx)
	case woltinvoice.FieldEndAmountGross:
		return m.OldEndAmountGross(ctx)
	case woltinvoice.FieldNettingMerchantInvoice:
		return m.OldNettingMerchantInvoice(ctx)
	case woltinvoice.FieldNettingMerchantNet:
		return m.OldNettingMerchantNet(ctx)
	case woltinvoice.FieldNettingMerchantVat:
		return m.OldNettingMerchantVat(ctx)
	case woltinvoice.FieldNettingMerchantGross:
		return m.OldNettingMerchantGross(ctx)
	case woltinvoice.FieldNettingWoltInvoice:
		return m.OldNettingWoltInvoice(ctx)
	case woltinvoice.FieldNettingWoltNet:
		return m.OldNettingWoltNet(ctx)
	case woltinvoice.FieldNettingWoltVat:
		return m.OldNettingWoltVat(ctx)
	case woltinvoice.FieldNettingWoltGross:
		return m.OldNettingWoltGross(ctx)
	case woltinvoice.FieldNettingNetPayout:
		return m.OldNettingNetPayout(ctx)
	case woltinvoice.FieldNettingParsedJSON:
		return m.OldNettingParsedJSON(ctx)
	case woltinvoice.FieldNettingRawText:
		return m.OldNettingRawText(ctx)
	}
	return nil, fmt.Errorf("unknown WoltInvoice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WoltInvoiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case woltinvoice.FieldInvoiceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNumber(v)
		return nil
	case woltinvoice.FieldInvoiceDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceDate(v)
		return nil
	case woltinvoice.FieldPeriodStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodStart(v)
		return nil
	case woltinvoice.FieldPeriodEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodEnd(v)
		return nil
	case woltinvoice.FieldSupplierName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierName(v)
		return nil
	case woltinvoice.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmount(v)
		return nil
	case woltinvoice.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case woltinvoice.FieldExtractionConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case woltinvoice.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case woltinvoice.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case woltinvoice.FieldSourceFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFilename(v)
		return nil
	case woltinvoice.FieldEmailSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailSubject(v)
		return nil
	case woltinvoice.FieldEmailSender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailSender(v)
		return nil
	case woltinvoice.FieldEmailDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailDate(v)
		return nil
	case woltinvoice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case woltinvoice.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case woltinvoice.FieldSupplierAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierAddress(v)
		return nil
	case woltinvoice.FieldSupplierVatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierVatID(v)
		return nil
	case woltinvoice.FieldRestaurantName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRestaurantName(v)
		return nil
	case woltinvoice.FieldBusinessID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessID(v)
		return nil
	case woltinvoice.FieldGoodsNet7:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoodsNet7(v)
		return nil
	case woltinvoice.FieldGoodsVat7:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoodsVat7(v)
		return nil
	case woltinvoice.FieldGoodsGross7:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoodsGross7(v)
		return nil
	case woltinvoice.FieldGoodsNet19:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoodsNet19(v)
		return nil
	case woltinvoice.FieldGoodsVat19:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoodsVat19(v)
		return nil
	case woltinvoice.FieldGoodsGross19:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoodsGross19(v)
		return nil
	case woltinvoice.FieldGoodsNetTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoodsNetTotal(v)
		return nil
	case woltinvoice.FieldGoodsVatTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoodsVatTotal(v)
		return nil
	case woltinvoice.FieldGoodsGrossTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoodsGrossTotal(v)
		return nil
	case woltinvoice.FieldDistributionNetTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistributionNetTotal(v)
		return nil
	case woltinvoice.FieldDistributionVatTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistributionVatTotal(v)
		return nil
	case woltinvoice.FieldDistributionGrossTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistributionGrossTotal(v)
		return nil
	case woltinvoice.FieldNetpriceNet7:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetpriceNet7(v)
		return nil
	case woltinvoice.FieldNetpriceVat7:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetpriceVat7(v)
		return nil
	case woltinvoice.FieldNetpriceGross7:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetpriceGross7(v)
		return nil
	case woltinvoice.FieldNetpriceNet19:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetpriceNet19(v)
		return nil
	case woltinvoice.FieldNetpriceVat19:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetpriceVat19(v)
		return nil
	case woltinvoice.FieldNetpriceGross19:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetpriceGross19(v)
		return nil
	case woltinvoice.FieldNetpriceNetTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetpriceNetTotal(v)
		return nil
	case woltinvoice.FieldNetpriceVatTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetpriceVatTotal(v)
		return nil
	case woltinvoice.FieldNetpriceGrossTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetpriceGrossTotal(v)
		return nil
	case woltinvoice.FieldEndAmountNet:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndAmountNet(v)
		return nil
	case woltinvoice.FieldEndAmountVat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndAmountVat(v)
		return nil
	case woltinvoice.FieldEndAmountGross:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndAmountGross(v)
		return nil
	case woltinvoice.FieldNettingMerchantInvoice:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNettingMerchantInvoice(v)
		return nil
	case woltinvoice.FieldNettingMerchantNet:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNettingMerchantNet(v)
		return nil
	case woltinvoice.FieldNettingMerchantVat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNettingMerchantVat(v)
		return nil
	case woltinvoice.FieldNettingMerchantGross:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNettingMerchantGross(v)
		return nil
	case woltinvoice.FieldNettingWoltInvoice:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNettingWoltInvoice(v)
		return nil
	case woltinvoice.FieldNettingWoltNet:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNettingWoltNet(v)
		return nil
	case woltinvoice.FieldNettingWoltVat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNettingWoltVat(v)
		return nil
	case woltinvoice.FieldNettingWoltGross:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNettingWoltGross(v)
		return nil
	case woltinvoice.FieldNettingNetPayout:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNettingNetPayout(v)
		return nil
	case woltinvoice.FieldNettingParsedJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNettingParsedJSON(v)
		return nil
	case woltinvoice.FieldNettingRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNettingRawText(v)
		return nil
	}
	return fmt.Errorf("unknown WoltInvoice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WoltInvoiceMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_amount != nil {
		fields = append(fields, woltinvoice.FieldTotalAmount)
	}
	if m.addextraction_confidence != nil {
		fields = append(fields, woltinvoice.FieldExtractionConfidence)
	}
	if m.addgoods_net_7 != nil {
		fields = append(fields, woltinvoice.FieldGoodsNet7)
	}
	if m.addgoods_vat_7 != nil {
		fields = append(fields, woltinvoice.FieldGoodsVat7)
	}
	if m.addgoods_gross_7 != nil {
		fields = append(fields, woltinvoice.FieldGoodsGross7)
	}
	if m.addgoods_net_19 != nil {
		fields = append(fields, woltinvoice.FieldGoodsNet19)
	}
	if m.addgoods_vat_19 != nil {
		fields = append(fields, woltinvoice.FieldGoodsVat19)
	}
	if m.addgoods_gross_19 != nil {
		fields = append(fields, woltinvoice.FieldGoodsGross19)
	}
	if m.addgoods_net_total != nil {
		fields = append(fields, woltinvoice.FieldGoodsNetTotal)
	}
	if m.addgoods_vat_total != nil {
		fields = append(fields, woltinvoice.FieldGoodsVatTotal)
	}
	if m.addgoods_gross_total != nil {
		fields = append(fields, woltinvoice.FieldGoodsGrossTotal)
	}
	if m.adddistribution_net_total != nil {
		fields = append(fields, woltinvoice.FieldDistributionNetTotal)
	}
	if m.adddistribution_vat_total != nil {
		fields = append(fields, woltinvoice.FieldDistributionVatTotal)
	}
	if m.adddistribution_gross_total != nil {
		fields = append(fields, woltinvoice.FieldDistributionGrossTotal)
	}
	if m.addnetprice_net_7 != nil {
		fields = append(fields, woltinvoice.FieldNetpriceNet7)
	}
	if m.addnetprice_vat_7 != nil {
		fields = append(fields, woltinvoice.FieldNetpriceVat7)
	}
	if m.addnetprice_gross_7 != nil {
		fields = append(fields, woltinvoice.FieldNetpriceGross7)
	}
	if m.addnetprice_net_19 != nil {
		fields = append(fields, woltinvoice.FieldNetpriceNet19)
	}
	if m.addnetprice_vat_19 != nil {
		fields = append(fields, woltinvoice.FieldNetpriceVat19)
	}
	if m.addnetprice_gross_19 != nil {
		fields = append(fields, woltinvoice.FieldNetpriceGross19)
	}
	if m.addnetprice_net_total != nil {
		fields = append(fields, woltinvoice.FieldNetpriceNetTotal)
	}
	if m.addnetprice_vat_total != nil {
		fields = append(fields, woltinvoice.FieldNetpriceVatTotal)
	}
	if m.addnetprice_gross_total != nil {
		fields = append(fields, woltinvoice.FieldNetpriceGrossTotal)
	}
	if m.addend_amount_net != nil {
		fields = append(fields, woltinvoice.FieldEndAmountNet)
	}
	if m.addend_amount_vat != nil {
		fields = append(fields, woltinvoice.FieldEndAmountVat)
	}
	if m.addend_amount_gross != nil {
		fields = append(fields, woltinvoice.FieldEndAmountGross)
	}
	if m.addnetting_merchant_net != nil {
		fields = append(fields, woltinvoice.FieldNettingMerchantNet)
	}
	if m.addnetting_merchant_vat != nil {
		fields = append(fields, woltinvoice.FieldNettingMerchantVat)
	}
	if m.addnetting_merchant_gross != nil {
		fields = append(fields, woltinvoice.FieldNettingMerchantGross)
	}
	if m.addnetting_wolt_net != nil {
		fields = append(fields, woltinvoice.FieldNettingWoltNet)
	}
	if m.addnetting_wolt_vat != nil {
		fields = append(fields, woltinvoice.FieldNettingWoltVat)
	}
	if m.addnetting_wolt_gross != nil {
		fields = append(fields, woltinvoice.FieldNettingWoltGross)
	}
	if m.addnetting_net_payout != nil {
		fields = append(fields, woltinvoice.FieldNettingNetPayout)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WoltInvoiceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case woltinvoice.FieldTotalAmount:
		return m.AddedTotalAmount()
	case woltinvoice.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	case woltinvoice.FieldGoodsNet7:
		return m.AddedGoodsNet7()
	case woltinvoice.FieldGoodsVat7:
		return m.AddedGoodsVat7()
	case woltinvoice.FieldGoodsGross7:
		return m.AddedGoodsGross7()
	case woltinvoice.FieldGoodsNet19:
		return m.AddedGoodsNet19()
	case woltinvoice.FieldGoodsVat19:
		return m.AddedGoodsVat19()
	case woltinvoice.FieldGoodsGross19:
		return m.AddedGoodsGross19()
	case woltinvoice.FieldGoodsNetTotal:
		return m.AddedGoodsNetTotal()
	case woltinvoice.FieldGoodsVatTotal:
		return m.AddedGoodsVatTotal()
	case woltinvoice.FieldGoodsGrossTotal:
		return m.AddedGoodsGrossTotal()
	case woltinvoice.FieldDistributionNetTotal:
		return m.AddedDistributionNetTotal()
	case woltinvoice.FieldDistributionVatTotal:
		return m.AddedDistributionVatTotal()
	case woltinvoice.FieldDistributionGrossTotal:
		return m.AddedDistributionGrossTotal()
	case woltinvoice.FieldNetpriceNet7:
		return m.AddedNetpriceNet7()
	case woltinvoice.FieldNetpriceVat7:
		return m.AddedNetpriceVat7()
	case woltinvoice.FieldNetpriceGross7:
		return m.AddedNetpriceGross7()
	case woltinvoice.FieldNetpriceNet19:
		return m.AddedNetpriceNet19()
	case woltinvoice.FieldNetpriceVat19:
		return m.AddedNetpriceVat19()
	case woltinvoice.FieldNetpriceGross19:
		return m.AddedNetpriceGross19()
	case woltinvoice.FieldNetpriceNetTotal:
		return m.AddedNetpriceNetTotal()
	case woltinvoice.FieldNetpriceVatTotal:
		return m.AddedNetpriceVatTotal()
	case woltinvoice.FieldNetpriceGrossTotal:
		return m.AddedNetpriceGrossTotal()
	case woltinvoice.FieldEndAmountNet:
		return m.AddedEndAmountNet()
	case woltinvoice.FieldEndAmountVat:
		return m.AddedEndAmountVat()
	case woltinvoice.FieldEndAmountGross:
		return m.AddedEndAmountGross()
	case woltinvoice.FieldNettingMerchantNet:
		return m.AddedNettingMerchantNet()
	case woltinvoice.FieldNettingMerchantVat:
		return m.AddedNettingMerchantVat()
	case woltinvoice.FieldNettingMerchantGross:
		return m.AddedNettingMerchantGross()
	case woltinvoice.FieldNettingWoltNet:
		return m.AddedNettingWoltNet()
	case woltinvoice.FieldNettingWoltVat:
		return m.AddedNettingWoltVat()
	case woltinvoice.FieldNettingWoltGross:
		return m.AddedNettingWoltGross()
	case woltinvoice.FieldNettingNetPayout:
		return m.AddedNettingNetPayout()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WoltInvoiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case woltinvoice.FieldTotalAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAmount(v)
		return nil
	case woltinvoice.FieldExtractionConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	case woltinvoice.FieldGoodsNet7:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGoodsNet7(v)
		return nil
	case woltinvoice.FieldGoodsVat7:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGoodsVat7(v)
		return nil
	case woltinvoice.FieldGoodsGross7:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGoodsGross7(v)
		return nil
	case woltinvoice.FieldGoodsNet19:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGoodsNet19(v)
		return nil
	case woltinvoice.FieldGoodsVat19:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGoodsVat19(v)
		return nil
	case woltinvoice.FieldGoodsGross19:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGoodsGross19(v)
		return nil
	case woltinvoice.FieldGoodsNetTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGoodsNetTotal(v)
		return nil
	case woltinvoice.FieldGoodsVatTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGoodsVatTotal(v)
		return nil
	case woltinvoice.FieldGoodsGrossTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGoodsGrossTotal(v)
		return nil
	case woltinvoice.FieldDistributionNetTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDistributionNetTotal(v)
		return nil
	case woltinvoice.FieldDistributionVatTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDistributionVatTotal(v)
		return nil
	case woltinvoice.FieldDistributionGrossTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDistributionGrossTotal(v)
		return nil
	case woltinvoice.FieldNetpriceNet7:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNetpriceNet7(v)
		return nil
	case woltinvoice.FieldNetpriceVat7:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNetpriceVat7(v)
		return nil
	case woltinvoice.FieldNetpriceGross7:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNetpriceGross7(v)
		return nil
	case woltinvoice.FieldNetpriceNet19:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNetpriceNet19(v)
		return nil
	case woltinvoice.FieldNetpriceVat19:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNetpriceVat19(v)
		return nil
	case woltinvoice.FieldNetpriceGross19:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNetpriceGross19(v)
		return nil
	case woltinvoice.FieldNetpriceNetTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNetpriceNetTotal(v)
		return nil
	case woltinvoice.FieldNetpriceVatTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNetpriceVatTotal(v)
		return nil
	case woltinvoice.FieldNetpriceGrossTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNetpriceGrossTotal(v)
		return nil
	case woltinvoice.FieldEndAmountNet:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndAmountNet(v)
		return nil
	case woltinvoice.FieldEndAmountVat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndAmountVat(v)
		return nil
	case woltinvoice.FieldEndAmountGross:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndAmountGross(v)
		return nil
	case woltinvoice.FieldNettingMerchantNet:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNettingMerchantNet(v)
		return nil
	case woltinvoice.FieldNettingMerchantVat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNettingMerchantVat(v)
		return nil
	case woltinvoice.FieldNettingMerchantGross:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNettingMerchantGross(v)
		return nil
	case woltinvoice.FieldNettingWoltNet:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNettingWoltNet(v)
		return nil
	case woltinvoice.FieldNettingWoltVat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNettingWoltVat(v)
		return nil
	case woltinvoice.FieldNettingWoltGross:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNettingWoltGross(v)
		return nil
	case woltinvoice.FieldNettingNetPayout:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNettingNetPayout(v)
		return nil
	}
	return fmt.Errorf("unknown WoltInvoice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WoltInvoiceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(woltinvoice.FieldInvoiceDate) {
		fields = append(fields, woltinvoice.FieldInvoiceDate)
	}
	if m.FieldCleared(woltinvoice.FieldPeriodStart) {
		fields = append(fields, woltinvoice.FieldPeriodStart)
	}
	if m.FieldCleared(woltinvoice.FieldPeriodEnd) {
		fields = append(fields, woltinvoice.FieldPeriodEnd)
	}
	if m.FieldCleared(woltinvoice.FieldSupplierName) {
		fields = append(fields, woltinvoice.FieldSupplierName)
	}
	if m.FieldCleared(woltinvoice.FieldTotalAmount) {
		fields = append(fields, woltinvoice.FieldTotalAmount)
	}
	if m.FieldCleared(woltinvoice.FieldRawText) {
		fields = append(fields, woltinvoice.FieldRawText)
	}
	if m.FieldCleared(woltinvoice.FieldSourceFilename) {
		fields = append(fields, woltinvoice.FieldSourceFilename)
	}
	if m.FieldCleared(woltinvoice.FieldEmailSubject) {
		fields = append(fields, woltinvoice.FieldEmailSubject)
	}
	if m.FieldCleared(woltinvoice.FieldEmailSender) {
		fields = append(fields, woltinvoice.FieldEmailSender)
	}
	if m.FieldCleared(woltinvoice.FieldEmailDate) {
		fields = append(fields, woltinvoice.FieldEmailDate)
	}
	if m.FieldCleared(woltinvoice.FieldSupplierAddress) {
		fields = append(fields, woltinvoice.FieldSupplierAddress)
	}
	if m.FieldCleared(woltinvoice.FieldSupplierVatID) {
		fields = append(fields, woltinvoice.FieldSupplierVatID)
	}
	if m.FieldCleared(woltinvoice.FieldRestaurantName) {
		fields = append(fields, woltinvoice.FieldRestaurantName)
	}
	if m.FieldCleared(woltinvoice.FieldBusinessID) {
		fields = append(fields, woltinvoice.FieldBusinessID)
	}
	if m.FieldCleared(woltinvoice.FieldGoodsNet7) {
		fields = append(fields, woltinvoice.FieldGoodsNet7)
	}
	if m.FieldCleared(woltinvoice.FieldGoodsVat7) {
		fields = append(fields, woltinvoice.FieldGoodsVat7)
	}
	if m.FieldCleared(woltinvoice.FieldGoodsGross7) {
		fields = append(fields, woltinvoice.FieldGoodsGross7)
	}
	if m.FieldCleared(woltinvoice.FieldGoodsNet19) {
		fields = append(fields, woltinvoice.FieldGoodsNet19)
	}
	if m.FieldCleared(woltinvoice.FieldGoodsVat19) {
		fields = append(fields, woltinvoice.FieldGoodsVat19)
	}
	if m.FieldCleared(woltinvoice.FieldGoodsGross19) {
		fields = append(fields, woltinvoice.FieldGoodsGross19)
	}
	if m.FieldCleared(woltinvoice.FieldGoodsNetTotal) {
		fields = append(fields, woltinvoice.FieldGoodsNetTotal)
	}
	if m.FieldCleared(woltinvoice.FieldGoodsVatTotal) {
		fields = append(fields, woltinvoice.FieldGoodsVatTotal)
	}
	if m.FieldCleared(woltinvoice.FieldGoodsGrossTotal) {
		fields = append(fields, woltinvoice.FieldGoodsGrossTotal)
	}
	if m.FieldCleared(woltinvoice.FieldDistributionNetTotal) {
		fields = append(fields, woltinvoice.FieldDistributionNetTotal)
	}
	if m.FieldCleared(woltinvoice.FieldDistributionVatTotal) {
		fields = append(fields, woltinvoice.FieldDistributionVatTotal)
	}
	if m.FieldCleared(woltinvoice.FieldDistributionGrossTotal) {
		fields = append(fields, woltinvoice.FieldDistributionGrossTotal)
	}
	if m.FieldCleared(woltinvoice.FieldNetpriceNet7) {
		fields = append(fields, woltinvoice.FieldNetpriceNet7)
	}
	if m.FieldCleared(woltinvoice.FieldNetpriceVat7) {
		fields = append(fields, woltinvoice.FieldNetpriceVat7)
	}
	if m.FieldCleared(woltinvoice.FieldNetpriceGross7) {
		fields = append(fields, woltinvoice.FieldNetpriceGross7)
	}
	if m.FieldCleared(woltinvoice.FieldNetpriceNet19) {
		fields = append(fields, woltinvoice.FieldNetpriceNet19)
	}
	if m.FieldCleared(woltinvoice.FieldNetpriceVat19) {
		fields = append(fields, woltinvoice.FieldNetpriceVat19)
	}
	if m.FieldCleared(woltinvoice.FieldNetpriceGross19) {
		fields = append(fields, woltinvoice.FieldNetpriceGross19)
	}
	if m.FieldCleared(woltinvoice.FieldNetpriceNetTotal) {
		fields = append(fields, woltinvoice.FieldNetpriceNetTotal)
	}
	if m.FieldCleared(woltinvoice.FieldNetpriceVatTotal) {
		fields = append(fields, woltinvoice.FieldNetpriceVatTotal)
	}
	if m.FieldCleared(woltinvoice.FieldNetpriceGrossTotal) {
		fields = append(fields, woltinvoice.FieldNetpriceGrossTotal)
	}
	if m.FieldCleared(woltinvoice.FieldEndAmountNet) {
		fields = append(fields, woltinvoice.FieldEndAmountNet)
	}
	if m.FieldCleared(woltinvoice.FieldEndAmountVat) {
		fields = append(fields, woltinvoice.FieldEndAmountVat)
	}
	if m.FieldCleared(woltinvoice.FieldEndAmountGross) {
		fields = append(fields, woltinvoice.FieldEndAmountGross)
	}
	if m.FieldCleared(woltinvoice.FieldNettingMerchantInvoice) {
		fields = append(fields, woltinvoice.FieldNettingMerchantInvoice)
	}
	if m.FieldCleared(woltinvoice.FieldNettingMerchantNet) {
		fields = append(fields, woltinvoice.FieldNettingMerchantNet)
	}
	if m.FieldCleared(woltinvoice.FieldNettingMerchantVat) {
		fields = append(fields, woltinvoice.FieldNettingMerchantVat)
	}
	if m.FieldCleared(woltinvoice.FieldNettingMerchantGross) {
		fields = append(fields, woltinvoice.FieldNettingMerchantGross)
	}
	if m.FieldCleared(woltinvoice.FieldNettingWoltInvoice) {
		fields = append(fields, woltinvoice.FieldNettingWoltInvoice)
	}
	if m.FieldCleared(woltinvoice.FieldNettingWoltNet) {
		fields = append(fields, woltinvoice.FieldNettingWoltNet)
	}
	if m.FieldCleared(woltinvoice.FieldNettingWoltVat) {
		fields = append(fields, woltinvoice.FieldNettingWoltVat)
	}
	if m.FieldCleared(woltinvoice.FieldNettingWoltGross) {
		fields = append(fields, woltinvoice.FieldNettingWoltGross)
	}
	if m.FieldCleared(woltinvoice.FieldNettingNetPayout) {
		fields = append(fields, woltinvoice.FieldNettingNetPayout)
	}
	if m.FieldCleared(woltinvoice.FieldNettingParsedJSON) {
		fields = append(fields, woltinvoice.FieldNettingParsedJSON)
	}
	if m.FieldCleared(woltinvoice.FieldNettingRawText) {
		fields = append(fields, woltinvoice.FieldNettingRawText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WoltInvoiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WoltInvoiceMutation) ClearField(name string) error {
	switch name {
	case woltinvoice.FieldInvoiceDate:
		m.ClearInvoiceDate()
		return nil
	case woltinvoice.FieldPeriodStart:
		m.ClearPeriodStart()
		return nil
	case woltinvoice.FieldPeriodEnd:
		m.ClearPeriodEnd()
		return nil
	case woltinvoice.FieldSupplierName:
		m.ClearSupplierName()
		return nil
	case woltinvoice.FieldTotalAmount:
		m.ClearTotalAmount()
		return nil
	case woltinvoice.FieldRawText:
		m.ClearRawText()
		return nil
	case woltinvoice.FieldSourceFilename:
		m.ClearSourceFilename()
		return nil
	case woltinvoice.FieldEmailSubject:
		m.ClearEmailSubject()
		return nil
	case woltinvoice.FieldEmailSender:
		m.ClearEmailSender()
		return nil
	case woltinvoice.FieldEmailDate:
		m.ClearEmailDate()
		return nil
	case woltinvoice.FieldSupplierAddress:
		m.ClearSupplierAddress()
		return nil
	case woltinvoice.FieldSupplierVatID:
		m.ClearSupplierVatID()
		return nil
	case woltinvoice.FieldRestaurantName:
		m.ClearRestaurantName()
		return nil
	case woltinvoice.FieldBusinessID:
		m.ClearBusinessID()
		return nil
	case woltinvoice.FieldGoodsNet7:
		m.ClearGoodsNet7()
		return nil
	case woltinvoice.FieldGoodsVat7:
		m.ClearGoodsVat7()
		return nil
	case woltinvoice.FieldGoodsGross7:
		m.ClearGoodsGross7()
		return nil
	case woltinvoice.FieldGoodsNet19:
		m.ClearGoodsNet19()
		return nil
	case woltinvoice.FieldGoodsVat19:
		m.ClearGoodsVat19()
		return nil
	case woltinvoice.FieldGoodsGross19:
		m.ClearGoodsGross19()
		return nil
	case woltinvoice.FieldGoodsNetTotal:
		m.ClearGoodsNetTotal()
		return nil
	case woltinvoice.FieldGoodsVatTotal:
		m.ClearGoodsVatTotal()
		return nil
	case woltinvoice.FieldGoodsGrossTotal:
		m.ClearGoodsGrossTotal()
		return nil
	case woltinvoice.FieldDistributionNetTotal:
		m.ClearDistributionNetTotal()
		return nil
	case woltinvoice.FieldDistributionVatTotal:
		m.ClearDistributionVatTotal()
		return nil
	case woltinvoice.FieldDistributionGrossTotal:
		m.ClearDistributionGrossTotal()
		return nil
	case woltinvoice.FieldNetpriceNet7:
		m.ClearNetpriceNet7()
		return nil
	case woltinvoice.FieldNetpriceVat7:
		m.ClearNetpriceVat7()
		return nil
	case woltinvoice.FieldNetpriceGross7:
		m.ClearNetpriceGross7()
		return nil
	case woltinvoice.FieldNetpriceNet19:
		m.ClearNetpriceNet19()
		return nil
	case woltinvoice.FieldNetpriceVat19:
		m.ClearNetpriceVat19()
		return nil
	case woltinvoice.FieldNetpriceGross19:
		m.ClearNetpriceGross19()
		return nil
	case woltinvoice.FieldNetpriceNetTotal:
		m.ClearNetpriceNetTotal()
		return nil
	case woltinvoice.FieldNetpriceVatTotal:
		m.ClearNetpriceVatTotal()
		return nil
	case woltinvoice.FieldNetpriceGrossTotal:
		m.ClearNetpriceGrossTotal()
		return nil
	case woltinvoice.FieldEndAmountNet:
		m.ClearEndAmountNet()
		return nil
	case woltinvoice.FieldEndAmountVat:
		m.ClearEndAmountVat()
		return nil
	case woltinvoice.FieldEndAmountGross:
		m.ClearEndAmountGross()
		return nil
	case woltinvoice.FieldNettingMerchantInvoice:
		m.ClearNettingMerchantInvoice()
		return nil
	case woltinvoice.FieldNettingMerchantNet:
		m.ClearNettingMerchantNet()
		return nil
	case woltinvoice.FieldNettingMerchantVat:
		m.ClearNettingMerchantVat()
		return nil
	case woltinvoice.FieldNettingMerchantGross:
		m.ClearNettingMerchantGross()
		return nil
	case woltinvoice.FieldNettingWoltInvoice:
		m.ClearNettingWoltInvoice()
		return nil
	case woltinvoice.FieldNettingWoltNet:
		m.ClearNettingWoltNet()
		return nil
	case woltinvoice.FieldNettingWoltVat:
		m.ClearNettingWoltVat()
		return nil
	case woltinvoice.FieldNettingWoltGross:
		m.ClearNettingWoltGross()
		return nil
	case woltinvoice.FieldNettingNetPayout:
		m.ClearNettingNetPayout()
		return nil
	case woltinvoice.FieldNettingParsedJSON:
		m.ClearNettingParsedJSON()
		return nil
	case woltinvoice.FieldNettingRawText:
		m.ClearNettingRawText()
		return nil
	}
	return fmt.Errorf("unknown WoltInvoice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WoltInvoiceMutation) ResetField(name string) error {
	switch name {
	case woltinvoice.FieldInvoiceNumber:
		m.ResetInvoiceNumber()
		return nil
	case woltinvoice.FieldInvoiceDate:
		m.ResetInvoiceDate()
		return nil
	case woltinvoice.FieldPeriodStart:
		m.ResetPeriodStart()
		return nil
	case woltinvoice.FieldPeriodEnd:
		m.ResetPeriodEnd()
		return nil
	case woltinvoice.FieldSupplierName:
		m.ResetSupplierName()
		return nil
	case woltinvoice.FieldTotalAmount:
		m.ResetTotalAmount()
		return nil
	case woltinvoice.FieldStatus:
		m.ResetStatus()
		return nil
	case woltinvoice.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case woltinvoice.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case woltinvoice.FieldRawText:
		m.ResetRawText()
		return nil
	case woltinvoice.FieldSourceFilename:
		m.ResetSourceFilename()
		return nil
	case woltinvoice.FieldEmailSubject:
		m.ResetEmailSubject()
		return nil
	case woltinvoice.FieldEmailSender:
		m.ResetEmailSender()
		return nil
	case woltinvoice.FieldEmailDate:
		m.ResetEmailDate()
		return nil
	case woltinvoice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case woltinvoice.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case woltinvoice.FieldSupplierAddress:
		m.ResetSupplierAddress()
		return nil
	case woltinvoice.FieldSupplierVatID:
		m.ResetSupplierVatID()
		return nil
	case woltinvoice.FieldRestaurantName:
		m.ResetRestaurantName()
		return nil
	case woltinvoice.FieldBusinessID:
		m.ResetBusinessID()
		return nil
	case woltinvoice.FieldGoodsNet7:
		m.ResetGoodsNet7()
		return nil
	case woltinvoice.FieldGoodsVat7:
		m.ResetGoodsVat7()
		return nil
	case woltinvoice.FieldGoodsGross7:
		m.ResetGoodsGross7()
		return nil
	case woltinvoice.FieldGoodsNet19:
		m.ResetGoodsNet19()
		return nil
	case woltinvoice.FieldGoodsVat19:
		m.ResetGoodsVat19()
		return nil
	case woltinvoice.FieldGoodsGross19:
		m.ResetGoodsGross19()
		return nil
	case woltinvoice.FieldGoodsNetTotal:
		m.ResetGoodsNetTotal()
		return nil
	case woltinvoice.FieldGoodsVatTotal:
		m.ResetGoodsVatTotal()
		return nil
	case woltinvoice.FieldGoodsGrossTotal:
		m.ResetGoodsGrossTotal()
		return nil
	case woltinvoice.FieldDistributionNetTotal:
		m.ResetDistributionNetTotal()
		return nil
	case woltinvoice.FieldDistributionVatTotal:
		m.ResetDistributionVatTotal()
		return nil
	case woltinvoice.FieldDistributionGrossTotal:
		m.ResetDistributionGrossTotal()
		return nil
	case woltinvoice.FieldNetpriceNet7:
		m.ResetNetpriceNet7()
		return nil
	case woltinvoice.FieldNetpriceVat7:
		m.ResetNetpriceVat7()
		return nil
	case woltinvoice.FieldNetpriceGross7:
		m.ResetNetpriceGross7()
		return nil
	case woltinvoice.FieldNetpriceNet19:
		m.ResetNetpriceNet19()
		return nil
	case woltinvoice.FieldNetpriceVat19:
		m.ResetNetpriceVat19()
		return nil
	case woltinvoice.FieldNetpriceGross19:
		m.ResetNetpriceGross19()
		return nil
	case woltinvoice.FieldNetpriceNetTotal:
		m.ResetNetpriceNetTotal()
		return nil
	case woltinvoice.FieldNetpriceVatTotal:
		m.ResetNetpriceVatTotal()
		return nil
	case woltinvoice.FieldNetpriceGrossTotal:
		m.ResetNetpriceGrossTotal()
		return nil
	case woltinvoice.FieldEndAmountNet:
		m.ResetEndAmountNet()
		return nil
	case woltinvoice.FieldEndAmountVat:
		m.ResetEndAmountVat()
		return nil
	case woltinvoice.FieldEndAmountGross:
		m.ResetEndAmountGross()
		return nil
	case woltinvoice.FieldNettingMerchantInvoice:
		m.ResetNettingMerchantInvoice()
		return nil
	case woltinvoice.FieldNettingMerchantNet:
		m.ResetNettingMerchantNet()
		return nil
	case woltinvoice.FieldNettingMerchantVat:
		m.ResetNettingMerchantVat()
		return nil
	case woltinvoice.FieldNettingMerchantGross:
		m.ResetNettingMerchantGross()
		return nil
	case woltinvoice.FieldNettingWoltInvoice:
		m.ResetNettingWoltInvoice()
		return nil
	case woltinvoice.FieldNettingWoltNet:
		m.ResetNettingWoltNet()
		return nil
	case woltinvoice.FieldNettingWoltVat:
		m.ResetNettingWoltVat()
		return nil
	case woltinvoice.FieldNettingWoltGross:
		m.ResetNettingWoltGross()
		return nil
	case woltinvoice.FieldNettingNetPayout:
		m.ResetNettingNetPayout()
		return nil
	case woltinvoice.FieldNettingParsedJSON:
		m.ResetNettingParsedJSON()
		return nil
	case woltinvoice.FieldNettingRawText:
		m.ResetNettingRawText()
		return nil
	}
	return fmt.Errorf("unknown WoltInvoice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WoltInvoiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WoltInvoiceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WoltInvoiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WoltInvoiceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WoltInvoiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WoltInvoiceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WoltInvoiceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WoltInvoice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WoltInvoiceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WoltInvoice edge %s", name)
}
