package extract

import (
	"time"

	"github.com/cc-collective/invoice-ingest/constants"
)

// Amounts groups a net/VAT/gross column triple as it appears on Wolt
// statements. Fields stay nil when the source row was not found.
type Amounts struct {
	Net   *float64
	VAT   *float64
	Gross *float64
}

// LineItem is one row of a Lieferando order or tip table.
type LineItem struct {
	At     time.Time
	ID     string
	Amount float64
	Online bool
}

// Data is the transient result of extracting one PDF. It is consumed
// immediately to build a persisted invoice row and then discarded.
type Data struct {
	Platform      constants.Platform
	InvoiceNumber string
	InvoiceDate   *time.Time
	TotalAmount   *float64
	IBAN          string
	RawText       string
	Confidence    int
	NeedsReview   bool

	Lieferando *LieferandoFields
	Wolt       *WoltFields
	UberEats   *UberEatsFields
}

// LieferandoFields covers the weekly Lieferando settlement invoice,
// including the per-order and per-tip tables from the later pages.
type LieferandoFields struct {
	PeriodStart *time.Time
	PeriodEnd   *time.Time

	SupplierName             string
	SupplierIBAN             string
	SupplierVATID            string
	SupplierManagingDirector string
	SupplierCourtRegistry    string
	SupplierHRB              string

	RestaurantName    string
	CustomerNumber    string
	CustomerTaxNumber string
	CustomerCompany   string
	CustomerBankIBAN  string

	TotalOrders          *int
	TotalRevenue         *float64
	OnlinePaidOrders     *int
	OnlinePaidAmount     *float64
	CashPaidOrders       *int
	CashPaidAmount       *float64
	CashServiceFeeAmount *float64
	ChargebackOrders     *int
	ChargebackAmount     *float64
	StampCardOrders      *int
	StampCardAmount      *float64

	ServiceFeeRate   *float64
	ServiceFeeAmount *float64
	AdminFeeRate     *float64
	AdminFeeAmount   *float64

	Subtotal           *float64
	TaxRate            *float64
	TaxAmount          *float64
	PaidOnlinePayments *float64
	OutstandingAmount  *float64
	OutstandingBalance *float64
	PayoutAmount       *float64
	AmountDue          *float64

	ConfirmationPaymentDate *time.Time
	ConfirmationCodeMessage string

	OrderItems []LineItem
	TipItems   []LineItem
}

// WoltFields covers the self-billed Wolt invoice with its 7%/19% VAT splits.
type WoltFields struct {
	PeriodStart *time.Time
	PeriodEnd   *time.Time

	SupplierName    string
	SupplierVATID   string
	SupplierAddress string
	RestaurantName  string
	BusinessID      string

	Goods7     Amounts
	Goods19    Amounts
	GoodsTotal Amounts

	DistributionTotal Amounts

	NetPrice7     Amounts
	NetPrice19    Amounts
	NetPriceTotal Amounts

	EndAmount Amounts
}

// UberEatsFields covers the Uber Eats order-and-payment summary invoice.
type UberEatsFields struct {
	TaxDate     *time.Time
	PeriodStart *time.Time
	PeriodEnd   *time.Time

	CustomerCompany   string
	RestaurantName    string
	RestaurantAddress string
	BusinessID        string
	CustomerVATID     string
	TaxNumber         string

	TotalOrders                *int
	TotalOrderValue            *float64
	GrossRevenueAfterDiscounts *float64
	CommissionOwnDelivery      *float64
	CommissionPickup           *float64
	UberEatsFee                *float64
	VAT19                      *float64
	CashCollected              *float64
	TotalPayout                *float64
	NetAmount                  *float64
	VATAmount                  *float64
}

// NettingFields is the parsed subset of a Wolt netting report. Row
// attribution is positional: the first invoice row on the report is taken as
// the merchant side, the second as Wolt's own invoice.
type NettingFields struct {
	MerchantInvoiceNumber string
	Merchant              Amounts
	WoltInvoiceNumber     string
	Wolt                  Amounts
	NetPayout             *float64
}

// Empty reports whether nothing at all could be resolved from the report.
func (n *NettingFields) Empty() bool {
	return n.MerchantInvoiceNumber == "" && n.WoltInvoiceNumber == "" && n.NetPayout == nil
}
