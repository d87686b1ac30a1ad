package repository

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/cc-collective/invoice-ingest/constants"
	"github.com/cc-collective/invoice-ingest/gen/ent"
	"github.com/cc-collective/invoice-ingest/gen/ent/lieferandoinvoice"
	"github.com/cc-collective/invoice-ingest/gen/ent/ubereatsinvoice"
	"github.com/cc-collective/invoice-ingest/gen/ent/woltinvoice"
	"github.com/cc-collective/invoice-ingest/internal/common"
	"github.com/cc-collective/invoice-ingest/internal/entity"
	"github.com/cc-collective/invoice-ingest/internal/extract"
	"github.com/cc-collective/invoice-ingest/internal/pipeline"
)

// InvoiceRepository is the persistence surface for extracted invoices. It
// satisfies pipeline.Store and adds the read side used by the gRPC server
// and the export service.
type InvoiceRepository interface {
	pipeline.Store
	ListInvoices(ctx context.Context, filter entity.InvoiceFilter) ([]*entity.Invoice, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceRepository) Exists(ctx context.Context, platform constants.Platform, invoiceNumber string) (bool, error) {
	switch platform {
	case constants.PlatformLieferando:
		return r.client.LieferandoInvoice.Query().
			Where(lieferandoinvoice.InvoiceNumber(invoiceNumber)).
			Exist(ctx)
	case constants.PlatformWolt:
		return r.client.WoltInvoice.Query().
			Where(woltinvoice.InvoiceNumber(invoiceNumber)).
			Exist(ctx)
	case constants.PlatformUberEats:
		return r.client.UberEatsInvoice.Query().
			Where(ubereatsinvoice.InvoiceNumber(invoiceNumber)).
			Exist(ctx)
	}
	return false, common.NewAppError("INVALID_PLATFORM", string(platform), common.ErrInvalidInput)
}

func (r *invoiceRepository) CreateInvoice(ctx context.Context, req *pipeline.CreateInvoiceRequest) (*entity.Invoice, error) {
	v := common.NewValidator()
	v.Field("invoice_number", req.Data.InvoiceNumber, common.Required)
	if v.HasErrors() {
		return nil, common.NewAppError("INVALID_INVOICE", v.ErrorMessage(), common.ErrInvalidInput)
	}

	r.logger.Debug("invoices.create",
		"platform", req.Data.Platform,
		"invoice_number", req.Data.InvoiceNumber,
		"email_id", common.EmailIDFromContext(ctx),
	)

	switch req.Data.Platform {
	case constants.PlatformLieferando:
		return r.createLieferando(ctx, req)
	case constants.PlatformWolt:
		return r.createWolt(ctx, req)
	case constants.PlatformUberEats:
		return r.createUberEats(ctx, req)
	}
	return nil, common.NewAppError("INVALID_PLATFORM", string(req.Data.Platform), common.ErrInvalidInput)
}

func (r *invoiceRepository) createLieferando(ctx context.Context, req *pipeline.CreateInvoiceRequest) (*entity.Invoice, error) {
	d := req.Data
	f := d.Lieferando
	if f == nil {
		f = &extract.LieferandoFields{}
	}

	builder := r.client.LieferandoInvoice.Create().
		SetInvoiceNumber(d.InvoiceNumber).
		SetNillableInvoiceDate(d.InvoiceDate).
		SetNillablePeriodStart(f.PeriodStart).
		SetNillablePeriodEnd(f.PeriodEnd).
		SetSupplierName(f.SupplierName).
		SetNillableTotalAmount(d.TotalAmount).
		SetExtractionConfidence(d.Confidence).
		SetNeedsReview(d.NeedsReview).
		SetRawText(d.RawText).
		SetSourceFilename(req.Filename).
		SetEmailSubject(req.Email.Subject).
		SetEmailSender(req.Email.Sender).
		SetEmailDate(req.Email.Received).
		SetRestaurantName(f.RestaurantName).
		SetCustomerNumber(f.CustomerNumber).
		SetCustomerCompany(f.CustomerCompany).
		SetCustomerTaxNumber(f.CustomerTaxNumber).
		SetCustomerBankIban(f.CustomerBankIBAN).
		SetSupplierIban(f.SupplierIBAN).
		SetSupplierVatID(f.SupplierVATID).
		SetSupplierManagingDirector(f.SupplierManagingDirector).
		SetSupplierCourtRegistry(f.SupplierCourtRegistry).
		SetSupplierHrb(f.SupplierHRB).
		SetNillableTotalOrders(f.TotalOrders).
		SetNillableTotalRevenue(f.TotalRevenue).
		SetNillableOnlinePaidOrders(f.OnlinePaidOrders).
		SetNillableOnlinePaidAmount(f.OnlinePaidAmount).
		SetNillableCashPaidOrders(f.CashPaidOrders).
		SetNillableCashPaidAmount(f.CashPaidAmount).
		SetNillableCashServiceFeeAmount(f.CashServiceFeeAmount).
		SetNillableChargebackOrders(f.ChargebackOrders).
		SetNillableChargebackAmount(f.ChargebackAmount).
		SetNillableStampCardOrders(f.StampCardOrders).
		SetNillableStampCardAmount(f.StampCardAmount).
		SetNillableServiceFeeRate(f.ServiceFeeRate).
		SetNillableServiceFeeAmount(f.ServiceFeeAmount).
		SetNillableAdminFeeRate(f.AdminFeeRate).
		SetNillableAdminFeeAmount(f.AdminFeeAmount).
		SetNillableSubtotal(f.Subtotal).
		SetNillableTaxRate(f.TaxRate).
		SetNillableTaxAmount(f.TaxAmount).
		SetNillablePaidOnlinePayments(f.PaidOnlinePayments).
		SetNillableOutstandingAmount(f.OutstandingAmount).
		SetNillableOutstandingBalance(f.OutstandingBalance).
		SetNillablePayoutAmount(f.PayoutAmount).
		SetNillableAmountDue(f.AmountDue).
		SetNillableConfirmationPaymentDate(f.ConfirmationPaymentDate).
		SetConfirmationCodeMessage(f.ConfirmationCodeMessage)

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, r.mapCreateError(err, d)
	}

	if len(f.OrderItems) > 0 {
		bulk := make([]*ent.OrderItemCreate, len(f.OrderItems))
		for i, it := range f.OrderItems {
			bulk[i] = r.client.OrderItem.Create().
				SetOrderedAt(it.At).
				SetOrderCode(it.ID).
				SetAmount(it.Amount).
				SetOnline(it.Online).
				SetInvoice(row)
		}
		if _, err := r.client.OrderItem.CreateBulk(bulk...).Save(ctx); err != nil {
			r.logger.Error("invoices.order_items.create_failed", "invoice_number", d.InvoiceNumber, "error", err)
			return nil, err
		}
	}
	if len(f.TipItems) > 0 {
		bulk := make([]*ent.TipItemCreate, len(f.TipItems))
		for i, it := range f.TipItems {
			bulk[i] = r.client.TipItem.Create().
				SetTippedAt(it.At).
				SetOrderCode(it.ID).
				SetAmount(it.Amount).
				SetInvoice(row)
		}
		if _, err := r.client.TipItem.CreateBulk(bulk...).Save(ctx); err != nil {
			r.logger.Error("invoices.tip_items.create_failed", "invoice_number", d.InvoiceNumber, "error", err)
			return nil, err
		}
	}

	return lieferandoToEntity(row), nil
}

func (r *invoiceRepository) createWolt(ctx context.Context, req *pipeline.CreateInvoiceRequest) (*entity.Invoice, error) {
	d := req.Data
	f := d.Wolt
	if f == nil {
		f = &extract.WoltFields{SupplierName: constants.SupplierWolt}
	}

	row, err := r.client.WoltInvoice.Create().
		SetInvoiceNumber(d.InvoiceNumber).
		SetNillableInvoiceDate(d.InvoiceDate).
		SetNillablePeriodStart(f.PeriodStart).
		SetNillablePeriodEnd(f.PeriodEnd).
		SetSupplierName(f.SupplierName).
		SetNillableTotalAmount(d.TotalAmount).
		SetExtractionConfidence(d.Confidence).
		SetNeedsReview(d.NeedsReview).
		SetRawText(d.RawText).
		SetSourceFilename(req.Filename).
		SetEmailSubject(req.Email.Subject).
		SetEmailSender(req.Email.Sender).
		SetEmailDate(req.Email.Received).
		SetSupplierAddress(f.SupplierAddress).
		SetSupplierVatID(f.SupplierVATID).
		SetRestaurantName(f.RestaurantName).
		SetBusinessID(f.BusinessID).
		SetNillableGoodsNet7(f.Goods7.Net).
		SetNillableGoodsVat7(f.Goods7.VAT).
		SetNillableGoodsGross7(f.Goods7.Gross).
		SetNillableGoodsNet19(f.Goods19.Net).
		SetNillableGoodsVat19(f.Goods19.VAT).
		SetNillableGoodsGross19(f.Goods19.Gross).
		SetNillableGoodsNetTotal(f.GoodsTotal.Net).
		SetNillableGoodsVatTotal(f.GoodsTotal.VAT).
		SetNillableGoodsGrossTotal(f.GoodsTotal.Gross).
		SetNillableDistributionNetTotal(f.DistributionTotal.Net).
		SetNillableDistributionVatTotal(f.DistributionTotal.VAT).
		SetNillableDistributionGrossTotal(f.DistributionTotal.Gross).
		SetNillableNetpriceNet7(f.NetPrice7.Net).
		SetNillableNetpriceVat7(f.NetPrice7.VAT).
		SetNillableNetpriceGross7(f.NetPrice7.Gross).
		SetNillableNetpriceNet19(f.NetPrice19.Net).
		SetNillableNetpriceVat19(f.NetPrice19.VAT).
		SetNillableNetpriceGross19(f.NetPrice19.Gross).
		SetNillableNetpriceNetTotal(f.NetPriceTotal.Net).
		SetNillableNetpriceVatTotal(f.NetPriceTotal.VAT).
		SetNillableNetpriceGrossTotal(f.NetPriceTotal.Gross).
		SetNillableEndAmountNet(f.EndAmount.Net).
		SetNillableEndAmountVat(f.EndAmount.VAT).
		SetNillableEndAmountGross(f.EndAmount.Gross).
		Save(ctx)
	if err != nil {
		return nil, r.mapCreateError(err, d)
	}
	return woltToEntity(row), nil
}

func (r *invoiceRepository) createUberEats(ctx context.Context, req *pipeline.CreateInvoiceRequest) (*entity.Invoice, error) {
	d := req.Data
	f := d.UberEats
	if f == nil {
		f = &extract.UberEatsFields{}
	}

	row, err := r.client.UberEatsInvoice.Create().
		SetInvoiceNumber(d.InvoiceNumber).
		SetNillableInvoiceDate(d.InvoiceDate).
		SetNillablePeriodStart(f.PeriodStart).
		SetNillablePeriodEnd(f.PeriodEnd).
		SetSupplierName(constants.SupplierUberEats).
		SetNillableTotalAmount(d.TotalAmount).
		SetExtractionConfidence(d.Confidence).
		SetNeedsReview(d.NeedsReview).
		SetRawText(d.RawText).
		SetSourceFilename(req.Filename).
		SetEmailSubject(req.Email.Subject).
		SetEmailSender(req.Email.Sender).
		SetEmailDate(req.Email.Received).
		SetNillableTaxDate(f.TaxDate).
		SetCustomerCompany(f.CustomerCompany).
		SetRestaurantName(f.RestaurantName).
		SetRestaurantAddress(f.RestaurantAddress).
		SetBusinessID(f.BusinessID).
		SetCustomerVatID(f.CustomerVATID).
		SetTaxNumber(f.TaxNumber).
		SetNillableTotalOrders(f.TotalOrders).
		SetNillableTotalOrderValue(f.TotalOrderValue).
		SetNillableGrossRevenueAfterDiscounts(f.GrossRevenueAfterDiscounts).
		SetNillableCommissionOwnDelivery(f.CommissionOwnDelivery).
		SetNillableCommissionPickup(f.CommissionPickup).
		SetNillableUberEatsFee(f.UberEatsFee).
		SetNillableVat19(f.VAT19).
		SetNillableCashCollected(f.CashCollected).
		SetNillableTotalPayout(f.TotalPayout).
		SetNillableNetAmount(f.NetAmount).
		SetNillableVatAmount(f.VATAmount).
		Save(ctx)
	if err != nil {
		return nil, r.mapCreateError(err, d)
	}
	return uberEatsToEntity(row), nil
}

// mapCreateError turns the unique-index violation on invoice_number into the
// sentinel the pipeline dedups on.
func (r *invoiceRepository) mapCreateError(err error, d *extract.Data) error {
	if ent.IsConstraintError(err) {
		return common.NewAppError("DUPLICATE_INVOICE", d.InvoiceNumber, common.ErrDuplicateInvoice)
	}
	r.logger.Error("invoices.create_failed", "platform", d.Platform, "invoice_number", d.InvoiceNumber, "error", err)
	return err
}

func (r *invoiceRepository) AttachNetting(ctx context.Context, invoiceNumber string, fields *extract.NettingFields, rawText string) error {
	upd := r.client.WoltInvoice.Update().
		Where(woltinvoice.InvoiceNumber(invoiceNumber)).
		SetNettingRawText(rawText)

	if fields != nil && !fields.Empty() {
		parsed := map[string]interface{}{}
		if fields.MerchantInvoiceNumber != "" {
			upd = upd.SetNettingMerchantInvoice(fields.MerchantInvoiceNumber)
			parsed["merchant_invoice_number"] = fields.MerchantInvoiceNumber
		}
		setAmount := func(set func(float64) *ent.WoltInvoiceUpdate, key string, v *float64) {
			if v != nil {
				upd = set(*v)
				parsed[key] = *v
			}
		}
		setAmount(upd.SetNettingMerchantNet, "merchant_net", fields.Merchant.Net)
		setAmount(upd.SetNettingMerchantVat, "merchant_vat", fields.Merchant.VAT)
		setAmount(upd.SetNettingMerchantGross, "merchant_gross", fields.Merchant.Gross)
		if fields.WoltInvoiceNumber != "" {
			upd = upd.SetNettingWoltInvoice(fields.WoltInvoiceNumber)
			parsed["wolt_invoice_number"] = fields.WoltInvoiceNumber
		}
		setAmount(upd.SetNettingWoltNet, "wolt_net", fields.Wolt.Net)
		setAmount(upd.SetNettingWoltVat, "wolt_vat", fields.Wolt.VAT)
		setAmount(upd.SetNettingWoltGross, "wolt_gross", fields.Wolt.Gross)
		setAmount(upd.SetNettingNetPayout, "net_payout", fields.NetPayout)
		upd = upd.SetNettingParsedJSON(parsed)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("invoices.netting.attach_failed", "invoice_number", invoiceNumber, "error", err)
		return err
	}
	if n == 0 {
		return common.NewAppError("NO_MATCHING_INVOICE", invoiceNumber, common.ErrNoMatchingInvoice)
	}
	return nil
}

func (r *invoiceRepository) ListInvoices(ctx context.Context, filter entity.InvoiceFilter) ([]*entity.Invoice, error) {
	wantPlatform := func(p constants.Platform) bool {
		return filter.Platform == "" || filter.Platform == constants.PlatformUnknown || filter.Platform == p
	}

	var result []*entity.Invoice

	if wantPlatform(constants.PlatformLieferando) {
		q := r.client.LieferandoInvoice.Query()
		if filter.From != nil {
			q = q.Where(lieferandoinvoice.InvoiceDateGTE(*filter.From))
		}
		if filter.To != nil {
			q = q.Where(lieferandoinvoice.InvoiceDateLTE(*filter.To))
		}
		if filter.NeedsReview != nil {
			q = q.Where(lieferandoinvoice.NeedsReview(*filter.NeedsReview))
		}
		rows, err := q.All(ctx)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			result = append(result, lieferandoToEntity(row))
		}
	}

	if wantPlatform(constants.PlatformWolt) {
		q := r.client.WoltInvoice.Query()
		if filter.From != nil {
			q = q.Where(woltinvoice.InvoiceDateGTE(*filter.From))
		}
		if filter.To != nil {
			q = q.Where(woltinvoice.InvoiceDateLTE(*filter.To))
		}
		if filter.NeedsReview != nil {
			q = q.Where(woltinvoice.NeedsReview(*filter.NeedsReview))
		}
		rows, err := q.All(ctx)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			result = append(result, woltToEntity(row))
		}
	}

	if wantPlatform(constants.PlatformUberEats) {
		q := r.client.UberEatsInvoice.Query()
		if filter.From != nil {
			q = q.Where(ubereatsinvoice.InvoiceDateGTE(*filter.From))
		}
		if filter.To != nil {
			q = q.Where(ubereatsinvoice.InvoiceDateLTE(*filter.To))
		}
		if filter.NeedsReview != nil {
			q = q.Where(ubereatsinvoice.NeedsReview(*filter.NeedsReview))
		}
		rows, err := q.All(ctx)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			result = append(result, uberEatsToEntity(row))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return invoiceSortKey(result[i]).After(invoiceSortKey(result[j]))
	})
	return result, nil
}

func invoiceSortKey(inv *entity.Invoice) time.Time {
	if inv.InvoiceDate != nil {
		return *inv.InvoiceDate
	}
	return inv.CreatedAt
}

func lieferandoToEntity(row *ent.LieferandoInvoice) *entity.Invoice {
	return &entity.Invoice{
		ID:            row.ID,
		Platform:      constants.PlatformLieferando,
		InvoiceNumber: row.InvoiceNumber,
		InvoiceDate:   row.InvoiceDate,
		PeriodStart:   row.PeriodStart,
		PeriodEnd:     row.PeriodEnd,
		SupplierName:  row.SupplierName,
		TotalAmount:   row.TotalAmount,
		Status:        constants.InvoiceStatus(row.Status),
		Confidence:    row.ExtractionConfidence,
		NeedsReview:   row.NeedsReview,
		EmailSubject:  row.EmailSubject,
		EmailSender:   row.EmailSender,
		EmailDate:     row.EmailDate,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func woltToEntity(row *ent.WoltInvoice) *entity.Invoice {
	return &entity.Invoice{
		ID:            row.ID,
		Platform:      constants.PlatformWolt,
		InvoiceNumber: row.InvoiceNumber,
		InvoiceDate:   row.InvoiceDate,
		PeriodStart:   row.PeriodStart,
		PeriodEnd:     row.PeriodEnd,
		SupplierName:  row.SupplierName,
		TotalAmount:   row.TotalAmount,
		Status:        constants.InvoiceStatus(row.Status),
		Confidence:    row.ExtractionConfidence,
		NeedsReview:   row.NeedsReview,
		EmailSubject:  row.EmailSubject,
		EmailSender:   row.EmailSender,
		EmailDate:     row.EmailDate,
		HasNetting:    row.NettingRawText != "",
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func uberEatsToEntity(row *ent.UberEatsInvoice) *entity.Invoice {
	return &entity.Invoice{
		ID:            row.ID,
		Platform:      constants.PlatformUberEats,
		InvoiceNumber: row.InvoiceNumber,
		InvoiceDate:   row.InvoiceDate,
		PeriodStart:   row.PeriodStart,
		PeriodEnd:     row.PeriodEnd,
		SupplierName:  row.SupplierName,
		TotalAmount:   row.TotalAmount,
		Status:        constants.InvoiceStatus(row.Status),
		Confidence:    row.ExtractionConfidence,
		NeedsReview:   row.NeedsReview,
		EmailSubject:  row.EmailSubject,
		EmailSender:   row.EmailSender,
		EmailDate:     row.EmailDate,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
