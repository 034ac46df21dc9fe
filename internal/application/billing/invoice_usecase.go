package billing

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/yonaiky/ResidentManagement-sub000/internal/application/dto"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/entity"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/invoicing"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/repository"
	"github.com/yonaiky/ResidentManagement-sub000/pkg/dgi"
)

// InvoiceConfig parámetros fijos del comprobante.
type InvoiceConfig struct {
	TaxRate  decimal.Decimal // porcentaje; cero usa invoicing.DefaultTaxRate
	Currency string
	// DefaultLegal se imprime cuando no hay configuración fiscal activa.
	DefaultLegal invoicing.LegalInfo
}

// InvoiceUseCase emite facturas de cuotas y regenera el PDF de facturas guardadas.
type InvoiceUseCase struct {
	periods   *PeriodUseCase
	residents repository.ResidentRepository
	invoices  repository.InvoiceRepository
	settings  repository.SettingsRepository
	txRunner  InvoiceTxRunner
	generator InvoicePDFGenerator
	ids       *invoicing.IdentifierGenerator
	clock     invoicing.Clock
	cfg       InvoiceConfig
	log       zerolog.Logger
}

// NewInvoiceUseCase construye el caso de uso inyectando todas sus dependencias.
func NewInvoiceUseCase(
	periods *PeriodUseCase,
	residents repository.ResidentRepository,
	invoices repository.InvoiceRepository,
	settings repository.SettingsRepository,
	txRunner InvoiceTxRunner,
	generator InvoicePDFGenerator,
	ids *invoicing.IdentifierGenerator,
	clock invoicing.Clock,
	cfg InvoiceConfig,
	log zerolog.Logger,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		periods:   periods,
		residents: residents,
		invoices:  invoices,
		settings:  settings,
		txRunner:  txRunner,
		generator: generator,
		ids:       ids,
		clock:     clock,
		cfg:       cfg,
		log:       log,
	}
}

// IssueInvoice emite la factura de los períodos pedidos (o de todos los vencidos si req.Periods
// está vacío), genera el PDF y guarda cabecera, líneas y, si se pide, los pagos, en una sola transacción.
//
// Retorna:
//   - domain.ErrNotFound                si el residente no existe.
//   - domain.ErrConflict                si falta la empresa, la resolución venció o un período ya está pagado.
//   - domain.ErrInvalidInput            si un período no está en la ventana o se repite.
//   - invoicing.ErrInvalidInvoiceInput  si no queda ningún período por facturar.
//   - invoicing.ErrSequenceExhausted    si se agotó el rango de NCF autorizado.
func (uc *InvoiceUseCase) IssueInvoice(
	ctx context.Context,
	residentID, userID string,
	req dto.IssueInvoiceRequest,
) (*dto.InvoiceResponse, *Document, error) {
	// ── 1. Emisor y configuración fiscal ──────────────────────────────────────
	company, err := uc.settings.GetCompany(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("factura: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, nil, fmt.Errorf("%w: configure los datos de la empresa antes de facturar", domain.ErrConflict)
	}
	fiscal, err := uc.settings.GetFiscal(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("factura: obtener configuración fiscal: %w", err)
	}
	now := uc.clock.Now()
	useFiscal := fiscal != nil && fiscal.IsActive
	if useFiscal && resolutionExpired(fiscal.ValidUntil, now) {
		return nil, nil, fmt.Errorf("%w: la resolución %s venció el %s",
			domain.ErrConflict, fiscal.ResolutionNumber, fiscal.ValidUntil.Format("02/01/2006"))
	}
	if !useFiscal {
		uc.log.Warn().Str("resident_id", residentID).
			Msg("sin configuración fiscal activa: el NCF se genera con secuencia aleatoria")
	}

	// ── 2. Períodos ───────────────────────────────────────────────────────────
	resident, window, err := uc.periods.Window(ctx, residentID)
	if err != nil {
		return nil, nil, err
	}
	selected, err := selectPeriods(window, req.Periods)
	if err != nil {
		return nil, nil, err
	}

	// ── 3. Identificadores, cálculo, PDF y persistencia ───────────────────────
	var (
		record *entity.Invoice
		lines  []*entity.InvoiceLine
		doc    *Document
	)
	issue := func(
		invoiceRepo repository.InvoiceRepository,
		paymentRepo repository.PaymentRepository,
		sequenceRepo repository.FiscalSequenceRepository,
	) error {
		number, err := uc.ids.InvoiceNumber(ctx)
		if err != nil {
			return fmt.Errorf("número de factura: %w", err)
		}
		var ncf string
		if useFiscal {
			ncf, err = uc.ids.NCFWith(ctx, invoicing.SequenceFunc(sequenceRepo.NextSequence), fiscal.NCFSeries)
		} else {
			ncf, err = uc.ids.NCF(ctx)
		}
		if err != nil {
			return fmt.Errorf("NCF: %w", err)
		}

		inv, err := invoicing.BuildInvoice(invoicing.InvoiceInput{
			Company:       toCompanyProfile(company),
			Recipient:     toRecipientProfile(resident),
			Periods:       selected,
			InvoiceNumber: number,
			NCF:           ncf,
			IssueDate:     now,
			TaxRate:       uc.cfg.TaxRate,
			Currency:      uc.cfg.Currency,
			Legal:         uc.legalInfo(fiscal),
		})
		if err != nil {
			return err
		}

		pdf, err := uc.generator.GenerateInvoicePDF(ctx, inv)
		if err != nil {
			return fmt.Errorf("pdf: generación fallida: %w", err)
		}
		doc = NewDocument(invoiceFilename(inv.InvoiceNumber), pdf)

		record, lines = newInvoiceRecord(inv, resident.ID, userID, now)
		if err := invoiceRepo.Create(ctx, record); err != nil {
			return err
		}
		for _, l := range lines {
			if err := invoiceRepo.CreateLine(ctx, l); err != nil {
				return err
			}
		}
		if !req.RegisterPayments {
			return nil
		}
		for _, l := range inv.Lines {
			paidAt := now
			if err := paymentRepo.Settle(ctx, &entity.Payment{
				ID:         uuid.New().String(),
				ResidentID: resident.ID,
				Month:      l.Month,
				Year:       l.Year,
				Amount:     l.UnitPrice,
				Status:     entity.PaymentStatusPaid,
				InvoiceID:  record.ID,
				PaidAt:     &paidAt,
				CreatedAt:  now,
				UpdatedAt:  now,
			}); err != nil {
				return err
			}
		}
		return nil
	}
	err = uc.txRunner.RunInvoice(ctx, issue)
	if err != nil && !useFiscal && errors.Is(err, domain.ErrDuplicate) {
		// El NCF aleatorio puede repetirse; un segundo intento saca otro número.
		uc.log.Warn().Err(err).Str("resident_id", residentID).Msg("NCF aleatorio repetido, reintentando")
		err = uc.txRunner.RunInvoice(ctx, issue)
	}
	if err != nil {
		return nil, nil, err
	}

	uc.log.Info().
		Str("invoice_id", record.ID).
		Str("invoice_number", record.InvoiceNumber).
		Str("ncf", record.NCF).
		Int("periods", len(lines)).
		Str("total", record.Total.StringFixed(2)).
		Msg("factura emitida")

	resp := toInvoiceResponse(record, lines, resident.FullName())
	resp.Filename = doc.Filename
	return resp, doc, nil
}

// GetInvoice devuelve una factura guardada con sus líneas.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, invoiceID string) (*dto.InvoiceResponse, error) {
	inv, lines, resident, err := uc.loadInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, lines, resident.FullName()), nil
}

// ListByResident devuelve las facturas de un residente, sin líneas.
func (uc *InvoiceUseCase) ListByResident(ctx context.Context, residentID string) ([]dto.InvoiceResponse, error) {
	r, err := loadResident(ctx, uc.residents, residentID)
	if err != nil {
		return nil, err
	}
	list, err := uc.invoices.ListByResident(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, *toInvoiceResponse(inv, nil, r.FullName()))
	}
	return out, nil
}

// RenderStoredInvoice regenera el PDF de una factura guardada a partir de los montos persistidos.
// El emisor se toma de la configuración de empresa vigente.
func (uc *InvoiceUseCase) RenderStoredInvoice(ctx context.Context, invoiceID string) (*Document, error) {
	stored, lines, resident, err := uc.loadInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	company, err := uc.settings.GetCompany(ctx)
	if err != nil {
		return nil, fmt.Errorf("pdf: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, fmt.Errorf("%w: no hay datos de empresa configurados", domain.ErrConflict)
	}

	inv := &invoicing.Invoice{
		Company:       toCompanyProfile(company),
		Recipient:     toRecipientProfile(resident),
		InvoiceNumber: stored.InvoiceNumber,
		NCF:           stored.NCF,
		IssueDate:     stored.IssueDate,
		DueDate:       stored.DueDate,
		TaxRate:       stored.TaxRate,
		Lines:         make([]invoicing.InvoiceLine, 0, len(lines)),
		Subtotal:      stored.Subtotal,
		Tax:           stored.TaxTotal,
		Discount:      stored.Discount,
		Total:         stored.Total,
		AmountInWords: stored.AmountInWords,
		Currency:      uc.cfg.Currency,
		Legal: invoicing.LegalInfo{
			ResolutionNumber: stored.ResolutionNumber,
			VerificationURL:  uc.cfg.DefaultLegal.VerificationURL,
		},
	}
	if inv.TaxRate.IsZero() {
		inv.TaxRate = uc.taxRate()
	}
	if stored.ResolutionValidUntil != nil {
		inv.Legal.ValidUntil = *stored.ResolutionValidUntil
	}
	for _, l := range lines {
		inv.Lines = append(inv.Lines, invoicing.InvoiceLine{
			Index:       l.Position,
			Month:       l.Month,
			Year:        l.Year,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal,
			Tax:         l.Tax,
			Total:       l.Total,
		})
	}

	pdf, err := uc.generator.GenerateInvoicePDF(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return NewDocument(invoiceFilename(inv.InvoiceNumber), pdf), nil
}

func (uc *InvoiceUseCase) loadInvoice(ctx context.Context, invoiceID string) (*entity.Invoice, []*entity.InvoiceLine, *entity.Resident, error) {
	if invoiceID == "" {
		return nil, nil, nil, domain.ErrInvalidInput
	}
	inv, err := uc.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("obtener factura: %w", err)
	}
	if inv == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	lines, err := uc.invoices.GetLines(ctx, inv.ID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("obtener líneas: %w", err)
	}
	resident, err := loadResident(ctx, uc.residents, inv.ResidentID)
	if err != nil {
		return nil, nil, nil, err
	}
	return inv, lines, resident, nil
}

// legalInfo usa la resolución de la configuración fiscal activa o, si no hay, la de config.
func (uc *InvoiceUseCase) legalInfo(fiscal *entity.FiscalSettings) invoicing.LegalInfo {
	legal := uc.cfg.DefaultLegal
	if fiscal != nil && fiscal.IsActive {
		legal.ResolutionNumber = fiscal.ResolutionNumber
		legal.ValidUntil = fiscal.ValidUntil
	}
	return legal
}

func (uc *InvoiceUseCase) taxRate() decimal.Decimal {
	if uc.cfg.TaxRate.IsZero() {
		return invoicing.DefaultTaxRate
	}
	return uc.cfg.TaxRate
}

// selectPeriods valida los períodos pedidos contra la ventana. Sin pedido, usa la preselección.
func selectPeriods(w invoicing.PeriodWindow, refs []dto.PeriodRef) ([]invoicing.BillingPeriod, error) {
	if len(refs) == 0 {
		return w.Selected, nil
	}
	seen := make(map[invoicing.PeriodKey]bool, len(refs))
	out := make([]invoicing.BillingPeriod, 0, len(refs))
	for _, ref := range refs {
		key := invoicing.PeriodKey{Month: ref.Month, Year: ref.Year}
		label := invoicing.PeriodLabel(ref.Month, ref.Year)
		if seen[key] {
			return nil, fmt.Errorf("%w: período repetido %s", domain.ErrInvalidInput, label)
		}
		seen[key] = true
		p, ok := w.Find(key)
		if !ok {
			return nil, fmt.Errorf("%w: el período %s está fuera de la ventana facturable", domain.ErrInvalidInput, label)
		}
		if p.Status == invoicing.PeriodPaid {
			return nil, fmt.Errorf("%w: el período %s ya está pagado", domain.ErrConflict, label)
		}
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b invoicing.BillingPeriod) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return a.Month - b.Month
	})
	return out, nil
}

func newInvoiceRecord(inv *invoicing.Invoice, residentID, userID string, now time.Time) (*entity.Invoice, []*entity.InvoiceLine) {
	record := &entity.Invoice{
		ID:               uuid.New().String(),
		ResidentID:       residentID,
		InvoiceNumber:    inv.InvoiceNumber,
		NCF:              inv.NCF,
		IssueDate:        inv.IssueDate,
		DueDate:          inv.DueDate,
		Subtotal:         inv.Subtotal,
		TaxTotal:         inv.Tax,
		Discount:         inv.Discount,
		Total:            inv.Total,
		AmountInWords:    inv.AmountInWords,
		TaxRate:          inv.TaxRate,
		ResolutionNumber: inv.Legal.ResolutionNumber,
		CreatedBy:        userID,
		CreatedAt:        now,
	}
	if !inv.Legal.ValidUntil.IsZero() {
		validUntil := inv.Legal.ValidUntil
		record.ResolutionValidUntil = &validUntil
	}
	lines := make([]*entity.InvoiceLine, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, &entity.InvoiceLine{
			ID:          uuid.New().String(),
			InvoiceID:   record.ID,
			Position:    l.Index,
			Month:       l.Month,
			Year:        l.Year,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal,
			Tax:         l.Tax,
			Total:       l.Total,
		})
	}
	return record, lines
}

func toCompanyProfile(c *entity.CompanySettings) invoicing.CompanyProfile {
	return invoicing.CompanyProfile{
		Name:    c.Name,
		TaxID:   dgi.FormatRNC(c.TaxID),
		Address: c.Address,
		Phone:   c.Phone,
		Email:   c.Email,
		Website: c.Website,
	}
}

func toRecipientProfile(r *entity.Resident) invoicing.RecipientProfile {
	return invoicing.RecipientProfile{
		ID:                 r.ID,
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		NationalID:         r.NationalID,
		RegistrationNumber: r.RegistrationNumber,
		Phone:              r.Phone,
		Address:            r.Address,
	}
}

func toInvoiceResponse(inv *entity.Invoice, lines []*entity.InvoiceLine, residentName string) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:            inv.ID,
		ResidentID:    inv.ResidentID,
		ResidentName:  residentName,
		InvoiceNumber: inv.InvoiceNumber,
		NCF:           inv.NCF,
		IssueDate:     inv.IssueDate.Format("2006-01-02"),
		DueDate:       inv.DueDate.Format("2006-01-02"),
		Subtotal:      inv.Subtotal,
		Tax:           inv.TaxTotal,
		Discount:      inv.Discount,
		Total:         inv.Total,
		AmountInWords: inv.AmountInWords,
		Lines:         make([]dto.InvoiceLineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.InvoiceLineResponse{
			Index:       l.Position,
			Month:       l.Month,
			Year:        l.Year,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal,
			Tax:         l.Tax,
			Total:       l.Total,
		})
	}
	return resp
}

// resolutionExpired compara fechas de calendario: validUntil es un DATE (llega a medianoche UTC)
// y sigue vigente durante todo ese día en la zona de now.
func resolutionExpired(validUntil, now time.Time) bool {
	if validUntil.IsZero() {
		return false
	}
	y, m, d := validUntil.Date()
	lastDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	ny, nm, nd := now.Date()
	return lastDay.Before(time.Date(ny, nm, nd, 0, 0, 0, 0, now.Location()))
}
