// Package pdf implementa la representación impresa de la factura con valor
// fiscal (DGII, República Dominicana) sobre Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  [LOGO]  RAZÓN SOCIAL / RNC / Dirección / Tel / Email        │
//	│  ─────────────────────────────────────────────────────────  │
//	│                              ┌ Factura / NCF / Fechas ┐      │
//	│  CLIENTE: Nombre / Cédula / Dirección / Tel / Matrícula      │
//	│  ██ # | Descripción | Cant. | Precio | Subtotal | ITBIS | Total │
//	│     filas con cuadrícula                                     │
//	│                              ┌ Subtotal/ITBIS/Desc/TOTAL ┐   │
//	│  Son: ... pesos dominicanos                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Pie legal (condiciones, mora, resolución)     [QR]          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	appbilling "github.com/yonaiky/ResidentManagement-sub000/internal/application/billing"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/invoicing"
)

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 82, Blue: 147}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGrid    = &props.Color{Red: 190, Green: 190, Blue: 190}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var (
	boxStyle = &props.Cell{BorderType: border.Full, BorderColor: colorPrimary, BorderThickness: 0.3}
	gridCell = &props.Cell{BorderType: border.Full, BorderColor: colorGrid, BorderThickness: 0.2}
	bandCell = &props.Cell{BackgroundColor: colorPrimary, BorderType: border.Full, BorderColor: colorPrimary}
)

var upper = cases.Upper(language.Spanish)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	log zerolog.Logger
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(log zerolog.Logger) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{log: log}
}

// GenerateInvoicePDF maqueta la factura en una página A4 y devuelve los bytes del PDF.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(ctx context.Context, inv *invoicing.Invoice) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+inv.InvoiceNumber, true).
		WithSubject("NCF "+inv.NCF, true).
		WithAuthor(inv.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(issuerRow(inv.Company))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.6}))
	m.AddRows(fiscalBoxRow(inv))
	m.AddRows(row.New(3))
	m.AddRows(recipientRows(inv.Recipient)...)
	m.AddRows(row.New(3))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(inv.Lines)...)
	m.AddRows(row.New(3))

	m.AddRows(totalsRows(inv)...)
	m.AddRows(amountInWordsRow(inv.AmountInWords))

	m.AddRows(line.NewRow(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(legalFooterRow(inv))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	out := doc.GetBytes()
	g.log.Debug().
		Str("invoice_number", inv.InvoiceNumber).
		Int("lines", len(inv.Lines)).
		Int("bytes", len(out)).
		Msg("pdf generado")
	return out, nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// issuerRow: marca del logo (izq) y datos del emisor.
func issuerRow(c invoicing.CompanyProfile) core.Row {
	contact := "Tel: " + nonEmpty(c.Phone, "—")
	if c.Email != "" {
		contact += "   |   " + c.Email
	}
	return row.New(26).Add(
		col.New(2).Add(
			text.New("LOGO", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Center, Color: colorGrid, Top: 9,
			}),
		).WithStyle(&props.Cell{BorderType: border.Full, BorderColor: colorGrid, BorderThickness: 0.3}),
		col.New(10).Add(
			text.New(upper.String(c.Name), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1, Left: 4,
			}),
			text.New("RNC: "+c.TaxID, props.Text{Style: fontstyle.Bold, Size: 9, Top: 9, Left: 4}),
			text.New(nonEmpty(c.Address, "—"), props.Text{Size: 8, Top: 14, Left: 4, Color: colorGray}),
			text.New(contact, props.Text{Size: 8, Top: 19, Left: 4, Color: colorGray}),
		),
	)
}

// fiscalBoxRow: recuadro con número de factura, NCF y fechas, alineado a la derecha.
func fiscalBoxRow(inv *invoicing.Invoice) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Top: top, Left: 2})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 8, Top: top, Align: align.Right, Right: 2})
	}
	return row.New(28).Add(
		col.New(6).Add(
			text.New("FACTURA DE CRÉDITO FISCAL", props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 10,
			}),
		),
		col.New(6).Add(
			label("Factura No.:", 2), value(inv.InvoiceNumber, 2),
			label("NCF:", 8), value(inv.NCF, 8),
			label("Fecha de emisión:", 14), value(inv.IssueDate.Format("02/01/2006"), 14),
			label("Fecha de vencimiento:", 20), value(inv.DueDate.Format("02/01/2006"), 20),
		).WithStyle(boxStyle),
	)
}

// recipientRows: datos del cliente.
func recipientRows(r invoicing.RecipientProfile) []core.Row {
	field := func(label, value string) core.Col {
		return col.New(6).Add(text.New(label+": "+nonEmpty(value, "—"), props.Text{Size: 8, Top: 1}))
	}
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("DATOS DEL CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New(r.FullName(), props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
		)),
		row.New(5).Add(field("Cédula", r.NationalID), field("Matrícula", r.RegistrationNumber)),
		row.New(5).Add(field("Dirección", r.Address), field("Teléfono", r.Phone)),
	}
}

var tableColumns = []struct {
	label string
	size  int
	align align.Type
}{
	{"#", 1, align.Center},
	{"Descripción", 4, align.Left},
	{"Cant.", 1, align.Center},
	{"Precio", 2, align.Right},
	{"Subtotal", 1, align.Right},
	{"ITBIS", 1, align.Right},
	{"Total", 2, align.Right},
}

// tableHeaderRow: cabecera de la tabla con banda de color.
func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(tableColumns))
	for _, c := range tableColumns {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})).WithStyle(bandCell))
	}
	return row.New(8).Add(cols...)
}

// tableDetailRows: una fila por período, con cuadrícula.
func tableDetailRows(lines []invoicing.InvoiceLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		values := []string{
			fmt.Sprintf("%d", l.Index),
			l.Description,
			l.Quantity.StringFixed(0),
			invoicing.FormatMoney(l.UnitPrice),
			invoicing.FormatMoney(l.Subtotal),
			invoicing.FormatMoney(l.Tax),
			invoicing.FormatMoney(l.Total),
		}
		cols := make([]core.Col, 0, len(values))
		for i, v := range values {
			c := tableColumns[i]
			cols = append(cols, col.New(c.size).Add(text.New(v, props.Text{
				Size: 7.5, Align: c.align, Top: 1.5, Left: 1, Right: 1,
			})).WithStyle(gridCell))
		}
		result = append(result, row.New(7).Add(cols...))
	}
	return result
}

// totalsRows: recuadro de totales alineado a la derecha; la última fila en negrita.
func totalsRows(inv *invoicing.Invoice) []core.Row {
	entries := []struct {
		label string
		value string
		bold  bool
	}{
		{"Subtotal", invoicing.FormatMoney(inv.Subtotal), false},
		{"ITBIS (" + inv.TaxRate.String() + "%)", invoicing.FormatMoney(inv.Tax), false},
		{"Descuento", invoicing.FormatMoney(inv.Discount), false},
		{"TOTAL", invoicing.FormatMoney(inv.Total), true},
	}
	rows := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		style := fontstyle.Normal
		color := &props.Color{}
		if e.bold {
			style = fontstyle.Bold
			color = colorPrimary
		}
		rows = append(rows, row.New(6).Add(
			col.New(7),
			col.New(3).Add(text.New(e.label+":", props.Text{
				Style: style, Size: 9, Top: 1, Left: 2, Color: color,
			})).WithStyle(boxStyle),
			col.New(2).Add(text.New(e.value, props.Text{
				Style: style, Size: 9, Top: 1, Align: align.Right, Right: 2, Color: color,
			})).WithStyle(boxStyle),
		))
	}
	return rows
}

// amountInWordsRow: total en letras debajo del recuadro.
func amountInWordsRow(words string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(words, props.Text{Style: fontstyle.BoldItalic, Size: 8.5, Top: 3}),
	))
}

// legalFooterRow: párrafos legales (izq) y QR de verificación o su marca (der).
func legalFooterRow(inv *invoicing.Invoice) core.Row {
	legal := col.New(9)
	top := 1.0
	for _, p := range inv.LegalFooter() {
		legal.Add(text.New(p, props.Text{Size: 7, Top: top, Color: colorGray}))
		top += 7
	}

	qr := col.New(3)
	if data := inv.VerificationData(); data != "" {
		qr.Add(code.NewQr(data, props.Rect{Percent: 90, Center: true}))
	} else {
		qr.Add(text.New("QR", props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 11, Color: colorGrid,
		})).WithStyle(&props.Cell{BorderType: border.Full, BorderColor: colorGrid, BorderThickness: 0.3})
	}
	return row.New(32).Add(legal, qr)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
