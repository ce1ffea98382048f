// Package pdf genera el comprobante PDF del detalle de un pedido para el
// panel de administración (usuario, dirección de entrega, fechas y montos).
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	appOrders "github.com/tu-usuario/catalogo-admin/internal/application/orders"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// printer formatea montos con separadores de miles en español.
var printer = message.NewPrinter(language.Spanish)

var _ appOrders.PDFGenerator = (*MarotoOrderPDFGenerator)(nil)

// MarotoOrderPDFGenerator implementa orders.PDFGenerator usando Maroto v2.
type MarotoOrderPDFGenerator struct{}

// NewMarotoOrderPDFGenerator construye el generador.
func NewMarotoOrderPDFGenerator() *MarotoOrderPDFGenerator { return &MarotoOrderPDFGenerator{} }

// GenerateOrderPDF genera el PDF del detalle y devuelve sus bytes.
func (g *MarotoOrderPDFGenerator) GenerateOrderPDF(_ context.Context, order *dto.OrderDetailDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Detalle de Pedido", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order))
	m.AddRows(addressRow(&order.DeliveryAddress))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(datesRow(order))
	m.AddRows(totalsRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título + id del pedido (izq), estado y fecha (der).
func headerRow(order *dto.OrderDetailDTO) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("DETALLE DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Pedido: "+order.ID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(order.Status, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
			}),
			text.New("Fecha: "+order.OrderDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos permitidos del usuario comprador.
func customerRow(order *dto.OrderDetailDTO) core.Row {
	u := order.User
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(u.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("Email: %s   |   Usuario: %s   |   Tel: %s",
				u.Email, u.Username, nonEmpty(u.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// addressRow: dirección de entrega embebida.
func addressRow(a *dto.AddressDTO) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DIRECCIÓN DE ENTREGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s %s — %s", a.FirstName, a.LastName, a.StreetAddress),
				props.Text{Size: 9, Top: 6}),
			text.New(fmt.Sprintf("%s, %s, %s %s   |   Tel: %s",
				a.City, a.State, a.Country, a.Pincode, nonEmpty(a.Mobile, "—"),
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// datesRow: fechas de envío y entrega si existen.
func datesRow(order *dto.OrderDetailDTO) core.Row {
	shipping := "—"
	if order.ShippingDate != nil {
		shipping = order.ShippingDate.Format("02/01/2006")
	}
	delivery := "—"
	if order.DeliveryDate != nil {
		delivery = order.DeliveryDate.Format("02/01/2006")
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Envío: %s   |   Entrega: %s   |   Pago: %s",
				shipping, delivery, nonEmpty(order.Payment, "—"),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// totalsRow: monto total del pedido.
func totalsRow(order *dto.OrderDetailDTO) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("TOTAL: "+formatAmount(order.Amount), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3, Color: colorPrimary,
			}),
		),
	)
}

func formatAmount(d decimal.Decimal) string {
	return printer.Sprintf("$ %.2f", d.InexactFloat64())
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
