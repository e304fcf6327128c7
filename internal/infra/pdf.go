package infra

import (
	"bytes"
	"fmt"

	"github.com/FernandoPZ/POS-AuraCreativa/internal/model"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// TicketGenerator renders the 80mm sale receipt.
type TicketGenerator struct{}

func NewTicketGenerator() *TicketGenerator { return &TicketGenerator{} }

// Generar builds the receipt PDF for a committed sale. When the delivery
// point has a maps link, it is embedded as a QR code at the bottom.
func (g *TicketGenerator) Generar(venta *model.Venta, cfg *model.Configuracion) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "mm",
		Size:    fpdf.SizeType{Wd: 80, Ht: 250},
	})
	pdf.SetMargins(5, 5, 5)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Encabezado de la tienda
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(70, 6, tr(cfg.NombreTienda), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	if cfg.Direccion != "" {
		pdf.CellFormat(70, 4, tr(cfg.Direccion), "", 1, "C", false, 0, "")
	}
	if cfg.Telefono != "" {
		pdf.CellFormat(70, 4, tr("Tel: "+cfg.Telefono), "", 1, "C", false, 0, "")
	}
	if cfg.RedSocial != "" {
		pdf.CellFormat(70, 4, tr(cfg.RedSocial), "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)

	// Datos de la venta
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(70, 5, fmt.Sprintf("TICKET #%06d", venta.Folio), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(70, 4, venta.CreatedAt.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.CellFormat(70, 4, tr("Cliente: "+venta.ClienteNombre), "", 1, "L", false, 0, "")
	if venta.Usuario != nil {
		pdf.CellFormat(70, 4, tr("Atendió: "+venta.Usuario.Nombre), "", 1, "L", false, 0, "")
	}
	pdf.Ln(1)
	g.separador(pdf)

	// Líneas
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(34, 4, "Producto", "", 0, "L", false, 0, "")
	pdf.CellFormat(8, 4, "Cant", "", 0, "R", false, 0, "")
	pdf.CellFormat(14, 4, "Precio", "", 0, "R", false, 0, "")
	pdf.CellFormat(14, 4, "Importe", "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	for _, d := range venta.Detalles {
		nombre := ""
		if d.Combo != nil {
			nombre = d.Combo.Nombre
		} else if d.Articulo != nil {
			nombre = d.Articulo.NomArticulo
		}
		if len(nombre) > 20 {
			nombre = nombre[:20]
		}
		pdf.CellFormat(34, 4, tr(nombre), "", 0, "L", false, 0, "")
		pdf.CellFormat(8, 4, fmt.Sprintf("%d", d.Cantidad), "", 0, "R", false, 0, "")
		pdf.CellFormat(14, 4, "$"+d.PrecioUnitario.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(14, 4, "$"+d.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}
	g.separador(pdf)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(70, 6, "TOTAL: $"+venta.Total.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	// Punto de entrega con QR al mapa
	if venta.PuntoEntrega != nil {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(70, 4, tr("Entrega: "+venta.PuntoEntrega.NombrePunto), "", 1, "C", false, 0, "")
		if venta.PuntoEntrega.LinkGoogleMaps != nil && *venta.PuntoEntrega.LinkGoogleMaps != "" {
			png, err := qrcode.Encode(*venta.PuntoEntrega.LinkGoogleMaps, qrcode.Medium, 256)
			if err == nil {
				opts := fpdf.ImageOptions{ImageType: "PNG"}
				pdf.RegisterImageOptionsReader("qr-mapa", opts, bytes.NewReader(png))
				x := (80 - 25) / 2.0
				pdf.ImageOptions("qr-mapa", x, pdf.GetY()+1, 25, 25, false, opts, 0, "")
				pdf.SetY(pdf.GetY() + 27)
				pdf.SetFont("Helvetica", "", 7)
				pdf.CellFormat(70, 3, tr("Escanea para llegar al punto de entrega"), "", 1, "C", false, 0, "")
			}
		}
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(70, 4, tr(cfg.MensajeTicket), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *TicketGenerator) separador(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(70, 3, "------------------------------------------------", "", 1, "C", false, 0, "")
}
