package leads

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/encuotas/storefront-backend/pkg/money"
	"github.com/shopspring/decimal"
)

// timestampLayout matches the es-PE short date-time rendering used on the
// storefront (day first).
const timestampLayout = "2/1/2006, 15:04:05"

// Contact is the customer block rendered into the message.
type Contact struct {
	FirstName string
	LastName  string
	DNI       string
	Email     string
}

// MessageProduct carries the per-product fields the message template needs.
type MessageProduct struct {
	Name           string
	Price          decimal.Decimal
	MonthlyPayment decimal.Decimal
	Months         int
	Brand          string
	Seller         string
}

// ComposeMessage renders the Spanish WhatsApp inquiry. Single-product
// submissions get the detailed card; multi-product ones get a numbered list
// with a running total.
func ComposeMessage(products []MessageProduct, contact Contact, source string, submittedAt time.Time) string {
	var b strings.Builder

	b.WriteString("¡Hola! Estoy interesado en obtener más información:\n\n")

	b.WriteString("👤 *Datos del cliente:*\n")
	fmt.Fprintf(&b, "• Nombre: %s %s\n", contact.FirstName, contact.LastName)
	fmt.Fprintf(&b, "• DNI: %s\n", contact.DNI)
	fmt.Fprintf(&b, "• Email: %s\n\n", contact.Email)

	if len(products) == 1 {
		p := products[0]
		b.WriteString("📱 *Producto de interés:*\n")
		fmt.Fprintf(&b, "• %s\n", p.Name)
		fmt.Fprintf(&b, "• Precio: %s\n", money.FormatPEN(p.Price))
		fmt.Fprintf(&b, "• Cuota mensual: %s (%d meses)\n", money.FormatPEN(p.MonthlyPayment), p.Months)
		fmt.Fprintf(&b, "• Marca: %s\n", p.Brand)
		fmt.Fprintf(&b, "• Vendedor: %s\n\n", p.Seller)
	} else {
		fmt.Fprintf(&b, "🛒 *Productos de interés (%d productos):*\n\n", len(products))
		total := decimal.Zero
		for i, p := range products {
			fmt.Fprintf(&b, "%d. %s\n", i+1, p.Name)
			fmt.Fprintf(&b, "   • Precio: %s\n", money.FormatPEN(p.Price))
			fmt.Fprintf(&b, "   • Cuota: %s (%d meses)\n", money.FormatPEN(p.MonthlyPayment), p.Months)
			fmt.Fprintf(&b, "   • Marca: %s\n\n", p.Brand)
			total = total.Add(p.Price)
		}
		fmt.Fprintf(&b, "💰 *Total aproximado: %s*\n\n", money.FormatPEN(total))
	}

	subject := "este producto"
	if len(products) != 1 {
		subject = "estos productos"
	}
	b.WriteString("🙋‍♂️ *Solicitud:*\n")
	fmt.Fprintf(&b, "Me gustaría recibir asesoría personalizada sobre %s, conocer más detalles sobre las cuotas, disponibilidad y proceso de compra.\n\n", subject)
	fmt.Fprintf(&b, "📊 Origen: %s\n", sourceLabel(source))
	fmt.Fprintf(&b, "⏰ Fecha: %s\n\n", submittedAt.Format(timestampLayout))
	b.WriteString("¡Gracias por su atención! 😊")

	return b.String()
}

func sourceLabel(source string) string {
	if source == SourceCart {
		return "Carrito de compras"
	}
	return "Página de producto"
}

// HandoffURL builds the WhatsApp link carrying the pre-filled message. host
// is the link host (normally wa.me) and the number must already be
// digits-only (no leading plus). Spaces are escaped as %20 since wa.me does
// not decode plus signs inside the text parameter.
func HandoffURL(host, number, message string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://%s/%s?text=%s", host, number, escaped)
}
