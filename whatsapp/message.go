// Package whatsapp renders an order as a pt-BR text summary suitable for a
// wa.me share link.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rafaslide/carddz/models"
)

// OrderMessage builds the share text for an order: header, contact and
// delivery details, one numbered line per item with its chosen
// customizations, total, notes and date.
func OrderMessage(order models.Order, restaurantName, customerName string) string {
	var b strings.Builder

	b.WriteString("*Novo pedido via Carddz*\n\n")
	fmt.Fprintf(&b, "*Restaurante:* %s\n", restaurantName)
	fmt.Fprintf(&b, "*Número do pedido:* %s\n", order.ID)
	fmt.Fprintf(&b, "*Cliente:* %s\n", customerName)
	fmt.Fprintf(&b, "*Telefone:* %s\n", order.ContactPhone)
	if order.DeliveryAddress != "" {
		fmt.Fprintf(&b, "*Endereço de entrega:* %s\n", order.DeliveryAddress)
	}

	b.WriteString("\n*Itens do pedido:*\n")
	for i, item := range order.Items {
		fmt.Fprintf(&b, "%d. %dx %s - %s\n", i+1, item.Quantity, item.ProductName, FormatBRL(item.TotalPrice))
		for _, detail := range item.CustomizationDetails {
			if len(detail.ItemNames) == 0 {
				continue
			}
			fmt.Fprintf(&b, "   - %s: %s\n", detail.OptionName, strings.Join(detail.ItemNames, ", "))
		}
	}

	fmt.Fprintf(&b, "\n*Total do pedido:* %s\n", FormatBRL(order.TotalPrice))
	if order.Notes != "" {
		fmt.Fprintf(&b, "\n*Observações:* %s\n", order.Notes)
	}
	fmt.Fprintf(&b, "\n*Data do pedido:* %s", order.CreatedAt.Format("02/01/2006 15:04"))

	return b.String()
}

// ShareLink wraps the message in a wa.me URL.
func ShareLink(message string) string {
	return "https://wa.me/?text=" + url.QueryEscape(message)
}

// FormatBRL renders a monetary value the Brazilian way: R$ 1.234,56.
func FormatBRL(v decimal.Decimal) string {
	s := v.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%s", sign, grouped.String(), fracPart)
}
