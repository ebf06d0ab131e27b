package utils

import (
	"fmt"
	"net/url"
	"strings"

	"soluciones-ferreteras/models"
)

// WhatsAppNumber is the business WhatsApp number quotes are sent to
const WhatsAppNumber = "573196535012"

const (
	whatsAppHeader = "Hola, me gustaría solicitar cotización para los siguientes productos:"
	whatsAppFooter = "Quedo atento a su respuesta. Gracias."
)

// GenerateWhatsAppMessage builds the quote request message for the given cart
// items, one bullet line per product. Returns "" for an empty cart.
func GenerateWhatsAppMessage(items []models.CartLineItem) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(whatsAppHeader)
	b.WriteString("\n\n")
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "• %dx %q - %s", item.Quantity, item.ProductCode, item.ProductName)
	}
	b.WriteString("\n\n")
	b.WriteString(whatsAppFooter)

	return b.String()
}

// GenerateWhatsAppURL builds a wa.me link with the quote message pre-filled.
// Returns "" for an empty cart; the send action is then a no-op.
func GenerateWhatsAppURL(items []models.CartLineItem) string {
	message := GenerateWhatsAppMessage(items)
	if message == "" {
		return ""
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", WhatsAppNumber, url.QueryEscape(message))
}

// GeneralInquiryURL returns the wa.me link without a pre-filled message,
// used for general contact.
func GeneralInquiryURL() string {
	return "https://wa.me/" + WhatsAppNumber
}
