package quote

import (
	"math"
	"time"

	"soluciones-ferreteras/models"
)

// IVARate is the Colombian value-added tax rate contained in every stored price
const IVARate = 0.19

// CalculateLineItem derives the tax breakdown for one cart line. Stored
// prices are tax-inclusive integer COP; the base price is back-calculated by
// dividing out the IVA and rounding half away from zero, and the tax is the
// exact remainder, so UnitPriceBase + UnitPriceTax == priceWithTax always.
//
// A nil price means the price is unknown: the line is returned with zeroed
// monetary fields and HasPrice=false, to be shown as "price unavailable" and
// excluded from totals.
func CalculateLineItem(productCode, productName string, quantity int, priceWithTax *int64) models.QuoteLineItem {
	if priceWithTax == nil {
		return models.QuoteLineItem{
			ProductCode: productCode,
			ProductName: productName,
			Quantity:    quantity,
		}
	}

	price := *priceWithTax
	unitPriceBase := int64(math.Round(float64(price) / (1 + IVARate)))
	unitPriceTax := price - unitPriceBase

	return models.QuoteLineItem{
		ProductCode:      productCode,
		ProductName:      productName,
		Quantity:         quantity,
		UnitPriceWithTax: price,
		UnitPriceBase:    unitPriceBase,
		UnitPriceTax:     unitPriceTax,
		LineTotalWithTax: int64(quantity) * price,
		HasPrice:         true,
	}
}

// BuildDocument assembles the quote document model from a cart snapshot and
// an immutable price snapshot. Totals cover priced lines only; when no line
// has a known price, HasTotals is false and the renderer omits the totals
// block entirely rather than implying a $0 quote.
func BuildDocument(items []models.CartLineItem, prices map[string]int64, client models.QuoteClient, date time.Time) models.QuoteDocument {
	doc := models.QuoteDocument{
		Client: client,
		Items:  make([]models.QuoteLineItem, 0, len(items)),
		Date:   date,
	}

	for _, item := range items {
		var price *int64
		if p, ok := prices[item.ProductCode]; ok {
			price = &p
		}
		line := CalculateLineItem(item.ProductCode, item.ProductName, item.Quantity, price)
		doc.Items = append(doc.Items, line)

		if line.HasPrice {
			doc.SubtotalBase += line.UnitPriceBase * int64(line.Quantity)
			doc.TotalWithTax += line.LineTotalWithTax
			doc.HasTotals = true
		} else {
			doc.HasUnpriced = true
		}
	}

	doc.TotalTax = doc.TotalWithTax - doc.SubtotalBase
	return doc
}
