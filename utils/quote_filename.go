package utils

import (
	"fmt"
	"time"
)

const businessSlug = "soluciones-ferreteras"

// QuoteFileName returns the download filename for a quote generated on the
// given date: cotizacion-soluciones-ferreteras-YYYY-MM-DD.pdf
func QuoteFileName(date time.Time) string {
	return fmt.Sprintf("cotizacion-%s-%s.pdf", businessSlug, date.Format("2006-01-02"))
}
