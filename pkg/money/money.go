// Package money formatea importes en shekels (ILS) tal como los muestra la tienda:
// sin decimales y con separador de miles.
package money

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer fijo: la tienda siempre renderiza en el mismo locale.
var printer = message.NewPrinter(language.English)

// ILS formatea un importe como moneda de la tienda (₪, cero dígitos fraccionarios).
// Los importes se redondean al shekel entero, igual que Intl.NumberFormat con
// maximumFractionDigits 0.
func ILS(d decimal.Decimal) string {
	v, _ := d.Float64()
	return printer.Sprintf("₪%v", number.Decimal(v, number.MaxFractionDigits(0)))
}

// ILSFloat formatea un float64 directamente; cero cuando el valor no es finito.
func ILSFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Zero()
	}
	return ILS(decimal.NewFromFloat(v))
}

// Zero es el importe cero ya formateado.
func Zero() string {
	return ILS(decimal.Zero)
}
