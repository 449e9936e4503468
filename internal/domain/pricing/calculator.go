// Package pricing contiene la aritmética de precios del punto de venta (servicio de dominio, sin estado).
package pricing

import (
	"github.com/jhoicas/puntoventa/internal/domain"
	"github.com/jhoicas/puntoventa/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Límites de los importes de entrada (precios). El exponente se valida antes que la
// magnitud: comparar un decimal con exponente enorme obliga a reescalarlo.
const (
	MaxAmountScale    = 6  // decimales admitidos
	maxAmountExponent = 12 // exponente máximo antes de comparar magnitudes
)

// MaxAmount importe máximo admitido (exclusivo).
var MaxAmount = decimal.New(1, maxAmountExponent)

// CheckAmount valida un precio de entrada: no negativo, menor que MaxAmount y con a lo
// sumo MaxAmountScale decimales. Retorna ErrInvalidInput si no cumple.
func CheckAmount(x decimal.Decimal) error {
	exp := x.Exponent()
	if exp > maxAmountExponent || exp < -MaxAmountScale {
		if x.IsZero() {
			return nil
		}
		return domain.ErrInvalidInput
	}
	if x.IsNegative() || x.GreaterThanOrEqual(MaxAmount) {
		return domain.ErrInvalidInput
	}
	return nil
}

// Summary totales de un conjunto de líneas.
type Summary struct {
	Lines     []decimal.Decimal // total por línea, en el mismo orden que las entradas
	ItemCount int               // unidades totales
	Subtotal  decimal.Decimal
	Total     decimal.Decimal
}

// Round2 redondea a 2 decimales (mitad hacia arriba sobre la representación decimal).
func Round2(x decimal.Decimal) decimal.Decimal {
	return x.Round(2)
}

// LineTotal = Round2(UnitPrice * Quantity).
func LineTotal(item entity.LineItem) decimal.Decimal {
	return Round2(rawLineTotal(item))
}

// SetTotal = Round2(Σ UnitPrice * Quantity). Se suma primero y se redondea una sola vez.
func SetTotal(entries []entity.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range entries {
		sum = sum.Add(rawLineTotal(item))
	}
	return Round2(sum)
}

// Summarize calcula totales por línea, unidades y total del conjunto.
// No hay impuestos ni descuentos: Subtotal y Total coinciden.
func Summarize(entries []entity.LineItem) Summary {
	s := Summary{Lines: make([]decimal.Decimal, 0, len(entries))}
	for _, item := range entries {
		s.Lines = append(s.Lines, LineTotal(item))
		s.ItemCount += item.Quantity
	}
	s.Subtotal = SetTotal(entries)
	s.Total = s.Subtotal
	return s
}

func rawLineTotal(item entity.LineItem) decimal.Decimal {
	return item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
}
