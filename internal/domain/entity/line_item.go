package entity

import "github.com/shopspring/decimal"

// LineItem es una línea de un carrito, de un borrador de compra o de una factura cerrada.
// ProductRef es el ID del producto en ventas y el nombre del producto en compras.
type LineItem struct {
	ProductRef  string
	Name        string
	Barcode     string
	Quantity    int
	UnitPrice   decimal.Decimal
	ResalePrice decimal.Decimal // solo compras: precio de venta sugerido, no entra en el total
	Category    string
}

// LineItemFromProduct construye la línea de venta de un producto con la cantidad indicada.
func LineItemFromProduct(p Product, quantity int) LineItem {
	return LineItem{
		ProductRef: p.ID,
		Name:       p.Name,
		Barcode:    p.Barcode,
		Quantity:   quantity,
		UnitPrice:  p.Price,
		Category:   p.Category,
	}
}
