package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")

	// Errores del motor de ventas y compras. Todos son recuperables y se muestran al usuario.
	ErrInvalidQuantity = errors.New("cantidad inválida")
	ErrProductNotFound = errors.New("no existe un producto con ese código de barras")
	ErrEmptyCart       = errors.New("el carrito está vacío")
	ErrOrderCommitted  = errors.New("la venta ya fue cerrada")
	ErrMissingHeader   = errors.New("faltan datos de la factura: número, proveedor o fecha")
	ErrNoValidLines    = errors.New("la factura no tiene líneas válidas")
)
