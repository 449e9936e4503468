package memory

import (
	"fmt"
	"time"

	"github.com/jhoicas/puntoventa/internal/domain/entity"
	"github.com/jhoicas/puntoventa/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// DemoCashier nombre del cajero de las facturas de demostración.
const DemoCashier = "Cajero principal"

// SeedDemo carga el catálogo y las facturas de demostración del punto de venta.
func SeedDemo(products *ProductRepo, categories *CategoryRepo, invoices *InvoiceRepo) error {
	now := time.Now()

	for _, c := range []entity.Category{
		{ID: "1", Name: "Bebidas", Color: "#3B82F6"},
		{ID: "2", Name: "Snacks", Color: "#10B981"},
		{ID: "3", Name: "Dulces", Color: "#F59E0B"},
	} {
		c.CreatedAt, c.UpdatedAt = now, now
		if err := categories.Create(&c); err != nil {
			return fmt.Errorf("seed categoría %s: %w", c.Name, err)
		}
	}

	for _, p := range []entity.Product{
		{ID: "1", Name: "Cola", Price: decimal.RequireFromString("2.5"), Stock: 50, Barcode: "12345", Category: "Bebidas"},
		{ID: "2", Name: "Papas fritas", Price: decimal.RequireFromString("1.5"), Stock: 30, Barcode: "67890", Category: "Snacks"},
		{ID: "3", Name: "Chocolate", Price: decimal.RequireFromString("3.0"), Stock: 25, Barcode: "11111", Category: "Dulces"},
		{ID: "4", Name: "Jugo de naranja", Price: decimal.RequireFromString("4.0"), Stock: 20, Barcode: "22222", Category: "Bebidas"},
	} {
		p.CreatedAt, p.UpdatedAt = now, now
		if err := products.Create(&p); err != nil {
			return fmt.Errorf("seed producto %s: %w", p.Name, err)
		}
	}

	purchaseItems := []entity.LineItem{
		{ProductRef: "Cola", Name: "Cola", Barcode: "1234567890123", Quantity: 50, UnitPrice: decimal.NewFromInt(2), ResalePrice: decimal.RequireFromString("2.5"), Category: "Bebidas"},
		{ProductRef: "Papas fritas", Name: "Papas fritas", Barcode: "1234567890124", Quantity: 30, UnitPrice: decimal.NewFromInt(1), ResalePrice: decimal.RequireFromString("1.5"), Category: "Snacks"},
	}
	seeded := []entity.Invoice{
		demoInvoice("seed-purchase-1", entity.InvoiceKindPurchase, "INV-001", "2024-01-15", "10:30", purchaseItems, "Distribuidora General"),
		demoInvoice("seed-sale-1", entity.InvoiceKindSale, "INV-20241202-1234", "2024-12-02", "14:30", []entity.LineItem{
			{ProductRef: "1", Name: "Cola", Quantity: 2, UnitPrice: decimal.RequireFromString("2.5")},
			{ProductRef: "2", Name: "Papas fritas", Quantity: 1, UnitPrice: decimal.RequireFromString("1.5")},
		}, DemoCashier),
		demoInvoice("seed-sale-2", entity.InvoiceKindSale, "INV-20241202-1235", "2024-12-02", "15:45", []entity.LineItem{
			{ProductRef: "3", Name: "Chocolate", Quantity: 3, UnitPrice: decimal.RequireFromString("3.0")},
			{ProductRef: "4", Name: "Jugo de naranja", Quantity: 1, UnitPrice: decimal.RequireFromString("4.0")},
		}, DemoCashier),
	}
	for _, inv := range seeded {
		if err := invoices.Append(inv); err != nil {
			return fmt.Errorf("seed factura %s: %w", inv.Number, err)
		}
	}
	return nil
}

func demoInvoice(id string, kind entity.InvoiceKind, number, date, clock string, items []entity.LineItem, counterpart string) entity.Invoice {
	createdAt, _ := time.Parse(entity.DateLayout+" "+entity.TimeLayout, date+" "+clock)
	return entity.NewInvoice(id, kind, number, date, clock, items, pricing.SetTotal(items), counterpart, createdAt)
}
