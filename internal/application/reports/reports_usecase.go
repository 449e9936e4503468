// Package reports arma los reportes de ventas, compras y ganancias a partir de
// las facturas registradas.
package reports

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/puntoventa/internal/application/dto"
	"github.com/jhoicas/puntoventa/internal/domain"
	"github.com/jhoicas/puntoventa/internal/domain/entity"
	"github.com/jhoicas/puntoventa/internal/domain/pricing"
	"github.com/jhoicas/puntoventa/internal/domain/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Tipos de reporte.
const (
	KindSales          = "sales"
	KindPurchases      = "purchases"
	KindProfits        = "profits"
	KindTopSelling     = "top-selling"
	KindPurchasedItems = "purchased-items"
	KindSoldItems      = "sold-items"
)

const topSellingLimit = 5 // productos en el ranking de más vendidos

// UseCase genera reportes de solo lectura sobre el registro de facturas.
type UseCase struct {
	invoiceRepo repository.InvoiceRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(invoiceRepo repository.InvoiceRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{invoiceRepo: invoiceRepo, productRepo: productRepo}
}

// dataset facturas y stock cargados para un reporte.
type dataset struct {
	sales     []entity.Invoice
	purchases []entity.Invoice
	stock     map[string]int // por ID de producto
}

// Generate arma el reporte pedido. Las facturas de venta, las de compra y el catálogo
// se cargan en paralelo; from/to son fechas YYYY-MM-DD inclusivas y opcionales.
func (uc *UseCase) Generate(ctx context.Context, req dto.ReportRequest) (*dto.ReportResponse, error) {
	from, to := strings.TrimSpace(req.From), strings.TrimSpace(req.To)
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	switch req.Kind {
	case KindSales, KindPurchases, KindProfits, KindTopSelling, KindPurchasedItems, KindSoldItems:
	default:
		return nil, fmt.Errorf("reporte %q: %w", req.Kind, domain.ErrInvalidInput)
	}

	data, err := uc.load(ctx, req.Kind == KindSoldItems)
	if err != nil {
		return nil, err
	}
	data.sales = filterByDate(data.sales, from, to)
	data.purchases = filterByDate(data.purchases, from, to)

	resp := &dto.ReportResponse{Kind: req.Kind, From: from, To: to}
	switch req.Kind {
	case KindSales:
		resp.Sales, resp.Total = salesByDay(data.sales)
	case KindPurchases:
		resp.Purchases, resp.Total = purchasesByDay(data.purchases)
	case KindProfits:
		resp.Profits, resp.Total = profitsByDay(data.sales, data.purchases)
	case KindTopSelling:
		resp.TopSelling, resp.Total = topSelling(data.sales)
	case KindPurchasedItems:
		resp.PurchasedItems, resp.Total = purchasedItems(data.purchases)
	case KindSoldItems:
		resp.SoldItems, resp.Total = soldItems(data.sales, data.stock)
	}
	return resp, nil
}

func (uc *UseCase) load(ctx context.Context, withStock bool) (*dataset, error) {
	data := &dataset{}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		list, err := uc.invoiceRepo.ListByKind(entity.InvoiceKindSale)
		if err != nil {
			return fmt.Errorf("cargar ventas: %w", err)
		}
		data.sales = list
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		list, err := uc.invoiceRepo.ListByKind(entity.InvoiceKindPurchase)
		if err != nil {
			return fmt.Errorf("cargar compras: %w", err)
		}
		data.purchases = list
		return nil
	})
	if withStock {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			products, err := uc.productRepo.List()
			if err != nil {
				return fmt.Errorf("cargar catálogo: %w", err)
			}
			data.stock = make(map[string]int, len(products))
			for _, p := range products {
				data.stock[p.ID] = p.Stock
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

func validateRange(from, to string) error {
	var fromDate, toDate time.Time
	var err error
	if from != "" {
		if fromDate, err = time.Parse(entity.DateLayout, from); err != nil {
			return fmt.Errorf("from %q: %w", from, domain.ErrInvalidInput)
		}
	}
	if to != "" {
		if toDate, err = time.Parse(entity.DateLayout, to); err != nil {
			return fmt.Errorf("to %q: %w", to, domain.ErrInvalidInput)
		}
	}
	if from != "" && to != "" && fromDate.After(toDate) {
		return fmt.Errorf("from posterior a to: %w", domain.ErrInvalidInput)
	}
	return nil
}

// filterByDate compara fechas ISO como texto; el orden lexicográfico coincide con el cronológico.
// Con un rango activo se omiten las facturas cuya fecha no es YYYY-MM-DD.
func filterByDate(list []entity.Invoice, from, to string) []entity.Invoice {
	if from == "" && to == "" {
		return list
	}
	out := make([]entity.Invoice, 0, len(list))
	for _, inv := range list {
		if _, err := time.Parse(entity.DateLayout, inv.Date); err != nil {
			continue
		}
		if from != "" && inv.Date < from {
			continue
		}
		if to != "" && inv.Date > to {
			continue
		}
		out = append(out, inv)
	}
	return out
}

func salesByDay(list []entity.Invoice) ([]dto.SalesDayDTO, decimal.Decimal) {
	byDate := make(map[string]*dto.SalesDayDTO)
	total := decimal.Zero
	for _, inv := range list {
		day, ok := byDate[inv.Date]
		if !ok {
			day = &dto.SalesDayDTO{Date: inv.Date, Total: decimal.Zero}
			byDate[inv.Date] = day
		}
		day.Invoices++
		day.Total = day.Total.Add(inv.Total)
		total = total.Add(inv.Total)
	}
	out := make([]dto.SalesDayDTO, 0, len(byDate))
	for _, d := range byDate {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, pricing.Round2(total)
}

func purchasesByDay(list []entity.Invoice) ([]dto.PurchasesDayDTO, decimal.Decimal) {
	byDate := make(map[string]*dto.PurchasesDayDTO)
	total := decimal.Zero
	for _, inv := range list {
		day, ok := byDate[inv.Date]
		if !ok {
			day = &dto.PurchasesDayDTO{Date: inv.Date, Total: decimal.Zero}
			byDate[inv.Date] = day
		}
		day.Invoices++
		day.Total = day.Total.Add(inv.Total)
		for _, it := range inv.Items() {
			day.Items += it.Quantity
		}
		total = total.Add(inv.Total)
	}
	out := make([]dto.PurchasesDayDTO, 0, len(byDate))
	for _, d := range byDate {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, pricing.Round2(total)
}

// profitsByDay ventas menos compras por día; incluye los días con solo uno de los dos.
func profitsByDay(salesList, purchaseList []entity.Invoice) ([]dto.ProfitDayDTO, decimal.Decimal) {
	byDate := make(map[string]*dto.ProfitDayDTO)
	get := func(date string) *dto.ProfitDayDTO {
		day, ok := byDate[date]
		if !ok {
			day = &dto.ProfitDayDTO{Date: date, Sales: decimal.Zero, Purchases: decimal.Zero}
			byDate[date] = day
		}
		return day
	}
	for _, inv := range salesList {
		day := get(inv.Date)
		day.Sales = day.Sales.Add(inv.Total)
	}
	for _, inv := range purchaseList {
		day := get(inv.Date)
		day.Purchases = day.Purchases.Add(inv.Total)
	}
	total := decimal.Zero
	out := make([]dto.ProfitDayDTO, 0, len(byDate))
	for _, d := range byDate {
		d.Profit = d.Sales.Sub(d.Purchases)
		total = total.Add(d.Profit)
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, pricing.Round2(total)
}

// productTally acumulado por producto, en orden de primera aparición.
type productTally struct {
	ref      string
	name     string
	quantity int
	amount   decimal.Decimal
}

func tally(list []entity.Invoice) []*productTally {
	var order []*productTally
	byRef := make(map[string]*productTally)
	for _, inv := range list {
		for _, it := range inv.Items() {
			t, ok := byRef[it.ProductRef]
			if !ok {
				t = &productTally{ref: it.ProductRef, name: it.Name, amount: decimal.Zero}
				byRef[it.ProductRef] = t
				order = append(order, t)
			}
			t.quantity += it.Quantity
			t.amount = t.amount.Add(pricing.LineTotal(it))
		}
	}
	return order
}

// topSelling los más vendidos por unidades; empate por nombre.
func topSelling(list []entity.Invoice) ([]dto.TopProductDTO, decimal.Decimal) {
	tallies := tally(list)
	sort.SliceStable(tallies, func(i, j int) bool {
		if tallies[i].quantity != tallies[j].quantity {
			return tallies[i].quantity > tallies[j].quantity
		}
		return tallies[i].name < tallies[j].name
	})
	if len(tallies) > topSellingLimit {
		tallies = tallies[:topSellingLimit]
	}
	total := decimal.Zero
	out := make([]dto.TopProductDTO, 0, len(tallies))
	for _, t := range tallies {
		out = append(out, dto.TopProductDTO{Name: t.name, Quantity: t.quantity, Revenue: pricing.Round2(t.amount)})
		total = total.Add(t.amount)
	}
	return out, pricing.Round2(total)
}

func purchasedItems(list []entity.Invoice) ([]dto.PurchasedItemDTO, decimal.Decimal) {
	total := decimal.Zero
	var out []dto.PurchasedItemDTO
	for _, t := range tally(list) {
		out = append(out, dto.PurchasedItemDTO{Name: t.name, Quantity: t.quantity, Cost: pricing.Round2(t.amount)})
		total = total.Add(t.amount)
	}
	return out, pricing.Round2(total)
}

// soldItems unidades vendidas por producto con el stock que queda en catálogo
// (0 si el producto ya no existe).
func soldItems(list []entity.Invoice, stock map[string]int) ([]dto.SoldItemDTO, decimal.Decimal) {
	total := decimal.Zero
	var out []dto.SoldItemDTO
	for _, t := range tally(list) {
		out = append(out, dto.SoldItemDTO{Name: t.name, Quantity: t.quantity, Remaining: stock[t.ref]})
		total = total.Add(t.amount)
	}
	return out, pricing.Round2(total)
}
