// Package memory implementa los puertos de persistencia en memoria del proceso.
package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jhoicas/puntoventa/internal/domain"
	"github.com/jhoicas/puntoventa/internal/domain/entity"
	"github.com/jhoicas/puntoventa/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo catálogo en memoria. Conserva el orden de alta en List.
type ProductRepo struct {
	mu    sync.RWMutex
	byID  map[string]entity.Product
	order []string
}

// NewProductRepository construye el catálogo vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{byID: make(map[string]entity.Product)}
}

// Create persiste un nuevo producto. El código de barras, si viene, debe ser único.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if _, ok := r.byID[product.ID]; ok {
		return domain.ErrDuplicate
	}
	if r.barcodeTakenLocked(product.Barcode, product.ID) {
		return domain.ErrDuplicate
	}
	r.byID[product.ID] = *product
	r.order = append(r.order, product.ID)
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetByBarcode busca por coincidencia exacta del código de barras.
func (r *ProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	if barcode == "" {
		return nil, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if p := r.byID[id]; p.Barcode == barcode {
			return &p, nil
		}
	}
	return nil, nil
}

// Update reemplaza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[product.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.barcodeTakenLocked(product.Barcode, product.ID) {
		return domain.ErrDuplicate
	}
	r.byID[product.ID] = *product
	return nil
}

// List devuelve los productos en orden de alta.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Product, 0, len(r.order))
	for _, id := range r.order {
		p := r.byID[id]
		list = append(list, &p)
	}
	return list, nil
}

// Delete elimina un producto por ID. Eliminar un ID ausente no es error.
func (r *ProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return nil
	}
	delete(r.byID, id)
	r.order = removeID(r.order, id)
	return nil
}

func (r *ProductRepo) barcodeTakenLocked(barcode, ownerID string) bool {
	if barcode == "" {
		return false
	}
	for id, p := range r.byID {
		if id != ownerID && p.Barcode == barcode {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
