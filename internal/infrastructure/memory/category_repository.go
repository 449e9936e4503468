package memory

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jhoicas/puntoventa/internal/domain"
	"github.com/jhoicas/puntoventa/internal/domain/entity"
	"github.com/jhoicas/puntoventa/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo categorías en memoria. Los nombres son únicos sin distinguir mayúsculas.
type CategoryRepo struct {
	mu    sync.RWMutex
	byID  map[string]entity.Category
	order []string
}

// NewCategoryRepository construye el almacén vacío.
func NewCategoryRepository() *CategoryRepo {
	return &CategoryRepo{byID: make(map[string]entity.Category)}
}

// Create persiste una categoría nueva.
func (r *CategoryRepo) Create(category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if _, ok := r.byID[category.ID]; ok || r.nameTakenLocked(category.Name, category.ID) {
		return domain.ErrDuplicate
	}
	r.byID[category.ID] = *category
	r.order = append(r.order, category.ID)
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// GetByName obtiene una categoría por nombre exacto.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if c := r.byID[id]; c.Name == name {
			return &c, nil
		}
	}
	return nil, nil
}

// Update reemplaza una categoría existente. No propaga el cambio de nombre a los productos.
func (r *CategoryRepo) Update(category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[category.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.nameTakenLocked(category.Name, category.ID) {
		return domain.ErrDuplicate
	}
	r.byID[category.ID] = *category
	return nil
}

// List devuelve las categorías en orden de alta.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Category, 0, len(r.order))
	for _, id := range r.order {
		c := r.byID[id]
		list = append(list, &c)
	}
	return list, nil
}

// Delete elimina la categoría. Los productos que la referencian conservan el nombre.
func (r *CategoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return nil
	}
	delete(r.byID, id)
	r.order = removeID(r.order, id)
	return nil
}

func (r *CategoryRepo) nameTakenLocked(name, ownerID string) bool {
	for id, c := range r.byID {
		if id != ownerID && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}
