// Package cart mantiene el conjunto de líneas de un pedido en curso.
package cart

import (
	"math"

	"github.com/jhoicas/puntoventa/internal/domain"
	"github.com/jhoicas/puntoventa/internal/domain/entity"
)

// LineItemSet colección ordenada de líneas indexada por ProductRef.
// Invariantes: no hay dos líneas con el mismo ProductRef y toda cantidad es > 0.
// El orden de inserción se conserva: la primera línea agregada sigue primera tras las fusiones.
// No es seguro para uso concurrente.
type LineItemSet struct {
	items []entity.LineItem
	index map[string]int
}

// NewLineItemSet construye un conjunto vacío.
func NewLineItemSet() *LineItemSet {
	return &LineItemSet{index: make(map[string]int)}
}

// AddOrMerge suma delta a la línea del producto o agrega una nueva con cantidad delta.
// Una línea nueva con delta <= 0 retorna ErrInvalidQuantity. Si la fusión deja la
// cantidad en 0 o menos, la línea se elimina.
func (s *LineItemSet) AddOrMerge(product entity.Product, delta int) error {
	return s.Add(entity.LineItemFromProduct(product, delta))
}

// Add agrega una línea ya construida, fusionando por ProductRef (se suma item.Quantity).
// El precio de una línea existente no cambia. Una suma que desborda int retorna
// ErrInvalidQuantity y deja la línea como estaba.
func (s *LineItemSet) Add(item entity.LineItem) error {
	if i, ok := s.index[item.ProductRef]; ok {
		if item.Quantity > 0 && s.items[i].Quantity > math.MaxInt-item.Quantity {
			return domain.ErrInvalidQuantity
		}
		next := s.items[i].Quantity + item.Quantity
		if next <= 0 {
			s.Remove(item.ProductRef)
			return nil
		}
		s.items[i].Quantity = next
		return nil
	}
	if item.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	s.index[item.ProductRef] = len(s.items)
	s.items = append(s.items, item)
	return nil
}

// SetQuantity fija la cantidad de una línea. Con quantity <= 0 la elimina (idempotente).
// Si la línea no existe y quantity > 0 no hace nada.
func (s *LineItemSet) SetQuantity(productRef string, quantity int) {
	if quantity <= 0 {
		s.Remove(productRef)
		return
	}
	if i, ok := s.index[productRef]; ok {
		s.items[i].Quantity = quantity
	}
}

// Remove elimina la línea si existe.
func (s *LineItemSet) Remove(productRef string) {
	i, ok := s.index[productRef]
	if !ok {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, productRef)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].ProductRef] = j
	}
}

// Get devuelve una copia de la línea.
func (s *LineItemSet) Get(productRef string) (entity.LineItem, bool) {
	i, ok := s.index[productRef]
	if !ok {
		return entity.LineItem{}, false
	}
	return s.items[i], true
}

// Entries devuelve una copia de las líneas en orden de inserción.
func (s *LineItemSet) Entries() []entity.LineItem {
	out := make([]entity.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *LineItemSet) Len() int      { return len(s.items) }
func (s *LineItemSet) IsEmpty() bool { return len(s.items) == 0 }

// Clear vacía el conjunto.
func (s *LineItemSet) Clear() {
	s.items = nil
	s.index = make(map[string]int)
}
