package usecase

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/puntoventa/internal/application/dto"
	"github.com/jhoicas/puntoventa/internal/domain"
	"github.com/jhoicas/puntoventa/internal/domain/entity"
	"github.com/jhoicas/puntoventa/internal/domain/pricing"
	"github.com/jhoicas/puntoventa/internal/domain/repository"
	"golang.org/x/text/cases"
)

const barcodeAttempts = 10

// CategoryColors resuelve el color de una categoría por nombre.
type CategoryColors interface {
	ColorOf(name string) string
}

// ProductUseCase casos de uso CRUD y búsqueda del catálogo.
type ProductUseCase struct {
	repo   repository.ProductRepository
	colors CategoryColors
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, colors CategoryColors) *ProductUseCase {
	return &ProductUseCase{repo: repo, colors: colors}
}

// Create crea un nuevo producto. El código de barras, si viene, no puede repetirse.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := pricing.CheckAmount(in.Price); err != nil {
		return nil, fmt.Errorf("precio: %w", err)
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      name,
		Price:     in.Price,
		Stock:     in.Stock,
		Barcode:   strings.TrimSpace(in.Barcode),
		Category:  strings.TrimSpace(in.Category),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(product), nil
}

// FindByBarcode busca por código de barras exacto.
func (uc *ProductUseCase) FindByBarcode(code string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByBarcode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return uc.toResponse(product), nil
}

// Update actualiza los campos enviados.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Price != nil {
		if err := pricing.CheckAmount(*in.Price); err != nil {
			return nil, fmt.Errorf("precio: %w", err)
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.Barcode != nil {
		product.Barcode = strings.TrimSpace(*in.Barcode)
	}
	if in.Category != nil {
		product.Category = strings.TrimSpace(*in.Category)
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List lista el catálogo completo en orden de alta.
func (uc *ProductUseCase) List() (*dto.ListResponse[dto.ProductResponse], error) {
	return uc.Search("")
}

// Search lista productos cuyo nombre o categoría contiene term, sin distinguir
// mayúsculas (plegado Unicode). term vacío devuelve todo el catálogo.
func (uc *ProductUseCase) Search(term string) (*dto.ListResponse[dto.ProductResponse], error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	folder := cases.Fold()
	needle := folder.String(strings.TrimSpace(term))
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if needle != "" &&
			!strings.Contains(folder.String(p.Name), needle) &&
			!strings.Contains(folder.String(p.Category), needle) {
			continue
		}
		items = append(items, *uc.toResponse(p))
	}
	out := dto.NewListResponse(items)
	return &out, nil
}

// GenerateBarcode propone un código numérico de 9 dígitos que no esté en uso.
func (uc *ProductUseCase) GenerateBarcode() (*dto.BarcodeResponse, error) {
	for i := 0; i < barcodeAttempts; i++ {
		code := fmt.Sprintf("%09d", rand.Intn(1_000_000_000))
		existing, err := uc.repo.GetByBarcode(code)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return &dto.BarcodeResponse{Barcode: code}, nil
		}
	}
	return nil, fmt.Errorf("generar código de barras: %w", domain.ErrDuplicate)
}

func (uc *ProductUseCase) toResponse(p *entity.Product) *dto.ProductResponse {
	color := entity.DefaultCategoryColor
	if uc.colors != nil {
		color = uc.colors.ColorOf(p.Category)
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		Stock:         p.Stock,
		Barcode:       p.Barcode,
		Category:      p.Category,
		CategoryColor: color,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
