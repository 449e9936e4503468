package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/puntoventa/internal/application/dto"
	"github.com/jhoicas/puntoventa/internal/domain"
	"github.com/jhoicas/puntoventa/internal/domain/entity"
	"github.com/jhoicas/puntoventa/internal/domain/repository"
)

// Paleta de colores ofrecida al crear categorías; la primera es la de por defecto.
var categoryPalette = []string{
	"#3B82F6", "#10B981", "#F59E0B", "#EF4444",
	"#8B5CF6", "#06B6D4", "#84CC16", "#F97316",
}

// CategoryUseCase casos de uso CRUD de categorías.
// Los productos guardan el nombre de la categoría: renombrar o borrar no se propaga
// y ColorOf cae en el color por defecto para referencias obsoletas.
type CategoryUseCase struct {
	repo         repository.CategoryRepository
	defaultColor string
}

// NewCategoryUseCase construye el caso de uso. defaultColor vacío usa entity.DefaultCategoryColor.
func NewCategoryUseCase(repo repository.CategoryRepository, defaultColor string) *CategoryUseCase {
	if defaultColor == "" {
		defaultColor = entity.DefaultCategoryColor
	}
	return &CategoryUseCase{repo: repo, defaultColor: defaultColor}
}

// Create crea una categoría. Sin color se usa el primero de la paleta.
func (uc *CategoryUseCase) Create(in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	color := strings.ToUpper(strings.TrimSpace(in.Color))
	if color == "" {
		color = categoryPalette[0]
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Color:       color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update reemplaza nombre, descripción y color.
func (uc *CategoryUseCase) Update(id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	category.Name = name
	category.Description = strings.TrimSpace(in.Description)
	if color := strings.TrimSpace(in.Color); color != "" {
		category.Color = strings.ToUpper(color)
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// List lista las categorías en orden de alta.
func (uc *CategoryUseCase) List() (*dto.ListResponse[dto.CategoryResponse], error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	out := dto.NewListResponse(items)
	return &out, nil
}

// Delete elimina una categoría. No toca los productos que la referencian.
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// ColorOf devuelve el color de la categoría o el color por defecto si no existe.
func (uc *CategoryUseCase) ColorOf(name string) string {
	if name == "" {
		return uc.defaultColor
	}
	category, err := uc.repo.GetByName(name)
	if err != nil || category == nil {
		return uc.defaultColor
	}
	return category.Color
}

// Palette colores disponibles para el formulario de categorías.
func (uc *CategoryUseCase) Palette() *dto.PaletteResponse {
	colors := make([]string, len(categoryPalette))
	copy(colors, categoryPalette)
	return &dto.PaletteResponse{Colors: colors, Default: categoryPalette[0]}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
