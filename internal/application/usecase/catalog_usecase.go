package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/gestor-ventas-api/internal/application/dto"
	"github.com/jhoicas/gestor-ventas-api/internal/domain"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/repository"
)

// BrandUseCase casos de uso CRUD para marcas. El nombre es único.
type BrandUseCase struct {
	repo repository.BrandRepository
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(repo repository.BrandRepository) *BrandUseCase {
	return &BrandUseCase{repo: repo}
}

// Create crea una marca. Devuelve ErrDuplicate si el nombre ya existe.
func (uc *BrandUseCase) Create(ctx context.Context, in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now()
	brand := &entity.Brand{
		Name:        name,
		Logo:        in.Logo,
		Description: in.Description,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// GetByID obtiene una marca por ID.
func (uc *BrandUseCase) GetByID(ctx context.Context, id int64) (*dto.BrandResponse, error) {
	brand, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	return toBrandResponse(brand), nil
}

// GetByName obtiene una marca por nombre exacto.
func (uc *BrandUseCase) GetByName(ctx context.Context, name string) (*dto.BrandResponse, error) {
	brand, err := uc.repo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	return toBrandResponse(brand), nil
}

// Update actualiza una marca. Un nombre nuevo no puede chocar con otra marca.
func (uc *BrandUseCase) Update(ctx context.Context, id int64, in dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	brand, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		if name != brand.Name {
			other, err := uc.repo.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != brand.ID {
				return nil, domain.ErrDuplicate
			}
		}
		brand.Name = name
	}
	if in.Logo != nil {
		brand.Logo = *in.Logo
	}
	if in.Description != nil {
		brand.Description = *in.Description
	}
	if in.IsActive != nil {
		brand.IsActive = *in.IsActive
	}
	brand.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// List lista todas las marcas.
func (uc *BrandUseCase) List(ctx context.Context) ([]dto.BrandResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		out = append(out, *toBrandResponse(b))
	}
	return out, nil
}

// Delete elimina una marca existente.
func (uc *BrandUseCase) Delete(ctx context.Context, id int64) error {
	brand, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if brand == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// CategoryUseCase consulta de categorías (solo lectura).
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(c), nil
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// ProviderUseCase consulta de proveedores (solo lectura).
type ProviderUseCase struct {
	repo repository.ProviderRepository
}

// NewProviderUseCase construye el caso de uso.
func NewProviderUseCase(repo repository.ProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{repo: repo}
}

// GetByID obtiene un proveedor por ID.
func (uc *ProviderUseCase) GetByID(ctx context.Context, id int64) (*dto.ProviderResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProviderResponse(p), nil
}

// List lista todos los proveedores.
func (uc *ProviderUseCase) List(ctx context.Context) ([]dto.ProviderResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProviderResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProviderResponse(p))
	}
	return out, nil
}

func toBrandResponse(b *entity.Brand) *dto.BrandResponse {
	return &dto.BrandResponse{
		ID:          b.ID,
		Name:        b.Name,
		Logo:        b.Logo,
		Description: b.Description,
		IsActive:    b.IsActive,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toProviderResponse(p *entity.Provider) *dto.ProviderResponse {
	return &dto.ProviderResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Address:   p.Address,
		City:      p.City,
		Province:  p.Province,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
