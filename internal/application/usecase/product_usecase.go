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

// ProductUseCase casos de uso CRUD para productos. El stock baja al facturar.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. Requiere nombre, precio positivo y al menos una categoría.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" || !in.Price.IsPositive() || len(in.CategoryIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	stock := 0
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		stock = *in.Stock
	}
	now := time.Now()
	product := &entity.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Stock:       stock,
		ImagesURL:   in.ImagesURL,
		BrandID:     in.BrandID,
		ProviderID:  in.ProviderID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if product.ImagesURL == nil {
		product.ImagesURL = []string{}
	}
	if err := uc.repo.Create(ctx, product, in.CategoryIDs); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto existente; solo se tocan los campos presentes.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.ImagesURL != nil {
		product.ImagesURL = in.ImagesURL
	}
	if in.BrandID != nil {
		product.BrandID = in.BrandID
	}
	if in.ProviderID != nil {
		product.ProviderID = in.ProviderID
	}
	// nil conserva las categorías actuales.
	var categoryIDs []int64
	if in.CategoryIDs != nil {
		if len(in.CategoryIDs) == 0 {
			return nil, domain.ErrInvalidInput
		}
		categoryIDs = in.CategoryIDs
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product, categoryIDs); err != nil {
		return nil, err
	}
	if categoryIDs != nil {
		product.Categories = make([]entity.Category, 0, len(categoryIDs))
		for _, cid := range categoryIDs {
			product.Categories = append(product.Categories, entity.Category{ID: cid})
		}
	}
	return toProductResponse(product), nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto por ID. Devuelve ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	resp := &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImagesURL:   p.ImagesURL,
		BrandID:     p.BrandID,
		ProviderID:  p.ProviderID,
		Categories:  make([]dto.CategoryResponse, 0, len(p.Categories)),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for i := range p.Categories {
		resp.Categories = append(resp.Categories, *toCategoryResponse(&p.Categories[i]))
	}
	return resp
}
