package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestor-ventas-api/internal/application/dto"
	"github.com/jhoicas/gestor-ventas-api/internal/domain"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/invoice"
	"github.com/rs/zerolog/log"
)

// InvoiceService arma, valida y persiste facturas. No guarda estado entre llamadas.
type InvoiceService struct {
	products  ProductLookup
	store     InvoiceStore
	numbers   NumberGenerator
	publisher EventPublisher
}

// NewInvoiceService construye el servicio. publisher puede ser nil.
func NewInvoiceService(products ProductLookup, store InvoiceStore, numbers NumberGenerator, publisher EventPublisher) *InvoiceService {
	return &InvoiceService{
		products:  products,
		store:     store,
		numbers:   numbers,
		publisher: publisher,
	}
}

// Calculate valida las líneas y calcula subtotales y total sin persistir nada.
// El número de factura queda en cero.
func (s *InvoiceService) Calculate(ctx context.Context, userID int64, items []invoice.LineRequest) (*invoice.CalculatedInvoice, error) {
	if err := invoice.ValidateItems(items); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := invoice.ValidateQuantity(item.Quantity); err != nil {
			return nil, err
		}
	}

	products, err := s.products.GetByIDs(ctx, distinctProductIDs(items))
	if err != nil {
		return nil, fmt.Errorf("resolver productos: %w", err)
	}
	byID := make(map[int64]*entity.Product, len(products))
	for _, p := range products {
		if p != nil {
			byID[p.ID] = p
		}
	}

	lines := make([]invoice.CalculatedLine, 0, len(items))
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, &invoice.ProductNotFoundError{ProductID: item.ProductID}
		}
		if err := invoice.ValidatePrice(product.Price); err != nil {
			return nil, err
		}
		if err := invoice.ValidateStock(product.Stock, item.Quantity, product.Name); err != nil {
			return nil, err
		}
		lines = append(lines, invoice.CalculatedLine{
			ProductID:  product.ID,
			Quantity:   item.Quantity,
			ProviderID: product.ProviderID,
			UnitPrice:  product.Price,
			Subtotal:   invoice.CalculateSubtotal(product.Price, item.Quantity),
		})
	}

	return &invoice.CalculatedInvoice{
		UserID: userID,
		Items:  lines,
		Total:  invoice.CalculateTotal(lines),
	}, nil
}

// CreateInvoice valida y calcula la factura, le asigna número y la persiste.
// Cualquier rechazo ocurre antes de tocar el almacenamiento.
func (s *InvoiceService) CreateInvoice(ctx context.Context, userID int64, items []invoice.LineRequest) (*entity.Invoice, error) {
	calc, err := s.Calculate(ctx, userID, items)
	if err != nil {
		return nil, err
	}

	number, err := s.numbers.NextInvoiceNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("número de factura: %w", err)
	}
	calc.InvoiceNumber = number

	inv, err := s.store.Create(ctx, calc)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		evt := InvoiceCreatedEvent{
			InvoiceID:     inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			UserID:        inv.UserID,
			Total:         inv.Total,
			Lines:         len(inv.Items),
			CreatedAt:     inv.CreatedAt,
		}
		if err := s.publisher.PublishInvoiceCreated(ctx, evt); err != nil {
			log.Warn().Err(err).Int64("invoice_id", inv.ID).Msg("no se pudo publicar invoice.created")
		}
	}
	return inv, nil
}

// List devuelve todas las facturas con sus líneas.
func (s *InvoiceService) List(ctx context.Context) ([]*entity.Invoice, error) {
	return s.store.List(ctx)
}

// GetByID devuelve una factura o domain.ErrNotFound.
func (s *InvoiceService) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	inv, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// Delete elimina la factura y devuelve lo que se borró. El stock no se repone.
func (s *InvoiceService) Delete(ctx context.Context, id int64) (*entity.Invoice, error) {
	inv, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// ToLineRequests convierte las líneas del body HTTP a líneas del núcleo.
func ToLineRequests(items []dto.InvoiceItemRequest) []invoice.LineRequest {
	if len(items) == 0 {
		return nil
	}
	out := make([]invoice.LineRequest, len(items))
	for i, it := range items {
		out[i] = invoice.LineRequest{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	return out
}

// ToInvoiceResponse mapea la entidad a la respuesta HTTP.
func ToInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		UserID:        inv.UserID,
		Total:         inv.Total,
		Items:         make([]dto.InvoiceItemResponse, 0, len(inv.Items)),
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          it.ID,
			InvoiceID:   it.InvoiceID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ProviderID:  it.ProviderID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return resp
}

func distinctProductIDs(items []invoice.LineRequest) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
	}
	return ids
}
