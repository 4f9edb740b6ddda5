package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/gestor-ventas-api/internal/application/billing"
	"github.com/jhoicas/gestor-ventas-api/internal/domain"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/invoice"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducts struct {
	byID  map[int64]*entity.Product
	calls [][]int64
	err   error
}

func (f *fakeProducts) GetByIDs(_ context.Context, ids []int64) ([]*entity.Product, error) {
	f.calls = append(f.calls, ids)
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := f.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeStore struct {
	created  []*invoice.CalculatedInvoice
	invoices map[int64]*entity.Invoice
	err      error
}

func (f *fakeStore) Create(_ context.Context, calc *invoice.CalculatedInvoice) (*entity.Invoice, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, calc)
	id := int64(len(f.created))
	inv := &entity.Invoice{
		ID:            id,
		InvoiceNumber: calc.InvoiceNumber,
		UserID:        calc.UserID,
		Total:         calc.Total,
		CreatedAt:     time.Now(),
	}
	for i, l := range calc.Items {
		inv.Items = append(inv.Items, entity.InvoiceItem{
			ID: int64(i + 1), InvoiceID: id, ProductID: l.ProductID, ProviderID: l.ProviderID,
			Quantity: l.Quantity, UnitPrice: l.UnitPrice, Subtotal: l.Subtotal,
		})
	}
	if f.invoices == nil {
		f.invoices = map[int64]*entity.Invoice{}
	}
	f.invoices[id] = inv
	return inv, nil
}

func (f *fakeStore) GetByID(_ context.Context, id int64) (*entity.Invoice, error) {
	return f.invoices[id], nil
}

func (f *fakeStore) List(_ context.Context) ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, 0, len(f.invoices))
	for _, inv := range f.invoices {
		out = append(out, inv)
	}
	return out, nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) (*entity.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, nil
	}
	delete(f.invoices, id)
	return inv, nil
}

type fakeNumbers struct {
	next  int64
	calls int
}

func (f *fakeNumbers) NextInvoiceNumber(context.Context) (int64, error) {
	f.calls++
	f.next++
	return f.next, nil
}

type fakePublisher struct {
	events []billing.InvoiceCreatedEvent
	err    error
}

func (f *fakePublisher) PublishInvoiceCreated(_ context.Context, evt billing.InvoiceCreatedEvent) error {
	f.events = append(f.events, evt)
	return f.err
}

func ptr(v int64) *int64 { return &v }

func newFixture() (*billing.InvoiceService, *fakeProducts, *fakeStore, *fakeNumbers, *fakePublisher) {
	products := &fakeProducts{byID: map[int64]*entity.Product{
		1: {ID: 1, Name: "Teclado", Price: decimal.NewFromInt(200), Stock: 10, ProviderID: ptr(7)},
		2: {ID: 2, Name: "Mouse", Price: decimal.NewFromInt(300), Stock: 5},
		3: {ID: 3, Name: "Gratis", Price: decimal.Zero, Stock: 5},
	}}
	store := &fakeStore{}
	numbers := &fakeNumbers{}
	pub := &fakePublisher{}
	return billing.NewInvoiceService(products, store, numbers, pub), products, store, numbers, pub
}

func TestCreateInvoice_TwoLines(t *testing.T) {
	svc, products, store, numbers, pub := newFixture()

	inv, err := svc.CreateInvoice(context.Background(), 42, []invoice.LineRequest{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	})
	require.NoError(t, err)

	assert.True(t, inv.Total.Equal(decimal.NewFromInt(700)))
	assert.Equal(t, int64(42), inv.UserID)
	assert.Equal(t, int64(1), inv.InvoiceNumber)
	require.Len(t, inv.Items, 2)
	assert.True(t, inv.Items[0].Subtotal.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, ptr(7), inv.Items[0].ProviderID)
	assert.True(t, inv.Items[1].Subtotal.Equal(decimal.NewFromInt(300)))
	assert.Nil(t, inv.Items[1].ProviderID)

	assert.Len(t, products.calls, 1)
	assert.Len(t, store.created, 1)
	assert.Equal(t, 1, numbers.calls)
	require.Len(t, pub.events, 1)
	assert.Equal(t, inv.ID, pub.events[0].InvoiceID)
}

func TestCreateInvoice_BatchLookupUsesDistinctIDs(t *testing.T) {
	svc, products, _, _, _ := newFixture()

	inv, err := svc.CreateInvoice(context.Background(), 1, []invoice.LineRequest{
		{ProductID: 1, Quantity: 1},
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	})
	require.NoError(t, err)

	require.Len(t, products.calls, 1)
	assert.Equal(t, []int64{1, 2}, products.calls[0])
	require.Len(t, inv.Items, 3)
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(900)))
}

func TestCreateInvoice_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		items    []invoice.LineRequest
		sentinel error
		lookups  int
	}{
		{name: "sin líneas", items: nil, sentinel: invoice.ErrEmptyInvoice, lookups: 0},
		{name: "cantidad cero", items: []invoice.LineRequest{{ProductID: 1, Quantity: 0}}, sentinel: invoice.ErrInvalidQuantity, lookups: 0},
		{name: "cantidad negativa en segunda línea", items: []invoice.LineRequest{{ProductID: 1, Quantity: 1}, {ProductID: 2, Quantity: -3}}, sentinel: invoice.ErrInvalidQuantity, lookups: 0},
		{name: "producto inexistente", items: []invoice.LineRequest{{ProductID: 99, Quantity: 1}}, sentinel: invoice.ErrProductNotFound, lookups: 1},
		{name: "precio cero", items: []invoice.LineRequest{{ProductID: 3, Quantity: 1}}, sentinel: invoice.ErrInvalidPrice, lookups: 1},
		{name: "stock insuficiente", items: []invoice.LineRequest{{ProductID: 2, Quantity: 6}}, sentinel: invoice.ErrInsufficientStock, lookups: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, products, store, numbers, pub := newFixture()

			inv, err := svc.CreateInvoice(context.Background(), 1, tt.items)
			assert.Nil(t, inv)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.True(t, invoice.IsRejection(err))

			assert.Len(t, products.calls, tt.lookups)
			assert.Empty(t, store.created)
			assert.Zero(t, numbers.calls)
			assert.Empty(t, pub.events)
		})
	}
}

func TestCreateInvoice_StockBoundary(t *testing.T) {
	svc, _, _, _, _ := newFixture()

	inv, err := svc.CreateInvoice(context.Background(), 1, []invoice.LineRequest{{ProductID: 2, Quantity: 5}})
	require.NoError(t, err)
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(1500)))

	_, err = svc.CreateInvoice(context.Background(), 1, []invoice.LineRequest{{ProductID: 2, Quantity: 6}})
	var stockErr *invoice.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Mouse", stockErr.ProductName)
	assert.Equal(t, 5, stockErr.Available)
	assert.Equal(t, 6, stockErr.Requested)
}

func TestCreateInvoice_NotFoundCarriesProductID(t *testing.T) {
	svc, _, _, _, _ := newFixture()

	_, err := svc.CreateInvoice(context.Background(), 1, []invoice.LineRequest{
		{ProductID: 1, Quantity: 1},
		{ProductID: 77, Quantity: 1},
	})
	var nf *invoice.ProductNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, int64(77), nf.ProductID)
}

func TestCreateInvoice_LookupFailureIsNotRejection(t *testing.T) {
	svc, products, store, _, _ := newFixture()
	products.err = errors.New("conexión perdida")

	_, err := svc.CreateInvoice(context.Background(), 1, []invoice.LineRequest{{ProductID: 1, Quantity: 1}})
	require.Error(t, err)
	assert.False(t, invoice.IsRejection(err))
	assert.Empty(t, store.created)
}

func TestCreateInvoice_PublishFailureDoesNotFail(t *testing.T) {
	svc, _, store, _, pub := newFixture()
	pub.err = errors.New("broker caído")

	inv, err := svc.CreateInvoice(context.Background(), 1, []invoice.LineRequest{{ProductID: 1, Quantity: 1}})
	require.NoError(t, err)
	assert.NotNil(t, inv)
	assert.Len(t, store.created, 1)
}

func TestCalculate_IsDeterministic(t *testing.T) {
	svc, _, store, numbers, _ := newFixture()
	items := []invoice.LineRequest{{ProductID: 1, Quantity: 3}, {ProductID: 2, Quantity: 2}}

	first, err := svc.Calculate(context.Background(), 9, items)
	require.NoError(t, err)
	second, err := svc.Calculate(context.Background(), 9, items)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, first.Total.Equal(decimal.NewFromInt(1200)))
	assert.Empty(t, store.created)
	assert.Zero(t, numbers.calls)
}

func TestGetByIDAndDelete(t *testing.T) {
	svc, _, _, _, _ := newFixture()
	ctx := context.Background()

	created, err := svc.CreateInvoice(ctx, 1, []invoice.LineRequest{{ProductID: 1, Quantity: 1}})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
