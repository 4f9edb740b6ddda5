package usecase_test

import (
	"context"
	"errors"

	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
)

type memProducts struct {
	byID        map[int64]*entity.Product
	nextID      int64
	lastCatIDs  []int64
	deleteCalls int
}

func newMemProducts() *memProducts { return &memProducts{byID: map[int64]*entity.Product{}} }

func (m *memProducts) Create(_ context.Context, p *entity.Product, categoryIDs []int64) error {
	m.nextID++
	p.ID = m.nextID
	m.lastCatIDs = categoryIDs
	m.byID[p.ID] = p
	return nil
}
func (m *memProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	return m.byID[id], nil
}
func (m *memProducts) GetByIDs(_ context.Context, ids []int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := m.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
func (m *memProducts) Update(_ context.Context, p *entity.Product, categoryIDs []int64) error {
	m.lastCatIDs = categoryIDs
	m.byID[p.ID] = p
	return nil
}
func (m *memProducts) List(context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(m.byID))
	for _, p := range m.byID {
		out = append(out, p)
	}
	return out, nil
}
func (m *memProducts) Delete(_ context.Context, id int64) error {
	m.deleteCalls++
	delete(m.byID, id)
	return nil
}

type memBrands struct {
	byID   map[int64]*entity.Brand
	nextID int64
}

func newMemBrands() *memBrands { return &memBrands{byID: map[int64]*entity.Brand{}} }

func (m *memBrands) Create(_ context.Context, b *entity.Brand) error {
	m.nextID++
	b.ID = m.nextID
	m.byID[b.ID] = b
	return nil
}
func (m *memBrands) GetByID(_ context.Context, id int64) (*entity.Brand, error) {
	return m.byID[id], nil
}
func (m *memBrands) GetByName(_ context.Context, name string) (*entity.Brand, error) {
	for _, b := range m.byID {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, nil
}
func (m *memBrands) Update(_ context.Context, b *entity.Brand) error {
	m.byID[b.ID] = b
	return nil
}
func (m *memBrands) List(context.Context) ([]*entity.Brand, error) {
	out := make([]*entity.Brand, 0, len(m.byID))
	for _, b := range m.byID {
		out = append(out, b)
	}
	return out, nil
}
func (m *memBrands) Delete(_ context.Context, id int64) error {
	delete(m.byID, id)
	return nil
}

type memUsers struct {
	byID   map[int64]*entity.User
	nextID int64
}

func newMemUsers() *memUsers { return &memUsers{byID: map[int64]*entity.User{}} }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.nextID++
	u.ID = m.nextID
	m.byID[u.ID] = u
	return nil
}
func (m *memUsers) GetByID(_ context.Context, id int64) (*entity.User, error) { return m.byID[id], nil }
func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memUsers) Update(_ context.Context, u *entity.User) error {
	m.byID[u.ID] = u
	return nil
}
func (m *memUsers) List(context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(m.byID))
	for _, u := range m.byID {
		out = append(out, u)
	}
	return out, nil
}
func (m *memUsers) Delete(_ context.Context, id int64) error {
	delete(m.byID, id)
	return nil
}

type memLogs struct {
	entries []*entity.AuditLog
	err     error
}

func (m *memLogs) Create(_ context.Context, l *entity.AuditLog) error {
	if m.err != nil {
		return m.err
	}
	l.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, l)
	return nil
}
func (m *memLogs) List(context.Context) ([]*entity.AuditLog, error) { return m.entries, nil }

type staticCategories struct{ items []*entity.Category }

func (s staticCategories) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	for _, c := range s.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (s staticCategories) List(context.Context) ([]*entity.Category, error) { return s.items, nil }

type failingProviders struct{}

func (failingProviders) GetByID(context.Context, int64) (*entity.Provider, error) {
	return nil, errors.New("db caída")
}
func (failingProviders) List(context.Context) ([]*entity.Provider, error) {
	return nil, errors.New("db caída")
}
