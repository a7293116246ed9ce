package repository

import (
	"context"
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/ericmurielchan/chanmkt/internal/entity"
)

type SupplierRepository struct {
	mu        sync.RWMutex
	suppliers map[uuid.UUID]entity.Supplier
	purchases map[uuid.UUID]entity.PurchaseItem
	supOrder  []uuid.UUID
	purOrder  []uuid.UUID
}

func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{
		suppliers: make(map[uuid.UUID]entity.Supplier),
		purchases: make(map[uuid.UUID]entity.PurchaseItem),
	}
}

func (r *SupplierRepository) CreateSupplier(_ context.Context, supplier entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.suppliers[supplier.ID] = supplier
	r.supOrder = append(r.supOrder, supplier.ID)

	return nil
}

func (r *SupplierRepository) GetSupplierByID(_ context.Context, id uuid.UUID) (entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	supplier, ok := r.suppliers[id]
	if !ok {
		return entity.Supplier{}, entity.ErrSupplierNotFound
	}

	return supplier, nil
}

func (r *SupplierRepository) ListSuppliers(_ context.Context) ([]entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	suppliers := make([]entity.Supplier, 0, len(r.supOrder))
	for _, id := range r.supOrder {
		suppliers = append(suppliers, r.suppliers[id])
	}

	return suppliers, nil
}

func (r *SupplierRepository) CreatePurchase(_ context.Context, item entity.PurchaseItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.suppliers[item.SupplierID]; !ok {
		return entity.ErrSupplierNotFound
	}

	r.purchases[item.ID] = item
	r.purOrder = append(r.purOrder, item.ID)

	return nil
}

func (r *SupplierRepository) UpdatePurchase(_ context.Context, item entity.PurchaseItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.purchases[item.ID]; !ok {
		return entity.ErrPurchaseNotFound
	}

	r.purchases[item.ID] = item

	return nil
}

func (r *SupplierRepository) ListPurchases(_ context.Context) ([]entity.PurchaseItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]entity.PurchaseItem, 0, len(r.purOrder))
	for _, id := range r.purOrder {
		items = append(items, r.purchases[id])
	}

	return items, nil
}
