package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ericmurielchan/chanmkt/internal/entity"
)

func (s *Service) CreateSupplier(ctx context.Context, name, category, email, phone string) (entity.Supplier, error) {
	actor, err := s.actor(ctx, entity.PermissionManageSuppliers)
	if err != nil {
		return entity.Supplier{}, err
	}

	supplier := entity.Supplier{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      name,
		Category:  category,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now(),
	}

	err = supplier.Validate()
	if err != nil {
		return entity.Supplier{}, err
	}

	err = s.supplierRepo.CreateSupplier(ctx, supplier)
	if err != nil {
		return entity.Supplier{}, err
	}

	slog.InfoContext(ctx, "supplier created", "supplier_id", supplier.ID, "actor_id", actor.ID)

	return supplier, nil
}

func (s *Service) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	_, err := s.actor(ctx, entity.PermissionManageSuppliers)
	if err != nil {
		return nil, err
	}

	return s.supplierRepo.ListSuppliers(ctx)
}

func (s *Service) CreatePurchase(ctx context.Context, supplierID uuid.UUID, description string, price decimal.Decimal, dueDate time.Time) (entity.PurchaseItem, error) {
	actor, err := s.actor(ctx, entity.PermissionManageSuppliers)
	if err != nil {
		return entity.PurchaseItem{}, err
	}

	item := entity.PurchaseItem{
		ID:          uuid.Must(uuid.NewV4()),
		SupplierID:  supplierID,
		Description: description,
		Price:       price,
		DueDate:     dueDate,
		CreatedAt:   time.Now(),
	}

	err = item.Validate()
	if err != nil {
		return entity.PurchaseItem{}, err
	}

	err = s.supplierRepo.CreatePurchase(ctx, item)
	if err != nil {
		return entity.PurchaseItem{}, err
	}

	slog.InfoContext(ctx, "purchase created", "purchase_id", item.ID, "actor_id", actor.ID)

	return item, nil
}

func (s *Service) ListPurchases(ctx context.Context) ([]entity.PurchaseItem, error) {
	_, err := s.actor(ctx, entity.PermissionManageSuppliers)
	if err != nil {
		return nil, err
	}

	return s.supplierRepo.ListPurchases(ctx)
}

func (s *Service) MarkPurchasePaid(ctx context.Context, id uuid.UUID) (entity.PurchaseItem, error) {
	actor, err := s.actor(ctx, entity.PermissionManageSuppliers)
	if err != nil {
		return entity.PurchaseItem{}, err
	}

	items, err := s.supplierRepo.ListPurchases(ctx)
	if err != nil {
		return entity.PurchaseItem{}, err
	}

	for _, item := range items {
		if item.ID != id {
			continue
		}

		item.Paid = true

		err = s.supplierRepo.UpdatePurchase(ctx, item)
		if err != nil {
			return entity.PurchaseItem{}, err
		}

		slog.InfoContext(ctx, "purchase paid", "purchase_id", item.ID, "actor_id", actor.ID)

		return item, nil
	}

	return entity.PurchaseItem{}, entity.ErrPurchaseNotFound
}
