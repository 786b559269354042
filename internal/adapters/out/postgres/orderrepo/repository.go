package orderrepo

import (
	"context"
	"errors"

	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order with its line items and returns the stored aggregate
// carrying the identifiers assigned by the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.NewDuplicateInvoiceNumberErrorWithCause(dto.InvoiceNumber, err)
		}
		return nil, err
	}

	return r.Get(ctx, dto.ID)
}

// Update saves an existing order and reconciles its line items: new lines
// are inserted, changed lines overwritten, and lines no longer on the
// aggregate deleted. Returns the stored aggregate.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select(
			"supplier_id", "invoice_number", "issued_at", "delivered_at",
			"subtotal", "tax", "total", "status", "notes", "updated_at",
		).
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, errs.NewDuplicateInvoiceNumberErrorWithCause(dto.InvoiceNumber, result.Error)
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order", dto.ID)
	}

	if err := r.reconcileLineItems(ctx, dto); err != nil {
		return nil, err
	}

	return r.Get(ctx, dto.ID)
}

func (r *GormOrderRepository) reconcileLineItems(ctx context.Context, dto OrderDTO) error {
	var existingIDs []int64
	err := r.db.WithContext(ctx).
		Model(&LineItemDTO{}).
		Where("order_id = ?", dto.ID).
		Pluck("id", &existingIDs).Error
	if err != nil {
		return err
	}

	kept := make(map[int64]struct{}, len(dto.LineItems))
	for i := range dto.LineItems {
		li := &dto.LineItems[i]
		li.OrderID = dto.ID

		if li.ID == 0 {
			if err = r.db.WithContext(ctx).Create(li).Error; err != nil {
				return err
			}
			continue
		}

		kept[li.ID] = struct{}{}
		if err = r.db.WithContext(ctx).Save(li).Error; err != nil {
			return err
		}
	}

	removed := make([]int64, 0)
	for _, id := range existingIDs {
		if _, ok := kept[id]; !ok {
			removed = append(removed, id)
		}
	}
	if len(removed) > 0 {
		if err = r.db.WithContext(ctx).Delete(&LineItemDTO{}, "id IN ?", removed).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves an order by ID with its line items eagerly loaded.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("LineItems").First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves an order by ID like Get, locking the order row with
// SELECT FOR UPDATE. Lifecycle commands load the aggregate through this
// method so two transactions mutating the same order serialize instead of
// overwriting each other.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("LineItems").
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an order and all of its line items.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&LineItemDTO{}, "order_id = ?", id).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}

	return nil
}

// FindByInvoiceNumber retrieves all orders whose invoice number contains the
// given fragment, ignoring case.
func (r *GormOrderRepository) FindByInvoiceNumber(ctx context.Context, fragment string) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems").
		Where("invoice_number ILIKE ?", "%"+fragment+"%").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
