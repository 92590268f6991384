package repository

import (
	"context"

	"gorm.io/gorm"

	"auth-service/internal/domain"
)

// InvoiceRepository handles invoice data access
type InvoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new InvoiceRepository
func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Create creates a new invoice
func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

// FindLatestByUserAndShop finds the most recent invoice for the given
// (user, shop) pair. Returns gorm.ErrRecordNotFound when none exists.
func (r *InvoiceRepository) FindLatestByUserAndShop(ctx context.Context, userID, shopID int64) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND shop_id = ?", userID, shopID).
		Order("created_at DESC").
		Limit(1).
		First(&invoice).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}
