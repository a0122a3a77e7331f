package donation

import (
	"FoodBridge/entities"
	"context"

	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		GetDonationsByStatus(ctx context.Context, status string, page, limit int) ([]*entities.Donation, int64, error)
		GetUserDonations(ctx context.Context, userID string, page, limit int) ([]*entities.Donation, int64, error)
		// UpdateDonationStatus only moves a donation that is still in status from.
		UpdateDonationStatus(ctx context.Context, id string, from string, to string) (bool, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) paginate(query *gorm.DB, page, limit int) ([]*entities.Donation, int64, error) {
	var donations []*entities.Donation
	var count int64

	if err := query.Session(&gorm.Session{}).Model(&entities.Donation{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, count, nil
}

func (r *donationRepository) GetDonationsByStatus(ctx context.Context, status string, page, limit int) ([]*entities.Donation, int64, error) {
	query := r.db.WithContext(ctx).Where("status = ?", status)
	return r.paginate(query, page, limit)
}

func (r *donationRepository) GetUserDonations(ctx context.Context, userID string, page, limit int) ([]*entities.Donation, int64, error) {
	query := r.db.WithContext(ctx).Where("donor_id = ?", userID)
	return r.paginate(query, page, limit)
}

func (r *donationRepository) UpdateDonationStatus(ctx context.Context, id string, from string, to string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
