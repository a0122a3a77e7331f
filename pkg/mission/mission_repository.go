package mission

import (
	"FoodBridge/domain"
	"FoodBridge/entities"
	"context"

	"gorm.io/gorm"
)

type (
	// Transition moves a mission out of From. Updates holds the mission columns to set
	// and DonationStatus, when not empty, is applied to the linked donation in the same
	// transaction.
	Transition struct {
		From           string
		Updates        map[string]any
		DonationStatus string
	}

	MissionRepository interface {
		// CreateMission claims an available donation and opens a mission for it atomically.
		CreateMission(ctx context.Context, mission *entities.Mission) error
		GetMissionByID(ctx context.Context, id string) (*entities.Mission, error)
		GetMissionsByNGO(ctx context.Context, ngoID string) ([]*entities.Mission, error)
		GetMissionsByVolunteer(ctx context.Context, volunteerID string) ([]*entities.Mission, error)
		GetMissionsByStatus(ctx context.Context, status string) ([]*entities.Mission, error)
		UpdateMission(ctx context.Context, mission *entities.Mission, t Transition) (bool, error)
	}

	missionRepository struct {
		db *gorm.DB
	}
)

func NewMissionRepository(db *gorm.DB) MissionRepository {
	return &missionRepository{db: db}
}

func (r *missionRepository) CreateMission(ctx context.Context, mission *entities.Mission) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Donation{}).
			Where("id = ? AND status = ?", mission.DonationID, domain.DonationStatusAvailable).
			Update("status", domain.DonationStatusRequested)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrDonationNotAvailable
		}
		return tx.Create(mission).Error
	})
}

func (r *missionRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Donation").Preload("NGO")
}

func (r *missionRepository) GetMissionByID(ctx context.Context, id string) (*entities.Mission, error) {
	var mission entities.Mission
	if err := r.withRelations(ctx).Where("id = ?", id).First(&mission).Error; err != nil {
		return nil, err
	}
	return &mission, nil
}

func (r *missionRepository) find(query *gorm.DB) ([]*entities.Mission, error) {
	var missions []*entities.Mission
	if err := query.Order("created_at DESC").Find(&missions).Error; err != nil {
		return nil, err
	}
	return missions, nil
}

func (r *missionRepository) GetMissionsByNGO(ctx context.Context, ngoID string) ([]*entities.Mission, error) {
	return r.find(r.withRelations(ctx).Where("ngo_id = ?", ngoID))
}

func (r *missionRepository) GetMissionsByVolunteer(ctx context.Context, volunteerID string) ([]*entities.Mission, error) {
	return r.find(r.withRelations(ctx).Where("volunteer_id = ?", volunteerID))
}

func (r *missionRepository) GetMissionsByStatus(ctx context.Context, status string) ([]*entities.Mission, error) {
	return r.find(r.withRelations(ctx).Where("status = ?", status))
}

func (r *missionRepository) UpdateMission(ctx context.Context, mission *entities.Mission, t Transition) (bool, error) {
	var moved bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Mission{}).
			Where("id = ? AND status = ?", mission.ID, t.From).
			Updates(t.Updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		moved = true

		if t.DonationStatus == "" {
			return nil
		}
		return tx.Model(&entities.Donation{}).
			Where("id = ?", mission.DonationID).
			Update("status", t.DonationStatus).Error
	})
	return moved, err
}
