package user

import (
	"FoodBridge/entities"
	"context"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		// CreateUser also inserts the NGO or Volunteer profile attached to the user.
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetNGOByUserID(ctx context.Context, userID string) (*entities.NGO, error)
		GetVolunteerByUserID(ctx context.Context, userID string) (*entities.Volunteer, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Preload("NGO").
		Preload("Volunteer").
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetNGOByUserID(ctx context.Context, userID string) (*entities.NGO, error) {
	var ngo entities.NGO
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&ngo).Error; err != nil {
		return nil, err
	}
	return &ngo, nil
}

func (r *userRepository) GetVolunteerByUserID(ctx context.Context, userID string) (*entities.Volunteer, error) {
	var volunteer entities.Volunteer
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&volunteer).Error; err != nil {
		return nil, err
	}
	return &volunteer, nil
}
