package user

import (
	"FoodBridge/domain"
	"FoodBridge/entities"
	"FoodBridge/pkg/activity"
	"FoodBridge/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (*domain.UserResponse, error)
	}

	userService struct {
		userRepository  UserRepository
		activityService activity.ActivityService
		jwtService      jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, activityService activity.ActivityService, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository:  userRepository,
		activityService: activityService,
		jwtService:      jwtService,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	_, err := s.userRepository.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var location entities.Location
	if req.Location != nil {
		location = entities.Location{Lat: req.Location.Lat, Lng: req.Location.Lng, Address: req.Location.Address}
	}

	user := &entities.User{
		Name:     req.Name,
		Email:    email,
		Password: string(hashed),
		Role:     req.Role,
		Phone:    req.Phone,
		Location: location,
	}

	switch req.Role {
	case domain.RoleDonor:
	case domain.RoleNGO:
		user.NGO = &entities.NGO{
			Name:               req.OrganizationName,
			RegistrationNumber: req.RegistrationNumber,
			Location:           location,
		}
	case domain.RoleVolunteer:
		user.Volunteer = &entities.Volunteer{
			VehicleType: req.VehicleType,
			Available:   true,
			Location:    location,
		}
	default:
		return nil, domain.ErrInvalidRole
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.record(ctx, user.ID.String(), domain.ActivitySignup, fmt.Sprintf("Joined FoodBridge as %s", req.Role))

	return &domain.AuthResponse{
		Token: s.jwtService.GenerateTokenUser(user.ID.String(), user.Role),
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	s.record(ctx, user.ID.String(), domain.ActivityLogin, "Signed in")

	return &domain.AuthResponse{
		Token: s.jwtService.GenerateTokenUser(user.ID.String(), user.Role),
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	res := toUserResponse(user)
	return &res, nil
}

// record never fails the calling operation.
func (s *userService) record(ctx context.Context, userID, activityType, description string) {
	if s.activityService == nil {
		return
	}
	if err := s.activityService.RecordActivity(ctx, userID, activityType, description); err != nil {
		log.Warnf("record %s activity for %s: %v", activityType, userID, err)
	}
}

func toUserResponse(user *entities.User) domain.UserResponse {
	res := domain.UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
	}
	if user.Location != (entities.Location{}) {
		res.Location = &domain.Location{Lat: user.Location.Lat, Lng: user.Location.Lng, Address: user.Location.Address}
	}
	return res
}
