package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	DonationStatusAvailable = "available"
	DonationStatusRequested = "requested"
	DonationStatusPickedUp  = "picked_up"
	DonationStatusDelivered = "delivered"
	DonationStatusCancelled = "cancelled"
)

var (
	MessageSuccessCreateDonation = "donation created successfully"
	MessageSuccessGetDonations   = "donations retrieved successfully"
	MessageSuccessCancelDonation = "donation cancelled successfully"

	MessageFailedCreateDonation = "failed to create donation"
	MessageFailedGetDonations   = "failed to retrieve donations"
	MessageFailedCancelDonation = "failed to cancel donation"

	ErrDonationNotFound           = errors.New("donation not found")
	ErrUnauthorizedDonationAccess = errors.New("unauthorized access to donation")
	ErrDonationNotAvailable       = errors.New("donation is no longer available")
	ErrInvalidExpiryDate          = errors.New("invalid expiry date")
	ErrMissingFoodName            = errors.New("food name or food image is required")
)

type (
	DonationRequest struct {
		FoodName    string                `json:"food_name" form:"food_name" validate:"omitempty,max=120"`
		Description string                `json:"description" form:"description" validate:"omitempty,max=500"`
		Quantity    float64               `json:"quantity" form:"quantity" validate:"omitempty,gt=0"`
		Unit        string                `json:"unit" form:"unit" validate:"required_with=Quantity"`
		ExpiryDate  string                `json:"expiry_date" form:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
		Lat         float64               `json:"lat" form:"lat" validate:"latitude"`
		Lng         float64               `json:"lng" form:"lng" validate:"longitude"`
		Address     string                `json:"address" form:"address" validate:"omitempty"`
		FoodImage   *multipart.FileHeader `json:"-" form:"food_image"`
	}

	Donation struct {
		ID           string    `json:"id"`
		DonorID      string    `json:"donor_id"`
		FoodName     string    `json:"food_name"`
		FoodCategory string    `json:"food_category"`
		Description  string    `json:"description"`
		Quantity     float64   `json:"quantity"`
		Unit         string    `json:"unit"`
		ExpiryDate   time.Time `json:"expiry_date"`
		Status       string    `json:"status"`
		ImageURL     string    `json:"image_url,omitempty"`
		Confidence   float64   `json:"confidence,omitempty"`
		Pickup       Location  `json:"pickup"`
		CreatedAt    time.Time `json:"created_at"`
		UpdatedAt    time.Time `json:"updated_at"`
	}
)
