package domain

import (
	"errors"
	"time"
)

const (
	MissionStatusPending   = "pending"
	MissionStatusAssigned  = "assigned"
	MissionStatusPickedUp  = "picked_up"
	MissionStatusDelivered = "delivered"
	MissionStatusCancelled = "cancelled"
)

var (
	MessageSuccessRequestDonation = "donation requested successfully"
	MessageSuccessGetMissions     = "missions retrieved successfully"
	MessageSuccessUpdateMission   = "mission updated successfully"

	MessageFailedRequestDonation = "failed to request donation"
	MessageFailedGetMissions     = "failed to retrieve missions"
	MessageFailedUpdateMission   = "failed to update mission"

	ErrMissionNotFound           = errors.New("mission not found")
	ErrNGOProfileNotFound        = errors.New("ngo profile not found")
	ErrUnauthorizedMissionAccess = errors.New("unauthorized access to mission")
	ErrInvalidMissionTransition  = errors.New("invalid mission status transition")
)

type (
	RequestDonationRequest struct {
		DonationID string `json:"donation_id" validate:"required,uuid"`
		Notes      string `json:"notes" validate:"omitempty,max=500"`
	}

	Mission struct {
		ID          string     `json:"id"`
		DonationID  string     `json:"donation_id"`
		NGOID       string     `json:"ngo_id"`
		NGOName     string     `json:"ngo_name,omitempty"`
		VolunteerID string     `json:"volunteer_id,omitempty"`
		Status      string     `json:"status"`
		Notes       string     `json:"notes,omitempty"`
		Pickup      Location   `json:"pickup"`
		Delivery    Location   `json:"delivery"`
		Donation    *Donation  `json:"donation,omitempty"`
		PickedUpAt  *time.Time `json:"picked_up_at,omitempty"`
		DeliveredAt *time.Time `json:"delivered_at,omitempty"`
		CreatedAt   time.Time  `json:"created_at"`
	}
)
