package domain

import (
	"errors"
	"time"
)

const (
	ActivitySignup   = "signup"
	ActivityLogin    = "login"
	ActivityDonation = "donation"
	ActivityPickup   = "pickup"
	ActivityDelivery = "delivery"
)

var (
	MessageSuccessGetActivities = "activities retrieved successfully"
	MessageFailedGetActivities  = "failed to retrieve activities"
	MessageNoActivities         = "No activities yet. Start by making a donation or joining a mission!"

	ErrActivityStorageRead = errors.New("failed to read user activities")
	ErrMalformedActivity   = errors.New("malformed activity record")
	ErrInvalidActivityType = errors.New("invalid activity type")
)

type (
	ActivityEntry struct {
		ID          string    `json:"id"`
		Type        string    `json:"type"`
		Description string    `json:"description"`
		Timestamp   time.Time `json:"timestamp"`
		Icon        string    `json:"icon"`
		Color       string    `json:"color"`
	}

	ActivityFeed struct {
		Activities   []ActivityEntry `json:"activities"`
		CountsByType map[string]int  `json:"counts_by_type"`
		Empty        bool            `json:"empty"`
		EmptyMessage string          `json:"empty_message,omitempty"`
	}
)
