package domain

import (
	"errors"
	"time"
)

type FoodCategory string

const (
	CategoryBread      FoodCategory = "bread"
	CategoryFruits     FoodCategory = "fruits"
	CategoryVegetables FoodCategory = "vegetables"
	CategoryDairy      FoodCategory = "dairy"
	CategoryMeat       FoodCategory = "meat"
	CategoryCanned     FoodCategory = "canned"
	CategoryBaked      FoodCategory = "baked"
	CategoryGrains     FoodCategory = "grains"
	CategoryOther      FoodCategory = "other"
)

var (
	MessageSuccessClassifyFood = "food classified successfully"
	MessageFailedClassifyFood  = "failed to classify food"

	ErrModelNotLoaded = errors.New("classification model not loaded")
	ErrEmptyImage     = errors.New("image is empty")
)

type (
	Prediction struct {
		ClassName   string  `json:"class_name"`
		Probability float64 `json:"probability"`
	}

	QuantityEstimate struct {
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}

	ClassificationResult struct {
		Label           string           `json:"label"`
		Confidence      float64          `json:"confidence"`
		Category        FoodCategory     `json:"category"`
		EstimatedExpiry time.Time        `json:"estimated_expiry"`
		Quantity        QuantityEstimate `json:"quantity"`
		ImageURL        string           `json:"image_url,omitempty"`
	}
)
