package handlers

import (
	"FoodBridge/domain"
	"FoodBridge/internal/api/presenters"
	"FoodBridge/internal/utils/storage"
	"FoodBridge/pkg/classifier"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// maxImageBytes bounds what ClassifyImage reads into memory.
const maxImageBytes = 10 << 20

type (
	ClassifierHandler interface {
		ClassifyFile(c *fiber.Ctx) error
		ClassifyImage(c *fiber.Ctx) error
	}

	classifierHandler struct {
		classifier classifier.Classifier
		storage    storage.Storage
	}
)

// NewClassifierHandler accepts a nil storage; scans are then not kept.
func NewClassifierHandler(foodClassifier classifier.Classifier, objectStorage storage.Storage) ClassifierHandler {
	return &classifierHandler{
		classifier: foodClassifier,
		storage:    objectStorage,
	}
}

// ClassifyFile infers the food from the uploaded file name and fills in category,
// expiry and quantity estimates.
func (h *classifierHandler) ClassifyFile(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, domain.ErrEmptyImage)
	}

	result, err := classifier.Classify(c.Context(), h.classifier, file.Filename, file.Size, time.Now())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedClassifyFood, err)
	}

	if h.storage != nil {
		key, err := h.storage.UploadFile(c.Context(), fmt.Sprintf("scan-%s", uuid.NewString()), file, "scans", storage.AllowImage...)
		if err != nil {
			log.Warnf("keep scan %s: %v", file.Filename, err)
		} else {
			result.ImageURL = h.storage.GetPublicLinkKey(key)
		}
	}

	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessClassifyFood)
}

func (h *classifierHandler) ClassifyImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, domain.ErrEmptyImage)
	}

	f, err := file.Open()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClassifyFood, err)
	}
	defer f.Close()

	image, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClassifyFood, err)
	}

	result, err := classifier.ClassifyImage(c.Context(), h.classifier, image, time.Now())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedClassifyFood, err)
	}
	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessClassifyFood)
}
