package classifier

import (
	"FoodBridge/domain"
	"context"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const (
	minConfidence   = 0.85
	confidenceRange = 0.15

	DefaultFileDelay = time.Second
)

type (
	// Classifier stands in for image based food recognition. Labels are sampled from
	// Vocabulary; nothing inspects the image content.
	Classifier interface {
		LoadModel(ctx context.Context) error
		ClassifyFood(ctx context.Context, image []byte) ([]domain.Prediction, error)
		ClassifyFoodFromFile(ctx context.Context, fileName string) ([]domain.Prediction, error)
	}

	mockClassifier struct {
		loaded    atomic.Bool
		fileDelay time.Duration

		mu  sync.Mutex
		rng *rand.Rand
	}

	Option func(*mockClassifier)
)

func WithRand(rng *rand.Rand) Option {
	return func(c *mockClassifier) {
		c.rng = rng
	}
}

// WithFileDelay sets the simulated processing time of ClassifyFoodFromFile.
func WithFileDelay(d time.Duration) Option {
	return func(c *mockClassifier) {
		c.fileDelay = d
	}
}

func NewClassifier(opts ...Option) Classifier {
	c := &mockClassifier{
		fileDelay: DefaultFileDelay,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *mockClassifier) LoadModel(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.loaded.Store(true)
	return nil
}

func (c *mockClassifier) ClassifyFood(ctx context.Context, image []byte) ([]domain.Prediction, error) {
	if !c.loaded.Load() {
		return nil, domain.ErrModelNotLoaded
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	label := Vocabulary[c.rng.Intn(len(Vocabulary))]
	return []domain.Prediction{{ClassName: label, Probability: c.confidence()}}, nil
}

func (c *mockClassifier) ClassifyFoodFromFile(ctx context.Context, fileName string) ([]domain.Prediction, error) {
	if !c.loaded.Load() {
		return nil, domain.ErrModelNotLoaded
	}

	if c.fileDelay > 0 {
		timer := time.NewTimer(c.fileDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	label, ok := LabelFromFileName(fileName)
	if !ok {
		pool := fallbackPool()
		label = pool[c.rng.Intn(len(pool))]
	}
	return []domain.Prediction{{ClassName: label, Probability: c.confidence()}}, nil
}

// confidence must be called with mu held.
func (c *mockClassifier) confidence() float64 {
	return minConfidence + c.rng.Float64()*confidenceRange
}

// LabelFromFileName returns the first vocabulary entry contained in the file name.
func LabelFromFileName(fileName string) (string, bool) {
	name := strings.ToLower(fileName)
	for _, label := range Vocabulary {
		if strings.Contains(name, label) {
			return label, true
		}
	}
	return "", false
}

func fallbackPool() []string {
	pool := make([]string, 0, len(Vocabulary)-1)
	for _, label := range Vocabulary {
		if label != DefaultLabel {
			pool = append(pool, label)
		}
	}
	return pool
}

func GetFoodCategory(label string) domain.FoodCategory {
	lower := strings.ToLower(label)
	for _, rule := range categoryRules {
		if strings.Contains(lower, rule.key) {
			return rule.category
		}
	}
	return domain.CategoryOther
}

// GetEstimatedExpiry adds the category's shelf life in days to now, keeping now's time of day.
func GetEstimatedExpiry(category domain.FoodCategory, now time.Time) time.Time {
	days, ok := expiryDays[category]
	if !ok {
		days = defaultExpiryDays
	}
	return now.AddDate(0, 0, days)
}

func GetQuantityEstimate(label string, byteSize int64) domain.QuantityEstimate {
	lower := strings.ToLower(label)
	for _, rule := range quantityRules {
		if strings.Contains(lower, rule.key) {
			return rule.estimate
		}
	}

	switch {
	case byteSize > largeImageBytes:
		return domain.QuantityEstimate{Quantity: 2, Unit: "kilogram"}
	case byteSize > mediumImageBytes:
		return domain.QuantityEstimate{Quantity: 1, Unit: "kilogram"}
	default:
		return domain.QuantityEstimate{Quantity: 500, Unit: "gram"}
	}
}

// Classify runs the file-name path and fills in the derived estimates.
func Classify(ctx context.Context, c Classifier, fileName string, byteSize int64, now time.Time) (domain.ClassificationResult, error) {
	predictions, err := c.ClassifyFoodFromFile(ctx, fileName)
	if err != nil {
		return domain.ClassificationResult{}, err
	}
	return resultFromPrediction(predictions[0], byteSize, now), nil
}

// ClassifyImage runs the content path and fills in the derived estimates.
func ClassifyImage(ctx context.Context, c Classifier, image []byte, now time.Time) (domain.ClassificationResult, error) {
	if len(image) == 0 {
		return domain.ClassificationResult{}, domain.ErrEmptyImage
	}
	predictions, err := c.ClassifyFood(ctx, image)
	if err != nil {
		return domain.ClassificationResult{}, err
	}
	return resultFromPrediction(predictions[0], int64(len(image)), now), nil
}

func resultFromPrediction(p domain.Prediction, byteSize int64, now time.Time) domain.ClassificationResult {
	category := GetFoodCategory(p.ClassName)
	return domain.ClassificationResult{
		Label:           p.ClassName,
		Confidence:      p.Probability,
		Category:        category,
		EstimatedExpiry: GetEstimatedExpiry(category, now),
		Quantity:        GetQuantityEstimate(p.ClassName, byteSize),
	}
}
