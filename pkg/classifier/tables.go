package classifier

import "FoodBridge/domain"

// DefaultLabel is the label the file-name fallback never picks.
const DefaultLabel = "bread"

// Vocabulary is the fixed label set of the classification model. Order matters for
// file-name inference: the first entry contained in the name wins.
var Vocabulary = []string{
	"bread",
	"apple",
	"banana",
	"orange",
	"tomato",
	"carrot",
	"potato",
	"lettuce",
	"milk",
	"cheese",
	"yogurt",
	"chicken",
	"beef",
	"fish",
	"rice",
	"pasta",
	"cake",
	"cookie",
	"canned soup",
	"sandwich",
}

type categoryRule struct {
	key      string
	category domain.FoodCategory
}

// categoryRules is matched top to bottom; the first key contained in the label wins.
var categoryRules = []categoryRule{
	{"bread", domain.CategoryBread},
	{"toast", domain.CategoryBread},
	{"bagel", domain.CategoryBread},
	{"baguette", domain.CategoryBread},
	{"apple", domain.CategoryFruits},
	{"banana", domain.CategoryFruits},
	{"orange", domain.CategoryFruits},
	{"grape", domain.CategoryFruits},
	{"berry", domain.CategoryFruits},
	{"mango", domain.CategoryFruits},
	{"tomato", domain.CategoryVegetables},
	{"carrot", domain.CategoryVegetables},
	{"potato", domain.CategoryVegetables},
	{"lettuce", domain.CategoryVegetables},
	{"onion", domain.CategoryVegetables},
	{"salad", domain.CategoryVegetables},
	{"milk", domain.CategoryDairy},
	{"cheese", domain.CategoryDairy},
	{"yogurt", domain.CategoryDairy},
	{"butter", domain.CategoryDairy},
	{"chicken", domain.CategoryMeat},
	{"beef", domain.CategoryMeat},
	{"pork", domain.CategoryMeat},
	{"fish", domain.CategoryMeat},
	{"can", domain.CategoryCanned},
	{"soup", domain.CategoryCanned},
	{"beans", domain.CategoryCanned},
	{"cake", domain.CategoryBaked},
	{"cookie", domain.CategoryBaked},
	{"muffin", domain.CategoryBaked},
	{"pastry", domain.CategoryBaked},
	{"rice", domain.CategoryGrains},
	{"pasta", domain.CategoryGrains},
	{"cereal", domain.CategoryGrains},
	{"oat", domain.CategoryGrains},
}

// expiryDays is keyed by category; categories missing here use defaultExpiryDays.
var expiryDays = map[domain.FoodCategory]int{
	domain.CategoryBread:      3,
	domain.CategoryFruits:     7,
	domain.CategoryVegetables: 5,
	domain.CategoryDairy:      7,
	domain.CategoryMeat:       3,
	domain.CategoryCanned:     365,
	domain.CategoryBaked:      4,
	domain.CategoryGrains:     180,
}

const defaultExpiryDays = 7

type quantityRule struct {
	key      string
	estimate domain.QuantityEstimate
}

var quantityRules = []quantityRule{
	{"bread", domain.QuantityEstimate{Quantity: 1, Unit: "loaf"}},
	{"apple", domain.QuantityEstimate{Quantity: 6, Unit: "piece"}},
	{"banana", domain.QuantityEstimate{Quantity: 6, Unit: "piece"}},
	{"orange", domain.QuantityEstimate{Quantity: 4, Unit: "piece"}},
	{"tomato", domain.QuantityEstimate{Quantity: 1, Unit: "kilogram"}},
	{"carrot", domain.QuantityEstimate{Quantity: 1, Unit: "kilogram"}},
	{"potato", domain.QuantityEstimate{Quantity: 2, Unit: "kilogram"}},
	{"lettuce", domain.QuantityEstimate{Quantity: 1, Unit: "head"}},
	{"milk", domain.QuantityEstimate{Quantity: 1, Unit: "liter"}},
	{"cheese", domain.QuantityEstimate{Quantity: 500, Unit: "gram"}},
	{"yogurt", domain.QuantityEstimate{Quantity: 4, Unit: "cup"}},
	{"chicken", domain.QuantityEstimate{Quantity: 1, Unit: "kilogram"}},
	{"beef", domain.QuantityEstimate{Quantity: 1, Unit: "kilogram"}},
	{"fish", domain.QuantityEstimate{Quantity: 1, Unit: "kilogram"}},
	{"rice", domain.QuantityEstimate{Quantity: 5, Unit: "kilogram"}},
	{"pasta", domain.QuantityEstimate{Quantity: 500, Unit: "gram"}},
	{"cake", domain.QuantityEstimate{Quantity: 1, Unit: "piece"}},
	{"cookie", domain.QuantityEstimate{Quantity: 12, Unit: "piece"}},
	{"can", domain.QuantityEstimate{Quantity: 3, Unit: "can"}},
	{"sandwich", domain.QuantityEstimate{Quantity: 4, Unit: "piece"}},
}

const (
	largeImageBytes  = 1_000_000
	mediumImageBytes = 500_000
)
