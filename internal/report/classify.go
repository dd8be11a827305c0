package report

import "fintrack/internal/models"

// AmountTier labels how large a single transaction is, for status badges.
type AmountTier string

const (
	TierLow    AmountTier = "low"
	TierMedium AmountTier = "medium"
	TierHigh   AmountTier = "high"
)

// ClassifyAmount maps an amount to its tier. Thresholds are exclusive on
// the lower bound of each tier: exactly 500 is Low and exactly 1000 is
// Medium.
func ClassifyAmount(amount float64) AmountTier {
	switch {
	case amount > 1000:
		return TierHigh
	case amount > 500:
		return TierMedium
	default:
		return TierLow
	}
}

// CategoryMeta holds the display metadata for rendering a category.
type CategoryMeta struct {
	Icon       string `json:"icon"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

var categoryMeta = map[models.Category]CategoryMeta{
	models.CategoryDailyExpenses:    {Icon: "🚗", Background: "bg-blue-100", Text: "text-blue-600"},
	models.CategoryMiscellaneous:    {Icon: "📦", Background: "bg-gray-100", Text: "text-gray-600"},
	models.CategoryGroceriesAndFood: {Icon: "🛒", Background: "bg-green-100", Text: "text-green-600"},
	models.CategoryBills:            {Icon: "⚡", Background: "bg-yellow-100", Text: "text-yellow-600"},
}

// unknownMeta is returned for any value outside the category enumeration,
// so an unrecognized stored value renders as a neutral badge instead of
// crashing the lookup.
var unknownMeta = CategoryMeta{Icon: "❔", Background: "bg-gray-100", Text: "text-gray-500"}

// DisplayMetadata returns the display record for a category. It is total:
// unknown categories get the explicit fallback record.
func DisplayMetadata(category models.Category) CategoryMeta {
	if meta, ok := categoryMeta[category]; ok {
		return meta
	}
	return unknownMeta
}
