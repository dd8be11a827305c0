package models

import "strings"

// Category is the closed set of classification tags a transaction can carry.
type Category string

const (
	CategoryDailyExpenses    Category = "daily_expenses"
	CategoryMiscellaneous    Category = "miscellaneous"
	CategoryGroceriesAndFood Category = "groceries_and_food"
	CategoryBills            Category = "bills"
)

// CategoryAll is the filter sentinel meaning "no category filter". It is
// never a valid value for a stored transaction.
const CategoryAll Category = "all"

// Categories lists every valid transaction category.
func Categories() []Category {
	return []Category{
		CategoryDailyExpenses,
		CategoryMiscellaneous,
		CategoryGroceriesAndFood,
		CategoryBills,
	}
}

// ParseCategory normalizes raw input (case, surrounding whitespace) and
// reports whether it names a valid transaction category. Normalization is
// applied at every boundary, write and read, so "Bills" and " bills " both
// match the stored value.
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	switch c {
	case CategoryDailyExpenses, CategoryMiscellaneous, CategoryGroceriesAndFood, CategoryBills:
		return c, true
	}
	return "", false
}

// ParseFilterCategory is ParseCategory extended with the "all" sentinel.
func ParseFilterCategory(raw string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c == CategoryAll {
		return c, true
	}
	return ParseCategory(raw)
}

// Valid reports whether c is one of the four transaction categories.
func (c Category) Valid() bool {
	_, ok := ParseCategory(string(c))
	return ok
}
