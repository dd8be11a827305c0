// Package report implements the aggregation views behind the dashboard and
// transaction-list endpoints: date ordering, category filtering, per-month
// and per-category totals, and summary statistics.
//
// Every function here is pure and total: no input slice is ever mutated, no
// process-wide state is touched, and every valid input (including the empty
// slice) produces a defined result. Handlers may call them concurrently
// without coordination.
package report

import (
	"sort"
	"time"

	"fintrack/internal/models"
)

// monthLayout is the bucket key format for monthly grouping, e.g.
// "January 2024". Parsing it back fixes the day to the 1st, which keeps the
// chronological ordering of MonthlySeries unambiguous.
const monthLayout = "January 2006"

// MonthTotal is one chart point: a month-year label and the summed amount of
// every transaction dated in that month.
type MonthTotal struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// Summary holds the headline statistics for a set of transactions.
// Average is 0 when Count is 0.
type Summary struct {
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// SortByDateDesc returns a new slice ordered by date, most recent first.
// Transactions with equal dates keep their input order.
func SortByDateDesc(txs []models.Transaction) []models.Transaction {
	sorted := make([]models.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

// FilterByCategory returns the subsequence of txs matching category, order
// preserved. The CategoryAll sentinel returns the input unchanged. A value
// outside the known categories matches nothing and yields an empty result,
// not an error.
func FilterByCategory(txs []models.Transaction, category models.Category) []models.Transaction {
	if category == models.CategoryAll {
		return txs
	}
	filtered := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Category == category {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// GroupByMonth sums amounts into month-year buckets keyed by the
// transaction's calendar month, e.g. "January 2024". Only months with at
// least one transaction appear.
func GroupByMonth(txs []models.Transaction) map[string]float64 {
	buckets := make(map[string]float64)
	for _, tx := range txs {
		buckets[tx.Date.Format(monthLayout)] += tx.Amount
	}
	return buckets
}

// MonthlySeries converts the GroupByMonth buckets into chart points sorted
// by chronological month order, not by label.
func MonthlySeries(txs []models.Transaction) []MonthTotal {
	buckets := GroupByMonth(txs)

	series := make([]MonthTotal, 0, len(buckets))
	instants := make(map[string]time.Time, len(buckets))
	for month, amount := range buckets {
		// The layout carries no day, so parsing resolves to the 1st.
		instant, err := time.Parse(monthLayout, month)
		if err != nil {
			continue
		}
		instants[month] = instant
		series = append(series, MonthTotal{Month: month, Amount: amount})
	}

	sort.Slice(series, func(i, j int) bool {
		return instants[series[i].Month].Before(instants[series[j].Month])
	})
	return series
}

// GroupByCategory sums amounts per category. Categories with no
// transactions are absent from the result rather than present with zero.
func GroupByCategory(txs []models.Transaction) map[models.Category]float64 {
	totals := make(map[models.Category]float64)
	for _, tx := range txs {
		totals[tx.Category] += tx.Amount
	}
	return totals
}

// Summarize computes the grand total, count, and average amount. The empty
// input yields the zero Summary instead of dividing by zero.
func Summarize(txs []models.Transaction) Summary {
	s := Summary{Count: len(txs)}
	for _, tx := range txs {
		s.Total += tx.Amount
	}
	if s.Count > 0 {
		s.Average = s.Total / float64(s.Count)
	}
	return s
}
