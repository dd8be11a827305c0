package services

import (
	"sort"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/report"
)

// reportService loads transaction snapshots and runs the report engine over
// them. Each call reads one committed snapshot; the engine itself holds no
// state.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

func (s *reportService) snapshot(ownerID *string) ([]models.Transaction, error) {
	q := s.db.Model(&models.Transaction{})
	if ownerID != nil {
		q = q.Where("user_id = ?", *ownerID)
	}
	var transactions []models.Transaction
	if err := q.Order("created_at ASC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return transactions, nil
}

// Summary returns total, count, and average for the owner's transactions.
func (s *reportService) Summary(ownerID *string) (*report.Summary, error) {
	transactions, err := s.snapshot(ownerID)
	if err != nil {
		return nil, err
	}
	summary := report.Summarize(transactions)
	return &summary, nil
}

// MonthlyTotals returns the sparse month buckets plus the chronologically
// ordered chart series derived from them.
func (s *reportService) MonthlyTotals(ownerID *string) (map[string]float64, []report.MonthTotal, error) {
	transactions, err := s.snapshot(ownerID)
	if err != nil {
		return nil, nil, err
	}
	return report.GroupByMonth(transactions), report.MonthlySeries(transactions), nil
}

// CategoryTotals returns per-category totals with display metadata, largest
// total first.
func (s *reportService) CategoryTotals(ownerID *string) ([]CategoryBreakdown, error) {
	transactions, err := s.snapshot(ownerID)
	if err != nil {
		return nil, err
	}

	totals := report.GroupByCategory(transactions)
	breakdown := make([]CategoryBreakdown, 0, len(totals))
	for category, amount := range totals {
		breakdown = append(breakdown, CategoryBreakdown{
			Category: category,
			Amount:   amount,
			Meta:     report.DisplayMetadata(category),
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount != breakdown[j].Amount {
			return breakdown[i].Amount > breakdown[j].Amount
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown, nil
}
