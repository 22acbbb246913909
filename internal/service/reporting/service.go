package reporting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/farmconnect/trader/internal/domain/models"
	"github.com/farmconnect/trader/internal/repository/mongodb"
)

// GoodsReport is the filtered goods view plus its derived aggregates.
type GoodsReport struct {
	Records    []models.GoodsRecord `json:"records"`
	Totals     models.Totals        `json:"totals"`
	TotalCount int                  `json:"total_count"`
}

// CustomerReport is the filtered customer view.
type CustomerReport struct {
	Records    []models.CustomerRecord `json:"records"`
	TotalCount int                     `json:"total_count"`
}

// Service turns ledger snapshots into reports. Each call re-fetches the
// whole collection; nothing is cached between requests.
type Service struct {
	repo   mongodb.Repository
	logger *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(repository mongodb.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repository, logger: logger}
}

// GoodsReport fetches the goods ledger, applies the criteria and aggregates
// the filtered view.
func (s *Service) GoodsReport(ctx context.Context, criteria models.Criteria) (GoodsReport, error) {
	records, err := s.repo.ListGoods(ctx)
	if err != nil {
		return GoodsReport{}, fmt.Errorf("load goods ledger: %w", err)
	}

	filtered := FilterGoods(records, criteria)
	s.logger.Debug("goods report computed",
		zap.Int("fetched", len(records)),
		zap.Int("matched", len(filtered)))

	return GoodsReport{
		Records:    filtered,
		Totals:     Aggregate(filtered),
		TotalCount: len(records),
	}, nil
}

// CustomerReport fetches the customer ledger and applies the criteria.
func (s *Service) CustomerReport(ctx context.Context, criteria models.Criteria) (CustomerReport, error) {
	records, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return CustomerReport{}, fmt.Errorf("load customer ledger: %w", err)
	}

	filtered := FilterCustomers(records, criteria)
	s.logger.Debug("customer report computed",
		zap.Int("fetched", len(records)),
		zap.Int("matched", len(filtered)))

	return CustomerReport{
		Records:    filtered,
		TotalCount: len(records),
	}, nil
}

// Summarize aggregates both ledgers for one calendar day. Used by the
// scheduled daily summary job.
func (s *Service) Summarize(ctx context.Context, day time.Time) (models.DailySummary, error) {
	criteria := models.Criteria{Date: day}

	goods, err := s.GoodsReport(ctx, criteria)
	if err != nil {
		return models.DailySummary{}, err
	}
	customers, err := s.CustomerReport(ctx, criteria)
	if err != nil {
		return models.DailySummary{}, err
	}

	var sales float64
	for _, rec := range customers.Records {
		sales += rec.Price
	}

	return models.DailySummary{
		Date:            time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()),
		GoodsCount:      len(goods.Records),
		CustomerCount:   len(customers.Records),
		TotalRevenue:    goods.Totals.Revenue,
		TotalCommission: goods.Totals.Commission,
		SalesAmount:     sales,
		CreatedAt:       time.Now(),
	}, nil
}
