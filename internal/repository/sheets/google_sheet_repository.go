package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/farmconnect/trader/internal/config"
	"github.com/farmconnect/trader/internal/domain/models"
)

const (
	summaryRange = "Summaries!A:G"
	dateLayout   = "2006-01-02"
)

// Repository mirrors daily summaries into a spreadsheet for people who live
// in Google Sheets rather than the API.
type Repository interface {
	AppendSummary(ctx context.Context, summary models.DailySummary) error
}

// GoogleSheetRepository implements Repository using the official Google
// Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Google Sheets backed repository instance.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Repository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendSummary appends one daily summary row to the mirror sheet.
func (r *GoogleSheetRepository) AppendSummary(ctx context.Context, summary models.DailySummary) error {
	values := []interface{}{
		summary.Date.Format(dateLayout),
		summary.GoodsCount,
		summary.CustomerCount,
		summary.TotalRevenue,
		summary.TotalCommission,
		summary.SalesAmount,
		summary.CreatedAt.Format(dateLayout),
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, summaryRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append summary into range %s: %w", summaryRange, err)
	}

	r.logger.Debug("summary appended to sheet", zap.Time("date", summary.Date))
	return nil
}
