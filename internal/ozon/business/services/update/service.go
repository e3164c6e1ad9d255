package update

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ozonsync_api/internal/ozon/business/models"
	"ozonsync_api/internal/ozon/business/services/get"
	"ozonsync_api/pkg/logger"
)

// SyncService связывает этапы синхронизации: resolve -> classify ->
// plan -> dispatch.
type SyncService struct {
	products   *get.ProductListService
	freight    *get.FreightService
	planner    *Planner
	dispatcher *Dispatcher
	log        logger.Logger
}

func NewSyncService(products *get.ProductListService, freight *get.FreightService, planner *Planner, dispatcher *Dispatcher, log logger.Logger) *SyncService {
	return &SyncService{
		products:   products,
		freight:    freight,
		planner:    planner,
		dispatcher: dispatcher,
		log:        log,
	}
}

// Run synchronizes the given rows against the marketplace at the given
// exchange rate. Resolver and classifier failures abort the run before
// any update is sent; a failed batch only costs its own rows.
func (s *SyncService) Run(ctx context.Context, rate decimal.Decimal, rows []models.RawRow) (models.SyncReport, error) {
	runID := uuid.NewString()
	log := s.log.WithPrefix("sync-" + runID[:8])
	log.Log("starting sync: %d rows, rate %s", len(rows), rate)

	report := models.SyncReport{Rate: rate}

	ids, err := s.products.FetchOfferIDs(ctx)
	if err != nil {
		return report, err
	}
	kgt, err := s.freight.FetchFreightIDs(ctx, ids)
	if err != nil {
		return report, err
	}

	batches := 0
	for batch := range s.planner.Stream(ctx, rows, rate, ids, kgt) {
		batches++
		if s.dispatcher.Dispatch(ctx, batch) {
			report.UpdatedCount += batch.Len()
		} else {
			log.Errorf("batch %d (%d rows) failed, continuing with the next one", batches, batch.Len())
		}
	}

	log.Log("sync finished: %d rows updated in %d batches", report.UpdatedCount, batches)
	return report, nil
}

// CatalogCount returns the number of products currently in the catalog.
func (s *SyncService) CatalogCount(ctx context.Context) (int, error) {
	ids, err := s.products.FetchOfferIDs(ctx)
	if err != nil {
		return 0, err
	}
	return ids.Len(), nil
}

// MissingArticles lists spreadsheet articles the marketplace does not
// know, preserving row order.
func (s *SyncService) MissingArticles(ctx context.Context, rows []models.RawRow) ([]string, error) {
	ids, err := s.products.FetchOfferIDs(ctx)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, row := range rows {
		article := strings.TrimSpace(row.Article)
		if article == "" {
			continue
		}
		if !ids.Has(article) {
			missing = append(missing, article)
		}
	}
	return missing, nil
}
