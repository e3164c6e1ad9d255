package update

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"ozonsync_api/config/values"
	"ozonsync_api/internal/ozon/business/models"
)

// Planner reconciles spreadsheet rows against the resolved catalog and
// cuts the result into dispatch-ready batches.
type Planner struct {
	batchSize           int
	standardWarehouseID int64
	freightWarehouseID  int64
}

func NewPlanner(v values.OzonValues) *Planner {
	batchSize := v.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Planner{
		batchSize:           batchSize,
		standardWarehouseID: v.StandardWarehouseID,
		freightWarehouseID:  v.FreightWarehouseID,
	}
}

// Stream lazily yields batches in input row order. Rows whose article is
// unknown to the marketplace are skipped, not erred: spreadsheets carry
// category headers and discontinued goods that simply have no catalog
// entry. Duplicated articles stay as separate entries.
func (p *Planner) Stream(ctx context.Context, rows []models.RawRow, rate decimal.Decimal, ids, freight models.IdentifierSet) <-chan models.Batch {
	out := make(chan models.Batch)

	go func() {
		defer close(out)

		prices := make([]models.PriceEntry, 0, p.batchSize)
		stocks := make([]models.StockEntry, 0, p.batchSize)

		flush := func() bool {
			select {
			case <-ctx.Done():
				return false
			case out <- models.Batch{Prices: prices, Stocks: stocks}:
				prices = make([]models.PriceEntry, 0, p.batchSize)
				stocks = make([]models.StockEntry, 0, p.batchSize)
				return true
			}
		}

		for _, row := range rows {
			article := strings.TrimSpace(row.Article)
			if !ids.Has(article) {
				continue
			}

			// Маркетплейс принимает только целые рубли: дробная часть
			// отбрасывается, не округляется.
			price := row.UnitPrice.Mul(rate).IntPart()
			// old_price = floor(price * 1.2), exact in integer arithmetic.
			oldPrice := price * 6 / 5

			warehouseID := p.standardWarehouseID
			if freight.Has(article) {
				warehouseID = p.freightWarehouseID
			}

			prices = append(prices, models.PriceEntry{
				OfferID:  article,
				Price:    price,
				OldPrice: oldPrice,
			})
			stocks = append(stocks, models.StockEntry{
				OfferID:     article,
				Stock:       row.Quantity,
				WarehouseID: warehouseID,
			})

			if len(prices) >= p.batchSize {
				if !flush() {
					return
				}
			}
		}

		if len(prices) > 0 {
			flush()
		}
	}()

	return out
}
