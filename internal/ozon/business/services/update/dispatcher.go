package update

import (
	"context"
	"strconv"
	"sync"

	"ozonsync_api/internal/ozon/business/dto/requests"
	"ozonsync_api/internal/ozon/business/models"
	"ozonsync_api/internal/ozon/pkg/clients"
	"ozonsync_api/metrics"
	"ozonsync_api/pkg/logger"
)

const (
	priceImportURL = "/v1/product/import/prices"
	stocksURL      = "/v2/products/stocks"
)

// Dispatcher отправляет батч как пару запросов цена/остаток.
type Dispatcher struct {
	client *clients.BaseClient
	log    logger.Logger
}

func NewDispatcher(client *clients.BaseClient, log logger.Logger) *Dispatcher {
	return &Dispatcher{client: client, log: log.WithPrefix("dispatch")}
}

// Dispatch issues the price import and the stock import for one batch
// concurrently and waits for both. The batch counts as updated only when
// both calls succeed; both outcomes are always observed so the log shows
// each side's status even on partial failure. Note the marketplace may
// have applied one half of a failed pair -- there is no rollback.
func (d *Dispatcher) Dispatch(ctx context.Context, batch models.Batch) bool {
	priceReq := requests.PriceImportRequest{Prices: make([]requests.PriceItem, 0, len(batch.Prices))}
	for _, p := range batch.Prices {
		priceReq.Prices = append(priceReq.Prices, requests.PriceItem{
			OfferID:  p.OfferID,
			Price:    strconv.FormatInt(p.Price, 10),
			OldPrice: strconv.FormatInt(p.OldPrice, 10),
		})
	}

	stockReq := requests.StocksRequest{Stocks: make([]requests.StockItem, 0, len(batch.Stocks))}
	for _, s := range batch.Stocks {
		stockReq.Stocks = append(stockReq.Stocks, requests.StockItem{
			OfferID:     s.OfferID,
			Stock:       s.Stock,
			WarehouseID: s.WarehouseID,
		})
	}

	var (
		wg       sync.WaitGroup
		priceErr error
		stockErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		priceErr = d.client.DoRequest(ctx, priceImportURL, priceReq, nil)
	}()
	go func() {
		defer wg.Done()
		stockErr = d.client.DoRequest(ctx, stocksURL, stockReq, nil)
	}()
	wg.Wait()

	if priceErr != nil {
		d.log.Errorf("price import failed for batch of %d: %v", batch.Len(), priceErr)
	}
	if stockErr != nil {
		d.log.Errorf("stock import failed for batch of %d: %v", batch.Len(), stockErr)
	}

	ok := priceErr == nil && stockErr == nil
	metrics.RecordBatch(ok, batch.Len())
	return ok
}
