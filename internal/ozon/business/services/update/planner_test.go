package update

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ozonsync_api/config/values"
	"ozonsync_api/internal/ozon/business/models"
)

const (
	testStandardWarehouse = int64(100)
	testFreightWarehouse  = int64(200)
)

func testPlanner(batchSize int) *Planner {
	return NewPlanner(values.OzonValues{
		BatchSize:           batchSize,
		StandardWarehouseID: testStandardWarehouse,
		FreightWarehouseID:  testFreightWarehouse,
	})
}

func collect(t *testing.T, ch <-chan models.Batch) []models.Batch {
	t.Helper()
	var batches []models.Batch
	for b := range ch {
		batches = append(batches, b)
	}
	return batches
}

func row(article string, price string, qty int) models.RawRow {
	return models.RawRow{Article: article, UnitPrice: decimal.RequireFromString(price), Quantity: qty}
}

func TestStream_SkipsUnknownArticles(t *testing.T) {
	rows := []models.RawRow{
		row("known", "10", 1),
		row("unknown", "10", 1),
		row("  known  ", "20", 2), // артикул нормализуется перед сверкой
	}
	ids := models.NewIdentifierSet("known")

	batches := collect(t, testPlanner(100).Stream(context.Background(), rows, decimal.NewFromInt(1), ids, models.NewIdentifierSet()))
	require.Len(t, batches, 1)
	require.Len(t, batches[0].Prices, 2)
	assert.Equal(t, "known", batches[0].Prices[0].OfferID)
	assert.Equal(t, "known", batches[0].Prices[1].OfferID)
}

func TestStream_PriceConversion(t *testing.T) {
	// Дробная часть отбрасывается: 80.555 * 1 -> 80, old_price -> 96.
	rows := []models.RawRow{row("A", "80.555", 0)}
	ids := models.NewIdentifierSet("A")

	batches := collect(t, testPlanner(100).Stream(context.Background(), rows, decimal.NewFromInt(1), ids, models.NewIdentifierSet()))
	require.Len(t, batches, 1)
	entry := batches[0].Prices[0]
	assert.Equal(t, int64(80), entry.Price)
	assert.Equal(t, int64(96), entry.OldPrice)
}

func TestStream_PriceConversionWithRate(t *testing.T) {
	rows := []models.RawRow{row("X", "10", 5)}
	ids := models.NewIdentifierSet("X")

	batches := collect(t, testPlanner(100).Stream(context.Background(), rows, decimal.NewFromFloat(90.0), ids, models.NewIdentifierSet()))
	require.Len(t, batches, 1)
	require.Len(t, batches[0].Prices, 1)

	assert.Equal(t, int64(900), batches[0].Prices[0].Price)
	assert.Equal(t, int64(1080), batches[0].Prices[0].OldPrice)
	assert.Equal(t, 5, batches[0].Stocks[0].Stock)
	assert.Equal(t, testStandardWarehouse, batches[0].Stocks[0].WarehouseID)
}

func TestStream_BatchSizes(t *testing.T) {
	ids := models.NewIdentifierSet()
	rows := make([]models.RawRow, 0, 250)
	for i := 0; i < 250; i++ {
		article := fmt.Sprintf("sku-%03d", i)
		ids.Add(article)
		rows = append(rows, row(article, "10", 1))
	}

	batches := collect(t, testPlanner(100).Stream(context.Background(), rows, decimal.NewFromInt(1), ids, models.NewIdentifierSet()))
	require.Len(t, batches, 3)
	assert.Len(t, batches[0].Prices, 100)
	assert.Len(t, batches[1].Prices, 100)
	assert.Len(t, batches[2].Prices, 50)

	// Порядок строк сохраняется и последовательности выровнены по индексу.
	assert.Equal(t, "sku-000", batches[0].Prices[0].OfferID)
	assert.Equal(t, "sku-100", batches[1].Prices[0].OfferID)
	assert.Equal(t, "sku-249", batches[2].Prices[49].OfferID)
	for _, b := range batches {
		require.Equal(t, len(b.Prices), len(b.Stocks))
		for i := range b.Prices {
			assert.Equal(t, b.Prices[i].OfferID, b.Stocks[i].OfferID)
		}
	}
}

func TestStream_WarehouseRouting(t *testing.T) {
	rows := []models.RawRow{row("A", "1", 1), row("B", "1", 1)}
	ids := models.NewIdentifierSet("A", "B")
	freight := models.NewIdentifierSet("A")

	batches := collect(t, testPlanner(100).Stream(context.Background(), rows, decimal.NewFromInt(1), ids, freight))
	require.Len(t, batches, 1)
	require.Len(t, batches[0].Stocks, 2)
	assert.Equal(t, testFreightWarehouse, batches[0].Stocks[0].WarehouseID)
	assert.Equal(t, testStandardWarehouse, batches[0].Stocks[1].WarehouseID)
}

func TestStream_DuplicatesPreserved(t *testing.T) {
	rows := []models.RawRow{row("A", "10", 1), row("A", "20", 2)}
	ids := models.NewIdentifierSet("A")

	batches := collect(t, testPlanner(100).Stream(context.Background(), rows, decimal.NewFromInt(1), ids, models.NewIdentifierSet()))
	require.Len(t, batches, 1)
	require.Len(t, batches[0].Prices, 2)
	assert.Equal(t, int64(10), batches[0].Prices[0].Price)
	assert.Equal(t, int64(20), batches[0].Prices[1].Price)
}

func TestStream_CancelStopsStream(t *testing.T) {
	ids := models.NewIdentifierSet()
	rows := make([]models.RawRow, 0, 500)
	for i := 0; i < 500; i++ {
		article := fmt.Sprintf("sku-%03d", i)
		ids.Add(article)
		rows = append(rows, row(article, "10", 1))
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch := testPlanner(100).Stream(ctx, rows, decimal.NewFromInt(1), ids, models.NewIdentifierSet())

	<-ch
	cancel()

	// После отмены канал закрывается, горутина планировщика не зависает.
	for range ch {
	}
}
