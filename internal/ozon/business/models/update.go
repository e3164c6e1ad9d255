package models

import (
	"github.com/shopspring/decimal"
)

// PriceEntry holds an already converted price in whole rubles.
// OldPrice is the strikethrough price shown next to the discount.
type PriceEntry struct {
	OfferID  string
	Price    int64
	OldPrice int64
}

type StockEntry struct {
	OfferID     string
	Stock       int
	WarehouseID int64
}

// Batch пара последовательностей цен и остатков, выровненных по индексу.
// Отправляется диспетчером как единое целое.
type Batch struct {
	Prices []PriceEntry
	Stocks []StockEntry
}

func (b Batch) Len() int {
	return len(b.Prices)
}

// SyncReport accumulates the outcome of one synchronization run.
type SyncReport struct {
	UpdatedCount int
	Rate         decimal.Decimal
}
