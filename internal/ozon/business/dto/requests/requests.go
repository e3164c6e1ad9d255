package requests

type ListFilter struct {
	Visibility string `json:"visibility"`
}

// ProductListRequest -- тело запроса /v3/product/list.
type ProductListRequest struct {
	Filter ListFilter `json:"filter"`
	LastID string     `json:"last_id"`
	Limit  int        `json:"limit"`
}

// ProductInfoListRequest -- тело запроса /v3/product/info/list.
type ProductInfoListRequest struct {
	OfferID []string `json:"offer_id"`
}

type PriceItem struct {
	OfferID string `json:"offer_id"`
	// Ozon принимает цены строками с целым значением.
	Price    string `json:"price"`
	OldPrice string `json:"old_price"`
}

type PriceImportRequest struct {
	Prices []PriceItem `json:"prices"`
}

type StockItem struct {
	OfferID     string `json:"offer_id"`
	Stock       int    `json:"stock"`
	WarehouseID int64  `json:"warehouse_id"`
}

type StocksRequest struct {
	Stocks []StockItem `json:"stocks"`
}
