package responses

type ProductListItem struct {
	OfferID   string `json:"offer_id"`
	ProductID int64  `json:"product_id"`
}

type ProductListResult struct {
	Items  []ProductListItem `json:"items"`
	LastID string            `json:"last_id"`
	Total  int               `json:"total"`
}

// ProductListResponse -- ответ /v3/product/list.
type ProductListResponse struct {
	Result ProductListResult `json:"result"`
}

type ProductInfoItem struct {
	OfferID string `json:"offer_id"`
	Name    string `json:"name"`
	TypeID  int64  `json:"type_id"`
	IsKGT   bool   `json:"is_kgt"`
}

// ProductInfoListResponse -- ответ /v3/product/info/list.
type ProductInfoListResponse struct {
	Items []ProductInfoItem `json:"items"`
}
