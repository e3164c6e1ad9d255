package get

import (
	"context"

	"ozonsync_api/internal/ozon/business/dto/requests"
	"ozonsync_api/internal/ozon/business/dto/responses"
	"ozonsync_api/internal/ozon/business/models"
	"ozonsync_api/internal/ozon/pkg/clients"
	"ozonsync_api/pkg/logger"
)

const productListURL = "/v3/product/list"

// ProductListService постранично выгружает полный список offer_id продавца.
type ProductListService struct {
	client    *clients.BaseClient
	log       logger.Logger
	pageLimit int
}

func NewProductListService(client *clients.BaseClient, log logger.Logger, pageLimit int) *ProductListService {
	if pageLimit <= 0 {
		pageLimit = 1000
	}
	return &ProductListService{client: client, log: log.WithPrefix("product-list"), pageLimit: pageLimit}
}

// FetchOfferIDs walks /v3/product/list with the last_id cursor and returns
// the snapshot of every offer_id the marketplace currently knows.
// Pagination stops on an empty page or an empty cursor, whichever comes
// first: backends differ in how they signal exhaustion and trusting only
// one of the two can loop forever.
func (s *ProductListService) FetchOfferIDs(ctx context.Context) (models.IdentifierSet, error) {
	ids := make(models.IdentifierSet)
	lastID := ""
	pages := 0

	for {
		req := requests.ProductListRequest{
			Filter: requests.ListFilter{Visibility: "ALL"},
			LastID: lastID,
			Limit:  s.pageLimit,
		}

		var resp responses.ProductListResponse
		if err := s.client.DoRequest(ctx, productListURL, req, &resp); err != nil {
			return nil, err
		}
		pages++

		items := resp.Result.Items
		if len(items) == 0 {
			break
		}
		for _, item := range items {
			ids.Add(item.OfferID)
		}

		lastID = resp.Result.LastID
		if lastID == "" {
			break
		}
	}

	s.log.Log("resolved %d offer ids in %d pages", ids.Len(), pages)
	return ids, nil
}
