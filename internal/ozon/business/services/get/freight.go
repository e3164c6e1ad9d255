package get

import (
	"context"
	"sort"

	"ozonsync_api/internal/ozon/business/dto/requests"
	"ozonsync_api/internal/ozon/business/dto/responses"
	"ozonsync_api/internal/ozon/business/models"
	"ozonsync_api/internal/ozon/pkg/clients"
	"ozonsync_api/pkg/logger"
)

const productInfoURL = "/v3/product/info/list"

// FreightService определяет, какие товары помечены как КГТ и должны
// уезжать на грузовой склад.
type FreightService struct {
	client    *clients.BaseClient
	log       logger.Logger
	chunkSize int
}

func NewFreightService(client *clients.BaseClient, log logger.Logger, chunkSize int) *FreightService {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	return &FreightService{client: client, log: log.WithPrefix("freight"), chunkSize: chunkSize}
}

// FetchFreightIDs queries product details for every identifier in ids and
// returns the subset flagged is_kgt. A failed chunk fails the whole
// classification: a partial freight set would silently send stock to the
// wrong warehouse.
func (s *FreightService) FetchFreightIDs(ctx context.Context, ids models.IdentifierSet) (models.IdentifierSet, error) {
	kgt := make(models.IdentifierSet)
	if ids.Len() == 0 {
		return kgt, nil
	}

	all := make([]string, 0, ids.Len())
	for id := range ids {
		all = append(all, id)
	}
	sort.Strings(all)

	for start := 0; start < len(all); start += s.chunkSize {
		end := start + s.chunkSize
		if end > len(all) {
			end = len(all)
		}

		req := requests.ProductInfoListRequest{OfferID: all[start:end]}
		var resp responses.ProductInfoListResponse
		if err := s.client.DoRequest(ctx, productInfoURL, req, &resp); err != nil {
			return nil, err
		}

		for _, item := range resp.Items {
			if item.IsKGT {
				kgt.Add(item.OfferID)
			}
		}
	}

	s.log.Log("classified %d of %d offer ids as freight", kgt.Len(), ids.Len())
	return kgt, nil
}
