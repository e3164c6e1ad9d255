package services

import (
	"net/http"
)

type AuthEngine interface {
	GetClientID() string
	SetAuth(request *http.Request)
}

// HeaderAuth подписывает запросы заголовками Client-Id/Api-Key,
// как того требует Ozon Seller API.
type HeaderAuth struct {
	clientID string
	apiKey   string
}

func (h *HeaderAuth) GetClientID() string {
	return h.clientID
}

func (h *HeaderAuth) SetAuth(request *http.Request) {
	request.Header.Set("Client-Id", h.clientID)
	request.Header.Set("Api-Key", h.apiKey)
}

func NewHeaderAuth(clientID, apiKey string) *HeaderAuth {
	if clientID == "" || apiKey == "" {
		return nil
	}
	return &HeaderAuth{clientID: clientID, apiKey: apiKey}
}
