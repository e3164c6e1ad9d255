package models

import (
	"github.com/shopspring/decimal"
)

// RawRow is the canonical spreadsheet row shape. Ingestion guarantees the
// article and price are present and the quantity is a non-negative integer.
type RawRow struct {
	Article   string
	UnitPrice decimal.Decimal
	Quantity  int
}

// IdentifierSet -- снимок offer_id, известных каталогу на момент resolve.
// После построения не изменяется до конца синхронизации.
type IdentifierSet map[string]struct{}

func NewIdentifierSet(ids ...string) IdentifierSet {
	s := make(IdentifierSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s IdentifierSet) Add(id string) {
	s[id] = struct{}{}
}

func (s IdentifierSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s IdentifierSet) Len() int {
	return len(s)
}
