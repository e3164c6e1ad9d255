// Package spreadsheet normalizes uploaded product files into canonical rows.
package spreadsheet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"ozonsync_api/internal/ozon/business/models"
	"ozonsync_api/pkg/logger"
)

// Исходные колонки выгрузки из учётной системы продавца.
const (
	colArticle  = "Группа"
	colPrice    = "Цена"
	colQuantity = "СКЛАД"
)

type Processor struct {
	log logger.Logger
}

func NewProcessor(log logger.Logger) *Processor {
	return &Processor{log: log.WithPrefix("spreadsheet")}
}

// ReadFile parses an uploaded .xlsx, .xls or .csv file into canonical rows.
// Rows missing the article or the price are dropped; a missing or
// non-numeric quantity becomes zero.
func (p *Processor) ReadFile(path string) ([]models.RawRow, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return p.readExcel(path)
	case ".csv":
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return p.ReadCSV(file)
	default:
		return nil, fmt.Errorf("unsupported file format: %s", filepath.Ext(path))
	}
}

// columnIndex maps the three source columns to their positions in header.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, 3)
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colArticle, colPrice, colQuantity} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("required column %q is missing", required)
		}
	}
	return idx, nil
}

func (p *Processor) buildRows(data [][]string, idx map[string]int) []models.RawRow {
	rows := make([]models.RawRow, 0, len(data))
	dropped := 0
	for _, record := range data {
		article := cell(record, idx[colArticle])
		price, priceOK := parsePrice(cell(record, idx[colPrice]))
		if article == "" || !priceOK {
			dropped++
			continue
		}
		rows = append(rows, models.RawRow{
			Article:   article,
			UnitPrice: price,
			Quantity:  parseQuantity(cell(record, idx[colQuantity])),
		})
	}
	if dropped > 0 {
		p.log.Log("dropped %d rows without article or price", dropped)
	}
	return rows
}

func cell(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// parsePrice принимает и запятую, и точку как десятичный разделитель.
func parsePrice(raw string) (decimal.Decimal, bool) {
	raw = strings.ReplaceAll(raw, " ", "")
	raw = strings.ReplaceAll(raw, " ", "")
	raw = strings.ReplaceAll(raw, ",", ".")
	if raw == "" {
		return decimal.Zero, false
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return price, true
}

// parseQuantity tolerates empty, fractional and garbage values: anything
// that is not a non-negative number becomes zero.
func parseQuantity(raw string) int {
	raw = strings.ReplaceAll(raw, ",", ".")
	if raw == "" {
		return 0
	}
	qty, err := decimal.NewFromString(raw)
	if err != nil {
		return 0
	}
	n := int(qty.IntPart())
	if n < 0 {
		return 0
	}
	return n
}
