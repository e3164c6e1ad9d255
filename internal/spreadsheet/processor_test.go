package spreadsheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"ozonsync_api/pkg/logger"
)

func testProcessor() *Processor {
	return NewProcessor(logger.NewDevLogger("test"))
}

func TestReadCSV_Semicolon(t *testing.T) {
	data := "Группа;Цена;СКЛАД\nSKU-1;80,5;3\nSKU-2;100;\n"

	rows, err := testProcessor().ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "SKU-1", rows[0].Article)
	assert.Equal(t, "80.5", rows[0].UnitPrice.String())
	assert.Equal(t, 3, rows[0].Quantity)

	// Пустое количество трактуется как ноль.
	assert.Equal(t, 0, rows[1].Quantity)
}

func TestReadCSV_Comma(t *testing.T) {
	data := "Группа,Цена,СКЛАД\nSKU-1,12.5,7\n"

	rows, err := testProcessor().ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "12.5", rows[0].UnitPrice.String())
	assert.Equal(t, 7, rows[0].Quantity)
}

func TestReadCSV_Windows1251(t *testing.T) {
	utf8Data := "Группа;Цена;СКЛАД\nТовар-1;50;2\n"
	encoded, _, err := transform.String(charmap.Windows1251.NewEncoder(), utf8Data)
	require.NoError(t, err)

	rows, err := testProcessor().ReadCSV(strings.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Товар-1", rows[0].Article)
}

func TestReadCSV_DropsIncompleteRows(t *testing.T) {
	data := "Группа;Цена;СКЛАД\n" +
		";10;1\n" + // нет артикула
		"SKU-1;;1\n" + // нет цены
		"SKU-2;abc;1\n" + // цена не число
		"SKU-3;15;1\n"

	rows, err := testProcessor().ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "SKU-3", rows[0].Article)
}

func TestReadCSV_MissingColumns(t *testing.T) {
	data := "Артикул;Стоимость\nSKU-1;10\n"

	_, err := testProcessor().ReadCSV(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Группа")
}

func TestReadFile_UnsupportedFormat(t *testing.T) {
	_, err := testProcessor().ReadFile("products.pdf")
	require.Error(t, err)
}

func TestParseQuantity(t *testing.T) {
	cases := map[string]int{
		"5":    5,
		"5.9":  5, // дробные остатки усекаются
		"":     0,
		"abc":  0,
		"-3":   0, // отрицательный остаток не отправляется
		"10,0": 10,
	}
	for raw, want := range cases {
		assert.Equal(t, want, parseQuantity(raw), "raw=%q", raw)
	}
}

func TestParsePrice(t *testing.T) {
	price, ok := parsePrice("1 234,56")
	require.True(t, ok)
	assert.Equal(t, "1234.56", price.String())

	_, ok = parsePrice("")
	assert.False(t, ok)

	_, ok = parsePrice("n/a")
	assert.False(t, ok)
}
