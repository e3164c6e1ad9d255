package spreadsheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeTestWorkbook собирает файл в формате выгрузки продавца: три строки
// шапки, имена колонок в четвёртой.
func writeTestWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetList()[0]

	require.NoError(t, f.SetCellValue(sheet, "A1", "Выгрузка остатков"))
	header := []string{"Группа", "Цена", "СКЛАД"}
	for i, name := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 4)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, name))
	}
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+5)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	path := filepath.Join(t.TempDir(), "products.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadExcel(t *testing.T) {
	path := writeTestWorkbook(t, [][]interface{}{
		{"SKU-1", 80.5, 3},
		{"SKU-2", 100, nil},
		{nil, 50, 1},
	})

	rows, err := testProcessor().ReadFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "SKU-1", rows[0].Article)
	assert.Equal(t, "80.5", rows[0].UnitPrice.String())
	assert.Equal(t, 3, rows[0].Quantity)

	assert.Equal(t, "SKU-2", rows[1].Article)
	assert.Equal(t, 0, rows[1].Quantity)
}

func TestReadExcel_NoHeader(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetList()[0]
	require.NoError(t, f.SetCellValue(sheet, "A1", "пусто"))

	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, f.SaveAs(path))

	_, err := testProcessor().ReadFile(path)
	require.Error(t, err)
}
