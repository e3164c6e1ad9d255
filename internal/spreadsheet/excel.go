package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"ozonsync_api/internal/ozon/business/models"
)

// Шапка выгрузки занимает три строки, имена колонок -- в четвёртой.
const excelHeaderRow = 3

func (p *Processor) readExcel(path string) ([]models.RawRow, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read excel rows: %w", err)
	}
	if len(rows) <= excelHeaderRow {
		return nil, fmt.Errorf("excel file has no header row")
	}

	idx, err := columnIndex(rows[excelHeaderRow])
	if err != nil {
		return nil, err
	}

	return p.buildRows(rows[excelHeaderRow+1:], idx), nil
}
