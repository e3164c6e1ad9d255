package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"ozonsync_api/internal/ozon/business/models"
)

// ReadCSV parses CSV data, decoding from Windows-1251 when the input is
// not valid UTF-8, and sniffing the delimiter from the header line.
func (p *Processor) ReadCSV(reader io.Reader) ([]models.RawRow, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read csv data: %w", err)
	}

	if !utf8.Valid(raw) {
		decoded, _, err := transform.Bytes(charmap.Windows1251.NewDecoder(), raw)
		if err != nil {
			return nil, fmt.Errorf("decode windows-1251: %w", err)
		}
		raw = decoded
	}

	csvReader := csv.NewReader(bytes.NewReader(raw))
	csvReader.Comma = sniffDelimiter(raw)
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv read error: %w", err)
	}
	if len(allRows) == 0 {
		return nil, fmt.Errorf("csv data is empty")
	}

	idx, err := columnIndex(allRows[0])
	if err != nil {
		return nil, err
	}

	return p.buildRows(allRows[1:], idx), nil
}

func sniffDelimiter(data []byte) rune {
	line := string(data)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if strings.Count(line, ";") >= strings.Count(line, ",") {
		return ';'
	}
	return ','
}
