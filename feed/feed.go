package feed

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/extrame/xls"

	"stock-sync/models"
	"stock-sync/syncerr"
	"stock-sync/utils"
)

// Row index of the column headers inside the vendor workbook. Everything
// above it is letterhead.
const headerRowIndex = 17

// Column headers the loader locates inside the header row.
const (
	colCode     = "Код"
	colQuantity = "Количество"
	colPrice    = "Цена"
)

// Loader downloads the vendor's stock archive and turns it into records.
// Nothing is cached between calls; every Load re-downloads.
type Loader struct {
	url    string
	dir    string
	client *http.Client
	logger *utils.Logger
}

// New creates a Loader that extracts the spreadsheet into dir ("." when
// empty) for the duration of one Load.
func New(url, dir string, timeout time.Duration, logger *utils.Logger) *Loader {
	if dir == "" {
		dir = "."
	}
	return &Loader{
		url:    url,
		dir:    dir,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Load fetches the archive, extracts the spreadsheet, parses it and removes
// the extracted file again on every path out, parse failures included.
func (l *Loader) Load(ctx context.Context) ([]models.StockRecord, error) {
	l.logger.Info("[feed] Downloading stock archive: %s", l.url)

	archive, err := l.download(ctx)
	if err != nil {
		return nil, err
	}

	path, err := l.extract(archive)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			l.logger.Warn("[feed] Could not remove %s: %v", path, err)
		}
	}()

	records, err := l.parse(path)
	if err != nil {
		return nil, err
	}

	l.logger.Info("[feed] Parsed %d stock records", len(records))
	return records, nil
}

func (l *Loader) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, syncerr.Wrap(syncerr.Transport, "feed: build request", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, syncerr.Wrap(syncerr.Transport, "feed: download archive", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, syncerr.Errorf(syncerr.Transport, "feed: download archive", "unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, syncerr.Wrap(syncerr.Transport, "feed: read archive body", err)
	}
	return body, nil
}

// extract writes the archive's spreadsheet entry into l.dir and returns its
// path. A half-written file never survives an extraction failure.
func (l *Loader) extract(archive []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return "", syncerr.Wrap(syncerr.Decode, "feed: open archive", err)
	}

	var entry *zip.File
	for _, f := range zr.File {
		if strings.EqualFold(filepath.Ext(f.Name), ".xls") {
			entry = f
			break
		}
	}
	if entry == nil {
		return "", syncerr.Errorf(syncerr.Decode, "feed: open archive", "no .xls entry among %d files", len(zr.File))
	}

	src, err := entry.Open()
	if err != nil {
		return "", syncerr.Wrap(syncerr.Decode, "feed: open spreadsheet entry", err)
	}
	defer src.Close()

	path := filepath.Join(l.dir, filepath.Base(entry.Name))
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("feed: create %q: %w", path, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("feed: write %q: %w", path, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("feed: close %q: %w", path, err)
	}

	l.logger.Debug("[feed] Extracted %s", path)
	return path, nil
}

func (l *Loader) parse(path string) ([]models.StockRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("feed: read %q: %w", path, err)
	}

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, syncerr.Wrap(syncerr.Decode, "feed: open workbook", err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, syncerr.Errorf(syncerr.Decode, "feed: open workbook", "workbook has no sheets")
	}

	return recordsFromRows(sheetRows(sheet))
}

// sheetRows flattens the sheet into a plain string grid.
func sheetRows(sheet *xls.WorkSheet) [][]string {
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol())
		for j := 0; j < row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		rows = append(rows, cells)
	}
	return rows
}

// recordsFromRows locates the fixed header row and maps everything below it.
// Rows without an item code are letterhead or spacing and are skipped.
func recordsFromRows(rows [][]string) ([]models.StockRecord, error) {
	if len(rows) <= headerRowIndex {
		return nil, syncerr.Errorf(syncerr.DataShape, "feed: parse sheet",
			"sheet has %d rows, header expected at row %d", len(rows), headerRowIndex)
	}

	code, qty, price := -1, -1, -1
	for i, cell := range rows[headerRowIndex] {
		switch strings.TrimSpace(cell) {
		case colCode:
			code = i
		case colQuantity:
			qty = i
		case colPrice:
			price = i
		}
	}
	if code < 0 || qty < 0 || price < 0 {
		return nil, syncerr.Errorf(syncerr.DataShape, "feed: parse sheet",
			"header row misses one of %q, %q, %q", colCode, colQuantity, colPrice)
	}

	var records []models.StockRecord
	for _, row := range rows[headerRowIndex+1:] {
		if strings.TrimSpace(cell(row, code)) == "" {
			continue
		}
		records = append(records, models.StockRecord{
			Code:     cell(row, code),
			Quantity: cell(row, qty),
			Price:    cell(row, price),
		})
	}
	return records, nil
}

// cell reads column i of a possibly short row.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
