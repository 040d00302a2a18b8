// Package ingest reads an uploaded spreadsheet export into untyped rows. The
// first worksheet's first row supplies the column headers; every following
// row becomes one RawRow keyed by those headers. Cell values stay strings;
// normalization deals with formats.
package ingest

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/wvermeer/huisboek/internal/booking"
	"github.com/wvermeer/huisboek/internal/config"
)

// ReadWorkbook parses a spreadsheet into raw rows. Legacy .xls files go
// through the BIFF reader, anything else through excelize. Short data rows
// are padded so every header maps to a cell, empty ones included.
func ReadWorkbook(r io.Reader, filename string) ([]booking.RawRow, error) {
	data, err := io.ReadAll(io.LimitReader(r, config.MaxUploadSize))
	if err != nil {
		return nil, err
	}

	var rows [][]string
	switch strings.ToLower(filepath.Ext(filename)) {
	case config.ExtXLS:
		rows, err = readXLS(data)
	case config.ExtXLSX, "":
		rows, err = readXLSX(data)
	default:
		return nil, errors.New(config.ErrUnsupportedExt)
	}
	if err != nil {
		return nil, err
	}

	raw := toRawRows(rows)
	slog.Debug("Workbook read",
		slog.String(config.LogKeyComponent, config.CompIngest),
		slog.String(config.LogKeyFile, filename),
		slog.Int(config.LogKeyRows, len(raw)),
	)
	return raw, nil
}

func readXLS(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, errors.Join(errors.New(config.ErrOpenWorkbook), err)
	}
	if workbook.NumSheets() == 0 {
		return nil, errors.New(config.ErrNoWorksheet)
	}
	rows := workbook.ReadAllCells(100000)
	if len(rows) == 0 {
		return nil, errors.New(config.ErrEmptySheet)
	}
	return rows, nil
}

func readXLSX(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Join(errors.New(config.ErrOpenWorkbook), err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.New(config.ErrNoWorksheet)
	}
	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New(config.ErrEmptySheet)
	}
	return rows, nil
}

// toRawRows zips the header row with each data row. Headers are trimmed;
// blank header columns are skipped entirely.
func toRawRows(rows [][]string) []booking.RawRow {
	if len(rows) < 2 {
		return nil
	}

	headers := rows[0]
	raw := make([]booking.RawRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := make(booking.RawRow, len(headers))
		empty := true
		for i, header := range headers {
			header = strings.TrimSpace(header)
			if header == "" {
				continue
			}
			value := ""
			if i < len(cells) {
				value = cells[i]
			}
			if strings.TrimSpace(value) != "" {
				empty = false
			}
			row[header] = value
		}
		if empty {
			continue
		}
		raw = append(raw, row)
	}
	return raw
}
