package ingest_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wvermeer/huisboek/internal/ingest"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, cells := range rows {
		for j, cell := range cells {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellStr(sheet, ref, cell))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestReadWorkbook_XLSX(t *testing.T) {
	data := buildWorkbook(t, [][]string{
		{"Aankomst", "Vertrek", "Inkomsten", "Boeking"},
		{"10-06-2024", "13-06-2024", "€300,00", "BB-1 | Airbnb"},
		{"01-08-2024", "08-08-2024", "-", "Jan | Huiseigenaar"},
	})

	rows, err := ingest.ReadWorkbook(bytes.NewReader(data), "boekingen.xlsx")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "10-06-2024", rows[0]["Aankomst"])
	assert.Equal(t, "€300,00", rows[0]["Inkomsten"])
	assert.Equal(t, "Jan | Huiseigenaar", rows[1]["Boeking"])
}

func TestReadWorkbook_ShortRowsPadded(t *testing.T) {
	data := buildWorkbook(t, [][]string{
		{"Aankomst", "Vertrek", "Inkomsten"},
		{"10-06-2024", "13-06-2024"},
	})

	rows, err := ingest.ReadWorkbook(bytes.NewReader(data), "boekingen.xlsx")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	v, ok := rows[0]["Inkomsten"]
	assert.True(t, ok, "Missing trailing cells still map their header")
	assert.Equal(t, "", v)
}

func TestReadWorkbook_BlankRowsSkipped(t *testing.T) {
	data := buildWorkbook(t, [][]string{
		{"Aankomst", "Vertrek"},
		{"", ""},
		{"10-06-2024", "13-06-2024"},
		{"  ", ""},
	})

	rows, err := ingest.ReadWorkbook(bytes.NewReader(data), "boekingen.xlsx")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestReadWorkbook_HeaderOnly(t *testing.T) {
	data := buildWorkbook(t, [][]string{
		{"Aankomst", "Vertrek"},
	})

	rows, err := ingest.ReadWorkbook(bytes.NewReader(data), "boekingen.xlsx")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadWorkbook_UnsupportedExtension(t *testing.T) {
	_, err := ingest.ReadWorkbook(strings.NewReader("a,b\n1,2\n"), "boekingen.csv")
	assert.Error(t, err)
}

func TestReadWorkbook_Garbage(t *testing.T) {
	_, err := ingest.ReadWorkbook(strings.NewReader("not a workbook"), "boekingen.xlsx")
	assert.Error(t, err)

	_, err = ingest.ReadWorkbook(strings.NewReader("not a workbook"), "boekingen.xls")
	assert.Error(t, err)
}
