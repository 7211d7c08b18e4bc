package dataset

import (
	"compress/gzip"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/toronto-rental-dashboard/internal/domain"
)

func writeGzip(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "listings.csv.gz")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	writer := gzip.NewWriter(file)
	_, err = writer.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return path
}

func TestLoadSnapshot(t *testing.T) {
	csv := "id,neighbourhood,neighbourhood_cleansed,room_type,beds,price,availability_30\n" +
		"1,\"Toronto, Ontario, Canada\",Annex,Entire home/apt,2.0,\"$1,250.50\",10\n" +
		"2,,Annex,Private room,1.0,$85.00,30\n" +
		"3,Toronto,Rosedale-Moore Park,Private room,,$40.00,0\n"
	path := writeGzip(t, csv)

	snapshot, err := LoadSnapshot(Source{Year: "2020", Path: path}, Options{NeighbourhoodColumn: "neighbourhood_cleansed"})
	require.NoError(t, err)

	assert.Equal(t, "2020", snapshot.Year)
	assert.Equal(t, 3, snapshot.Len())
	assert.False(t, snapshot.HasColumn("neighbourhood_cleansed"))

	frame := snapshot.Frame()
	assert.Equal(t, []string{"Annex", "Annex", "Rosedale-Moore Park"}, frame.Col(domain.ColNeighbourhood).Records())
	assert.Equal(t, []float64{1250.5, 85, 40}, frame.Col(domain.ColPrice).Float())
	assert.Equal(t, []float64{10, 30, 0}, frame.Col(domain.ColAvailability30).Float())
}

func TestLoadSnapshot_Errors(t *testing.T) {
	header := "neighbourhood,room_type,beds,price,availability_30\n"

	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name: "arquivo inexistente",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.csv.gz")
			},
			wantErr: domain.ErrFile,
		},
		{
			name: "arquivo sem gzip",
			path: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "plain.csv.gz")
				require.NoError(t, os.WriteFile(path, []byte(header), 0o600))
				return path
			},
			wantErr: domain.ErrFile,
		},
		{
			name: "csv malformado",
			path: func(t *testing.T) string {
				return writeGzip(t, header+"Annex,Priv\"ate room,1.0,$10.00,3\n")
			},
			wantErr: domain.ErrFile,
		},
		{
			name: "coluna obrigatória ausente",
			path: func(t *testing.T) string {
				return writeGzip(t, "neighbourhood,room_type,price,availability_30\nAnnex,Private room,$10.00,3\n")
			},
			wantErr: domain.ErrMissingColumn,
		},
		{
			name: "preço inválido",
			path: func(t *testing.T) string {
				return writeGzip(t, header+"Annex,Private room,1.0,$abc,3\n")
			},
			wantErr: domain.ErrDataFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSnapshot(Source{Year: "2019", Path: tt.path(t)}, Options{})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseRecords_PriceCleansing(t *testing.T) {
	records := [][]string{
		{"neighbourhood", "room_type", "beds", "price", "availability_30"},
		{"A", "Private room", "1.0", "$1,000.00", "0"},
		{"A", "Private room", "1.0", "$0.00", "0"},
		{"A", "Private room", "1.0", "", "0"},
		{"A", "Private room", "1.0", "12,345", "0"},
	}

	snapshot, err := ParseRecords("2019", records, Options{})
	require.NoError(t, err)

	prices := snapshot.Frame().Col(domain.ColPrice).Float()
	require.Len(t, prices, 4)
	assert.Equal(t, 1000.0, prices[0])
	assert.Equal(t, 0.0, prices[1])
	assert.True(t, math.IsNaN(prices[2]))
	assert.Equal(t, 12345.0, prices[3])

	for i, record := range snapshot.Frame().Col(domain.ColPrice).Records() {
		assert.NotContains(t, record, "$", "row %d", i)
		assert.NotContains(t, record, ",", "row %d", i)
	}
}

func TestParseRecords_MissingNeighbourhoodSource(t *testing.T) {
	records := [][]string{
		{"neighbourhood", "room_type", "beds", "price", "availability_30"},
		{"A", "Private room", "1.0", "$10.00", "0"},
	}

	_, err := ParseRecords("2019", records, Options{NeighbourhoodColumn: "neighbourhood_cleansed"})

	var datasetErr *domain.DatasetError
	require.ErrorAs(t, err, &datasetErr)
	assert.Equal(t, "neighbourhood_cleansed", datasetErr.Column)
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
}

func TestLoadSnapshots_KeepsOrder(t *testing.T) {
	csv := "neighbourhood,room_type,beds,price,availability_30\nA,Private room,1.0,$10.00,3\n"
	sources := []Source{
		{Year: "2019", Path: writeGzip(t, csv)},
		{Year: "2020", Path: writeGzip(t, csv)},
	}

	snapshots, err := LoadSnapshots(sources, Options{})
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, "2019", snapshots[0].Year)
	assert.Equal(t, "2020", snapshots.Latest().Year)
}
