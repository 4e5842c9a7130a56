package tabular

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const scheduleHeader = "liga,tanggal,jam,homeTeam,awayTeam,logoHome,logoAway,linkStreaming"

func TestParse_RoundTrip(t *testing.T) {
	text := scheduleHeader + "\n" +
		" Liga 1 , 2026-10-19 , 19:00 , Persija Jakarta , Persib Bandung , https://img/a.png , https://img/b.png , 4001 \n" +
		"Premier League,2026-10-20,2:30,Arsenal,Chelsea,,,4002\r\n"

	records := Parse(text, ',')
	require.Len(t, records, 2)

	fields := Header(text, ',')
	for i, rec := range records {
		for _, field := range fields {
			_, ok := rec[field]
			require.Truef(t, ok, "record %d missing field %q", i, field)
		}
	}

	require.Equal(t, "Liga 1", records[0]["liga"])
	require.Equal(t, "Persija Jakarta", records[0]["homeTeam"])
	require.Equal(t, "4001", records[0]["linkStreaming"])
	require.Equal(t, "", records[1]["logoHome"])
	require.Equal(t, "4002", records[1]["linkStreaming"], "carriage return must be trimmed")
}

func TestParse_HeaderOnlyYieldsNoRecords(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty input", text: ""},
		{name: "whitespace only", text: "  \n \n"},
		{name: "header only", text: scheduleHeader},
		{name: "header with trailing newline", text: scheduleHeader + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := Parse(tt.text, ',')
			if records == nil {
				t.Fatalf("expected empty slice, got nil")
			}
			if len(records) != 0 {
				t.Fatalf("expected 0 records, got %d", len(records))
			}
		})
	}
}

func TestParse_ShortAndLongRows(t *testing.T) {
	records := Parse("a,b,c\n1,2\n1,2,3,4", ',')
	require.Len(t, records, 2)

	_, hasC := records[0]["c"]
	require.False(t, hasC, "missing trailing field must be absent, not empty")
	require.Len(t, records[0], 2)

	require.Len(t, records[1], 3, "fields beyond header width are dropped")
	require.Equal(t, "3", records[1]["c"])
}

func TestParse_EmbeddedDelimiterSplitsValue(t *testing.T) {
	records := Parse("liga,tanggal\nLiga A, Grup B,2026-10-19", ',')
	require.Len(t, records, 1)
	require.Equal(t, "Liga A", records[0]["liga"])
	require.Equal(t, "Grup B", records[0]["tanggal"])
}

func TestParse_AlternateDelimiter(t *testing.T) {
	records := Parse("liga;jam\nSerie A;20:45", ';')
	require.Len(t, records, 1)
	require.Equal(t, "20:45", records[0]["jam"])
}
