package schedule

import "github.com/riskibarqy/jadwal-pertandingan/internal/platform/tabular"

// Feed column names of the published schedule spreadsheet.
const (
	ColumnLiga          = "liga"
	ColumnTanggal       = "tanggal"
	ColumnJam           = "jam"
	ColumnHomeTeam      = "homeTeam"
	ColumnAwayTeam      = "awayTeam"
	ColumnLogoHome      = "logoHome"
	ColumnLogoAway      = "logoAway"
	ColumnLinkStreaming = "linkStreaming"
)

var requiredColumns = [...]string{
	ColumnLiga,
	ColumnTanggal,
	ColumnJam,
	ColumnHomeTeam,
	ColumnAwayTeam,
	ColumnLinkStreaming,
}

// MissingColumns lists the columns a match card needs that header lacks.
// Header names are case-sensitive.
func MissingColumns(header []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, name := range header {
		present[name] = struct{}{}
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Match is one row of the schedule feed. Absent columns are empty strings.
type Match struct {
	Liga          string `json:"liga"`
	Tanggal       string `json:"tanggal"`
	Jam           string `json:"jam"`
	HomeTeam      string `json:"homeTeam"`
	AwayTeam      string `json:"awayTeam"`
	LogoHome      string `json:"logoHome,omitempty"`
	LogoAway      string `json:"logoAway,omitempty"`
	LinkStreaming string `json:"linkStreaming"`
}

func FromRecord(rec tabular.Record) Match {
	return Match{
		Liga:          rec[ColumnLiga],
		Tanggal:       rec[ColumnTanggal],
		Jam:           rec[ColumnJam],
		HomeTeam:      rec[ColumnHomeTeam],
		AwayTeam:      rec[ColumnAwayTeam],
		LogoHome:      rec[ColumnLogoHome],
		LogoAway:      rec[ColumnLogoAway],
		LinkStreaming: rec[ColumnLinkStreaming],
	}
}

func FromRecords(records []tabular.Record) []Match {
	out := make([]Match, 0, len(records))
	for _, rec := range records {
		out = append(out, FromRecord(rec))
	}
	return out
}
