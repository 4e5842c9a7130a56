package schedule

import (
	"time"

	"github.com/riskibarqy/jadwal-pertandingan/internal/domain/streamlink"
	"github.com/riskibarqy/jadwal-pertandingan/internal/platform/locale"
)

// PlaceholderLogo is a 1x1 transparent GIF shown when a team has no logo.
const PlaceholderLogo = "data:image/gif;base64,R0lGODlhAQABAIAAAP///wAAACH5BAEAAAAALAAAAAABAAEAAAICRAEAOw=="

const (
	TitleToday    = "📅 Jadwal Lengkap Hari Ini"
	TitleTomorrow = "📅 Jadwal Lengkap Selanjutnya"
	TitleFinished = "✅ Pertandingan Selesai"

	EmptyMessage  = "Tidak ada pertandingan tersedia."
	FailedMessage = "Gagal memuat data."
)

// LinkFunc turns a feed stream identifier into an outbound link.
type LinkFunc func(streamID string) string

type Entry struct {
	Time      string `json:"time"`
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	LogoHome  string `json:"logoHome"`
	LogoAway  string `json:"logoAway"`
	StreamURL string `json:"streamUrl"`
}

type Group struct {
	Liga    string  `json:"liga"`
	Tanggal string  `json:"tanggal"`
	Label   string  `json:"label"`
	Entries []Entry `json:"entries"`
}

type Section struct {
	Bucket Bucket  `json:"-"`
	Key    string  `json:"key"`
	Title  string  `json:"title"`
	Groups []Group `json:"groups"`
}

// Board is the rendered-ready view of the schedule feed for one instant and filter.
type Board struct {
	Sections []Section `json:"sections"`
}

func (b Board) Empty() bool {
	return len(b.Sections) == 0
}

// BuildBoard filters matches, classifies them at now and groups each bucket by
// competition and raw date in first-encounter order. Empty buckets are omitted.
func BuildBoard(matches []Match, filter string, now time.Time, loc *time.Location, link LinkFunc) Board {
	if link == nil {
		link = streamlink.ScheduledLink
	}

	buckets := map[Bucket][]Match{}
	for _, m := range Filter(matches, filter) {
		bucket := ClassifyMatch(now, m, loc)
		if bucket == BucketExcluded {
			continue
		}
		buckets[bucket] = append(buckets[bucket], m)
	}

	board := Board{Sections: make([]Section, 0, 3)}
	for _, sec := range []struct {
		bucket Bucket
		title  string
	}{
		{BucketToday, TitleToday},
		{BucketTomorrow, TitleTomorrow},
		{BucketFinished, TitleFinished},
	} {
		items := buckets[sec.bucket]
		if len(items) == 0 {
			continue
		}
		board.Sections = append(board.Sections, Section{
			Bucket: sec.bucket,
			Key:    sec.bucket.String(),
			Title:  sec.title,
			Groups: groupMatches(items, loc, link),
		})
	}

	return board
}

type groupKey struct {
	liga    string
	tanggal string
}

func groupMatches(items []Match, loc *time.Location, link LinkFunc) []Group {
	groups := make([]Group, 0)
	index := make(map[groupKey]int)

	for _, m := range items {
		key := groupKey{liga: m.Liga, tanggal: m.Tanggal}
		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, Group{
				Liga:    m.Liga,
				Tanggal: m.Tanggal,
				Label:   groupLabel(m.Liga, m.Tanggal, loc),
			})
		}
		groups[pos].Entries = append(groups[pos].Entries, entryFor(m, link))
	}

	return groups
}

func groupLabel(liga, tanggal string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	day, err := time.ParseInLocation("2006-01-02", tanggal, loc)
	if err != nil {
		return liga + " – " + tanggal
	}
	return liga + " – " + locale.DayLabel(day)
}

func entryFor(m Match, link LinkFunc) Entry {
	return Entry{
		Time:      NormalizeTime(m.Jam),
		HomeTeam:  m.HomeTeam,
		AwayTeam:  m.AwayTeam,
		LogoHome:  logoOrPlaceholder(m.LogoHome),
		LogoAway:  logoOrPlaceholder(m.LogoAway),
		StreamURL: link(m.LinkStreaming),
	}
}

func logoOrPlaceholder(logo string) string {
	if logo == "" {
		return PlaceholderLogo
	}
	return logo
}
