package livematch

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/jadwal-pertandingan/internal/domain/streamlink"
	"github.com/riskibarqy/jadwal-pertandingan/internal/platform/locale"
)

const (
	EmptyMessage       = "Tidak ada pertandingan ditemukan."
	FailedMessage      = "Gagal memuat data pertandingan."
	NoLinksLabel       = "Belum tersedia"
	NoStreamersLabel   = "Tidak ada streamer"
	streamerNameJoiner = " - "
)

type PlayLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Card is the display form of one live match.
type Card struct {
	Competition string     `json:"competition"`
	Time        string     `json:"time"`
	Date        string     `json:"date"`
	Badge       BadgeState `json:"badge"`
	BadgeLabel  string     `json:"badgeLabel"`
	HomeName    string     `json:"homeName"`
	AwayName    string     `json:"awayName"`
	HomeLogo    string     `json:"homeLogo"`
	AwayLogo    string     `json:"awayLogo"`
	Score       string     `json:"score"`
	HalfScore   string     `json:"halfScore"`
	Links       []PlayLink `json:"links"`
	Streamers   string     `json:"streamers"`
}

// BuildCards maps feed matches to cards with times rendered in loc.
// A link that cannot be encoded fails the whole list.
func BuildCards(matches []Match, loc *time.Location) ([]Card, error) {
	if loc == nil {
		loc = time.Local
	}

	cards := make([]Card, 0, len(matches))
	for _, m := range matches {
		card, err := buildCard(m, loc)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func buildCard(m Match, loc *time.Location) (Card, error) {
	kickoff := time.Unix(int64(m.MatchTime), 0).In(loc)
	badge := m.Badge()

	links, err := playLinks(m)
	if err != nil {
		return Card{}, fmt.Errorf("build play links for %q vs %q: %w", m.HomeName, m.AwayName, err)
	}

	return Card{
		Competition: m.CompetitionName,
		Time:        locale.ClockTime(kickoff),
		Date:        locale.LongDate(kickoff),
		Badge:       badge,
		BadgeLabel:  badge.Label(),
		HomeName:    m.HomeName,
		AwayName:    m.AwayName,
		HomeLogo:    m.HomeLogo,
		AwayLogo:    m.AwayLogo,
		Score:       fmt.Sprintf("%d - %d", scoreOrZero(m.HomeScore), scoreOrZero(m.AwayScore)),
		HalfScore:   fmt.Sprintf("%d - %d", scoreOrZero(m.HomeHalfScore), scoreOrZero(m.AwayHalfScore)),
		Links:       links,
		Streamers:   streamerNames(m.Streamers),
	}, nil
}

// playLinks numbers links by streamer position, so a streamer without a stream
// still consumes its number.
func playLinks(m Match) ([]PlayLink, error) {
	links := make([]PlayLink, 0, len(m.Streamers))
	for i, s := range m.Streamers {
		streamURL := s.Stream.URL()
		if streamURL == "" {
			continue
		}
		link, err := streamlink.LiveLink(streamURL, m.Cover)
		if err != nil {
			return nil, err
		}
		links = append(links, PlayLink{
			Label: fmt.Sprintf("Play %d", i+1),
			URL:   link,
		})
	}
	return links, nil
}

func streamerNames(streamers Streamers) string {
	names := make([]string, 0, len(streamers))
	for _, s := range streamers {
		names = append(names, s.Name)
	}
	joined := strings.Join(names, streamerNameJoiner)
	if joined == "" {
		return NoStreamersLabel
	}
	return joined
}
