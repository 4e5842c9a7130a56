package livematch

import "strings"

const (
	StatusFinished    = 8
	StatusFinishedAlt = 9
	typeLiveSubstring = "live"
)

// Match is one entry of the live feed list.
type Match struct {
	ID              FlexInt   `json:"id,omitempty"`
	CompetitionName string    `json:"competition_name"`
	MatchTime       FlexInt   `json:"match_time"`
	HomeName        string    `json:"home_name"`
	AwayName        string    `json:"away_name"`
	HomeLogo        string    `json:"home_logo"`
	AwayLogo        string    `json:"away_logo"`
	HomeScore       *FlexInt  `json:"home_score"`
	AwayScore       *FlexInt  `json:"away_score"`
	HomeHalfScore   *FlexInt  `json:"home_half_score"`
	AwayHalfScore   *FlexInt  `json:"away_half_score"`
	StatusID        FlexInt   `json:"status_id"`
	Type            string    `json:"type"`
	Cover           string    `json:"cover,omitempty"`
	Streamers       Streamers `json:"streamers"`
}

type Stream struct {
	HD  string `json:"hd,omitempty"`
	SZY string `json:"szy,omitempty"`
}

// URL prefers the HD stream and falls back to szy.
func (s *Stream) URL() string {
	if s == nil {
		return ""
	}
	if s.HD != "" {
		return s.HD
	}
	return s.SZY
}

type Streamer struct {
	Name   string  `json:"name"`
	Stream *Stream `json:"stream,omitempty"`
}

type BadgeState string

const (
	BadgeLive     BadgeState = "live"
	BadgeFinished BadgeState = "finished"
	BadgeUpcoming BadgeState = "upcoming"
)

func (b BadgeState) Label() string {
	switch b {
	case BadgeLive:
		return "LIVE"
	case BadgeFinished:
		return "Selesai"
	default:
		return "Upcoming"
	}
}

// Badge derives the card badge: a live type wins over a finished status.
func (m Match) Badge() BadgeState {
	switch {
	case strings.Contains(m.Type, typeLiveSubstring):
		return BadgeLive
	case m.StatusID == StatusFinished || m.StatusID == StatusFinishedAlt:
		return BadgeFinished
	default:
		return BadgeUpcoming
	}
}

func scoreOrZero(v *FlexInt) FlexInt {
	if v == nil {
		return 0
	}
	return *v
}
