package tributary

import (
	"time"

	"github.com/tributary-xyz/goapi/domain"
)

// Period is a chart lookback window
type Period string

const (
	Period24h Period = "24h"
	Period7d  Period = "7d"
	Period30d Period = "30d"
	Period90d Period = "90d"
)

func (p Period) Duration() (time.Duration, error) {
	switch p {
	case Period24h:
		return 24 * time.Hour, nil
	case Period7d:
		return 7 * 24 * time.Hour, nil
	case Period30d:
		return 30 * 24 * time.Hour, nil
	case Period90d:
		return 90 * 24 * time.Hour, nil
	}
	return 0, domain.ErrInvalidPeriod
}

// Resolution is a bucket width
type Resolution string

const (
	ResolutionHourly Resolution = "hourly"
	ResolutionDaily  Resolution = "daily"
)

func (r Resolution) Interval() (time.Duration, error) {
	switch r {
	case ResolutionHourly:
		return time.Hour, nil
	case ResolutionDaily:
		return 24 * time.Hour, nil
	}
	return 0, domain.ErrInvalidResolution
}

// PricePoint is one OHLC+volume bucket. Timestamp is the bucket start in
// unix seconds; prices and volume are integer strings in smallest units.
type PricePoint struct {
	Timestamp int64  `json:"timestamp"`
	Open      string `json:"open"`
	High      string `json:"high"`
	Low       string `json:"low"`
	Close     string `json:"close"`
	Volume    string `json:"volume"`
}
