package finance

import (
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the canonical wire format for all dates sent to the backend.
const DateLayout = "2006-01-02"

// acceptedDateLayouts are the input formats NormalizeDate understands.
// Everything is canonicalized to DateLayout before submission.
var acceptedDateLayouts = []string{
	DateLayout,
	"2006-01-02T15:04:05Z07:00",
	"02/01/2006",
	"2 Jan 2006",
	"Jan 2, 2006",
}

// NormalizeDate parses s against the accepted layouts and returns the
// canonical YYYY-MM-DD form. An empty or unparseable input is an error so
// callers can reject bad dates before any network call.
func NormalizeDate(s string) (string, error) {
	if s == "" {
		return "", errors.New("[NormalizeDate] empty date")
	}
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", errors.Errorf("[NormalizeDate] unparseable date %q", s)
}
