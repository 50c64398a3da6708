package kinnosuke

import (
	"fmt"
	"kinnosuke/lib/htmlutil"
	"kinnosuke/lib/timezone"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ClockKind is one of the four stamps the time recorder accepts.
type ClockKind int

const (
	ClockIn ClockKind = iota
	ClockOut
	GoOut
	GoBack
)

var ClockKinds = []ClockKind{ClockIn, ClockOut, GoOut, GoBack}

// Code is the value of timerecorder_stamping_type sent to the portal.
func (k ClockKind) Code() string {
	switch k {
	case ClockIn:
		return "1"
	case ClockOut:
		return "2"
	case GoOut:
		return "3"
	case GoBack:
		return "4"
	}
	panic(fmt.Sprintf("unknown clock kind %d", int(k)))
}

func (k ClockKind) String() string {
	switch k {
	case ClockIn:
		return "clock_in"
	case ClockOut:
		return "clock_out"
	case GoOut:
		return "go_out"
	case GoBack:
		return "go_back"
	}
	return fmt.Sprintf("ClockKind(%d)", int(k))
}

// Stamp returns the field of the recorder this kind populates.
func (k ClockKind) Stamp(r TimeRecorder) string {
	switch k {
	case ClockIn:
		return r.ClockIn
	case ClockOut:
		return r.ClockOut
	case GoOut:
		return r.GoOut
	case GoBack:
		return r.GoBack
	}
	return ""
}

type CsrfToken struct {
	Key   string
	Value string
}

// TimeRecorder holds today's stamps as HH:MM, an empty string means the
// stamp was not rendered.
type TimeRecorder struct {
	ClockIn  string
	ClockOut string
	GoOut    string
	GoBack   string
}

// At resolves a stamp of the recorder to a time on the given day in the
// portal's timezone.
func (r TimeRecorder) At(kind ClockKind, day time.Time) (time.Time, bool) {
	stamp := kind.Stamp(r)
	if stamp == "" {
		return time.Time{}, false
	}
	parsed, err := time.ParseInLocation("15:04", stamp, timezone.Location)
	if err != nil {
		return time.Time{}, false
	}
	day = day.In(timezone.Location)
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		timezone.Location,
	), true
}

// TimeSheet holds the two fragments of the timesheet browse page. Their
// contents are not modeled, Rows is provided for display.
type TimeSheet struct {
	Daily *goquery.Selection
	Total *goquery.Selection
}

func NewTimeSheet(daily, total *goquery.Selection) (TimeSheet, error) {
	if daily == nil || daily.Length() == 0 {
		return TimeSheet{}, fmt.Errorf("%w: daily list not found", UnexpectedPageStructure)
	}
	if total == nil || total.Length() == 0 {
		return TimeSheet{}, fmt.Errorf("%w: total list not found", UnexpectedPageStructure)
	}
	return TimeSheet{Daily: daily, Total: total}, nil
}

func (s TimeSheet) DailyRows() [][]string {
	return htmlutil.GetTableRows(s.Daily)
}

func (s TimeSheet) TotalRows() [][]string {
	return htmlutil.GetTableRows(s.Total)
}

func (s TimeSheet) DailyHtml() string {
	return outerHtml(s.Daily)
}

func (s TimeSheet) TotalHtml() string {
	return outerHtml(s.Total)
}

func outerHtml(sel *goquery.Selection) string {
	out, err := goquery.OuterHtml(sel)
	if err != nil {
		return ""
	}
	return out
}
