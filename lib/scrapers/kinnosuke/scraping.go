package kinnosuke

import (
	"bytes"
	"context"
	"kinnosuke/lib/htmlutil"
	"kinnosuke/lib/textutil"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	loginButton          = "id_passlogin"
	ipAddressRestriction = "IPアドレス制限により"

	recorderSelector  = "#timerecorder_txt"
	dailyListSelector = "#submit_form0"
	totalListSelector = "#total_list0"
)

// keywords rendered next to each stamp in the time recorder widget
var recorderKeywords = []struct {
	kind     ClockKind
	keywords []string
}{
	{kind: ClockIn, keywords: []string{"出社"}},
	{kind: ClockOut, keywords: []string{"退社"}},
	{kind: GoOut, keywords: []string{"外出"}},
	{kind: GoBack, keywords: []string{"戻り"}},
}

var csrfTokenRegex = regexp.MustCompile(`name="(__sectag_[\da-f]+)" value="([\da-f]+)"`)
var stampRegex = regexp.MustCompile(`\d{2}:\d{2}`)

// HasLoginPrompt reports whether the page still shows the login form, which
// is the only way to tell the session has expired.
func HasLoginPrompt(body []byte) bool {
	return bytes.Contains(body, []byte(loginButton))
}

func HasIpRestriction(body []byte) bool {
	return bytes.Contains(body, []byte(ipAddressRestriction))
}

func ScrapeCsrfToken(body []byte) (CsrfToken, bool) {
	groups := csrfTokenRegex.FindSubmatch(body)
	if len(groups) != 3 {
		return CsrfToken{}, false
	}
	return CsrfToken{Key: string(groups[1]), Value: string(groups[2])}, true
}

func ScrapeTimeRecorder(ctx context.Context, body []byte) TimeRecorder {
	_, span := tracer.Start(ctx, "scrape:TimeRecorder")
	defer span.End()

	var recorder TimeRecorder

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(body))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return recorder
	}

	doc.Find(recorderSelector).Each(func(_ int, s *goquery.Selection) {
		text := textutil.Fold(htmlutil.GetText(s.Nodes[0]))
		stamp := stampRegex.FindString(text)
		if stamp == "" {
			return
		}

		for _, k := range recorderKeywords {
			if !textutil.MatchKeyword(text, k.keywords) {
				continue
			}
			span.SetAttributes(attribute.String(k.kind.String(), stamp))
			switch k.kind {
			case ClockIn:
				recorder.ClockIn = stamp
			case ClockOut:
				recorder.ClockOut = stamp
			case GoOut:
				recorder.GoOut = stamp
			case GoBack:
				recorder.GoBack = stamp
			}
			return
		}
	})

	return recorder
}

// ScrapeTimeSheet returns the daily and total fragments of the timesheet
// page, either may be empty.
func ScrapeTimeSheet(ctx context.Context, body []byte) (daily, total *goquery.Selection) {
	_, span := tracer.Start(ctx, "scrape:TimeSheet")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(body))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, nil
	}

	daily = doc.Find(dailyListSelector).First()
	total = doc.Find(totalListSelector).First()
	span.SetAttributes(
		attribute.Bool("daily_found", daily.Length() > 0),
		attribute.Bool("total_found", total.Length() > 0),
	)
	return daily, total
}
