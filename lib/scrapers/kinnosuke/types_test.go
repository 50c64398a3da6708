package kinnosuke

import (
	"bytes"
	"kinnosuke/lib/timezone"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestClockKind(t *testing.T) {
	recorder := TimeRecorder{ClockIn: "1", ClockOut: "2", GoOut: "3", GoBack: "4"}
	for _, kind := range ClockKinds {
		require.Equal(t, kind.Code(), kind.Stamp(recorder), kind.String())
	}
	require.Equal(t, "go_back", GoBack.String())
	require.Panics(t, func() { ClockKind(9).Code() })
}

func TestTimeRecorderAt(t *testing.T) {
	day := time.Date(2024, time.April, 1, 23, 0, 0, 0, timezone.Location)
	recorder := TimeRecorder{ClockIn: "09:30"}

	at, ok := recorder.At(ClockIn, day)
	require.True(t, ok)
	require.Equal(t, time.Date(2024, time.April, 1, 9, 30, 0, 0, timezone.Location), at)

	_, ok = recorder.At(ClockOut, day)
	require.False(t, ok)
}

func TestNewTimeSheet(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewBufferString(`
		<form id="submit_form0"><table>
			<tr><th>日付</th><th>出社</th><th>退社</th></tr>
			<tr><td>04/01</td><td> 10:00 </td><td>19:00</td></tr>
		</table></form>
		<table id="total_list0"><tr><td>出勤日数</td><td>1</td></tr></table>
	`))
	require.NoError(t, err)

	sheet, err := NewTimeSheet(doc.Find("#submit_form0"), doc.Find("#total_list0"))
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"日付", "出社", "退社"},
		{"04/01", "10:00", "19:00"},
	}, sheet.DailyRows())
	require.Equal(t, [][]string{{"出勤日数", "1"}}, sheet.TotalRows())
	require.Contains(t, sheet.TotalHtml(), `id="total_list0"`)

	_, err = NewTimeSheet(doc.Find("#missing"), doc.Find("#total_list0"))
	require.ErrorIs(t, err, UnexpectedPageStructure)
	_, err = NewTimeSheet(doc.Find("#submit_form0"), nil)
	require.ErrorIs(t, err, UnexpectedPageStructure)
}
