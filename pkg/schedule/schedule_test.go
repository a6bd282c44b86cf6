package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/username/calendar-utils/pkg/dateutil"
)

func TestStrings(t *testing.T) {
	type args struct {
		start string
		end   string
		work  int
		off   int
	}

	for _, tt := range []struct {
		name string
		args args
		want []string
	}{
		{
			name: "one working day then three off",
			args: args{start: "01-01-2024", end: "15-01-2024", work: 1, off: 3},
			want: []string{"01-01-2024", "05-01-2024", "09-01-2024", "13-01-2024"},
		},
		{
			name: "two on two off",
			args: args{start: "01-01-2024", end: "10-01-2024", work: 2, off: 2},
			want: []string{"01-01-2024", "02-01-2024", "05-01-2024", "06-01-2024", "09-01-2024", "10-01-2024"},
		},
		{
			name: "cycle longer than period keeps every day",
			args: args{start: "01-01-2024", end: "03-01-2024", work: 5, off: 2},
			want: []string{"01-01-2024", "02-01-2024", "03-01-2024"},
		},
		{
			name: "single day period",
			args: args{start: "07-03-2024", end: "07-03-2024", work: 1, off: 1},
			want: []string{"07-03-2024"},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			period, err := dateutil.ParsePeriod(tt.args.start, tt.args.end)
			require.NoError(t, err)

			got := Strings(period, Pattern{WorkDays: tt.args.work, OffDays: tt.args.off})
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDatesEmptyWhenStartAfterEnd(t *testing.T) {
	period := dateutil.Period{
		Start: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	got := Dates(period, Pattern{WorkDays: 1, OffDays: 1})
	require.Empty(t, got)
}

func TestDatesStayWithinPeriod(t *testing.T) {
	period := dateutil.Period{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
	}

	got := Dates(period, Pattern{WorkDays: 3, OffDays: 4})
	require.NotEmpty(t, got)
	require.True(t, got[0].Equal(period.Start))

	for i, d := range got {
		require.False(t, d.Before(period.Start), "date %v before period start", d)
		require.False(t, d.After(period.End), "date %v after period end", d)

		if i > 0 {
			require.True(t, got[i-1].Before(d), "dates out of order at %d", i)
		}
	}
}

func TestIsWorkDate(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	pat := Pattern{WorkDays: 1, OffDays: 3}

	for _, tt := range []struct {
		name string
		date time.Time
		want bool
	}{
		{"anchor day works", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"first off day", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), false},
		{"last off day", time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), false},
		{"next cycle works", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), true},
		{"third cycle", time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), true},
		{"before anchor", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsWorkDate(start, pat, tt.date))
		})
	}
}

func TestIsWorkDateMatchesDates(t *testing.T) {
	period := dateutil.Period{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	pat := Pattern{WorkDays: 2, OffDays: 3}

	working := make(map[string]bool)
	for _, d := range Dates(period, pat) {
		working[d.Format(DateLayout)] = true
	}

	for day := period.Start; !day.After(period.End); day = day.AddDate(0, 0, 1) {
		require.Equal(t, working[day.Format(DateLayout)], IsWorkDate(period.Start, pat, day),
			"IsWorkDate disagrees with Dates on %v", day.Format(DateLayout))
	}
}

func TestPatternValidate(t *testing.T) {
	require.NoError(t, Pattern{WorkDays: 1, OffDays: 3}.Validate())
	require.Error(t, Pattern{WorkDays: 0, OffDays: 3}.Validate())
	require.Error(t, Pattern{WorkDays: 2, OffDays: 0}.Validate())
	require.Error(t, Pattern{WorkDays: -1, OffDays: -1}.Validate())
}
