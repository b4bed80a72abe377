package app

import (
	"slices"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
	"github.com/urfave/cli/v2"

	"github.com/HSellappan/RailFocus-sub001/internal/timeutil"
	"github.com/HSellappan/RailFocus-sub001/journey"
	"github.com/HSellappan/RailFocus-sub001/stats"
)

// getTimeRange returns the start and end time for a named period.
func getTimeRange(period timeutil.Period, now time.Time) (start, end time.Time) {
	start = timeutil.RoundToStart(now)
	end = timeutil.RoundToEnd(now)

	switch period {
	case timeutil.PeriodToday:
		return
	case timeutil.PeriodYesterday:
		start = timeutil.RoundToStart(now.AddDate(0, 0, timeutil.Range[period]))
		end = timeutil.RoundToEnd(start)

		return
	case timeutil.PeriodAllTime:
		start = time.Time{}
		return
	default:
		start = timeutil.RoundToStart(now.AddDate(0, 0, timeutil.Range[period]))
	}

	return
}

// parseTime resolves a natural-language or formatted date relative to now.
func parseTime(s string, now time.Time) (time.Time, error) {
	dt, err := dateparser.Parse(&dateparser.Configuration{
		CurrentTime: now,
	}, s)
	if err != nil {
		return time.Time{}, errInvalidDate.Fmt(s)
	}

	return dt.Time, nil
}

// statsOpts builds the reporting window from command-line arguments. With
// no time arguments at all it defaults to the last 7 days.
func statsOpts(ctx *cli.Context, now time.Time) (stats.Opts, error) {
	opts := stats.Opts{
		Tag: journey.Tag(strings.TrimSpace(ctx.String("tag"))),
	}

	period := timeutil.Period(strings.TrimSpace(ctx.String("period")))

	if period != "" && !slices.Contains(timeutil.PeriodCollection, period) {
		return opts, errInvalidPeriod.Fmt(period)
	}

	if period != "" {
		opts.StartTime, opts.EndTime = getTimeRange(period, now)

		return opts, nil
	}

	if since := ctx.String("since"); since != "" {
		start, err := parseTime(since, now)
		if err != nil {
			return opts, err
		}

		opts.StartTime = start
		opts.EndTime = now

		return opts, nil
	}

	if start := ctx.String("start"); start != "" {
		dateTime, err := parseTime(start, now)
		if err != nil {
			return opts, err
		}

		opts.StartTime = dateTime
	}

	if end := ctx.String("end"); end != "" {
		dateTime, err := parseTime(end, now)
		if err != nil {
			return opts, err
		}

		opts.EndTime = dateTime
	}

	if opts.StartTime.IsZero() && opts.EndTime.IsZero() {
		opts.StartTime, opts.EndTime = getTimeRange(timeutil.Period7Days, now)

		return opts, nil
	}

	if opts.EndTime.IsZero() {
		opts.EndTime = now
	}

	if opts.EndTime.Before(opts.StartTime) {
		return opts, errInvalidDateRange
	}

	return opts, nil
}
