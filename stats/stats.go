// Package stats reports journey statistics for a reporting period.
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/HSellappan/RailFocus-sub001/internal/timeutil"
	"github.com/HSellappan/RailFocus-sub001/internal/ui"
	"github.com/HSellappan/RailFocus-sub001/journey"
	"github.com/HSellappan/RailFocus-sub001/ledger"
)

const (
	barChartChar   = "▇"
	noJourneysMsg  = "No journeys found for the specified time range"
	displayDateFmt = "January 02, 2006"
)

// Opts bounds the reporting period and selects journeys for the report.
type Opts struct {
	StartTime time.Time
	EndTime   time.Time
	Tag       journey.Tag
}

type summary struct {
	tags          map[journey.Tag]time.Duration
	daily         map[int]time.Duration
	totalTime     time.Duration
	totalDistance float64
	completed     int
	interrupted   int
}

// Stats computes and renders a journey report. Compute must run before
// Render, ToJSON, or Show.
type Stats struct {
	Opts     Opts
	Ledger   *ledger.Ledger
	progress ledger.UserProgress
	totals   summary
}

// Report is the JSON shape of a computed report.
type Report struct {
	StartTime          time.Time         `json:"start_time"`
	EndTime            time.Time         `json:"end_time"`
	CurrentStreak      int               `json:"current_streak"`
	TotalJourneys      int               `json:"total_journeys"`
	TotalFocusTime     string            `json:"total_focus_time"`
	Completed          int               `json:"completed"`
	Interrupted        int               `json:"interrupted"`
	TotalDistanceMiles float64           `json:"total_distance_miles"`
	TimeLogged         string            `json:"time_logged"`
	Tags               map[string]string `json:"tags"`
}

// inPeriod reports whether a journey finished within the reporting bounds
// and matches the tag filter. A zero start time means all-time.
func (s *Stats) inPeriod(j *journey.Journey) bool {
	if s.Opts.Tag != journey.TagNone && j.Tag != s.Opts.Tag {
		return false
	}

	if !s.Opts.StartTime.IsZero() && j.CompletedAt.Before(s.Opts.StartTime) {
		return false
	}

	if !s.Opts.EndTime.IsZero() && j.CompletedAt.After(s.Opts.EndTime) {
		return false
	}

	return true
}

// Compute walks the full history and aggregates the journeys that fall in
// the reporting period. The streak and lifetime totals always reflect the
// whole ledger.
func (s *Stats) Compute(now time.Time) {
	s.progress = s.Ledger.Statistics(now)

	s.totals = summary{
		tags:  make(map[journey.Tag]time.Duration),
		daily: make(map[int]time.Duration),
	}

	for j := range s.Ledger.History(0) {
		if !s.inPeriod(&j) {
			continue
		}

		if j.Outcome == journey.OutcomeInterrupted {
			s.totals.interrupted++
			continue
		}

		s.totals.completed++
		s.totals.totalTime += j.ActualElapsed
		s.totals.totalDistance += j.DistanceMiles
		s.totals.daily[timeutil.DayKey(j.CompletedAt)] += j.ActualElapsed

		tag := j.Tag
		if tag == journey.TagNone {
			tag = "uncategorized"
		}

		s.totals.tags[tag] += j.ActualElapsed
	}
}

// ToJSON serializes the computed report.
func (s *Stats) ToJSON() ([]byte, error) {
	r := Report{
		StartTime:          s.Opts.StartTime,
		EndTime:            s.Opts.EndTime,
		CurrentStreak:      s.progress.CurrentStreak,
		TotalJourneys:      s.progress.TotalJourneys,
		TotalFocusTime:     s.progress.TotalFocusTime.String(),
		Completed:          s.totals.completed,
		Interrupted:        s.totals.interrupted,
		TotalDistanceMiles: s.totals.totalDistance,
		TimeLogged:         s.totals.totalTime.String(),
		Tags:               make(map[string]string, len(s.totals.tags)),
	}

	for tag, d := range s.totals.tags {
		r.Tags[string(tag)] = d.String()
	}

	return json.MarshalIndent(r, "", "  ")
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)

	h := int(d.Hours())
	m := int(d.Minutes()) % 60

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// getSummary retrieves the journey summary for the reporting period.
func (s *Stats) getSummary() string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	timeLogged := fmt.Sprintf(
		"Time logged: %s\n",
		ui.Green(formatDuration(s.totals.totalTime)),
	)

	distance := fmt.Sprintf(
		"Distance traveled: %s\n",
		ui.Green(fmt.Sprintf("%.0f miles", s.totals.totalDistance)),
	)

	completed := fmt.Sprintln(
		"Journeys completed:",
		ui.Green(s.totals.completed),
	)

	interrupted := fmt.Sprintln(
		"Journeys interrupted:",
		ui.Green(s.totals.interrupted),
	)

	return header + timeLogged + distance + completed + interrupted
}

// getProgress renders the all-time aggregates.
func (s *Stats) getProgress() string {
	header := fmt.Sprintf("\n%s\n", ui.Blue("All time"))

	streak := fmt.Sprintf(
		"Current streak: %s\n",
		ui.Green(fmt.Sprintf("%d days", s.progress.CurrentStreak)),
	)

	total := fmt.Sprintf(
		"Journeys: %s\n",
		ui.Green(s.progress.TotalJourneys),
	)

	focus := fmt.Sprintf(
		"Focus time: %s\n",
		ui.Green(formatDuration(s.progress.TotalFocusTime)),
	)

	return header + streak + total + focus
}

// getTags retrieves the tag breakdown for the reporting period.
func (s *Stats) getTags() string {
	if len(s.totals.tags) == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Tags")))

	type keyValue struct {
		key   journey.Tag
		value time.Duration
	}

	kv := make([]keyValue, 0, len(s.totals.tags))
	for k, v := range s.totals.tags {
		kv = append(kv, keyValue{k, v})
	}

	sort.SliceStable(kv, func(i, j int) bool {
		return kv[i].value > kv[j].value
	})

	for _, v := range kv {
		builder.WriteString(fmt.Sprintf(
			"%s: %s\n",
			v.key,
			ui.Green(formatDuration(v.value)),
		))
	}

	return builder.String()
}

// getBarChart renders the per-day focus minutes for the period.
func (s *Stats) getBarChart() string {
	if len(s.totals.daily) == 0 {
		return ""
	}

	header := ui.Blue("\nDaily breakdown (minutes)")

	keys := make([]int, 0, len(s.totals.daily))
	for k := range s.totals.daily {
		keys = append(keys, k)
	}

	sort.Ints(keys)

	var bars pterm.Bars

	for _, k := range keys {
		date := time.Date(k/10000, time.Month(k/100%100), k%100,
			0, 0, 0, 0, time.Local)

		bars = append(bars, pterm.Bar{
			Value: timeutil.Round(s.totals.daily[k].Minutes()),
			Label: date.Format("Jan 02"),
		})
	}

	chart, err := pterm.DefaultBarChart.
		WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

// Show writes the full report for the reporting period to w.
func (s *Stats) Show(w io.Writer) error {
	if s.totals.completed == 0 && s.totals.interrupted == 0 {
		_, err := fmt.Fprintln(w, noJourneysMsg)
		return err
	}

	start := s.Opts.StartTime.Format(displayDateFmt)
	end := s.Opts.EndTime.Format(displayDateFmt)

	header := pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("Reporting period: %s - %s", start, end)

	output := fmt.Sprint(
		header,
		s.getSummary(),
		s.getProgress(),
		s.getTags(),
		s.getBarChart(),
	)

	_, err := fmt.Fprintln(w, strings.TrimSpace(output))

	return err
}
