package main

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/bitmark-inc/covid-dashboard/chart"
	"github.com/bitmark-inc/covid-dashboard/schema"
	"github.com/bitmark-inc/covid-dashboard/utils"
)

const columnGap = "  "

// writeReport prints the summary cards followed by the daily change table.
// Columns are padded by display width so CJK titles line up.
func writeReport(w io.Writer, view schema.View, lang string) error {
	for _, card := range view.Cards {
		if _, err := fmt.Fprintf(w, "%s%s%s\n", runewidth.FillRight(card.Title, cardWidth(view.Cards)), columnGap, card.Value); err != nil {
			return err
		}
	}

	if len(view.DailyChanges) == 0 {
		_, err := fmt.Fprintln(w, "\n(no daily changes)")
		return err
	}

	header := "Date"
	if view.Titles != nil {
		header = view.Titles.Bar
	}

	rows := make([][2]string, 0, len(view.DailyChanges))
	dateWidth, valueWidth := runewidth.StringWidth("Date"), runewidth.StringWidth(header)
	for _, d := range view.DailyChanges {
		v := utils.FormatNumber(lang, d.Value)
		rows = append(rows, [2]string{d.Date, v})
		if n := runewidth.StringWidth(d.Date); n > dateWidth {
			dateWidth = n
		}
		if n := runewidth.StringWidth(v); n > valueWidth {
			valueWidth = n
		}
	}

	lines := []string{
		"",
		runewidth.FillRight("Date", dateWidth) + columnGap + runewidth.FillLeft(header, valueWidth),
		strings.Repeat("-", dateWidth) + columnGap + strings.Repeat("-", valueWidth),
	}
	for _, r := range rows {
		lines = append(lines, runewidth.FillRight(r[0], dateWidth)+columnGap+runewidth.FillLeft(r[1], valueWidth))
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func cardWidth(cards []schema.SummaryCard) int {
	width := 0
	for _, c := range cards {
		if n := runewidth.StringWidth(c.Title); n > width {
			width = n
		}
	}
	return width
}

// writeCharts renders the three charts into dir. A chart without enough
// data is skipped and reported in the returned list.
func writeCharts(dir string, view schema.View, size chart.Size) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	titles := schema.ChartTitles{}
	if view.Titles != nil {
		titles = *view.Titles
	}

	renders := []struct {
		name   string
		render func() ([]byte, error)
	}{
		{"line.png", func() ([]byte, error) { return chart.Line(view.Series, view.Metric, titles.Line, size) }},
		{"bar.png", func() ([]byte, error) { return chart.Bar(view.DailyChanges, titles.Bar, size) }},
		{"scatter.png", func() ([]byte, error) { return chart.Scatter(view.Scatter, titles.Scatter, size) }},
	}

	skipped := []string{}
	for _, r := range renders {
		b, err := r.render()
		if errors.Is(err, chart.ErrNotEnoughData) {
			skipped = append(skipped, r.name)
			continue
		}
		if err != nil {
			return skipped, fmt.Errorf("render %s: %w", r.name, err)
		}
		if err := ioutil.WriteFile(filepath.Join(dir, r.name), b, 0644); err != nil {
			return skipped, err
		}
	}
	return skipped, nil
}
