package tui

import (
	"fmt"
	"strings"
	"time"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/agentally/buyerdesk/internal/database/repository"
)

const marketChartHeight = 10

// renderMarketChart plots the monthly median-price series as a braille line.
// Month names are mapped onto synthetic dates so the time axis keeps the seed
// order; labels come back out via the formatter.
func renderMarketChart(points []repository.MarketPoint, width int) string {
	if len(points) == 0 || width < 20 {
		return ""
	}

	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	dates := make([]time.Time, len(points))
	labels := make([]string, len(points))
	minVal, maxVal := points[0].Value, points[0].Value
	for i, p := range points {
		dates[i] = base.AddDate(0, i, 0)
		labels[i] = p.Month
		if p.Value < minVal {
			minVal = p.Value
		}
		if p.Value > maxVal {
			maxVal = p.Value
		}
	}
	pad := (maxVal - minVal) * 0.15
	if pad == 0 {
		pad = 1
	}

	chart := tslc.New(width, marketChartHeight)
	chart.SetXStep(1)
	chart.SetYStep(1)
	chart.SetStyle(lipgloss.NewStyle().Foreground(colorAccent))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(colorFaint)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(colorMuted)
	chart.SetTimeRange(dates[0], dates[len(dates)-1])
	chart.SetViewTimeRange(dates[0], dates[len(dates)-1])
	chart.SetYRange(minVal-pad, maxVal+pad)
	chart.SetViewYRange(minVal-pad, maxVal+pad)
	chart.Model.XLabelFormatter = func(_ int, v float64) string {
		idx := monthIndex(dates, v)
		if idx < 0 {
			return ""
		}
		return labels[idx]
	}
	chart.Model.YLabelFormatter = func(_ int, v float64) string {
		return fmt.Sprintf("%dk", int(v))
	}

	for i, d := range dates {
		chart.Push(tslc.TimePoint{Time: d, Value: points[i].Value})
	}
	chart.DrawBraille()
	return chart.View()
}

// monthIndex maps an axis timestamp back to the nearest seeded month.
func monthIndex(dates []time.Time, v float64) int {
	t := time.Unix(int64(v), 0).UTC()
	for i, d := range dates {
		if t.Year() == d.Year() && t.Month() == d.Month() {
			return i
		}
	}
	return -1
}

// renderIndicatorBar draws a labeled horizontal gauge used by the market
// indicator rows.
func renderIndicatorBar(label, value string, ratio float64, width int) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	barWidth := width - 2
	if barWidth < 4 {
		barWidth = 4
	}
	filled := int(ratio * float64(barWidth))
	head := lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render(label),
		lipgloss.NewStyle().Foreground(colorAccent).Render(" "+value),
	)
	return head + "\n" +
		lipgloss.NewStyle().Foreground(colorAccent).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(colorFaint).Render(strings.Repeat("─", barWidth-filled))
}
