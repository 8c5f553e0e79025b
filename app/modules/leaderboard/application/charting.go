package leaderboardservice

import (
	"bytes"
	"math"

	leaderboarddomain "github.com/Black-And-White-Club/golf-trip/app/modules/leaderboard/domain"
	scoredomain "github.com/Black-And-White-Club/golf-trip/app/modules/score/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	chartHeight   = 400
	chartMinWidth = 400
	barWidth      = 40
	barSpacing    = 20
)

// GenerateLeaderboardChart produces a PNG bar chart of a round's ranked
// scores, leader first.
func GenerateLeaderboardChart(title string, ranking leaderboarddomain.Ranking, palette ChartPalette) ([]byte, error) {
	if len(ranking.Rows) == 0 {
		return renderNoDataPlaceholder(palette)
	}

	bars := make([]chart.Value, 0, len(ranking.Rows))
	lo, hi := 0.0, 0.0
	for _, row := range ranking.Rows {
		fill := drawing.ColorFromHex(palette.PrimaryBar)
		if row.Position == 1 {
			fill = drawing.ColorFromHex(palette.LeaderBar)
		}
		bars = append(bars, chart.Value{
			Label: row.Player + " " + scoredomain.FormatVsPar(row.Totals.Vs),
			Value: row.Score,
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: fill,
				StrokeWidth: 1,
			},
		})
		lo = math.Min(lo, row.Score)
		hi = math.Max(hi, row.Score)
	}

	yName := "Gross"
	if ranking.Key == leaderboarddomain.SortNet {
		yName = "Net"
	}

	graph := chart.BarChart{
		Title:  title,
		Width:  max(chartMinWidth, 120+len(bars)*(barWidth+barSpacing)),
		Height: chartHeight,
		Background: chart.Style{
			FillColor: drawing.ColorFromHex(palette.Background),
		},
		Canvas: chart.Style{
			FillColor: drawing.ColorFromHex(palette.Background),
		},
		TitleStyle: chart.Style{
			FontColor: drawing.ColorFromHex(palette.TextColor),
		},
		XAxis: chart.Style{
			FontColor: drawing.ColorFromHex(palette.TextColor),
		},
		YAxis: chart.YAxis{
			Name: yName,
			Style: chart.Style{
				FontColor: drawing.ColorFromHex(palette.TextColor),
			},
			Range: &chart.ContinuousRange{
				Min: lo,
				Max: hi*1.1 + 1,
			},
		},
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Bars:       bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// renderNoDataPlaceholder draws a blank card with a message. go-chart refuses
// to render charts without data, so it paints the canvas directly.
func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "No scores entered yet"
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}

	bg := drawing.ColorFromHex(palette.Background)
	chart.Draw.Box(r, chart.Box{Top: 0, Left: 0, Right: width, Bottom: height}, chart.Style{
		FillColor:   bg,
		StrokeColor: bg,
		StrokeWidth: 1,
	})

	r.SetFont(font)
	r.SetFontColor(drawing.ColorFromHex(palette.TextColor))
	r.SetFontSize(12.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
