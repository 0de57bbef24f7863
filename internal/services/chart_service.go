package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ybhavesh-0915/taxwise-CIDIB/internal/models"
)

var ErrNoReport = errors.New("no report to render")

const (
	chartWidth  = 640
	chartHeight = 420
)

type chartService struct{}

// NewChartService creates a ChartServiceInterface that renders the score
// breakdown as an SVG document. There is no raster pipeline here on purpose;
// SVG keeps the renderer dependency-free and the output embeddable.
func NewChartService() ChartServiceInterface {
	return &chartService{}
}

// RenderScoreChart renders the gauge, the per-factor bars and the utilization
// meter, returning the document base64-encoded.
func (s *chartService) RenderScoreChart(report *models.ScoreReport) (string, error) {
	if report == nil {
		return "", ErrNoReport
	}

	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		chartWidth, chartHeight, chartWidth, chartHeight)
	b.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/>`)
	fmt.Fprintf(&b, `<text x="%d" y="28" font-size="20" font-weight="bold" text-anchor="middle" font-family="sans-serif">CIBIL Score: %d (%s)</text>`,
		chartWidth/2, report.CIBILScore, report.Status)

	s.renderGauge(&b, report.CIBILScore)
	s.renderFactorBars(&b, report)
	s.renderUtilizationMeter(&b, report.ScoreBreakdown.CreditUtilization.UtilizationPct)

	b.WriteString(`</svg>`)

	return base64.StdEncoding.EncodeToString([]byte(b.String())), nil
}

// renderGauge draws a semicircular band gauge with a needle at the score
// position on the 300-900 scale.
func (s *chartService) renderGauge(b *strings.Builder, score int) {
	const cx, cy, r = 160.0, 170.0, 90.0

	bands := []struct {
		from, to float64
		color    string
	}{
		{180, 135, "#ff4444"},
		{135, 90, "#ff8800"},
		{90, 45, "#ffdd00"},
		{45, 0, "#44ff44"},
	}

	for _, band := range bands {
		x1 := cx + r*math.Cos(band.from*math.Pi/180)
		y1 := cy - r*math.Sin(band.from*math.Pi/180)
		x2 := cx + r*math.Cos(band.to*math.Pi/180)
		y2 := cy - r*math.Sin(band.to*math.Pi/180)
		fmt.Fprintf(b, `<path d="M %.1f %.1f A %.1f %.1f 0 0 1 %.1f %.1f" stroke="%s" stroke-width="18" fill="none" opacity="0.7"/>`,
			x1, y1, r, r, x2, y2, band.color)
	}

	// Needle angle: 300 maps to 180 degrees, 900 to 0
	angle := 180 - float64(score-300)/600*180
	nx := cx + (r-12)*math.Cos(angle*math.Pi/180)
	ny := cy - (r-12)*math.Sin(angle*math.Pi/180)
	fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#000000" stroke-width="3"/>`, cx, cy, nx, ny)
	fmt.Fprintf(b, `<text x="%.1f" y="%.1f" font-size="26" font-weight="bold" text-anchor="middle" font-family="sans-serif">%d</text>`,
		cx, cy+40, score)
}

func (s *chartService) renderFactorBars(b *strings.Builder, report *models.ScoreReport) {
	factors := []struct {
		label string
		score float64
		color string
	}{
		{"Payment History", report.ScoreBreakdown.PaymentHistory.Score, "#ff6b6b"},
		{"Credit Utilization", report.ScoreBreakdown.CreditUtilization.Score, "#4ecdc4"},
		{"History Length", report.ScoreBreakdown.CreditHistoryLength.Score, "#45b7d1"},
		{"Credit Mix", report.ScoreBreakdown.CreditMix.Score, "#96ceb4"},
		{"New Inquiries", report.ScoreBreakdown.NewCreditInquiries.Score, "#feca57"},
	}

	const left, top, rowHeight, maxBar = 340.0, 70.0, 42.0, 240.0

	for i, factor := range factors {
		y := top + float64(i)*rowHeight
		fmt.Fprintf(b, `<text x="%.1f" y="%.1f" font-size="12" font-family="sans-serif">%s</text>`,
			left, y-6, factor.label)
		fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="%.1f" height="16" fill="#e8e8e8"/>`,
			left, y, maxBar)
		fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="%.1f" height="16" fill="%s"/>`,
			left, y, maxBar*factor.score/100, factor.color)
		fmt.Fprintf(b, `<text x="%.1f" y="%.1f" font-size="12" font-family="sans-serif">%.0f</text>`,
			left+maxBar+8, y+13, factor.score)
	}
}

func (s *chartService) renderUtilizationMeter(b *strings.Builder, utilizationPct float64) {
	const left, top, width = 60.0, 320.0, 220.0

	clamped := math.Min(100, math.Max(0, utilizationPct))

	fmt.Fprintf(b, `<text x="%.1f" y="%.1f" font-size="14" font-weight="bold" font-family="sans-serif">Credit Utilization: %.0f%%</text>`,
		left, top-10, clamped)
	fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="%.1f" height="22" fill="#e8e8e8"/>`, left, top, width)
	fmt.Fprintf(b, `<rect x="%.1f" y="%.1f" width="%.1f" height="22" fill="#ff6b6b"/>`,
		left, top, width*clamped/100)
	// 30% guideline marker
	fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#333333" stroke-width="2" stroke-dasharray="4,3"/>`,
		left+width*0.30, top-4, left+width*0.30, top+26)
}
