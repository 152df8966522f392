package output

import (
	"bytes"
	"io"
	"time"

	"github.com/Ehmachado/rel6500-go/pkg/mobrank/models"
	"github.com/Ehmachado/rel6500-go/pkg/mobrank/ranking"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultTop is the number of entries shown per group in text reports.
const DefaultTop = 10

// TextOptions configures the plain-text report.
type TextOptions struct {
	// Top limits entries per group; <= 0 shows all.
	Top int
	// Language drives number formatting (e.g. 87,50% for pt-BR).
	Language language.Tag
}

// DefaultTextOptions returns the pt-BR top-10 report settings.
func DefaultTextOptions() TextOptions {
	return TextOptions{Top: DefaultTop, Language: language.BrazilianPortuguese}
}

// ParseLanguage parses a BCP 47 tag such as "pt-BR" or "en".
func ParseLanguage(s string) (language.Tag, error) {
	return language.Parse(s)
}

// WriteText writes a human-readable ranking report, one block per group in
// registry order.
func WriteText(w io.Writer, r *models.AnalysisResult, opts TextOptions) error {
	p := message.NewPrinter(opts.Language)
	var buf bytes.Buffer

	if r.Source != "" {
		p.Fprintf(&buf, "Source: %s\n", r.Source)
	}
	if !r.Success {
		p.Fprintf(&buf, "Analysis failed: %s\n", r.Error)
		_, err := w.Write(buf.Bytes())
		return err
	}

	for _, g := range r.Groups() {
		p.Fprintf(&buf, "\n== %s ==\n", g.Name)
		p.Fprintf(&buf, "Total records: %d\n", g.TotalRecords)
		switch {
		case g.Error != "":
			p.Fprintf(&buf, "  error: %s\n", g.Error)
		case g.TotalRecords == 0:
			p.Fprintf(&buf, "  %s\n", g.Message)
		}
		for _, e := range ranking.Top(g.Ranking, opts.Top) {
			p.Fprintf(&buf, "  %d. %s: %.2f%%\n", e.Position, e.Name, e.AchievementPercent)
		}
	}
	p.Fprintf(&buf, "\nGenerated at: %s\n", r.Timestamp.Format(time.RFC3339))

	_, err := w.Write(buf.Bytes())
	return err
}
