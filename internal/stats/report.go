// Package stats contains dictionary statistics and reporting.
package stats

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/verte-zerg/slotword/internal/model"
	"github.com/verte-zerg/slotword/internal/store"
	"github.com/verte-zerg/slotword/internal/wordlist"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Lang   string
	Source string
	Total  int
	Counts []model.LengthCount
}

// BuildReport loads length counts for lang from the store.
func BuildReport(ctx context.Context, st *store.Store, lang string) (Report, error) {
	counts, err := st.LengthCounts(ctx, lang)
	if err != nil {
		return Report{}, err
	}
	if len(counts) == 0 {
		return Report{}, errors.Wrapf(store.ErrNotImported, "language %q", lang)
	}
	return Report{Lang: lang, Source: "db", Total: totalCount(counts), Counts: counts}, nil
}

// ReportFromDictionary computes a report from a loaded dictionary.
func ReportFromDictionary(d *wordlist.Dictionary, source string) Report {
	counts := LengthHistogram(d.Words())
	return Report{Lang: d.Lang(), Source: source, Total: d.Len(), Counts: counts}
}

// Write renders the report as a table followed by a bar chart.
func (r Report) Write(w io.Writer, width int) error {
	if _, err := fmt.Fprintf(w, "%s (%s): %d words, lengths %s\n\n", r.Lang, r.Source, r.Total, r.lengthRange()); err != nil {
		return err
	}
	for _, line := range lengthTable(r.Counts, r.Total) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, line := range renderBars(r.Counts, width) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (r Report) lengthRange() string {
	if len(r.Counts) == 0 {
		return "-"
	}
	return fmt.Sprintf("%d-%d", r.Counts[0].Length, r.Counts[len(r.Counts)-1].Length)
}
