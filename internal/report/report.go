// Package report renders solver output for humans (aligned text) and for
// machines (JSON). It only formats; no solving happens here.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jota0802/gs-dynamic/knapsack"
)

// Format selects the rendering.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
)

// ErrUnknownFormat is returned for formats other than Text and JSON.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// SolutionView is the serialized shape of one solver run.
// Items is null when the strategy recovers no selection and [] when the
// recovered selection is empty.
type SolutionView struct {
	Algorithm    string   `json:"algorithm"`
	Value        float64  `json:"value"`
	Exact        bool     `json:"exact"`
	Items        []string `json:"items"`
	CapacityUsed int      `json:"capacity_used,omitempty"`
}

// NewSolutionView flattens s; items keep the order the solver reported.
func NewSolutionView(s knapsack.Solution) SolutionView {
	v := SolutionView{
		Algorithm: s.Algo.String(),
		Value:     s.Value,
		Exact:     s.Exact,
	}
	if s.HasSelection() {
		v.Items = s.Names()
		v.CapacityUsed = s.CapacityUsed
	}

	return v
}

// SolveReport is a single-strategy result with its problem header.
type SolveReport struct {
	Catalog  string       `json:"catalog"`
	Capacity int          `json:"capacity"`
	Solution SolutionView `json:"solution"`
}

// ComparisonReport is the cross-strategy summary.
type ComparisonReport struct {
	Catalog           string         `json:"catalog"`
	Capacity          int            `json:"capacity"`
	Optimum           float64        `json:"optimum"`
	Agree             bool           `json:"agree"`
	GreedyOptimal     bool           `json:"greedy_optimal"`
	GreedyGap         float64        `json:"greedy_gap"`
	BruteForceSkipped bool           `json:"bruteforce_skipped,omitempty"`
	Solutions         []SolutionView `json:"solutions"`
}

// NewComparisonReport summarizes c for catalog name under capacity.
func NewComparisonReport(name string, capacity int, c knapsack.Comparison) ComparisonReport {
	sols := c.Solutions()
	views := make([]SolutionView, len(sols))
	for i, s := range sols {
		views[i] = NewSolutionView(s)
	}

	return ComparisonReport{
		Catalog:           name,
		Capacity:          capacity,
		Optimum:           c.Optimum(),
		Agree:             c.Agree(),
		GreedyOptimal:     c.GreedyOptimal(),
		GreedyGap:         c.GreedyGap(),
		BruteForceSkipped: c.BruteForceSkipped,
		Solutions:         views,
	}
}

// DatasetView describes one catalog in the dataset listing.
type DatasetView struct {
	Name      string `json:"name"`
	Items     int    `json:"items"`
	Capacity  int    `json:"capacity"`
	TotalCost int    `json:"total_cost"`
}

// NewDatasetView summarizes cat.
func NewDatasetView(cat knapsack.Catalog) DatasetView {
	return DatasetView{
		Name:      cat.Name,
		Items:     len(cat.Items),
		Capacity:  cat.Capacity,
		TotalCost: cat.TotalCost(),
	}
}

// WriteSolve renders r.
func WriteSolve(w io.Writer, f Format, r SolveReport) error {
	if f == JSON {
		return writeJSON(w, r)
	}

	tw := newTabWriter(w)
	fmt.Fprintf(tw, "catalog\t%s\n", r.Catalog)
	fmt.Fprintf(tw, "capacity\t%d\n", r.Capacity)
	fmt.Fprintf(tw, "algorithm\t%s\n", r.Solution.Algorithm)
	fmt.Fprintf(tw, "value\t%s\n", num(r.Solution.Value))
	fmt.Fprintf(tw, "exact\t%t\n", r.Solution.Exact)
	if r.Solution.Items != nil {
		fmt.Fprintf(tw, "used\t%d\n", r.Solution.CapacityUsed)
		fmt.Fprintf(tw, "items\t%s\n", names(r.Solution.Items))
	}

	return tw.Flush()
}

// WriteComparison renders r: one row per strategy, then the verdict.
func WriteComparison(w io.Writer, f Format, r ComparisonReport) error {
	if f == JSON {
		return writeJSON(w, r)
	}

	fmt.Fprintf(w, "catalog %s, capacity %d\n", r.Catalog, r.Capacity)
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "ALGORITHM\tVALUE\tEXACT\tUSED\tITEMS")
	for _, s := range r.Solutions {
		used, items := "-", "-"
		if s.Items != nil {
			used, items = strconv.Itoa(s.CapacityUsed), names(s.Items)
		}
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\t%s\n", s.Algorithm, num(s.Value), s.Exact, used, items)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if r.BruteForceSkipped {
		fmt.Fprintln(w, "bruteforce skipped: catalog above the enumeration cap")
	}

	agree := "yes"
	if !r.Agree {
		agree = "NO"
	}
	_, err := fmt.Fprintf(w, "optimum %s, exact methods agree: %s, greedy gap: %s\n",
		num(r.Optimum), agree, num(r.GreedyGap))

	return err
}

// WriteDatasets renders the dataset listing.
func WriteDatasets(w io.Writer, f Format, ds []DatasetView) error {
	if f == JSON {
		return writeJSON(w, ds)
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "NAME\tITEMS\tCAPACITY\tTOTAL COST")
	for _, d := range ds {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", d.Name, d.Items, d.Capacity, d.TotalCost)
	}

	return tw.Flush()
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// num prints integral values without a fractional part.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func names(ns []string) string {
	if len(ns) == 0 {
		return "(none)"
	}

	return strings.Join(ns, ", ")
}
