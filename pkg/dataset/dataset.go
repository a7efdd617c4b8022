// Package dataset loads the salary CSV and prepares the feature/target
// split the training pipeline is fitted on.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// FeatureColumns is the canonical feature order. The pipeline is fitted on
// this order and the serving side must build inference rows to match it.
var FeatureColumns = []string{
	"experience_level",
	"job_title",
	"company_location",
	"remote_ratio",
	"work_year",
}

// TargetColumn is the regression target.
const TargetColumn = "salary_in_usd"

// Row is a single feature record. Missing categoricals are empty strings,
// missing numerics are NaN; imputation happens in the pipeline.
type Row struct {
	ExperienceLevel string
	JobTitle        string
	CompanyLocation string
	RemoteRatio     float64
	WorkYear        float64
}

// Table is a loaded feature/target frame.
type Table struct {
	Rows    []Row
	Target  []float64
	Dropped int // rows removed for a missing target
}

// Len returns the number of usable rows.
func (t *Table) Len() int { return len(t.Rows) }

// Load reads a salary CSV, drops rows with a missing target, and keeps the
// five model features. Extra columns are ignored.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close() //nolint: errcheck

	return Read(f)
}

// Read parses CSV data with a header row into a Table.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, col := range append(append([]string{}, FeatureColumns...), TargetColumn) {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("dataset is missing required column %q", col)
		}
	}

	t := &Table{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}

		target, ok := parseFloat(record[idx[TargetColumn]])
		if !ok {
			t.Dropped++
			continue
		}

		remote, _ := parseFloat(record[idx["remote_ratio"]])
		year, _ := parseFloat(record[idx["work_year"]])

		t.Rows = append(t.Rows, Row{
			ExperienceLevel: strings.TrimSpace(record[idx["experience_level"]]),
			JobTitle:        strings.TrimSpace(record[idx["job_title"]]),
			CompanyLocation: strings.TrimSpace(record[idx["company_location"]]),
			RemoteRatio:     remote,
			WorkYear:        year,
		})
		t.Target = append(t.Target, target)
	}

	if t.Len() == 0 {
		return nil, fmt.Errorf("dataset has no rows with a %s value", TargetColumn)
	}
	return t, nil
}

// MissingCounts tallies missing cells per feature column, keyed by the
// FeatureColumns names.
func (t *Table) MissingCounts() map[string]int {
	counts := make(map[string]int, len(FeatureColumns))
	for _, col := range FeatureColumns {
		counts[col] = 0
	}
	for _, row := range t.Rows {
		if row.ExperienceLevel == "" {
			counts["experience_level"]++
		}
		if row.JobTitle == "" {
			counts["job_title"]++
		}
		if row.CompanyLocation == "" {
			counts["company_location"]++
		}
		if math.IsNaN(row.RemoteRatio) {
			counts["remote_ratio"]++
		}
		if math.IsNaN(row.WorkYear) {
			counts["work_year"]++
		}
	}
	return counts
}

// parseFloat reports NaN for blank or unparsable cells.
func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return math.NaN(), false
	}
	return v, true
}

// Split shuffles the table with the given seed and carves off testSize
// (0,1) of it as the held-out set.
func (t *Table) Split(seed int64, testSize float64) (train, test *Table) {
	n := t.Len()
	perm := rand.New(rand.NewSource(seed)).Perm(n)

	testN := int(math.Round(float64(n) * testSize))
	if testN < 1 && n > 1 {
		testN = 1
	}

	train = &Table{}
	test = &Table{}
	for i, j := range perm {
		dst := train
		if i < testN {
			dst = test
		}
		dst.Rows = append(dst.Rows, t.Rows[j])
		dst.Target = append(dst.Target, t.Target[j])
	}
	return train, test
}
