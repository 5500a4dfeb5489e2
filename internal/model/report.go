package model

import "sort"

// Row is one line of the language report.
type Row struct {
	// Language is the language name.
	Language string `json:"language"`

	// Bytes is the raw byte count for the language.
	Bytes int64 `json:"bytes"`

	// Percent is the share of the total in the range [0, 100].
	Percent float64 `json:"percent"`
}

// Report is a tally sorted by byte count with percentage shares.
type Report struct {
	// Repository is the "owner/name" identifier the tally belongs to.
	Repository string `json:"repository"`

	// TotalBytes is the sum of all byte counts.
	TotalBytes int64 `json:"totalBytes"`

	// Rows are ordered by descending byte count. Languages with equal
	// byte counts keep the order in which the platform returned them.
	Rows []Row `json:"rows"`
}

// NewReport builds a Report from a tally.
// When the total is zero the report has no rows, so that a repository
// whose languages all weigh zero bytes is reported as having no data.
func NewReport(repository string, tally Tally) *Report {
	report := &Report{
		Repository: repository,
		TotalBytes: tally.Total(),
		Rows:       []Row{},
	}
	if report.TotalBytes == 0 {
		return report
	}

	sorted := make(Tally, len(tally))
	copy(sorted, tally)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Bytes > sorted[j].Bytes
	})

	report.Rows = make([]Row, len(sorted))
	for i, lb := range sorted {
		report.Rows[i] = Row{
			Language: lb.Name,
			Bytes:    lb.Bytes,
			Percent:  float64(lb.Bytes) / float64(report.TotalBytes) * 100,
		}
	}
	return report
}

// IsEmpty reports whether the report has no detectable languages.
func (r *Report) IsEmpty() bool {
	return r.TotalBytes == 0
}

// PercentSum returns the sum of all row percentages.
func (r *Report) PercentSum() float64 {
	var sum float64
	for _, row := range r.Rows {
		sum += row.Percent
	}
	return sum
}
