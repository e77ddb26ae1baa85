package dataset

import (
	"activity-insights-go/internal/actions"
	"activity-insights-go/internal/dates"
	"activity-insights-go/internal/logger"
	"activity-insights-go/internal/types"
)

type DatasetSummary struct {
	TotalRecords int            `json:"total_records"`
	Dated        int            `json:"dated"`
	Undated      int            `json:"undated"`
	Customers    int            `json:"customers"`
	FirstDate    string         `json:"first_date,omitempty"`
	LastDate     string         `json:"last_date,omitempty"`
	ByCategory   map[string]int `json:"by_category"`
}

// Summarize gives a quick profile of a snapshot: how many rows, how many
// carry a usable date, and the date span.
func Summarize(records []types.ActivityRecord) DatasetSummary {
	ds := DatasetSummary{TotalRecords: len(records), ByCategory: map[string]int{}}
	customers := map[string]struct{}{}
	var first, last dates.Date

	for _, raw := range records {
		rec := raw.Normalized()
		ds.ByCategory[string(actions.Classify(rec.ActionType))]++
		if rec.CustomerCode != "" {
			customers[rec.CustomerCode] = struct{}{}
		}
		d, ok := dates.Parse(rec.Date)
		if !ok {
			ds.Undated++
			continue
		}
		ds.Dated++
		if first.IsZero() || d.Compare(first) < 0 {
			first = d
		}
		if d.Compare(last) > 0 {
			last = d
		}
	}
	ds.Customers = len(customers)
	ds.FirstDate = first.String()
	ds.LastDate = last.String()
	return ds
}

// LoadAndSummarize loads the workbook and logs its profile.
func LoadAndSummarize(path string, opts Options) (Workbook, DatasetSummary, error) {
	log := logger.New().Component("dataset.summary").WithField("path", path)
	log.Info("opening dataset for summarization")

	wb, err := Load(path, opts)
	if err != nil {
		log.WithError(err).Error("load failed")
		return Workbook{}, DatasetSummary{}, err
	}
	ds := Summarize(wb.Records)
	log.WithFields(map[string]interface{}{
		"sheet":      wb.Sheet,
		"records":    ds.TotalRecords,
		"undated":    ds.Undated,
		"customers":  ds.Customers,
		"first_date": ds.FirstDate,
		"last_date":  ds.LastDate,
		"targets":    len(wb.Targets),
	}).Info("dataset summarization complete")
	for cat, n := range ds.ByCategory {
		log.WithField("category", cat).WithField("count", n).Debug("records by category")
	}
	return wb, ds, nil
}
