package dataset

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"activity-insights-go/internal/aggregator"
)

// ReadTargets reads "customer code | direct delivery code | target" rows
// into the lookup the hierarchy aggregator takes. A missing sheet is not an
// error: targets are optional.
func ReadTargets(f *excelize.File, sheet string) (map[string]string, error) {
	out := map[string]string{}
	if sheet == "" {
		return out, nil
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return out, nil
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read targets: %w", err)
	}
	if len(rows) <= 1 {
		return out, nil
	}

	codeIdx, ddIdx, targetIdx := -1, -1, -1
	for i, h := range rows[0] {
		n := normalizeHeader(h)
		switch {
		case strings.Contains(n, "delivery") && ddIdx == -1:
			ddIdx = i
		case strings.Contains(n, "customer") && codeIdx == -1:
			codeIdx = i
		case strings.Contains(n, "target") && targetIdx == -1:
			targetIdx = i
		}
	}
	if codeIdx == -1 || targetIdx == -1 {
		return out, nil
	}

	cell := func(r []string, i int) string {
		if i < 0 || i >= len(r) {
			return ""
		}
		return strings.TrimSpace(r[i])
	}
	for _, r := range rows[1:] {
		code := cell(r, codeIdx)
		target := cell(r, targetIdx)
		if code == "" || target == "" {
			continue
		}
		out[aggregator.TargetKey(code, cell(r, ddIdx))] = target
	}
	return out, nil
}
