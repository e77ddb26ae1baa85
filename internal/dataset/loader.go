package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"activity-insights-go/internal/types"
)

var (
	ErrNoSheets   = errors.New("no sheets")
	ErrNoDataRows = errors.New("no data rows")
)

type Options struct {
	// Sheet holding activity rows; empty means the first sheet.
	Sheet string
	// TargetsSheet is optional; a missing sheet yields no targets.
	TargetsSheet string
	// OpenRetry bounds how long a locked workbook is retried. Zero tries once.
	OpenRetry time.Duration
}

// Workbook is one parsed snapshot of the activity log.
type Workbook struct {
	Sheet   string
	Records []types.ActivityRecord
	Targets map[string]string
}

// Load opens the workbook and reads activity rows plus the target sheet.
func Load(path string, opts Options) (Workbook, error) {
	f, err := openWorkbook(path, opts.OpenRetry)
	if err != nil {
		return Workbook{}, err
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return Workbook{}, ErrNoSheets
		}
		sheet = sheets[0]
	}
	records, err := ReadRecords(f, sheet)
	if err != nil {
		return Workbook{}, err
	}
	targets, err := ReadTargets(f, opts.TargetsSheet)
	if err != nil {
		return Workbook{}, err
	}
	return Workbook{Sheet: sheet, Records: records, Targets: targets}, nil
}

// ReadRecords maps the sheet's header row onto record fields and reads every
// non-blank row. Cell values are raw so date cells arrive as serial numbers.
func ReadRecords(f *excelize.File, sheet string) ([]types.ActivityRecord, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, ErrNoDataRows
	}
	idx := detectColumns(rows[0])
	date1904 := uses1904(f)

	out := make([]types.ActivityRecord, 0, len(rows)-1)
	for _, r := range rows[1:] {
		if blank(r) {
			continue
		}
		get := func(c column) string {
			i := idx[c]
			if i < 0 || i >= len(r) {
				return ""
			}
			return strings.TrimSpace(r[i])
		}
		out = append(out, types.ActivityRecord{
			ManagementNumber:   get(colManagementNumber),
			Date:               dateCell(get(colDate), date1904),
			ActionType:         get(colActionType),
			CustomerCode:       get(colCustomerCode),
			CustomerName:       get(colCustomerName),
			VisitedSiteName:    get(colVisitedSite),
			DirectDeliveryCode: get(colDirectDeliveryCode),
			DirectDeliveryName: get(colDirectDeliveryName),
			Area:               get(colArea),
			Rank:               get(colRank),
			PriorityCustomer:   get(colPriority),
			InterviewerName:    get(colInterviewer),
			StayDuration:       get(colStayDuration),
			DiscussionNotes:    get(colDiscussionNotes),
			DesignProposalFlag: get(colDesignProposal),
			DesignType:         get(colDesignType),
			DesignName:         get(colDesignName),
			DesignProgress:     get(colDesignProgress),
			DesignRequestID:    get(colDesignRequestID),
		})
	}
	return out, nil
}

// dateCell turns an Excel serial day number into YYYY/MM/DD and leaves
// text dates for the date normalizer.
func dateCell(v string, date1904 bool) string {
	serial, err := strconv.ParseFloat(v, 64)
	if err != nil || serial < 1 {
		return v
	}
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return v
	}
	return t.Format("2006/01/02")
}

func uses1904(f *excelize.File) bool {
	props, err := f.GetWorkbookProps()
	if err != nil || props.Date1904 == nil {
		return false
	}
	return *props.Date1904
}

func blank(r []string) bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
