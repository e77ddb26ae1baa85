package main

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"activity-insights-go/internal/analytics"
	"activity-insights-go/internal/dataset"
	"activity-insights-go/internal/logger"
	"activity-insights-go/internal/report"
)

func main() {
	_ = godotenv.Load() // loads .env

	dataPath := flag.String("data", envOr("DATASET_PATH", "activity_log.xlsx"), "activity workbook (.xlsx)")
	sheet := flag.String("sheet", os.Getenv("DATASET_SHEET"), "activity sheet, default first sheet")
	targetsSheet := flag.String("targets", envOr("TARGETS_SHEET", "targets"), "target lookup sheet")
	viewFlag := flag.String("view", envOr("REPORT_VIEW", "all"), "customers|analytics|calendar|all")
	periodFlag := flag.String("period", os.Getenv("REPORT_PERIOD"), "today|week|month|quarter|year (empty: no window)")
	year := flag.Int("year", 0, "calendar year (default current)")
	month := flag.Int("month", 0, "calendar month 1-12 (default current)")
	flag.Parse()

	log := logger.New().WithRun(os.Getenv("RUN_ID"))
	log.WithField("service", "activity-insights-go").Info("starting report run")

	view, err := report.ParseView(*viewFlag)
	if err != nil {
		log.WithError(err).Fatal("invalid view")
	}
	var period analytics.Period
	if *periodFlag != "" {
		if period, err = analytics.ParsePeriod(*periodFlag); err != nil {
			log.WithError(err).Fatal("invalid period")
		}
	}
	if *month < 0 || *month > 12 {
		log.WithField("month", *month).Fatal("month must be 1-12")
	}

	retry := time.Duration(envInt("OPEN_RETRY_SECONDS", 5)) * time.Second
	wb, _, err := dataset.LoadAndSummarize(*dataPath, dataset.Options{
		Sheet:        *sheet,
		TargetsSheet: *targetsSheet,
		OpenRetry:    retry,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to load dataset")
	}

	rep, err := report.Build(wb.Records, report.Options{
		View:    view,
		Period:  period,
		Year:    *year,
		Month:   time.Month(*month),
		Targets: wb.Targets,
		Log:     log,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to build report")
	}
	log.WithField("view", rep.View).WithField("duration_ms", rep.DurationMs).Info("report built")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		log.WithError(err).Fatal("failed to write report")
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}
