package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/xuri/excelize/v2"

	"activity-insights-go/internal/logger"
)

// openWorkbook retries transient open failures (a workbook being written by
// a sync client or held open by another process). A missing file fails at once.
func openWorkbook(path string, maxWait time.Duration) (*excelize.File, error) {
	log := logger.New().Component("dataset.open").WithField("path", path)

	var f *excelize.File
	op := func() error {
		var err error
		f, err = excelize.OpenFile(path)
		if err == nil {
			return nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return backoff.Permanent(err)
		}
		log.WithError(err).Warn("open workbook failed")
		return err
	}

	var b backoff.BackOff = &backoff.StopBackOff{}
	if maxWait > 0 {
		eb := backoff.NewExponentialBackOff()
		eb.InitialInterval = 200 * time.Millisecond
		eb.MaxElapsedTime = maxWait
		b = eb
	}
	if err := backoff.Retry(op, b); err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return f, nil
}
