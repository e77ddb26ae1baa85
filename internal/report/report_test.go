package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-insights-go/internal/analytics"
	"activity-insights-go/internal/logger"
	"activity-insights-go/internal/types"
)

func records() []types.ActivityRecord {
	return []types.ActivityRecord{
		{ManagementNumber: "1", Date: "2024/04/01", CustomerCode: "C1", ActionType: "visit with appointment", VisitedSiteName: "Acme"},
		{ManagementNumber: "2", Date: "2024/04/01", CustomerCode: "C1", DirectDeliveryCode: "D1", ActionType: "phone negotiation"},
		{ManagementNumber: "3", Date: "2024/03/15", CustomerCode: "C2", ActionType: "visit", VisitedSiteName: "Beta"},
		{ManagementNumber: "4", Date: "2024/04/02", ActionType: "internal (half day)"},
	}
}

func quietLog() *logger.Logger { return logger.NewWithOutput(&bytes.Buffer{}) }

func TestBuild_AllViews(t *testing.T) {
	now := time.Date(2024, 4, 20, 9, 0, 0, 0, time.UTC)
	rep, err := Build(records(), Options{Now: now, Period: analytics.Month, Log: quietLog(),
		Targets: map[string]string{"C1": "spring"}})
	require.NoError(t, err)

	assert.Equal(t, ViewAll, rep.View)
	require.Len(t, rep.Customers, 2)
	assert.Equal(t, "spring", rep.Customers[0].CurrentTarget)

	require.NotNil(t, rep.Analytics)
	// window 2024/03/20..2024/04/20 drops the March 15 visit
	assert.Equal(t, 3, rep.Analytics.KPIs.TotalVisits)
	assert.Equal(t, "2024/03/20", rep.Analytics.WindowStart)
	require.NotNil(t, rep.Highlight)

	require.NotNil(t, rep.Calendar)
	assert.Equal(t, 4, rep.Calendar.Month)
	assert.Equal(t, 2, rep.Calendar.TotalVisits)
	assert.Len(t, rep.Calendar.Days, 42)
}

func TestBuild_SingleView(t *testing.T) {
	rep, err := Build(records(), Options{View: ViewCalendar, Year: 2024, Month: time.March, Log: quietLog()})
	require.NoError(t, err)
	assert.Nil(t, rep.Customers)
	assert.Nil(t, rep.Analytics)
	require.NotNil(t, rep.Calendar)
	assert.Equal(t, 3, rep.Calendar.Month)
	assert.Equal(t, 1, rep.Calendar.TotalVisits)
}

func TestBuild_NoWindowKeepsEverything(t *testing.T) {
	rep, err := Build(records(), Options{View: ViewAnalytics, Log: quietLog()})
	require.NoError(t, err)
	assert.Equal(t, 4, rep.Analytics.KPIs.TotalVisits)
}

func TestBuild_Errors(t *testing.T) {
	_, err := Build(nil, Options{View: "pie", Log: quietLog()})
	assert.ErrorIs(t, err, ErrUnknownView)

	_, err = Build(nil, Options{Period: "decade", Log: quietLog()})
	assert.ErrorIs(t, err, analytics.ErrUnknownPeriod)
}

func TestParseView(t *testing.T) {
	v, err := ParseView("")
	require.NoError(t, err)
	assert.Equal(t, ViewAll, v)

	v, err = ParseView(" Customers ")
	require.NoError(t, err)
	assert.Equal(t, ViewCustomers, v)
}
