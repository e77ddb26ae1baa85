// Package aggregator folds activity records into the customer hierarchy:
// one summary per customer code with nested direct-delivery locations.
package aggregator

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"activity-insights-go/internal/actions"
	"activity-insights-go/internal/dates"
	"activity-insights-go/internal/types"
)

// siteSeparator splits "customer<U+3000>direct-delivery" site names.
const siteSeparator = "\u3000"

// TargetKey is the lookup key for a customer ("C1") or one of its
// direct-delivery locations ("C1-D1").
func TargetKey(customerCode, directDeliveryCode string) string {
	if directDeliveryCode == "" {
		return customerCode
	}
	return customerCode + "-" + directDeliveryCode
}

// tally accumulates one entity's counters. Design request ids are kept as
// a set so one request logged on many rows counts once.
type tally struct {
	counters types.Counters
	designs  map[float64]struct{}
}

func newTally() tally {
	return tally{designs: map[float64]struct{}{}}
}

func (t *tally) add(cat actions.Category, designID float64, hasDesign bool) {
	t.counters.TotalActivities++
	switch cat {
	case actions.Visit:
		t.counters.Visits++
	case actions.Phone:
		t.counters.Calls++
	}
	if hasDesign {
		t.designs[designID] = struct{}{}
	}
}

func (t tally) snapshot() types.Counters {
	c := t.counters
	c.DesignRequests = len(t.designs)
	return c
}

// latest tracks last activity and the rank recorded on or after it.
type latest struct {
	date dates.Date
	rank string
}

func (l *latest) observe(d dates.Date, rank string) {
	if d.Compare(l.date) < 0 {
		return
	}
	l.date = d
	if rank != "" {
		l.rank = rank
	}
}

type subAcc struct {
	code     string
	name     string
	area     string
	priority bool
	latest   latest
	tally    tally
}

type customerAcc struct {
	code     string
	name     string
	area     string
	priority bool
	latest   latest
	total    tally
	own      tally
	subs     []*subAcc
	subIndex map[string]*subAcc
}

// Aggregate builds the hierarchy in one pass over records. Input order only
// decides ties for last-activity and rank; counts never depend on it.
// targets is optional and keyed by TargetKey.
func Aggregate(records []types.ActivityRecord, targets map[string]string) []types.CustomerSummary {
	var order []*customerAcc
	index := map[string]*customerAcc{}

	for _, raw := range records {
		priority := raw.IsPriority()
		rec := raw.Normalized()
		if rec.CustomerCode == "" {
			continue
		}
		day, _ := dates.Parse(rec.Date)
		cat := actions.Classify(rec.ActionType)
		designID, hasDesign := parseDesignID(rec.DesignRequestID)
		customerName, siteName := splitSiteName(rec.VisitedSiteName)

		c, ok := index[rec.CustomerCode]
		if !ok {
			c = &customerAcc{
				code:     rec.CustomerCode,
				area:     rec.Area,
				priority: priority,
				latest:   latest{rank: rec.Rank},
				total:    newTally(),
				own:      newTally(),
				subIndex: map[string]*subAcc{},
			}
			index[rec.CustomerCode] = c
			order = append(order, c)
		}
		if c.name == "" {
			c.name = firstNonEmpty(customerName, rec.CustomerName)
		}
		if c.area == "" {
			c.area = rec.Area
		}
		c.priority = c.priority || priority
		c.latest.observe(day, rec.Rank)
		c.total.add(cat, designID, hasDesign)

		if rec.DirectDeliveryCode == "" {
			c.own.add(cat, designID, hasDesign)
			continue
		}
		s, ok := c.subIndex[rec.DirectDeliveryCode]
		if !ok {
			s = &subAcc{
				code:   rec.DirectDeliveryCode,
				area:   rec.Area,
				latest: latest{rank: rec.Rank},
				tally:  newTally(),
			}
			c.subIndex[rec.DirectDeliveryCode] = s
			c.subs = append(c.subs, s)
		}
		if s.name == "" {
			s.name = firstNonEmpty(rec.DirectDeliveryName, siteName)
		}
		if s.area == "" {
			s.area = rec.Area
		}
		s.priority = s.priority || priority
		s.latest.observe(day, rec.Rank)
		s.tally.add(cat, designID, hasDesign)
	}

	out := make([]types.CustomerSummary, 0, len(order))
	for _, c := range order {
		out = append(out, c.summary(targets))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalActivities > out[j].TotalActivities
	})
	return out
}

func (c *customerAcc) summary(targets map[string]string) types.CustomerSummary {
	cs := types.CustomerSummary{
		Code:          c.code,
		Name:          firstNonEmpty(c.name, c.code),
		Area:          c.area,
		Rank:          c.latest.rank,
		IsPriority:    c.priority,
		LastActivity:  c.latest.date.String(),
		CurrentTarget: targets[TargetKey(c.code, "")],
		Counters:      c.total.snapshot(),
		Own:           c.own.snapshot(),
		SubItems:      make([]types.DirectDeliverySummary, 0, len(c.subs)),
	}
	for _, s := range c.subs {
		cs.SubItems = append(cs.SubItems, types.DirectDeliverySummary{
			CustomerCode:  c.code,
			Code:          s.code,
			Name:          firstNonEmpty(s.name, s.code),
			Area:          s.area,
			Rank:          s.latest.rank,
			IsPriority:    s.priority,
			LastActivity:  s.latest.date.String(),
			CurrentTarget: targets[TargetKey(c.code, s.code)],
			Counters:      s.tally.snapshot(),
		})
	}
	return cs
}

// parseDesignID accepts numeric ids only; NaN and infinities are dropped.
func parseDesignID(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func splitSiteName(site string) (customer, directDelivery string) {
	customer, directDelivery, _ = strings.Cut(site, siteSeparator)
	return strings.TrimSpace(customer), strings.TrimSpace(directDelivery)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
