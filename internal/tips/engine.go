package tips

import (
	"github.com/blackwell-systems/lanewatch/internal/metrics"
	"github.com/blackwell-systems/lanewatch/internal/model"
)

// Engine evaluates the rule base against a profile and a metrics snapshot.
// It holds only immutable configuration, so one Engine is safe for
// concurrent use.
type Engine struct {
	rules      []Rule
	thresholds Thresholds
}

// NewEngine creates an engine with the built-in rules and stock thresholds.
func NewEngine() *Engine {
	return NewEngineWithThresholds(DefaultThresholds())
}

// NewEngineWithThresholds creates an engine with the built-in rules and the
// given thresholds.
func NewEngineWithThresholds(t Thresholds) *Engine {
	return &Engine{rules: DefaultRules(), thresholds: t}
}

// Evaluate runs every rule once against the profile and metrics, collects
// fired tips into their buckets, deduplicates by tip ID across both buckets,
// and tops up any under-quota area from the fallback library. The result is
// fully determined by the inputs.
func (e *Engine) Evaluate(profile model.Profile, m metrics.Metrics) Result {
	ctx := newContext(profile, m, e.thresholds)

	seen := make(map[string]bool)
	var res Result

	for _, r := range e.rules {
		if seen[r.ID] || !r.When(ctx) {
			continue
		}
		seen[r.ID] = true
		tip := Tip{
			ID:        r.ID,
			Area:      r.Area,
			Title:     r.Title,
			Body:      r.Body,
			Severity:  r.Severity(ctx),
			Rationale: r.Rationale(ctx),
			Tags:      r.Tags,
		}
		if r.Bucket == BucketPersonalized {
			res.Personalized = append(res.Personalized, tip)
		} else {
			res.General = append(res.General, tip)
		}
	}

	res.Personalized = fillQuota(res.Personalized, BucketPersonalized, e.thresholds.MinTipsPerArea, seen)
	res.General = fillQuota(res.General, BucketGeneral, e.thresholds.MinTipsPerArea, seen)

	res.Personalized = regroup(res.Personalized)
	res.General = regroup(res.General)
	return res
}

// fillQuota appends fallback tips until every library area meets the quota
// in the bucket. Each fallback ID is cloned with a bucket suffix so one
// library entry can serve both buckets without tripping the dedup set.
func fillQuota(list []Tip, bucket Bucket, quota int, seen map[string]bool) []Tip {
	if quota <= 0 {
		return list
	}

	counts := make(map[string]int)
	for _, t := range list {
		counts[t.Area]++
	}

	for _, area := range fallbackAreas {
		for _, fb := range fallbackLibrary[area] {
			if counts[area] >= quota {
				break
			}
			clone := fb
			clone.ID = fb.ID + "-" + string(bucket)
			if seen[clone.ID] {
				continue
			}
			seen[clone.ID] = true
			list = append(list, clone)
			counts[area]++
		}
	}
	return list
}

// regroup reorders a bucket so tips sharing an area sit together, areas in
// first-seen order. Relative order within an area is preserved.
func regroup(list []Tip) []Tip {
	groups := GroupByArea(list)
	out := make([]Tip, 0, len(list))
	for _, g := range groups {
		out = append(out, g.Tips...)
	}
	return out
}
