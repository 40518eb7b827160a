package domain_test

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"events-cleanup-service/internal/cleanup/core/domain"
)

// Millisecond offsets from 2024-01-01 spanning roughly one year.
const yearMs = 366 * 24 * 60 * 60 * 1000

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestProperty_HalfOpenInterval(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("event selected iff after <= ts < before", prop.ForAll(
		func(afterMs, beforeMs, tsMs int64) bool {
			after := epoch.Add(time.Duration(afterMs) * time.Millisecond)
			before := epoch.Add(time.Duration(beforeMs) * time.Millisecond)
			ts := epoch.Add(time.Duration(tsMs) * time.Millisecond)

			p, err := domain.BuildPredicate(domain.DeleteRequest{
				Kind:   domain.KindTimestamp,
				Window: domain.TimeWindow{After: &after, Before: &before},
			}, nil)
			if err != nil {
				return false
			}

			want := !ts.Before(after) && ts.Before(before)
			return p.Matches(domain.Event{Timestamp: ts}) == want
		},
		gen.Int64Range(0, yearMs),
		gen.Int64Range(0, yearMs),
		gen.Int64Range(0, yearMs),
	))

	properties.Property("bound equality: after includes, before excludes", prop.ForAll(
		func(boundMs int64) bool {
			bound := epoch.Add(time.Duration(boundMs) * time.Millisecond)
			atAfter, _ := domain.BuildPredicate(domain.DeleteRequest{
				Kind:   domain.KindTimestamp,
				Window: domain.TimeWindow{After: &bound},
			}, nil)
			atBefore, _ := domain.BuildPredicate(domain.DeleteRequest{
				Kind:   domain.KindTimestamp,
				Window: domain.TimeWindow{Before: &bound},
			}, nil)
			e := domain.Event{Timestamp: bound}
			return atAfter.Matches(e) && !atBefore.Matches(e)
		},
		gen.Int64Range(0, yearMs),
	))

	properties.TestingRun(t)
}

func TestProperty_Omission(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("no bounds and no type selects every event in scope", prop.ForAll(
		func(tsMs int64, eventType string) bool {
			p, err := domain.BuildPredicate(domain.DeleteRequest{Kind: domain.KindEnvTimestamp, EnvID: "e1"}, nil)
			if err != nil {
				return false
			}
			env := "e1"
			return p.Matches(domain.Event{
				EnvID:     &env,
				EventType: &eventType,
				Timestamp: epoch.Add(time.Duration(tsMs) * time.Millisecond),
			})
		},
		gen.Int64Range(-yearMs, yearMs),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
