package domain

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

type ConditionKind string

const (
	CondEnvEquals          ConditionKind = "env_eq"
	CondEnvIn              ConditionKind = "env_in"
	CondEventTypeEquals    ConditionKind = "event_eq"
	CondTimestampBefore    ConditionKind = "ts_before"
	CondTimestampAtOrAfter ConditionKind = "ts_at_or_after"
	CondPropertyEquals     ConditionKind = "property_eq"
)

// Condition is one atomic test against an event row. Only the fields relevant
// to Kind are set.
type Condition struct {
	Kind  ConditionKind
	Value string    // env id, event type or property value
	Key   string    // property key
	Time  time.Time // always UTC
	Set   []string  // sorted, no duplicates
}

func EnvEquals(envID string) Condition {
	return Condition{Kind: CondEnvEquals, Value: envID}
}

// EnvIn matches rows scoped to any of envIDs. An empty set matches nothing.
func EnvIn(envIDs []string) Condition {
	set := slices.Clone(envIDs)
	slices.Sort(set)
	set = slices.Compact(set)
	if set == nil {
		set = []string{}
	}
	return Condition{Kind: CondEnvIn, Set: set}
}

func EventTypeEquals(eventType string) Condition {
	return Condition{Kind: CondEventTypeEquals, Value: eventType}
}

// TimestampBefore is the exclusive upper bound of a window.
func TimestampBefore(t time.Time) Condition {
	return Condition{Kind: CondTimestampBefore, Time: t.UTC()}
}

// TimestampAtOrAfter is the inclusive lower bound of a window.
func TimestampAtOrAfter(t time.Time) Condition {
	return Condition{Kind: CondTimestampAtOrAfter, Time: t.UTC()}
}

// PropertyEquals is a containment test: properties has key with the string
// value, regardless of sibling keys.
func PropertyEquals(key, value string) Condition {
	return Condition{Kind: CondPropertyEquals, Key: key, Value: value}
}

func (c Condition) Matches(e Event) bool {
	switch c.Kind {
	case CondEnvEquals:
		return e.EnvID != nil && *e.EnvID == c.Value
	case CondEnvIn:
		if e.EnvID == nil {
			return false
		}
		_, found := slices.BinarySearch(c.Set, *e.EnvID)
		return found
	case CondEventTypeEquals:
		return e.EventType != nil && *e.EventType == c.Value
	case CondTimestampBefore:
		return e.Timestamp.Before(c.Time)
	case CondTimestampAtOrAfter:
		return !e.Timestamp.Before(c.Time)
	case CondPropertyEquals:
		v, ok := e.Properties[c.Key].(string)
		return ok && v == c.Value
	default:
		return false
	}
}

func (c Condition) String() string {
	switch c.Kind {
	case CondEnvEquals:
		return "env_id = " + strconv.Quote(c.Value)
	case CondEnvIn:
		quoted := make([]string, len(c.Set))
		for i, id := range c.Set {
			quoted[i] = strconv.Quote(id)
		}
		return "env_id IN [" + strings.Join(quoted, ", ") + "]"
	case CondEventTypeEquals:
		return "event = " + strconv.Quote(c.Value)
	case CondTimestampBefore:
		return "timestamp < " + c.Time.Format(time.RFC3339Nano)
	case CondTimestampAtOrAfter:
		return "timestamp >= " + c.Time.Format(time.RFC3339Nano)
	case CondPropertyEquals:
		return "properties." + c.Key + " = " + strconv.Quote(c.Value)
	default:
		return "unknown(" + string(c.Kind) + ")"
	}
}

// Predicate is a conjunction of conditions. The zero value matches every row.
type Predicate struct {
	Conditions []Condition
}

// MatchesNothing reports whether the predicate is unsatisfiable by
// construction, i.e. it scopes to an empty environment set.
func (p Predicate) MatchesNothing() bool {
	for _, c := range p.Conditions {
		if c.Kind == CondEnvIn && len(c.Set) == 0 {
			return true
		}
	}
	return false
}

func (p Predicate) Matches(e Event) bool {
	for _, c := range p.Conditions {
		if !c.Matches(e) {
			return false
		}
	}
	return true
}

// String is the canonical description; equal requests yield equal strings.
func (p Predicate) String() string {
	if len(p.Conditions) == 0 {
		return "TRUE"
	}
	parts := make([]string, len(p.Conditions))
	for i, c := range p.Conditions {
		parts[i] = c.String()
	}
	return strings.Join(parts, " AND ")
}
