package domain

import "time"

// EventTypeFlagValue marks feature-flag insight events.
const EventTypeFlagValue = "FlagValue"

// FeatureFlagKeyProperty is the properties field carrying the flag key of a
// FlagValue event.
const FeatureFlagKeyProperty = "featureFlagKey"

type Event struct {
	ID         string
	DistinctID string
	EnvID      *string
	EventType  *string
	Properties map[string]any
	Timestamp  time.Time
}

type Summary struct {
	TotalCount        int64
	FlagValueCount    int64
	CustomEventsCount int64
	OldestEventDate   *time.Time
	NewestEventDate   *time.Time
}

// Script is the hand-runnable SQL form of a predicate.
type Script struct {
	DeleteSQL  string
	PreviewSQL string
}
