package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrUnknownKind      = fmt.Errorf("%w: unknown request kind", ErrInvalidRequest)
	ErrMissingEnvID     = fmt.Errorf("%w: envId is required", ErrInvalidRequest)
	ErrMissingFlagKey   = fmt.Errorf("%w: featureFlagKey is required", ErrInvalidRequest)
	ErrMissingProjectID = fmt.Errorf("%w: projectId is required", ErrInvalidRequest)
)

type RequestKind string

const (
	KindTimestamp    RequestKind = "by-timestamp"
	KindEnvTimestamp RequestKind = "by-env-timestamp"
	KindEnvFlagKey   RequestKind = "by-env-flagkey"
	KindProject      RequestKind = "by-project"
)

func ParseRequestKind(s string) (RequestKind, error) {
	switch k := RequestKind(s); k {
	case KindTimestamp, KindEnvTimestamp, KindEnvFlagKey, KindProject:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// TimeWindow is the half-open interval [After, Before). Nil bounds are open.
type TimeWindow struct {
	After  *time.Time
	Before *time.Time
}

func (w TimeWindow) conditions() []Condition {
	var conds []Condition
	if w.Before != nil {
		conds = append(conds, TimestampBefore(*w.Before))
	}
	if w.After != nil {
		conds = append(conds, TimestampAtOrAfter(*w.After))
	}
	return conds
}

// DeleteRequest describes one cleanup operation. Kind selects which scope
// fields are required.
type DeleteRequest struct {
	Kind           RequestKind
	EnvID          string
	ProjectID      string
	FeatureFlagKey string
	EventType      string
	Window         TimeWindow
}

func (r DeleteRequest) Validate() error {
	switch r.Kind {
	case KindTimestamp:
	case KindEnvTimestamp:
		if strings.TrimSpace(r.EnvID) == "" {
			return ErrMissingEnvID
		}
	case KindEnvFlagKey:
		if strings.TrimSpace(r.EnvID) == "" {
			return ErrMissingEnvID
		}
		if strings.TrimSpace(r.FeatureFlagKey) == "" {
			return ErrMissingFlagKey
		}
	case KindProject:
		if strings.TrimSpace(r.ProjectID) == "" {
			return ErrMissingProjectID
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, r.Kind)
	}
	return nil
}

// NeedsEnvironments reports whether BuildPredicate expects resolved
// environment IDs for this request.
func (r DeleteRequest) NeedsEnvironments() bool {
	return r.Kind == KindProject
}

// BuildPredicate turns a request into the predicate shared by preview and
// delete. envIDs is only read for KindProject; an empty set there yields a
// predicate that matches nothing.
func BuildPredicate(r DeleteRequest, envIDs []string) (Predicate, error) {
	if err := r.Validate(); err != nil {
		return Predicate{}, err
	}

	var conds []Condition
	switch r.Kind {
	case KindEnvTimestamp, KindEnvFlagKey:
		conds = append(conds, EnvEquals(r.EnvID))
	case KindProject:
		conds = append(conds, EnvIn(envIDs))
	}

	conds = append(conds, r.Window.conditions()...)

	if r.EventType != "" {
		conds = append(conds, EventTypeEquals(r.EventType))
	}

	// A flag key only ever narrows to FlagValue rows.
	if r.Kind == KindEnvFlagKey || r.FeatureFlagKey != "" {
		if r.EventType != EventTypeFlagValue {
			conds = append(conds, EventTypeEquals(EventTypeFlagValue))
		}
		conds = append(conds, PropertyEquals(FeatureFlagKeyProperty, r.FeatureFlagKey))
	}

	return Predicate{Conditions: conds}, nil
}
