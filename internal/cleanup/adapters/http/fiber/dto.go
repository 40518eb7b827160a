package fiber

import "events-cleanup-service/internal/cleanup/core/domain"

// DeleteByTimestampRequest deletes across all environments.
// @Description beforeDate is exclusive, afterDate inclusive.
type DeleteByTimestampRequest struct {
	BeforeDate     FlexibleTime `json:"beforeDate" swaggertype:"string" example:"2024-06-01T00:00:00.000Z"`
	AfterDate      FlexibleTime `json:"afterDate" swaggertype:"string" example:"2024-01-01T00:00:00.000Z"`
	EventType      string       `json:"eventType,omitempty" example:"FlagValue"`
	FeatureFlagKey string       `json:"featureFlagKey,omitempty"`
}

func (r DeleteByTimestampRequest) toDomain() domain.DeleteRequest {
	return domain.DeleteRequest{
		Kind:           domain.KindTimestamp,
		EventType:      r.EventType,
		FeatureFlagKey: r.FeatureFlagKey,
		Window:         domain.TimeWindow{After: r.AfterDate.Ptr(), Before: r.BeforeDate.Ptr()},
	}
}

type DeleteByEnvTimestampRequest struct {
	EnvID          string       `json:"envId" example:"a1b2c3"`
	BeforeDate     FlexibleTime `json:"beforeDate" swaggertype:"string"`
	AfterDate      FlexibleTime `json:"afterDate" swaggertype:"string"`
	EventType      string       `json:"eventType,omitempty"`
	FeatureFlagKey string       `json:"featureFlagKey,omitempty"`
}

func (r DeleteByEnvTimestampRequest) toDomain() domain.DeleteRequest {
	return domain.DeleteRequest{
		Kind:           domain.KindEnvTimestamp,
		EnvID:          r.EnvID,
		EventType:      r.EventType,
		FeatureFlagKey: r.FeatureFlagKey,
		Window:         domain.TimeWindow{After: r.AfterDate.Ptr(), Before: r.BeforeDate.Ptr()},
	}
}

type DeleteByEnvFlagKeyRequest struct {
	EnvID          string `json:"envId"`
	FeatureFlagKey string `json:"featureFlagKey" example:"new-checkout"`
}

func (r DeleteByEnvFlagKeyRequest) toDomain() domain.DeleteRequest {
	return domain.DeleteRequest{
		Kind:           domain.KindEnvFlagKey,
		EnvID:          r.EnvID,
		FeatureFlagKey: r.FeatureFlagKey,
	}
}

type DeleteByProjectRequest struct {
	ProjectID      string       `json:"projectId"`
	BeforeDate     FlexibleTime `json:"beforeDate" swaggertype:"string"`
	AfterDate      FlexibleTime `json:"afterDate" swaggertype:"string"`
	EventType      string       `json:"eventType,omitempty"`
	FeatureFlagKey string       `json:"featureFlagKey,omitempty"`
}

func (r DeleteByProjectRequest) toDomain() domain.DeleteRequest {
	return domain.DeleteRequest{
		Kind:           domain.KindProject,
		ProjectID:      r.ProjectID,
		EventType:      r.EventType,
		FeatureFlagKey: r.FeatureFlagKey,
		Window:         domain.TimeWindow{After: r.AfterDate.Ptr(), Before: r.BeforeDate.Ptr()},
	}
}

// ScriptRequest carries the fields of every kind; the kind comes from the path.
type ScriptRequest struct {
	EnvID          string       `json:"envId,omitempty"`
	ProjectID      string       `json:"projectId,omitempty"`
	BeforeDate     FlexibleTime `json:"beforeDate" swaggertype:"string"`
	AfterDate      FlexibleTime `json:"afterDate" swaggertype:"string"`
	EventType      string       `json:"eventType,omitempty"`
	FeatureFlagKey string       `json:"featureFlagKey,omitempty"`
}

func (r ScriptRequest) toDomain(kind domain.RequestKind) domain.DeleteRequest {
	return domain.DeleteRequest{
		Kind:           kind,
		EnvID:          r.EnvID,
		ProjectID:      r.ProjectID,
		EventType:      r.EventType,
		FeatureFlagKey: r.FeatureFlagKey,
		Window:         domain.TimeWindow{After: r.AfterDate.Ptr(), Before: r.BeforeDate.Ptr()},
	}
}

type PreviewDeleteResponse struct {
	EventsToDelete int64  `json:"eventsToDelete"`
	Message        string `json:"message"`
}

type DeleteEventsResponse struct {
	DeletedCount int64  `json:"deletedCount"`
	Message      string `json:"message"`
}

type EventsSummaryResponse struct {
	TotalCount        int64        `json:"totalCount"`
	FlagValueCount    int64        `json:"flagValueCount"`
	CustomEventsCount int64        `json:"customEventsCount"`
	OldestEventDate   FlexibleTime `json:"oldestEventDate" swaggertype:"string"`
	NewestEventDate   FlexibleTime `json:"newestEventDate" swaggertype:"string"`
}

type ScriptResponse struct {
	DeleteSQL  string `json:"deleteSql"`
	PreviewSQL string `json:"previewSql"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message" example:"invalid request: envId is required"`
}
