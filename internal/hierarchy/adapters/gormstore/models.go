package gormstore

import (
	"time"

	"events-cleanup-service/internal/hierarchy/core/domain"

	"github.com/google/uuid"
)

type workspaceModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name      *string   `gorm:"column:name"`
	Key       *string   `gorm:"column:key"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (workspaceModel) TableName() string { return "workspaces" }

type organizationModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	WorkspaceID uuid.UUID `gorm:"column:workspace_id;type:uuid"`
	Name        *string   `gorm:"column:name"`
	Key         *string   `gorm:"column:key"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (organizationModel) TableName() string { return "organizations" }

type projectModel struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"column:organization_id;type:uuid"`
	Name           *string   `gorm:"column:name"`
	Key            *string   `gorm:"column:key"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (projectModel) TableName() string { return "projects" }

type environmentModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ProjectID uuid.UUID `gorm:"column:project_id;type:uuid"`
	Name      *string   `gorm:"column:name"`
	Key       *string   `gorm:"column:key"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (environmentModel) TableName() string { return "environments" }

func (m workspaceModel) toDomain() domain.Workspace {
	return domain.Workspace{ID: m.ID.String(), Name: m.Name, Key: m.Key}
}

func (m organizationModel) toDomain() domain.Organization {
	return domain.Organization{ID: m.ID.String(), WorkspaceID: m.WorkspaceID.String(), Name: m.Name, Key: m.Key}
}

func (m projectModel) toDomain() domain.Project {
	return domain.Project{ID: m.ID.String(), OrganizationID: m.OrganizationID.String(), Name: m.Name, Key: m.Key}
}

func (m environmentModel) toDomain() domain.Environment {
	return domain.Environment{ID: m.ID.String(), ProjectID: m.ProjectID.String(), Name: m.Name, Key: m.Key}
}
