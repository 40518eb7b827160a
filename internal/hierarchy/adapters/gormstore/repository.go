package gormstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"events-cleanup-service/internal/hierarchy/core/domain"
	"events-cleanup-service/internal/hierarchy/core/ports"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open wraps an existing pool so the hierarchy and event stores share
// connections.
func Open(conn *sql.DB) (*gorm.DB, error) {
	if conn == nil {
		return nil, errors.New("sql connection is required")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm postgres: %w", err)
	}
	return db, nil
}

type HierarchyRepository struct {
	db *gorm.DB
}

func NewHierarchyRepository(db *gorm.DB) *HierarchyRepository {
	return &HierarchyRepository{db: db}
}

var _ ports.HierarchyReaderPort = (*HierarchyRepository)(nil)

const listOrder = "created_at, id"

func (r *HierarchyRepository) ListWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	var rows []workspaceModel
	if err := r.db.WithContext(ctx).Order(listOrder).Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapRows(rows, workspaceModel.toDomain), nil
}

func (r *HierarchyRepository) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	var rows []organizationModel
	if err := r.db.WithContext(ctx).Order(listOrder).Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapRows(rows, organizationModel.toDomain), nil
}

func (r *HierarchyRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var rows []projectModel
	if err := r.db.WithContext(ctx).Order(listOrder).Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapRows(rows, projectModel.toDomain), nil
}

func (r *HierarchyRepository) ListEnvironments(ctx context.Context) ([]domain.Environment, error) {
	var rows []environmentModel
	if err := r.db.WithContext(ctx).Order(listOrder).Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapRows(rows, environmentModel.toDomain), nil
}

func mapRows[M, D any](rows []M, toDomain func(M) D) []D {
	out := make([]D, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out
}
