package repository

import (
	"context"
	"errors"

	"showcase/internal/cache"
	"showcase/internal/models"

	"gorm.io/gorm"
)

// ProjectRepository defines persistence operations for portfolio projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id uint) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uint) error
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository returns a new ProjectRepository implementation.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// List returns all projects, newest-created first. The full list is
// cached; any write invalidates it.
func (r *projectRepository) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project

	err := cache.Aside(ctx, cache.ProjectListKey, &projects, cache.ProjectListTTL, func() error {
		if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&projects).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	key := cache.ProjectKey(id)

	err := cache.Aside(ctx, key, &project, cache.ProjectTTL, func() error {
		if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Project")
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.ProjectListKey)
	return nil
}

func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProject(ctx, project.ID)
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Project{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Project")
	}
	cache.InvalidateProject(ctx, id)
	return nil
}
