// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"

	"showcase/internal/models"
	"showcase/internal/repository"
)

// ProjectService owns validation and merge semantics for portfolio projects.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// CreateProjectInput carries the fields accepted when creating a project.
type CreateProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	ImageURL     string   `json:"imageUrl"`
	DemoURL      string   `json:"demoUrl"`
	RepoURL      string   `json:"repoUrl"`
	Featured     bool     `json:"featured"`
	Order        int      `json:"order"`
}

// UpdateProjectInput carries a partial payload; nil fields are left untouched.
type UpdateProjectInput struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Technologies *[]string `json:"technologies"`
	ImageURL     *string   `json:"imageUrl"`
	DemoURL      *string   `json:"demoUrl"`
	RepoURL      *string   `json:"repoUrl"`
	Featured     *bool     `json:"featured"`
	Order        *int      `json:"order"`
}

// NewProjectService creates a ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.List(ctx)
}

func (s *ProjectService) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// Create validates the payload and persists the project. Validation
// failure means no write happens.
func (s *ProjectService) Create(ctx context.Context, in CreateProjectInput) (*models.Project, error) {
	project := &models.Project{
		Title:        in.Title,
		Description:  in.Description,
		Technologies: in.Technologies,
		ImageURL:     in.ImageURL,
		DemoURL:      in.DemoURL,
		RepoURL:      in.RepoURL,
		Featured:     in.Featured,
		Order:        in.Order,
	}
	if err := project.Validate(); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update merges the provided fields into the stored record, re-validates
// and returns the post-update record. Last write wins.
func (s *ProjectService) Update(ctx context.Context, id uint, in UpdateProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		project.Title = *in.Title
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Technologies != nil {
		project.Technologies = *in.Technologies
	}
	if in.ImageURL != nil {
		project.ImageURL = *in.ImageURL
	}
	if in.DemoURL != nil {
		project.DemoURL = *in.DemoURL
	}
	if in.RepoURL != nil {
		project.RepoURL = *in.RepoURL
	}
	if in.Featured != nil {
		project.Featured = *in.Featured
	}
	if in.Order != nil {
		project.Order = *in.Order
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	return s.projectRepo.Delete(ctx, id)
}
