package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/folium/backend/internal/model"
	"github.com/folium/backend/internal/repository"
)

// PortfolioService assembles the aggregate payload for the public site's
// initial load.
type PortfolioService interface {
	// Get reads all six collections concurrently and joins the results.
	// The join is all-or-nothing: if any single read fails, the whole
	// aggregate fails and no partial result is returned.
	Get(ctx context.Context) (*model.PortfolioData, error)
}

type portfolioServiceImpl struct {
	about           repository.AboutRepository
	projects        repository.ProjectRepository
	skills          repository.SkillRepository
	skillCategories repository.SkillCategoryRepository
	services        repository.ServiceRepository
	experience      repository.ExperienceRepository
}

// NewPortfolioService creates a PortfolioService over the per-collection
// repositories.
func NewPortfolioService(
	about repository.AboutRepository,
	projects repository.ProjectRepository,
	skills repository.SkillRepository,
	skillCategories repository.SkillCategoryRepository,
	services repository.ServiceRepository,
	experience repository.ExperienceRepository,
) PortfolioService {
	return &portfolioServiceImpl{
		about:           about,
		projects:        projects,
		skills:          skills,
		skillCategories: skillCategories,
		services:        services,
		experience:      experience,
	}
}

func (s *portfolioServiceImpl) Get(ctx context.Context) (*model.PortfolioData, error) {
	var data model.PortfolioData

	// Each goroutine writes a distinct field, so no locking is needed.
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		about, err := s.about.Get(ctx)
		if errors.Is(err, repository.ErrNotFound) {
			return nil // プロフィール未登録は許容（about: null で返す）
		}
		if err != nil {
			return err
		}
		data.About = about
		return nil
	})
	g.Go(func() error {
		projects, err := s.projects.List(ctx)
		data.Projects = projects
		return err
	})
	g.Go(func() error {
		skills, err := s.skills.List(ctx)
		data.Skills = skills
		return err
	})
	g.Go(func() error {
		categories, err := s.skillCategories.List(ctx)
		data.SkillCategories = categories
		return err
	})
	g.Go(func() error {
		services, err := s.services.List(ctx)
		data.Services = services
		return err
	})
	g.Go(func() error {
		experience, err := s.experience.List(ctx)
		data.Experience = experience
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Empty collections serialize as [] rather than null.
	if data.Projects == nil {
		data.Projects = []*model.Project{}
	}
	if data.Skills == nil {
		data.Skills = []*model.Skill{}
	}
	if data.SkillCategories == nil {
		data.SkillCategories = []*model.SkillCategory{}
	}
	if data.Services == nil {
		data.Services = []*model.Service{}
	}
	if data.Experience == nil {
		data.Experience = []*model.Experience{}
	}
	return &data, nil
}
