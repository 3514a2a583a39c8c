package portfolio

import (
	"context"
	"net/http"

	"github.com/folium/backend/internal/model"
)

// 各 Save は id の有無で POST / PUT を選び、サーバが返した行を
// そのままキャッシュへ反映する。Delete も同様にキャッシュから取り除く。

// SaveAbout replaces the profile on the server and in the cache.
func (c *Client) SaveAbout(ctx context.Context, about *model.AboutProfile) (*model.AboutProfile, error) {
	var saved model.AboutProfile
	if err := c.doJSON(ctx, http.MethodPut, "/api/about", about, &saved); err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.data.About = &saved
	snap := c.data
	c.mu.Unlock()
	c.writeSnapshot(snap)
	return &saved, nil
}

// SaveProject creates the project when its ID is empty, otherwise
// updates it, and splices the server's version into the cache.
func (c *Client) SaveProject(ctx context.Context, project *model.Project) (*model.Project, error) {
	var saved model.Project
	if project.ID == "" {
		if err := c.doJSON(ctx, http.MethodPost, "/api/projects", project, &saved); err != nil {
			return nil, err
		}
	} else {
		if err := c.doJSON(ctx, http.MethodPut, "/api/projects/"+project.ID, project, &saved); err != nil {
			return nil, err
		}
	}
	c.mu.Lock()
	c.data.Projects = upsertSlice(c.data.Projects, &saved, func(p *model.Project) bool { return p.ID == saved.ID })
	snap := c.data
	c.mu.Unlock()
	c.writeSnapshot(snap)
	return &saved, nil
}

// DeleteProject removes the project on the server and from the cache.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/projects/"+id, nil, nil); err != nil {
		return err
	}
	c.mu.Lock()
	c.data.Projects = removeSlice(c.data.Projects, func(p *model.Project) bool { return p.ID == id })
	snap := c.data
	c.mu.Unlock()
	c.writeSnapshot(snap)
	return nil
}

// SaveSkill creates or updates a skill.
func (c *Client) SaveSkill(ctx context.Context, skill *model.Skill) (*model.Skill, error) {
	var saved model.Skill
	if skill.ID == "" {
		if err := c.doJSON(ctx, http.MethodPost, "/api/skills", skill, &saved); err != nil {
			return nil, err
		}
	} else {
		if err := c.doJSON(ctx, http.MethodPut, "/api/skills/"+skill.ID, skill, &saved); err != nil {
			return nil, err
		}
	}
	c.mu.Lock()
	c.data.Skills = upsertSlice(c.data.Skills, &saved, func(s *model.Skill) bool { return s.ID == saved.ID })
	snap := c.data
	c.mu.Unlock()
	c.writeSnapshot(snap)
	return &saved, nil
}

// DeleteSkill removes a skill.
func (c *Client) DeleteSkill(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/skills/"+id, nil, nil); err != nil {
		return err
	}
	c.mu.Lock()
	c.data.Skills = removeSlice(c.data.Skills, func(s *model.Skill) bool { return s.ID == id })
	snap := c.data
	c.mu.Unlock()
	c.writeSnapshot(snap)
	return nil
}

// SaveSkillCategory creates or updates a skill category.
func (c *Client) SaveSkillCategory(ctx context.Context, category *model.SkillCategory) (*model.SkillCategory, error) {
	var saved model.SkillCategory
	if category.ID == "" {
		if err := c.doJSON(ctx, http.MethodPost, "/api/skill-categories", category, &saved); err != nil {
			return nil, err
		}
	} else {
		if err := c.doJSON(ctx, http.MethodPut, "/api/skill-categories/"+category.ID, category, &saved); err != nil {
			return nil, err
		}
	}
	c.mu.Lock()
	c.data.SkillCategories = upsertSlice(c.data.SkillCategories, &saved, func(sc *model.SkillCategory) bool { return sc.ID == saved.ID })
	snap := c.data
	c.mu.Unlock()
	c.writeSnapshot(snap)
	return &saved, nil
}

// DeleteSkillCategory removes a skill category.
func (c *Client) DeleteSkillCategory(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/skill-categories/"+id, nil, nil); err != nil {
		return err
	}
	c.mu.Lock()
	c.data.SkillCategories = removeSlice(c.data.SkillCategories, func(sc *model.SkillCategory) bool { return sc.ID == id })
	snap := c.data
	c.mu.Unlock()
	c.writeSnapshot(snap)
	return nil
}

// SaveService creates or updates a service offering.
func (c *Client) SaveService(ctx context.Context, svc *model.Service) (*model.Service, error) {
	var saved model.Service
	if svc.ID == "" {
		if err := c.doJSON(ctx, http.MethodPost, "/api/services", svc, &saved); err != nil {
			return nil, err
		}
	} else {
		if err := c.doJSON(ctx, http.MethodPut, "/api/services/"+svc.ID, svc, &saved); err != nil {
			return nil, err
		}
	}
	c.mu.Lock()
	c.data.Services = upsertSlice(c.data.Services, &saved, func(s *model.Service) bool { return s.ID == saved.ID })
	snap := c.data
	c.mu.Unlock()
	c.writeSnapshot(snap)
	return &saved, nil
}

// DeleteService removes a service offering.
func (c *Client) DeleteService(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/services/"+id, nil, nil); err != nil {
		return err
	}
	c.mu.Lock()
	c.data.Services = removeSlice(c.data.Services, func(s *model.Service) bool { return s.ID == id })
	snap := c.data
	c.mu.Unlock()
	c.writeSnapshot(snap)
	return nil
}

// SaveExperience creates or updates a work history entry.
func (c *Client) SaveExperience(ctx context.Context, exp *model.Experience) (*model.Experience, error) {
	var saved model.Experience
	if exp.ID == "" {
		if err := c.doJSON(ctx, http.MethodPost, "/api/experience", exp, &saved); err != nil {
			return nil, err
		}
	} else {
		if err := c.doJSON(ctx, http.MethodPut, "/api/experience/"+exp.ID, exp, &saved); err != nil {
			return nil, err
		}
	}
	c.mu.Lock()
	c.data.Experience = upsertSlice(c.data.Experience, &saved, func(e *model.Experience) bool { return e.ID == saved.ID })
	snap := c.data
	c.mu.Unlock()
	c.writeSnapshot(snap)
	return &saved, nil
}

// DeleteExperience removes a work history entry.
func (c *Client) DeleteExperience(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/experience/"+id, nil, nil); err != nil {
		return err
	}
	c.mu.Lock()
	c.data.Experience = removeSlice(c.data.Experience, func(e *model.Experience) bool { return e.ID == id })
	snap := c.data
	c.mu.Unlock()
	c.writeSnapshot(snap)
	return nil
}

// Achievements lists certifications and awards. They are not part of
// the aggregate payload, so there is no cache to maintain.
func (c *Client) Achievements(ctx context.Context) ([]*model.Achievement, error) {
	var list []*model.Achievement
	if err := c.doJSON(ctx, http.MethodGet, "/api/achievements", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SaveAchievement creates or updates an achievement.
func (c *Client) SaveAchievement(ctx context.Context, ach *model.Achievement) (*model.Achievement, error) {
	var saved model.Achievement
	if ach.ID == "" {
		if err := c.doJSON(ctx, http.MethodPost, "/api/achievements", ach, &saved); err != nil {
			return nil, err
		}
	} else {
		if err := c.doJSON(ctx, http.MethodPut, "/api/achievements/"+ach.ID, ach, &saved); err != nil {
			return nil, err
		}
	}
	return &saved, nil
}

// DeleteAchievement removes an achievement.
func (c *Client) DeleteAchievement(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/achievements/"+id, nil, nil)
}
