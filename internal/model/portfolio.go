package model

// PortfolioData は公開サイトが初回ロードで取得するコレクションの集約。
// GET /api/portfolio のレスポンス形。
type PortfolioData struct {
	About           *AboutProfile    `json:"about"`
	Projects        []*Project       `json:"projects"`
	Skills          []*Skill         `json:"skills"`
	SkillCategories []*SkillCategory `json:"skillCategories"`
	Services        []*Service       `json:"services"`
	Experience      []*Experience    `json:"experience"`
}
