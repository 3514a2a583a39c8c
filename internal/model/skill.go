package model

import "time"

// Skill categories. The skills and skill_categories tables both use these
// values; the check constraint lives in the schema, not here.
const (
	CategoryFrontend = "frontend"
	CategoryBackend  = "backend"
	CategoryTools    = "tools"
	CategoryDesign   = "design"
)

// Skill は個別スキル1件。Level は 0〜100 の習熟度。
// Icon はシンボル名またはアップロード済み画像の URL。
type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Level     int       `json:"level"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SkillCategory はスキルセクションのカテゴリカード。
// Skills はカード上に列挙する自由入力のスキル名（skills テーブルとは独立）。
type SkillCategory struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Skills      []string  `json:"skills"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
