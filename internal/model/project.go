package model

import "time"

// Project はポートフォリオに掲載するプロジェクト1件を表す。
// Image が http(s) URL の場合はアップロード済み画像（削除時にストレージからも消す）、
// それ以外は静的アセットのパスとして扱う。
type Project struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription"`
	Image           string    `json:"image"`
	Tags            []string  `json:"tags"`
	LiveURL         string    `json:"liveUrl,omitempty"`
	GitHubURL       string    `json:"githubUrl,omitempty"`
	Featured        bool      `json:"featured"`
	Year            string    `json:"year"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
