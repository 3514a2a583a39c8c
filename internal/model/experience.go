package model

import "time"

// Experience は職歴1件。Period は "2021 - Present" のような自由入力文字列。
type Experience struct {
	ID           string    `json:"id"`
	Company      string    `json:"company"`
	Role         string    `json:"role"`
	Period       string    `json:"period"`
	Description  string    `json:"description"`
	Achievements []string  `json:"achievements"`
	Current      bool      `json:"current"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
