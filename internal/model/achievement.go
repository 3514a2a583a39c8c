package model

import "time"

// Achievement は資格・受賞など実績1件。Date は自由入力文字列（ソートは文字列降順）。
type Achievement struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	Date          string    `json:"date"`
	CredentialURL string    `json:"credentialUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
