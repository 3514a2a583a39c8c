package model

// AboutID は about テーブルの固定 ID。プロフィールは常に1行のみ。
const AboutID = "1"

// AboutProfile represents the single about/profile record shown in the
// hero and about sections. There is exactly one row, upserted in place.
type AboutProfile struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Bio          string `json:"bio"`
	Location     string `json:"location"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`
	GitHub       string `json:"github,omitempty"`
	LinkedIn     string `json:"linkedin,omitempty"`
	Twitter      string `json:"twitter,omitempty"`
	Resume       string `json:"resume,omitempty"`
}
