package domain

// UserAbout holds the public profile block of a user. It is created
// asynchronously once the user.created event is consumed.
type UserAbout struct {
	Base
	UserID         string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	WorkRole       string `json:"work_role,omitempty"`
	Company        string `json:"company,omitempty"`
	School         string `json:"school,omitempty"`
	Country        string `json:"country,omitempty"`
	Quote          string `gorm:"type:text" json:"quote,omitempty"`
	Facebook       string `json:"facebook,omitempty"`
	Twitter        string `json:"twitter,omitempty"`
	Linkedin       string `json:"linkedin,omitempty"`
	Instagram      string `json:"instagram,omitempty"`
	TotalFollowers int    `gorm:"not null" json:"total_followers"`
	TotalFollowing int    `gorm:"not null" json:"total_following"`
}
