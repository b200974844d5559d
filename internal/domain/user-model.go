package domain

type UserRole string

const (
	UserRoleClient UserRole = "client"
	UserRoleAdmin  UserRole = "admin"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusBanned   UserStatus = "banned"
)

type Gender string

const (
	GenderMale    Gender = "MALE"
	GenderFemale  Gender = "FEMALE"
	GenderUnknown Gender = "UNKNOWN"
)

type User struct {
	Base
	DisplayName  string     `gorm:"type:varchar(255);not null" json:"display_name"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PhoneNumber  string     `gorm:"type:varchar(32);uniqueIndex;not null" json:"phone_number"`
	PasswordHash string     `gorm:"not null" json:"-"`
	PhotoURL     string     `json:"photo_url,omitempty"`
	Country      string     `json:"country,omitempty"`
	Address      string     `json:"address,omitempty"`
	State        string     `json:"state,omitempty"`
	City         string     `json:"city,omitempty"`
	ZipCode      string     `gorm:"type:varchar(20)" json:"zip_code,omitempty"`
	About        string     `gorm:"type:text" json:"about,omitempty"`
	Gender       Gender     `gorm:"type:varchar(20);not null;default:UNKNOWN" json:"gender"`
	Role         UserRole   `gorm:"type:varchar(20);not null;default:client" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:active" json:"status"`
	IsPublic     bool       `gorm:"not null" json:"is_public"`

	Profile *UserAbout `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}
