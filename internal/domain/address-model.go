package domain

type AddressType string

const (
	AddressTypeHome  AddressType = "HOME"
	AddressTypeWork  AddressType = "WORK"
	AddressTypeOther AddressType = "OTHER"
)

func (t AddressType) Valid() bool {
	switch t {
	case AddressTypeHome, AddressTypeWork, AddressTypeOther:
		return true
	}
	return false
}

// UserAddress belongs to exactly one user. At most one non-deleted address
// per user carries IsDefault, and exactly one does once the user has any.
type UserAddress struct {
	Base
	UserID    string      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string      `gorm:"type:varchar(255)" json:"title"`
	Address   string      `gorm:"type:text" json:"address"`
	Type      AddressType `gorm:"type:varchar(20);not null;default:HOME" json:"type"`
	IsDefault bool        `gorm:"not null" json:"is_default"`
}
