package domain

type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "PENDING"
	FriendRequestAccepted FriendRequestStatus = "ACCEPTED"
	FriendRequestRejected FriendRequestStatus = "REJECTED"
	FriendRequestDeleted  FriendRequestStatus = "DELETED"
)

func (s FriendRequestStatus) Valid() bool {
	switch s {
	case FriendRequestPending, FriendRequestAccepted, FriendRequestRejected, FriendRequestDeleted:
		return true
	}
	return false
}

// FriendDirection selects which side of the edge a listing reads.
type FriendDirection string

const (
	FriendDirectionReceived FriendDirection = "RECEIVED"
	FriendDirectionSent     FriendDirection = "SENT"
)

// FriendRequest is a directed edge sender -> receiver. An accepted
// friendship is stored as two reciprocal ACCEPTED edges. Removed edges keep
// their row with status DELETED and a tombstone, so the pair index only
// covers live rows.
type FriendRequest struct {
	Base
	SenderID   string              `gorm:"type:uuid;not null;uniqueIndex:idx_friend_requests_pair,where:deleted_at IS NULL" json:"sender_id"`
	ReceiverID string              `gorm:"type:uuid;not null;uniqueIndex:idx_friend_requests_pair,where:deleted_at IS NULL;index" json:"receiver_id"`
	Status     FriendRequestStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	Sender   *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver *User `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}
