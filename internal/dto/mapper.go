package dto

import "github.com/SundayYogurt/social_user_service/internal/domain"

func FromUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	out := &UserResponse{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		PhoneNumber: u.PhoneNumber,
		Country:     u.Country,
		Address:     u.Address,
		State:       u.State,
		City:        u.City,
		ZipCode:     u.ZipCode,
		About:       u.About,
		Role:        string(u.Role),
		Status:      string(u.Status),
		IsPublic:    u.IsPublic,
		Email:       u.Email,
		Gender:      string(u.Gender),
		Version:     u.Version,
		CreatedAt:   u.CreatedAt,
	}
	if p := u.Profile; p != nil {
		out.Profile = &UserAboutResponse{
			WorkRole:       p.WorkRole,
			Company:        p.Company,
			School:         p.School,
			Country:        p.Country,
			Quote:          p.Quote,
			Facebook:       p.Facebook,
			Twitter:        p.Twitter,
			Linkedin:       p.Linkedin,
			Instagram:      p.Instagram,
			TotalFollowers: p.TotalFollowers,
			TotalFollowing: p.TotalFollowing,
		}
	}
	return out
}

func FromAddress(a *domain.UserAddress) *AddressResponse {
	if a == nil {
		return nil
	}
	return &AddressResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Title:     a.Title,
		Address:   a.Address,
		Type:      string(a.Type),
		IsDefault: a.IsDefault,
		CreatedAt: a.CreatedAt,
	}
}

func FromAddresses(items []domain.UserAddress) []AddressResponse {
	out := make([]AddressResponse, 0, len(items))
	for i := range items {
		out = append(out, *FromAddress(&items[i]))
	}
	return out
}

func friendSummary(u *domain.User) *FriendSummary {
	if u == nil {
		return nil
	}
	return &FriendSummary{ID: u.ID, DisplayName: u.DisplayName, PhotoURL: u.PhotoURL, Email: u.Email}
}

func FromFriendRequests(items []domain.FriendRequest) []FriendRequestResponse {
	out := make([]FriendRequestResponse, 0, len(items))
	for _, fr := range items {
		out = append(out, FriendRequestResponse{
			ID:        fr.ID,
			Status:    string(fr.Status),
			Sender:    friendSummary(fr.Sender),
			Receiver:  friendSummary(fr.Receiver),
			CreatedAt: fr.CreatedAt,
			UpdatedAt: fr.UpdatedAt,
		})
	}
	return out
}
