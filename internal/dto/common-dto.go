package dto

// ManageResponse is returned by every mutating operation.
type ManageResponse struct {
	ID         string `json:"id"`
	Message    string `json:"message"`
	Code       string `json:"code"`
	ErrMessage string `json:"errMessage"`
}

type Metadata struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	ErrMessage string `json:"errMessage"`
}

// ListResponse is returned by every listing operation.
type ListResponse[T any] struct {
	Items    []T      `json:"items"`
	Total    int64    `json:"total"`
	Metadata Metadata `json:"metadata"`
}

type PageRequest struct {
	Page  int `json:"page" validate:"omitempty,min=1"`
	Limit int `json:"limit" validate:"omitempty,min=1,max=100"`
}

// EnvelopeCode exposes the status code of a response for request logging.
func (r *ManageResponse) EnvelopeCode() string  { return r.Code }
func (r *ListResponse[T]) EnvelopeCode() string { return r.Metadata.Code }
func (r *GetUserResponse) EnvelopeCode() string { return r.Metadata.Code }
func (r *IsTakenResponse) EnvelopeCode() string { return r.Metadata.Code }

func (r *GetAddressResponse) EnvelopeCode() string     { return r.Metadata.Code }
func (r *IsOnFriendListResponse) EnvelopeCode() string { return r.Metadata.Code }
