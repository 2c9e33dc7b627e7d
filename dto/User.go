package dto

// UpdateProfileRequest is a partial update: nil means "leave the column
// alone", so the handler only writes fields the client actually sent.
type UpdateProfileRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=50"`
	Username *string `json:"username" validate:"omitempty,username"`
	Profile  *string `json:"profile" validate:"omitempty,url|eq=none-url"`
}

type ProfileResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Profile         string `json:"profile"`
	IsEmailVerified bool   `json:"is_email_verified"`
	MFAEnabled      bool   `json:"mfa_enabled"`
}
