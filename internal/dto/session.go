package dto

// SetTokenRequest stores the ERP backend bearer token.
type SetTokenRequest struct {
	Token string `json:"token" binding:"required"`
}
