package dto

// RegisterRequest describes admin registration payload.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest describes admin login payload. AccessToken is the order service credential.
type LoginRequest struct {
	Email       string  `json:"email" binding:"required"`
	Password    string  `json:"password" binding:"required"`
	AccessToken *string `json:"access_token"`
}
