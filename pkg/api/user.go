package api

// LoginRequest is the body of POST /user/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is the body of a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// SignupRequest is the body of POST /user/signup.
type SignupRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Email       string  `json:"email"       validate:"required,email"`
	Password    string  `json:"password"    validate:"required,min=8"`
	PhoneNumber string  `json:"phoneNumber" validate:"omitempty,e164"`
	SneakerSize float64 `json:"sneakerSize" validate:"gt=0"`
	Role        string  `json:"role,omitempty"`
}

// VerifyAccountRequest is the body of POST /user/verify-account.
type VerifyAccountRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code"  validate:"required"`
}

// ForgotPasswordRequest is the body of POST /user/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyCodeRequest is the body of POST /user/verify-code.
type VerifyCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code"  validate:"required"`
}

// ChangePasswordRequest is the body of PATCH /user/change-password.
type ChangePasswordRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	Code        string `json:"code"        validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// EditUserRequest is the body of PATCH /user/edit/:id. Birthday, when
// present, is an ISO YYYY-MM-DD date; empty fields are omitted rather than
// sent as nulls.
type EditUserRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"       validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	SneakerSize string `json:"sneakerSize,omitempty"`
	Birthday    string `json:"birthday,omitempty"    validate:"omitempty,datetime=2006-01-02"`
	Role        string `json:"role,omitempty"`
}

// ErrorResponse is the backend's error envelope. Message is passed through
// to the user verbatim when present.
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}
