package dto

// RegisterRequest — тело POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// VerifyEmailRequest — тело POST /auth/verify-email.
type VerifyEmailRequest struct {
	UserID string `json:"userId" binding:"required"`
	OTP    string `json:"otp" binding:"required"`
}

// ResendOtpRequest — тело POST /auth/resend-otp.
type ResendOtpRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// LoginRequest — тело POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest — тело POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest — тело POST /auth/reset-password.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	ResetCode   string `json:"resetCode" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// UpdateProfileRequest — тело POST/PUT /users/profile. Все поля опциональны,
// но хотя бы одно должно быть передано.
type UpdateProfileRequest struct {
	Name       *string  `json:"name"`
	Gender     *string  `json:"gender"`
	Age        *int     `json:"age"`
	Location   *string  `json:"location"`
	Height     *float64 `json:"height"`
	Weight     *float64 `json:"weight"`
	GoalWeight *float64 `json:"goalWeight"`
	Goals      []string `json:"goals"`
}

// Empty сообщает, что в запросе нет ни одного поля.
func (r *UpdateProfileRequest) Empty() bool {
	return r.Name == nil && r.Gender == nil && r.Age == nil && r.Location == nil &&
		r.Height == nil && r.Weight == nil && r.GoalWeight == nil && r.Goals == nil
}
