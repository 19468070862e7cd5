package hubsdk

import "time"

// Login result discriminators.
const (
	ResultTokenIssued       = "token_issued"
	ResultSetupRequired     = "setup_required"
	ResultChallengeRequired = "challenge_required"
)

// ============================================================================
// Common
// ============================================================================

type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthChecks struct {
	Database string `json:"database"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// UserResponse never carries the password hash, TOTP secret or OTP state.
type UserResponse struct {
	ID               string    `json:"id"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phoneNumber,omitempty"`
	Role             string    `json:"role"`
	Status           string    `json:"status"`
	TwoFactorEnabled bool      `json:"twoFactorEnabled"`
	TwoFactorMethod  string    `json:"twoFactorMethod"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type UserRef struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	AssignedTo  UserRef   `json:"assignedTo"`
	AssignedBy  *UserRef  `json:"assignedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ============================================================================
// Auth
// ============================================================================

type RegisterRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Password    string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned whenever a session token is issued.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// LoginResponse carries one of the three login outcomes. Result says which
// fields are set.
type LoginResponse struct {
	Result  string `json:"result"`
	Message string `json:"message,omitempty"`

	// token_issued
	Token string        `json:"token,omitempty"`
	User  *UserResponse `json:"user,omitempty"`

	// setup_required
	RequiresSetup bool   `json:"requiresSetup,omitempty"`
	Secret        string `json:"secret,omitempty"`
	OTPAuthURL    string `json:"otpauthUrl,omitempty"`
	QRCode        string `json:"qrCode,omitempty"`

	// challenge_required
	Requires2FA bool     `json:"requires2FA,omitempty"`
	Methods     []string `json:"methods,omitempty"`
	MaskedPhone *string  `json:"maskedPhone,omitempty"`

	// setup_required and challenge_required
	UserID string `json:"userId,omitempty"`
}

// TwoFactorLoginRequest completes a login with an authenticator code.
type TwoFactorLoginRequest struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

type SendOTPRequest struct {
	UserID string `json:"userId"`
}

type SendOTPResponse struct {
	Message       string    `json:"message"`
	ExpiresAt     time.Time `json:"expiresAt"`
	DevOTP        string    `json:"devOtp,omitempty"`
	DeliveryError string    `json:"deliveryError,omitempty"`
}

type VerifyOTPRequest struct {
	UserID string `json:"userId"`
	OTP    string `json:"otp"`
}

type TwoFactorSetupResponse struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauthUrl"`
	QRCode     string `json:"qrCode"`
}

type VerifySetupRequest struct {
	Token string `json:"token"`
}

// ============================================================================
// Profile
// ============================================================================

// UpdateProfileRequest fields are optional. An empty PhoneNumber removes it.
type UpdateProfileRequest struct {
	FullName        *string `json:"fullName,omitempty"`
	Email           *string `json:"email,omitempty"`
	PhoneNumber     *string `json:"phoneNumber,omitempty"`
	TwoFactorMethod *string `json:"twoFactorMethod,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// ============================================================================
// Admin
// ============================================================================

type StatsResponse struct {
	TotalUsers    int64 `json:"totalUsers"`
	ActiveUsers   int64 `json:"activeUsers"`
	InactiveUsers int64 `json:"inactiveUsers"`
}

type CreateUserRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Password    string `json:"password"`
	Status      string `json:"status,omitempty"`
}

type UpdateUserRequest struct {
	FullName        *string `json:"fullName,omitempty"`
	Email           *string `json:"email,omitempty"`
	PhoneNumber     *string `json:"phoneNumber,omitempty"`
	TwoFactorMethod *string `json:"twoFactorMethod,omitempty"`
	Role            *string `json:"role,omitempty"`
	Status          *string `json:"status,omitempty"`
	Password        *string `json:"password,omitempty"`
}

type CreateTaskRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	AssignToEmail string `json:"assignToEmail"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}
