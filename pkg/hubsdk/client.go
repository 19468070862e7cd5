package hubsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient calls the unauthenticated CareerHub endpoints and creates
// Sessions for the rest.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewSession wraps an issued token.
func (c *SDKClient) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}

func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.call(ctx, http.MethodPost, "/api/auth/register", "", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login returns the login outcome. Refused logins are returned as *APIError.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	req := LoginRequest{Email: email, Password: password}
	if err := c.call(ctx, http.MethodPost, "/api/auth/login", "", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyTwoFactorSetupLogin completes a login that returned setup_required.
func (c *SDKClient) VerifyTwoFactorSetupLogin(ctx context.Context, userID, code string) (*AuthResponse, error) {
	return c.authCall(ctx, "/api/auth/verify-2fa-setup-login", TwoFactorLoginRequest{UserID: userID, Token: code})
}

// VerifyTwoFactorLogin completes a challenge with an authenticator code.
func (c *SDKClient) VerifyTwoFactorLogin(ctx context.Context, userID, code string) (*AuthResponse, error) {
	return c.authCall(ctx, "/api/auth/verify-2fa-login", TwoFactorLoginRequest{UserID: userID, Token: code})
}

// SendWhatsAppOTP asks the server to issue and deliver a one-time code.
func (c *SDKClient) SendWhatsAppOTP(ctx context.Context, userID string) (*SendOTPResponse, error) {
	var out SendOTPResponse
	req := SendOTPRequest{UserID: userID}
	if err := c.call(ctx, http.MethodPost, "/api/auth/send-whatsapp-otp", "", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyWhatsAppOTP completes a challenge with a WhatsApp code.
func (c *SDKClient) VerifyWhatsAppOTP(ctx context.Context, userID, code string) (*AuthResponse, error) {
	return c.authCall(ctx, "/api/auth/verify-whatsapp-otp", VerifyOTPRequest{UserID: userID, OTP: code})
}

func (c *SDKClient) authCall(ctx context.Context, path string, body any) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.call(ctx, http.MethodPost, path, "", body, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.call(ctx, http.MethodGet, "/livez", "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReadiness checks if the service is ready.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.call(ctx, http.MethodGet, "/readyz", "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
