package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/domain"
	"github.com/aussiebroadwan/careerhub/internal/careerhub/service"
	"github.com/aussiebroadwan/careerhub/pkg/httpx"
	"github.com/aussiebroadwan/careerhub/pkg/hubsdk"
	"github.com/aussiebroadwan/careerhub/pkg/slogx"
)

// AuthHandler serves registration and every step of the login protocol.
type AuthHandler struct {
	AuthService *service.AuthService
	OTPService  *service.OTPService
	Production  bool
}

// HandleRegister handles POST /api/auth/register
//
//	@Summary		Register a new account
//	@Description	Creates an active account with the user role and returns a session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hubsdk.RegisterRequest	true	"Account details"
//	@Success		201		{object}	hubsdk.AuthResponse
//	@Failure		400		{object}	hubsdk.ErrorResponse	"Validation failed"
//	@Failure		409		{object}	hubsdk.ErrorResponse	"User already exists"
//	@Failure		429		{object}	hubsdk.ErrorResponse	"Rate limited"
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req hubsdk.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		hubsdk.ErrInvalidJSON.WriteError(w)
		return
	}

	issued, err := h.AuthService.Register(r.Context(), service.RegisterInput{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	user, err := toUserResponse(issued.User)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, hubsdk.AuthResponse{Token: issued.Token, User: user})
}

// HandleLogin handles POST /api/auth/login
//
//	@Summary		Log in
//	@Description	Checks credentials and returns one of three results.
//	@Description	token_issued: admins get a token straight away.
//	@Description	setup_required: 2FA is not enabled yet; a fresh secret and QR code are returned.
//	@Description	challenge_required: a second factor is needed; methods lists what the account can receive.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hubsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	hubsdk.LoginResponse
//	@Failure		400		{object}	hubsdk.ErrorResponse	"Missing email or password"
//	@Failure		401		{object}	hubsdk.ErrorResponse	"Invalid credentials"
//	@Failure		403		{object}	hubsdk.ErrorResponse	"Account inactive"
//	@Failure		429		{object}	hubsdk.ErrorResponse	"Rate limited"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req hubsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		hubsdk.ErrInvalidJSON.WriteError(w)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeInvalidRequest, "email and password are required").WriteError(w)
		return
	}

	result, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	switch res := result.(type) {
	case domain.TokenIssued:
		user, err := toUserResponse(res.User)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, hubsdk.LoginResponse{
			Result: hubsdk.ResultTokenIssued,
			Token:  res.Token,
			User:   &user,
		})
	case domain.SetupRequired:
		httpx.WriteJSON(w, http.StatusOK, hubsdk.LoginResponse{
			Result:        hubsdk.ResultSetupRequired,
			Message:       "2FA setup required",
			RequiresSetup: true,
			UserID:        res.UserID,
			Secret:        res.Secret,
			OTPAuthURL:    res.OTPAuthURL,
			QRCode:        res.QRCode,
		})
	case domain.ChallengeRequired:
		methods := make([]string, 0, len(res.Methods))
		for _, m := range res.Methods {
			methods = append(methods, string(m))
		}
		httpx.WriteJSON(w, http.StatusOK, hubsdk.LoginResponse{
			Result:      hubsdk.ResultChallengeRequired,
			Message:     "2FA verification required",
			Requires2FA: true,
			UserID:      res.UserID,
			Methods:     methods,
			MaskedPhone: res.MaskedPhone,
		})
	case domain.Rejected:
		slogx.FromContext(ctx).Info("login rejected", "reason", res.Reason)
		writeServiceError(w, r, res.Reason)
	default:
		slogx.FromContext(ctx).Error("unhandled login result", "type", result)
		hubsdk.ErrServerError.WriteError(w)
	}
}

// HandleVerifySetupLogin handles POST /api/auth/verify-2fa-setup-login
//
//	@Summary		Finish 2FA setup during login
//	@Description	Verifies the first authenticator code after a setup_required login, enables 2FA and issues a token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hubsdk.TwoFactorLoginRequest	true	"User id and authenticator code"
//	@Success		200		{object}	hubsdk.AuthResponse
//	@Failure		401		{object}	hubsdk.ErrorResponse	"Invalid code"
//	@Failure		403		{object}	hubsdk.ErrorResponse	"Account inactive"
//	@Failure		404		{object}	hubsdk.ErrorResponse	"User or 2FA setup not found"
//	@Router			/api/auth/verify-2fa-setup-login [post].
func (h *AuthHandler) HandleVerifySetupLogin(w http.ResponseWriter, r *http.Request) {
	var req hubsdk.TwoFactorLoginRequest
	if !decodeCodeRequest(w, r, &req, &req.UserID, &req.Token) {
		return
	}

	issued, err := h.AuthService.CompleteTOTPSetupLogin(r.Context(), req.UserID, req.Token)
	if errors.Is(err, service.ErrNotEnrolled) {
		hubsdk.NewAPIError(http.StatusNotFound, hubsdk.ErrorCodeNotFound, "user or 2FA setup not found").WriteError(w)
		return
	}
	writeIssued(w, r, issued, err)
}

// HandleVerifyLogin handles POST /api/auth/verify-2fa-login
//
//	@Summary		Answer a 2FA challenge with an authenticator code
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hubsdk.TwoFactorLoginRequest	true	"User id and authenticator code"
//	@Success		200		{object}	hubsdk.AuthResponse
//	@Failure		400		{object}	hubsdk.ErrorResponse	"2FA not enabled"
//	@Failure		401		{object}	hubsdk.ErrorResponse	"Invalid code"
//	@Failure		404		{object}	hubsdk.ErrorResponse	"User not found"
//	@Router			/api/auth/verify-2fa-login [post].
func (h *AuthHandler) HandleVerifyLogin(w http.ResponseWriter, r *http.Request) {
	var req hubsdk.TwoFactorLoginRequest
	if !decodeCodeRequest(w, r, &req, &req.UserID, &req.Token) {
		return
	}

	issued, err := h.AuthService.CompleteTOTPLogin(r.Context(), req.UserID, req.Token)
	writeIssued(w, r, issued, err)
}

// HandleSendOTP handles POST /api/auth/send-whatsapp-otp
//
//	@Summary		Send a WhatsApp code
//	@Description	Issues a 6 digit code valid for 5 minutes and sends it to the phone on file.
//	@Description	Any earlier code stops working. If delivery fails outside production the code is
//	@Description	returned in devOtp; in production a 500 is returned but the code stays valid.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hubsdk.SendOTPRequest	true	"User id"
//	@Success		200		{object}	hubsdk.SendOTPResponse
//	@Failure		400		{object}	hubsdk.ErrorResponse	"No phone number on file"
//	@Failure		404		{object}	hubsdk.ErrorResponse	"User not found"
//	@Failure		500		{object}	hubsdk.ErrorResponse	"Delivery failed"
//	@Router			/api/auth/send-whatsapp-otp [post].
func (h *AuthHandler) HandleSendOTP(w http.ResponseWriter, r *http.Request) {
	var req hubsdk.SendOTPRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		hubsdk.ErrInvalidJSON.WriteError(w)
		return
	}
	if req.UserID == "" {
		hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeInvalidRequest, "userId is required").WriteError(w)
		return
	}

	issue, err := h.OTPService.Issue(r.Context(), req.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if issue.DeliveryErr != nil {
		if h.Production {
			hubsdk.NewAPIError(http.StatusInternalServerError, hubsdk.ErrorCodeDeliveryFailed,
				"failed to send WhatsApp message").WriteError(w)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, hubsdk.SendOTPResponse{
			Message:       "OTP generated but WhatsApp delivery failed",
			ExpiresAt:     issue.ExpiresAt,
			DevOTP:        issue.Code,
			DeliveryError: issue.DeliveryErr.Error(),
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, hubsdk.SendOTPResponse{
		Message:   "OTP sent to your WhatsApp",
		ExpiresAt: issue.ExpiresAt,
	})
}

// HandleVerifyOTP handles POST /api/auth/verify-whatsapp-otp
//
//	@Summary		Answer a 2FA challenge with a WhatsApp code
//	@Description	Each wrong code counts; after 5 a new code must be requested.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hubsdk.VerifyOTPRequest	true	"User id and code"
//	@Success		200		{object}	hubsdk.AuthResponse
//	@Failure		400		{object}	hubsdk.ErrorResponse	"No code requested"
//	@Failure		401		{object}	hubsdk.ErrorResponse	"Invalid, expired or exhausted code"
//	@Failure		404		{object}	hubsdk.ErrorResponse	"User not found"
//	@Router			/api/auth/verify-whatsapp-otp [post].
func (h *AuthHandler) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req hubsdk.VerifyOTPRequest
	if !decodeCodeRequest(w, r, &req, &req.UserID, &req.OTP) {
		return
	}

	issued, err := h.AuthService.CompleteOTPLogin(r.Context(), req.UserID, req.OTP)
	writeIssued(w, r, issued, err)
}

// decodeCodeRequest decodes a {userId, code} body and checks both are set.
func decodeCodeRequest(w http.ResponseWriter, r *http.Request, req any, userID, code *string) bool {
	if err := httpx.DecodeJSON(r, req); err != nil {
		hubsdk.ErrInvalidJSON.WriteError(w)
		return false
	}
	if *userID == "" || strings.TrimSpace(*code) == "" {
		hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeInvalidRequest, "userId and code are required").WriteError(w)
		return false
	}
	*code = strings.TrimSpace(*code)
	return true
}

func writeIssued(w http.ResponseWriter, r *http.Request, issued domain.TokenIssued, err error) {
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	user, err := toUserResponse(issued.User)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, hubsdk.AuthResponse{Token: issued.Token, User: user})
}
