package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/careerhub/internal/careerhub/service"
	"github.com/aussiebroadwan/careerhub/pkg/httpx"
	"github.com/aussiebroadwan/careerhub/pkg/hubsdk"
)

// TwoFactorHandler lets a signed-in user (re)enroll their authenticator.
type TwoFactorHandler struct {
	TOTPService *service.TOTPService
}

// HandleEnable handles POST /api/auth/enable-2fa
//
//	@Summary		Start authenticator enrollment
//	@Description	Generates a new secret, replacing any previous one. 2FA is enabled by verify-2fa-setup.
//	@Tags			2FA
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	hubsdk.TwoFactorSetupResponse
//	@Failure		401	{object}	hubsdk.ErrorResponse	"Invalid or missing token"
//	@Failure		403	{object}	hubsdk.ErrorResponse	"Account inactive"
//	@Router			/api/auth/enable-2fa [post].
func (h *TwoFactorHandler) HandleEnable(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	setup, err := h.TOTPService.Generate(r.Context(), u.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, hubsdk.TwoFactorSetupResponse{
		Secret:     setup.Secret,
		OTPAuthURL: setup.OTPAuthURL,
		QRCode:     setup.QRCode,
	})
}

// HandleVerifySetup handles POST /api/auth/verify-2fa-setup
//
//	@Summary		Finish authenticator enrollment
//	@Tags			2FA
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hubsdk.VerifySetupRequest	true	"Authenticator code"
//	@Success		200		{object}	hubsdk.MessageResponse
//	@Failure		400		{object}	hubsdk.ErrorResponse	"Enrollment not started"
//	@Failure		401		{object}	hubsdk.ErrorResponse	"Invalid code"
//	@Router			/api/auth/verify-2fa-setup [post].
func (h *TwoFactorHandler) HandleVerifySetup(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())

	var req hubsdk.VerifySetupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		hubsdk.ErrInvalidJSON.WriteError(w)
		return
	}
	if strings.TrimSpace(req.Token) == "" {
		hubsdk.NewAPIError(http.StatusBadRequest, hubsdk.ErrorCodeInvalidRequest, "token is required").WriteError(w)
		return
	}

	if _, err := h.TOTPService.VerifySetup(r.Context(), u.ID, strings.TrimSpace(req.Token)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, hubsdk.MessageResponse{Message: "2FA enabled successfully"})
}
