package careerhub_test

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/careerhub/pkg/hubsdk"
)

// TestLoginFlows covers the three login results and both second factors.
func TestLoginFlows(t *testing.T) {
	client := setupContainer(t, nil)
	ctx := t.Context()

	t.Run("admin skips two-factor", func(t *testing.T) {
		admin := adminSession(t, client)
		profile, err := admin.Profile(ctx)
		require.NoError(t, err)
		require.Equal(t, "admin", profile.Role)
	})

	t.Run("bad password", func(t *testing.T) {
		_, err := client.Login(ctx, adminEmail, "not-the-password")
		assertAPIError(t, err, http.StatusUnauthorized, hubsdk.ErrorCodeInvalidCredentials)
	})

	_, userID, secret := enrolledUser(t, client, "asha@example.com", "9876543210")

	t.Run("authenticator challenge", func(t *testing.T) {
		res, err := client.Login(ctx, "asha@example.com", userPassword)
		require.NoError(t, err)
		require.Equal(t, hubsdk.ResultChallengeRequired, res.Result)
		require.ElementsMatch(t, []string{"authenticator", "whatsapp"}, res.Methods)
		require.NotNil(t, res.MaskedPhone)
		require.Equal(t, "987****210", *res.MaskedPhone)

		_, err = client.VerifyTwoFactorLogin(ctx, userID, "000000")
		assertAPIError(t, err, http.StatusUnauthorized, hubsdk.ErrorCodeInvalidCode)

		auth, err := client.VerifyTwoFactorLogin(ctx, userID, currentCode(t, secret))
		require.NoError(t, err)
		require.NotEmpty(t, auth.Token)
	})

	t.Run("whatsapp challenge without twilio", func(t *testing.T) {
		// No Twilio credentials in the container, so delivery fails and the
		// non-production response carries the code.
		sent, err := client.SendWhatsAppOTP(ctx, userID)
		require.NoError(t, err)
		require.Regexp(t, regexp.MustCompile(`^\d{6}$`), sent.DevOTP)
		require.NotEmpty(t, sent.DeliveryError)

		_, err = client.VerifyWhatsAppOTP(ctx, userID, "000000")
		if sent.DevOTP == "000000" {
			t.Skip("generated code collided with the wrong guess")
		}
		assertAPIError(t, err, http.StatusUnauthorized, hubsdk.ErrorCodeInvalidCode)

		auth, err := client.VerifyWhatsAppOTP(ctx, userID, sent.DevOTP)
		require.NoError(t, err)
		require.NotEmpty(t, auth.Token)

		_, err = client.VerifyWhatsAppOTP(ctx, userID, sent.DevOTP)
		assertAPIError(t, err, http.StatusBadRequest, hubsdk.ErrorCodeNoCodeRequested)
	})
}

func TestProductionHidesCodes(t *testing.T) {
	client := setupContainer(t, map[string]string{"ENV": "production"})
	ctx := t.Context()

	_, userID, _ := enrolledUser(t, client, "ravi@example.com", "9876543210")

	_, err := client.SendWhatsAppOTP(ctx, userID)
	assertAPIError(t, err, http.StatusInternalServerError, hubsdk.ErrorCodeDeliveryFailed)
}
