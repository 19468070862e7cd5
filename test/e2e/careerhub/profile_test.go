package careerhub_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/careerhub/pkg/hubsdk"
)

func TestProfileAndReenrollment(t *testing.T) {
	client := setupContainer(t, nil)
	ctx := t.Context()

	session, userID, oldSecret := enrolledUser(t, client, "devi@example.com", "")

	name, phone, method := "Devi R", "9123456789", "whatsapp"
	profile, err := session.UpdateProfile(ctx, hubsdk.UpdateProfileRequest{
		FullName: &name, PhoneNumber: &phone, TwoFactorMethod: &method,
	})
	require.NoError(t, err)
	require.Equal(t, "Devi R", profile.FullName)
	require.Equal(t, "9123456789", profile.PhoneNumber)
	require.Equal(t, "whatsapp", profile.TwoFactorMethod)

	err = session.ChangePassword(ctx, "wrong-password", "NewPass123!")
	assertAPIError(t, err, http.StatusUnauthorized, hubsdk.ErrorCodeInvalidCredentials)
	require.NoError(t, session.ChangePassword(ctx, userPassword, "NewPass123!"))

	// Rotate the authenticator secret.
	setup, err := session.EnableTwoFactor(ctx)
	require.NoError(t, err)
	require.NotEqual(t, oldSecret, setup.Secret)
	require.Contains(t, setup.QRCode, "data:image/png;base64,")
	require.NoError(t, session.VerifyTwoFactorSetup(ctx, currentCode(t, setup.Secret)))

	res, err := client.Login(ctx, "devi@example.com", "NewPass123!")
	require.NoError(t, err)
	require.Equal(t, hubsdk.ResultChallengeRequired, res.Result)

	auth, err := client.VerifyTwoFactorLogin(ctx, userID, currentCode(t, setup.Secret))
	require.NoError(t, err)

	// Carry on with the fresh token in the same session.
	session.SetToken(auth.Token)
	require.NoError(t, session.ResetPassword(ctx, "Another123!"))

	_, err = client.Login(ctx, "devi@example.com", "NewPass123!")
	assertAPIError(t, err, http.StatusUnauthorized, hubsdk.ErrorCodeInvalidCredentials)
}
