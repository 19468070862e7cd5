package careerhub_test

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/careerhub/pkg/hubsdk"
)

/*
 * Common constants and helper functions for CareerHub end-to-end tests.
 * This includes container setup, login flows, and assertions.
 */

const (
	testImageName = "careerhub-test:latest"

	adminEmail    = "sarman@gmail.com"
	adminPassword = "admin1234"
	userPassword  = "User123!"
)

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		fmt.Fprintln(os.Stdout, "skipping end-to-end tests in short mode")
		os.Exit(0)
	}

	fmt.Fprintf(os.Stdout, "Building CareerHub Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up CareerHub Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/careerhub/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupContainer starts CareerHub with a seeded admin and relaxed rate
// limits, and returns an SDK client pointed at it.
func setupContainer(t *testing.T, extraEnv map[string]string) *hubsdk.SDKClient {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"ENV":            "test",
		"LOG_LEVEL":      "info",
		"LOG_FORMAT":     "json",
		"JWT_SECRET":     "e2e-secret-0123456789abcdef0123456789",
		"ADMIN_EMAIL":    adminEmail,
		"ADMIN_PASSWORD": adminPassword,
		// Tests make many rapid requests from one address
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        testImageName,
			ExposedPorts: []string{"8080/tcp"},
			Env:          env,
			WaitingFor: wait.ForHTTP("/livez").
				WithPort("8080/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)
	host, err := container.Host(ctx)
	require.NoError(t, err)

	return hubsdk.NewSDKClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port()))
}

// adminSession logs in as the seeded admin.
func adminSession(t *testing.T, client *hubsdk.SDKClient) *hubsdk.Session {
	t.Helper()

	res, err := client.Login(t.Context(), adminEmail, adminPassword)
	require.NoError(t, err)
	require.Equal(t, hubsdk.ResultTokenIssued, res.Result)
	require.NotEmpty(t, res.Token)
	return client.NewSession(res.Token)
}

// enrolledUser registers a user and completes the first setup_required
// login. It returns the session, user id and TOTP secret.
func enrolledUser(t *testing.T, client *hubsdk.SDKClient, email, phone string) (*hubsdk.Session, string, string) {
	t.Helper()
	ctx := t.Context()

	_, err := client.Register(ctx, hubsdk.RegisterRequest{
		FullName:    "E2E " + email,
		Email:       email,
		PhoneNumber: phone,
		Password:    userPassword,
	})
	require.NoError(t, err)

	res, err := client.Login(ctx, email, userPassword)
	require.NoError(t, err)
	require.Equal(t, hubsdk.ResultSetupRequired, res.Result)
	require.True(t, res.RequiresSetup)
	require.NotEmpty(t, res.Secret)

	auth, err := client.VerifyTwoFactorSetupLogin(ctx, res.UserID, currentCode(t, res.Secret))
	require.NoError(t, err)
	require.True(t, auth.User.TwoFactorEnabled)

	return client.NewSession(auth.Token), res.UserID, res.Secret
}

func currentCode(t *testing.T, secret string) string {
	t.Helper()
	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)
	return code
}

// assertAPIError checks the status and error code of an SDK error.
func assertAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)

	var apiErr *hubsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %T: %v", err, err)
	require.Equal(t, status, apiErr.StatusCode, apiErr.Error())
	require.Equal(t, code, apiErr.Code)
}

func assertHealthy(t *testing.T, health *hubsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
