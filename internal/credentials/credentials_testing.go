package credentials

import (
	"fmt"
	"testing"

	"github.com/zalando/go-keyring"
)

// credentials_testing.go provides test helpers for safely testing credential
// operations that interact with the OS keyring (macOS Keychain, Windows
// Credential Manager, Linux Secret Service).
//
// Tests use the ACTUAL OS keyring rather than mocks, so they must not touch
// the production "deskmcp" service entry, must clean up after themselves,
// and must skip gracefully in CI environments where no keyring is available.
//
// Each test gets a unique keyring service name (e.g. "deskmcp-test-TestFoo"),
// which isolates test credentials from production and from other tests, and
// cleanup is registered via t.Cleanup().

// TestCredentialManager wraps CredentialManager with test-specific
// functionality that allows for safe cleanup and isolation between tests.
type TestCredentialManager struct {
	*CredentialManager
	testService string
	t           *testing.T
}

// NewTestCredentialManager creates a credential manager for testing. It
// uses a unique service name derived from the test name and registers
// automatic cleanup, so tests can run in parallel without touching each
// other or the real deskmcp entry.
func NewTestCredentialManager(t *testing.T) *TestCredentialManager {
	t.Helper()

	// Use a unique service name for testing to avoid conflicts
	testService := fmt.Sprintf("deskmcp-test-%s", t.Name())

	cm := &TestCredentialManager{
		CredentialManager: &CredentialManager{
			service: testService,
		},
		testService: testService,
		t:           t,
	}

	// Register cleanup to remove all test credentials
	t.Cleanup(func() {
		cm.Cleanup()
	})

	return cm
}

// Cleanup removes all test credentials from the keyring.
// This is automatically called via t.Cleanup() but can also be called manually.
func (tcm *TestCredentialManager) Cleanup() {
	tcm.t.Helper()

	// Ignore errors as the keys might not exist
	_ = keyring.Delete(tcm.testService, apiTokenKey)
	_ = keyring.Delete(tcm.testService, storeCheckKey)
}

// SetupTestKeyring verifies the keyring is actually usable and skips the
// test when it is not (e.g. headless CI without a secret service).
//
// Returns a cleanup function that should be called when done.
func SetupTestKeyring(t *testing.T) func() {
	t.Helper()

	testService := fmt.Sprintf("deskmcp-keyring-test-%s", t.Name())
	testKey := "test_availability"
	testValue := "test_value"

	err := keyring.Set(testService, testKey, testValue)
	if err != nil {
		t.Skipf("Keyring not available, skipping test: %v", err)
	}

	return func() {
		_ = keyring.Delete(testService, testKey)
	}
}
