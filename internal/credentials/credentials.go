package credentials

import (
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service name for OS credential store
	credentialService = "deskmcp"
	// Key for the service-desk API token
	apiTokenKey = "api_token"
	// Key for the throwaway entry CheckStore round-trips
	storeCheckKey = "store_check"
)

// CredentialManager handles secure storage and retrieval of the
// service-desk API token
type CredentialManager struct {
	service string
}

// NewCredentialManager creates a new credential manager instance
func NewCredentialManager() *CredentialManager {
	return &CredentialManager{
		service: credentialService,
	}
}

// StoreToken securely stores the service-desk API token in the OS
// credential store. The token is validated before storage.
//
// Parameters:
//   - token: bearer token issued by the service-desk backend
//
// Returns:
//   - error: Storage errors or validation failures
func (cm *CredentialManager) StoreToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("token cannot be empty")
	}

	if err := validateTokenFormat(token); err != nil {
		return fmt.Errorf("invalid token format: %w", err)
	}

	// Store in OS credential store
	if err := keyring.Set(cm.service, apiTokenKey, token); err != nil {
		return fmt.Errorf("failed to store token in credential store: %w", err)
	}

	return nil
}

// GetToken retrieves the stored service-desk API token from the OS
// credential store.
//
// Returns:
//   - string: The stored token
//   - error: Retrieval errors or if no token is stored
func (cm *CredentialManager) GetToken() (string, error) {
	token, err := keyring.Get(cm.service, apiTokenKey)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", fmt.Errorf("no API token found - run `deskmcp token set` to store one")
		}
		return "", fmt.Errorf("failed to retrieve token from credential store: %w", err)
	}

	if strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("stored token is empty - run `deskmcp token set` to replace it")
	}

	return token, nil
}

// DeleteToken removes the stored service-desk API token from the OS
// credential store. Useful for token rotation.
//
// Returns:
//   - error: Deletion errors (returns nil if token doesn't exist)
func (cm *CredentialManager) DeleteToken() error {
	err := keyring.Delete(cm.service, apiTokenKey)
	if err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("failed to delete token from credential store: %w", err)
	}
	return nil
}

// HasToken checks if an API token is stored without retrieving it.
//
// Returns:
//   - bool: true if a token is stored, false otherwise
func (cm *CredentialManager) HasToken() bool {
	_, err := keyring.Get(cm.service, apiTokenKey)
	return err == nil
}

// validateTokenFormat applies the minimal sanity checks the adapter can
// make without knowing the backend's token scheme: tokens are opaque
// bearer strings, so only length and whitespace are checked here.
//
// Parameters:
//   - token: Token string to validate
//
// Returns:
//   - error: Validation error if token format is invalid
func validateTokenFormat(token string) error {
	token = strings.TrimSpace(token)

	if len(token) < 8 {
		return fmt.Errorf("token too short (minimum 8 characters)")
	}

	if strings.ContainsAny(token, " \t\r\n") {
		return fmt.Errorf("token must not contain whitespace")
	}

	return nil
}

// StoreStatus is the outcome of a credential store round-trip check.
type StoreStatus struct {
	// Usable reports whether a value written to the store could be read
	// back and removed again.
	Usable bool
	// Fault explains why the store cannot be used. Empty when Usable.
	Fault string
	// Note carries a non-fatal observation, such as a check entry that
	// could not be removed afterwards.
	Note string
}

// CheckStore exercises the OS credential store end to end: it writes a
// throwaway entry under the deskmcp service, reads it back, compares it
// and removes it. `deskmcp token status` reports the outcome so users can
// verify their keyring before storing the real token.
//
// Returns:
//   - StoreStatus: whether the store is usable, plus any fault or note
func (cm *CredentialManager) CheckStore() StoreStatus {
	const checkValue = "deskmcp-store-check"

	if err := keyring.Set(cm.service, storeCheckKey, checkValue); err != nil {
		return StoreStatus{Fault: fmt.Sprintf("cannot write to the credential store: %v", err)}
	}

	got, err := keyring.Get(cm.service, storeCheckKey)
	if err != nil {
		_ = keyring.Delete(cm.service, storeCheckKey)
		return StoreStatus{Fault: fmt.Sprintf("cannot read back from the credential store: %v", err)}
	}
	if got != checkValue {
		_ = keyring.Delete(cm.service, storeCheckKey)
		return StoreStatus{Fault: "the credential store returned a different value than was written"}
	}

	if err := keyring.Delete(cm.service, storeCheckKey); err != nil {
		return StoreStatus{
			Usable: true,
			Note:   fmt.Sprintf("the store works but the check entry could not be removed: %v", err),
		}
	}

	return StoreStatus{Usable: true}
}
