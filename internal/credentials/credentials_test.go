package credentials

import (
	"strings"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestNewCredentialManager(t *testing.T) {
	cm := NewCredentialManager()
	if cm.service != credentialService {
		t.Errorf("NewCredentialManager() service = %v, want %v", cm.service, credentialService)
	}
}

func TestValidateTokenFormat(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid opaque token",
			token:   "sd-9f8e7d6c5b4a39281706",
			wantErr: false,
		},
		{
			name:    "valid token with surrounding whitespace",
			token:   "  sd-9f8e7d6c5b4a39281706  ",
			wantErr: false,
		},
		{
			name:    "empty token",
			token:   "",
			wantErr: true,
			errMsg:  "token too short",
		},
		{
			name:    "whitespace only token",
			token:   "   \t\n  ",
			wantErr: true,
			errMsg:  "token too short",
		},
		{
			name:    "too short token",
			token:   "abc123",
			wantErr: true,
			errMsg:  "token too short",
		},
		{
			name:    "token with interior whitespace",
			token:   "sd-9f8e 7d6c5b4a",
			wantErr: true,
			errMsg:  "must not contain whitespace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTokenFormat(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("validateTokenFormat(%q) expected error", tt.token)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("validateTokenFormat(%q) error = %v, want containing %q", tt.token, err, tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("validateTokenFormat(%q) unexpected error: %v", tt.token, err)
			}
		})
	}
}

func TestStoreTokenRejectsInvalid(t *testing.T) {
	cm := NewTestCredentialManager(t)

	if err := cm.StoreToken(""); err == nil {
		t.Error("StoreToken(\"\") expected error")
	}
	if err := cm.StoreToken("short"); err == nil {
		t.Error("StoreToken with short token expected error")
	}
}

func TestStoreAndGetToken(t *testing.T) {
	cleanup := SetupTestKeyring(t)
	defer cleanup()

	cm := NewTestCredentialManager(t)

	token := "sd-roundtrip-token-1234"
	if err := cm.StoreToken(token); err != nil {
		t.Fatalf("StoreToken() error = %v", err)
	}

	got, err := cm.GetToken()
	if err != nil {
		t.Fatalf("GetToken() error = %v", err)
	}
	if got != token {
		t.Errorf("GetToken() = %v, want %v", got, token)
	}

	if !cm.HasToken() {
		t.Error("HasToken() = false after store")
	}
}

func TestGetTokenWhenMissing(t *testing.T) {
	cleanup := SetupTestKeyring(t)
	defer cleanup()

	cm := NewTestCredentialManager(t)

	_, err := cm.GetToken()
	if err == nil {
		t.Fatal("GetToken() expected error when nothing stored")
	}
	if !strings.Contains(err.Error(), "no API token found") {
		t.Errorf("GetToken() error = %v", err)
	}
}

func TestCheckStore(t *testing.T) {
	cleanup := SetupTestKeyring(t)
	defer cleanup()

	cm := NewTestCredentialManager(t)

	status := cm.CheckStore()
	if !status.Usable {
		t.Fatalf("CheckStore() fault = %q, want usable store", status.Fault)
	}
	if status.Fault != "" {
		t.Errorf("CheckStore() fault = %q, want empty", status.Fault)
	}

	// The round-trip must not leave its check entry behind.
	if _, err := keyring.Get(cm.service, storeCheckKey); err == nil {
		t.Error("CheckStore() left its check entry in the store")
	}
}

func TestDeleteToken(t *testing.T) {
	cleanup := SetupTestKeyring(t)
	defer cleanup()

	cm := NewTestCredentialManager(t)

	if err := cm.StoreToken("sd-delete-me-token-1234"); err != nil {
		t.Fatalf("StoreToken() error = %v", err)
	}
	if err := cm.DeleteToken(); err != nil {
		t.Fatalf("DeleteToken() error = %v", err)
	}
	if cm.HasToken() {
		t.Error("HasToken() = true after delete")
	}

	// Deleting again is not an error
	if err := cm.DeleteToken(); err != nil {
		t.Errorf("DeleteToken() on empty store error = %v", err)
	}
}
