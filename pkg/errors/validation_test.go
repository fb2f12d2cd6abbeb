package errors

import (
	"strings"
	"testing"
)

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{"valid ethereum address", "0x742d35Cc6634C0532925a3b844Bc454e4438f44e", false},
		{"valid bitcoin address", "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", false},
		{"empty", "", true},
		{"path traversal", "0xabc/../etc", true},
		{"path separator", "0xabc/def", true},
		{"backslash", "0xabc\\def", true},
		{"control character", "0xabc\x01def", true},
		{"null byte", "0xabc\x00def", true},
		{"too long", strings.Repeat("a", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAddress(tt.addr)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAddress(%q) error = %v, wantErr %v", tt.addr, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidAddress {
				t.Errorf("GetCode() = %v, want %v", GetCode(err), ErrCodeInvalidAddress)
			}
		})
	}
}

func TestValidateChain(t *testing.T) {
	tests := []struct {
		name    string
		chain   string
		wantErr bool
	}{
		{"ethereum", "ethereum", false},
		{"bitcoin", "bitcoin", false},
		{"slug with digits", "polygon-pos2", false},
		{"empty", "", true},
		{"uppercase", "Ethereum", true},
		{"leading digit", "0chain", true},
		{"path characters", "eth/main", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChain(tt.chain)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateChain(%q) error = %v, wantErr %v", tt.chain, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	if err := ValidateURL("https://api.example.com"); err != nil {
		t.Errorf("ValidateURL() error = %v, want nil", err)
	}
	if err := ValidateURL("http://localhost:8080"); err != nil {
		t.Errorf("ValidateURL() error = %v, want nil", err)
	}
	if err := ValidateURL(""); err == nil {
		t.Error("ValidateURL(\"\") = nil, want error")
	}
	if err := ValidateURL("ftp://example.com"); err == nil {
		t.Error("ValidateURL(ftp) = nil, want error")
	}
}
