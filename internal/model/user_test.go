package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUser_ValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"@あり", "a@b.com", true},
		{"@なし", "ab.com", false},
		{"空文字", "", false},
		{"@のみ", "@", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUser("a", tt.email)
			if got := u.ValidateEmail(); got != tt.want {
				t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestUser_ToMap(t *testing.T) {
	u := NewUser("n", "e")

	want := map[string]string{"name": "n", "email": "e"}
	if diff := cmp.Diff(want, u.ToMap()); diff != "" {
		t.Errorf("ToMap() mismatch (-want +got):\n%s", diff)
	}
}

func TestUser_ToMap_ReturnsIndependentMap(t *testing.T) {
	u := NewUser("n", "e")

	m := u.ToMap()
	m["name"] = "changed"

	if u.Name != "n" {
		t.Errorf("Name = %q, want %q", u.Name, "n")
	}
}

func TestGenerateToken_AlwaysReturnsLiteral(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := GenerateToken(); got != "token" {
			t.Errorf("GenerateToken() = %q, want %q", got, "token")
		}
	}
}

func TestSession_Validate(t *testing.T) {
	s := NewSession()

	if s.Validate("") {
		t.Error("Validate(\"\") = true, want false")
	}
	if !s.Validate("t") {
		t.Error("Validate(\"t\") = false, want true")
	}
	if !s.Validate("not-an-issued-token") {
		t.Error("Validate should accept any non-empty token")
	}
}

func TestNewSession_AssignsIdentifier(t *testing.T) {
	s1 := NewSession()
	s2 := NewSession()

	if s1.ID == "" {
		t.Fatal("expected non-empty session ID")
	}
	if s1.ID == s2.ID {
		t.Errorf("expected distinct session IDs, both were %q", s1.ID)
	}
	if s1.CreatedAt.IsZero() {
		t.Error("expected non-zero CreatedAt")
	}
}

func TestCreateSession_IgnoresUser(t *testing.T) {
	withUser := CreateSession(NewUser("a", "a@b.com"))
	withoutUser := CreateSession(nil)

	if withUser == nil || withoutUser == nil {
		t.Fatal("expected non-nil sessions")
	}
	if withUser.ID == "" || withoutUser.ID == "" {
		t.Error("expected sessions to carry an ID")
	}
	if withUser.ID == withoutUser.ID {
		t.Error("expected each call to return a distinct session")
	}
}

func TestConstants(t *testing.T) {
	if DefaultTimeout.Seconds() != 30 {
		t.Errorf("DefaultTimeout = %v, want 30s", DefaultTimeout)
	}
	if MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", MaxRetries)
	}
}
