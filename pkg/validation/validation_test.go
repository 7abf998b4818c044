package validation

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"user@example.com", "a.b+c@sub.domain.io"}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", email, err)
		}
	}

	invalid := []string{"", "not-an-email", "@example.com", "user@"}
	for _, email := range invalid {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("ValidateEmail(%q) = nil, want error", email)
		}
	}
}

func TestValidateUsername(t *testing.T) {
	if err := ValidateUsername("alice_01"); err != nil {
		t.Errorf("ValidateUsername() = %v, want nil", err)
	}
	if err := ValidateUsername("ab"); err == nil {
		t.Error("ValidateUsername() should reject usernames shorter than 3")
	}
	if err := ValidateUsername("bad name!"); err == nil {
		t.Error("ValidateUsername() should reject invalid characters")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("secret1"); err != nil {
		t.Errorf("ValidatePassword() = %v, want nil", err)
	}
	if err := ValidatePassword("short"); err == nil {
		t.Error("ValidatePassword() should reject passwords shorter than 6")
	}
}

func TestValidatePasswordConfirmation(t *testing.T) {
	if err := ValidatePasswordConfirmation("secret1", "secret1"); err != nil {
		t.Errorf("ValidatePasswordConfirmation() = %v, want nil", err)
	}
	err := ValidatePasswordConfirmation("secret1", "secret2")
	if err == nil {
		t.Fatal("ValidatePasswordConfirmation() should reject mismatched passwords")
	}
	if err.Error() != "Passwords do not match" {
		t.Errorf("error = %q, want %q", err.Error(), "Passwords do not match")
	}
}

func TestValidateRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		if err := ValidateRating(rating); err != nil {
			t.Errorf("ValidateRating(%d) = %v, want nil", rating, err)
		}
	}
	for _, rating := range []int{0, 6, -1} {
		if err := ValidateRating(rating); err == nil {
			t.Errorf("ValidateRating(%d) = nil, want error", rating)
		}
	}
}

func TestValidateComment(t *testing.T) {
	if err := ValidateComment("nice video"); err != nil {
		t.Errorf("ValidateComment() = %v, want nil", err)
	}
	if err := ValidateComment("   "); err == nil {
		t.Error("ValidateComment() should reject blank comments")
	}
}

func TestValidateVideoTitle(t *testing.T) {
	if err := ValidateVideoTitle("My first upload"); err != nil {
		t.Errorf("ValidateVideoTitle() = %v, want nil", err)
	}
	if err := ValidateVideoTitle(""); err == nil {
		t.Error("ValidateVideoTitle() should reject empty titles")
	}
}
