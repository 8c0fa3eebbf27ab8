package auth

import "testing"

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("secret", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken("secret", token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("expected username 'admin', got %q", claims.Username)
	}
	if claims.ID == "" {
		t.Error("expected a JTI to be set")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _ := GenerateToken("secret", "admin")

	if _, err := ValidateToken("other-secret", token); err == nil {
		t.Error("expected validation to fail with wrong secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("secret", "not.a.token"); err == nil {
		t.Error("expected validation to fail for malformed token")
	}
}

func TestTokensHaveUniqueIDs(t *testing.T) {
	t1, _ := GenerateToken("secret", "admin")
	t2, _ := GenerateToken("secret", "admin")

	c1, _ := ValidateToken("secret", t1)
	c2, _ := ValidateToken("secret", t2)
	if c1.ID == c2.ID {
		t.Error("expected distinct JTIs for separate tokens")
	}
}
