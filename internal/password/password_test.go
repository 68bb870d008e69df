package password

import "testing"

func TestHashAndVerify_Success(t *testing.T) {
	t.Parallel()

	hashed, err := Hash("secret123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := Verify("secret123", hashed)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatal("expected correct password to verify")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	hashed, err := Hash("secret123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := Verify("wrongpassword", hashed)
	if err != nil {
		t.Fatalf("expected clean mismatch, got error: %v", err)
	}
	if ok {
		t.Fatal("expected wrong password to fail verification")
	}
}

func TestHash_Salted(t *testing.T) {
	t.Parallel()

	first, err := Hash("secret123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	second, err := Hash("secret123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if first == second {
		t.Fatal("hashing the same password twice must produce different salts")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	ok, err := Verify("secret123", "not-a-bcrypt-hash")
	if err == nil {
		t.Fatal("expected error for malformed stored hash, got nil")
	}
	if ok {
		t.Fatal("malformed hash must not verify")
	}
}
