package hash

import "testing"

func TestHashAndCheck(t *testing.T) {
	h, err := HashPassword("Sup3rSecret!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h == "Sup3rSecret!" {
		t.Fatal("hash must not equal the plain password")
	}
	if !Check(h, "Sup3rSecret!") {
		t.Fatal("Check should accept the original password")
	}
	if Check(h, "wrong-password") {
		t.Fatal("Check should reject a wrong password")
	}
}
