package domain

import (
	"errors"
	"testing"
)

func TestParseUserType(t *testing.T) {
	for _, s := range []string{"CLIENT", "RESTAURANT_OWNER"} {
		got, err := ParseUserType(s)
		if err != nil || string(got) != s {
			t.Fatalf("ParseUserType(%q) = %q, %v", s, got, err)
		}
	}
	for _, s := range []string{"", "client", "ADMIN"} {
		if _, err := ParseUserType(s); !errors.Is(err, ErrInvalidUserType) {
			t.Fatalf("ParseUserType(%q): expected ErrInvalidUserType, got %v", s, err)
		}
	}
}

func TestUserClone(t *testing.T) {
	u := &User{ID: "1", Name: "Jane", Address: &Address{City: "SP"}}
	c := u.Clone()
	c.Name = "X"
	c.Address.City = "RJ"

	if u.Name != "Jane" || u.Address.City != "SP" {
		t.Fatalf("clone shares state with original: %+v", u)
	}
	if (*User)(nil).Clone() != nil {
		t.Fatal("nil clone must be nil")
	}
	if (&User{}).Clone().Address != nil {
		t.Fatal("absent address must stay absent")
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Violations: []FieldViolation{
		{Field: "name", Message: "is required"},
		{Field: "address.zipCode", Message: "is required"},
	}}
	want := "Invalid fields: name - is required; address.zipCode - is required"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}
