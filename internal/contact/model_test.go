package contact

import (
	"errors"
	"testing"
)

func TestFromFields_Valid(t *testing.T) {
	sub, err := FromFields(map[string]string{
		"first_name":   "Ada",
		"last_name":    "Lovelace",
		"email":        "ada@example.com",
		"company":      "Analytical Engines Ltd",
		"phone_number": "+441234567890",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sub.Email != "ada@example.com" {
		t.Errorf("unexpected email: %s", sub.Email)
	}
	if sub.Company != "Analytical Engines Ltd" {
		t.Errorf("unexpected company: %s", sub.Company)
	}
	if sub.JobTitle != "" || sub.Message != "" {
		t.Errorf("absent optional fields should stay empty: %+v", sub)
	}
	if sub.FullName() != "Ada Lovelace" {
		t.Errorf("unexpected full name: %s", sub.FullName())
	}
}

func TestFromFields_AccumulatesAllMissing(t *testing.T) {
	_, err := FromFields(map[string]string{
		"first_name": "Ada",
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	want := []string{"last_name", "email"}
	if len(vErr.Missing) != len(want) {
		t.Fatalf("expected %v missing, got %v", want, vErr.Missing)
	}
	for i, name := range want {
		if vErr.Missing[i] != name {
			t.Fatalf("expected %v missing, got %v", want, vErr.Missing)
		}
	}
	if vErr.Error() != "missing required fields: last_name, email" {
		t.Fatalf("unexpected message: %s", vErr.Error())
	}
}

func TestFromFields_EmptyStringFails(t *testing.T) {
	_, err := FromFields(map[string]string{
		"first_name": "Ada",
		"last_name":  "",
		"email":      "ada@example.com",
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(vErr.Missing) != 1 || vErr.Missing[0] != "last_name" {
		t.Fatalf("expected only last_name missing, got %v", vErr.Missing)
	}
}

func TestFromFields_NoTrimming(t *testing.T) {
	// Whitespace-only values count as present and are stored verbatim.
	sub, err := FromFields(map[string]string{
		"first_name": " ",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
	})
	if err != nil {
		t.Fatalf("whitespace-only value should pass validation, got %v", err)
	}
	if sub.FirstName != " " {
		t.Fatalf("value should be stored verbatim, got %q", sub.FirstName)
	}
}
