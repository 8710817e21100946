package utils

import (
	"encoding/json"
	"errors"
	"testing"
)

type signupForm struct {
	Name                 string `json:"name" validate:"required,max=10"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"eqfield=Password"`
}

type filterForm struct {
	Status string `query:"status" validate:"omitempty,oneof=pending in_progress done"`
	Due    string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

func TestGetValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     any
		wantField []string
	}{
		{"valid", &signupForm{Name: "Ana", Email: "ana@example.com", Password: "secret1", PasswordConfirmation: "secret1"}, nil},
		{"missing fields", &signupForm{}, []string{"name", "email", "password"}},
		{"bad email and long name", &signupForm{Name: "abcdefghijkl", Email: "nope", Password: "secret1", PasswordConfirmation: "secret1"}, []string{"name", "email"}},
		{"confirmation mismatch", &signupForm{Name: "Ana", Email: "ana@example.com", Password: "secret1", PasswordConfirmation: "other"}, []string{"password"}},
		{"query tag and date", &filterForm{Status: "archived", Due: "31/12/2025"}, []string{"status", "due_date"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if len(tt.wantField) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}

			fields := GetValidationErrors(err)
			if len(fields) != len(tt.wantField) {
				t.Errorf("got fields %v, want %v", fields, tt.wantField)
			}
			for _, f := range tt.wantField {
				if len(fields[f]) == 0 {
					t.Errorf("missing messages for %q in %v", f, fields)
				}
			}
		})
	}
}

func TestGetValidationErrorsNonValidator(t *testing.T) {
	fields := GetValidationErrors(errors.New("boom"))
	if fields["_"][0] != "boom" {
		t.Errorf("got %v", fields)
	}
}

func TestValidationMessageText(t *testing.T) {
	err := ValidateStruct(&signupForm{Email: "ana@example.com", Password: "secret1", PasswordConfirmation: "secret1"})
	fields := GetValidationErrors(err)
	if got := fields["name"][0]; got != "The name field is required." {
		t.Errorf("message = %q", got)
	}
}

func TestGetDecodeErrors(t *testing.T) {
	type taskForm struct {
		Title   *string `json:"title"`
		DueDate *string `json:"due_date"`
		Done    bool    `json:"done"`
	}

	tests := []struct {
		name    string
		body    string
		target  any
		field   string
		message string
	}{
		{"number for string", `{"name":123}`, &signupForm{}, "name", "The name must be a string."},
		{"number for password", `{"password":12345678}`, &signupForm{}, "password", "The password must be a string."},
		{"bool for pointer string", `{"title":true}`, &taskForm{}, "title", "The title must be a string."},
		{"snake case label", `{"due_date":20251231}`, &taskForm{}, "due_date", "The due date must be a string."},
		{"string for bool", `{"done":"yes"}`, &taskForm{}, "done", "The done field must be true or false."},
		{"not an object", `[1,2]`, &signupForm{}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.body), tt.target)
			if err == nil {
				t.Fatal("expected decode error")
			}

			fields, ok := GetDecodeErrors(err)
			if tt.field == "" {
				if ok {
					t.Errorf("got fields %v, want none", fields)
				}
				return
			}
			if !ok {
				t.Fatalf("no field errors for %v", err)
			}
			if got := fields[tt.field]; len(got) != 1 || got[0] != tt.message {
				t.Errorf("fields = %v, want %q under %q", fields, tt.message, tt.field)
			}
		})
	}

	if _, ok := GetDecodeErrors(errors.New("unexpected end of JSON input")); ok {
		t.Error("plain errors must not map to fields")
	}
}
