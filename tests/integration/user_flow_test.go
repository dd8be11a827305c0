package integration

import (
	"net/http"
	"testing"
)

func TestUserSignInFlow(t *testing.T) {
	app := setupApp(t)

	// First sign-in creates the user.
	rec := app.request("POST", "/api/v1/users", `{"username":"alice"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for new user, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["message"] != "User created" {
		t.Errorf("unexpected message: %v", result["message"])
	}
	user := result["user"].(map[string]interface{})
	firstID := user["id"].(string)
	if firstID == "" {
		t.Fatal("expected non-empty user id")
	}

	// Second sign-in with the same username returns the same user.
	rec = app.request("POST", "/api/v1/users", `{"username":"alice"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for existing user, got %d: %s", rec.Code, rec.Body.String())
	}
	result = parseJSON(t, rec)
	if result["message"] != "User already exists & logged in" {
		t.Errorf("unexpected message: %v", result["message"])
	}
	user = result["user"].(map[string]interface{})
	if user["id"].(string) != firstID {
		t.Errorf("expected same user id %s, got %v", firstID, user["id"])
	}

	// Exactly one row exists regardless of how many sign-ins happened.
	var count int64
	app.DB.Table("users").Where("username = ?", "alice").Count(&count)
	if count != 1 {
		t.Errorf("expected 1 user row, got %d", count)
	}
}

func TestUserSignInValidation(t *testing.T) {
	app := setupApp(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing_username", `{}`},
		{"empty_username", `{"username":""}`},
		{"username_with_slash", `{"username":"a/b"}`},
		{"username_with_space", `{"username":"a b"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := app.request("POST", "/api/v1/users", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}
