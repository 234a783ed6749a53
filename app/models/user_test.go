package models

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPublicProfileOmitsCredentials(t *testing.T) {
	user := User{
		ID:        primitive.NewObjectID(),
		FirstName: "Akshay",
		LastName:  "Saini",
		EmailID:   "akshay@example.com",
		Password:  "$2a$10$somehash",
		Skills:    []string{"go", "mongodb"},
		Bio:       "Building things",
	}

	profile := user.PublicProfile()
	data, err := json.Marshal(profile)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "akshay@example.com")
	assert.NotContains(t, string(data), "somehash")
	assert.Contains(t, string(data), "Akshay")
}

func TestUserPasswordNeverSerialized(t *testing.T) {
	user := User{
		FirstName: "Akshay",
		EmailID:   "akshay@example.com",
		Password:  "$2a$10$somehash",
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "somehash")
}

func TestRegisterRequestValidation(t *testing.T) {
	validate := validator.New()

	valid := RegisterRequest{
		FirstName: "Akshay",
		EmailID:   "akshay@example.com",
		Password:  "Str0ng@Pass",
		Age:       28,
		Gender:    "male",
		Skills:    []string{"go", "react"},
	}
	assert.NoError(t, validate.Struct(&valid))

	cases := []struct {
		name   string
		mutate func(r *RegisterRequest)
	}{
		{"missing first name", func(r *RegisterRequest) { r.FirstName = "" }},
		{"short first name", func(r *RegisterRequest) { r.FirstName = "A" }},
		{"bad email", func(r *RegisterRequest) { r.EmailID = "not-an-email" }},
		{"short password", func(r *RegisterRequest) { r.Password = "abc" }},
		{"underage", func(r *RegisterRequest) { r.Age = 17 }},
		{"unknown gender", func(r *RegisterRequest) { r.Gender = "robot" }},
		{"too many skills", func(r *RegisterRequest) {
			r.Skills = make([]string, 11)
			for i := range r.Skills {
				r.Skills[i] = "skill"
			}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			assert.Error(t, validate.Struct(&req))
		})
	}
}

func TestUpdateProfileRequestAllowsPartialPayload(t *testing.T) {
	validate := validator.New()

	assert.NoError(t, validate.Struct(&UpdateProfileRequest{}))
	assert.NoError(t, validate.Struct(&UpdateProfileRequest{Bio: "Hello"}))
	assert.Error(t, validate.Struct(&UpdateProfileRequest{Age: 12}))
	assert.Error(t, validate.Struct(&UpdateProfileRequest{PhotoURL: "ftp://nope"}))
}
