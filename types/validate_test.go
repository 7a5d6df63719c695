package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=10"`
	Email string `json:"email" validate:"required,email"`
	Level int    `json:"level" validate:"gte=1,lte=5"`
	Kind  string `json:"kind" validate:"required,oneof=HOTEL AGENCY GUIDE"`
}

func TestValidate(t *testing.T) {
	valid := sampleRequest{Name: "Shangrila", Email: "x@example.com", Level: 3, Kind: "HOTEL"}

	t.Run("valid struct returns empty string", func(t *testing.T) {
		assert.Equal(t, "", Validate(valid))
	})

	t.Run("required", func(t *testing.T) {
		r := valid
		r.Name = ""
		assert.Equal(t, "name is required", Validate(r))
	})

	t.Run("email", func(t *testing.T) {
		r := valid
		r.Email = "not-an-email"
		assert.Equal(t, "email must be a valid email address", Validate(r))
	})

	t.Run("min", func(t *testing.T) {
		r := valid
		r.Name = "x"
		assert.Equal(t, "name must be at least 2 characters", Validate(r))
	})

	t.Run("max", func(t *testing.T) {
		r := valid
		r.Name = "a very long listing name"
		assert.Equal(t, "name must be at most 10 characters", Validate(r))
	})

	t.Run("oneof", func(t *testing.T) {
		r := valid
		r.Kind = "MOTEL"
		assert.Equal(t, "kind must be one of: HOTEL AGENCY GUIDE", Validate(r))
	})

	t.Run("gte", func(t *testing.T) {
		r := valid
		r.Level = 0
		assert.Equal(t, "level must be at least 1", Validate(r))
	})

	t.Run("lte", func(t *testing.T) {
		r := valid
		r.Level = 9
		assert.Equal(t, "level must be at most 5", Validate(r))
	})
}
