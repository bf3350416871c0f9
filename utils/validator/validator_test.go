package validatorx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Name         string `json:"name" label:"Name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" label:"Password" validate:"required,min=6"`
	PasswordConf string `json:"passwordConf" label:"Password Confirm" validate:"eqfield=Password"`
}

func TestValidateStruct(t *testing.T) {
	Init()

	t.Run("valid", func(t *testing.T) {
		err := ValidateStruct(signupForm{Name: "Jane", Email: "jane@example.com", Password: "secret", PasswordConf: "secret"})
		assert.NoError(t, err)
	})

	t.Run("labels and json names in messages", func(t *testing.T) {
		err := ValidateStruct(signupForm{Email: "nope", Password: "secret", PasswordConf: "other"})
		require.Error(t, err)

		msgs := Messages(err)
		assert.Equal(t, []string{
			"Name is a required field",
			"email must be a valid email address",
			"Password Confirm must be equal to Password",
		}, msgs)
		assert.Equal(t, "Name is a required field || email must be a valid email address || Password Confirm must be equal to Password", Join(err))
	})
}

func TestMessages(t *testing.T) {
	assert.Nil(t, Messages(nil))
	assert.Equal(t, []string{"boom"}, Messages(errors.New("boom")))
	assert.Equal(t, "", Join(nil))
}
