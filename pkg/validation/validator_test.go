package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email      string `json:"email" validate:"required,email"`
	NIK        string `json:"nik" validate:"required,nik"`
	CardNumber string `json:"cardNumber" validate:"required,cardnum"`
	CardCVV    string `json:"cardCvv" validate:"required,cvv"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	Register(v)
	return v
}

func TestCustomRules(t *testing.T) {
	v := newValidator()
	ok := sample{Email: "a@b.co", NIK: "3201234567890001", CardNumber: "4111 1111 1111 1111", CardCVV: "123"}
	assert.NoError(t, v.Struct(ok))

	tests := []struct {
		name  string
		mut   func(*sample)
		field string
		msg   string
	}{
		{"nik too short", func(s *sample) { s.NIK = "320123" }, "nik", "must be exactly 16 digits"},
		{"nik letters", func(s *sample) { s.NIK = "32012345678900AB" }, "nik", "must be exactly 16 digits"},
		{"card too short", func(s *sample) { s.CardNumber = "411111111111" }, "cardNumber", "must be 13-19 digits"},
		{"card too long", func(s *sample) { s.CardNumber = "41111111111111111111" }, "cardNumber", "must be 13-19 digits"},
		{"cvv five digits", func(s *sample) { s.CardCVV = "12345" }, "cardCvv", "must be 3-4 digits"},
		{"email", func(s *sample) { s.Email = "nope" }, "email", "must be a valid email"},
		{"missing", func(s *sample) { s.NIK = "" }, "nik", "is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ok
			tt.mut(&s)
			details := ToDetails(v.Struct(s))
			assert.Equal(t, tt.msg, details[tt.field])
		})
	}
}

func TestCVVAcceptsFourDigits(t *testing.T) {
	v := newValidator()
	s := sample{Email: "a@b.co", NIK: "3201234567890001", CardNumber: "4111111111111", CardCVV: "1234"}
	assert.NoError(t, v.Struct(s))
}

func TestToDetails_InvalidJSON(t *testing.T) {
	var dst map[string]any
	err := json.Unmarshal([]byte("{bad"), &dst)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(errors.New("x")))
}
