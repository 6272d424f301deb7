package dto

import (
	"github.com/go-playground/validator/v10"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

var validate = validator.New()

// Validate runs the struct-tag validation rules of a bound request.
func Validate(v interface{}) error {
	return validate.Struct(v)
}
