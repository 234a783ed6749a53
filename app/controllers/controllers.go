package controllers

import (
	"github.com/go-playground/validator/v10"
)

// validate is the shared request validator instance
var validate = validator.New()
