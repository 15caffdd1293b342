package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validations
	registerCustomValidations()
}

func registerCustomValidations() {
	// Photo category validation
	validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return oneOf(fl.Field().String(), "travel", "moments", "street")
	})

	// Orientation validation
	validate.RegisterValidation("orientation", func(fl validator.FieldLevel) bool {
		return oneOf(fl.Field().String(), "landscape", "portrait", "")
	})

	// Wall environment validation
	validate.RegisterValidation("environment", func(fl validator.FieldLevel) bool {
		return oneOf(fl.Field().String(), "home", "office", "business")
	})

	// Layout template validation
	validate.RegisterValidation("layout", func(fl validator.FieldLevel) bool {
		return oneOf(fl.Field().String(), "single", "gallery-6", "collage-5", "collage-7", "collage-9")
	})

	// Frame style validation
	validate.RegisterValidation("frame_style", func(fl validator.FieldLevel) bool {
		return oneOf(fl.Field().String(), "thin-black", "thin-white", "natural-wood")
	})

	// Mat option validation
	validate.RegisterValidation("mat_option", func(fl validator.FieldLevel) bool {
		return oneOf(fl.Field().String(), "none", "white")
	})
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gt":
			errors[field] = "Value must be greater than " + err.Param()
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "url":
			errors[field] = "Invalid URL format"
		case "category":
			errors[field] = "Invalid category. Must be: travel, moments, or street"
		case "orientation":
			errors[field] = "Invalid orientation. Must be: landscape or portrait"
		case "environment":
			errors[field] = "Invalid environment. Must be: home, office, or business"
		case "layout":
			errors[field] = "Invalid layout. Must be: single, gallery-6, collage-5, collage-7, or collage-9"
		case "frame_style":
			errors[field] = "Invalid frame style. Must be: thin-black, thin-white, or natural-wood"
		case "mat_option":
			errors[field] = "Invalid mat option. Must be: none or white"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
