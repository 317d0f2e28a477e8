package journal

import (
	e "errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/akeil/journal/internal/errors"
)

var validate = func() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	must(v.RegisterValidation("halfstep", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Mod(f, LineWidthStep) == 0
	}))
	must(v.RegisterValidation("pattern", func(fl validator.FieldLevel) bool {
		p, ok := fl.Field().Interface().(Pattern)
		return ok && p.Valid()
	}))
	must(v.RegisterValidation("font", func(fl validator.FieldLevel) bool {
		f, ok := fl.Field().Interface().(Font)
		return ok && f.Valid()
	}))

	return v
}()

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// validateStruct checks all tagged fields of s.
func validateStruct(s interface{}) error {
	return convert(validate.Struct(s))
}

// validateVar checks a single value against the given tags.
// The name is used in the error message.
func validateVar(name string, v interface{}, tags string) error {
	err := validate.Var(v, tags)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if e.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return errors.NewValidationError("%s %v", name, friendly(fieldErrs[0]))
	}
	return err
}

func convert(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !e.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		msgs[i] = fe.Field() + " " + friendly(fe)
	}
	return errors.NewValidationError("%s", strings.Join(msgs, "; "))
}

func friendly(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "halfstep":
		return fmt.Sprintf("must be a multiple of %v", LineWidthStep)
	case "pattern":
		return fmt.Sprintf("must be one of %v", Patterns)
	case "font":
		return fmt.Sprintf("must be one of %q", Fonts)
	default:
		return "is invalid"
	}
}
