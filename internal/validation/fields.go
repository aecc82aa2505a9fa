package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	contactRe = regexp.MustCompile(`^\d{10}$`)
	gstinRe   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	bankRe    = regexp.MustCompile(`^\d{9,18}$`)
	ifscRe    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	upiRe     = regexp.MustCompile(`^[a-zA-Z0-9.\-_]{2,256}@[a-zA-Z]{2,64}$`)
)

// Field names used in errors; they match the JSON names of model.User.
const (
	FieldName          = "name"
	FieldContactNumber = "contact_number"
	FieldGSTID         = "gst_id"
	FieldBankAccount   = "bank_account_number"
	FieldIFSC          = "ifsc"
	FieldUPIID         = "upi_id"
)

var messages = map[string]string{
	"contact":  "Contact number must be exactly 10 digits.",
	"gstin":    "Please enter a valid GST ID format.",
	"bankacct": "Please enter a valid bank account number.",
	"ifsc":     "Please enter a valid IFSC code.",
	"upi":      "Please enter a valid UPI ID (e.g., yourname@bank).",
	"required": "This field is required.",
}

// go-playground/validator/v10: shared instance with the marketplace field
// formats registered as custom tags.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	register := func(tag string, re *regexp.Regexp) {
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
	}
	register("contact", contactRe)
	register("gstin", gstinRe)
	register("bankacct", bankRe)
	register("ifsc", ifscRe)
	register("upi", upiRe)
	return v
}

// CheckField validates a single value against a tag such as "gstin".
// Empty values are not checked here; whether a field is required is a
// wizard-step decision.
func CheckField(field, tag, value string) *Error {
	if value == "" {
		return nil
	}
	if err := validate.Var(value, tag); err != nil {
		msg, ok := messages[tag]
		if !ok {
			msg = err.Error()
		}
		return malformed(field, msg)
	}
	return nil
}

// Required reports a missing value as MalformedField.
func Required(field, value string) *Error {
	if value == "" {
		return malformed(field, messages["required"])
	}
	return nil
}

// Struct validates s and converts validator failures into Errors keyed by
// JSON field name.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	out := make(Errors, 0, len(ves))
	for _, fe := range ves {
		msg, ok := messages[fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		out = append(out, malformed(fe.Field(), msg))
	}
	return out
}
