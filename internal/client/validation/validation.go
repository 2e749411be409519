// Package validation implements the form checks the MyAuthApp screens run
// before calling the auth service: presence of name, email and password,
// a loose email format and a minimum password length.
//
// Every field of a form is checked; inside a field only the first failing
// rule is reported, so a blank email yields MissingEmail and never
// InvalidEmailFormat.
package validation

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest password the screens accept.
const MinPasswordLength = 6

// Field names a form input.
type Field string

const (
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// Code identifies a failed rule.
type Code string

const (
	MissingName        Code = "missing_name"
	MissingEmail       Code = "missing_email"
	InvalidEmailFormat Code = "invalid_email_format"
	MissingPassword    Code = "missing_password"
	PasswordTooShort   Code = "password_too_short"
)

var messages = map[Code]string{
	MissingName:        "Missing name field.",
	MissingEmail:       "Missing email field.",
	InvalidEmailFormat: "Invalid email format.",
	MissingPassword:    "Missing password field.",
	PasswordTooShort:   "Password must be at least 6 characters.",
}

// Message returns the text shown under the offending input.
func (c Code) Message() string {
	return messages[c]
}

// Errors maps each failing field to the rule it broke.
type Errors map[Field]Code

// Valid reports whether no rule failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Message returns the message for field, or "" when the field passed.
func (e Errors) Message(field Field) string {
	code, ok := e[field]
	if !ok {
		return ""
	}
	return code.Message()
}

// nonSpace is one character that is not whitespace in the ECMAScript sense,
// which also counts NBSP, BOM and the Unicode space separators; Go's \S
// only excludes ASCII whitespace.
const nonSpace = `[^\t\n\x0B\f\r \p{Zs}\x{2028}\x{2029}\x{FEFF}]`

var emailPattern = regexp.MustCompile(nonSpace + `+@` + nonSpace + `+\.` + nonSpace + `+`)

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

type loginForm struct {
	Email    string `validate:"notblank,looseemail"`
	Password string `validate:"notblank,min=6"`
}

type signupForm struct {
	Name     string `validate:"notblank"`
	Email    string `validate:"notblank,looseemail"`
	Password string `validate:"notblank,min=6"`
}

var fieldsByStruct = map[string]Field{
	"Name":     FieldName,
	"Email":    FieldEmail,
	"Password": FieldPassword,
}

var codesByTag = map[Field]map[string]Code{
	FieldName:     {"notblank": MissingName},
	FieldEmail:    {"notblank": MissingEmail, "looseemail": InvalidEmailFormat},
	FieldPassword: {"notblank": MissingPassword, "min": PasswordTooShort},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimFunc(fl.Field().String(), isSpace) != ""
	})
	mustRegister(v, "looseemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// ValidateLogin checks the login form.
func ValidateLogin(email, password string) Errors {
	return check(loginForm{Email: email, Password: password})
}

// ValidateSignup checks the signup form.
func ValidateSignup(name, email, password string) Errors {
	return check(signupForm{Name: name, Email: email, Password: password})
}

// CheckName returns the code for a bad name, or "" when it passes.
func CheckName(name string) Code {
	return single(validate.Var(name, "notblank"), FieldName)
}

// CheckEmail returns the code for a bad email, or "" when it passes.
func CheckEmail(email string) Code {
	return single(validate.Var(email, "notblank,looseemail"), FieldEmail)
}

// CheckPassword returns the code for a bad password, or "" when it passes.
func CheckPassword(password string) Code {
	return single(validate.Var(password, "notblank,min=6"), FieldPassword)
}

func check(form any) Errors {
	result := Errors{}

	err := validate.Struct(form)
	if err == nil {
		return result
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		panic(err)
	}
	for _, fe := range verrs {
		field := fieldsByStruct[fe.StructField()]
		result[field] = codesByTag[field][fe.Tag()]
	}
	return result
}

func single(err error, field Field) Code {
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		panic(err)
	}
	return codesByTag[field][verrs[0].Tag()]
}
