// Package bind decodes and validates JSON request bodies
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"unicode"

	perr "ingestlab/internal/platform/errors"
	"ingestlab/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator pairs the shared validator with its english translator
type Validator struct {
	V     *validator.Validate
	Trans ut.Translator
}

var (
	once   sync.Once
	shared *Validator
)

// Get returns the process wide validator, built on first use
func Get() *Validator {
	once.Do(func() { shared = build() })
	return shared
}

func build() *Validator {
	loc := en.New()
	trans, _ := ut.New(loc, loc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	_ = v.RegisterValidation("filename", isFileName)
	_ = v.RegisterValidation("mimetype", isMIMEType)

	for tag, text := range map[string]string{
		"min":      "{0} must be at least {1}",
		"max":      "{0} must be at most {1}",
		"oneof":    "{0} must be one of [{1}]",
		"filename": "{0} must be a file name without control characters",
		"mimetype": "{0} must look like type/subtype",
	} {
		addTranslation(v, trans, tag, text)
	}
	return &Validator{V: v, Trans: trans}
}

// jsonName reports fields by their wire name
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "", "-":
		return f.Name
	}
	return name
}

func addTranslation(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

func isFileName(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if strings.TrimSpace(s) == "" {
		return false
	}
	return strings.IndexFunc(s, unicode.IsControl) < 0
}

func isMIMEType(fl validator.FieldLevel) bool {
	mt, _, err := mime.ParseMediaType(fl.Field().String())
	if err != nil {
		return false
	}
	typ, sub, ok := strings.Cut(mt, "/")
	return ok && typ != "" && sub != ""
}

// Validate runs struct validation and maps the first failure to a coded error with its field
func Validate(v any) error {
	err := Get().V.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		logger.Get().Error().Err(err).Msg("validator rejected input type")
		return perr.Newf(perr.ErrorCodeValidation, "validation error")
	}
	fe := verrs[0]
	return perr.WithField(perr.New(perr.ErrorCodeValidation, fe.Translate(Get().Trans)), fe.Field())
}

// JSONOptions controls body decoding
type JSONOptions struct {
	MaxBytes        int64 // 0 means 1MB
	DisallowUnknown bool
	AllowEmptyBody  bool
}

var defaults = JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}

// ParseJSON decodes one JSON value into T and validates it
// an empty body yields the zero T for bodiless methods or when AllowEmptyBody is set
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var out T
	o := defaults
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = defaults.MaxBytes
	}
	if r.Body == nil {
		return out, emptyBody(r, o)
	}
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(io.LimitReader(r.Body, o.MaxBytes))
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return out, emptyBody(r, o)
		}
		return out, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return out, perr.JSONErrf("unexpected trailing data")
	}
	if err := Validate(out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func emptyBody(r *http.Request, o JSONOptions) error {
	if o.AllowEmptyBody {
		return nil
	}
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodDelete, http.MethodOptions:
		return nil
	}
	return perr.JSONErrf("empty body")
}
