package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// readableFileTag validates paths such as templates.report_template.
const readableFileTag = "readable_file"

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("enTranslations.RegisterDefaultTranslations() > %w", err)
	}

	// Report keys the way they are written in config.yml.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation(readableFileTag, isReadableFile); err != nil {
		return nil, nil, fmt.Errorf("validate.RegisterValidation(%s) > %w", readableFileTag, err)
	}
	if err := validate.RegisterTranslation(readableFileTag, trans, func(ut ut.Translator) error {
		return ut.Add(readableFileTag, "{0} must be a readable file, got {1}", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(readableFileTag, configKey(fe), fmt.Sprintf("%q", fe.Value()))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("validate.RegisterTranslation(%s) > %w", readableFileTag, err)
	}

	return validate, trans, nil
}

// configKey returns the dotted config key of a field, e.g. templates.report_template.
func configKey(fe validator.FieldError) string {
	_, key, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return key
}

func isReadableFile(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0o400 != 0
}
