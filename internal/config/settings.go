package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/waozixyz/clok/pkg/errors"
)

// AppName names the config directory, the config file and the window.
const AppName = "clok"

const (
	DefaultWidth  = 400
	DefaultHeight = 400
	DefaultTheme  = "default"
	DefaultHz     = 10
)

// SystemThemeRoot is searched for themes unless user themes are selected.
var SystemThemeRoot = "/usr/share/" + AppName

// Settings are the values the clock starts with. Width, Height, Theme and
// Hz are persisted; the two flags only come from the command line.
type Settings struct {
	Width       int    `validate:"gt=0"`
	Height      int    `validate:"gt=0"`
	Theme       string `validate:"required,theme_name"`
	Hz          int    `validate:"gt=0,lte=1000"`
	UserThemes  bool
	HideSeconds bool
}

// Defaults returns the first-run settings.
func Defaults() Settings {
	return Settings{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Theme:  DefaultTheme,
		Hz:     DefaultHz,
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeNamePattern = regexp.MustCompile(`^[^/\\\x00]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// A theme name is one directory below <root>/themes.
		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			if name == "." || name == ".." || strings.TrimSpace(name) == "" {
				return false
			}
			return themeNamePattern.MatchString(name)
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks ranges. The first failing field is reported.
func (s Settings) Validate() error {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewValidationError("", err.Error(), err)
	}
	fe := verrs[0]
	return apperrors.NewValidationError(strings.ToLower(fe.Field()), describe(fe), err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("must be greater than %s, got %v", fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("must be at most %s, got %v", fe.Param(), fe.Value())
	case "required":
		return "must not be empty"
	case "theme_name":
		return fmt.Sprintf("%q is not a theme directory name", fe.Value())
	}
	return fmt.Sprintf("failed %s check", fe.Tag())
}

// ThemeRoot returns the directory searched for themes/<name>.
func (s Settings) ThemeRoot(configDir string) string {
	if s.UserThemes {
		return configDir
	}
	return SystemThemeRoot
}
