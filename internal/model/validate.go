package model

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

var validate = validator.New()

var flagNames = map[string]string{
	"Lang":      "--lang",
	"Locale":    "--locale",
	"Length":    "--length",
	"Cap":       "--cap",
	"Source":    "--source",
	"LookupURL": "--lookup-url",
}

// ValidateConfig checks a merged config and names the offending flag.
func ValidateConfig(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		if cfg.Locale != "" {
			if _, perr := language.Parse(cfg.Locale); perr != nil {
				return errors.Newf("--locale %q is not a BCP 47 language tag", cfg.Locale)
			}
		}
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := flagNames[fe.Field()]
		if name == "" {
			name = fe.Field()
		}
		switch fe.Tag() {
		case "gte":
			msgs = append(msgs, name+" must be >= "+fe.Param())
		case "oneof":
			msgs = append(msgs, name+" must be one of: "+strings.ReplaceAll(fe.Param(), " ", ", "))
		case "required":
			msgs = append(msgs, name+" must not be empty")
		default:
			msgs = append(msgs, name+" is invalid")
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
