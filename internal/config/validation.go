package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	if len(c.Jobs) == 0 {
		errors = append(errors, ValidationError{
			Field:   "jobs",
			Message: "at least one job must be defined",
		})
	}
	for name, job := range c.Jobs {
		errors = append(errors, job.validate(fmt.Sprintf("jobs.%s", name))...)
	}

	errors = append(errors, validateExport("export", &c.Export)...)
	errors = append(errors, validateVerification("verification", &c.Verification)...)

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("unknown level %q (expected debug, info, warn, or error)", c.Logging.Level),
		})
	}
	switch c.Logging.Format {
	case "", "json", "text":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("unknown format %q (expected json or text)", c.Logging.Format),
		})
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (jc *JobConfig) validate(prefix string) ValidationErrors {
	var errors ValidationErrors

	if jc.Folder == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".folder",
			Message: "input folder is required",
		})
	}
	if jc.Output == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".output",
			Message: "output path is required",
		})
	}
	if len(jc.XMLFields) == 0 && len(jc.MetFields) == 0 {
		errors = append(errors, ValidationError{
			Field:   prefix,
			Message: "at least one of xml_fields or met_fields must be defined",
		})
	}

	for i, f := range jc.XMLFields {
		if f.Column == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("%s.xml_fields[%d].column", prefix, i),
				Message: "column name is required",
			})
		}
		if f.Path == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("%s.xml_fields[%d].path", prefix, i),
				Message: "path expression is required",
			})
		}
	}
	for i, f := range jc.MetFields {
		if f.Column == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("%s.met_fields[%d].column", prefix, i),
				Message: "column name is required",
			})
		}
		if f.Key == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("%s.met_fields[%d].key", prefix, i),
				Message: "key is required",
			})
		}
	}

	if jc.Export != nil {
		errors = append(errors, validateExport(prefix+".export", jc.Export)...)
	}
	if jc.Verification != nil {
		errors = append(errors, validateVerification(prefix+".verification", jc.Verification)...)
	}

	return errors
}

func validateExport(prefix string, ec *ExportConfig) ValidationErrors {
	var errors ValidationErrors

	switch ec.Format {
	case "", "xlsx", "csv":
	default:
		errors = append(errors, ValidationError{
			Field:   prefix + ".format",
			Message: fmt.Sprintf("unknown format %q (expected xlsx or csv)", ec.Format),
		})
	}

	return errors
}

func validateVerification(prefix string, vc *VerificationConfig) ValidationErrors {
	var errors ValidationErrors

	switch vc.Method {
	case "", "count", "skip":
	default:
		errors = append(errors, ValidationError{
			Field:   prefix + ".method",
			Message: fmt.Sprintf("unknown method %q (expected count or skip)", vc.Method),
		})
	}

	return errors
}
