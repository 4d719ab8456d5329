package config

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError represents a configuration validation error with suggestions
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the result of configuration validation
type ValidationResult struct {
	Valid    bool
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings
func (vr *ValidationResult) HasWarnings() bool {
	return len(vr.Warnings) > 0
}

// String returns a formatted string of all validation issues
func (vr *ValidationResult) String() string {
	var builder strings.Builder

	if len(vr.Errors) > 0 {
		builder.WriteString("❌ Validation Errors:\n")
		for _, err := range vr.Errors {
			builder.WriteString(fmt.Sprintf("  • %s: %s\n", err.Field, err.Message))
			for _, suggestion := range err.Suggestions {
				builder.WriteString(fmt.Sprintf("    💡 %s\n", suggestion))
			}
		}
		builder.WriteString("\n")
	}

	if len(vr.Warnings) > 0 {
		builder.WriteString("⚠️  Validation Warnings:\n")
		for _, warning := range vr.Warnings {
			builder.WriteString(fmt.Sprintf("  • %s: %s\n", warning.Field, warning.Message))
			for _, suggestion := range warning.Suggestions {
				builder.WriteString(fmt.Sprintf("    💡 %s\n", suggestion))
			}
		}
	}

	return builder.String()
}

func (vr *ValidationResult) addError(field string, value interface{}, message string, suggestions ...string) {
	vr.Errors = append(vr.Errors, ValidationError{
		Field:       field,
		Value:       value,
		Message:     message,
		Suggestions: suggestions,
	})
}

func (vr *ValidationResult) addWarning(field string, value interface{}, message string, suggestions ...string) {
	vr.Warnings = append(vr.Warnings, ValidationError{
		Field:       field,
		Value:       value,
		Message:     message,
		Suggestions: suggestions,
	})
}

// ValidateConfigWithDetails performs comprehensive validation with detailed feedback
func ValidateConfigWithDetails(config *Config) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	validateInspectConfigDetails(&config.Inspect, result)
	validateAuditConfigDetails(&config.Audit, result)
	validateWatchConfigDetails(&config.Watch, result)
	validateLoggingConfigDetails(&config.Logging, result)

	result.Valid = !result.HasErrors()

	return result
}

func validateInspectConfigDetails(config *InspectConfig, result *ValidationResult) {
	if !oneOf(config.Format, OutputFormats) {
		result.addError("inspect.format", config.Format,
			fmt.Sprintf("unsupported output format %q", config.Format),
			"Use one of: "+strings.Join(OutputFormats, ", "),
		)
	}

	for _, role := range config.Roles {
		if strings.ContainsAny(role, " \t") {
			result.addError("inspect.roles", role,
				fmt.Sprintf("role %q contains whitespace", role),
				"List each role as a separate entry",
			)
		}
	}
}

func validateAuditConfigDetails(config *AuditConfig, result *ValidationResult) {
	if config.MaxViolations < 0 {
		result.addError("audit.max_violations", config.MaxViolations,
			"max_violations cannot be negative",
			"Use 0 for no limit",
		)
	}

	if config.WCAGLevel != "" && !oneOf(config.WCAGLevel, []string{"A", "AA", "AAA"}) {
		result.addError("audit.wcag_level", config.WCAGLevel,
			fmt.Sprintf("unknown WCAG level %q", config.WCAGLevel),
			"Use A, AA or AAA",
		)
	}

	if config.Severity != "" && !oneOf(config.Severity, []string{"error", "warning", "info"}) {
		result.addError("audit.severity", config.Severity,
			fmt.Sprintf("unknown severity %q", config.Severity),
			"Use error, warning or info",
		)
	}

	for _, rule := range config.Rules {
		for _, excluded := range config.ExcludeRules {
			if rule == excluded {
				result.addWarning("audit.rules", rule,
					fmt.Sprintf("rule %q is both selected and excluded", rule),
					"Remove it from one of the lists",
				)
			}
		}
	}
}

func validateWatchConfigDetails(config *WatchConfig, result *ValidationResult) {
	if len(config.Paths) == 0 {
		result.addError("watch.paths", config.Paths,
			"no watch paths configured",
			"Add at least one directory, for example \".\"",
		)
	}
	for _, path := range config.Paths {
		if err := validatePath(path); err != nil {
			result.addError("watch.paths", path,
				fmt.Sprintf("invalid watch path %q: %v", path, err),
				"Use a path inside the project",
			)
		}
	}

	if len(config.Extensions) == 0 {
		result.addError("watch.extensions", config.Extensions,
			"no file extensions configured",
			"Add .html to watch HTML files",
		)
	}
	for _, ext := range config.Extensions {
		if !strings.HasPrefix(ext, ".") {
			result.addWarning("watch.extensions", ext,
				fmt.Sprintf("extension %q does not start with a dot", ext),
				fmt.Sprintf("Did you mean %q?", "."+ext),
			)
		}
	}

	switch {
	case config.Debounce <= 0:
		result.addError("watch.debounce", config.Debounce,
			"debounce must be positive",
			"300ms works well for editors that save in several steps",
		)
	case config.Debounce > 10*time.Second:
		result.addWarning("watch.debounce", config.Debounce,
			"debounce above 10s delays every re-inspection",
		)
	}
}

func validateLoggingConfigDetails(config *LoggingConfig, result *ValidationResult) {
	if !oneOf(config.Level, LogLevels) {
		result.addError("logging.level", config.Level,
			fmt.Sprintf("unknown log level %q", config.Level),
			"Use one of: "+strings.Join(LogLevels, ", "),
		)
	}

	if !oneOf(config.Format, LogFormats) {
		result.addError("logging.format", config.Format,
			fmt.Sprintf("unknown log format %q", config.Format),
			"Use text or json",
		)
	}

	if config.Dir != "" {
		if err := validatePath(config.Dir); err != nil {
			result.addError("logging.dir", config.Dir, err.Error())
		}
	}
}
