package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/conneroisu/axname/internal/config"
)

// OutputFlags are shared by the commands that print results.
type OutputFlags struct {
	Format string
	Quiet  bool
}

// AddOutputFlags adds --output and --quiet to cmd. --output is bound to
// inspect.format.
func AddOutputFlags(cmd *cobra.Command) *OutputFlags {
	flags := &OutputFlags{}
	cmd.Flags().StringVarP(&flags.Format, "output", "o", "table", "Output format (table|json|yaml)")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Print nothing; only the exit status reports the result")

	AddFlagValidation(cmd.Flags(), "output", func(format string) error {
		return ValidateFormatWithSuggestion(format, config.OutputFormats)
	})

	bindings := configBindings[cmd.Name()]
	if bindings == nil {
		bindings = map[string]string{}
		configBindings[cmd.Name()] = bindings
	}
	bindings["output"] = "inspect.format"

	return flags
}

// ValidateFormatWithSuggestion accepts one of allowed, case-insensitively,
// and otherwise suggests the closest allowed value.
func ValidateFormatWithSuggestion(value string, allowed []string) error {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}

	best, bestDistance := "", len(value)+1
	for _, a := range allowed {
		if d := editDistance(strings.ToLower(value), a); d < bestDistance {
			best, bestDistance = a, d
		}
	}

	msg := fmt.Sprintf("invalid value %q, must be one of: %s", value, strings.Join(allowed, ", "))
	if best != "" && bestDistance <= 2 {
		msg += fmt.Sprintf(" (did you mean %q?)", best)
	}
	return fmt.Errorf("%s", msg)
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur := make([]int, len(rb)+1)
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev = cur
	}
	return prev[len(rb)]
}

// AddFlagValidation adds validation for a specific flag
func AddFlagValidation(flags *pflag.FlagSet, flagName string, validator func(string) error) {
	flag := flags.Lookup(flagName)
	if flag == nil {
		return
	}

	flag.Value = &validatingValue{
		Value:     flag.Value,
		validator: validator,
	}
}

type validatingValue struct {
	pflag.Value
	validator func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}
	return v.Value.Set(val)
}
