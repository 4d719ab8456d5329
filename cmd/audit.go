package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/axname/internal/accessibility"
	"github.com/conneroisu/axname/internal/logging"
)

var (
	auditFlags       *OutputFlags
	auditIncludeHTML bool
	auditListRules   bool
)

// auditCmd represents the audit command.
var auditCmd = &cobra.Command{
	Use:     "audit FILE...",
	Aliases: []string{"a"},
	Short:   "Check HTML documents against accessibility rules",
	Long: `Run accessibility rules over HTML documents. Rules are evaluated with the
same role, name and description computation as inspect and query, so a
missing name here is exactly what a screen reader would miss.

The command fails when a violation of severity error is reported.

Examples:
  # Audit every page below site/
  axname audit site/

  # Only WCAG level A rules, as JSON
  axname audit index.html --wcag-level A -o json

  # Skip a rule and show only errors
  axname audit index.html --exclude-rules duplicate-id --severity error

  # Show the available rules
  axname audit --list-rules`,
	RunE: runAuditCommand,
}

func init() {
	rootCmd.AddCommand(auditCmd)

	auditFlags = AddOutputFlags(auditCmd)
	auditCmd.Flags().StringSlice("rules", nil, "Only run these rules")
	auditCmd.Flags().StringSlice("exclude-rules", nil, "Skip these rules")
	auditCmd.Flags().StringP("wcag-level", "w", "AA", "WCAG compliance level to test against (A, AA, AAA)")
	auditCmd.Flags().StringP("severity", "s", "info", "Minimum severity to report (error, warning, info)")
	auditCmd.Flags().IntP("max-violations", "m", 0, "Maximum number of violations per document (0 = unlimited)")
	auditCmd.Flags().BoolVar(&auditIncludeHTML, "include-html", false, "Include the HTML source in json and yaml reports")
	auditCmd.Flags().BoolVar(&auditListRules, "list-rules", false, "List the available rules and exit")

	AddFlagValidation(auditCmd.Flags(), "wcag-level", func(level string) error {
		return ValidateFormatWithSuggestion(level, []string{"A", "AA", "AAA"})
	})
	AddFlagValidation(auditCmd.Flags(), "severity", func(severity string) error {
		_, err := accessibility.ParseSeverity(severity)
		return err
	})

	for flag, key := range map[string]string{
		"rules":          "audit.rules",
		"exclude-rules":  "audit.exclude_rules",
		"wcag-level":     "audit.wcag_level",
		"severity":       "audit.severity",
		"max-violations": "audit.max_violations",
	} {
		configBindings["audit"][flag] = key
	}
}

func runAuditCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	inspector := newInspector()

	if auditListRules {
		return printRules(cmd.OutOrStdout(), inspector.GetAvailableRules())
	}
	if len(args) == 0 {
		return fmt.Errorf("requires at least 1 file, or --list-rules")
	}

	minSeverity, err := accessibility.ParseSeverity(appConfig.Audit.Severity)
	if err != nil {
		return err
	}

	auditConfig := auditConfigurationFromConfig()
	auditConfig.IncludeHTML = auditIncludeHTML

	var reports []*accessibility.AccessibilityReport
	err = forEachDocument(ctx, cmd, args, func(doc document) error {
		perf := logging.StartOperation(appLogger, "audit")
		report, err := inspector.Audit(ctx, doc.Content, auditConfig)
		if err != nil {
			perf.EndWithError(ctx, err)
			return err
		}
		perf.End(ctx, "file", doc.Name, "violations", len(report.Violations))

		report.Target = doc.Name
		applyReportFilters(report, minSeverity)
		reports = append(reports, report)
		return nil
	})

	if printErr := outputAuditResults(cmd.OutOrStdout(), reports); printErr != nil {
		return printErr
	}
	if err != nil {
		return err
	}

	if errorCount := countErrors(reports); errorCount > 0 {
		return fmt.Errorf("%d accessibility violation(s) of severity error", errorCount)
	}
	return nil
}

func auditConfigurationFromConfig() accessibility.AuditConfiguration {
	return accessibility.AuditConfiguration{
		WCAGLevel:     parseWCAGLevel(appConfig.Audit.WCAGLevel),
		Rules:         appConfig.Audit.Rules,
		ExcludeRules:  appConfig.Audit.ExcludeRules,
		MaxViolations: appConfig.Audit.MaxViolations,
	}
}

func parseWCAGLevel(level string) accessibility.WCAGLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "A":
		return accessibility.WCAGLevelA
	case "AAA":
		return accessibility.WCAGLevelAAA
	default:
		return accessibility.WCAGLevelAA
	}
}

// applyReportFilters drops violations below the minimum severity.
func applyReportFilters(report *accessibility.AccessibilityReport, minSeverity accessibility.ViolationSeverity) {
	kept := report.Violations[:0]
	for _, v := range report.Violations {
		if accessibility.SeverityAtLeast(v.Severity, minSeverity) {
			kept = append(kept, v)
		}
	}
	report.Violations = kept
}

func countErrors(reports []*accessibility.AccessibilityReport) int {
	count := 0
	for _, report := range reports {
		for _, v := range report.Violations {
			if v.Severity == accessibility.SeverityError {
				count++
			}
		}
	}
	return count
}

func outputAuditResults(w io.Writer, reports []*accessibility.AccessibilityReport) error {
	if auditFlags.Quiet {
		return nil
	}
	return outputReports(w, reports)
}

func outputReports(w io.Writer, reports []*accessibility.AccessibilityReport) error {
	if handled, err := writeStructured(w, appConfig.Inspect.Format, reports); handled {
		return err
	}
	return outputConsole(w, reports)
}

func severityIcon(severity accessibility.ViolationSeverity) string {
	switch severity {
	case accessibility.SeverityError:
		return "❌"
	case accessibility.SeverityWarning:
		return "⚠️ "
	default:
		return "ℹ️ "
	}
}

func outputConsole(w io.Writer, reports []*accessibility.AccessibilityReport) error {
	if len(reports) == 0 {
		fmt.Fprintln(w, "No documents audited.")
		return nil
	}

	totalViolations, documentsWithIssues := 0, 0
	var scoreSum float64

	for _, report := range reports {
		totalViolations += len(report.Violations)
		scoreSum += report.Summary.OverallScore
		if len(report.Violations) > 0 {
			documentsWithIssues++
		}

		fmt.Fprintf(w, "📄 %s (Score: %.1f/100)\n", report.Target, report.Summary.OverallScore)
		if len(report.Violations) == 0 {
			fmt.Fprintf(w, "   ✅ No accessibility issues found\n\n")
			continue
		}

		for _, v := range report.Violations {
			fmt.Fprintf(w, "   %s %s [%s, WCAG %s]\n", severityIcon(v.Severity), v.Message, v.Rule, v.WCAG.Criteria)
			fmt.Fprintf(w, "      at %s\n", v.Selector)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "🔍 Accessibility Audit Summary\n")
	fmt.Fprintf(w, "Documents audited:     %d\n", len(reports))
	fmt.Fprintf(w, "Documents with issues: %d\n", documentsWithIssues)
	fmt.Fprintf(w, "Total violations:      %d\n", totalViolations)
	fmt.Fprintf(w, "Errors:                %d\n", countErrors(reports))
	fmt.Fprintf(w, "Average score:         %.1f/100\n", scoreSum/float64(len(reports)))

	return nil
}

func printRules(w io.Writer, rules []accessibility.AccessibilityRule) error {
	if handled, err := writeStructured(w, appConfig.Inspect.Format, rules); handled {
		return err
	}

	for _, rule := range rules {
		fmt.Fprintf(w, "%-26s %-9s WCAG %-4s %-6s %s\n",
			rule.ID, rule.Impact, rule.WCAG.Level, rule.WCAG.Criteria, rule.Description)
	}
	return nil
}
