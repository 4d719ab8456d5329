package accessibility

import (
	"fmt"
	"strings"
)

// Audit rule identifiers.
const (
	RuleMissingName            = "missing-accessible-name"
	RuleInvalidRole            = "invalid-role"
	RulePresentationalConflict = "presentational-conflict"
	RuleBrokenReference        = "broken-aria-reference"
	RuleDuplicateID            = "duplicate-id"
	RuleMissingLang            = "missing-lang-attribute"
	RuleHeadingStructure       = "missing-heading-structure"
)

// nameRequired lists the roles that are unusable without an accessible name.
var nameRequired = newRoleSet(
	"alertdialog", "button", "checkbox", "combobox", "dialog", "image",
	"link", "listbox", "menuitem", "menuitemcheckbox", "menuitemradio",
	"meter", "progressbar", "radio", "searchbox", "slider", "spinbutton",
	"switch", "tab", "textbox", "treeitem",
)

// idReferenceAttributes hold whitespace separated id lists.
var idReferenceAttributes = []string{
	"aria-labelledby", "aria-describedby", "aria-controls", "aria-owns",
}

func defaultRules() []AccessibilityRule {
	return []AccessibilityRule{
		{
			ID:          RuleMissingName,
			Description: "Interactive elements and images must have an accessible name",
			Impact:      ImpactCritical,
			WCAG:        WCAG{Level: WCAGLevelA, Criteria: Criteria4_1_2},
			Tags:        []string{"wcag2a", "names"},
			HelpURL:     "https://www.w3.org/TR/accname-1.2/",
		},
		{
			ID:          RuleInvalidRole,
			Description: "The role attribute must contain a valid ARIA role",
			Impact:      ImpactCritical,
			WCAG:        WCAG{Level: WCAGLevelA, Criteria: Criteria4_1_2},
			Tags:        []string{"wcag2a", "aria"},
			HelpURL:     "https://www.w3.org/TR/wai-aria-1.2/#role_definitions",
		},
		{
			ID:          RulePresentationalConflict,
			Description: "Focusable elements and elements with global ARIA attributes cannot be presentational",
			Impact:      ImpactMinor,
			WCAG:        WCAG{Level: WCAGLevelA, Criteria: Criteria4_1_2},
			Tags:        []string{"wcag2a", "aria"},
			HelpURL:     "https://www.w3.org/TR/wai-aria-1.2/#conflict_resolution_presentation_none",
		},
		{
			ID:          RuleBrokenReference,
			Description: "ARIA and label references must point to existing ids",
			Impact:      ImpactSerious,
			WCAG:        WCAG{Level: WCAGLevelA, Criteria: Criteria1_3_1},
			Tags:        []string{"wcag2a", "aria"},
			HelpURL:     "https://www.w3.org/TR/wai-aria-1.2/#valuetype_idref_list",
		},
		{
			ID:          RuleDuplicateID,
			Description: "IDs must be unique",
			Impact:      ImpactSerious,
			WCAG:        WCAG{Level: WCAGLevelA, Criteria: Criteria4_1_1},
			Tags:        []string{"wcag2a", "parsing"},
			HelpURL:     "https://dequeuniversity.com/rules/axe/4.4/duplicate-id",
		},
		{
			ID:          RuleMissingLang,
			Description: "HTML element must have a lang attribute",
			Impact:      ImpactSerious,
			WCAG:        WCAG{Level: WCAGLevelA, Criteria: Criteria3_1_1},
			Tags:        []string{"wcag2a", "language"},
			HelpURL:     "https://dequeuniversity.com/rules/axe/4.4/html-has-lang",
		},
		{
			ID:          RuleHeadingStructure,
			Description: "Heading levels should only increase by one",
			Impact:      ImpactModerate,
			WCAG:        WCAG{Level: WCAGLevelAA, Criteria: Criteria2_4_6},
			Tags:        []string{"wcag2aa", "headings"},
			HelpURL:     "https://dequeuniversity.com/rules/axe/4.4/heading-order",
		},
	}
}

// finding is a rule failure before it is turned into a violation.
type finding struct {
	node    *HTMLNode
	role    string
	message string
}

// checkRule runs a specific accessibility rule against the elements.
func (i *Inspector) checkRule(rule AccessibilityRule, doc *HTMLDocument) []finding {
	var findings []finding

	switch rule.ID {
	case RuleMissingName:
		for _, n := range doc.Elements() {
			role := i.resolver.Role(n)
			if !nameRequired.has(role) || IsAriaHidden(n) {
				continue
			}
			if i.resolver.AccessibleName(n) == "" {
				findings = append(findings, finding{
					node:    n,
					role:    role,
					message: fmt.Sprintf("Element with role %q has no accessible name", role),
				})
			}
		}

	case RuleInvalidRole:
		for _, n := range doc.Elements() {
			value, ok := n.Attribute("role")
			if !ok || isBlank(value) || ExplicitRole(n) != "" {
				continue
			}
			findings = append(findings, finding{
				node:    n,
				message: fmt.Sprintf("Role attribute %q contains no valid ARIA role", trimSpace(value)),
			})
		}

	case RulePresentationalConflict:
		for _, n := range doc.Elements() {
			switch ExplicitRole(n) {
			case "none", "presentation":
			default:
				continue
			}
			if i.resolver.IsHidden(n) {
				continue
			}
			focusable := i.resolver.IsFocusable(n)
			if !focusable && !hasGlobalARIA(n) {
				continue
			}
			reason := "carries global ARIA attributes"
			if focusable {
				reason = "is focusable"
			}
			findings = append(findings, finding{
				node:    n,
				role:    i.resolver.Role(n),
				message: "Presentational role is ignored because the element " + reason,
			})
		}

	case RuleBrokenReference:
		for _, n := range doc.Elements() {
			for _, attr := range idReferenceAttributes {
				for _, id := range tokens(attribute(n, attr)) {
					if doc.ByID(id) == nil {
						findings = append(findings, finding{
							node:    n,
							message: fmt.Sprintf("%s references missing id %q", attr, id),
						})
					}
				}
			}
			if isTag(n, "label") {
				if id := trimSpace(attribute(n, "for")); id != "" && doc.ByID(id) == nil {
					findings = append(findings, finding{
						node:    n,
						message: fmt.Sprintf("for references missing id %q", id),
					})
				}
			}
		}

	case RuleDuplicateID:
		counts := make(map[string]int)
		for _, n := range doc.Elements() {
			if id := attribute(n, "id"); id != "" {
				counts[id]++
			}
		}
		for _, n := range doc.Elements() {
			if id := attribute(n, "id"); counts[id] > 1 {
				findings = append(findings, finding{
					node:    n,
					message: fmt.Sprintf("Duplicate ID: %s", id),
				})
			}
		}

	case RuleMissingLang:
		root := doc.Root()
		if root != nil && isTag(root, "html") && isBlank(attribute(root, "lang")) {
			findings = append(findings, finding{
				node:    root,
				message: "HTML element missing lang attribute",
			})
		}

	case RuleHeadingStructure:
		previous := 0
		for _, n := range doc.Elements() {
			if i.resolver.Role(n) != "heading" {
				continue
			}
			level := effectiveHeadingLevel(n)
			if previous > 0 && level > previous+1 {
				findings = append(findings, finding{
					node:    n,
					role:    "heading",
					message: fmt.Sprintf("Heading level %d follows level %d", level, previous),
				})
			}
			previous = level
		}
	}

	return findings
}

// effectiveHeadingLevel defaults headings without a level to 2, the ARIA
// default for aria-level on the heading role.
func effectiveHeadingLevel(n Node) int {
	if level := headingLevel(n); level > 0 {
		return level
	}
	return 2
}

// getApplicableRules returns rules applicable for the given configuration
func (i *Inspector) getApplicableRules(
	level WCAGLevel,
	includeRules, excludeRules []string,
) []AccessibilityRule {
	applicable := []AccessibilityRule{}

	for _, rule := range i.rules {
		if contains(excludeRules, rule.ID) {
			continue
		}

		// If specific rules are requested, only include those
		if len(includeRules) > 0 && !contains(includeRules, rule.ID) {
			continue
		}

		if isRuleApplicableForLevel(rule, level) {
			applicable = append(applicable, rule)
		}
	}

	return applicable
}

// isRuleApplicableForLevel checks if a rule applies to the given WCAG level
func isRuleApplicableForLevel(rule AccessibilityRule, level WCAGLevel) bool {
	switch level {
	case WCAGLevelA:
		return contains(rule.Tags, "wcag2a")
	case WCAGLevelAA:
		return contains(rule.Tags, "wcag2a") || contains(rule.Tags, "wcag2aa")
	case WCAGLevelAAA:
		return contains(rule.Tags, "wcag2a") || contains(rule.Tags, "wcag2aa") ||
			contains(rule.Tags, "wcag2aaa")
	default:
		return true
	}
}

func getSeverityFromImpact(impact ViolationImpact) ViolationSeverity {
	switch impact {
	case ImpactCritical, ImpactSerious:
		return SeverityError
	case ImpactModerate:
		return SeverityWarning
	case ImpactMinor:
		return SeverityInfo
	default:
		return SeverityWarning
	}
}

// ParseSeverity converts a severity name, as given on the command line.
func ParseSeverity(s string) (ViolationSeverity, error) {
	switch sev := ViolationSeverity(strings.ToLower(strings.TrimSpace(s))); sev {
	case SeverityError, SeverityWarning, SeverityInfo:
		return sev, nil
	default:
		return "", fmt.Errorf("unknown severity %q (want error, warning or info)", s)
	}
}

// SeverityAtLeast reports whether s is as severe as min.
func SeverityAtLeast(s, min ViolationSeverity) bool {
	rank := map[ViolationSeverity]int{SeverityInfo: 0, SeverityWarning: 1, SeverityError: 2}
	return rank[s] >= rank[min]
}

func generateSummary(
	violations []AccessibilityViolation,
	passedRules []AccessibilityRule,
	totalRules []AccessibilityRule,
) AccessibilitySummary {
	summary := AccessibilitySummary{
		TotalRules:      len(totalRules),
		PassedRules:     len(passedRules),
		FailedRules:     len(totalRules) - len(passedRules),
		TotalViolations: len(violations),
	}

	for _, violation := range violations {
		switch violation.Severity {
		case SeverityError:
			summary.ErrorViolations++
		case SeverityWarning:
			summary.WarnViolations++
		case SeverityInfo:
			summary.InfoViolations++
		}

		switch violation.Impact {
		case ImpactCritical:
			summary.CriticalImpact++
		case ImpactSerious:
			summary.SeriousImpact++
		case ImpactModerate:
			summary.ModerateImpact++
		case ImpactMinor:
			summary.MinorImpact++
		}
	}

	if len(totalRules) > 0 {
		summary.OverallScore = float64(len(passedRules)) / float64(len(totalRules)) * 100
	} else {
		summary.OverallScore = 100
	}

	return summary
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
