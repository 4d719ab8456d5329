package accessibility

import (
	"context"
	"fmt"
	"strings"
	"time"

	axerrors "github.com/conneroisu/axname/internal/errors"
	"github.com/conneroisu/axname/internal/logging"
	"golang.org/x/text/cases"
)

// Inspector runs snapshots, queries and audits over HTML documents using a
// Resolver for the per-node answers.
type Inspector struct {
	resolver Resolver
	rules    []AccessibilityRule
	logger   logging.Logger
}

var _ AccessibilityInspector = (*Inspector)(nil)

// NewInspector creates an inspector. A nil resolver selects the DOM Engine.
func NewInspector(logger logging.Logger, resolver Resolver) *Inspector {
	if resolver == nil {
		resolver = NewEngine()
	}
	return &Inspector{
		resolver: resolver,
		rules:    defaultRules(),
		logger:   logger.WithComponent("inspector"),
	}
}

// GetAvailableRules returns all available accessibility rules
func (i *Inspector) GetAvailableRules() []AccessibilityRule {
	rules := make([]AccessibilityRule, len(i.rules))
	copy(rules, i.rules)
	return rules
}

// Inspect computes the accessibility snapshot of a document.
func (i *Inspector) Inspect(
	ctx context.Context,
	htmlContent string,
	opts InspectOptions,
) (*Snapshot, error) {
	doc, err := parseDocument(htmlContent)
	if err != nil {
		return nil, err
	}
	return i.InspectDocument(ctx, doc, opts)
}

// InspectDocument is Inspect over an already parsed document.
func (i *Inspector) InspectDocument(
	ctx context.Context,
	doc *HTMLDocument,
	opts InspectOptions,
) (*Snapshot, error) {
	start := time.Now()

	scope, err := scopeElements(doc, opts.XPath)
	if err != nil {
		return nil, err
	}

	roles := make([]string, 0, len(opts.Roles))
	for _, role := range opts.Roles {
		roles = append(roles, canonicalRole(role))
	}

	snapshot := &Snapshot{Timestamp: start, Entries: []AXEntry{}}
	for _, n := range scope {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry := i.entry(n)
		if entry.Hidden && !opts.IncludeHidden {
			continue
		}
		if len(roles) > 0 && !contains(roles, entry.Role) {
			continue
		}
		snapshot.Entries = append(snapshot.Entries, entry)
	}
	snapshot.Duration = time.Since(start)

	i.logger.Debug(ctx, "Inspected document",
		"elements", len(scope),
		"entries", len(snapshot.Entries),
		"duration", snapshot.Duration)

	return snapshot, nil
}

// Query returns the elements a user of assistive technology would find by
// role and, optionally, accessible name and description.
func (i *Inspector) Query(
	ctx context.Context,
	htmlContent string,
	opts QueryOptions,
) ([]AXEntry, error) {
	doc, err := parseDocument(htmlContent)
	if err != nil {
		return nil, err
	}
	return i.QueryDocument(ctx, doc, opts)
}

// QueryDocument is Query over an already parsed document.
func (i *Inspector) QueryDocument(
	ctx context.Context,
	doc *HTMLDocument,
	opts QueryOptions,
) ([]AXEntry, error) {
	role := canonicalRole(opts.Role)
	if role == "" {
		return nil, axerrors.NewInputError(axerrors.ErrCodeInvalidRole, "query requires a role")
	}
	if !IsValidRole(role) {
		return nil, axerrors.NewInputError(axerrors.ErrCodeInvalidRole,
			fmt.Sprintf("unknown role %q", opts.Role))
	}

	scope, err := scopeElements(doc, opts.XPath)
	if err != nil {
		return nil, err
	}

	match := newMatcher(opts.Exact)
	matches := []AXEntry{}
	for _, n := range scope {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if i.resolver.Role(n) != role {
			continue
		}
		entry := i.entry(n)
		if entry.Hidden {
			continue
		}
		if opts.Name != "" && !match(entry.Name, opts.Name) {
			continue
		}
		if opts.Description != "" && !match(entry.Description, opts.Description) {
			continue
		}
		matches = append(matches, entry)
	}

	i.logger.Debug(ctx, "Query completed",
		"role", role,
		"name", opts.Name,
		"matches", len(matches))

	return matches, nil
}

// Audit checks a document against the accessibility rules.
func (i *Inspector) Audit(
	ctx context.Context,
	htmlContent string,
	config AuditConfiguration,
) (*AccessibilityReport, error) {
	doc, err := parseDocument(htmlContent)
	if err != nil {
		return nil, err
	}

	report, err := i.AuditDocument(ctx, doc, config)
	if err != nil {
		return nil, err
	}
	if config.IncludeHTML {
		report.HTMLSnapshot = htmlContent
	}
	return report, nil
}

// AuditDocument is Audit over an already parsed document.
func (i *Inspector) AuditDocument(
	ctx context.Context,
	doc *HTMLDocument,
	config AuditConfiguration,
) (*AccessibilityReport, error) {
	start := time.Now()

	report := &AccessibilityReport{
		ID:            generateReportID(),
		Timestamp:     start,
		Configuration: config,
		Violations:    []AccessibilityViolation{},
		Passed:        []AccessibilityRule{},
	}

	applicableRules := i.getApplicableRules(config.WCAGLevel, config.Rules, config.ExcludeRules)

	for _, rule := range applicableRules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		findings := i.checkRule(rule, doc)
		if len(findings) == 0 {
			report.Passed = append(report.Passed, rule)
			continue
		}

		for _, f := range findings {
			report.Violations = append(report.Violations,
				createViolation(rule, f, len(report.Violations)+1))
		}
	}

	if config.MaxViolations > 0 && len(report.Violations) > config.MaxViolations {
		report.Violations = report.Violations[:config.MaxViolations]
	}

	report.Duration = time.Since(start)
	report.Summary = generateSummary(report.Violations, report.Passed, applicableRules)

	i.logger.Info(ctx, "Accessibility audit completed",
		"violations", len(report.Violations),
		"passed_rules", len(report.Passed),
		"duration", report.Duration)

	return report, nil
}

// entry computes the accessibility information of one element.
func (i *Inspector) entry(n *HTMLNode) AXEntry {
	focusable := i.resolver.IsFocusable(n)
	entry := AXEntry{
		Selector:  n.Selector(),
		Tag:       n.TagName(),
		Role:      i.resolver.Role(n),
		Hidden:    i.resolver.IsHidden(n) || IsInert(n) || IsAriaHidden(n),
		Focusable: focusable,
		node:      n,
	}

	if !entry.Hidden {
		entry.Name = i.resolver.AccessibleName(n)
		entry.Description = i.resolver.AccessibleDescription(n)
	}
	if entry.Role == "heading" {
		entry.Level = effectiveHeadingLevel(n)
	}

	return entry
}

func createViolation(rule AccessibilityRule, f finding, seq int) AccessibilityViolation {
	return AccessibilityViolation{
		ID:          fmt.Sprintf("%s-%d", rule.ID, seq),
		Rule:        rule.ID,
		Severity:    getSeverityFromImpact(rule.Impact),
		WCAG:        rule.WCAG,
		Element:     f.node.TagName(),
		Selector:    f.node.Selector(),
		Role:        f.role,
		Message:     f.message,
		Description: rule.Description,
		HelpURL:     rule.HelpURL,
		Impact:      rule.Impact,
		HTMLContext: truncate(f.node.OuterHTML(), 200),
	}
}

func parseDocument(htmlContent string) (*HTMLDocument, error) {
	doc, err := ParseHTMLString(htmlContent)
	if err != nil {
		return nil, axerrors.WrapInput(err, axerrors.ErrCodeParseHTML, "failed to parse HTML")
	}
	return doc, nil
}

func scopeElements(doc *HTMLDocument, xpath string) ([]*HTMLNode, error) {
	if strings.TrimSpace(xpath) == "" {
		return doc.Elements(), nil
	}

	scope, err := doc.QueryXPath(xpath)
	if err != nil {
		return nil, axerrors.WrapInput(err, axerrors.ErrCodeInvalidXPath, "invalid xpath expression").
			WithContext("xpath", xpath)
	}
	return scope, nil
}

// canonicalRole lowercases a requested role and applies the same remapping
// as Role, so that "img" finds elements reported as "image".
func canonicalRole(role string) string {
	role = strings.ToLower(strings.TrimSpace(role))
	if remapped, ok := roleRemap[role]; ok {
		return remapped
	}
	return role
}

// newMatcher returns the text comparison used by queries. Exact matching
// compares normalized strings; otherwise the wanted text must occur in the
// candidate ignoring case.
func newMatcher(exact bool) func(candidate, want string) bool {
	if exact {
		return func(candidate, want string) bool {
			return Normalize(candidate) == Normalize(want)
		}
	}

	folder := cases.Fold()
	return func(candidate, want string) bool {
		return strings.Contains(
			folder.String(Normalize(candidate)),
			folder.String(Normalize(want)),
		)
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func generateReportID() string {
	return fmt.Sprintf("report_%d", time.Now().UnixNano())
}
