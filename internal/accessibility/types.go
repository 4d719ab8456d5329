package accessibility

import (
	"context"
	"time"
)

// WCAG represents Web Content Accessibility Guidelines levels and criteria.
type WCAG struct {
	Level    WCAGLevel    `json:"level"    yaml:"level"`
	Criteria WCAGCriteria `json:"criteria" yaml:"criteria"`
}

// WCAGLevel represents different WCAG compliance levels.
type WCAGLevel string

const (
	WCAGLevelA   WCAGLevel = "A"
	WCAGLevelAA  WCAGLevel = "AA"
	WCAGLevelAAA WCAGLevel = "AAA"
)

// WCAGCriteria represents the specific WCAG success criteria.
type WCAGCriteria string

const (
	Criteria1_3_1 WCAGCriteria = "1.3.1" // Info and Relationships
	Criteria2_4_6 WCAGCriteria = "2.4.6" // Headings and Labels
	Criteria3_1_1 WCAGCriteria = "3.1.1" // Language of Page
	Criteria4_1_1 WCAGCriteria = "4.1.1" // Parsing
	Criteria4_1_2 WCAGCriteria = "4.1.2" // Name, Role, Value
)

// AXEntry is the computed accessibility information of one element.
type AXEntry struct {
	Selector    string `json:"selector"              yaml:"selector"`
	Tag         string `json:"tag"                   yaml:"tag"`
	Role        string `json:"role,omitempty"        yaml:"role,omitempty"`
	Name        string `json:"name,omitempty"        yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Level       int    `json:"level,omitempty"       yaml:"level,omitempty"`
	Hidden      bool   `json:"hidden"                yaml:"hidden"`
	Focusable   bool   `json:"focusable"             yaml:"focusable"`

	node *HTMLNode
}

// Node returns the element the entry was computed for.
func (e AXEntry) Node() *HTMLNode {
	return e.node
}

// Snapshot lists the accessibility information of a document.
type Snapshot struct {
	Target    string        `json:"target"    yaml:"target"`
	Timestamp time.Time     `json:"timestamp" yaml:"timestamp"`
	Duration  time.Duration `json:"duration"  yaml:"duration"`
	Entries   []AXEntry     `json:"entries"   yaml:"entries"`
}

// InspectOptions controls which elements a snapshot contains.
type InspectOptions struct {
	// IncludeHidden keeps elements that are hidden from assistive technology.
	IncludeHidden bool `json:"include_hidden"`

	// Roles restricts the snapshot to elements with one of these roles.
	Roles []string `json:"roles,omitempty"`

	// XPath restricts the snapshot to the elements the expression selects.
	XPath string `json:"xpath,omitempty"`
}

// QueryOptions selects elements the way assistive technology finds them:
// by role and, optionally, accessible name and description.
type QueryOptions struct {
	Role        string `json:"role"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// Exact requires the normalized name and description to match in full.
	// Otherwise a case-insensitive substring match is used.
	Exact bool `json:"exact"`

	XPath string `json:"xpath,omitempty"`
}

// AccessibilityViolation represents a single accessibility issue found during an audit.
type AccessibilityViolation struct {
	ID          string            `json:"id"             yaml:"id"`
	Rule        string            `json:"rule"           yaml:"rule"`
	Severity    ViolationSeverity `json:"severity"       yaml:"severity"`
	WCAG        WCAG              `json:"wcag"           yaml:"wcag"`
	Element     string            `json:"element"        yaml:"element"`
	Selector    string            `json:"selector"       yaml:"selector"`
	Role        string            `json:"role,omitempty" yaml:"role,omitempty"`
	Message     string            `json:"message"        yaml:"message"`
	Description string            `json:"description"    yaml:"description"`
	HelpURL     string            `json:"help_url"       yaml:"help_url"`
	Impact      ViolationImpact   `json:"impact"         yaml:"impact"`
	HTMLContext string            `json:"html_context"   yaml:"html_context"`
}

// ViolationSeverity represents the severity level of an accessibility violation.
type ViolationSeverity string

const (
	SeverityError   ViolationSeverity = "error"
	SeverityWarning ViolationSeverity = "warning"
	SeverityInfo    ViolationSeverity = "info"
)

// ViolationImpact represents the potential impact of an accessibility violation.
type ViolationImpact string

const (
	ImpactCritical ViolationImpact = "critical"
	ImpactSerious  ViolationImpact = "serious"
	ImpactModerate ViolationImpact = "moderate"
	ImpactMinor    ViolationImpact = "minor"
)

// AccessibilityReport contains the complete results of an accessibility audit.
type AccessibilityReport struct {
	ID            string                   `json:"id"                      yaml:"id"`
	Timestamp     time.Time                `json:"timestamp"               yaml:"timestamp"`
	Target        string                   `json:"target"                  yaml:"target"`
	Configuration AuditConfiguration       `json:"configuration"           yaml:"configuration"`
	Summary       AccessibilitySummary     `json:"summary"                 yaml:"summary"`
	Violations    []AccessibilityViolation `json:"violations"              yaml:"violations"`
	Passed        []AccessibilityRule      `json:"passed"                  yaml:"passed"`
	Duration      time.Duration            `json:"duration"                yaml:"duration"`
	HTMLSnapshot  string                   `json:"html_snapshot,omitempty" yaml:"html_snapshot,omitempty"`
}

// AuditConfiguration contains settings for the accessibility audit.
type AuditConfiguration struct {
	WCAGLevel     WCAGLevel `json:"wcag_level"              yaml:"wcag_level"`
	Rules         []string  `json:"rules,omitempty"         yaml:"rules,omitempty"`
	ExcludeRules  []string  `json:"exclude_rules,omitempty" yaml:"exclude_rules,omitempty"`
	IncludeHTML   bool      `json:"include_html"            yaml:"include_html"`
	MaxViolations int       `json:"max_violations"          yaml:"max_violations"`
}

// AccessibilitySummary provides high-level statistics about the accessibility audit.
type AccessibilitySummary struct {
	TotalRules  int `json:"total_rules"  yaml:"total_rules"`
	PassedRules int `json:"passed_rules" yaml:"passed_rules"`
	FailedRules int `json:"failed_rules" yaml:"failed_rules"`

	TotalViolations int `json:"total_violations" yaml:"total_violations"`
	ErrorViolations int `json:"error_violations" yaml:"error_violations"`
	WarnViolations  int `json:"warn_violations"  yaml:"warn_violations"`
	InfoViolations  int `json:"info_violations"  yaml:"info_violations"`

	CriticalImpact int `json:"critical_impact" yaml:"critical_impact"`
	SeriousImpact  int `json:"serious_impact"  yaml:"serious_impact"`
	ModerateImpact int `json:"moderate_impact" yaml:"moderate_impact"`
	MinorImpact    int `json:"minor_impact"    yaml:"minor_impact"`

	OverallScore float64 `json:"overall_score" yaml:"overall_score"` // 0-100 accessibility score
}

// AccessibilityRule represents a specific accessibility rule that was checked.
type AccessibilityRule struct {
	ID          string          `json:"id"          yaml:"id"`
	Description string          `json:"description" yaml:"description"`
	Impact      ViolationImpact `json:"impact"      yaml:"impact"`
	WCAG        WCAG            `json:"wcag"        yaml:"wcag"`
	Tags        []string        `json:"tags"        yaml:"tags"`
	HelpURL     string          `json:"help_url"    yaml:"help_url"`
}

// AccessibilityInspector runs accessibility queries over HTML documents.
type AccessibilityInspector interface {
	// Inspect computes the accessibility snapshot of a document
	Inspect(ctx context.Context, html string, opts InspectOptions) (*Snapshot, error)

	// Query returns the elements matching a role, name and description
	Query(ctx context.Context, html string, opts QueryOptions) ([]AXEntry, error)

	// Audit checks a document against the accessibility rules
	Audit(ctx context.Context, html string, config AuditConfiguration) (*AccessibilityReport, error)

	// GetAvailableRules returns all available accessibility rules
	GetAvailableRules() []AccessibilityRule
}
