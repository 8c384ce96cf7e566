package activity

import (
	"fmt"
	"strings"
)

const urlPrefix = "https://github.com"

// Templates holds one template per category plus the link text used by {URL}
type Templates struct {
	Comment     string
	IssueOpened string
	IssueClosed string
	PROpened    string
	PRClosed    string
	PRMerged    string
	URLText     string
}

// For returns the template for a category
func (t Templates) For(c Category) string {
	switch c {
	case CategoryComment:
		return t.Comment
	case CategoryIssueOpened:
		return t.IssueOpened
	case CategoryIssueClosed:
		return t.IssueClosed
	case CategoryPROpened:
		return t.PROpened
	case CategoryPRClosed:
		return t.PRClosed
	case CategoryPRMerged:
		return t.PRMerged
	default:
		return ""
	}
}

// Disabled is the set of switched off group names and categories
type Disabled map[string]bool

// ParseDisabled builds a Disabled set from entries such as "comments", "pr" or "issue_closed".
// A single entry may itself be a comma-separated list.
func ParseDisabled(entries []string) Disabled {
	d := make(Disabled)
	for _, entry := range entries {
		for _, name := range strings.Split(entry, ",") {
			name = strings.ToLower(strings.TrimSpace(name))
			if name != "" {
				d[name] = true
			}
		}
	}
	return d
}

// Formatter renders events into markdown lines
type Formatter struct {
	Templates Templates
	Disabled  Disabled
}

// NewFormatter creates a Formatter
func NewFormatter(templates Templates, disabled Disabled) *Formatter {
	if disabled == nil {
		disabled = Disabled{}
	}
	return &Formatter{Templates: templates, Disabled: disabled}
}

// Format renders a single event. An empty result means the event is skipped.
func (f *Formatter) Format(e Event) string {
	if g := e.Type.group(); g == "" || f.Disabled[g] {
		return ""
	}

	category, ok := Classify(e)
	if !ok || f.Disabled[string(category)] {
		return ""
	}

	return f.render(f.Templates.For(category), e)
}

// render substitutes {ID}, {REPO} and {URL} in a template
func (f *Formatter) render(template string, e Event) string {
	target := TargetURL(e)
	id := fmt.Sprintf("#%d", e.Number)

	linkText := strings.NewReplacer(
		"{ID}", id,
		"{REPO}", e.RepoName,
	).Replace(f.Templates.URLText)

	return strings.NewReplacer(
		"{ID}", markdownLink(id, target),
		"{REPO}", markdownLink(e.RepoName, RepoURL(e.RepoName)),
		"{URL}", markdownLink(linkText, target),
	).Replace(template)
}

// Select formats events in order and returns the first limit non-empty lines
func (f *Formatter) Select(events []Event, limit int) []string {
	var lines []string
	if limit <= 0 {
		return lines
	}

	for _, e := range events {
		line := f.Format(e)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == limit {
			break
		}
	}
	return lines
}

// RepoURL returns the web URL of a repository
func RepoURL(repoName string) string {
	return fmt.Sprintf("%s/%s", urlPrefix, repoName)
}

// TargetURL returns the web URL of the issue or pull request an event refers to
func TargetURL(e Event) string {
	kind := "pull"
	if e.IsIssue {
		kind = "issues"
	}
	return fmt.Sprintf("%s/%s/%s/%d", urlPrefix, e.RepoName, kind, e.Number)
}

func markdownLink(text, url string) string {
	return fmt.Sprintf("[%s](%s)", text, url)
}
