package activity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTemplates() Templates {
	return Templates{
		Comment:     "Commented on {ID} in {REPO}",
		IssueOpened: "Opened issue {ID} in {REPO}",
		IssueClosed: "Closed issue {ID} in {REPO}",
		PROpened:    "Opened PR {ID} in {REPO}",
		PRClosed:    "Closed PR {ID} in {REPO}",
		PRMerged:    "Merged PR {ID} in {REPO}",
		URLText:     "{REPO}{ID}",
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		expected Category
		ok       bool
	}{
		{"created comment", Event{Type: IssueCommentEvent, Action: "created"}, CategoryComment, true},
		{"edited comment", Event{Type: IssueCommentEvent, Action: "edited"}, "", false},
		{"opened issue", Event{Type: IssuesEvent, Action: "opened"}, CategoryIssueOpened, true},
		{"closed issue", Event{Type: IssuesEvent, Action: "closed"}, CategoryIssueClosed, true},
		{"reopened issue", Event{Type: IssuesEvent, Action: "reopened"}, "", false},
		{"opened PR", Event{Type: PullRequestEvent, Action: "opened"}, CategoryPROpened, true},
		{"opened PR flagged merged", Event{Type: PullRequestEvent, Action: "opened", Merged: true}, CategoryPROpened, true},
		{"closed and merged PR", Event{Type: PullRequestEvent, Action: "closed", Merged: true}, CategoryPRMerged, true},
		{"merged PR with other action", Event{Type: PullRequestEvent, Action: "synchronize", Merged: true}, CategoryPRMerged, true},
		{"closed unmerged PR", Event{Type: PullRequestEvent, Action: "closed"}, CategoryPRClosed, true},
		{"reopened PR", Event{Type: PullRequestEvent, Action: "reopened"}, "", false},
		{"push event", Event{Type: "PushEvent", Action: "created"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, ok := Classify(tt.event)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, category)
		})
	}
}

func TestFormatter_Format(t *testing.T) {
	issue := Event{Type: IssuesEvent, Action: "opened", RepoName: "a/b", Number: 42, IsIssue: true}
	pr := Event{Type: PullRequestEvent, Action: "closed", Merged: true, RepoName: "a/b", Number: 7}

	tests := []struct {
		name      string
		templates func() Templates
		disabled  []string
		event     Event
		expected  string
	}{
		{
			name: "ID and REPO placeholders",
			templates: func() Templates {
				tpl := testTemplates()
				tpl.IssueOpened = "{ID} in {REPO}"
				return tpl
			},
			event:    issue,
			expected: "[#42](https://github.com/a/b/issues/42) in [a/b](https://github.com/a/b)",
		},
		{
			name: "URL placeholder uses link text template",
			templates: func() Templates {
				tpl := testTemplates()
				tpl.IssueOpened = "Opened {URL}"
				return tpl
			},
			event:    issue,
			expected: "Opened [a/b#42](https://github.com/a/b/issues/42)",
		},
		{
			name: "placeholders replaced everywhere",
			templates: func() Templates {
				tpl := testTemplates()
				tpl.PRMerged = "{ID} {ID} {REPO}"
				return tpl
			},
			event:    pr,
			expected: "[#7](https://github.com/a/b/pull/7) [#7](https://github.com/a/b/pull/7) [a/b](https://github.com/a/b)",
		},
		{
			name:      "merged template used for closed merged PR",
			templates: testTemplates,
			event:     pr,
			expected:  "Merged PR [#7](https://github.com/a/b/pull/7) in [a/b](https://github.com/a/b)",
		},
		{
			name:      "disabled group",
			templates: testTemplates,
			disabled:  []string{"pr"},
			event:     pr,
			expected:  "",
		},
		{
			name:      "disabled category",
			templates: testTemplates,
			disabled:  []string{"pr_merged"},
			event:     pr,
			expected:  "",
		},
		{
			name:      "other category of the same group still renders",
			templates: testTemplates,
			disabled:  []string{"issue_closed"},
			event:     issue,
			expected:  "Opened issue [#42](https://github.com/a/b/issues/42) in [a/b](https://github.com/a/b)",
		},
		{
			name:      "skipped action",
			templates: testTemplates,
			event:     Event{Type: IssuesEvent, Action: "labeled", RepoName: "a/b", Number: 1, IsIssue: true},
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter(tt.templates(), ParseDisabled(tt.disabled))
			assert.Equal(t, tt.expected, f.Format(tt.event))
		})
	}
}

func TestFormatter_DisabledNeverRenders(t *testing.T) {
	var events []Event
	for _, typ := range []EventType{IssueCommentEvent, IssuesEvent, PullRequestEvent} {
		for _, action := range []string{"created", "opened", "closed", "edited", "reopened"} {
			for _, merged := range []bool{false, true} {
				events = append(events, Event{Type: typ, Action: action, Merged: merged, RepoName: "o/r", Number: 3})
			}
		}
	}

	for _, category := range AllCategories {
		t.Run(string(category), func(t *testing.T) {
			f := NewFormatter(testTemplates(), ParseDisabled([]string{string(category)}))
			for _, e := range events {
				if c, ok := Classify(e); ok && c == category {
					assert.Empty(t, f.Format(e), "event %+v", e)
				}
			}
		})
	}
}

func TestParseDisabled(t *testing.T) {
	d := ParseDisabled([]string{" Comments , PR", "", "issue_closed"})

	assert.True(t, d["comments"])
	assert.True(t, d["pr"])
	assert.True(t, d["issue_closed"])
	assert.False(t, d["issues"])
	assert.Len(t, d, 3)
}

func TestFormatter_Select(t *testing.T) {
	var events []Event
	for i := 1; i <= 10; i++ {
		events = append(events,
			Event{Type: IssueCommentEvent, Action: "deleted", RepoName: "o/r", Number: i, IsIssue: true},
			Event{Type: IssuesEvent, Action: "opened", RepoName: "o/r", Number: i, IsIssue: true},
		)
	}
	f := NewFormatter(Templates{IssueOpened: "{ID}"}, nil)

	tests := []struct {
		name     string
		events   []Event
		limit    int
		expected int
	}{
		{"caps at limit", events, 5, 5},
		{"fewer than limit", events[:6], 5, 3},
		{"nothing qualifies", events[:1], 5, 0},
		{"zero limit", events, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := f.Select(tt.events, tt.limit)
			assert.Len(t, lines, tt.expected)
			for i, line := range lines {
				assert.Equal(t, fmt.Sprintf("[#%d](https://github.com/o/r/issues/%d)", i+1, i+1), line)
			}
		})
	}
}

func TestTargetURL(t *testing.T) {
	assert.Equal(t, "https://github.com/o/r/issues/5", TargetURL(Event{RepoName: "o/r", Number: 5, IsIssue: true}))
	assert.Equal(t, "https://github.com/o/r/pull/5", TargetURL(Event{RepoName: "o/r", Number: 5}))
	assert.Equal(t, "https://github.com/o/r", RepoURL("o/r"))
}
