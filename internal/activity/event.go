// Package activity classifies public GitHub events and renders them as markdown lines.
package activity

// EventType is the raw GitHub event type name
type EventType string

const (
	// IssueCommentEvent is emitted when a comment is created, edited or deleted on an issue or PR
	IssueCommentEvent EventType = "IssueCommentEvent"
	// IssuesEvent is emitted for issue lifecycle actions
	IssuesEvent EventType = "IssuesEvent"
	// PullRequestEvent is emitted for pull request lifecycle actions
	PullRequestEvent EventType = "PullRequestEvent"
)

// Event is a single public event of a user, reduced to the fields needed for rendering
type Event struct {
	Type     EventType
	Action   string
	RepoName string // "owner/repo"
	Number   int
	Merged   bool
	IsIssue  bool // false when the target is a pull request
}

// Category identifies which template renders an event
type Category string

const (
	// CategoryComment is a newly created issue or PR comment
	CategoryComment Category = "comment"
	// CategoryIssueOpened is an opened issue
	CategoryIssueOpened Category = "issue_opened"
	// CategoryIssueClosed is a closed issue
	CategoryIssueClosed Category = "issue_closed"
	// CategoryPROpened is an opened pull request
	CategoryPROpened Category = "pr_opened"
	// CategoryPRClosed is a pull request closed without merging
	CategoryPRClosed Category = "pr_closed"
	// CategoryPRMerged is a merged pull request
	CategoryPRMerged Category = "pr_merged"
)

// AllCategories lists every category in display order
var AllCategories = []Category{
	CategoryComment,
	CategoryIssueOpened,
	CategoryIssueClosed,
	CategoryPROpened,
	CategoryPRClosed,
	CategoryPRMerged,
}

// Group names accepted in the disabled events list. Each one switches off a whole event type.
const (
	GroupComments = "comments"
	GroupIssues   = "issues"
	GroupPR       = "pr"
)

// group returns the disable group an event type belongs to
func (t EventType) group() string {
	switch t {
	case IssueCommentEvent:
		return GroupComments
	case IssuesEvent:
		return GroupIssues
	case PullRequestEvent:
		return GroupPR
	default:
		return ""
	}
}

// Classify derives the category of an event. The second result is false for
// events that never render (unknown types, edited comments, reopened issues, ...).
func Classify(e Event) (Category, bool) {
	switch e.Type {
	case IssueCommentEvent:
		if e.Action == "created" {
			return CategoryComment, true
		}
	case IssuesEvent:
		switch e.Action {
		case "opened":
			return CategoryIssueOpened, true
		case "closed":
			return CategoryIssueClosed, true
		}
	case PullRequestEvent:
		// opened wins over merged, merged wins over closed
		if e.Action == "opened" {
			return CategoryPROpened, true
		}
		if e.Merged {
			return CategoryPRMerged, true
		}
		if e.Action == "closed" {
			return CategoryPRClosed, true
		}
	}
	return "", false
}
