// Package cmd defines core data structures for recent-activity configuration.
package cmd

import "time"

// DefaultConfigFile is the configuration file looked up when none is given
const DefaultConfigFile = "recent-activity.yaml"

// Config represents the structure of recent-activity.yaml
type Config struct {
	Username       string        `yaml:"username" env:"GH_USERNAME"`
	CommitMessage  string        `yaml:"commit_message" env:"COMMIT_MSG"`
	MaxLines       int           `yaml:"max_lines" env:"MAX_LINES"`
	ReadmeFile     string        `yaml:"readme_file" env:"README_FILE"`
	Templates      Templates     `yaml:"templates"`
	DisableEvents  []string      `yaml:"disable_events,omitempty" env:"DISABLE_EVENTS" envSeparator:","`
	TimezoneOffset string        `yaml:"timezone_offset" env:"TIMEZONE_OFFSET"`
	DateString     string        `yaml:"date_string" env:"DATE_STRING"`
	Committer      Committer     `yaml:"committer"`
	RateLimitWait  time.Duration `yaml:"rate_limit_wait,omitempty" env:"RATE_LIMIT_WAIT"`
}

// Templates holds the line templates per activity category. {ID}, {REPO} and {URL} are substituted.
type Templates struct {
	Comment     string `yaml:"comment" env:"COMMENTS_ACTIVITY"`
	IssueOpened string `yaml:"issue_opened" env:"ISSUE_OPENED"`
	IssueClosed string `yaml:"issue_closed" env:"ISSUE_CLOSED"`
	PROpened    string `yaml:"pr_opened" env:"PR_OPENED"`
	PRClosed    string `yaml:"pr_closed" env:"PR_CLOSED"`
	PRMerged    string `yaml:"pr_merged" env:"PR_MERGED"`
	URLText     string `yaml:"url_text" env:"URL_TEXT"`
}

// Committer is the git identity used for the update commit
type Committer struct {
	Name  string `yaml:"name,omitempty" env:"COMMITTER_NAME"`
	Email string `yaml:"email,omitempty" env:"COMMITTER_EMAIL"`
}

// Defaults returns the configuration used when nothing else is set
func Defaults() *Config {
	return &Config{
		CommitMessage: "⚡ Update README with the recent activity",
		MaxLines:      5,
		ReadmeFile:    "./README.md",
		Templates: Templates{
			Comment:     "🗣 Commented on {ID} in {REPO}",
			IssueOpened: "❗️ Opened issue {ID} in {REPO}",
			IssueClosed: "✔️ Closed issue {ID} in {REPO}",
			PROpened:    "💪 Opened PR {ID} in {REPO}",
			PRClosed:    "❌ Closed PR {ID} in {REPO}",
			PRMerged:    "🎉 Merged PR {ID} in {REPO}",
			URLText:     "{REPO}{ID}",
		},
		TimezoneOffset: "+00:00",
		DateString:     "DD/MM/YYYY HH:mm:ss",
	}
}
