// Package reconciler keeps the recent activity section of a README in sync with a user's public GitHub events.
package reconciler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alan/recent-activity/cmd"
	"github.com/alan/recent-activity/internal/activity"
	"github.com/alan/recent-activity/internal/readme"
)

// Fetcher returns a user's public events, newest first
type Fetcher interface {
	ListPublicEvents(ctx context.Context, username string) ([]activity.Event, error)
}

// Committer records a file change in version control and publishes it
type Committer interface {
	CommitFile(ctx context.Context, path, message string) error
}

// Outcome classifies a successful run
type Outcome string

const (
	// OutcomeWritten means the document was rewritten (and committed unless disabled)
	OutcomeWritten Outcome = "written"
	// OutcomeUnchanged means the document already showed the latest activity
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeNoActivity means no event qualified for display
	OutcomeNoActivity Outcome = "no_activity"
	// OutcomePreview means the document would change but the run was a dry run
	OutcomePreview Outcome = "preview"
)

// Options tune a single run
type Options struct {
	DryRun   bool // render only, never write or commit
	NoCommit bool // write the document but skip the commit
}

// Result describes a successful run
type Result struct {
	Outcome  Outcome
	Message  string
	Lines    []string // formatted activity lines, unnumbered
	Document string   // rendered document, set when the document changed
}

// Reconciler renders recent activity into the configured document
type Reconciler struct {
	fetcher   Fetcher
	committer Committer
	config    *cmd.Config
	logger    *slog.Logger
	now       func() time.Time
}

// NewReconciler creates a Reconciler. A nil logger uses slog.Default().
func NewReconciler(fetcher Fetcher, committer Committer, config *cmd.Config, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		fetcher:   fetcher,
		committer: committer,
		config:    config,
		logger:    logger,
		now:       time.Now,
	}
}

// Formatter builds the activity formatter described by the configuration
func Formatter(config *cmd.Config) *activity.Formatter {
	t := config.Templates
	return activity.NewFormatter(activity.Templates{
		Comment:     t.Comment,
		IssueOpened: t.IssueOpened,
		IssueClosed: t.IssueClosed,
		PROpened:    t.PROpened,
		PRClosed:    t.PRClosed,
		PRMerged:    t.PRMerged,
		URLText:     t.URLText,
	}, activity.ParseDisabled(config.DisableEvents))
}

// Run fetches events, updates the document and commits it.
// Errors are fatal; the document is left untouched when they occur before the write.
func (r *Reconciler) Run(ctx context.Context, opts Options) (*Result, error) {
	offset, err := readme.ParseOffset(r.config.TimezoneOffset)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Getting activity", "user", r.config.Username)
	events, err := r.fetcher.ListPublicEvents(ctx, r.config.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events for %s: %w", r.config.Username, err)
	}
	r.logger.Debug("Events found", "user", r.config.Username, "count", len(events))

	lines := Formatter(r.config).Select(events, r.config.MaxLines)

	path := r.config.ReadmeFile
	doc, err := readme.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if _, err := doc.Locate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if len(lines) == 0 {
		return &Result{
			Outcome: OutcomeNoActivity,
			Message: "No PullRequest/Issue/IssueComment events found. Leaving README unchanged.",
		}, nil
	}
	if len(lines) < r.config.MaxLines {
		r.logger.Info("Found fewer activities than requested", "found", len(lines), "max_lines", r.config.MaxLines)
	}

	updated := doc.Clone()
	changed, err := updated.SpliceActivity(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !changed {
		return &Result{Outcome: OutcomeUnchanged, Message: "No changes detected.", Lines: lines}, nil
	}

	stamp := readme.FormatTimestamp(readme.Shift(r.now(), offset), r.config.DateString)
	stamped, err := updated.UpdateTimestamp(stamp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if stamped {
		r.logger.Debug("Updated last update timestamp", "value", stamp)
	}

	result := &Result{Lines: lines, Document: updated.String()}
	if opts.DryRun {
		result.Outcome = OutcomePreview
		result.Message = fmt.Sprintf("Dry run: %s would be updated", path)
		return result, nil
	}

	if err := updated.WriteFile(path); err != nil {
		return nil, err
	}
	r.logger.Info("Updated README with the recent activity", "file", path, "lines", len(lines))

	result.Outcome = OutcomeWritten
	if opts.NoCommit {
		result.Message = fmt.Sprintf("Wrote to %s", path)
		return result, nil
	}

	if err := r.committer.CommitFile(ctx, path, r.config.CommitMessage); err != nil {
		return nil, fmt.Errorf("wrote %s but failed to commit: %w", path, err)
	}
	result.Message = "Pushed to remote repository"
	return result, nil
}
