// Package github fetches public user activity from the GitHub REST API.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alan/recent-activity/internal/activity"
	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// eventsPerPage matches the largest page the events API serves
const eventsPerPage = 100

// Client wraps the GitHub API client
type Client struct {
	client *github.Client
}

// Option configures a Client
type Option func(*clientOptions)

type clientOptions struct {
	rateLimitWait time.Duration
}

// WithRateLimitWait sleeps through secondary rate limits for at most d per request.
// A zero duration leaves the transport without a waiter.
func WithRateLimitWait(d time.Duration) Option {
	return func(o *clientOptions) {
		o.rateLimitWait = d
	}
}

// NewClient creates a new GitHub client with token authentication
func NewClient(ctx context.Context, token string, opts ...Option) (*Client, error) {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)

	if o.rateLimitWait <= 0 {
		return &Client{client: github.NewClient(oauth2.NewClient(ctx, ts))}, nil
	}

	waiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(o.rateLimitWait, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   waiter,
			Source: ts,
		},
	}
	return &Client{client: github.NewClient(httpClient)}, nil
}

// ListPublicEvents returns the most recent public events performed by username, newest first.
// Events that can never be rendered are dropped.
func (c *Client) ListPublicEvents(ctx context.Context, username string) ([]activity.Event, error) {
	slog.Debug("GitHub API: Listing public events", "user", username)
	events, _, err := c.client.Activity.ListEventsPerformedByUser(ctx, username, true, &github.ListOptions{PerPage: eventsPerPage})
	if err != nil {
		return nil, fmt.Errorf("failed to list public events for %s: %w", username, err)
	}
	slog.Debug("GitHub API: Received events", "user", username, "count", len(events))

	var result []activity.Event
	for _, event := range events {
		converted, ok, err := convertEvent(event)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, converted)
		}
	}
	return result, nil
}

// convertEvent maps a raw GitHub event onto activity.Event. ok is false for unsupported types.
func convertEvent(event *github.Event) (activity.Event, bool, error) {
	eventType := activity.EventType(event.GetType())
	switch eventType {
	case activity.IssueCommentEvent, activity.IssuesEvent, activity.PullRequestEvent:
	default:
		return activity.Event{}, false, nil
	}

	payload, err := event.ParsePayload()
	if err != nil {
		return activity.Event{}, false, fmt.Errorf("failed to parse %s payload of event %s: %w", eventType, event.GetID(), err)
	}

	result := activity.Event{
		Type:     eventType,
		RepoName: event.GetRepo().GetName(),
	}

	switch p := payload.(type) {
	case *github.IssueCommentEvent:
		result.Action = p.GetAction()
		result.Number = p.GetIssue().GetNumber()
		result.IsIssue = true
	case *github.IssuesEvent:
		result.Action = p.GetAction()
		result.Number = p.GetIssue().GetNumber()
		result.IsIssue = true
	case *github.PullRequestEvent:
		result.Action = p.GetAction()
		result.Number = p.GetPullRequest().GetNumber()
		if result.Number == 0 {
			result.Number = p.GetNumber()
		}
		result.Merged = p.GetPullRequest().GetMerged()
	default:
		return activity.Event{}, false, nil
	}

	return result, true, nil
}
