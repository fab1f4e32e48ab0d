// Package extract turns raw GitHub events and resources into the normalized
// view models. Every function is pure and total: absent optional fields
// become empty strings or empty slices, never an error.
package extract

import (
	"fmt"
	"strings"

	"github.com/Kamar-Folarin/github-activity/internal/github"
	"github.com/Kamar-Folarin/github-activity/internal/models"
	"github.com/Kamar-Folarin/github-activity/internal/utils"
	textutils "github.com/Kamar-Folarin/github-activity/pkg/utils"
)

const (
	MessageLength         = 80
	TitleLength           = 80
	DescriptionLength     = 120
	FeaturedMessageLength = 60
	MaxTopics             = 5
)

// Commits flattens the commits of every push event, keeping event order and
// then commit order within each event
func Commits(events []github.Event) []models.Commit {
	commits := make([]models.Commit, 0)
	for _, event := range events {
		push, ok := event.Payload.(*github.PushPayload)
		if !ok {
			continue
		}
		for _, commit := range push.Commits {
			commits = append(commits, models.Commit{
				SHA:     textutils.ShortSHA(commit.SHA),
				Message: textutils.Truncate(textutils.FirstLine(commit.Message), MessageLength),
				URL:     utils.CommitURL(event.Repo.Name, commit.SHA),
				Repo:    event.Repo.Name,
				RepoURL: utils.RepoURL(event.Repo.Name),
				Date:    event.CreatedAt,
			})
		}
	}
	return commits
}

// Contributions returns the pull requests and issues the events opened.
// Any other action is dropped.
func Contributions(events []github.Event) []models.Contribution {
	contributions := make([]models.Contribution, 0)
	for _, event := range events {
		var (
			kind string
			item *github.Issue
		)

		switch payload := event.Payload.(type) {
		case *github.PullRequestPayload:
			if payload.Action != "opened" {
				continue
			}
			kind, item = models.ContributionPR, payload.PullRequest
		case *github.IssuesPayload:
			if payload.Action != "opened" {
				continue
			}
			kind, item = models.ContributionIssue, payload.Issue
		default:
			continue
		}

		contribution := models.Contribution{
			Type:    kind,
			Repo:    event.Repo.Name,
			RepoURL: utils.RepoURL(event.Repo.Name),
			Date:    event.CreatedAt,
		}
		if item != nil {
			contribution.Title = textutils.Truncate(item.Title, TitleLength)
			contribution.URL = item.HTMLURL
			contribution.Number = item.Number
		}
		contributions = append(contributions, contribution)
	}
	return contributions
}

// Stars maps starred repositories one to one
func Stars(repos []github.Repository) []models.Star {
	stars := make([]models.Star, 0, len(repos))
	for _, repo := range repos {
		stars = append(stars, models.Star{
			Name:        repo.FullName,
			Description: textutils.Truncate(deref(repo.Description), DescriptionLength),
			URL:         repo.HTMLURL,
			Stars:       repo.StargazersCount,
			Language:    deref(repo.Language),
			Topics:      topics(repo.Topics),
		})
	}
	return stars
}

// Repos maps repositories one to one
func Repos(repos []github.Repository) []models.Repository {
	result := make([]models.Repository, 0, len(repos))
	for _, repo := range repos {
		result = append(result, Repo(repo))
	}
	return result
}

// Repo maps a single repository
func Repo(repo github.Repository) models.Repository {
	return models.Repository{
		Name:        repo.FullName,
		Description: textutils.Truncate(deref(repo.Description), DescriptionLength),
		URL:         repo.HTMLURL,
		Stars:       repo.StargazersCount,
		Forks:       repo.ForksCount,
		Language:    deref(repo.Language),
		Topics:      topics(repo.Topics),
		Owner:       repo.Owner.Login,
		Private:     repo.Private,
		Fork:        repo.Fork,
		UpdatedAt:   repo.UpdatedAt,
		PushedAt:    repo.PushedAt,
	}
}

// FeaturedCommits maps a repository commit log one to one
func FeaturedCommits(commits []github.RepoCommit) []models.FeaturedCommit {
	result := make([]models.FeaturedCommit, 0, len(commits))
	for _, c := range commits {
		result = append(result, models.FeaturedCommit{
			SHA:     textutils.ShortSHA(c.SHA),
			Message: textutils.Truncate(textutils.FirstLine(c.Commit.Message), FeaturedMessageLength),
			URL:     c.HTMLURL,
			Author:  c.Commit.Author.Name,
			Date:    c.Commit.Author.Date,
		})
	}
	return result
}

// RepoActivity maps events by anyone other than owner. Logins compare
// case-insensitively, as GitHub treats them, rather than byte for byte, so
// "Octocat" and "octocat" are both the owner.
func RepoActivity(events []github.Event, owner string) []models.RepoActivity {
	activity := make([]models.RepoActivity, 0)
	for _, event := range events {
		if strings.EqualFold(event.Actor.Login, owner) {
			continue
		}
		activity = append(activity, models.RepoActivity{
			Type:        EventKind(event.Type),
			Actor:       event.Actor.Login,
			ActorURL:    utils.UserURL(event.Actor.Login),
			ActorAvatar: event.Actor.AvatarURL,
			Repo:        event.Repo.Name,
			RepoURL:     utils.RepoURL(event.Repo.Name),
			Date:        event.CreatedAt,
			Detail:      Detail(event),
		})
	}
	return activity
}

// Detail returns a short human-readable summary of the event
func Detail(event github.Event) string {
	switch payload := event.Payload.(type) {
	case *github.WatchPayload:
		return "starred"
	case *github.ForkPayload:
		return "forked"
	case *github.PullRequestPayload:
		number := payload.Number
		if number == 0 && payload.PullRequest != nil {
			number = payload.PullRequest.Number
		}
		return fmt.Sprintf("%s PR #%d", payload.Action, number)
	case *github.IssuesPayload:
		number := 0
		if payload.Issue != nil {
			number = payload.Issue.Number
		}
		return fmt.Sprintf("%s issue #%d", payload.Action, number)
	case *github.IssueCommentPayload:
		return "commented"
	case *github.CreatePayload:
		return "created " + payload.RefType
	case *github.DeletePayload:
		return "deleted " + payload.RefType
	case *github.PushPayload:
		return fmt.Sprintf("pushed %d commit(s)", payload.Size)
	default:
		return EventKind(event.Type)
	}
}

// EventKind lowercases an event type and strips its trailing "Event"
func EventKind(eventType string) string {
	return strings.ToLower(strings.TrimSuffix(eventType, "Event"))
}

// Profile maps the upstream user to the dashboard profile
func Profile(user *github.User) models.Profile {
	if user == nil {
		return models.Profile{}
	}
	return models.Profile{
		Login:       user.Login,
		Name:        user.Name,
		AvatarURL:   user.AvatarURL,
		URL:         user.HTMLURL,
		Bio:         user.Bio,
		PublicRepos: user.PublicRepos,
		Followers:   user.Followers,
		Following:   user.Following,
	}
}

// Limit returns at most n leading items. A nil input yields an empty slice.
func Limit[T any](items []T, n int) []T {
	if items == nil {
		return []T{}
	}
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func topics(all []string) []string {
	if len(all) > MaxTopics {
		all = all[:MaxTopics]
	}
	result := make([]string, len(all))
	copy(result, all)
	return result
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
