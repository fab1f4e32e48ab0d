// Package activity aggregates the GitHub activity of one account into the
// view models served by the API.
package activity

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/Kamar-Folarin/github-activity/internal/batch"
	"github.com/Kamar-Folarin/github-activity/internal/config"
	apperrors "github.com/Kamar-Folarin/github-activity/internal/errors"
	"github.com/Kamar-Folarin/github-activity/internal/extract"
	"github.com/Kamar-Folarin/github-activity/internal/github"
	"github.com/Kamar-Folarin/github-activity/internal/models"
	"github.com/Kamar-Folarin/github-activity/internal/utils"
)

const tracerName = "github.com/Kamar-Folarin/github-activity/internal/activity"

// Upstream page sizes. Extraction filters events, so more are read than the
// category limit.
const (
	commitEventsWindow       = 50
	contributionEventsWindow = 100
	dashboardEventsWindow    = 30
	repoEventsWindow         = 20
	featuredCommitsWindow    = 5
)

// Service aggregates per-category activity for an account
type Service struct {
	client Client
	proxy  *ProxyClient
	batch  *batch.Processor
	logger *logrus.Logger
	tracer trace.Tracer
}

// ServiceOption allows configuring the activity service
type ServiceOption func(*Service)

// WithConcurrency caps how many repositories are fetched at once for the
// featured list and the activity allow-list. Zero or less means no cap.
func WithConcurrency(workers int) ServiceOption {
	return func(s *Service) {
		s.batch = batch.NewProcessor(workers, s.logger)
	}
}

// NewService creates a new activity service. proxy may be nil, in which case
// snapshots are always fetched directly.
func NewService(client Client, proxy *ProxyClient, logger *logrus.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		client: client,
		proxy:  proxy,
		batch:  batch.NewProcessor(0, logger),
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) startSpan(ctx context.Context, name string, acct config.Account) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "activity."+name, trace.WithAttributes(
		attribute.String("github.username", acct.Username),
	))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func requireUsername(acct config.Account) error {
	if acct.Username == "" {
		return apperrors.NewNoUsernameError()
	}
	return nil
}

// Commits returns the commits the account pushed most recently
func (s *Service) Commits(ctx context.Context, acct config.Account) (commits []models.Commit, err error) {
	ctx, span := s.startSpan(ctx, "Commits", acct)
	defer func() { endSpan(span, err) }()

	if err := requireUsername(acct); err != nil {
		return nil, err
	}

	events, err := s.client.GetUserEvents(ctx, acct.Username, commitEventsWindow)
	if err != nil {
		return nil, err
	}
	return extract.Limit(extract.Commits(events), acct.Limits.WithDefaults().Commits), nil
}

// Stars returns the repositories the account starred most recently
func (s *Service) Stars(ctx context.Context, acct config.Account) (stars []models.Star, err error) {
	ctx, span := s.startSpan(ctx, "Stars", acct)
	defer func() { endSpan(span, err) }()

	if err := requireUsername(acct); err != nil {
		return nil, err
	}

	limit := acct.Limits.WithDefaults().Stars
	repos, err := s.client.GetUserStarred(ctx, acct.Username, limit)
	if err != nil {
		return nil, err
	}
	return extract.Limit(extract.Stars(repos), limit), nil
}

// Contributions returns the pull requests and issues the account opened
func (s *Service) Contributions(ctx context.Context, acct config.Account) (contributions []models.Contribution, err error) {
	ctx, span := s.startSpan(ctx, "Contributions", acct)
	defer func() { endSpan(span, err) }()

	if err := requireUsername(acct); err != nil {
		return nil, err
	}

	events, err := s.client.GetUserEvents(ctx, acct.Username, contributionEventsWindow)
	if err != nil {
		return nil, err
	}
	return extract.Limit(extract.Contributions(events), acct.Limits.WithDefaults().Contributions), nil
}

// Activity returns what other people did on the account's repositories.
// With a repository allow-list each listed repository is read on its own;
// otherwise the account's received events are used.
func (s *Service) Activity(ctx context.Context, acct config.Account) (activity []models.RepoActivity, err error) {
	ctx, span := s.startSpan(ctx, "Activity", acct)
	defer func() { endSpan(span, err) }()

	if err := requireUsername(acct); err != nil {
		return nil, err
	}

	limit := acct.Limits.WithDefaults().Activity

	var events []github.Event
	if len(acct.Repos) > 0 {
		span.SetAttributes(attribute.Int("github.repos", len(acct.Repos)))
		events = s.repoEvents(ctx, acct.Repos)
	} else {
		events, err = s.client.GetUserReceivedEvents(ctx, acct.Username, limit)
		if err != nil {
			return nil, err
		}
	}

	return extract.Limit(extract.RepoActivity(events, acct.Username), limit), nil
}

// repoEvents reads the events of every repository concurrently. A failing
// repository contributes no events.
func (s *Service) repoEvents(ctx context.Context, repos []string) []github.Event {
	perRepo, progress := batch.Collect(ctx, s.batch, repos, repoName, func(ctx context.Context, path string) ([]github.Event, error) {
		owner, name, err := utils.SplitRepoPath(path)
		if err != nil {
			return nil, err
		}
		return s.client.GetRepoEvents(ctx, owner, name, repoEventsWindow)
	})

	s.logger.WithFields(logrus.Fields{
		"repos":    progress.Total,
		"failed":   progress.Failed,
		"duration": progress.Duration.String(),
	}).Debug("Fetched repository events")

	events := make([]github.Event, 0)
	for _, repoEvents := range perRepo {
		events = append(events, repoEvents...)
	}
	return events
}

// Repositories returns the account's repositories, most recently pushed first
func (s *Service) Repositories(ctx context.Context, acct config.Account) (repos []models.Repository, err error) {
	ctx, span := s.startSpan(ctx, "Repositories", acct)
	defer func() { endSpan(span, err) }()

	if err := requireUsername(acct); err != nil {
		return nil, err
	}

	limit := acct.Limits.WithDefaults().Repos
	upstream, err := s.client.GetUserRepos(ctx, acct.Username, limit, "pushed")
	if err != nil {
		return nil, err
	}
	return extract.Limit(extract.Repos(upstream), limit), nil
}

// Dashboard returns every category at once. The profile, events, stars and
// repositories are fetched concurrently; if any of them fails the error is
// returned and no partial dashboard is built.
func (s *Service) Dashboard(ctx context.Context, acct config.Account) (dashboard *models.Dashboard, err error) {
	ctx, span := s.startSpan(ctx, "Dashboard", acct)
	defer func() { endSpan(span, err) }()

	if err := requireUsername(acct); err != nil {
		return nil, err
	}

	limits := acct.Limits.WithDefaults()

	var (
		g        errgroup.Group
		user     *github.User
		events   []github.Event
		starred  []github.Repository
		repos    []github.Repository
		featured []models.Repository
	)

	g.Go(func() error {
		var err error
		user, err = s.client.GetUser(ctx, acct.Username)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = s.client.GetUserEvents(ctx, acct.Username, dashboardEventsWindow)
		return err
	})
	g.Go(func() error {
		var err error
		starred, err = s.client.GetUserStarred(ctx, acct.Username, limits.Stars)
		return err
	})
	g.Go(func() error {
		var err error
		repos, err = s.client.GetUserRepos(ctx, acct.Username, limits.Repos, "pushed")
		return err
	})
	g.Go(func() error {
		featured = s.featured(ctx, acct.FeaturedRepos)
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.WithError(err).WithField("username", acct.Username).Warn("Failed to fetch dashboard")
		return nil, err
	}

	return &models.Dashboard{
		User:          extract.Profile(user),
		Commits:       extract.Limit(extract.Commits(events), limits.Commits),
		Contributions: extract.Limit(extract.Contributions(events), limits.Contributions),
		Stars:         extract.Limit(extract.Stars(starred), limits.Stars),
		Repositories:  extract.Limit(extract.Repos(repos), limits.Repos),
		Featured:      featured,
	}, nil
}

// Snapshot returns the categories consumed by the site generator. The proxy
// is consulted first and its data is used as a whole when any category is
// non-empty; otherwise every category is fetched from GitHub.
func (s *Service) Snapshot(ctx context.Context, acct config.Account) (result Result, err error) {
	ctx, span := s.startSpan(ctx, "Snapshot", acct)
	defer func() { endSpan(span, err) }()

	if err := requireUsername(acct); err != nil {
		return nil, err
	}

	if s.proxy != nil {
		if proxied := s.proxy.Fetch(ctx); !proxied.IsEmpty() {
			span.SetAttributes(attribute.String("activity.source", models.SourceProxy))
			return ProxySourced{Data: proxied}, nil
		}
		s.logger.Debug("Proxy returned no data, fetching from GitHub")
	}

	span.SetAttributes(attribute.String("activity.source", models.SourceGitHub))

	snapshot := models.NewSnapshot(models.SourceGitHub)
	limits := acct.Limits.WithDefaults()

	// Commits and contributions share one events read
	var g errgroup.Group
	g.Go(func() error {
		events, err := s.client.GetUserEvents(ctx, acct.Username, contributionEventsWindow)
		if err != nil {
			return err
		}
		snapshot.Commits = extract.Limit(extract.Commits(events), limits.Commits)
		snapshot.Contributions = extract.Limit(extract.Contributions(events), limits.Contributions)
		return nil
	})
	g.Go(func() error {
		var err error
		snapshot.Stars, err = s.Stars(ctx, acct)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.Activity, err = s.Activity(ctx, acct)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.Featured, err = s.Featured(ctx, acct)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return DirectSourced{Data: snapshot}, nil
}
