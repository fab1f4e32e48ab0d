package activity

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Kamar-Folarin/github-activity/internal/batch"
	"github.com/Kamar-Folarin/github-activity/internal/config"
	apperrors "github.com/Kamar-Folarin/github-activity/internal/errors"
	"github.com/Kamar-Folarin/github-activity/internal/extract"
	"github.com/Kamar-Folarin/github-activity/internal/github"
	"github.com/Kamar-Folarin/github-activity/internal/models"
	"github.com/Kamar-Folarin/github-activity/internal/utils"
)

// Featured returns the configured featured repositories with their latest
// commits. A repository that cannot be fetched is left out. The list alone
// decides what is fetched, so no username is needed.
func (s *Service) Featured(ctx context.Context, acct config.Account) (featured []models.Repository, err error) {
	ctx, span := s.startSpan(ctx, "Featured", acct)
	defer func() { endSpan(span, err) }()

	return s.featured(ctx, acct.FeaturedRepos), nil
}

func (s *Service) featured(ctx context.Context, repos []string) []models.Repository {
	featured, progress := batch.Collect(ctx, s.batch, repos, repoName, s.featuredRepo)
	logger := s.logger.WithFields(logrus.Fields{
		"requested": progress.Total,
		"loaded":    progress.Succeeded,
		"duration":  progress.Duration.String(),
	})
	if progress.Failed > 0 {
		logger.Info("Some featured repositories could not be loaded")
	} else {
		logger.Debug("Fetched featured repositories")
	}
	return featured
}

// featuredRepo reads the repository and its commits concurrently
func (s *Service) featuredRepo(ctx context.Context, path string) (models.Repository, error) {
	owner, name, err := utils.SplitRepoPath(path)
	if err != nil {
		return models.Repository{}, err
	}

	var (
		g       errgroup.Group
		repo    *github.Repository
		commits []github.RepoCommit
	)
	g.Go(func() error {
		var err error
		repo, err = s.client.GetRepo(ctx, owner, name)
		if err != nil {
			return apperrors.NewPartialFetchError(path, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		commits, err = s.client.GetRepoCommits(ctx, owner, name, featuredCommitsWindow)
		if err != nil {
			return apperrors.NewPartialFetchError(path+" commits", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.Repository{}, err
	}

	result := extract.Repo(*repo)
	result.Commits = extract.FeaturedCommits(commits)
	return result, nil
}

// repoName labels an owner/repo entry in batch logs
func repoName(path string) string {
	return path
}
