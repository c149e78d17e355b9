// Package pipeline runs the list, fetch and persist stages of a clone
// traffic report.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/kyleking/gh-clonestats/internal/github"
	"github.com/kyleking/gh-clonestats/internal/report"
)

// RepoLister lists the non-fork repositories of an account.
type RepoLister interface {
	ListRepos(ctx context.Context, owner string) ([]string, error)
}

// TrafficFetcher fetches clone traffic for one repository.
type TrafficFetcher interface {
	FetchClones(ctx context.Context, owner, repo string) (*github.TrafficRecord, error)
}

// Options configures where and how the report is written.
type Options struct {
	Output        string
	IncludeStatus bool
}

// Pipeline fetches clone traffic for every repository of an account, one
// repository at a time, and writes the report once all fetches are done.
type Pipeline struct {
	lister  RepoLister
	fetcher TrafficFetcher
	opts    Options
	logger  *zap.SugaredLogger
	out     io.Writer
}

// New creates a pipeline. Progress lines go to out, diagnostics to logger.
func New(lister RepoLister, fetcher TrafficFetcher, opts Options, logger *zap.SugaredLogger, out io.Writer) *Pipeline {
	if opts.Output == "" {
		opts.Output = report.DefaultPath
	}
	return &Pipeline{
		lister:  lister,
		fetcher: fetcher,
		opts:    opts,
		logger:  logger,
		out:     out,
	}
}

// Run builds and persists the report for owner. A failure to list
// repositories aborts the run; per-repository fetch failures are logged and
// recorded as zero traffic.
func (p *Pipeline) Run(ctx context.Context, owner string) ([]report.Entry, error) {
	fmt.Fprintf(p.out, "Fetching repository list for %s ...\n", owner)
	repos, err := p.lister.ListRepos(ctx, owner)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(p.out, "Found %d repositories (non-forks).\n", len(repos))

	entries := make([]report.Entry, 0, len(repos))
	for _, repo := range repos {
		fmt.Fprintf(p.out, "Fetching traffic data for %s ...\n", repo)
		record, err := p.fetcher.FetchClones(ctx, owner, repo)
		p.logFetch(repo, err)
		entries = append(entries, report.NewEntry(repo, record, err))
	}

	if err := report.Write(p.opts.Output, entries, report.WriteOptions{IncludeStatus: p.opts.IncludeStatus}); err != nil {
		return entries, err
	}
	fmt.Fprintf(p.out, "Traffic data saved to %s\n", p.opts.Output)
	return entries, nil
}

func (p *Pipeline) logFetch(repo string, err error) {
	switch github.StatusOf(err) {
	case github.StatusOK:
		p.logger.Debugw("fetched clone traffic", "repo", repo)
	case github.StatusUnavailable:
		p.logger.Debugw("no clone traffic returned", "repo", repo)
	default:
		p.logger.Warnw("error fetching traffic data", "repo", repo, "error", err)
	}
}
