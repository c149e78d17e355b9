package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kyleking/gh-clonestats/internal/exec"
)

// nonForkFilter selects the names of repositories that are not forks.
const nonForkFilter = ".[] | select(.isFork == false) | .name"

var (
	// ErrNoTraffic is returned when the API answers with an empty or null document.
	ErrNoTraffic = errors.New("no traffic data")
	// ErrMalformedTraffic is returned when the traffic document is not valid JSON.
	ErrMalformedTraffic = errors.New("malformed traffic data")
)

// Client talks to GitHub through the gh CLI.
type Client struct {
	executor  exec.CommandExecutor
	repoLimit int
}

// NewClient creates a client that runs gh through executor. A repoLimit of
// zero leaves the gh repo list default in place.
func NewClient(executor exec.CommandExecutor, repoLimit int) *Client {
	return &Client{executor: executor, repoLimit: repoLimit}
}

// ListRepos returns the names of the non-fork repositories owned by owner,
// in the order gh reports them.
func (c *Client) ListRepos(ctx context.Context, owner string) ([]string, error) {
	args := []string{"repo", "list", owner, "--json", "name,isFork", "-q", nonForkFilter}
	if c.repoLimit > 0 {
		args = append(args, "--limit", strconv.Itoa(c.repoLimit))
	}

	out, err := exec.Run(ctx, c.executor, "gh", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories for %s: %w", owner, err)
	}

	repos := make([]string, 0)
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			repos = append(repos, name)
		}
	}
	return repos, nil
}

// FetchClones returns the clone traffic for owner/repo.
func (c *Client) FetchClones(ctx context.Context, owner, repo string) (*TrafficRecord, error) {
	path := fmt.Sprintf("repos/%s/%s/traffic/clones", owner, repo)
	out, err := exec.Run(ctx, c.executor, "gh", "api", path, "--jq", ".")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clone traffic for %s: %w", repo, err)
	}

	out = strings.TrimSpace(out)
	if out == "" || strings.EqualFold(out, "null") {
		return nil, ErrNoTraffic
	}

	var record TrafficRecord
	if err := json.Unmarshal([]byte(out), &record); err != nil {
		return nil, fmt.Errorf("%w for %s: %v", ErrMalformedTraffic, repo, err)
	}
	if record.Clones == nil {
		record.Clones = []CloneBucket{}
	}
	return &record, nil
}

// StatusOf classifies the error returned by FetchClones.
func StatusOf(err error) FetchStatus {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrNoTraffic):
		return StatusUnavailable
	default:
		return StatusError
	}
}
