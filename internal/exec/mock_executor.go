package exec

import (
	"context"
	"fmt"
	"strings"
)

// MockExecutor simulates command execution for testing.
type MockExecutor struct {
	// Commands maps command patterns to responses.
	// Key format: "command arg1 arg2"
	Commands map[string]*CommandResult

	// DefaultResult is returned when no specific command matches.
	DefaultResult *CommandResult

	// ExecutedCommands tracks all commands that were executed.
	ExecutedCommands []ExecutedCommand
}

// CommandResult represents the result of a command execution.
type CommandResult struct {
	Stdout string
	Stderr string
	Error  error
}

// ExecutedCommand tracks a command that was executed.
type ExecutedCommand struct {
	Name string
	Args []string
}

// NewMockExecutor creates a new mock executor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Commands:         make(map[string]*CommandResult),
		ExecutedCommands: make([]ExecutedCommand, 0),
	}
}

// Execute simulates command execution by looking up the command in the Commands map.
func (m *MockExecutor) Execute(ctx context.Context, name string, args ...string) (string, string, error) {
	m.ExecutedCommands = append(m.ExecutedCommands, ExecutedCommand{
		Name: name,
		Args: args,
	})

	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	cmdKey := m.buildCommandKey(name, args)

	if result, ok := m.Commands[cmdKey]; ok {
		return result.Stdout, result.Stderr, result.Error
	}

	// Look for pattern match (allows wildcards)
	for pattern, result := range m.Commands {
		if m.matchesPattern(cmdKey, pattern) {
			return result.Stdout, result.Stderr, result.Error
		}
	}

	if m.DefaultResult != nil {
		return m.DefaultResult.Stdout, m.DefaultResult.Stderr, m.DefaultResult.Error
	}

	return "", "", fmt.Errorf("mock executor: no result configured for command: %s", cmdKey)
}

// AddCommand registers a command response.
func (m *MockExecutor) AddCommand(name string, args []string, stdout, stderr string, err error) {
	cmdKey := m.buildCommandKey(name, args)
	m.Commands[cmdKey] = &CommandResult{
		Stdout: stdout,
		Stderr: stderr,
		Error:  err,
	}
}

// AddGHRepoList registers a gh repo list response for owner, one name per line.
// The jq filter is matched by wildcard since it contains spaces.
func (m *MockExecutor) AddGHRepoList(owner string, names ...string) {
	stdout := strings.Join(names, "\n")
	if len(names) > 0 {
		stdout += "\n"
	}
	m.Commands[m.repoListPattern(owner)] = &CommandResult{Stdout: stdout}
}

// AddGHRepoListError registers a failing gh repo list command.
func (m *MockExecutor) AddGHRepoListError(owner, stderr string, err error) {
	m.Commands[m.repoListPattern(owner)] = &CommandResult{Stderr: stderr, Error: err}
}

// AddGHTrafficClones registers the raw output of a clone traffic request.
func (m *MockExecutor) AddGHTrafficClones(owner, repo, output string) {
	m.AddCommand("gh", trafficArgs(owner, repo), output, "", nil)
}

// AddGHTrafficClonesError registers a failing clone traffic request.
func (m *MockExecutor) AddGHTrafficClonesError(owner, repo, stderr string, err error) {
	m.AddCommand("gh", trafficArgs(owner, repo), "", stderr, err)
}

// CommandsFor returns the executed commands whose arguments start with prefix.
func (m *MockExecutor) CommandsFor(prefix ...string) []ExecutedCommand {
	var matched []ExecutedCommand
	for _, c := range m.ExecutedCommands {
		if len(c.Args) < len(prefix) {
			continue
		}
		ok := true
		for i, p := range prefix {
			if c.Args[i] != p {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, c)
		}
	}
	return matched
}

// Reset clears all command history and configurations.
func (m *MockExecutor) Reset() {
	m.Commands = make(map[string]*CommandResult)
	m.ExecutedCommands = make([]ExecutedCommand, 0)
	m.DefaultResult = nil
}

func (m *MockExecutor) repoListPattern(owner string) string {
	return "gh repo list " + owner + " --json name,isFork -q *"
}

func trafficArgs(owner, repo string) []string {
	return []string{"api", fmt.Sprintf("repos/%s/%s/traffic/clones", owner, repo), "--jq", "."}
}

// buildCommandKey creates a string key from command name and args.
func (m *MockExecutor) buildCommandKey(name string, args []string) string {
	parts := append([]string{name}, args...)
	return strings.Join(parts, " ")
}

// matchesPattern checks if a command matches a pattern. A "*" segment matches
// one argument, a trailing "*" matches the rest of the command.
func (m *MockExecutor) matchesPattern(cmd, pattern string) bool {
	if !strings.Contains(pattern, "*") {
		return cmd == pattern
	}

	patternParts := strings.Split(pattern, " ")
	cmdParts := strings.Split(cmd, " ")

	last := len(patternParts) - 1
	if patternParts[last] == "*" && len(cmdParts) > last {
		cmdParts = append(cmdParts[:last], strings.Join(cmdParts[last:], " "))
	}

	if len(patternParts) != len(cmdParts) {
		return false
	}

	for i, pp := range patternParts {
		if pp == "*" {
			continue
		}
		if pp != cmdParts[i] {
			return false
		}
	}

	return true
}
