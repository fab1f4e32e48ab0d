package utils

import (
	"fmt"
	"strings"
)

// WebBaseURL is the base of public GitHub pages
const WebBaseURL = "https://github.com"

// SplitRepoPath splits an "owner/repo" path into its owner and name components
func SplitRepoPath(path string) (owner, name string, err error) {
	parts := strings.Split(strings.Trim(strings.TrimSpace(path), "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository path %q (expected owner/repo)", path)
	}

	return parts[0], parts[1], nil
}

// RepoURL returns the web URL of a repository given its "owner/repo" name
func RepoURL(fullName string) string {
	return WebBaseURL + "/" + fullName
}

// CommitURL returns the web URL of a commit in the given repository
func CommitURL(fullName, sha string) string {
	return RepoURL(fullName) + "/commit/" + sha
}

// UserURL returns the web URL of a user profile
func UserURL(login string) string {
	return WebBaseURL + "/" + login
}

// ParseRepoList trims a list of "owner/repo" entries and drops empty ones
func ParseRepoList(entries []string) []string {
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			result = append(result, entry)
		}
	}
	return result
}
