package registry

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/namelens/namelens/internal/model"
)

const githubBaseURL = "https://api.github.com"

// GitHubChecker searches GitHub for repositories with the exact name.
// Repositories are owner-scoped, so "taken" here means an exact-name repo
// exists somewhere, which is the collision that matters for discoverability.
type GitHubChecker struct {
	client  *Client
	baseURL string
}

// NewGitHubChecker creates a GitHub repo-name checker
func NewGitHubChecker(client *Client) *GitHubChecker {
	return &GitHubChecker{client: client, baseURL: githubBaseURL}
}

// Namespace identifies this checker
func (c *GitHubChecker) Namespace() string {
	return model.NamespaceGitHub
}

// Check searches repositories by name and looks for an exact match
func (c *GitHubChecker) Check(ctx context.Context, query model.CheckQuery) []model.NamespaceCheck {
	lookupURL := fmt.Sprintf("%s/search/repositories?q=%s+in:name&per_page=10",
		c.baseURL, url.QueryEscape(query.Value))

	var doc struct {
		TotalCount int `json:"total_count"`
		Items      []struct {
			Name     string `json:"name"`
			FullName string `json:"full_name"`
			HTMLURL  string `json:"html_url"`
		} `json:"items"`
	}
	status, err := c.client.GetJSON(ctx, model.NamespaceGitHub, lookupURL, &doc)
	if err != nil {
		return []model.NamespaceCheck{unknownCheck(model.NamespaceGitHub, query, err)}
	}
	if status/100 != 2 {
		// Search is rate-limited hard for anonymous clients; 403 is common
		return []model.NamespaceCheck{unknownCheck(model.NamespaceGitHub, query,
			fmt.Errorf("unexpected status %d", status))}
	}

	for _, item := range doc.Items {
		if strings.EqualFold(item.Name, query.Value) {
			return []model.NamespaceCheck{statusCheck(model.NamespaceGitHub, query,
				model.StatusTaken,
				fmt.Sprintf("repository %s exists", item.FullName),
				item.HTMLURL)}
		}
	}

	return []model.NamespaceCheck{statusCheck(model.NamespaceGitHub, query,
		model.StatusAvailable,
		fmt.Sprintf("no exact-name repository among %d search hits", doc.TotalCount),
		lookupURL)}
}
