package registry

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/namelens/namelens/internal/model"
)

const dockerHubBaseURL = "https://hub.docker.com"

// DockerHubChecker looks an image name up on Docker Hub. Official images
// live under the library namespace; user images are found via search.
type DockerHubChecker struct {
	client  *Client
	baseURL string
}

// NewDockerHubChecker creates a Docker Hub checker
func NewDockerHubChecker(client *Client) *DockerHubChecker {
	return &DockerHubChecker{client: client, baseURL: dockerHubBaseURL}
}

// Namespace identifies this checker
func (c *DockerHubChecker) Namespace() string {
	return model.NamespaceDockerHub
}

// Check tries the official library image first, then searches user repos
func (c *DockerHubChecker) Check(ctx context.Context, query model.CheckQuery) []model.NamespaceCheck {
	libraryURL := fmt.Sprintf("%s/v2/repositories/library/%s/", c.baseURL, url.PathEscape(query.Value))

	var repo struct {
		Name string `json:"name"`
	}
	status, err := c.client.GetJSON(ctx, model.NamespaceDockerHub, libraryURL, &repo)
	if err != nil {
		return []model.NamespaceCheck{unknownCheck(model.NamespaceDockerHub, query, err)}
	}
	if status/100 == 2 {
		return []model.NamespaceCheck{statusCheck(model.NamespaceDockerHub, query,
			model.StatusTaken, "official library image exists", libraryURL)}
	}
	if status != 404 {
		return []model.NamespaceCheck{unknownCheck(model.NamespaceDockerHub, query,
			fmt.Errorf("unexpected status %d", status))}
	}

	searchURL := fmt.Sprintf("%s/v2/search/repositories/?query=%s&page_size=25",
		c.baseURL, url.QueryEscape(query.Value))

	var search struct {
		Results []struct {
			RepoName string `json:"repo_name"`
		} `json:"results"`
	}
	status, err = c.client.GetJSON(ctx, model.NamespaceDockerHub, searchURL, &search)
	if err != nil {
		return []model.NamespaceCheck{unknownCheck(model.NamespaceDockerHub, query, err)}
	}
	if status/100 != 2 {
		return []model.NamespaceCheck{unknownCheck(model.NamespaceDockerHub, query,
			fmt.Errorf("unexpected status %d", status))}
	}

	for _, result := range search.Results {
		name := result.RepoName
		if idx := strings.LastIndex(name, "/"); idx >= 0 {
			name = name[idx+1:]
		}
		if strings.EqualFold(name, query.Value) {
			return []model.NamespaceCheck{statusCheck(model.NamespaceDockerHub, query,
				model.StatusTaken,
				fmt.Sprintf("repository %s exists", result.RepoName),
				searchURL)}
		}
	}

	return []model.NamespaceCheck{statusCheck(model.NamespaceDockerHub, query,
		model.StatusAvailable, "no exact-name repository found", searchURL)}
}
