package registry

import (
	"context"
	"fmt"
	"net/url"

	"github.com/namelens/namelens/internal/model"
)

const pypiBaseURL = "https://pypi.org"

// PyPIChecker looks a project name up on PyPI
type PyPIChecker struct {
	client  *Client
	baseURL string
}

// NewPyPIChecker creates a PyPI checker against the public index
func NewPyPIChecker(client *Client) *PyPIChecker {
	return &PyPIChecker{client: client, baseURL: pypiBaseURL}
}

// Namespace identifies this checker
func (c *PyPIChecker) Namespace() string {
	return model.NamespacePyPI
}

// Check queries the JSON API for the exact project name
func (c *PyPIChecker) Check(ctx context.Context, query model.CheckQuery) []model.NamespaceCheck {
	lookupURL := fmt.Sprintf("%s/pypi/%s/json", c.baseURL, url.PathEscape(query.Value))

	var doc struct {
		Info struct {
			Name    string `json:"name"`
			Summary string `json:"summary"`
		} `json:"info"`
	}
	status, err := c.client.GetJSON(ctx, model.NamespacePyPI, lookupURL, &doc)
	if err != nil {
		return []model.NamespaceCheck{unknownCheck(model.NamespacePyPI, query, err)}
	}

	switch {
	case status == 404:
		return []model.NamespaceCheck{statusCheck(model.NamespacePyPI, query,
			model.StatusAvailable, "no project with this name", lookupURL)}
	case status/100 == 2:
		details := "project exists"
		if doc.Info.Summary != "" {
			details = fmt.Sprintf("project exists: %s", doc.Info.Summary)
		}
		return []model.NamespaceCheck{statusCheck(model.NamespacePyPI, query,
			model.StatusTaken, details, lookupURL)}
	default:
		return []model.NamespaceCheck{unknownCheck(model.NamespacePyPI, query,
			fmt.Errorf("unexpected status %d", status))}
	}
}
