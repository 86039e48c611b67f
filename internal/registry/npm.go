package registry

import (
	"context"
	"fmt"
	"net/url"

	"github.com/namelens/namelens/internal/model"
)

const npmBaseURL = "https://registry.npmjs.org"

// NPMChecker looks a package name up in the public npm registry
type NPMChecker struct {
	client  *Client
	baseURL string
}

// NewNPMChecker creates an npm checker against the public registry
func NewNPMChecker(client *Client) *NPMChecker {
	return &NPMChecker{client: client, baseURL: npmBaseURL}
}

// Namespace identifies this checker
func (c *NPMChecker) Namespace() string {
	return model.NamespaceNPM
}

// Check queries the registry document for the exact package name.
// 200 means taken, 404 means available, anything else is unknown.
func (c *NPMChecker) Check(ctx context.Context, query model.CheckQuery) []model.NamespaceCheck {
	lookupURL := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(query.Value))

	var doc struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	status, err := c.client.GetJSON(ctx, model.NamespaceNPM, lookupURL, &doc)
	if err != nil {
		return []model.NamespaceCheck{unknownCheck(model.NamespaceNPM, query, err)}
	}

	switch {
	case status == 404:
		return []model.NamespaceCheck{statusCheck(model.NamespaceNPM, query,
			model.StatusAvailable, "no package with this name", lookupURL)}
	case status/100 == 2:
		details := "package exists"
		if doc.Description != "" {
			details = fmt.Sprintf("package exists: %s", doc.Description)
		}
		return []model.NamespaceCheck{statusCheck(model.NamespaceNPM, query,
			model.StatusTaken, details, lookupURL)}
	default:
		return []model.NamespaceCheck{unknownCheck(model.NamespaceNPM, query,
			fmt.Errorf("unexpected status %d", status))}
	}
}
