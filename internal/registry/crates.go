package registry

import (
	"context"
	"fmt"
	"net/url"

	"github.com/namelens/namelens/internal/model"
)

const cratesBaseURL = "https://crates.io"

// CratesChecker looks a crate name up on crates.io
type CratesChecker struct {
	client  *Client
	baseURL string
}

// NewCratesChecker creates a crates.io checker
func NewCratesChecker(client *Client) *CratesChecker {
	return &CratesChecker{client: client, baseURL: cratesBaseURL}
}

// Namespace identifies this checker
func (c *CratesChecker) Namespace() string {
	return model.NamespaceCrates
}

// Check queries the crates API for the exact crate name
func (c *CratesChecker) Check(ctx context.Context, query model.CheckQuery) []model.NamespaceCheck {
	lookupURL := fmt.Sprintf("%s/api/v1/crates/%s", c.baseURL, url.PathEscape(query.Value))

	var doc struct {
		Crate struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		} `json:"crate"`
	}
	status, err := c.client.GetJSON(ctx, model.NamespaceCrates, lookupURL, &doc)
	if err != nil {
		return []model.NamespaceCheck{unknownCheck(model.NamespaceCrates, query, err)}
	}

	switch {
	case status == 404:
		return []model.NamespaceCheck{statusCheck(model.NamespaceCrates, query,
			model.StatusAvailable, "no crate with this name", lookupURL)}
	case status/100 == 2:
		details := "crate exists"
		if doc.Crate.Description != "" {
			details = fmt.Sprintf("crate exists: %s", doc.Crate.Description)
		}
		return []model.NamespaceCheck{statusCheck(model.NamespaceCrates, query,
			model.StatusTaken, details, lookupURL)}
	default:
		return []model.NamespaceCheck{unknownCheck(model.NamespaceCrates, query,
			fmt.Errorf("unexpected status %d", status))}
	}
}
