package registry

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/namelens/namelens/internal/model"
)

const huggingFaceBaseURL = "https://huggingface.co"

// HuggingFaceChecker searches Hugging Face models for the exact name.
// Model IDs are owner-scoped like GitHub repos, so exact-name matches on
// the repo part are what counts.
type HuggingFaceChecker struct {
	client  *Client
	baseURL string
}

// NewHuggingFaceChecker creates a Hugging Face checker
func NewHuggingFaceChecker(client *Client) *HuggingFaceChecker {
	return &HuggingFaceChecker{client: client, baseURL: huggingFaceBaseURL}
}

// Namespace identifies this checker
func (c *HuggingFaceChecker) Namespace() string {
	return model.NamespaceHuggingFace
}

// Check searches the model API for an exact-name match
func (c *HuggingFaceChecker) Check(ctx context.Context, query model.CheckQuery) []model.NamespaceCheck {
	lookupURL := fmt.Sprintf("%s/api/models?search=%s&limit=20",
		c.baseURL, url.QueryEscape(query.Value))

	var models []struct {
		ID string `json:"id"`
	}
	status, err := c.client.GetJSON(ctx, model.NamespaceHuggingFace, lookupURL, &models)
	if err != nil {
		return []model.NamespaceCheck{unknownCheck(model.NamespaceHuggingFace, query, err)}
	}
	if status/100 != 2 {
		return []model.NamespaceCheck{unknownCheck(model.NamespaceHuggingFace, query,
			fmt.Errorf("unexpected status %d", status))}
	}

	for _, m := range models {
		name := m.ID
		if idx := strings.LastIndex(name, "/"); idx >= 0 {
			name = name[idx+1:]
		}
		if strings.EqualFold(name, query.Value) {
			return []model.NamespaceCheck{statusCheck(model.NamespaceHuggingFace, query,
				model.StatusTaken,
				fmt.Sprintf("model %s exists", m.ID),
				fmt.Sprintf("%s/%s", c.baseURL, m.ID))}
		}
	}

	return []model.NamespaceCheck{statusCheck(model.NamespaceHuggingFace, query,
		model.StatusAvailable, "no exact-name model found", lookupURL)}
}
