package registry

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/namelens/namelens/internal/model"
	"github.com/namelens/namelens/internal/similarity"
	"github.com/namelens/namelens/internal/util"
)

const webSearchBaseURL = "https://html.duckduckgo.com"

// maxWebHits caps how many search results become indicative checks
const maxWebHits = 5

// WebChecker is the indicative adapter: it searches the open web for the
// candidate name and scores each result title against it. Hits are signals
// that someone already uses a similar name, not ownership records.
type WebChecker struct {
	client  *Client
	robots  *util.RobotsChecker
	baseURL string
}

// NewWebChecker creates a web-search checker gated on robots.txt
func NewWebChecker(client *Client, robots *util.RobotsChecker) *WebChecker {
	return &WebChecker{client: client, robots: robots, baseURL: webSearchBaseURL}
}

// Namespace identifies this checker
func (c *WebChecker) Namespace() string {
	return model.NamespaceWeb
}

// Check searches for the candidate and emits one indicative taken check per
// sufficiently similar result title, with the full similarity result
// attached. No similar titles means an indicative available check.
func (c *WebChecker) Check(ctx context.Context, query model.CheckQuery) []model.NamespaceCheck {
	searchURL := fmt.Sprintf("%s/html/?q=%s", c.baseURL, url.QueryEscape(query.Value))

	if c.robots != nil && !c.robots.IsAllowed(ctx, searchURL) {
		return []model.NamespaceCheck{{
			Namespace: model.NamespaceWeb,
			Query:     query,
			Status:    model.StatusUnknown,
			Authority: model.AuthorityIndicative,
			Details:   "search disallowed by robots.txt",
		}}
	}

	status, body, err := c.client.Get(ctx, model.NamespaceWeb, searchURL)
	if err != nil {
		return []model.NamespaceCheck{webUnknown(query, err)}
	}
	if status/100 != 2 {
		return []model.NamespaceCheck{webUnknown(query, fmt.Errorf("unexpected status %d", status))}
	}

	titles := extractResultTitles(string(body))

	var checks []model.NamespaceCheck
	for _, title := range titles {
		result := similarity.ComparePair(query.Value, title, similarity.DefaultWeights)
		if result.Overall < similarity.DefaultThreshold {
			continue
		}
		sim := result
		checks = append(checks, model.NamespaceCheck{
			Namespace:   model.NamespaceWeb,
			Query:       query,
			Status:      model.StatusTaken,
			Authority:   model.AuthorityIndicative,
			Details:     fmt.Sprintf("web result %q resembles the candidate", title),
			Similarity:  &sim,
			EvidenceRef: searchURL,
		})
		if len(checks) >= maxWebHits {
			break
		}
	}

	if len(checks) == 0 {
		checks = append(checks, model.NamespaceCheck{
			Namespace:   model.NamespaceWeb,
			Query:       query,
			Status:      model.StatusAvailable,
			Authority:   model.AuthorityIndicative,
			Details:     fmt.Sprintf("no similar titles among %d search results", len(titles)),
			EvidenceRef: searchURL,
		})
	}

	return checks
}

func webUnknown(query model.CheckQuery, err error) model.NamespaceCheck {
	return model.NamespaceCheck{
		Namespace: model.NamespaceWeb,
		Query:     query,
		Status:    model.StatusUnknown,
		Authority: model.AuthorityIndicative,
		Details:   fmt.Sprintf("search failed: %v", err),
	}
}

// extractResultTitles pulls result link texts out of the search page.
// Result anchors carry the result__a class in the HTML-only frontend.
func extractResultTitles(page string) []string {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil
	}

	var titles []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" && hasClass(n, "result__a") {
			if text := strings.TrimSpace(nodeText(n)); text != "" {
				titles = append(titles, text)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return titles
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		sb.WriteString(nodeText(child))
	}
	return sb.String()
}
