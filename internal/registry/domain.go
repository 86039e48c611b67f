package registry

import (
	"context"
	"fmt"
	"net/url"

	"github.com/namelens/namelens/internal/model"
)

const rdapBaseURL = "https://rdap.org"

// DomainChecker queries RDAP for domain registrations across the
// configured TLDs. RDAP is the registry-of-record protocol, so answers
// are authoritative without WHOIS scraping.
type DomainChecker struct {
	client  *Client
	baseURL string
	tlds    []string
}

// NewDomainChecker creates an RDAP domain checker over the given TLDs
func NewDomainChecker(client *Client, tlds []string) *DomainChecker {
	if len(tlds) == 0 {
		tlds = []string{"com"}
	}
	return &DomainChecker{client: client, baseURL: rdapBaseURL, tlds: tlds}
}

// Namespace identifies this checker
func (c *DomainChecker) Namespace() string {
	return model.NamespaceDomain
}

// Check queries one RDAP lookup per TLD. 200 means registered, 404 means
// unregistered; the bootstrap service proxies to the right registry.
func (c *DomainChecker) Check(ctx context.Context, query model.CheckQuery) []model.NamespaceCheck {
	checks := make([]model.NamespaceCheck, 0, len(c.tlds))

	for _, tld := range c.tlds {
		domain := fmt.Sprintf("%s.%s", query.Value, tld)
		lookupURL := fmt.Sprintf("%s/domain/%s", c.baseURL, url.PathEscape(domain))
		domainQuery := model.CheckQuery{
			CandidateMark: query.CandidateMark,
			Value:         domain,
			IsVariant:     query.IsVariant,
		}

		var doc struct {
			LDHName string `json:"ldhName"`
		}
		status, err := c.client.GetJSON(ctx, model.NamespaceDomain, lookupURL, &doc)
		if err != nil {
			checks = append(checks, unknownCheck(model.NamespaceDomain, domainQuery, err))
			continue
		}

		switch {
		case status == 404:
			checks = append(checks, statusCheck(model.NamespaceDomain, domainQuery,
				model.StatusAvailable, fmt.Sprintf("%s is unregistered", domain), lookupURL))
		case status/100 == 2:
			checks = append(checks, statusCheck(model.NamespaceDomain, domainQuery,
				model.StatusTaken, fmt.Sprintf("%s is registered", domain), lookupURL))
		default:
			checks = append(checks, unknownCheck(model.NamespaceDomain, domainQuery,
				fmt.Errorf("unexpected status %d", status)))
		}
	}

	return checks
}
