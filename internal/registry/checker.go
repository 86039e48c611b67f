package registry

import (
	"context"
	"fmt"

	"github.com/namelens/namelens/internal/model"
)

// Checker performs one namespace's availability lookup. Implementations
// never return an error: anything that prevents a definitive answer comes
// back as a check with status unknown so the run can finish.
type Checker interface {
	Namespace() string
	Check(ctx context.Context, query model.CheckQuery) []model.NamespaceCheck
}

// unknownCheck is the shared failure path for all adapters
func unknownCheck(namespace string, query model.CheckQuery, err error) model.NamespaceCheck {
	return model.NamespaceCheck{
		Namespace: namespace,
		Query:     query,
		Status:    model.StatusUnknown,
		Authority: model.AuthorityAuthoritative,
		Details:   fmt.Sprintf("lookup failed: %v", err),
	}
}

// statusCheck builds a definitive authoritative result
func statusCheck(namespace string, query model.CheckQuery, status model.CheckStatus, details, evidence string) model.NamespaceCheck {
	return model.NamespaceCheck{
		Namespace:   namespace,
		Query:       query,
		Status:      status,
		Authority:   model.AuthorityAuthoritative,
		Details:     details,
		EvidenceRef: evidence,
	}
}

// Build assembles the checkers for the configured namespaces. Unrecognized
// namespace names are skipped; the pipeline reports them as coverage gaps.
func Build(client *Client, cfg model.RegistryConfig) []Checker {
	var checkers []Checker
	for _, ns := range cfg.Namespaces {
		switch ns {
		case model.NamespaceNPM:
			checkers = append(checkers, NewNPMChecker(client))
		case model.NamespacePyPI:
			checkers = append(checkers, NewPyPIChecker(client))
		case model.NamespaceCrates:
			checkers = append(checkers, NewCratesChecker(client))
		case model.NamespaceGitHub:
			checkers = append(checkers, NewGitHubChecker(client))
		case model.NamespaceDockerHub:
			checkers = append(checkers, NewDockerHubChecker(client))
		case model.NamespaceHuggingFace:
			checkers = append(checkers, NewHuggingFaceChecker(client))
		case model.NamespaceDomain:
			checkers = append(checkers, NewDomainChecker(client, cfg.DomainTLDs))
		}
	}
	return checkers
}
