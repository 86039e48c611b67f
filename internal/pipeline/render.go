package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/namelens/namelens/internal/model"
)

// Renderer writes reports as JSON, Markdown, CSV and terminal summaries
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes the human-readable report
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var sb strings.Builder
	opinion := report.Opinion

	fmt.Fprintf(&sb, "# Name Check: %s\n\n", report.CandidateMark)
	fmt.Fprintf(&sb, "**Verdict: %s** - %s\n\n", strings.ToUpper(string(opinion.Tier)), opinion.Summary)
	fmt.Fprintf(&sb, "Checked at: %s\n\n", report.CheckedAt.Format("2006-01-02 15:04 UTC"))

	sb.WriteString("## Why\n\n")
	for _, reason := range opinion.Reasons {
		fmt.Fprintf(&sb, "- %s\n", reason)
	}
	sb.WriteString("\n")

	if opinion.RiskNarrative != "" {
		sb.WriteString("## Risk narrative\n\n")
		sb.WriteString(opinion.RiskNarrative)
		sb.WriteString("\n\n")
	}

	sb.WriteString("## Score breakdown\n\n")
	fmt.Fprintf(&sb, "Overall: **%d/100** (advisory bands: green >= %d, yellow >= %d)\n\n",
		opinion.ScoreBreakdown.OverallScore,
		opinion.ScoreBreakdown.TierThresholds.Green,
		opinion.ScoreBreakdown.TierThresholds.Yellow)
	sb.WriteString("| Component | Score | Weight | Details |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, row := range []struct {
		name string
		sub  model.SubScore
	}{
		{"Namespace availability", opinion.ScoreBreakdown.NamespaceAvailability},
		{"Coverage completeness", opinion.ScoreBreakdown.CoverageCompleteness},
		{"Conflict severity", opinion.ScoreBreakdown.ConflictSeverity},
		{"Domain availability", opinion.ScoreBreakdown.DomainAvailability},
	} {
		fmt.Fprintf(&sb, "| %s | %d | %d | %s |\n", row.name, row.sub.Score, row.sub.Weight, row.sub.Details)
	}
	sb.WriteString("\n")

	sb.WriteString("## Top factors\n\n")
	for _, factor := range opinion.TopFactors {
		fmt.Fprintf(&sb, "- **%s** (%s): %s\n", factor.Name, factor.Weight, factor.Statement)
	}
	sb.WriteString("\n")

	if len(report.Findings) > 0 {
		sb.WriteString("## Findings\n\n")
		sb.WriteString("| Kind | Severity | Score | Summary |\n")
		sb.WriteString("|---|---|---|---|\n")
		for _, finding := range report.Findings {
			fmt.Fprintf(&sb, "| %s | %s | %d | %s |\n",
				finding.Kind, finding.Severity, finding.Score, finding.Summary)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Checks\n\n")
	sb.WriteString("| Namespace | Queried | Status | Authority | Details |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, check := range report.Checks {
		value := check.Query.Value
		if check.Query.IsVariant {
			value += " (variant)"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n",
			check.Namespace, value, check.Status, check.Authority, check.Details)
	}
	sb.WriteString("\n")

	if len(opinion.UncheckedNamespaces) > 0 {
		fmt.Fprintf(&sb, "Unchecked namespaces: %s\n\n", strings.Join(opinion.UncheckedNamespaces, ", "))
	}

	sb.WriteString("## Next actions\n\n")
	for _, action := range opinion.NextActions {
		if action.URL != "" {
			fmt.Fprintf(&sb, "- [%s] %s (%s)\n", action.Urgency, action.Action, action.URL)
		} else {
			fmt.Fprintf(&sb, "- [%s] %s\n", action.Urgency, action.Action)
		}
	}
	sb.WriteString("\n")

	if report.LLM != nil && report.LLM.Enabled && report.LLM.NoteMD != "" {
		fmt.Fprintf(&sb, "## Commentary (%s, non-binding)\n\n%s\n\n", report.LLM.Provider, report.LLM.NoteMD)
	}

	if r.includeFooter {
		fmt.Fprintf(&sb, "---\n\n%s\n", opinion.Disclaimer)
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderCSV writes one summary row per report, for batch runs
func (r *Renderer) RenderCSV(reports []*model.Report, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"name", "tier", "overall_score", "findings", "unknown_checks", "summary"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, report := range reports {
		unknown := 0
		for _, check := range report.Checks {
			if check.Status == model.StatusUnknown {
				unknown++
			}
		}
		row := []string{
			report.CandidateMark,
			string(report.Opinion.Tier),
			strconv.Itoa(report.Opinion.ScoreBreakdown.OverallScore),
			strconv.Itoa(len(report.Findings)),
			strconv.Itoa(unknown),
			report.Opinion.Summary,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// RenderSummary prints the terminal verdict
func (r *Renderer) RenderSummary(w io.Writer, report *model.Report) {
	opinion := report.Opinion

	fmt.Fprintf(w, "\n%s  %s\n", tierBadge(opinion.Tier), opinion.Summary)
	fmt.Fprintf(w, "Score: %d/100\n\n", opinion.ScoreBreakdown.OverallScore)

	for _, reason := range opinion.Reasons {
		fmt.Fprintf(w, "  - %s\n", reason)
	}

	if len(opinion.ClosestConflicts) > 0 {
		fmt.Fprintln(w, "\nClosest conflicts:")
		for _, conflict := range opinion.ClosestConflicts {
			fmt.Fprintf(w, "  - %s\n", conflict)
		}
	}

	fmt.Fprintln(w, "\nNext actions:")
	for _, action := range opinion.NextActions {
		fmt.Fprintf(w, "  [%s] %s\n", action.Urgency, action.Action)
	}

	if r.includeFooter {
		fmt.Fprintf(w, "\n%s\n", opinion.Disclaimer)
	}
}

func tierBadge(tier model.Tier) string {
	switch tier {
	case model.TierGreen:
		return "GREEN"
	case model.TierYellow:
		return "YELLOW"
	case model.TierRed:
		return "RED"
	default:
		return strings.ToUpper(string(tier))
	}
}
