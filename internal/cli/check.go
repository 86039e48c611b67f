package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/namelens/namelens/internal/model"
	"github.com/namelens/namelens/internal/pipeline"
)

var (
	outJSON    string
	outMD      string
	timeout    time.Duration
	userAgent  string
	maxBytes   int64
	noCache    bool
	noFooter   bool
	httpProxy  string
	httpsProxy string
	namespaces []string
	domainTLDs []string
	probes     int
	corpusPath string
	tolerance  string

	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <name>",
	Short: "Check one candidate name across registries",
	Long: `Check analyzes a single candidate name:
- Derive spelling, phonetic and confusable variants
- Query each configured namespace concurrently
- Probe common typo variants on the direct-lookup registries
- Classify conflicts and render a green/yellow/red opinion

Example:
  namelens check fastcache
  namelens check fastcache --json report.json --md report.md
  namelens check fastcache --tolerance balanced --tlds com,dev
  namelens check fastcache --llm --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path")
	checkCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path")

	checkCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	checkCmd.Flags().StringVar(&userAgent, "ua", model.DefaultConfig().HTTP.UserAgent, "HTTP User-Agent")
	checkCmd.Flags().Int64Var(&maxBytes, "max-bytes", 1_000_000, "max response bytes to read")
	checkCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh lookups)")
	checkCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable disclaimer footer in reports")
	checkCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	checkCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	checkCmd.Flags().StringSliceVar(&namespaces, "namespaces", nil, "namespaces to check (default: all configured)")
	checkCmd.Flags().StringSliceVar(&domainTLDs, "tlds", nil, "domain TLDs to check (default: com,dev,io)")
	checkCmd.Flags().IntVar(&probes, "variant-probes", 12, "typo variants probed per registry")
	checkCmd.Flags().StringVar(&corpusPath, "corpus", "", "known-marks corpus YAML for offline screening")
	checkCmd.Flags().StringVar(&tolerance, "tolerance", "conservative", "risk tolerance (conservative, balanced, aggressive)")

	checkCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate an LLM commentary note (never affects the verdict)")
	checkCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider")
	checkCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	cfg.Registry.VariantProbes = probes
	cfg.Registry.CorpusPath = corpusPath

	if len(namespaces) > 0 {
		cfg.Registry.Namespaces = namespaces
	}
	if len(domainTLDs) > 0 {
		cfg.Registry.DomainTLDs = domainTLDs
	}

	switch model.RiskTolerance(tolerance) {
	case model.ToleranceConservative, model.ToleranceBalanced, model.ToleranceAggressive:
		cfg.Risk.Tolerance = model.RiskTolerance(tolerance)
	default:
		return nil, fmt.Errorf("unknown tolerance %q (conservative, balanced, aggressive)", tolerance)
	}

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
		if strings.EqualFold(llmProvider, "openai") {
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		}
	}

	return cfg, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	name := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Checking: %s\n", name)
		fmt.Fprintf(os.Stderr, "Namespaces: %s\n", strings.Join(cfg.Registry.Namespaces, ", "))
		fmt.Fprintf(os.Stderr, "Tolerance: %s\n", cfg.Risk.Tolerance)
		fmt.Fprintf(os.Stderr, "Cache: %v\n\n", cfg.Cache.Enabled)
	}

	p := pipeline.NewPipeline(cfg)

	report, err := p.AnalyzeName(ctx, name)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Ran %d checks, %d findings\n", len(report.Checks), len(report.Findings))
		if report.LLM != nil && report.LLM.Enabled {
			fmt.Fprintf(os.Stderr, "Generated note using %s/%s\n", report.LLM.Provider, report.LLM.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}
