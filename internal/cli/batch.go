package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/namelens/namelens/internal/model"
	"github.com/namelens/namelens/internal/pipeline"
	"github.com/namelens/namelens/internal/worker"
)

var (
	batchConcurrency int
	outputDir        string
	batchTimeout     time.Duration
	csvPath          string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Check a shortlist of names from a file in parallel",
	Long: `Batch reads candidate names from a file (one per line, #-comments
allowed) and analyzes them concurrently. Each name gets its own JSON and
Markdown report in the output directory, plus one CSV summary row.

Example:
  namelens batch shortlist.txt
  namelens batch shortlist.txt --concurrency 8 --output-dir ./reports
  namelens batch shortlist.txt --csv summary.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", model.DefaultConfig().Concurrency.BatchWorkers, "number of names analyzed in parallel")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./namelens-reports", "output directory for per-name reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 15*time.Minute, "total timeout for the batch")
	batchCmd.Flags().StringVar(&csvPath, "csv", "", "CSV summary path (default: <output-dir>/summary.csv)")

	batchCmd.Flags().StringVar(&userAgent, "ua", model.DefaultConfig().HTTP.UserAgent, "HTTP User-Agent")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh lookups)")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable disclaimer footer in reports")
	batchCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	batchCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
	batchCmd.Flags().StringSliceVar(&namespaces, "namespaces", nil, "namespaces to check (default: all configured)")
	batchCmd.Flags().StringSliceVar(&domainTLDs, "tlds", nil, "domain TLDs to check (default: com,dev,io)")
	batchCmd.Flags().IntVar(&probes, "variant-probes", 12, "typo variants probed per registry")
	batchCmd.Flags().StringVar(&corpusPath, "corpus", "", "known-marks corpus YAML for offline screening")
	batchCmd.Flags().StringVar(&tolerance, "tolerance", "conservative", "risk tolerance (conservative, balanced, aggressive)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.HTTP.Timeout = model.DefaultConfig().HTTP.Timeout
	cfg.Concurrency.BatchWorkers = batchConcurrency

	fmt.Fprintf(os.Stderr, "Input file: %s\n", file)
	fmt.Fprintf(os.Stderr, "Workers:    %d\n", batchConcurrency)
	fmt.Fprintf(os.Stderr, "Output dir: %s\n\n", outputDir)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p := pipeline.NewPipeline(cfg)
	processor := worker.NewBatchProcessor(p, batchConcurrency)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	// Completion order is arbitrary; report in input-stable name order
	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	var reports []*model.Report
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", result.Name, result.Error)
			continue
		}

		slug := sanitizeFilename(result.Name)
		if err := renderer.RenderJSON(result.Report, filepath.Join(outputDir, slug+".json")); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: write JSON: %v\n", result.Name, err)
			continue
		}
		if err := renderer.RenderMarkdown(result.Report, filepath.Join(outputDir, slug+".md")); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: write Markdown: %v\n", result.Name, err)
			continue
		}

		successCount++
		reports = append(reports, result.Report)
		fmt.Fprintf(os.Stderr, "%-6s %s (%d/100)\n",
			strings.ToUpper(string(result.Report.Opinion.Tier)),
			result.Name,
			result.Report.Opinion.ScoreBreakdown.OverallScore)
	}

	summaryPath := csvPath
	if summaryPath == "" {
		summaryPath = filepath.Join(outputDir, "summary.csv")
	}
	if err := renderer.RenderCSV(reports, summaryPath); err != nil {
		return fmt.Errorf("write CSV summary: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\nTotal: %d  Success: %d  Failures: %d\n", len(results), successCount, failureCount)
	fmt.Fprintf(os.Stderr, "Summary: %s\n", summaryPath)

	return nil
}

// sanitizeFilename maps a candidate name to a safe file slug
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_", " ", "-",
	)
	s = replacer.Replace(s)
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}
