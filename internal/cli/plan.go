package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"planner-backend/internal/assessment"
	"planner-backend/internal/planning"
	"planner-backend/internal/shared/telemetry"
)

type planOptions struct {
	in              string
	inFormat        string
	format          string
	focus           string
	lenientSeverity bool
	out             string
}

func newPlanCmd() *cobra.Command {
	opts := &planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Create an improvement plan from an assessment report",
		Example: `  planctl plan --in assessment.json
  planctl plan --in assessment.yaml --focus security --format yaml --out plan.yaml
  cat assessment.json | planctl plan --in -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.in, "in", "", "assessment file, or - for stdin (required)")
	cmd.Flags().StringVar(&opts.inFormat, "in-format", "", "assessment format: json or yaml (default: from file extension)")
	cmd.Flags().StringVar(&opts.format, "format", "json", "output format: json or yaml")
	cmd.Flags().StringVar(&opts.focus, "focus", "all", "focus area: all, critical, security, tests, dependencies, code_quality, documentation, architecture")
	cmd.Flags().BoolVar(&opts.lenientSeverity, "lenient-severity", false, "plan unknown severities as medium instead of failing")
	cmd.Flags().StringVar(&opts.out, "out", "", "write the plan to a file instead of stdout")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func runPlan(cmd *cobra.Command, opts *planOptions) error {
	outFormat, err := assessment.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	focus, err := planning.ParseFocus(opts.focus)
	if err != nil {
		return err
	}
	inFormat := assessment.FormatFromPath(opts.in)
	if opts.inFormat != "" {
		if inFormat, err = assessment.ParseFormat(opts.inFormat); err != nil {
			return err
		}
	}

	var r io.Reader = cmd.InOrStdin()
	if opts.in != "-" {
		f, err := os.Open(opts.in)
		if err != nil {
			return fmt.Errorf("open assessment: %w", err)
		}
		defer f.Close()
		r = f
	}

	a, err := assessment.Decode(r, inFormat)
	if err != nil {
		return err
	}
	a.Findings = planning.FilterFindings(a.Findings, focus)

	planner := &planning.Planner{SeverityPolicy: planning.SeverityReject}
	if opts.lenientSeverity {
		planner.SeverityPolicy = planning.SeverityFallbackMedium
		planner.OnSeverityFallback = func(f planning.Finding) {
			telemetry.Warn("plan.severity_fallback", map[string]any{
				"finding_id": f.ID,
				"severity":   string(f.Severity),
			})
		}
	}
	report, err := planner.CreatePlan(a)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := writeValue(w, report, outFormat); err != nil {
		return err
	}

	telemetry.Info("plan.created", map[string]any{
		"project":      report.ProjectName,
		"focus":        string(focus),
		"items":        report.TotalItems,
		"milestones":   len(report.Milestones),
		"total_effort": report.TotalEffort,
	})
	return nil
}
