package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pcsready/claim-engine/internal/claims"
	"github.com/pcsready/claim-engine/internal/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "claimcheck",
		Short:        "Validate PCS reimbursement claims from the command line",
		Long:         "claimcheck runs a claim record through the PCS validation engine offline:\nfield-level, cross-field and JTR-compliance checks plus confidence scoring.",
		SilenceUsage: true,
	}

	root.AddCommand(newValidateCommand())
	root.AddCommand(newScoreCommand())
	return root
}

func newEngine() (*claims.Engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return claims.NewEngine(cfg.Engine, cfg.Scoring, nil), nil
}

func newValidateCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate <claim.json>",
		Short: "Validate a claim record and print findings and score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read claim file: %w", err)
			}

			var record claims.ClaimRecord
			if err := json.Unmarshal(data, &record); err != nil {
				return fmt.Errorf("failed to parse claim file: %w", err)
			}

			engine, err := newEngine()
			if err != nil {
				return err
			}

			flags := engine.ValidateClaim(record)
			assessment := engine.CalculateConfidenceScore(flags)

			if asJSON {
				out, err := json.MarshalIndent(map[string]interface{}{
					"flags":      flags,
					"assessment": assessment,
				}, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			} else {
				printFindings(cmd, flags, assessment)
			}

			// Errors gate submission; mirror that in the exit code.
			for _, f := range flags {
				if f.Severity == claims.SeverityError {
					return fmt.Errorf("claim has %s-severity findings", claims.SeverityError)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print findings as JSON")
	return cmd
}

func newScoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "score <flags.json>",
		Short: "Compute a confidence assessment from a flag list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read flags file: %w", err)
			}

			var flags []claims.ValidationFlag
			if err := json.Unmarshal(data, &flags); err != nil {
				return fmt.Errorf("failed to parse flags file: %w", err)
			}

			engine, err := newEngine()
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(engine.CalculateConfidenceScore(flags), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func printFindings(cmd *cobra.Command, flags []claims.ValidationFlag, assessment claims.ConfidenceAssessment) {
	out := cmd.OutOrStdout()

	if len(flags) == 0 {
		fmt.Fprintln(out, "No findings.")
	}
	for _, severity := range []claims.Severity{claims.SeverityError, claims.SeverityWarning, claims.SeverityInfo} {
		for _, f := range flags {
			if f.Severity != severity {
				continue
			}
			fmt.Fprintf(out, "[%s] %s: %s\n", f.Severity, f.Field, f.Message)
			if f.SuggestedFix != "" {
				fmt.Fprintf(out, "        fix: %s\n", f.SuggestedFix)
			}
			if f.JTRCitation != "" {
				fmt.Fprintf(out, "        ref: %s\n", f.JTRCitation)
			}
		}
	}

	fmt.Fprintf(out, "\nConfidence: %d/100 (%s)\n", assessment.Overall, assessment.Level)
	for _, rec := range assessment.Recommendations {
		fmt.Fprintf(out, "  - %s\n", rec)
	}
}
