package cli

import (
	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score commands",
	}

	cmd.AddCommand(newScoreSubmitCmd())

	return cmd
}

func newScoreSubmitCmd() *cobra.Command {
	var score int64

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a score for the logged in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int64{"score": score}
			var result MessageResult

			if err := client.Post("/api/submit_score", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&score, "score", 0, "Score value (required)")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}
