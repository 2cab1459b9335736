package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/olehluchkiv/goanimals/internal/analyzer"
	"github.com/olehluchkiv/goanimals/internal/diagram"
)

func newDiagramCmd(root *rootOptions) *cobra.Command {
	var (
		iface             string
		output            string
		includeUnexported bool
		maxMethods        int
	)

	cmd := &cobra.Command{
		Use:   "diagram [dir]",
		Short: "Print a Mermaid class diagram of the types implementing an interface",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer root.close()

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			logger := root.logger

			opts := analyzer.AnalyzeOptions{
				Interface:         iface,
				IncludeUnexported: includeUnexported,
			}
			result, err := analyzer.Analyze(cmd.Context(), dir, opts, logger)
			if err != nil {
				logger.Error("analysis failed", "error", err)
				return fmt.Errorf("analyzing %s: %w", dir, err)
			}
			result = analyzer.Filter(result, opts)

			if len(result.Relations) == 0 {
				logger.Warn("no implementations found", "interface", iface, "dir", dir)
			}

			diagramOpts := diagram.DefaultDiagramOptions()
			diagramOpts.MaxMethodsPerBox = maxMethods

			if output == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), diagram.GenerateMermaid(result, diagramOpts))
				return err
			}

			// Standalone .mmd files get the %%{init:}%% theme directive.
			diagramOpts.IncludeInit = true
			content := diagram.GenerateMermaid(result, diagramOpts)
			if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
				logger.Error("failed to write output file", "error", err)
				return fmt.Errorf("writing %s: %w", output, err)
			}
			logger.Info("wrote diagram", "path", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&iface, "interface", "Speaker", "interface whose implementations are drawn (empty for all)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the diagram to a file instead of stdout")
	cmd.Flags().BoolVar(&includeUnexported, "include-unexported", false, "include unexported types and interfaces")
	cmd.Flags().IntVar(&maxMethods, "max-methods", 5, "methods shown per interface box (0 for unlimited)")

	return cmd
}
