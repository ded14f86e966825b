package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/willibrandon/botlog/formatters"
)

func newStripLinksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strip-links [text...]",
		Short: "Replace <url|label> links with the bare url",
		Long: `Replace chat-style <url|label> links with the bare url.

With arguments, they are joined by spaces and printed once. Without
arguments, stdin is processed line by line.`,
		RunE: runStripLinks,
	}
}

func runStripLinks(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) > 0 {
		_, err := fmt.Fprintln(out, formatters.RemoveAnchorTextFromLinks(strings.Join(args, " ")))
		return err
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if _, err := fmt.Fprintln(out, formatters.RemoveAnchorTextFromLinks(scanner.Text())); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	return nil
}
