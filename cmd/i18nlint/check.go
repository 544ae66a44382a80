package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lifei6671/i18nproject/cmd/i18nlint/checker"
)

var failOnError bool

var errIssuesFound = errors.New("issues found")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report missing, redundant and invalid keys of every project",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&failOnError, "fail", false, "exit with code 1 if any issue found")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	ws, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	defer ws.Close()

	issues := false
	for _, id := range ws.Order {
		res := checker.CheckProject(ws.Projects[id])
		printResult(cmd.OutOrStdout(), res)
		issues = issues || res.HasIssues()
	}
	if failOnError && issues {
		return errIssuesFound
	}
	return nil
}

func printResult(w io.Writer, res *checker.Result) {
	fmt.Fprintf(w, "=== I18N CHECK RESULT [%s] ===\n", res.Project)
	fmt.Fprintln(w, "Languages:", res.Languages)
	fmt.Fprintf(w, "Total keys: %d (%d inherited)\n", len(res.AllKeys), res.Inherited)

	if len(res.InvalidKeys) > 0 {
		fmt.Fprintln(w, "Invalid keys:")
		for _, k := range res.InvalidKeys {
			fmt.Fprintln(w, "  -", k)
		}
	} else {
		fmt.Fprintln(w, "Invalid keys: None")
	}

	for _, lang := range res.Languages {
		fmt.Fprintf(w, "\n--- [%s] ---\n", lang)

		// missing keys
		printKeys(w, "Missing keys", res.MissingKeys[lang])

		// redundant
		printKeys(w, "Redundant keys", res.RedundantKeys[lang])
	}
	fmt.Fprintln(w)
}

func printKeys(w io.Writer, title string, keys []string) {
	if len(keys) == 0 {
		fmt.Fprintf(w, "%s: None\n", title)
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, k := range keys {
		fmt.Fprintln(w, "  -", k)
	}
}
