package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	i18n "github.com/lifei6671/i18nproject"
)

var (
	projectID       string
	keyPrefix       string
	ignoreCase      bool
	uniqueGenerated bool
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the entries of a project",
	Long: `Lists the visible entries of a project with their provenance and the
development language text.

Examples:
  i18nlint keys -p app
  i18nlint keys -p app --prefix User. -i`,
	Args: cobra.NoArgs,
	RunE: runKeys,
}

var genkeyCmd = &cobra.Command{
	Use:   "genkey <text>...",
	Short: "Derive a translation key from text",
	Long: `Derives a translation key from free text. With --unique the key is made
unique within the project given by -p.

Examples:
  i18nlint genkey "Save changes"
  i18nlint genkey --unique -p app "Save changes"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenkey,
}

func init() {
	rootCmd.AddCommand(keysCmd, genkeyCmd)

	keysCmd.Flags().StringVarP(&projectID, "project", "p", "", "project id")
	keysCmd.Flags().StringVar(&keyPrefix, "prefix", "", "only keys starting with prefix")
	keysCmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "match prefix case insensitively")
	_ = keysCmd.MarkFlagRequired("project")

	genkeyCmd.Flags().BoolVar(&uniqueGenerated, "unique", false, "avoid keys already used by the project")
	genkeyCmd.Flags().StringVarP(&projectID, "project", "p", "", "project id, required with --unique")
}

func runKeys(cmd *cobra.Command, _ []string) error {
	ws, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	defer ws.Close()

	p, err := ws.Project(projectID)
	if err != nil {
		return err
	}
	dev := p.DevelopmentLanguage()

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, e := range p.Entries(keyPrefix, !ignoreCase) {
		text, _ := e.Text(dev)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Key(), e.Type(), text)
	}
	return tw.Flush()
}

func runGenkey(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if !uniqueGenerated {
		fmt.Fprintln(cmd.OutOrStdout(), i18n.GenerateKey(text))
		return nil
	}
	if projectID == "" {
		return fmt.Errorf("--unique requires --project")
	}

	ws, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	defer ws.Close()

	p, err := ws.Project(projectID)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), p.GenerateNewKey(text))
	return nil
}
