package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type globalOptions struct {
	charset  string
	relaxed  bool
	verbose  bool
	output   string
	fragment string
}

func rootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:   "goscrape",
		Short: "Extract and verify data in HTML documents",
		Long: `Query HTML files with CSS selectors and print or check what they contain.

FILE is a path on the local file system, or - for standard input.

Examples:
  goscrape text page.html h1
  goscrape attr page.html "meta[name=description]" content
  goscrape links page.html --output yaml
  goscrape check page.html ".price" --numeric
  goscrape text rows.html td --fragment tr
  goscrape tree page.html`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.charset, "charset", "", "Declared character encoding of the input (default utf-8)")
	cmd.PersistentFlags().BoolVar(&opts.relaxed, "relaxed", false, "Treat selectors that match nothing as empty results")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "text", "Output format: text, yaml or json")
	cmd.PersistentFlags().StringVar(&opts.fragment, "fragment", "", "Parse FILE as the contents of this element, e.g. body or tr, instead of a whole document")

	cmd.AddCommand(
		textCmd(opts),
		attrCmd(opts),
		linksCmd(opts),
		imagesCmd(opts),
		checkCmd(opts),
		treeCmd(opts),
	)
	return cmd
}
