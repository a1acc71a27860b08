package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/heathj/goscrape/expect"
	"github.com/heathj/goscrape/scrape"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func textCmd(opts *globalOptions) *cobra.Command {
	var each bool
	cmd := &cobra.Command{
		Use:   "text FILE SELECTOR",
		Short: "Print the text of the matching elements",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := query(cmd, opts, args[0], args[1])
			if err != nil {
				return err
			}
			if each {
				return render(cmd.OutOrStdout(), opts.output, found.EachText())
			}
			return render(cmd.OutOrStdout(), opts.output, found.Text())
		},
	}
	cmd.Flags().BoolVar(&each, "each", false, "Print one line per element")
	return cmd
}

func attrCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "attr FILE SELECTOR KEY",
		Short: "Print the KEY attribute of the matching elements",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := query(cmd, opts, args[0], args[1])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, found.EachAttribute(args[2]))
		},
	}
}

func linksCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "links FILE [SELECTOR]",
		Short: "Print link text and href of the matching elements (default: a)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := query(cmd, opts, args[0], selectorArg(args, "a[href]"))
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, found.EachLink())
		},
	}
}

func imagesCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "images FILE [SELECTOR]",
		Short: "Print alt text and src of the matching images (default: img)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := query(cmd, opts, args[0], selectorArg(args, "img"))
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.output, found.EachImage())
		},
	}
}

func checkCmd(opts *globalOptions) *cobra.Command {
	var (
		present, absent, numeric bool
		contains, equals         string
	)
	cmd := &cobra.Command{
		Use:   "check FILE SELECTOR",
		Short: "Verify the matching elements and exit non-zero on failure",
		Long: `Run one or more checks against the elements matching SELECTOR.

Each failing check prints FAIL with its diagnostic; the command exits
non-zero if any check failed. Lookups are always relaxed so that --absent
can be checked.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			local := *opts
			local.relaxed = true
			found, err := query(cmd, &local, args[0], args[1])
			if err != nil {
				return err
			}

			var checks []check
			if present {
				checks = append(checks, check{"present", expect.That(found).ToBePresent})
			}
			if absent {
				checks = append(checks, check{"absent", expect.That(found).ToBeNotPresent})
			}
			if numeric {
				checks = append(checks, check{"numeric", expect.That(found).IsNumeric})
			}
			if cmd.Flags().Changed("contains") {
				checks = append(checks, check{"contains " + contains, func() error {
					return expect.That(found.Text()).ToContain(contains)
				}})
			}
			if cmd.Flags().Changed("equals") {
				checks = append(checks, check{"equals " + equals, func() error {
					return expect.That(found.Text()).ToBe(equals)
				}})
			}
			if len(checks) == 0 {
				return errors.New("no checks given; use --present, --absent, --numeric, --contains or --equals")
			}
			return runChecks(cmd.OutOrStdout(), args[1], checks)
		},
	}
	cmd.Flags().BoolVar(&present, "present", false, "At least one element matches")
	cmd.Flags().BoolVar(&absent, "absent", false, "No element matches")
	cmd.Flags().BoolVar(&numeric, "numeric", false, "The combined text contains a digit")
	cmd.Flags().StringVar(&contains, "contains", "", "The combined text contains this string")
	cmd.Flags().StringVar(&equals, "equals", "", "The combined text equals this string")
	return cmd
}

func treeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tree FILE",
		Short: "Print the parsed node tree, one node per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := load(cmd, opts, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), doc.Node().String())
			return err
		},
	}
}

type check struct {
	name string
	run  func() error
}

func runChecks(w io.Writer, selector string, checks []check) error {
	pass, fail := color.New(color.FgGreen).SprintFunc(), color.New(color.FgRed).SprintFunc()
	failed := 0
	for _, c := range checks {
		err := c.run()
		if err == nil {
			fmt.Fprintf(w, "%s %s %s\n", pass("PASS"), selector, c.name)
			continue
		}
		var af *expect.AssertionFailure
		if !errors.As(err, &af) {
			return err
		}
		failed++
		fmt.Fprintf(w, "%s %s %s\n%s\n", fail("FAIL"), selector, c.name, af.Error())
	}
	if failed > 0 {
		return errors.Errorf("%d of %d checks failed", failed, len(checks))
	}
	return nil
}

func selectorArg(args []string, def string) string {
	if len(args) > 1 {
		return args[1]
	}
	return def
}

func load(cmd *cobra.Command, opts *globalOptions, path string) (*scrape.Doc, error) {
	cfg := scrape.Config{Charset: opts.charset, Relaxed: opts.relaxed, Debug: opts.verbose}
	if opts.fragment == "" {
		if path == "-" {
			return scrape.HTMLDocument(cmd.InOrStdin(), cfg, nil)
		}
		return scrape.HTMLFile(path, cfg, nil)
	}

	in := cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", path)
		}
		defer f.Close()
		in = f
	}
	return scrape.HTMLFragment(in, opts.fragment, cfg, nil)
}

func query(cmd *cobra.Command, opts *globalOptions, path, selector string) (scrape.Elements, error) {
	doc, err := load(cmd, opts, path)
	if err != nil {
		return nil, err
	}
	return doc.FindAll(selector)
}

func render(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		out, err := yaml.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		_, err = w.Write(out)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "encoding json")
	case "text", "":
		_, err := io.WriteString(w, plain(v))
		return err
	}
	return errors.Errorf("unknown output format %q", format)
}

func plain(v any) string {
	switch v := v.(type) {
	case string:
		return v + "\n"
	case []string:
		if len(v) == 0 {
			return ""
		}
		return strings.Join(v, "\n") + "\n"
	case map[string]string:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var sb strings.Builder
		for _, k := range keys {
			sb.WriteString(k + "\t" + v[k] + "\n")
		}
		return sb.String()
	}
	return fmt.Sprintf("%v\n", v)
}
