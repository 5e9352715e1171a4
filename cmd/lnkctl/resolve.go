package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var resolveAll bool

func init() {
	rootCmd.AddCommand(newResolveCmd())
}

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <file>",
		Short: "Print the path a shell link points to",
		Long: `The resolve command combines the path fragments stored in a shell link
and prints the first candidate that exists on this machine. Candidates are
tried in order: local base path plus suffix, local base path, working
directory plus relative path, network share plus suffix, network share.

Example:
  lnkctl resolve Notepad.lnk
  lnkctl resolve Notepad.lnk --all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(args)
		},
	}
	cmd.Flags().BoolVar(&resolveAll, "all", false, "List every candidate without checking existence")
	return cmd
}

// resolveResult is the structured output of the resolve command.
type resolveResult struct {
	File       string   `json:"file" yaml:"file"`
	Target     string   `json:"target,omitempty" yaml:"target,omitempty"`
	Candidates []string `json:"candidates,omitempty" yaml:"candidates,omitempty"`
}

var errNoTarget = errors.New("no candidate target exists")

func runResolve(args []string) error {
	link, err := openLink(args[0])
	if err != nil {
		return err
	}

	res := resolveResult{File: link.FileName()}
	if resolveAll {
		res.Candidates = link.Candidates()
	} else {
		res.Target = link.Resolve()
	}

	if ok, err := printStructured(res); ok {
		return err
	}

	if resolveAll {
		for _, c := range res.Candidates {
			printInfo("%s\n", c)
		}
		return nil
	}
	if res.Target == "" {
		return errNoTarget
	}
	printInfo("%s\n", res.Target)
	return nil
}
