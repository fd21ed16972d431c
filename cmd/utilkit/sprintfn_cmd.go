package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/utilkit/hashx"
	"github.com/on-the-ground/utilkit/strfmt"
)

var errNotMapping = errors.New("arguments file must hold a mapping")

func newSprintfnCmd(a *app) *cobra.Command {
	var (
		argsFile string
		strict   bool
		hashName string
	)
	cmd := &cobra.Command{
		Use:   "sprintfn <format> [name=value]...",
		Short: "Format a string with named %name$s placeholders",
		Long: `Format a string with named placeholders such as %name$s or %total$.2f.

Arguments come from an optional YAML mapping file, whose order defines the
positional index of each name, followed by name=value pairs.`,
		Example: `  utilkit sprintfn 'Hello %who$s' who=world
  utilkit sprintfn --args-file args.yaml '%total$.2f %currency$s'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := hashx.ByName(hashName)
			if err != nil {
				return err
			}

			var named strfmt.Args
			if argsFile != "" {
				data, err := os.ReadFile(argsFile)
				if err != nil {
					return err
				}
				if named, err = parseArgsYAML(data); err != nil {
					return fmt.Errorf("%s: %w", argsFile, err)
				}
			}
			pairs, err := parsePairs(args[1:])
			if err != nil {
				return err
			}
			named = append(named, pairs...)

			opts := []strfmt.Option{strfmt.WithLogger(a.logger), strfmt.WithHashFunc(hash)}
			if strict {
				opts = append(opts, strfmt.WithFailOnMissing())
			}
			out, err := strfmt.Sprintfn(args[0], named, opts...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVarP(&argsFile, "args-file", "f", "", "YAML mapping of argument names to values")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a placeholder has no argument")
	cmd.Flags().StringVar(&hashName, "hash", hashx.MD5.Name, "hash for the unresolved placeholder marker (md5, sha1, xxh64)")
	return cmd
}

// parsePairs splits name=value arguments. Values stay strings.
func parsePairs(pairs []string) (strfmt.Args, error) {
	args := make(strfmt.Args, 0, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid argument %q, want name=value", pair)
		}
		args = append(args, strfmt.A(name, value))
	}
	return args, nil
}

// parseArgsYAML decodes a YAML mapping into arguments, keeping the
// document order.
func parseArgsYAML(data []byte) (strfmt.Args, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, errNotMapping
	}

	args := make(strfmt.Args, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		var value any
		if err := mapping.Content[i+1].Decode(&value); err != nil {
			return nil, fmt.Errorf("argument %q: %w", mapping.Content[i].Value, err)
		}
		args = append(args, strfmt.A(mapping.Content[i].Value, value))
	}
	return args, nil
}
