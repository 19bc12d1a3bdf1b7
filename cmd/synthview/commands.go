package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/viant/synthview"
	"github.com/viant/synthview/memory"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"os"
)

type flags struct {
	snapshot    string
	config      string
	depth       int
	maxChildren int
	format      string
	debug       bool
}

const (
	formatTree = "tree"
	formatYAML = "yaml"
)

func newRootCommand() *cobra.Command {
	options := &flags{}
	root := &cobra.Command{
		Use:          "synthview",
		Short:        "inspect native containers stored in memory snapshots",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&options.config, "config", "c", "", "provider bindings and layout YAML (defaults to boost containers)")
	root.PersistentFlags().BoolVar(&options.debug, "debug", false, "enable debug logging")

	printCmd := &cobra.Command{
		Use:   "print [variable...]",
		Short: "print synthetic children of snapshot variables (all variables when none given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(cmd, options, args)
		},
	}
	printCmd.Flags().StringVarP(&options.snapshot, "snapshot", "s", "", "JSON memory snapshot path")
	printCmd.Flags().IntVarP(&options.depth, "depth", "d", 2, "synthetic expansion depth")
	printCmd.Flags().IntVar(&options.maxChildren, "max-children", 256, "maximum children expanded per value")
	printCmd.Flags().StringVarP(&options.format, "format", "f", formatTree, "output format: tree or yaml")
	_ = printCmd.MarkFlagRequired("snapshot")

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list type name patterns bound to providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(options.config)
			if err != nil {
				return err
			}
			for _, binding := range config.Bindings {
				fmt.Fprintln(cmd.OutOrStdout(), renderBinding(binding))
			}
			return nil
		},
	}
	layoutCmd := &cobra.Command{
		Use:   "layout [variable...]",
		Short: "print member layout of snapshot variable types",
		RunE: func(cmd *cobra.Command, args []string) error {
			variables, err := loadVariables(options.snapshot, args)
			if err != nil {
				return err
			}
			for _, variable := range variables {
				fmt.Fprint(cmd.OutOrStdout(), renderLayout(variable))
			}
			return nil
		},
	}
	layoutCmd.Flags().StringVarP(&options.snapshot, "snapshot", "s", "", "JSON memory snapshot path")
	_ = layoutCmd.MarkFlagRequired("snapshot")

	root.AddCommand(printCmd, patternsCmd, layoutCmd)
	return root
}

func runPrint(cmd *cobra.Command, options *flags, names []string) error {
	if options.format != formatTree && options.format != formatYAML {
		return fmt.Errorf("unsupported format: %v", options.format)
	}
	logger, err := newLogger(options.debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	config, err := loadConfig(options.config)
	if err != nil {
		return err
	}
	registry := synthview.NewRegistry(synthview.WithLogger(logger), synthview.WithMaxChildren(options.maxChildren))
	if err = config.Register(registry, synthview.WithLogger(logger)); err != nil {
		return err
	}
	variables, err := loadVariables(options.snapshot, names)
	if err != nil {
		return err
	}
	logger.Debug("loaded snapshot", zap.String("path", options.snapshot), zap.Int("variables", len(variables)))

	var nodes []*synthview.Node
	for _, variable := range variables {
		nodes = append(nodes, registry.Expand(variable, options.depth))
	}
	if options.format == formatYAML {
		data, err := yaml.Marshal(nodes)
		if err != nil {
			return fmt.Errorf("failed to encode tree: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	for _, node := range nodes {
		fmt.Fprint(cmd.OutOrStdout(), renderTree(node))
	}
	return nil
}

// loadVariables returns named snapshot variables, all variables when no name is given
func loadVariables(location string, names []string) ([]*memory.Value, error) {
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	snapshot, err := memory.LoadSnapshot(data)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return snapshot.Variables, nil
	}
	var ret []*memory.Value
	for _, name := range names {
		variable, ok := snapshot.Variable(name)
		if !ok {
			return nil, fmt.Errorf("unknown variable: %v", name)
		}
		ret = append(ret, variable)
	}
	return ret, nil
}

func loadConfig(location string) (*synthview.Config, error) {
	if location == "" {
		return synthview.DefaultConfig(), nil
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return synthview.LoadConfig(data)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
