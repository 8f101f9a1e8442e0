package main

import (
	"fmt"
	"os"

	"github.com/ovlhand/packrun/internal/fsops"
	"github.com/ovlhand/packrun/internal/hexenc"
	"github.com/ovlhand/packrun/internal/safety"
	"github.com/ovlhand/packrun/internal/script"
	"github.com/ovlhand/packrun/pkg/config"
	"github.com/ovlhand/packrun/pkg/env"
	"github.com/ovlhand/packrun/pkg/interp"
	"github.com/ovlhand/packrun/pkg/runtime/logging"
	"github.com/ovlhand/packrun/pkg/types"
	"github.com/ovlhand/packrun/pkg/version"
	"github.com/spf13/cobra"
)

var cfgFile string

func main() {
	_ = env.LoadDefault()

	root := &cobra.Command{
		Use:   "packrun",
		Short: "Package automation script runner",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.packrun/config.yaml)")

	root.AddCommand(runCmd())
	root.AddCommand(checkCmd())
	root.AddCommand(encodeCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat(config.DefaultConfigPath()); err == nil {
			path = config.DefaultConfigPath()
		}
	}
	return config.LoadConfig(path)
}

func runCmd() *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "run <package-file>",
		Short: "Execute a package automation script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := logging.New(cfg.LogLevel, os.Getenv("PACKRUN_LOG_FORMAT"))

			pkg, err := script.Load(args[0])
			if err != nil {
				return err
			}

			sections := pkg.Order
			if section != "" {
				if _, ok := pkg.Section(section); !ok {
					return fmt.Errorf("section not found: %s", section)
				}
				sections = []string{section}
			}

			runner := interp.New(cfg, logger)
			for _, name := range sections {
				list, _ := pkg.Section(name)
				result := runner.Execute(list)
				printSummary(name, result)
				if result.Terminal {
					break
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&section, "section", "", "run only the named section")
	return cmd
}

func printSummary(section string, result *types.RunResult) {
	counts := map[types.CommandState]int{}
	for _, c := range result.Commands {
		counts[c.State]++
	}
	fmt.Printf("[%s] run %s: %d completed, %d failed, %d blocked, %d skipped\n",
		section, result.ID,
		counts[types.StateCompleted], counts[types.StateFailed],
		counts[types.StateBlocked], counts[types.StateSkipped])
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>",
		Short: "Report whether a path would be refused by the safety guard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			guard := safety.New(cfg.StorageRoot, cfg.ProtectedFolders, cfg.UltraProtectedFolders)
			ops := fsops.NewOps(cfg.StorageRoot)

			path := ops.PreprocessPath(args[0])
			if guard.IsDangerous(path) {
				fmt.Printf("%s: dangerous\n", path)
				os.Exit(1)
			}
			fmt.Printf("%s: safe\n", path)
			return nil
		},
	}
}

func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <ascii|decimal|rdecimal> <literal>",
		Short: "Convert a patch operand literal to byte hex",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := encodeLiteral(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
}

func encodeLiteral(mode, literal string) (string, error) {
	switch mode {
	case "ascii":
		return hexenc.AsciiToHex(literal), nil
	case "decimal":
		out := hexenc.DecimalToHex(literal)
		if out == "" {
			return "", fmt.Errorf("invalid decimal literal: %s", literal)
		}
		return out, nil
	case "rdecimal":
		out := hexenc.DecimalToReversedHex(literal)
		if out == "" {
			return "", fmt.Errorf("invalid decimal literal: %s", literal)
		}
		return out, nil
	default:
		return "", fmt.Errorf("unknown encoding mode: %s", mode)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Println(version.String())
		},
	}
}
