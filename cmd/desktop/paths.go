package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/toitlang/pkg-desktop/cliout"
	"github.com/toitlang/pkg-desktop/xdg"
)

// pathsReport is the serializable view of all XDG resolutions.
type pathsReport struct {
	DataHome   string   `json:"dataHome" yaml:"dataHome"`
	ConfigHome string   `json:"configHome" yaml:"configHome"`
	StateHome  string   `json:"stateHome" yaml:"stateHome"`
	CacheHome  string   `json:"cacheHome" yaml:"cacheHome"`
	DataDirs   []string `json:"dataDirs" yaml:"dataDirs"`
	ConfigDirs []string `json:"configDirs" yaml:"configDirs"`
}

func newPathsCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Show the resolved XDG base directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := collectPaths()
			if err != nil {
				return err
			}

			switch output {
			case "json":
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
			case "yaml":
				data, err := yaml.Marshal(report)
				if err != nil {
					return err
				}
				fmt.Print(string(data))
			case "default":
				cliout.Header("XDG Base Directories")
				cliout.Label("Data Home", report.DataHome)
				cliout.Label("Config Home", report.ConfigHome)
				cliout.Label("State Home", report.StateHome)
				cliout.Label("Cache Home", report.CacheHome)
				cliout.Label("Data Dirs", strings.Join(report.DataDirs, ":"))
				cliout.Label("Config Dirs", strings.Join(report.ConfigDirs, ":"))
			default:
				return fmt.Errorf("unknown output format %q (expected default, json, or yaml)", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "default", "Output format: default, json, or yaml")
	return cmd
}

func collectPaths() (*pathsReport, error) {
	report := &pathsReport{
		DataDirs:   xdg.DataDirs(),
		ConfigDirs: xdg.ConfigDirs(),
	}

	var err error
	if report.DataHome, err = xdg.DataHome(); err != nil {
		return nil, err
	}
	if report.ConfigHome, err = xdg.ConfigHome(); err != nil {
		return nil, err
	}
	if report.StateHome, err = xdg.StateHome(); err != nil {
		return nil, err
	}
	if report.CacheHome, err = xdg.CacheHome(); err != nil {
		return nil, err
	}

	return report, nil
}
