package cmd

import (
	"fmt"

	"github.com/hoppxi/zbacklight/internal/config"
	"github.com/hoppxi/zbacklight/pkg/backlightinfo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type outputFormat string

const (
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }
func (f *outputFormat) Type() string   { return "format" }

func (f *outputFormat) Set(s string) error {
	switch outputFormat(s) {
	case formatJSON, formatYAML:
		*f = outputFormat(s)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", s)
	}
}

var infoFormat = formatJSON

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the backlight state as JSON or YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		defer func() { _ = log.Sync() }()

		info, err := backlightinfo.Load(config.Config.Paths(), log)
		if err != nil {
			return err
		}

		var data []byte
		if infoFormat == formatYAML {
			data, err = info.YAML()
		} else {
			data, err = info.JSON()
			data = append(data, '\n')
		}
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	infoCmd.Flags().VarP(&infoFormat, "format", "f", "Output format: json or yaml")
}
