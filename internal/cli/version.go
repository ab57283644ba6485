package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/covid19-impact/estimator/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"
)

type VersionOptions struct {
	Output string
}

func DefaultVersionOptions() *VersionOptions {
	return &VersionOptions{
		Output: "",
	}
}

func NewCmdVersion() *cobra.Command {
	o := DefaultVersionOptions()
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print estimator version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *VersionOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Output, "output", "o", o.Output, "Output format. One of: (json, yaml). Plain text when empty.")
}

func (o *VersionOptions) Validate(args []string) error {
	if len(o.Output) > 0 && !funk.Contains([]string{jsonFormat, yamlFormat}, o.Output) {
		return fmt.Errorf("output format must be one of %s, %s", jsonFormat, yamlFormat)
	}
	return nil
}

func (o *VersionOptions) Run(out io.Writer) error {
	versionInfo := version.Get()

	switch o.Output {
	case jsonFormat:
		marshalled, err := json.Marshal(versionInfo)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\n", marshalled)
		return err
	case yamlFormat:
		marshalled, err := yaml.Marshal(versionInfo)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, string(marshalled))
		return err
	default:
		_, err := fmt.Fprintf(out, "Estimator Version: %s\n", versionInfo.String())
		return err
	}
}
