package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	api "github.com/covid19-impact/estimator/api/v1"
	"github.com/covid19-impact/estimator/internal/handlers/v1/mappers"
	"github.com/covid19-impact/estimator/internal/handlers/validator"
	"github.com/covid19-impact/estimator/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"
)

const (
	jsonFormat = "json"
	xmlFormat  = "xml"
	yamlFormat = "yaml"

	stdinFile = "-"

	estimateJSONPath = "/api/v1/on-covid-19/json"
)

var (
	legalOutputTypes = []string{jsonFormat, xmlFormat, yamlFormat}
)

type EstimateOptions struct {
	GlobalOptions

	File   string
	Output string
}

func DefaultEstimateOptions() *EstimateOptions {
	return &EstimateOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Output:        jsonFormat,
	}
}

func NewCmdEstimate() *cobra.Command {
	o := DefaultEstimateOptions()
	cmd := &cobra.Command{
		Use:   "estimate -f FILE",
		Short: "Estimate the impact of COVID-19 for the input described in a YAML or JSON file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *EstimateOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.File, "file", "f", o.File, "Input file, '-' reads from stdin.")
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *EstimateOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.Output = strings.ToLower(o.Output)
	return nil
}

func (o *EstimateOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if o.File == "" {
		return errors.New("an input file is required, use -f")
	}

	if !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}

	return nil
}

func (o *EstimateOptions) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	form, err := o.readInput(in)
	if err != nil {
		return err
	}

	if err := validator.NewEstimateValidator().Struct(form); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	var reply *api.EstimateReply
	if o.Remote() {
		reply, err = o.estimateRemote(ctx, form)
	} else {
		reply, err = estimateLocal(ctx, form)
	}
	if err != nil {
		return err
	}

	return printReply(out, reply, o.Output)
}

func (o *EstimateOptions) readInput(in io.Reader) (api.EstimateRequest, error) {
	var (
		content []byte
		err     error
	)
	if o.File == stdinFile {
		content, err = io.ReadAll(in)
	} else {
		content, err = os.ReadFile(o.File)
	}
	if err != nil {
		return api.EstimateRequest{}, fmt.Errorf("reading input: %w", err)
	}

	var form api.EstimateRequest
	if err := yaml.Unmarshal(content, &form); err != nil {
		return api.EstimateRequest{}, fmt.Errorf("parsing input: %w", err)
	}
	return form, nil
}

func estimateLocal(ctx context.Context, form api.EstimateRequest) (*api.EstimateReply, error) {
	result, err := service.NewEstimationService().Estimate(ctx, mappers.EstimateRequestFormApi(form))
	if err != nil {
		return nil, err
	}
	return mappers.EstimationResultToApi(*result), nil
}

func (o *EstimateOptions) estimateRemote(ctx context.Context, form api.EstimateRequest) (*api.EstimateReply, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.ServerUrl+estimateJSONPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := o.Client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling estimator api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr api.ErrorReply
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("estimator api: %d: %s", resp.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("estimator api: %d", resp.StatusCode)
	}

	var reply api.EstimateReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("decoding estimator api response: %w", err)
	}
	return &reply, nil
}

func printReply(out io.Writer, reply *api.EstimateReply, output string) error {
	var (
		marshalled []byte
		err        error
	)

	switch output {
	case xmlFormat:
		marshalled, err = xml.MarshalIndent(reply, "", "  ")
		marshalled = append([]byte(xml.Header), marshalled...)
	case yamlFormat:
		marshalled, err = yaml.Marshal(reply)
	default:
		marshalled, err = json.MarshalIndent(reply, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshalling estimation: %w", err)
	}

	_, err = fmt.Fprintf(out, "%s\n", strings.TrimSuffix(string(marshalled), "\n"))
	return err
}
