package cli

import (
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type GlobalOptions struct {
	ServerUrl string
	Timeout   time.Duration
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		ServerUrl: "",
		Timeout:   10 * time.Second,
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ServerUrl, "server-url", "u", o.ServerUrl, "Address of a running estimator API. Estimates locally when empty")
	fs.DurationVar(&o.Timeout, "timeout", o.Timeout, "Timeout of requests to the estimator API")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	o.ServerUrl = strings.TrimSuffix(o.ServerUrl, "/")
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	return nil
}

func (o *GlobalOptions) Remote() bool {
	return o.ServerUrl != ""
}

func (o *GlobalOptions) Client() *http.Client {
	return &http.Client{Timeout: o.Timeout}
}
