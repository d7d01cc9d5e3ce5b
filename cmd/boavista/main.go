// Command boavista sends consultations to the SCPC Boa Vista service and
// decodes its responses.
package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"

	"github.com/ianlopshire/go-boavista"
	"github.com/ianlopshire/go-boavista/client"
	"github.com/ianlopshire/go-boavista/view"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	cfg := loadConfig()
	var verbose bool

	root := &cobra.Command{
		Use:           "boavista",
		Short:         "Query the SCPC Boa Vista credit bureau",
		Long:          "boavista builds consultations for the SCPC Boa Vista service, sends them and decodes the replies.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	flags.StringVar(&cfg.Code, "code", cfg.Code, "member code (env BOAVISTA_CODE)")
	flags.StringVar(&cfg.Password, "password", cfg.Password, "member password (env BOAVISTA_PASSWORD)")
	flags.BoolVar(&cfg.Production, "production", cfg.Production, "use the production environment (env BOAVISTA_PRODUCTION)")
	flags.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "override the service endpoint (env BOAVISTA_BASE_URL)")
	flags.BoolVar(&cfg.Insecure, "insecure", cfg.Insecure, "skip TLS certificate verification (env BOAVISTA_INSECURE)")

	root.AddCommand(newQueryCmd(&cfg), newDecodeCmd(), newBuildCmd())
	return root
}

// queryFlags are the request fields common to the query and build
// commands.
type queryFlags struct {
	document string
	state    string
	params   []string
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.document, "document", "", "document number to consult (field 12)")
	cmd.Flags().StringVar(&f.state, "state", "", "state of the document (field 13)")
	cmd.Flags().StringArrayVarP(&f.params, "param", "p", nil, "request field as key=value, repeatable")
}

func (f *queryFlags) query() (boavista.Query, error) {
	q, err := parseParams(f.params)
	if err != nil {
		return nil, err
	}
	if f.document != "" {
		q["12"] = f.document
	}
	if f.state != "" {
		q["13"] = f.state
	}
	return q, nil
}

func parseParams(params []string) (boavista.Query, error) {
	q := boavista.Query{}
	for _, p := range params {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, errors.Errorf("invalid param %q, want key=value", p)
		}
		q[key] = value
	}
	return q, nil
}

func newQueryCmd(cfg *config) *cobra.Command {
	var (
		qf     queryFlags
		labels bool
	)
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Send a consultation and print the decoded reply as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := qf.query()
			if err != nil {
				return err
			}
			if err := boavista.Layout(q).Validate(q); err != nil {
				return err
			}

			cfg.log()
			opts := []client.Option{
				client.WithCredentials(cfg.Code, cfg.Password),
				client.WithProduction(cfg.Production),
				client.WithInsecureSkipVerify(cfg.Insecure),
				client.WithLogger(logrus.StandardLogger()),
			}
			if cfg.BaseURL != "" {
				opts = append(opts, client.WithBaseURL(cfg.BaseURL))
			}
			c, err := client.New(opts...)
			if err != nil {
				return err
			}

			resp, err := c.Query(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp, labels)
		},
	}
	qf.register(cmd)
	cmd.Flags().BoolVar(&labels, "labels", false, "print labelled sections instead of raw records")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	var labels, latin1 bool
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a raw reply from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "open reply")
				}
				defer f.Close()
				r = f
			}
			if latin1 {
				r = charmap.ISO8859_1.NewDecoder().Reader(r)
			}

			d := boavista.NewDecoder(r)
			d.SetUseCodepointIndices(latin1)

			var resp boavista.Response
			if err := d.Decode(&resp); err != nil {
				return err
			}
			if msg, ok := view.Rejection(&resp); ok {
				logrus.WithField("message", msg).Warn("consultation rejected")
			}
			return printResponse(cmd.OutOrStdout(), &resp, labels)
		},
	}
	cmd.Flags().BoolVar(&labels, "labels", false, "print labelled sections instead of raw records")
	cmd.Flags().BoolVar(&latin1, "latin1", false, "the reply is ISO-8859-1 encoded")
	return cmd
}

func newBuildCmd() *cobra.Command {
	var qf queryFlags
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Print the request string for a consultation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := qf.query()
			if err != nil {
				return err
			}
			if err := boavista.Layout(q).Validate(q); err != nil {
				return err
			}
			enc := boavista.NewEncoder(cmd.OutOrStdout())
			enc.SetUseCodepointIndices(true)
			if err := enc.Encode(q); err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), "\n")
			return err
		},
	}
	qf.register(cmd)
	return cmd
}

type output struct {
	Header   boavista.Header                `json:"header"`
	Records  map[string][]map[string]string `json:"records,omitempty"`
	Sections map[string][]map[string]string `json:"sections,omitempty"`
	Error    string                         `json:"error,omitempty"`
}

func printResponse(w io.Writer, resp *boavista.Response, labels bool) error {
	out := output{Header: resp.Header}
	if msg, ok := view.Rejection(resp); ok {
		out.Error = msg
	}

	if labels {
		out.Sections = map[string][]map[string]string{}
		for _, code := range resp.Types() {
			if s := view.Sections(resp, code); s != nil {
				out.Sections[code] = s
			}
		}
	} else {
		out.Records = map[string][]map[string]string{}
		for _, code := range resp.Types() {
			if code == boavista.ErrorType {
				continue
			}
			for _, rec := range resp.Get(code) {
				out.Records[code] = append(out.Records[code], rec.Map())
			}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(out), "write response")
}
