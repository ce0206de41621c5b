// Package root provides the root command for cspenv
package root

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"aggregat4/cspenv/internal/config"
	"aggregat4/cspenv/internal/domain"
	"aggregat4/cspenv/internal/environment"
	"aggregat4/cspenv/internal/logging"
	"aggregat4/cspenv/internal/render"
	"aggregat4/cspenv/pkg/lang"
)

var logger = logging.ForComponent("cmd.cspenv")

type options struct {
	configFile string
	envFile    string
	verbose    bool
}

func (o *options) load() (domain.Environment, error) {
	return config.Load(environment.Current(), config.Options{
		ConfigFile:         lang.FirstNonEmpty(o.configFile, config.GetDefaultConfigPath()),
		ConfigFileOptional: o.configFile == "",
		EnvFile:            o.envFile,
	})
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "cspenv",
		Short: "Resolve and render the frontend environment configuration",
		Long: `cspenv resolves the environment record compiled into this binary, applies
overrides from a JSON file, a dotenv file and CSP_ environment variables, and
renders the result for the frontend build.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.verbose {
				logging.SetLevel(zapcore.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "JSON override file (default "+config.GetDefaultConfigPath()+" if it exists)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "dotenv file with CSP_ overrides")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newRenderCmd(opts),
		newValidateCmd(opts),
		newAuth0Cmd(opts),
		newVariantCmd(),
	)
	return cmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

func newRenderCmd(opts *options) *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := opts.load()
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := render.Write(&buf, format, env); err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("error writing %s: %w", output, err)
			}
			logging.Info(logger, "Wrote environment", "path", output, "format", format, "variant", environment.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", render.FormatJSON, "Output format: "+strings.Join(render.Formats, ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the resolved configuration is complete and well formed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := opts.load(); err != nil {
				for _, e := range multierr.Errors(err) {
					logging.Error(logger, "Invalid configuration", "error", e)
				}
				return fmt.Errorf("%s configuration is invalid: %w", environment.Name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s configuration is valid\n", environment.Name)
			return nil
		},
	}
}

func newAuth0Cmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "auth0",
		Short: "Print the Auth0 values derived from the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := opts.load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tenant:     %s\n", env.Auth0.TenantDomain())
			fmt.Fprintf(out, "issuer:     %s\n", env.Auth0.Issuer())
			fmt.Fprintf(out, "jwks:       %s\n", env.Auth0.JWKSURL())
			fmt.Fprintf(out, "audience:   %s\n", env.Auth0.Audience)
			fmt.Fprintf(out, "clientId:   %s\n", env.Auth0.ClientID)
			fmt.Fprintf(out, "algorithms: %s\n", strings.Join(domain.SigningAlgorithms(), ", "))
			return nil
		},
	}
}

func newVariantCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variant",
		Short: "Print the compiled configuration variant",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), environment.Name)
		},
	}
}
