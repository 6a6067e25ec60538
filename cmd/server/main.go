package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/preston-bernstein/rivalry-service/internal/config"
	"github.com/preston-bernstein/rivalry-service/internal/logging"
	"github.com/preston-bernstein/rivalry-service/internal/server"
)

const (
	appName    = "rivalry-service"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCmd(stop).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newCmd(stop context.CancelFunc) *cobra.Command {
	v := config.NewViper()
	var configPath string

	cmd := &cobra.Command{
		Use:     appName,
		Short:   "Serves the Packers vs Bears rivalry page and its stats API.",
		Args:    cobra.NoArgs,
		Version: appVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cmd.Flags(), configPath)
			if err != nil {
				return err
			}

			logger := logging.NewLogger(logging.Config{
				Level:   cfg.Log.Level,
				Format:  cfg.Log.Format,
				Service: appName,
				Version: appVersion,
			})

			srv, err := server.New(cfg, logger)
			if err != nil {
				return err
			}
			srv.Run(cmd.Context(), stop)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&configPath, "config", "c", "", "path to a yaml, toml or json config file")
	config.RegisterFlags(fs)

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate(appName + " {{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}

// loadConfig layers flags over the environment over the optional config file.
func loadConfig(v *viper.Viper, fs *pflag.FlagSet, configPath string) (config.Config, error) {
	if err := config.ReadFile(v, configPath); err != nil {
		return config.Config{}, err
	}
	config.BindFlags(v, fs)

	cfg := config.LoadFrom(v)
	cfg.Version = appVersion
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
