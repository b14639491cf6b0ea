package main

import (
	"github.com/spf13/cobra"

	"github.com/km-arc/microioc/framework/app"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the diagnostics server until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := app.New(opts.envFiles...)
			if err != nil {
				return err
			}
			cfg := a.Config()
			switch {
			case addr != "":
				cfg.IoC.DebugAddr = addr
			case cfg.IoC.DebugAddr == "":
				cfg.IoC.DebugAddr = defaultDebugAddr
			}
			return a.Run()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default $IOC_DEBUG_ADDR or "+defaultDebugAddr+")")
	return cmd
}
