package main

import (
	"github.com/spf13/cobra"

	"github.com/km-arc/microioc/framework/app"
)

const defaultDebugAddr = ":8089"

type rootOptions struct {
	envFiles []string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "microioc",
		Short:         "Inspect and serve a microioc container",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringSliceVarP(&opts.envFiles, "env-file", "e", nil, "dotenv files to load (default .env)")

	root.AddCommand(newServeCmd(opts), newEntriesCmd(opts))
	return root
}

// bootApp creates and boots the application.
func bootApp(opts *rootOptions) (*app.Application, error) {
	a, err := app.New(opts.envFiles...)
	if err != nil {
		return nil, err
	}
	if err := a.Boot(); err != nil {
		return nil, err
	}
	return a, nil
}
