package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mctext-go/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the configuration file",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := fmt.Fprintln(a.stdout, a.path)
				return err
			},
		},
		&cobra.Command{
			Use:   "keys",
			Short: "List settable keys",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := fmt.Fprintln(a.stdout, strings.Join(config.Keys(), "\n"))
				return err
			},
		},
		&cobra.Command{
			Use:     "get KEY",
			Short:   "Print the effective value of a key",
			Example: "  mctext config get rcon.port",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := a.cfg.Get(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(a.stdout, v)
				return err
			},
		},
		&cobra.Command{
			Use:   "set KEY VALUE",
			Short: "Change one key and save the file",
			Example: `  mctext config set render.default_color "#FFFFFF"
  mctext config set rcon.wait_seconds 2`,
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				// Environment overrides must not leak into the file.
				cfg, err := config.LoadFile(a.path)
				if err != nil {
					return err
				}
				cfg, err = cfg.Patch(args[0], args[1])
				if err != nil {
					return err
				}
				if err := config.Save(cfg, a.path); err != nil {
					return err
				}
				a.log.Debug("config updated")
				return nil
			},
		},
		&cobra.Command{
			Use:         "reset",
			Short:       "Overwrite the file with the defaults",
			Args:        cobra.NoArgs,
			Annotations: map[string]string{skipConfig: "true"},
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := config.Save(config.Default(), a.path); err != nil {
					return err
				}
				_, err := fmt.Fprintf(a.stdout, "Wrote defaults to %s\n", a.path)
				return err
			},
		},
	)
	return cmd
}
