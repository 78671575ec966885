package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{out: stdout, errOut: stderr}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return apperrors.ExitCode(err)
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "medibook",
		Short:         "Find doctors, book appointments and manage your health profile",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd.Context(), configPath); err != nil {
				return err
			}
			cmd.SetContext(a.context(cmd.Context()))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a dotenv config file (default .env)")
	rootCmd.PersistentFlags().BoolVar(&a.json, "json", false, "Print JSON instead of a table")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(searchCmd(a))
	rootCmd.AddCommand(nearbyCmd(a))
	rootCmd.AddCommand(specialtiesCmd(a))
	rootCmd.AddCommand(showCmd(a))
	rootCmd.AddCommand(loginCmd(a))
	rootCmd.AddCommand(registerCmd(a))
	rootCmd.AddCommand(logoutCmd(a))
	rootCmd.AddCommand(whoamiCmd(a))
	rootCmd.AddCommand(bookCmd(a))
	rootCmd.AddCommand(appointmentsCmd(a))
	rootCmd.AddCommand(cancelCmd(a))
	rootCmd.AddCommand(statusCmd(a))
	rootCmd.AddCommand(medicationsCmd(a))
	rootCmd.AddCommand(verifyCmd(a))
	rootCmd.AddCommand(clinicCmd(a))

	return rootCmd
}
