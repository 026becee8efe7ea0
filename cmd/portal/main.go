package main

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"

	"pkt.systems/psi"
	"pkt.systems/pslog"

	"github.com/iw2rmb/portal/source"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	root := newRootCmd()
	root.SetArgs(os.Args[1:])

	if err := root.ExecuteContext(ctx); err != nil {
		if source.IsNotText(err) {
			logger.Error("cannot open file", "err", err.Error())
			return 1
		}
		pslog.Ctx(ctx).With("err", err).Error("portal command failed")
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts editorOptions
	root := &cobra.Command{
		Use:           "portal [file]",
		Short:         "Edit a text file in the terminal",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.path = args[0]
			}
			return runEditor(cmd.Context(), opts)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default is the user config dir)")
	flags.StringVar(&opts.backend, "backend", "", "terminal backend: bubbletea or tcell")
	flags.StringVar(&opts.logFile, "log-file", "", "write structured logs to this file")
	flags.IntVar(&opts.height, "height", 0, "initial window height before the terminal reports its size")

	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())

	return root
}
