package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/mython/pkg/eval"
	"github.com/GriffinCanCode/mython/pkg/lexer"
	"github.com/GriffinCanCode/mython/pkg/logger"
	"github.com/GriffinCanCode/mython/pkg/parser"
)

func newRunCmd() *cobra.Command {
	var verbose bool
	var logDir string

	cmd := &cobra.Command{
		Use:   "run SOURCE",
		Short: "Run a Mython source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case logDir != "":
				if err := logger.InitProd(logDir); err != nil {
					return fmt.Errorf("initializing log directory %s: %w", logDir, err)
				}
			case verbose:
				logger.InitDev()
			default:
				cfg := logger.DefaultConfig()
				cfg.Level = logger.LevelError
				_ = logger.Init(cfg)
			}
			return runFile(args[0], cmd)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVar(&logDir, "log-dir", "", "write JSON logs to mython.log in this directory instead of stderr")
	return cmd
}

func runFile(path string, cmd *cobra.Command) error {
	start := time.Now()
	runLog := logger.WithGroup("run").With("file", path)
	runLog.Debug("run invoked")
	logger.LogRunStart([]string{path})
	logger.LogFileProcessing(path)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	lex := lexer.New(f)
	p := parser.New(lex)

	logger.LogPhase("parse")
	root, err := p.Parse()
	if err != nil {
		logger.LogParseError(path, 0, 0, err.Error())
		logger.LogRunComplete(false, time.Since(start).String())
		return err
	}
	logger.LogPhaseComplete("parse")

	logger.LogPhase("eval")
	ctx := eval.NewContext(cmd.OutOrStdout())
	ev := eval.New()
	if err := ev.Run(root, ctx); err != nil {
		logger.LogEvalError(path, err.Error())
		logger.LogRunComplete(false, time.Since(start).String())
		return err
	}
	logger.LogPhaseComplete("eval")
	logger.LogRunComplete(true, time.Since(start).String())
	return nil
}
