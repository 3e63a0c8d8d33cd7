package cmd

import (
	"bytes"
	"os"
	"path/filepath"

	e "github.com/rami3l/goequator/errors"
	"github.com/rami3l/goequator/gen"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	easy "github.com/t-tomalak/logrus-easy-formatter"
)

func App() (app *cobra.Command) {
	app = &cobra.Command{
		Use:   "goequator [FILE]",
		Args:  cobra.MaximumNArgs(1),
		Short: "goequator: Check assertions and explain the ones that fail.",
	}
	app.Flags().SortFlags = true

	defaultVerbosityStr := "INFO"
	verbosity := app.Flags().StringP("verbosity", "v", defaultVerbosityStr, "logging verbosity")
	tolerance := app.Flags().Float64P("tolerance", "t", gen.DefaultTolerance, "tolerance of approximate comparisons")

	app.Run = func(cmd *cobra.Command, args []string) {
		verbosityLvl, err := logrus.ParseLevel(*verbosity)
		if err != nil {
			verbosityLvl, _ = logrus.ParseLevel(defaultVerbosityStr)
		}
		logrus.SetLevel(verbosityLvl)
		logrus.SetFormatter(&easy.Formatter{LogFormat: "%lvl% %msg%\n"})

		checker := NewChecker(cmd.OutOrStdout())
		checker.Tolerance = *tolerance
		if err := appMain(checker, args); err != nil {
			logrus.Fatal(err)
			os.Exit(1)
		}
	}
	return
}

func appMain(checker *Checker, args []string) error {
	switch len(args) {
	case 0:
		return checker.REPL()
	case 1:
		path := args[0]
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		switch filepath.Ext(path) {
		case ".yaml", ".yml":
			err = checker.Suite(path, src)
		default:
			err = checker.Lines(path, bytes.NewReader(src))
		}
		if err != nil {
			return err
		}
		logrus.Infof("%d passed, %d failed", checker.Passed, checker.Failed)
		return checker.Err()
	default:
		return e.UnreachableError
	}
}
