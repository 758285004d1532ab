package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags; left at its dev default otherwise.
	Version = "0.1.0-dev"

	verbose bool
	log     = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:     "pslang",
	Short:   "A small stack-oriented postfix language interpreter",
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
`))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	log.SetLevel(logrus.WarnLevel)

	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	})
}
