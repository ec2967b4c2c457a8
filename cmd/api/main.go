package main

// @title Mock Interview APIs
// @version 1.0
// @description Backend for an AI mock interview: question generation, answer evaluation, reports and speech.

// @host localhost:9089
// @BasePath /
// @schemes http
import (
	"os"

	_ "mock-interview-api/docs"
	protocol "mock-interview-api/protocal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		env        string
		configPath string
	)

	cmd := &cobra.Command{
		Use:           "mock-interview-api",
		Short:         "Serve the mock interview HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			err := protocol.ServeHTTP(configPath, env)
			if err != nil {
				logrus.Println(err)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&env, "env", "", "the environment to use")
	cmd.Flags().StringVar(&configPath, "config-path", "./configs", "directory holding config.yaml")

	return cmd
}
