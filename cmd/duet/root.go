package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/duet-ai/duet/pkg/hybrid"
	"github.com/duet-ai/duet/pkg/hybrid/config"
	"github.com/duet-ai/duet/pkg/hybrid/provider"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd is the root command for duet
var rootCmd = &cobra.Command{
	Use:   "duet",
	Short: "duet is a chat agent that synthesizes answers from two LLMs",
	Long: `duet queries two LLM providers concurrently for every prompt, then asks a
third model call to merge their answers into one polished response.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Default models for the two primaries and the arbiter
		viper.SetDefault("openai_model", "gpt-3.5-turbo")
		viper.SetDefault("gemini_model", "gemini-1.5-pro")
		viper.SetDefault("arbiter_model", "gemini-1.5-pro")

		// Bind environment variables
		viper.BindEnv("openai_api_key", "OPENAI_API_KEY")
		viper.BindEnv("gemini_api_key", "GEMINI_API_KEY")
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.duet.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	// Load a .env file if present, for local development
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".duet")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// buildAgent constructs the pipeline from configuration. Credentials are
// read once here; the resulting agent is read-only across invocations.
func buildAgent() (*hybrid.Agent, error) {
	openaiKey := viper.GetString("openai_api_key")
	if openaiKey == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable is not set")
	}

	geminiKey := viper.GetString("gemini_api_key")
	if geminiKey == "" {
		return nil, errors.New("GEMINI_API_KEY environment variable is not set")
	}

	primaryA, err := provider.Create("openai", config.NewConfig(
		config.WithAPIKey(openaiKey),
		config.WithModel(viper.GetString("openai_model")),
	))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create OpenAI provider")
	}

	primaryB, err := provider.Create("gemini", config.NewConfig(
		config.WithAPIKey(geminiKey),
		config.WithModel(viper.GetString("gemini_model")),
	))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini provider")
	}

	judge, err := provider.Create("gemini", config.NewConfig(
		config.WithAPIKey(geminiKey),
		config.WithModel(viper.GetString("arbiter_model")),
	))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create arbiter provider")
	}

	var opts []hybrid.Option
	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		opts = append(opts, hybrid.WithTimeout(timeout))
	}

	agent, err := hybrid.New(primaryA, primaryB, judge, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to construct agent")
	}

	return agent, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of duet",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("duet v0.1.0")
	},
}
