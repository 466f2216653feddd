package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showSources bool

var askCmd = &cobra.Command{
	Use:   "ask [prompt]",
	Short: "Ask a one-shot question and print the synthesized answer",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAskCommand,
}

func init() {
	askCmd.Flags().BoolVar(&showSources, "show-sources", false,
		"also print the raw output of both providers")
	rootCmd.AddCommand(askCmd)
}

func runAskCommand(cmd *cobra.Command, args []string) error {
	agent, err := buildAgent()
	if err != nil {
		return err
	}

	prompt := strings.Join(args, " ")
	ctx := cmd.Context()

	if !showSources {
		final, err := agent.Execute(ctx, prompt)
		if err != nil {
			return fmt.Errorf("error running agent pipeline: %w", err)
		}
		fmt.Println(final)
		return nil
	}

	// Run the stages separately so the intermediate results can be shown.
	results := agent.Dispatch(ctx, prompt)

	header := color.New(color.FgCyan, color.Bold)
	header.Printf("--- Output A (%s) ---\n", results.A.Provider)
	fmt.Println(results.A.Text())
	header.Printf("--- Output B (%s) ---\n", results.B.Provider)
	fmt.Println(results.B.Text())

	final := agent.Synthesize(ctx, prompt, results)
	header.Println("--- Synthesized answer ---")
	fmt.Println(final)

	return nil
}
