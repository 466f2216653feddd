package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/duet-ai/duet/ui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	RunE:  runChatCommand,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChatCommand(cmd *cobra.Command, args []string) error {
	agent, err := buildAgent()
	if err != nil {
		return err
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}

	return ui.StartChat(cmd.Context(), agent, width, height)
}
