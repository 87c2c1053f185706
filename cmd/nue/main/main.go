package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/nue/cmd/nue"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	rootCmd := nue.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
