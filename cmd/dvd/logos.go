package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dvd/internal/registry"
)

var flagPreview bool

var logosCmd = &cobra.Command{
	Use:   "logos",
	Short: "List all available logos",
	Long:  `Shows the logos that can be passed to --logo, with their size in cells.`,
	Args:  cobra.NoArgs,
	Run:   runLogos,
}

func init() {
	logosCmd.Flags().BoolVar(&flagPreview, "preview", false, "Print each logo")
}

func runLogos(_ *cobra.Command, _ []string) {
	logos := registry.List()

	if len(logos) == 0 {
		fmt.Println("No logos available.")
		return
	}

	fmt.Println("Available logos:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range logos {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "-----")

	for _, l := range logos {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, l.ID, size, l.Title)
	}

	if flagPreview {
		for _, info := range logos {
			logo, err := registry.Get(info.ID)
			if err != nil {
				continue
			}
			fmt.Println()
			fmt.Printf("%s:\n", info.ID)
			for _, line := range logo.Lines {
				fmt.Println(line)
			}
		}
	}

	fmt.Println()
	fmt.Println("Run 'dvd --logo <id>' to bounce a logo.")
	fmt.Println("The terminal must be at least one cell wider and taller than the logo.")
}
