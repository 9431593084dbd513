package main

/**
 * gotanglish - a Tamil romanization transliteration library
 * Copyright Tanglish Project Contributors, 2026
 * Licensed under AGPL-3.0-only
 */

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tanglishproject/gotanglish/gotanglish"
)

var (
	dictFlag       string
	schemeFileFlag string
	debugFlag      bool
)

var rootCmd = &cobra.Command{
	Use:   "tanglish",
	Short: "Transliterate romanized text into Tamil script",
	Long: `tanglish converts Latin-script (romanized) text into several plausible
Tamil-script renderings. Train it with your own pattern => word pairs to get
exact results for words you use often.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dictFlag, "dict", "",
		"Learnings dictionary path (default: per-language data directory)")
	rootCmd.PersistentFlags().StringVar(&schemeFileFlag, "scheme-file", "",
		"YAML scheme file replacing the built-in tables")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"Enable debugging outputs")
}

// initTanglish builds the engine from the global flags.
func initTanglish() (*gotanglish.Tanglish, error) {
	dictPath := dictFlag

	var (
		tanglish *gotanglish.Tanglish
		err      error
	)
	if schemeFileFlag != "" {
		if dictPath == "" {
			dictPath = gotanglish.DefaultLearningsFilePath("ta")
		}
		tanglish, err = gotanglish.InitFromSchemeFile(schemeFileFlag, dictPath)
	} else if dictPath != "" {
		tanglish, err = gotanglish.Init(dictPath)
	} else {
		tanglish, err = gotanglish.InitFromID("")
	}
	if err != nil {
		return nil, fmt.Errorf("initializing: %w", err)
	}

	if debugFlag {
		tanglish.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	return tanglish, nil
}

func main() {
	Execute()
}
