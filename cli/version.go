package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tanglishproject/gotanglish/gotanglish"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tanglish",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tanglish version %s\n", gotanglish.VERSION)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
