package cmd

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docsCmd represents the docs command
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate the markdown documentation for open-wc",
	Long: `Writes one markdown page per command into the given directory, defaulting
to ./docs.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir := filepath.Join(".", "docs")
		if len(args) > 0 {
			dir = args[0]
		}
		err := os.MkdirAll(dir, os.ModePerm)
		cobra.CheckErr(err)
		err = doc.GenMarkdownTree(rootCmd, dir)
		if err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
