package cmd

import (
	"fmt"

	"github.com/Marvin1003/open-wc/internal"
	"github.com/spf13/cobra"
)

// polyfillsCmd represents the polyfills command
var polyfillsCmd = &cobra.Command{
	Use:   "polyfills",
	Short: "List the built-in polyfills",
	Long: `Lists every polyfill the tool can build and conditionally load, with the
browser feature test deciding whether it loads. Polyfills without a test are
baseline scripts a page has to load unconditionally.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-22s %-7s %s\n", "NAME", "MODULE", "SOURCE")
		for _, polyfill := range internal.BuiltinPolyfills() {
			fmt.Printf("%-22s %-7t %s\n", polyfill.Name, polyfill.Module, polyfill.Source)
		}
		fmt.Println()
		for _, polyfill := range internal.BuiltinPolyfills() {
			if polyfill.Test == "" {
				fmt.Printf("%s loads unconditionally\n", polyfill.Name)
				continue
			}
			fmt.Printf("%s loads when: %s\n", polyfill.Name, polyfill.Test)
		}
	},
}

func init() {
	rootCmd.AddCommand(polyfillsCmd)
}
