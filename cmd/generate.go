package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/Marvin1003/open-wc/internal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type configuration struct {
	out               string
	publicPath        string
	minify            bool
	polyfillsFunction string `mapstructure:"polyfills-function"`
}

var config = configuration{}

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [loader config path]",
	Short: "Generate the loader script and build its polyfills",
	Long: `Reads a project config, bundles the selected polyfills, generates the loader
script, and writes everything plus a build manifest into the output directory.
For example:

open-wc generate loader.config.yaml
open-wc generate loader.config.yaml --out build --minify=false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		loadGenerateConfig()
		configPath := args[0]
		project, err := internal.LoadConfig(configPath)
		cobra.CheckErr(err)
		if config.publicPath != "" {
			project.PublicPath = config.publicPath
			if !strings.HasSuffix(project.PublicPath, "/") {
				project.PublicPath += "/"
			}
		}

		polyfills := project.SelectedPolyfills()
		polyfillsCfg := project.PolyfillsConfig()

		var built []internal.BuiltPolyfill
		if len(polyfills) > 0 {
			fmt.Printf("Bundling %d polyfills...\n", len(polyfills))
			built, err = internal.BuildPolyfills(context.Background(), polyfills, project.Root)
			cobra.CheckErr(err)
			for i, bundle := range built {
				polyfills[i] = bundle.Polyfill
			}
		}

		fmt.Println("Generating loader script...")
		loader, err := internal.CreateLoaderScript(project.EntriesConfig(), project.LegacyEntriesConfig(), polyfills, polyfillsCfg, config.minify, project.PublicPath)
		cobra.CheckErr(err)

		out := internal.Output{
			Loader:          loader,
			Polyfills:       built,
			PolyfillsConfig: polyfillsCfg,
			PublicPath:      project.PublicPath,
		}
		if config.polyfillsFunction != "" {
			standalonePolyfills := polyfills
			if standalonePolyfills == nil {
				// The standalone loader always declares its polyfills array,
				// even for projects that configure none.
				standalonePolyfills = []internal.Polyfill{}
			}
			out.PolyfillsLoader = internal.CreatePolyfillsLoaderScript(standalonePolyfills, polyfillsCfg, config.polyfillsFunction, project.PublicPath)
		}

		fmt.Printf("Writing output to '%s'...\n", config.out)
		manifest, err := internal.WriteOutputs(config.out, out)
		cobra.CheckErr(err)

		if len(project.Assets) > 0 {
			fmt.Printf("Copying %d asset directories...\n", len(project.Assets))
			err = internal.CopyAssets(config.out, project.Root, project.Assets)
			cobra.CheckErr(err)
		}

		fmt.Printf("Wrote %d files.\n", len(manifest.Files))
		return nil
	},
	Args: cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.SilenceUsage = true

	generateCmd.Flags().StringVarP(&config.out, "out", "o", "dist", "Directory the loader script, polyfill bundles, and manifest are written to")
	generateCmd.Flags().StringVarP(&config.publicPath, "public-path", "p", "", "Overrides the publicPath from the project config")
	generateCmd.Flags().BoolVarP(&config.minify, "minify", "m", true, "Minify the generated loader script")
	generateCmd.Flags().StringVar(&config.polyfillsFunction, "polyfills-function", "",
		`Additionally write a standalone polyfill loading function under the given
name, for pages that orchestrate entry loading themselves.`)

	cobra.CheckErr(viper.BindPFlags(generateCmd.Flags()))
	viper.SetDefault("out", "dist")
	viper.SetDefault("public-path", "")
	viper.SetDefault("minify", true)
	viper.SetDefault("polyfills-function", "")
}

func loadGenerateConfig() {
	config.out = viper.GetString("out")
	config.publicPath = viper.GetString("public-path")
	config.minify = viper.GetBool("minify")
	config.polyfillsFunction = viper.GetString("polyfills-function")
}
