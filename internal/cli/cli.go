package cli

import (
	"context"
	"log/slog"

	"github.com/fdkevin0/md2html"
	"github.com/spf13/cobra"
)

// srcWithoutValue is what a bare --src (no "=") resolves to. It trims to an
// empty path, so the following argument is never taken as the directory.
const srcWithoutValue = " "

var (
	// 命令行参数
	flagSrc        string
	flagDebug      bool
	flagConfigFile string
)

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "md2html --src=<path>",
	Short: "Convert every markdown file under a directory into a sibling HTML page",
	Long: `md2html walks the source directory recursively and writes an .html file next
to every .md file it finds. Each page links the index.css stylesheet found at
the root of the source directory. Existing .html files are overwritten.`,
	Example: `  # Convert a documentation tree
  md2html --src=./docs

  # A file path converts the directory that contains it
  md2html --src=./docs/index.md`,
	RunE: runConverter,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		md2html.InitLogger(flagDebug)
	},
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	FParseErrWhitelist: cobra.FParseErrWhitelist{
		UnknownFlags: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSrc, "src", "", "markdown source directory")
	rootCmd.PersistentFlags().Lookup("src").NoOptDefVal = srcWithoutValue
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "config file path (TOML)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return md2html.NewValidationError("invalid command line", err)
	})
}

// Execute 执行命令行程序
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// runConverter 运行转换
func runConverter(cmd *cobra.Command, args []string) error {
	cfg, err := buildRuntimeConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.App.Debug != flagDebug {
		md2html.InitLogger(cfg.App.Debug)
	}
	if cfg.ConfigFile != "" {
		slog.Debug("Using config file", "path", cfg.ConfigFile)
	}
	for _, arg := range args {
		slog.Debug("Ignoring argument", "arg", arg)
	}

	_, err = md2html.Run(cmd.Context(), cfg.App.Src, nil)
	return err
}
