package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/williampepple1/post-inspector/internal/inspect"
	pio "github.com/williampepple1/post-inspector/internal/io"
	"github.com/williampepple1/post-inspector/internal/scraper"
)

var (
	outputFormat string
	outputLang   string
	outputFile   string
	fetchMode    string
	inputFile    string
)

func init() {
	inspectCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: table, json or yaml")
	inspectCmd.Flags().StringVar(&outputLang, "lang", "", "Label language for table output: en or ko")
	inspectCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the result to a file instead of stdout")
	inspectCmd.Flags().StringVar(&fetchMode, "mode", "", "Fetch mode: http or browser")
	inspectCmd.Flags().StringVarP(&inputFile, "input", "i", "", "File containing the URL to inspect")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <url | -> | inspect --input <file>",
	Short: "Inspects a single post or reel URL. Reads the URL from stdin when given \"-\".",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appConfig, err := loadConfig()
		if err != nil {
			return err
		}
		if outputFormat != "" {
			appConfig.Output.Format = outputFormat
		}
		if outputLang != "" {
			appConfig.Output.Lang = outputLang
		}
		if outputFile != "" {
			appConfig.Output.File = outputFile
		}
		if fetchMode != "" {
			appConfig.Fetcher.Mode = fetchMode
		}
		if err := appConfig.Validate(); err != nil {
			return err
		}

		logger, err := newLogger(appConfig)
		if err != nil {
			return err
		}

		url, err := readURL(pio.NewURLReader(cmd.InOrStdin()), args)
		if err != nil {
			return err
		}

		inspector := inspect.New(scraper.New(appConfig, logger), logger)
		env, code := inspector.Envelope(cmd.Context(), url)

		writer := pio.NewResultWriter(&appConfig.Output, cmd.OutOrStdout())
		if err := writer.Write(env); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		if !env.OK {
			return &exitError{code: exitCode(code)}
		}
		return nil
	},
}

// readURL takes the URL from --input when set, otherwise from args or stdin
func readURL(reader *pio.URLReader, args []string) (string, error) {
	if inputFile == "" {
		return reader.FromArgs(args)
	}
	if len(args) > 0 {
		return "", fmt.Errorf("--input cannot be combined with a URL argument")
	}
	return reader.ReadFromFile(inputFile)
}

// exitCode maps a failure code to a process exit status
func exitCode(code inspect.Code) int {
	switch code {
	case inspect.CodeInvalidURL:
		return 2
	case inspect.CodeNotFound:
		return 3
	case inspect.CodeParsingFailed:
		return 4
	default:
		return 1
	}
}
