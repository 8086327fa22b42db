package command

import (
	"NK2Reader/internal/application/service"
	"NK2Reader/internal/domain"
	"NK2Reader/internal/platform/client"
	"NK2Reader/internal/platform/nk2"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	cliName        = "nk2dump"
	cliDescription = "the command-line tool for autocomplete name-cache files"

	FormatTable = "table"
	FormatJSON  = "json"
	FormatSpew  = "spew"
)

type GlobalFlags struct {
	Format   string
	Codepage string
	Strict   bool
	Server   string
	Debug    bool
}

var globalFlags GlobalFlags

func NewRootCommand() *cobra.Command {
	cobra.EnablePrefixMatching = true

	cmd := &cobra.Command{
		Use:          cliName,
		Short:        cliDescription,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&globalFlags.Format, "output-format", FormatTable, "output format: table, json or spew")
	cmd.PersistentFlags().StringVar(&globalFlags.Codepage, "codepage", nk2.DefaultCodepage, "codepage of 8-bit strings")
	cmd.PersistentFlags().BoolVar(&globalFlags.Strict, "strict", false, "reject rows that repeat a property")
	cmd.PersistentFlags().StringVar(&globalFlags.Server, "server", "", "decode through the HTTP API at this URL instead of locally")
	cmd.PersistentFlags().BoolVar(&globalFlags.Debug, "debug", false, "log decoder details to stderr")

	cmd.AddCommand(
		newDecodeCommand(),
		newContactsCommand(),
		newDumpCommand(),
		newWatchCommand(),
	)
	return cmd
}

func outputFormat(cmd *cobra.Command) string {
	v, err := cmd.Flags().GetString("output-format")
	if err != nil {
		return FormatTable
	}
	return strings.ToLower(v)
}

func IsFormatJSON(cmd *cobra.Command) bool {
	return outputFormat(cmd) == FormatJSON
}

func newLogger() *zap.Logger {
	if !globalFlags.Debug {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// decodeLocal reads and decodes path with the decode service.
func decodeLocal(path string) (domain.File, error) {
	logger := newLogger()
	defer logger.Sync()

	decoder, err := nk2.NewDecoder(nk2.Options{
		Codepage:         globalFlags.Codepage,
		StrictDuplicates: globalFlags.Strict,
		Logger:           logger,
	})
	if err != nil {
		return domain.File{}, err
	}
	svc := service.NewDecodeFileService(decoder, nil, cliConfig(), logger)
	result := svc.Execute(service.DecodeFileCommand{Path: path})
	return result.File, result.Err
}

func remoteClient() *client.DecodeServerClient {
	return client.NewDecodeServerClient(strings.TrimRight(globalFlags.Server, "/"))
}

func readInput(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	return data, filepath.Base(path), err
}
