package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/turbot/kgx-ingest-sdk/config"
	"github.com/turbot/kgx-ingest-sdk/data_puller"
	"github.com/turbot/kgx-ingest-sdk/filepaths"
	"github.com/turbot/kgx-ingest-sdk/kgx_writer"
	"github.com/turbot/kgx-ingest-sdk/loader"
)

const (
	flagConfig       = "config"
	flagSkipDownload = "skip-download"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [loader...]",
		Short: "Download and parse the given loaders (default: every loader in the config file)",
		RunE:  runRunCmd,
	}
	cmd.Flags().String(flagConfig, "", "Path to an HCL run config file")
	cmd.Flags().Bool(flagSkipDownload, false, "Parse previously downloaded data files without downloading")
	_ = viper.BindPFlag(flagConfig, cmd.Flags().Lookup(flagConfig))
	_ = viper.BindPFlag(flagSkipDownload, cmd.Flags().Lookup(flagSkipDownload))
	return cmd
}

func runRunCmd(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if path := viper.GetString(flagConfig); path != "" {
		var err error
		if cfg, err = config.LoadFile(path); err != nil {
			return err
		}
	}

	loaderIds := args
	if len(loaderIds) == 0 {
		for _, l := range cfg.Loaders {
			loaderIds = append(loaderIds, l.Identifier)
		}
	}
	if len(loaderIds) == 0 {
		return fmt.Errorf("no loaders specified - pass loader names or add loader blocks to the config")
	}

	r := &runner{
		cfg:          cfg,
		runId:        uuid.NewString(),
		puller:       data_puller.New(data_puller.WithLimiter(cfg.DownloadLimiter())),
		skipDownload: viper.GetBool(flagSkipDownload),
	}
	var errList []error
	for _, id := range loaderIds {
		md, err := r.runLoader(cmd.Context(), id)
		if err != nil {
			slog.Error("loader failed", "loader", id, "error", err)
			errList = append(errList, fmt.Errorf("%s: %w", id, err))
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records, %d skipped, %d nodes, %d edges\n",
			id, md.RecordCounter, md.SkippedRecordCounter, md.NodeCount, md.EdgeCount)
	}
	return errors.Join(errList...)
}

type runner struct {
	cfg          *config.RunConfig
	runId        string
	puller       *data_puller.Puller
	skipDownload bool
}

// runLoader downloads and parses a single loader, writing its KGX files and run metadata
func (r *runner) runLoader(ctx context.Context, id string) (*RunMetadata, error) {
	loaderCfg := r.cfg.Loader(id)

	outputDir, err := filepaths.EnsureLoaderPath(r.cfg.OutputDir, id)
	if err != nil {
		return nil, err
	}
	dataDir := ""
	if loaderCfg.DataDir != nil {
		dataDir = *loaderCfg.DataDir
		if err := filepaths.EnsureDir(dataDir); err != nil {
			return nil, err
		}
	} else if dataDir, err = filepaths.EnsureLoaderPath(r.cfg.DataDir, id); err != nil {
		return nil, err
	}

	writer, err := kgx_writer.New(outputDir)
	if err != nil {
		return nil, err
	}
	// releases the output lock on the early return paths
	defer writer.Close()

	l, err := loader.Factory.GetLoader(id, &loader.LoaderParams{
		DataPath:     dataDir,
		OutputWriter: writer,
		Puller:       r.puller,
	})
	if err != nil {
		return nil, err
	}

	version, err := l.GetLatestSourceVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get source version: %w", err)
	}
	if !r.skipDownload && !loaderCfg.IsSkipDownload() {
		if err := l.GetData(ctx); err != nil {
			return nil, fmt.Errorf("failed to get data: %w", err)
		}
	}

	start := time.Now()
	loadMetadata, err := l.ParseData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse data: %w", err)
	}

	md := &RunMetadata{
		RunId:          r.runId,
		SourceId:       l.Identifier(),
		ProvenanceId:   l.ProvenanceId(),
		SourceVersion:  version,
		ParsingVersion: l.ParsingVersion(),
		StartTime:      start.UTC(),
		Duration:       time.Since(start).String(),
		NodeCount:      writer.NodeCount(),
		EdgeCount:      writer.EdgeCount(),
		LoadMetadata:   *loadMetadata,
	}
	// the nodes and edges must be on disk before the metadata describing them
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close KGX output: %w", err)
	}
	if err := md.Write(outputDir); err != nil {
		return nil, err
	}
	slog.Info("loader complete", "loader", id, "records", md.RecordCounter, "skipped", md.SkippedRecordCounter)
	return md, nil
}
