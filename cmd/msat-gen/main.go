package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/otterholte/market-survey-tool/config"
	"github.com/otterholte/market-survey-tool/core"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		slog.Error("Generation failed", "error", err)
		os.Exit(1)
	}
}

func run(output io.Writer, args []string) error {
	flags := flag.NewFlagSet("msat-gen", flag.ContinueOnError)
	flags.SetOutput(output)

	outputPath := flags.String("output", "MarketSurvey.xlsx", "Output path for the workbook (file, or directory to use the configured name)")
	includeSample := flags.Bool("sample", true, "Include demonstration data in the Property Data sheet")
	configFile := flags.String("config", "", "Optional YAML override for the workbook configuration")
	s3Bucket := flags.String("s3-bucket", "", "S3 bucket name for uploading the workbook")
	s3Prefix := flags.String("s3-prefix", "market-survey-output", "S3 prefix (folder) for uploaded files")

	if err := flags.Parse(args); err != nil {
		return err
	}

	// Initialize structured logger
	logger := slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *configFile != "" {
		slog.Info("Loading configuration override", "file", *configFile)
		loaded, err := config.Load(*configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	slog.Info("Creating Market Survey Analysis Tool workbook",
		"name", cfg.Name, "rows", cfg.RowCapacity, "sampleData", *includeSample)

	generator := core.NewGenerator(cfg)
	written, err := generator.Generate(*outputPath, *includeSample)
	if err != nil {
		return fmt.Errorf("generate workbook %s: %w", cfg.Name, err)
	}

	if *s3Bucket != "" {
		slog.Info("Starting S3 upload", "bucket", *s3Bucket, "prefix", *s3Prefix)
		awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
		if err != nil {
			return fmt.Errorf("unable to load AWS SDK config for S3: %w", err)
		}
		uploader := core.NewS3Uploader(awsCfg, *s3Bucket, *s3Prefix)
		if err := uploader.UploadWorkbook(written); err != nil {
			return fmt.Errorf("failed to upload workbook to s3: %w", err)
		}
		slog.Info("Successfully uploaded to S3")
	}

	fmt.Fprintf(output, "\nSuccess! Created %s\n", written)
	fmt.Fprintln(output, "\nHow to use:")
	fmt.Fprintln(output, "  1. Open 'Market Averages' sheet to set your market default prelease %")
	fmt.Fprintln(output, "  2. Enter property/floorplan data in 'Property Data' sheet")
	fmt.Fprintln(output, "  3. View calculated results in 'Leased Beds Report' sheet")
	fmt.Fprintln(output, "\nTip: Rows highlighted in yellow are using market averages (no property-specific % entered)")

	return nil
}
