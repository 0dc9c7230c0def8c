package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/shinyyama/astro-edit-backend/internal/ai"
	"github.com/shinyyama/astro-edit-backend/internal/config"
	"github.com/shinyyama/astro-edit-backend/internal/handler"
	"github.com/shinyyama/astro-edit-backend/internal/logging"
	"github.com/shinyyama/astro-edit-backend/internal/model"
	"github.com/shinyyama/astro-edit-backend/internal/reqctx"
	"github.com/shinyyama/astro-edit-backend/internal/service"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()
	logging.Init(os.Getenv("LOG_LEVEL"))
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "astroedit",
		Short:         "Process astrophotography stacks with Gemini",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newPresetsCmd(), newPromptCmd(), newProcessCmd())
	return root
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "Print preset defaults as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(handler.BuildPresetList())
		},
	}
}

func newPromptCmd() *cobra.Command {
	var paramsPath, factsPath string
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the edit prompt for a parameters file without calling any model",
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := readParams(paramsPath)
			if err != nil {
				return err
			}
			var facts *model.AstroFacts
			if factsPath != "" {
				raw, err := os.ReadFile(factsPath)
				if err != nil {
					return err
				}
				if facts, err = ai.ParseAstroFacts(string(raw)); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ai.BuildEditPrompt(params, facts))
			return err
		},
	}
	cmd.Flags().StringVar(&paramsPath, "params", "", "path to the parameters JSON document")
	cmd.Flags().StringVar(&factsPath, "facts", "", "optional path to an AstroFacts JSON document")
	_ = cmd.MarkFlagRequired("params")
	return cmd
}

func newProcessCmd() *cobra.Command {
	var imagePath, paramsPath, outPath, factsOut string
	cmd := &cobra.Command{
		Use:   "process",
		Short: "Run the full pipeline on a local image",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			params, err := readParams(paramsPath)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(imagePath)
			if err != nil {
				return err
			}
			mt := mimetype.Detect(data)
			if !mt.Is("image/png") && !mt.Is("image/jpeg") {
				return fmt.Errorf("%s: image must be PNG or JPEG, got %s", imagePath, mt.String())
			}

			ctx := reqctx.WithRID(context.Background(), "cli-"+time.Now().Format("20060102-150405"))
			client, err := ai.NewGenaiClient(ctx, cfg.GeminiAPIKey, "", nil)
			if err != nil {
				return err
			}
			backoff := ai.Backoff{MaxRetries: cfg.RetryMax, BaseDelay: cfg.RetryBaseDelay}
			svc := service.NewProcessService(
				ai.NewFactsClient(client, cfg.FactsModel, backoff),
				ai.NewGeminiImageClient(client, cfg.ImageModel, backoff),
			)
			res, err := svc.Process(ctx, service.ProcessInput{Image: data, MimeType: mt.String(), Params: params})
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, res.Image, 0o644); err != nil {
				return err
			}
			if factsOut != "" && res.Facts != nil {
				raw, _ := json.MarshalIndent(res.Facts, "", "  ")
				if err := os.WriteFile(factsOut, raw, 0o644); err != nil {
					return err
				}
			}
			log.Info().Str("out", outPath).Str("mime", res.MimeType).Bool("facts", res.Facts != nil).Msg("wrote processed image")
			return nil
		},
	}
	cmd.Flags().StringVar(&imagePath, "image", "", "input PNG or JPEG stack")
	cmd.Flags().StringVar(&paramsPath, "params", "", "path to the parameters JSON document")
	cmd.Flags().StringVar(&outPath, "out", "processed.png", "output image path")
	cmd.Flags().StringVar(&factsOut, "facts-out", "", "optional path to write the looked-up facts")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("params")
	return cmd
}

func readParams(path string) (model.EditParameters, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.EditParameters{}, err
	}
	return model.ParseEditParameters(raw)
}
