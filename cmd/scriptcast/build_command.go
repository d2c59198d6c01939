package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"scriptcast/internal/history"
	"scriptcast/internal/logging"
	"scriptcast/internal/pipeline"
	"scriptcast/internal/textutil"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var (
		title     string
		voice     string
		outputDir string
		videoPath string
		force     bool
		mock      bool
	)

	cmd := &cobra.Command{
		Use:   "build <script.md>",
		Short: "Render a script into audio segments and publishing artifacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			if strings.TrimSpace(voice) == "" {
				voice = cfg.TTS.Voice
			}

			synth, err := ctx.synthesizer(mock)
			if err != nil {
				return err
			}

			var hist *history.Store
			if cfg.History.Enabled {
				store, histErr := history.Open(cfg.Paths.DataDir)
				if histErr != nil {
					logging.WarnWithContext(logger, "build history unavailable", "history_open_failed",
						logging.Error(histErr),
						logging.String(logging.FieldImpact, "this build will not be recorded"))
				} else {
					hist = store
					defer hist.Close()
				}
			}

			report, err := pipeline.New(cfg, synth, hist, logger).Run(cmd.Context(), pipeline.Request{
				ScriptPath: args[0],
				Title:      title,
				Voice:      voice,
				OutputDir:  outputDir,
				Force:      force,
				Mock:       mock,
				VideoPath:  videoPath,
			})
			if err != nil {
				return err
			}

			printBuildReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Override the derived episode title")
	cmd.Flags().StringVar(&voice, "voice", "", "Voice ID (defaults to tts.voice from config)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (defaults to paths.output_dir)")
	cmd.Flags().StringVar(&videoPath, "video", "", "Mux the master track onto this video file")
	cmd.Flags().BoolVar(&force, "force", false, "Re-synthesize every segment, ignoring the render cache")
	cmd.Flags().BoolVar(&mock, "mock", false, "Use the offline mock synthesizer")

	return cmd
}

func printBuildReport(cmd *cobra.Command, report *pipeline.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Build %s — %s\n", report.BuildID, report.Title)

	rows := make([][]string, 0, len(report.Results))
	for _, res := range report.Results {
		state := "rendered"
		if res.Cached {
			state = "cached"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", res.Segment.Index),
			res.Segment.Title,
			state,
			textutil.FormatChapterOffset(res.Duration),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Segment", "State", "Duration"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
	))

	if report.Timeline.HasDurations {
		fmt.Fprintf(out, "Total runtime: %s\n", textutil.FormatChapterOffset(report.TotalDuration))
	}
	if report.MasterPath != "" {
		fmt.Fprintf(out, "Master track: %s\n", report.MasterPath)
	}
	if report.MuxedPath != "" {
		fmt.Fprintf(out, "Muxed video: %s\n", report.MuxedPath)
	}
	fmt.Fprintf(out, "Review page: %s\n", report.ReviewPath)
	for _, warning := range report.Warnings {
		fmt.Fprintf(out, "Warning: %s\n", warning)
	}
}
