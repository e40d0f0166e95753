package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"face-diff-bot/config"
	"face-diff-bot/internal/domain/analysis"
	"face-diff-bot/internal/domain/entity"
	"face-diff-bot/internal/domain/port"
	"face-diff-bot/internal/infrastructure/vision"
	"face-diff-bot/internal/report"
)

type compareFlags struct {
	format    string
	profile   string
	markedly  float64
	threshold float64
	overlay   string
}

func main() {
	if err := newRootCmd(newDetector).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newDetector(cfg *config.Config) (port.LandmarkDetector, io.Closer, error) {
	d, err := vision.NewMeshDetector(vision.DefaultMeshOptions(cfg.Vision.FaceDetectorModel, cfg.Vision.FaceMeshModel))
	if err != nil {
		return nil, nil, err
	}
	return d, d, nil
}

type detectorFactory func(cfg *config.Config) (port.LandmarkDetector, io.Closer, error)

func newRootCmd(factory detectorFactory) *cobra.Command {
	flags := &compareFlags{}

	cmd := &cobra.Command{
		Use:   "facecompare <past-image> <current-image>",
		Short: "Compare facial landmarks on two photos of the same person",
		Long: `facecompare detects facial landmarks on a past (reference) photo and a current photo,
measures eye, nose, mouth and face dimensions on both and reports which of them changed.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			applyFlags(cmd, flags, cfg)

			profile, err := cfg.Analysis.DescriptionProfile()
			if err != nil {
				return err
			}

			detector, closer, err := factory(cfg)
			if err != nil {
				return fmt.Errorf("create detector: %w", err)
			}
			defer closer.Close()

			return runCompare(cmd.Context(), cmd.OutOrStdout(), detector, analysis.NewDescriber(profile), cfg.Analysis.SignificanceThreshold, flags, args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "Output format: text or yaml")
	cmd.Flags().StringVar(&flags.profile, "profile", "", "Description profile: detailed or coarse (overrides DESCRIPTION_PROFILE)")
	cmd.Flags().Float64Var(&flags.markedly, "markedly", 0, "Percent from which a change is described as marked (overrides the profile)")
	cmd.Flags().Float64Var(&flags.threshold, "threshold", analysis.DefaultSignificanceThreshold, "Significance threshold in percent")
	cmd.Flags().StringVar(&flags.overlay, "overlay", "", "Write the current photo with drawn landmarks to this JPEG file")

	return cmd
}

// applyFlags переопределяет настройки из окружения явно заданными флагами
func applyFlags(cmd *cobra.Command, flags *compareFlags, cfg *config.Config) {
	if cmd.Flags().Changed("profile") {
		cfg.Analysis.Profile = flags.profile
	}
	if cmd.Flags().Changed("markedly") {
		cfg.Analysis.MarkedlyThreshold = flags.markedly
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Analysis.SignificanceThreshold = flags.threshold
	}
}

func runCompare(ctx context.Context, out io.Writer, detector port.LandmarkDetector, describer port.ChangeDescriber, threshold float64, flags *compareFlags, pastPath, currentPath string) error {
	if flags.format != "text" && flags.format != "yaml" {
		return fmt.Errorf("unknown format %q", flags.format)
	}

	past, _, err := detectFile(ctx, detector, pastPath)
	if err != nil {
		return err
	}
	current, currentImage, err := detectFile(ctx, detector, currentPath)
	if err != nil {
		return err
	}

	cmp, err := analysis.Compare(past, current, describer, threshold)
	if err != nil {
		return err
	}
	result := &entity.ComparisonResult{
		Differences:  cmp.Differences,
		Descriptions: cmp.Descriptions,
		Significant:  cmp.Significant,
	}

	if flags.overlay != "" {
		img, err := detector.DrawLandmarks(currentImage, current)
		if err != nil {
			return fmt.Errorf("draw landmarks: %w", err)
		}
		if err := os.WriteFile(flags.overlay, img, 0o644); err != nil {
			return fmt.Errorf("write overlay: %w", err)
		}
	}

	if flags.format == "yaml" {
		data, err := report.YAML(result)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	_, err = io.WriteString(out, report.Text(result))
	return err
}

func detectFile(ctx context.Context, detector port.LandmarkDetector, path string) (entity.PointSet, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	points, err := detector.Detect(ctx, data)
	if err == nil && points.Len() == 0 {
		err = entity.ErrNoFaceFound
	}
	if err != nil {
		if errors.Is(err, entity.ErrNoFaceFound) {
			return nil, nil, fmt.Errorf("%s: %w", path, entity.ErrNoFaceFound)
		}
		return nil, nil, fmt.Errorf("detect landmarks in %s: %w", path, err)
	}
	return points, data, nil
}
