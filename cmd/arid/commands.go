package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/arid-tools/internal/annotations"
	"github.com/ironsheep/arid-tools/internal/catalog"
	"github.com/ironsheep/arid-tools/internal/colormap"
	"github.com/ironsheep/arid-tools/internal/geometry"
	"github.com/ironsheep/arid-tools/internal/imaging"
	"github.com/ironsheep/arid-tools/internal/overlay"
)

func scenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List scenes with annotation counts and methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			if len(cat.Scenes) == 0 {
				fmt.Printf("No scenes found under %s\n", cat.Root)
				return nil
			}

			for _, s := range cat.Scenes {
				images, err := s.RGBImagePaths()
				if err != nil {
					log.Warn().Err(err).Str("scene", s.Title()).Msg("cannot list rgb images")
				}
				methods := "-"
				if m := s.Methods(); len(m) > 0 {
					methods = strings.Join(m, ",")
				}
				fmt.Printf("%-12s %-20s records=%-5d rgb=%-5d methods=%s\n",
					s.Experiment(), s.Title(), s.Store().Len(), len(images), methods)
			}
			return nil
		},
	}
}

type overlayMode int

const (
	modeOverlay overlayMode = iota
	modeRedact
)

func renderCmd() *cobra.Command {
	return overlayCmd("render <scene> <method>", "Draw annotation outlines and labels for a scene's RGB images", modeOverlay)
}

func redactCmd() *cobra.Command {
	return overlayCmd("redact <scene> <method>", "Blank annotated regions of a scene's RGB images", modeRedact)
}

func overlayCmd(use, short string, mode overlayMode) *cobra.Command {
	var imageID string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			scene, err := cat.Scene(args[0])
			if err != nil {
				return err
			}
			method := args[1]

			paths, err := scene.RGBImagePaths()
			if err != nil {
				return err
			}
			if imageID != "" {
				p, ok := paths[imageID]
				if !ok {
					return fmt.Errorf("image %s not found in %s", imageID, scene.RGBRoot())
				}
				paths = map[string]string{imageID: p}
			}

			cache := imaging.NewImageCache()
			renderer := overlay.New(colormap.NewRegistry())
			written := 0

			for _, id := range catalog.SortedKeys(paths) {
				anns, err := scene.Annotations(id)
				if errors.Is(err, annotations.ErrAnnotationNotFound) {
					log.Debug().Str("image", id).Msg("no annotations")
					continue
				} else if err != nil {
					return err
				}
				if len(anns) == 0 {
					continue
				}

				src, err := cache.Load(paths[id])
				if err != nil {
					return err
				}
				dest, err := overlay.AnnotationPath(paths[id], method)
				if err != nil {
					return err
				}

				// Cached images are shared; draw on a copy
				canvas := imaging.Clone(src)
				cache.Evict(paths[id])

				var drawErr error
				switch mode {
				case modeRedact:
					_, drawErr = renderer.RedactRegions(canvas, anns, dest, true)
				default:
					_, drawErr = renderer.RenderOverlay(canvas, anns, dest, true)
				}
				if drawErr != nil {
					return fmt.Errorf("image %s: %w", id, drawErr)
				}

				log.Debug().Str("image", id).Str("dest", dest).Int("annotations", len(anns)).Msg("written")
				written++
			}

			fmt.Printf("Wrote %d image(s) for %s/%s\n", written, scene.Title(), method)
			return nil
		},
	}

	cmd.Flags().StringVar(&imageID, "image", "", "only process the image with this id")
	return cmd
}

func findCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <prefix>",
		Short: "Find annotations whose id starts with a prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			matches := cat.FindByObjectPrefix(args[0])
			for _, m := range matches {
				fmt.Printf("%-20s %-12s %-24s %.2f\n",
					m.Scene.Title(), annotations.ImageID(m.ImagePath), m.Annotation.Label(), m.Annotation.Score)
			}
			fmt.Printf("%d match(es)\n", len(matches))
			return nil
		},
	}
}

func iouCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "iou <scene> <image>",
		Short: "Pairwise IoU between the bounding boxes of an image's annotations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			scene, err := cat.Scene(args[0])
			if err != nil {
				return err
			}
			anns, err := scene.Annotations(args[1])
			if err != nil {
				return err
			}

			boxes := make([][]geometry.Point, len(anns))
			for i, a := range anns {
				if boxes[i], err = geometry.BoundingBox(a.Coords); err != nil {
					return fmt.Errorf("annotation %d (%s): %w", i, a.Label(), err)
				}
			}

			for i := 0; i < len(boxes); i++ {
				for j := i + 1; j < len(boxes); j++ {
					iou, err := geometry.ComputeBoxIoU(boxes[i], boxes[j])
					if err != nil {
						return err
					}
					fmt.Printf("%-24s %-24s %.4f\n", anns[i].Label(), anns[j].Label(), iou)
				}
			}
			return nil
		},
	}
}

func colormapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colormaps",
		Short: "List the available color scales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := colormap.NewRegistry()
			for _, name := range reg.Names() {
				lo, err := colormap.ScoreToColor(reg, 0, name)
				if err != nil {
					return err
				}
				hi, err := colormap.ScoreToColor(reg, 1, name)
				if err != nil {
					return err
				}
				fmt.Printf("%-12s %s -> %s\n", name, lo.Hex(), hi.Hex())
			}
			return nil
		},
	}
}
