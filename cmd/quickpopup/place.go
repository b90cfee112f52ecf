package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	quickpopup "github.com/riverfjs/quickpopup-go"
	"github.com/riverfjs/quickpopup-go/internal/preview"
)

type placeOptions struct {
	selection string
	popup     string
	viewport  string
	json      bool
	preview   string
}

func newPlaceCmd() *cobra.Command {
	opts := &placeOptions{}
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute where the popup goes for a selection",
		Example: `  quickpopup place --selection 650,400,100,30 --popup 200,100 --viewport 1024,768
  quickpopup place --selection 20,0,40,16 --popup 200,100 --viewport 1024,768 --json --preview out.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlace(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.selection, "selection", "", "selection rectangle as top,left,width,height")
	f.StringVar(&opts.popup, "popup", "", "popup size as width,height")
	f.StringVar(&opts.viewport, "viewport", "", "viewport size as width,height")
	f.BoolVar(&opts.json, "json", false, "print the placement as JSON")
	f.StringVar(&opts.preview, "preview", "", "write a PNG preview to this path")
	_ = cmd.MarkFlagRequired("selection")
	_ = cmd.MarkFlagRequired("popup")
	_ = cmd.MarkFlagRequired("viewport")
	return cmd
}

func runPlace(cmd *cobra.Command, opts *placeOptions) error {
	s, err := parseFloats("selection", opts.selection, 4)
	if err != nil {
		return err
	}
	p, err := parseFloats("popup", opts.popup, 2)
	if err != nil {
		return err
	}
	v, err := parseFloats("viewport", opts.viewport, 2)
	if err != nil {
		return err
	}

	selection := quickpopup.Rect{Top: s[0], Left: s[1], Width: s[2], Height: s[3]}
	popup := quickpopup.Rect{Width: p[0], Height: p[1]}
	viewport := quickpopup.Viewport{Width: v[0], Height: v[1]}
	placement := quickpopup.CalculatePopupPosition(selection, popup, viewport)

	if opts.preview != "" {
		if err := writePreview(opts.preview, viewport, selection, popup, placement); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if opts.json {
		return json.NewEncoder(out).Encode(placement)
	}
	_, err = fmt.Fprintf(out, "%s top=%g left=%g\n", placement.Orientation, placement.Top, placement.Left)
	return err
}

func writePreview(path string, vp quickpopup.Viewport, selection, popup quickpopup.Rect, p quickpopup.Placement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	img := preview.Render(vp, selection, popup, p, *quickpopup.DefaultPopupConfig())
	if err := preview.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// parseFloats parses exactly n comma-separated numbers.
func parseFloats(name, value string, n int) ([]float64, error) {
	parts := strings.Split(value, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("--%s: want %d comma-separated numbers, got %q", name, n, value)
	}
	nums := make([]float64, n)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", name, err)
		}
		nums[i] = f
	}
	return nums, nil
}
