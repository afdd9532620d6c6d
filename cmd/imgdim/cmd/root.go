/*
Copyright © 2024 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	"github.com/blacktop/go-imgdim"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	verbose bool
	asJSON  bool
	jobs    int
	fitMode string
	fitBox  string
)

func init() {
	log.SetHandler(clihander.Default)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose logging")
	rootCmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Emit results as JSON")
	rootCmd.Flags().IntVarP(&jobs, "jobs", "n", 4, "Number of files to size concurrently")
	rootCmd.Flags().StringVar(&fitMode, "fit", "", "Also print object-fit placement (contain, cover, fill, none, scale-down)")
	rootCmd.Flags().StringVar(&fitBox, "box", "", "Bounding box for --fit as WxH, e.g. 1920x1080")
}

type sizeReport struct {
	Path   string `json:"path"`
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
	Format string `json:"format"`
	Error  string `json:"error,omitempty"`
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "imgdim",
	Short: "Print image dimensions without decoding pixels.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		var (
			mode imgdim.FitMode
			box  imgdim.Size
			err  error
		)
		if fitMode != "" {
			if mode, err = parseFitMode(fitMode); err != nil {
				return err
			}
			if box, err = parseBox(fitBox); err != nil {
				return err
			}
		}

		results, err := imgdim.DetectAll(cmd.Context(), args, jobs)
		if err != nil {
			return err
		}

		reports := make([]sizeReport, len(results))
		failed := 0
		for i, res := range results {
			reports[i] = sizeReport{
				Path:   res.Path,
				Width:  res.Size.Width,
				Height: res.Size.Height,
				Format: res.Format.String(),
			}
			if res.Err != nil {
				reports[i].Error = res.Err.Error()
				failed++
			}
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			if term.IsTerminal(int(os.Stdout.Fd())) {
				enc.SetIndent("", "  ")
			}
			if err := enc.Encode(reports); err != nil {
				return err
			}
		} else {
			for i, rep := range reports {
				if rep.Error != "" {
					log.WithField("path", rep.Path).Error(rep.Error)
					continue
				}
				fmt.Printf("%dx%d %s %s\n", rep.Width, rep.Height, rep.Format, rep.Path)
				if fitMode != "" {
					p := imgdim.Fit(results[i].Size, box, mode)
					log.Debugf("fit %s into %dx%d", mode, box.Width, box.Height)
					fmt.Printf("  %s: %dx%d @ (%d,%d)\n", mode, p.Size.Width, p.Size.Height, p.X, p.Y)
				}
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d file(s) failed", failed, len(results))
		}
		return nil
	},
}

// parseFitMode maps the CSS object-fit keywords onto imgdim's fit modes.
func parseFitMode(s string) (imgdim.FitMode, error) {
	switch strings.ToLower(s) {
	case "fill":
		return imgdim.FitFill, nil
	case "contain":
		return imgdim.FitContain, nil
	case "cover":
		return imgdim.FitCover, nil
	case "none":
		return imgdim.FitNone, nil
	case "scale-down":
		return imgdim.FitScaleDown, nil
	default:
		return 0, fmt.Errorf("unknown fit mode %q", s)
	}
}

// parseBox parses a WxH bounding box, e.g. "1920x1080".
func parseBox(s string) (imgdim.Size, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return imgdim.Size{}, fmt.Errorf("box must be WxH, got %q", s)
	}
	width, err := strconv.ParseUint(w, 10, 32)
	if err != nil {
		return imgdim.Size{}, fmt.Errorf("bad box width %q", w)
	}
	height, err := strconv.ParseUint(h, 10, 32)
	if err != nil {
		return imgdim.Size{}, fmt.Errorf("bad box height %q", h)
	}
	if width == 0 || height == 0 {
		return imgdim.Size{}, fmt.Errorf("box must be non-empty, got %q", s)
	}
	return imgdim.Size{Width: uint32(width), Height: uint32(height)}, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
