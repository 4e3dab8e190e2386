// Command lvlayout is a demo shell around the layout engine: it parses
// image and container sizes from flags, runs a generation, prints the
// ranked scores and optionally renders an ASCII preview of the best
// arrangement. The engine itself stays pure; all I/O lives here.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/lvlayout/layout"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app := &cli.App{
		Name:  "lvlayout",
		Usage: "enumerate, score and preview aligned image layouts",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "image",
				Aliases:  []string{"i"},
				Usage:    "image size as WxH (repeatable, order is kept)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "container",
				Aliases: []string{"c"},
				Usage:   "container size as WxH",
				Value:   "1200x800",
			},
			&cli.Float64Flag{Name: "hspace", Usage: "horizontal gap between slots", Value: 8},
			&cli.Float64Flag{Name: "vspace", Usage: "vertical gap between slots", Value: 8},
			&cli.IntFlag{Name: "split-limit", Usage: "split depth cap (-1 = unbounded)", Value: 2},
			&cli.IntFlag{Name: "top", Usage: "result cap (-1 = all layouts)", Value: 8},
			&cli.IntFlag{Name: "parallelism", Usage: "concurrent workers", Value: 1},
			&cli.BoolFlag{Name: "preview", Usage: "render the best layout as a box grid"},
		},
		Action: func(c *cli.Context) error {
			return run(c, log)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("lvlayout failed")
	}
}

// run executes one generation from parsed flags.
func run(c *cli.Context, log zerolog.Logger) error {
	images, err := parseImages(c.StringSlice("image"))
	if err != nil {
		return err
	}
	container, err := parseSize(c.String("container"))
	if err != nil {
		return fmt.Errorf("container: %w", err)
	}

	gen, err := layout.NewGenerator(layout.Options{
		HorizontalSpacing: c.Float64("hspace"),
		VerticalSpacing:   c.Float64("vspace"),
		SplitLevelLimit:   c.Int("split-limit"),
		Parallelism:       c.Int("parallelism"),
	})
	if err != nil {
		return err
	}

	log.Info().
		Int("images", len(images)).
		Float64("width", container.Width).
		Float64("height", container.Height).
		Int("splitLimit", c.Int("split-limit")).
		Msg("generating layouts")

	var layouts []layout.AlignedImageLayout
	if top := c.Int("top"); top >= 0 {
		layouts, err = gen.GenerateTopLayouts(images, container, top)
	} else {
		layouts, err = gen.GenerateLayouts(images, container)
	}
	if err != nil {
		return err
	}

	printer := message.NewPrinter(language.English)
	printer.Printf("%d layout(s)\n", len(layouts))
	for rank, l := range layouts {
		printer.Printf("#%d  score=%.4f  coverage=%.4f  scale=%.4f  area=%.4f\n",
			rank+1, l.Score, l.ScoreOfCoverage, l.ScoreOfScaleAccordance, l.ScoreOfAreaAccordance)
	}

	if c.Bool("preview") && len(layouts) > 0 {
		fmt.Println(renderPreview(layouts[0], container))
	}

	return nil
}

// parseImages converts repeated WxH flags into the engine's image sequence.
func parseImages(specs []string) ([]layout.Image, error) {
	sizes := make([]layout.Size, len(specs))
	for i, spec := range specs {
		s, err := parseSize(spec)
		if err != nil {
			return nil, fmt.Errorf("image %d: %w", i, err)
		}
		sizes[i] = s
	}

	return layout.Sizes(sizes), nil
}

// parseSize parses "WxH" with positive float components.
func parseSize(spec string) (layout.Size, error) {
	w, h, found := strings.Cut(strings.ToLower(spec), "x")
	if !found {
		return layout.Size{}, fmt.Errorf("%q is not of the form WxH", spec)
	}
	width, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return layout.Size{}, fmt.Errorf("%q: bad width: %w", spec, err)
	}
	height, err := strconv.ParseFloat(h, 64)
	if err != nil {
		return layout.Size{}, fmt.Errorf("%q: bad height: %w", spec, err)
	}
	if width <= 0 || height <= 0 {
		return layout.Size{}, fmt.Errorf("%q: sides must be positive", spec)
	}

	return layout.Size{Width: width, Height: height}, nil
}

// previewColumns is the character width of the preview canvas. Rows are
// halved to compensate for terminal cell aspect.
const previewColumns = 56

var (
	previewBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	previewLegend = lipgloss.NewStyle().Faint(true)
)

// renderPreview rasterizes the layout's regions onto a character grid,
// labelling each slot with its image index.
func renderPreview(l layout.AlignedImageLayout, container layout.Size) string {
	scaleX := float64(previewColumns) / container.Width
	rows := int(container.Height * scaleX / 2)
	if rows < 1 {
		rows = 1
	}
	scaleY := float64(rows) / container.Height

	canvas := make([][]rune, rows)
	for y := range canvas {
		canvas[y] = []rune(strings.Repeat("·", previewColumns))
	}

	for i, region := range l.Regions {
		label := rune('0' + i%10)
		x0, x1 := int(region.X*scaleX), int((region.X+region.Width)*scaleX)
		y0, y1 := int(region.Y*scaleY), int((region.Y+region.Height)*scaleY)
		for y := y0; y < y1 && y < rows; y++ {
			for x := x0; x < x1 && x < previewColumns; x++ {
				canvas[y][x] = label
			}
		}
	}

	lines := make([]string, rows)
	for y, row := range canvas {
		lines[y] = string(row)
	}

	return previewBorder.Render(strings.Join(lines, "\n")) + "\n" +
		previewLegend.Render("each digit marks one image slot; dots are uncovered container")
}
