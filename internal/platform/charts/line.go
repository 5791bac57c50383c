package charts

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var ErrInvalidSize = errors.New("chart size must be positive")

// Point is one sample of a yearly series.
type Point struct {
	X float64
	Y float64
}

type LineChart struct {
	Title  string
	XLabel string
	YLabel string
	Points []Point
	Width  vg.Length
	Height vg.Length
	// IntegerTicks forces whole-number ticks on the Y axis, used for counts.
	IntegerTicks bool
}

var (
	lineColor = color.RGBA{R: 0x4c, G: 0xb0, B: 0x0a, A: 0xff}
	fillColor = color.RGBA{R: 0x3c, G: 0xb3, B: 0x71, A: 0x33}
)

// WritePNG draws the chart and writes it as PNG.
func (c LineChart) WritePNG(w io.Writer) error {
	width, height := c.Width, c.Height
	if width == 0 {
		width = 8 * vg.Inch
	}
	if height == 0 {
		height = 4 * vg.Inch
	}
	if width < 0 || height < 0 {
		return ErrInvalidSize
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.X.Tick.Marker = yearTicks{}
	if c.IntegerTicks {
		p.Y.Tick.Marker = integerTicks{}
	}
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	if len(c.Points) == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Max = 1
	} else {
		pts := make(plotter.XYs, len(c.Points))
		for i, pt := range c.Points {
			pts[i].X = pt.X
			pts[i].Y = pt.Y
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("build line: %w", err)
		}
		line.Color = lineColor
		line.LineStyle.Width = vg.Points(2)
		line.FillColor = fillColor
		p.Add(line)
		if len(c.Points) == 1 {
			p.X.Min, p.X.Max = c.Points[0].X-1, c.Points[0].X+1
		}
	}

	writer, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("create plot writer: %w", err)
	}
	if _, err := writer.WriteTo(w); err != nil {
		return fmt.Errorf("write plot: %w", err)
	}
	return nil
}

// yearTicks labels only whole years.
type yearTicks struct{}

func (yearTicks) Ticks(min, max float64) []plot.Tick {
	return wholeTicks(min, max)
}

type integerTicks struct{}

func (integerTicks) Ticks(min, max float64) []plot.Tick {
	return wholeTicks(min, max)
}

func wholeTicks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	span := max - min
	step := 1
	if span > 12 {
		step = int(span/10) + 1
	}
	start := int(min)
	if float64(start) < min {
		start++
	}
	for v := start; float64(v) <= max; v += step {
		ticks = append(ticks, plot.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}
	return ticks
}
