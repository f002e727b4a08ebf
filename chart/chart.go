// Package chart 绘制井筒压力剖面图
package chart

import (
	"fmt"
	"image/color"
	"io"

	"fluidlevel/model"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	curveColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	levelColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// Size 图片尺寸
type Size struct {
	Width  vg.Length
	Height vg.Length
}

func SizeCm(width, height float64) Size {
	return Size{Width: vg.Length(width) * vg.Centimeter, Height: vg.Length(height) * vg.Centimeter}
}

// NewPlot 横轴压力，纵轴深度向下
func NewPlot(res model.LevelResult) (*plot.Plot, error) {
	if len(res.Curve.Depth) == 0 || len(res.Curve.Depth) != len(res.Curve.Pressure) {
		return nil, fmt.Errorf("剖面数据为空或长度不一致: depth=%d pressure=%d",
			len(res.Curve.Depth), len(res.Curve.Pressure))
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Fluid level %.2f m, submergence %.2f m", res.Level, res.Submergence)
	p.X.Label.Text = "Pressure (MPa)"
	p.Y.Label.Text = "Depth (m)"
	p.Y.Scale = plot.InvertedScale{Normalizer: p.Y.Scale}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(res.Curve.Depth))
	for i := range res.Curve.Depth {
		pts[i].X = res.Curve.Pressure[i]
		pts[i].Y = res.Curve.Depth[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = curveColor
	line.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add("pressure", line)

	// 液面位置
	level, err := plotter.NewScatter(plotter.XYs{{X: levelPressure(res), Y: res.Level}})
	if err != nil {
		return nil, err
	}
	level.GlyphStyle.Color = levelColor
	level.GlyphStyle.Shape = draw.CircleGlyph{}
	level.GlyphStyle.Radius = vg.Points(4)
	p.Add(level)
	p.Legend.Add("fluid level", level)
	p.Legend.Top = true

	return p, nil
}

// 剖面上液面深度处的压力，取第一个不浅于液面的点
func levelPressure(res model.LevelResult) float64 {
	for i, d := range res.Curve.Depth {
		if d >= res.Level {
			return res.Curve.Pressure[i]
		}
	}
	return res.Curve.Pressure[len(res.Curve.Pressure)-1]
}

// Render 按 format (png / svg / pdf) 写出剖面图
func Render(w io.Writer, res model.LevelResult, size Size, format string) error {
	p, err := NewPlot(res)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(size.Width, size.Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
