package config

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/Quasimondo/QuasimondoLibsJS-sub001/geom"
)

// Render holds the rendering defaults of the command line tool. Each field
// can be set through a QLIB_ prefixed environment variable.
type Render struct {
	CanvasSize int     `envconfig:"CANVAS_SIZE" default:"800"`
	Padding    float64 `envconfig:"PADDING" default:"40"`
	LineWidth  float64 `envconfig:"LINE_WIDTH" default:"2"`
	Output     string  `envconfig:"OUTPUT" default:"out.png"`
}

func Load() (*Render, error) {
	var cfg Render
	if err := envconfig.Process("qlib", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Options converts the settings for geom.RenderPNG.
func (r *Render) Options() geom.RenderOptions {
	return geom.RenderOptions{
		Size:      r.CanvasSize,
		Padding:   r.Padding,
		LineWidth: r.LineWidth,
	}
}
