// Package config loads chart documents for the piechart command.
//
// A document is YAML or JSON, chosen by file extension, and is validated
// against an embedded JSON schema before it is decoded. Angles in documents
// are degrees; piechart itself works in radians.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/piechart"
	"github.com/gogpu/piechart/internal/log"
)

//go:embed schema.json
var schema []byte

// ErrInvalidDocument is returned when a document fails schema validation.
var ErrInvalidDocument = errors.New("config: invalid document")

// Default canvas size used when a document omits width or height.
const (
	DefaultWidth  = 400
	DefaultHeight = 400
)

// Env var names read by LogOptions.
const (
	EnvLogLevel  = "PIECHART_LOG_LEVEL"
	EnvLogFormat = "PIECHART_LOG_FORMAT"
	EnvLogFile   = "PIECHART_LOG_FILE"
)

// Document is a chart description as stored on disk.
type Document struct {
	Width          float64  `json:"width,omitempty" yaml:"width,omitempty"`
	Height         float64  `json:"height,omitempty" yaml:"height,omitempty"`
	InnerRadius    *float64 `json:"inner_radius,omitempty" yaml:"inner_radius,omitempty"`
	OuterRadius    *float64 `json:"outer_radius,omitempty" yaml:"outer_radius,omitempty"`
	PadAngle       float64  `json:"pad_angle,omitempty" yaml:"pad_angle,omitempty"`
	StartAngle     *float64 `json:"start_angle,omitempty" yaml:"start_angle,omitempty"`
	EndAngle       *float64 `json:"end_angle,omitempty" yaml:"end_angle,omitempty"`
	NegativeValues string   `json:"negative_values,omitempty" yaml:"negative_values,omitempty"`
	Mode           string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	Palette        []string `json:"palette,omitempty" yaml:"palette,omitempty"`
	LabelFormat    string   `json:"label_format,omitempty" yaml:"label_format,omitempty"`
	Locale         string   `json:"locale,omitempty" yaml:"locale,omitempty"`
	FontSize       float64  `json:"font_size,omitempty" yaml:"font_size,omitempty"`
	LabelColor     string   `json:"label_color,omitempty" yaml:"label_color,omitempty"`

	Data []piechart.DataItem `json:"data" yaml:"data"`
}

// Load reads and validates the document at path. Files ending in .json are
// decoded as JSON, everything else as YAML.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return doc, nil
}

// Parse validates and decodes a document. format is "json" or "yaml".
func Parse(data []byte, format string) (*Document, error) {
	raw := data
	switch format {
	case "json":
	case "yaml", "yml":
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		var err error
		if raw, err = json.Marshal(v); err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}

	if err := validate(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &doc, nil
}

func validate(raw []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}

// Config returns the chart configuration described by the document.
func (d *Document) Config() (piechart.Config, error) {
	w, h := d.Width, d.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}

	policy, err := piechart.ParseNegativePolicy(d.NegativeValues)
	if err != nil {
		return piechart.Config{}, err
	}
	opts := []piechart.Option{
		piechart.WithPadAngle(radians(d.PadAngle)),
		piechart.WithNegativeValues(policy),
	}
	if d.InnerRadius != nil {
		opts = append(opts, piechart.WithInnerRadius(*d.InnerRadius))
	}
	if d.OuterRadius != nil {
		opts = append(opts, piechart.WithOuterRadius(*d.OuterRadius))
	}
	if d.StartAngle != nil || d.EndAngle != nil {
		start := 0.0
		if d.StartAngle != nil {
			start = radians(*d.StartAngle)
		}
		end := start + 2*math.Pi
		if d.EndAngle != nil {
			end = radians(*d.EndAngle)
		}
		opts = append(opts, piechart.WithAngles(start, end))
	}
	return piechart.NewConfig(w, h, opts...)
}

// ViewOptions returns the labelling and color options of the document.
func (d *Document) ViewOptions() ([]piechart.ViewOption, error) {
	mode, err := piechart.ParseMode(d.Mode)
	if err != nil {
		return nil, err
	}
	opts := []piechart.ViewOption{piechart.WithMode(mode)}

	if len(d.Palette) > 0 {
		p, err := piechart.ParsePalette(d.Palette...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, piechart.WithPalette(p))
	}

	switch d.LabelFormat {
	case "", "plain":
	case "percent":
		tag := language.English
		if d.Locale != "" {
			if tag, err = language.Parse(d.Locale); err != nil {
				return nil, fmt.Errorf("config: locale %q: %w", d.Locale, err)
			}
		}
		opts = append(opts, piechart.WithLabelFormat(piechart.PercentLabel(tag)))
	default:
		return nil, fmt.Errorf("config: unknown label format %q", d.LabelFormat)
	}

	if d.FontSize > 0 {
		opts = append(opts, piechart.WithFontSize(d.FontSize))
	}
	if d.LabelColor != "" {
		p, err := piechart.ParsePalette(d.LabelColor)
		if err != nil {
			return nil, err
		}
		opts = append(opts, piechart.WithLabelColor(p[0]))
	}
	return opts, nil
}

// Build lays out the document and returns its view.
func (d *Document) Build() (*piechart.View, error) {
	cfg, err := d.Config()
	if err != nil {
		return nil, err
	}
	opts, err := d.ViewOptions()
	if err != nil {
		return nil, err
	}
	return piechart.NewView(d.Data, cfg, opts...)
}

// LogOptions reads logger options from the environment.
func LogOptions() log.Options {
	return log.Options{
		Level:  getenv(EnvLogLevel, "info"),
		Format: getenv(EnvLogFormat, "text"),
		File:   os.Getenv(EnvLogFile),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
