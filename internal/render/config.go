package render

// Offset keys. The *_x companions of cost_num, pow, param, effects and the
// footer fields are accepted but have no effect on layout.
const (
	OffsetNameX       = "name_x"
	OffsetNameY       = "name_y"
	OffsetCostNumX    = "cost_num_x"
	OffsetCostNumY    = "cost_num_y"
	OffsetPowX        = "pow_x"
	OffsetPowY        = "pow_y"
	OffsetParamX      = "param_x"
	OffsetParamY      = "param_y"
	OffsetEffectsX    = "effects_x"
	OffsetEffectsY    = "effects_y"
	OffsetFooterTypeX = "footer_type_x"
	OffsetFooterColX  = "footer_color_x"
	OffsetFooterY     = "footer_y"
)

// Font size keys.
const (
	SizeName1Line     = "name_1line"
	SizeName2Line     = "name_2line"
	SizeCost          = "cost"
	SizePowParam      = "pow_param"
	SizeEffectsHeader = "effects_header"
	SizeEffectsBody   = "effects_body"
	SizeFooter        = "footer"
)

// LayoutEffectsMaxWidth is the wrap width of effect text in pixels.
const LayoutEffectsMaxWidth = "effects_max_width_px"

var (
	defaultOffsets = map[string]int{
		OffsetNameX: 0, OffsetNameY: 0, OffsetCostNumX: 0, OffsetCostNumY: 0,
		OffsetPowX: 0, OffsetPowY: 0, OffsetParamX: 0, OffsetParamY: 0,
		OffsetEffectsX: 0, OffsetEffectsY: 0, OffsetFooterTypeX: 0, OffsetFooterColX: 0, OffsetFooterY: 0,
	}
	defaultFontSizes = map[string]float64{
		SizeName1Line: 24, SizeName2Line: 20, SizeCost: 20, SizePowParam: 18,
		SizeEffectsHeader: 13, SizeEffectsBody: 11, SizeFooter: 15,
	}
	defaultLayoutOptions = map[string]float64{
		LayoutEffectsMaxWidth: 250,
	}
)

// Config controls the card layout. Treat it as a value: Merge builds new
// configs and nothing in this package modifies one.
type Config struct {
	FontPath      string             `yaml:"font_path" json:"font_path"`
	Offsets       map[string]int     `yaml:"offsets" json:"offsets"`
	FontSizes     map[string]float64 `yaml:"font_sizes" json:"font_sizes"`
	LayoutOptions map[string]float64 `yaml:"layout_options" json:"layout_options"`
}

// Defaults returns a config holding every recognised key.
func Defaults() Config {
	return Config{
		Offsets:       copyMap(defaultOffsets),
		FontSizes:     copyMap(defaultFontSizes),
		LayoutOptions: copyMap(defaultLayoutOptions),
	}
}

// Merge overlays overrides on base key by key. Only keys present in base are
// kept, so a partial override never drops a category.
func Merge(base, overrides Config) Config {
	out := Config{
		FontPath:      base.FontPath,
		Offsets:       overlay(base.Offsets, overrides.Offsets),
		FontSizes:     overlay(base.FontSizes, overrides.FontSizes),
		LayoutOptions: overlay(base.LayoutOptions, overrides.LayoutOptions),
	}
	if overrides.FontPath != "" {
		out.FontPath = overrides.FontPath
	}
	return out
}

// Offset returns the pixel delta for key, 0 when absent.
func (c Config) Offset(key string) float64 {
	return float64(c.Offsets[key])
}

// FontSize returns the size for key, falling back to the default when the
// key is absent or not positive.
func (c Config) FontSize(key string) float64 {
	if v, ok := c.FontSizes[key]; ok && v > 0 {
		return v
	}
	return defaultFontSizes[key]
}

// LayoutOption returns the layout value for key, falling back to the default.
func (c Config) LayoutOption(key string) float64 {
	if v, ok := c.LayoutOptions[key]; ok && v > 0 {
		return v
	}
	return defaultLayoutOptions[key]
}

func overlay[V any](base, over map[string]V) map[string]V {
	out := make(map[string]V, len(base))
	for k, v := range base {
		if o, ok := over[k]; ok {
			v = o
		}
		out[k] = v
	}
	return out
}

func copyMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
