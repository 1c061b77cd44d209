// Package colors holds the palettes used to render a board in the terminal
package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (board title, selections)
	Accent string `yaml:"accent"`

	// Column and card frames
	ColumnBorder string `yaml:"column_border"`
	DoneBorder   string `yaml:"done_border"`
	CardBorder   string `yaml:"card_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted text such as counts and ids
	Normal string `yaml:"normal"`

	// Shown next to a column holding more cards than its WIP limit
	WipWarning string `yaml:"wip_warning"`

	// Priority badges
	PriorityLow    string `yaml:"priority_low"`
	PriorityMedium string `yaml:"priority_medium"`
	PriorityHigh   string `yaml:"priority_high"`
	PriorityUrgent string `yaml:"priority_urgent"`

	// Notification colors
	InfoFg    string `yaml:"info_fg"`
	WarningFg string `yaml:"warning_fg"`
	ErrorFg   string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.fill(preset)
}

// MergeFrom overrides c with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	for i, dst := range c.fields() {
		if v := *other.fields()[i]; v != "" {
			*dst = v
		}
	}
}

// fill copies values from base into every empty field of c
func (c *ColorScheme) fill(base *ColorScheme) {
	for i, dst := range c.fields() {
		if *dst == "" {
			*dst = *base.fields()[i]
		}
	}
}

// fields lists pointers to every color in a fixed order
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent,
		&c.ColumnBorder, &c.DoneBorder, &c.CardBorder,
		&c.Title, &c.Subtle, &c.Normal,
		&c.WipWarning,
		&c.PriorityLow, &c.PriorityMedium, &c.PriorityHigh, &c.PriorityUrgent,
		&c.InfoFg, &c.WarningFg, &c.ErrorFg,
	}
}
