package preset

// Built-in presets shipped with the engine. Values stay in author syntax; the
// applicator normalizes colors when writing them to the document.

// BuiltIn returns a fresh copy of the static built-in collection. It is never
// affected by custom input.
func BuiltIn() map[string]Preset {
	out := make(map[string]Preset, len(builtInPresets))
	for id, p := range builtInPresets {
		p.ID = id
		p.Source = SourceBuiltIn
		p.Styles = p.Styles.Clone()
		out[id] = p
	}
	return out
}

var builtInPresets = map[string]Preset{
	"modern-minimal": {
		Label:    "Modern Minimal",
		Category: "minimal",
		Tags:     []string{"blue", "clean"},
		Styles: Styles{
			Light: PropertyMap{
				"background":                 "#ffffff",
				"foreground":                 "#0f172a",
				"card":                       "#ffffff",
				"card-foreground":            "#0f172a",
				"popover":                    "#ffffff",
				"popover-foreground":         "#0f172a",
				"primary":                    "#2563eb",
				"primary-foreground":         "#f8fafc",
				"secondary":                  "#f1f5f9",
				"secondary-foreground":       "#0f172a",
				"muted":                      "#f1f5f9",
				"muted-foreground":           "#64748b",
				"accent":                     "#e0f2fe",
				"accent-foreground":          "#0c4a6e",
				"destructive":                "#dc2626",
				"destructive-foreground":     "#f8fafc",
				"border":                     "#e2e8f0",
				"input":                      "#e2e8f0",
				"ring":                       "#2563eb",
				"chart-1":                    "#2563eb",
				"chart-2":                    "#0ea5e9",
				"chart-3":                    "#06b6d4",
				"chart-4":                    "#10b981",
				"chart-5":                    "#84cc16",
				"sidebar":                    "#f8fafc",
				"sidebar-foreground":         "#0f172a",
				"sidebar-primary":            "#2563eb",
				"sidebar-primary-foreground": "#f8fafc",
				"sidebar-accent":             "#e0f2fe",
				"sidebar-accent-foreground":  "#0c4a6e",
				"sidebar-border":             "#e2e8f0",
				"sidebar-ring":               "#2563eb",
				"font-sans":                  "Inter, sans-serif",
				"font-serif":                 "Source Serif 4, serif",
				"font-mono":                  "JetBrains Mono, monospace",
				"radius":                     "0.375rem",
				"shadow-color":               "#000000",
				"shadow-opacity":             "0.1",
				"shadow-blur":                "3px",
				"shadow-spread":              "0px",
				"shadow-offset-x":            "0px",
				"shadow-offset-y":            "1px",
				"letter-spacing":             "normal",
				"spacing":                    "0.25rem",
			},
			Dark: PropertyMap{
				"background":                 "#0f172a",
				"foreground":                 "#f8fafc",
				"card":                       "#1e293b",
				"card-foreground":            "#f8fafc",
				"popover":                    "#1e293b",
				"popover-foreground":         "#f8fafc",
				"primary":                    "#60a5fa",
				"primary-foreground":         "#0f172a",
				"secondary":                  "#1e293b",
				"secondary-foreground":       "#f8fafc",
				"muted":                      "#1e293b",
				"muted-foreground":           "#94a3b8",
				"accent":                     "#0c4a6e",
				"accent-foreground":          "#e0f2fe",
				"destructive":                "#ef4444",
				"destructive-foreground":     "#f8fafc",
				"border":                     "#334155",
				"input":                      "#334155",
				"ring":                       "#60a5fa",
				"chart-1":                    "#60a5fa",
				"chart-2":                    "#38bdf8",
				"chart-3":                    "#22d3ee",
				"chart-4":                    "#34d399",
				"chart-5":                    "#a3e635",
				"sidebar":                    "#1e293b",
				"sidebar-foreground":         "#f8fafc",
				"sidebar-primary":            "#60a5fa",
				"sidebar-primary-foreground": "#0f172a",
				"sidebar-accent":             "#0c4a6e",
				"sidebar-accent-foreground":  "#e0f2fe",
				"sidebar-border":             "#334155",
				"sidebar-ring":               "#60a5fa",
				// Font properties inherit from the light map.
				"radius":          "0.375rem",
				"shadow-color":    "#000000",
				"shadow-opacity":  "0.3",
				"shadow-blur":     "3px",
				"shadow-spread":   "0px",
				"shadow-offset-x": "0px",
				"shadow-offset-y": "1px",
				"letter-spacing":  "normal",
				"spacing":         "0.25rem",
			},
		},
	},
	"ocean-breeze": {
		Label:    "Ocean Breeze",
		Category: "nature",
		Tags:     []string{"teal", "calm"},
		Styles: Styles{
			Light: PropertyMap{
				"background":                 "#f0fdfa",
				"foreground":                 "#134e4a",
				"card":                       "#ffffff",
				"card-foreground":            "#134e4a",
				"popover":                    "#ffffff",
				"popover-foreground":         "#134e4a",
				"primary":                    "#0d9488",
				"primary-foreground":         "#f0fdfa",
				"secondary":                  "#ccfbf1",
				"secondary-foreground":       "#134e4a",
				"muted":                      "#ccfbf1",
				"muted-foreground":           "#0f766e",
				"accent":                     "#99f6e4",
				"accent-foreground":          "#134e4a",
				"destructive":                "#dc2626",
				"destructive-foreground":     "#fef2f2",
				"border":                     "#99f6e4",
				"input":                      "#99f6e4",
				"ring":                       "#0d9488",
				"chart-1":                    "#0d9488",
				"chart-2":                    "#06b6d4",
				"chart-3":                    "#0ea5e9",
				"chart-4":                    "#10b981",
				"chart-5":                    "#14b8a6",
				"sidebar":                    "#ccfbf1",
				"sidebar-foreground":         "#134e4a",
				"sidebar-primary":            "#0d9488",
				"sidebar-primary-foreground": "#f0fdfa",
				"sidebar-accent":             "#99f6e4",
				"sidebar-accent-foreground":  "#134e4a",
				"sidebar-border":             "#5eead4",
				"sidebar-ring":               "#0d9488",
				"font-sans":                  "Nunito, sans-serif",
				"font-serif":                 "Lora, serif",
				"font-mono":                  "Fira Code, monospace",
				"radius":                     "0.5rem",
				"shadow-color":               "#134e4a",
				"shadow-opacity":             "0.08",
				"shadow-blur":                "4px",
				"shadow-spread":              "0px",
				"shadow-offset-x":            "0px",
				"shadow-offset-y":            "2px",
				"letter-spacing":             "normal",
				"spacing":                    "0.25rem",
			},
			Dark: PropertyMap{
				"background":                 "#042f2e",
				"foreground":                 "#ccfbf1",
				"card":                       "#134e4a",
				"card-foreground":            "#ccfbf1",
				"popover":                    "#134e4a",
				"popover-foreground":         "#ccfbf1",
				"primary":                    "#2dd4bf",
				"primary-foreground":         "#042f2e",
				"secondary":                  "#115e59",
				"secondary-foreground":       "#ccfbf1",
				"muted":                      "#115e59",
				"muted-foreground":           "#5eead4",
				"accent":                     "#0f766e",
				"accent-foreground":          "#99f6e4",
				"destructive":                "#f87171",
				"destructive-foreground":     "#450a0a",
				"border":                     "#115e59",
				"input":                      "#115e59",
				"ring":                       "#2dd4bf",
				"chart-1":                    "#2dd4bf",
				"chart-2":                    "#22d3ee",
				"chart-3":                    "#38bdf8",
				"chart-4":                    "#34d399",
				"chart-5":                    "#5eead4",
				"sidebar":                    "#134e4a",
				"sidebar-foreground":         "#ccfbf1",
				"sidebar-primary":            "#2dd4bf",
				"sidebar-primary-foreground": "#042f2e",
				"sidebar-accent":             "#0f766e",
				"sidebar-accent-foreground":  "#99f6e4",
				"sidebar-border":             "#115e59",
				"sidebar-ring":               "#2dd4bf",
				"font-sans":                  "Nunito, sans-serif",
				"font-serif":                 "Lora, serif",
				"font-mono":                  "Fira Code, monospace",
				"radius":                     "0.5rem",
				"shadow-color":               "#000000",
				"shadow-opacity":             "0.25",
				"shadow-blur":                "4px",
				"shadow-spread":              "0px",
				"shadow-offset-x":            "0px",
				"shadow-offset-y":            "2px",
				"letter-spacing":             "normal",
				"spacing":                    "0.25rem",
			},
		},
	},
	"amber-minimal": {
		Label:    "Amber Minimal",
		Category: "minimal",
		Tags:     []string{"amber", "warm"},
		Styles: Styles{
			Light: PropertyMap{
				"background":                 "#ffffff",
				"foreground":                 "#451a03",
				"card":                       "#fffbeb",
				"card-foreground":            "#451a03",
				"popover":                    "#fffbeb",
				"popover-foreground":         "#451a03",
				"primary":                    "#d97706",
				"primary-foreground":         "#fffbeb",
				"secondary":                  "#fef3c7",
				"secondary-foreground":       "#78350f",
				"muted":                      "#fef3c7",
				"muted-foreground":           "#92400e",
				"accent":                     "#fde68a",
				"accent-foreground":          "#78350f",
				"destructive":                "#dc2626",
				"destructive-foreground":     "#fef2f2",
				"border":                     "#fde68a",
				"input":                      "#fde68a",
				"ring":                       "#d97706",
				"chart-1":                    "#d97706",
				"chart-2":                    "#f59e0b",
				"chart-3":                    "#fbbf24",
				"chart-4":                    "#ea580c",
				"chart-5":                    "#b45309",
				"sidebar":                    "#fffbeb",
				"sidebar-foreground":         "#451a03",
				"sidebar-primary":            "#d97706",
				"sidebar-primary-foreground": "#fffbeb",
				"sidebar-accent":             "#fde68a",
				"sidebar-accent-foreground":  "#78350f",
				"sidebar-border":             "#fde68a",
				"sidebar-ring":               "#d97706",
				"font-sans":                  "Inter, sans-serif",
				"font-serif":                 "Georgia, serif",
				"font-mono":                  "IBM Plex Mono, monospace",
				"radius":                     "0.25rem",
				"shadow-color":               "#78350f",
				"shadow-opacity":             "0.1",
				"shadow-blur":                "2px",
				"shadow-spread":              "0px",
				"shadow-offset-x":            "0px",
				"shadow-offset-y":            "1px",
				"letter-spacing":             "0.01em",
				"spacing":                    "0.25rem",
			},
			Dark: PropertyMap{
				"background":                 "#1c1917",
				"foreground":                 "#fef3c7",
				"card":                       "#292524",
				"card-foreground":            "#fef3c7",
				"popover":                    "#292524",
				"popover-foreground":         "#fef3c7",
				"primary":                    "#fbbf24",
				"primary-foreground":         "#451a03",
				"secondary":                  "#44403c",
				"secondary-foreground":       "#fef3c7",
				"muted":                      "#292524",
				"muted-foreground":           "#d6d3d1",
				"accent":                     "#92400e",
				"accent-foreground":          "#fde68a",
				"destructive":                "#ef4444",
				"destructive-foreground":     "#fef2f2",
				"border":                     "#44403c",
				"input":                      "#44403c",
				"ring":                       "#fbbf24",
				"chart-1":                    "#fbbf24",
				"chart-2":                    "#f59e0b",
				"chart-3":                    "#fcd34d",
				"chart-4":                    "#fb923c",
				"chart-5":                    "#f97316",
				"sidebar":                    "#292524",
				"sidebar-foreground":         "#fef3c7",
				"sidebar-primary":            "#fbbf24",
				"sidebar-primary-foreground": "#451a03",
				"sidebar-accent":             "#92400e",
				"sidebar-accent-foreground":  "#fde68a",
				"sidebar-border":             "#44403c",
				"sidebar-ring":               "#fbbf24",
				"font-sans":                  "Inter, sans-serif",
				"font-serif":                 "Georgia, serif",
				"font-mono":                  "IBM Plex Mono, monospace",
				"radius":                     "0.25rem",
				"shadow-color":               "#000000",
				"shadow-opacity":             "0.3",
				"shadow-blur":                "2px",
				"shadow-spread":              "0px",
				"shadow-offset-x":            "0px",
				"shadow-offset-y":            "1px",
				"letter-spacing":             "0.01em",
				"spacing":                    "0.25rem",
			},
		},
	},
}
