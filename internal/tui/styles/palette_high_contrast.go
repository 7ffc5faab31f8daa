package styles

// HighContrastTheme favors legibility on low-quality terminals.
var HighContrastTheme = Theme{
	Name:        "high-contrast",
	BorderStyle: "double",
	Base: BaseColors{
		Background: "16",
		Foreground: "231",
		Muted:      "250",
		Accent:     "51",
		Border:     "231",
	},
	Verdicts: VerdictColors{
		Pass:    "46",
		Fail:    "196",
		Warning: "226",
		Pending: "250",
		Error:   "201",
	},
	Chrome: ChromeColors{
		Header:    "18",
		Footer:    "16",
		Watermark: "196",
		Notice:    "226",
	},
	Borders: BorderColors{
		ActivePane:   "231",
		InactivePane: "250",
		Divider:      "248",
	},
}
