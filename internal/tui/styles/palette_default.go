package styles

// DefaultTheme is the baseline dark palette.
var DefaultTheme = Theme{
	Name:        "default",
	BorderStyle: "rounded",
	Base: BaseColors{
		Background: "234",
		Foreground: "252",
		Muted:      "245",
		Accent:     "75",
		Border:     "240",
	},
	Verdicts: VerdictColors{
		Pass:    "41",
		Fail:    "203",
		Warning: "220",
		Pending: "243",
		Error:   "196",
	},
	Chrome: ChromeColors{
		Header:    "24",
		Footer:    "236",
		Watermark: "160",
		Notice:    "214",
	},
	Borders: BorderColors{
		ActivePane:   "75",
		InactivePane: "240",
		Divider:      "238",
	},
}
