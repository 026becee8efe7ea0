package editor

// Config configures the editor Model.
type Config struct {
	KeyMap KeyMap
	Style  Style

	// ShowStatus renders the status line below the text.
	ShowStatus bool
	// ShowHelp renders the short key help below the status line.
	ShowHelp bool

	// ReadOnly drops every editing key; movement and scrolling still work.
	ReadOnly bool

	// OnChange is called after each key that changes the text.
	OnChange func(ChangeEvent)
}

// DefaultConfig returns a config with the default keymap and style, the
// status line on and help off.
func DefaultConfig() Config {
	return Config{
		KeyMap:     DefaultKeyMap(),
		Style:      DefaultStyle(),
		ShowStatus: true,
	}
}
