package preload

// Config holds configuration for the preload redirect.
type Config struct {
	// URL is the audio address handed to the editor. Empty disables the redirect.
	URL string `mapstructure:"url" default:"" flag:"url"`
}
