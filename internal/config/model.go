package config

// Config is the bridge policy file. Everything here is optional; zero
// values fall back to the defaults below.
type Config struct {
	// AppIDOverride forces one application identity for every window the
	// bridge creates.
	AppIDOverride string `yaml:"app_id_override" json:"app_id_override"`
	// VMName namespaces derived application identities. Generated when
	// empty.
	VMName string `yaml:"vm_name" json:"vm_name"`

	FrameColor     uint32 `yaml:"frame_color" json:"frame_color"`
	DarkFrameColor uint32 `yaml:"dark_frame_color" json:"dark_frame_color"`

	// FullscreenMode is "immersive" or "plain".
	FullscreenMode string `yaml:"fullscreen_mode" json:"fullscreen_mode"`

	// SuppressEmptyCommits skips acking/committing no-op configurations to
	// break host/guest commit loops. Both settings are protocol-legal.
	SuppressEmptyCommits *bool `yaml:"suppress_empty_commits" json:"suppress_empty_commits"`

	// XWayland selects full window-system translation instead of direct
	// embedding.
	XWayland *bool `yaml:"xwayland" json:"xwayland"`

	Scale float64 `yaml:"scale" json:"scale"`
}

var defaultConfig = Config{
	FrameColor:     0xfff2f2f2,
	DarkFrameColor: 0xff323639,
	FullscreenMode: "immersive",
	Scale:          1.0,
}
