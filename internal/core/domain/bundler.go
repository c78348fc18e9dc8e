package domain

// PipelinePlugin is a hook installed into the bundler's plugin pipeline. The
// delegate engine owns the plugin's runtime; this layer only carries its
// parameterization.
type PipelinePlugin struct {
	Name    string `json:"name" yaml:"name"`
	Command string `json:"command,omitempty" yaml:"command,omitempty"`
}

// BundlerConfig is the bundler configuration handed to the delegate engine.
// Settings mirror the effective build options the bundler cares about;
// Plugins is the ordered pipeline hook list.
type BundlerConfig struct {
	Plugins  []PipelinePlugin `json:"plugins" yaml:"plugins"`
	Settings Options          `json:"settings" yaml:"settings"`
}

// MergeOverlay applies a user-supplied overlay onto the config: overlay
// settings replace whole values key by key and overlay plugins are appended
// after the existing pipeline.
func (c *BundlerConfig) MergeOverlay(overlay *BundlerConfig) {
	if overlay == nil {
		return
	}
	if c.Settings == nil && len(overlay.Settings) > 0 {
		c.Settings = make(Options, len(overlay.Settings))
	}
	for k, v := range overlay.Settings {
		c.Settings[k] = v
	}
	c.Plugins = append(c.Plugins, overlay.Plugins...)
}
