package domain

import "go.trai.ch/zerr"

// Layer flattens the target definition into one effective option set.
//
// Three layers apply, lowest first: the target's base options, the selected
// configuration overlay, and caller-supplied explicit overrides. The merge is
// shallow: a higher layer replaces the whole value at a key, nested objects
// included.
//
// When configurationName is empty the target's default configuration is used
// if one is declared; otherwise no overlay applies. A named configuration
// that does not exist fails with ErrConfigurationNotFound.
func (d *TargetDefinition) Layer(configurationName string, overrides Options) (Options, error) {
	if configurationName == "" {
		configurationName = d.DefaultConfiguration
	}

	var overlay Options
	if configurationName != "" {
		var ok bool
		overlay, ok = d.Configurations[configurationName]
		if !ok {
			return nil, zerr.With(ErrConfigurationNotFound, "configuration", configurationName)
		}
	}

	effective := make(Options, len(d.Options)+len(overlay)+len(overrides))
	for k, v := range d.Options {
		effective[k] = v
	}
	for k, v := range overlay {
		effective[k] = v
	}
	for k, v := range overrides {
		effective[k] = v
	}
	return effective, nil
}
