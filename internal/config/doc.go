// Package config manages user-level settings stored at ~/.nodekit/config.yaml.
// It loads logging options, the plugins directory override, and the per-kind
// keyboard shortcut overrides read by the catalog when describing kinds.
package config
