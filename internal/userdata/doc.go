// Package userdata resolves the on-disk layout under ~/.nodekit/: the home
// directory holding config.yaml and the plugins/ directory scanned for plugin
// manifests at startup. Each location can be overridden through an
// environment variable.
package userdata
