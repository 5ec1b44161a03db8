// Package templates embeds the bundled report template configurations.
//
// This ensures templates are available regardless of installation method
// (Homebrew, Docker, or manual download). The report loader falls back to
// these embedded templates when the requested path does not exist on disk.
//
// Usage:
//
//	fs := templates.FS
//	data, _ := fs.ReadFile("minimal.yaml")
package templates

import "embed"

// FS contains the bundled report template YAML files.
//
//go:embed *.yaml
var FS embed.FS
