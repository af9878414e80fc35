// Package configs embeds the files written to the runtime directory on
// install.
package configs

import "embed"

//go:embed aliases.yaml
var FS embed.FS
