// Package templates embeds the portal's page templates.
package templates

import "embed"

//go:embed *.html layouts partials auth admin student print
var FS embed.FS
