// Package config handles loading and validation of gh-context configuration.
//
// Configuration is read from ~/.config/gh-context/config.toml, or from the
// file named by GH_CONTEXT_CONFIG. Every key is optional; command-line flags
// always win over config values.
//
//	format = "md"          # default --format: "md" or "json"
//	gh_path = "gh"         # gh binary
//	timeout = "2m"         # per gh invocation
//
//	[bulk]
//	state = "open"         # default --state
//	per_page = 30          # default --per-page (1-100)
//	pages = 1              # default --pages
//
//	[batch]
//	concurrency = 4        # items fetched at once in bulk/range runs (1-16)
//
//	[theme]
//	name = "default"       # "default", "dracula", "nord", or "none"
//	nerdfont = false
package config
