// Package manifest reads declarative tab contributions.
//
// A manifest lists tabs a module contributes without writing Go code:
//
//	module = "reports"
//
//	[[tabs]]
//	group = "analytics"
//	name = "weekly"
//	title = "Weekly report"
//	placement = "end"
//	contents_file = "weekly.md"
//
// TOML, YAML and XML encodings are accepted; see the testdata directory for
// one example of each. Contents files are read when the tab is rendered, not
// when the manifest is loaded.
package manifest
