// Package configuration provides loading and saving facilities for unixmode's
// YAML configuration file, which supplies defaults for output formatting and
// logging that command line flags can override.
package configuration
