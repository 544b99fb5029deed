// Package config binds the pipeline's environment-variable configuration
// table (spec.md §6) using github.com/spf13/viper.
package config
