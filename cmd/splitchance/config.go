package main

// Flag names for Viper binding
const (
	// Global flags
	FlagVerbose = "verbose"
	FlagConfig  = "config"
	FlagRun     = "run"
	FlagLayout  = "layout"
	FlagWidth   = "width"

	// Show command flags
	FlagPhase = "phase"
	FlagSplit = "split"
	FlagJSON  = "json"

	// Component flags, used when no layout file is given
	FlagShowSuccesses      = "show-successes"
	FlagShowAttemptDetails = "show-attempt-details"
	FlagTwoRows            = "two-rows"

	// Watch command flags
	FlagSave = "save"

	// Serve command flags
	FlagSocketPath = "socket-path"
)
