package main

// Flag names for Viper binding
const (
	// Display flags
	FlagFocus  = "focus"
	FlagBold   = "bold"
	FlagWhite  = "white"
	FlagBlack  = "black"
	FlagNoBell = "no-bell"

	// Mode flags
	FlagStopwatch = "stopwatch"
	FlagTimer     = "timer"
	FlagPomodoro  = "pomodoro"

	// Global flags
	FlagConfig   = "config"
	FlagDebugLog = "debug-log"
	FlagVerbose  = "verbose"
)
