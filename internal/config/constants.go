package config

import "time"

// Application identity and on-disk names.
const (
	AppName        = "countmedown"
	ConfigDirName  = "CountMeDown"
	ConfigFileName = "countmedown.yaml"
	HistoryDBName  = "history.db"
	LogFileName    = "countmedown.log"
	EnvPrefix      = "COUNTMEDOWN"
)

// CLI defaults.
const (
	DefaultOutputFile = "./time.txt"
	DefaultStep       = 1
	DefaultPrefix     = ""
	DefaultEnding     = ""
)

// Interactive defaults, used when a field is left empty or no saved
// configuration exists.
const (
	DefaultTimeIn      = "10:00"
	DefaultTUIPrefix   = "Start in:"
	DefaultTUIEnding   = "gleich"
	DefaultTUIFileName = "time.txt"
	IdleTitle          = "CountMeDown"
)

// Interactive tick cadence.
const TickInterval = time.Second

// History listing.
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 500
)
