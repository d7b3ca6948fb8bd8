package config

import "strings"

// AppVersion is the version of the tool. Set at build time with -ldflags.
var AppVersion = "0.1.0"

// AppName is the name of the tool.
const AppName = "Partition"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// OutputPrefix is prepended to the name of every processed file or directory.
const OutputPrefix = "processed_"

// DefaultPartitions is the number of columns used when none is given.
const DefaultPartitions = 4

// UsageLine is printed when the command line cannot be used.
const UsageLine = "Usage: partition FILE_OR_DIR [HORIZONTAL] [VERTICAL]"
