// Package logtail reads the tail of the satchel log file for the in-app log
// viewer.
//
// Tail keeps only the last N lines in memory while scanning, so large log
// files are read in one pass. Each line is tagged with the logrus level found
// in its "level=" field (text format) or "level" key (JSON format); lines
// without one default to info.
package logtail
