package main

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

const logFileName = "trajsim-debug.log"

// logFile is the open debug log, if any.
var logFile *os.File

// setupLogging sends the standard logger to a file when debug is set. The
// terminal belongs to the animation, so logs never go to stderr.
func setupLogging(debug bool) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	return tea.LogToFile(logFileName, "trajsim")
}

func closeLog() {
	if logFile == nil {
		return
	}
	logFile.Close()
	logFile = nil
	log.SetOutput(io.Discard)
}
