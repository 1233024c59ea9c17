package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// The loggers discard output until Initialize is called so that library code
// can log unconditionally.
var (
	InfoLog    = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog   = log.New(io.Discard, "", 0)
)

var logFileName = filepath.Join(os.TempDir(), "viewport-watch.log")

var globalLogFile *os.File

// Initialize should be called once at the beginning of the program to set up logging.
// headless marks log lines written by the `watch` command.
func Initialize(headless bool) {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		panic(fmt.Sprintf("could not open log file: %s", err))
	}

	fmtS := "%s"
	if headless {
		fmtS = "[WATCH] %s"
	}
	InfoLog = log.New(f, fmt.Sprintf(fmtS, "INFO:"), log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(f, fmt.Sprintf(fmtS, "WARNING:"), log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(f, fmt.Sprintf(fmtS, "ERROR:"), log.Ldate|log.Ltime|log.Lshortfile)

	globalLogFile = f

	InitDebug()
}

// Close flushes the debug log and closes the log file.
func Close() {
	CloseDebug()
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
	// TODO: only print this if we actually wrote something to the log file.
	fmt.Println("wrote logs to " + logFileName)
}
