package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "lifeterm.log"
	maxLogSize  = 10 * 1024 * 1024
	maxRotated  = 5
)

// setupLogging routes the standard logger to logs/lifeterm.log when debug is set
// and discards it otherwise; the terminal never receives log text
// Returns the open file for the caller to close, or nil
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotateLog(logPath)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Printf("=== lifeterm started (pid %d) ===", os.Getpid())
	return f
}

// rotateLog renames the current log to a timestamped name and prunes old rotations
func rotateLog(logPath string) {
	base := strings.TrimSuffix(logFileName, filepath.Ext(logFileName))
	rotated := filepath.Join(logDir, fmt.Sprintf("%s-%s.log", base, time.Now().Format("20060102-150405.000")))
	if err := os.Rename(logPath, rotated); err != nil {
		return
	}
	pruneRotated(base)
}

// pruneRotated keeps the newest maxRotated rotated logs
// Timestamped names sort chronologically
func pruneRotated(base string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var rotated []string
	for _, e := range entries {
		name := e.Name()
		if name != logFileName && strings.HasPrefix(name, base+"-") && filepath.Ext(name) == ".log" {
			rotated = append(rotated, name)
		}
	}
	if len(rotated) <= maxRotated {
		return
	}

	slices.Sort(rotated)
	for _, name := range rotated[:len(rotated)-maxRotated] {
		os.Remove(filepath.Join(logDir, name))
	}
}
