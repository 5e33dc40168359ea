// File: filex.go
// Title: Extended File Utilities
// Description: Provides file helper functions used by the wordlang engine:
//              existence checks, whole-file reads for script sources, and
//              whitespace-delimited word extraction for the load operation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package filex

import (
	"bufio"
	"fmt"
	"os"
)

// Exists checks if a path exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile checks if a path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadFile reads an entire file and returns its content as bytes
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}

// ReadString reads an entire file and returns its content as a string
func ReadString(path string) (string, error) {
	data, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadWords reads a file and returns its whitespace-delimited tokens in
// order of appearance. Duplicates are returned as-is; deduplication is the
// caller's concern.
func ReadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading words from %s: %w", path, err)
	}

	return words, nil
}

// Size returns the size of a file in bytes
func Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("getting size of %s: %w", path, err)
	}
	return info.Size(), nil
}
