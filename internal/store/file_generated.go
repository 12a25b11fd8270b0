// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// GeneratedPasswordLog is the flat append-only side file the front-end uses
// to keep passwords it generated but the user never saved as a credential.
// It lives fully outside the vault schema: one line per entry, a timestamp
// and the generated value separated by a tab, never read back by the core.
type GeneratedPasswordLog struct {
	mu     sync.Mutex
	file   *os.File
	logger *logger.Logger
}

// NewGeneratedPasswordLog opens (or creates) the side file at path in
// append-only mode.
func NewGeneratedPasswordLog(path string, log *logger.Logger) (*GeneratedPasswordLog, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		log.Err(err).Str("func", "NewGeneratedPasswordLog").Str("path", path).Msg("error opening generated passwords file")
		return nil, fmt.Errorf("error opening generated passwords file: %w", err)
	}

	return &GeneratedPasswordLog{
		file:   file,
		logger: log,
	}, nil
}

// Append writes one generated password to the end of the file.
func (g *GeneratedPasswordLog) Append(ctx context.Context, password string) error {
	log := logger.FromContext(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()

	line := fmt.Sprintf("%s\t%s\n", time.Now().UTC().Format(time.RFC3339), password)
	if _, err := g.file.WriteString(line); err != nil {
		log.Err(err).Str("func", "GeneratedPasswordLog.Append").Msg("error appending generated password")
		return fmt.Errorf("error appending generated password: %w", err)
	}

	return nil
}

// Close releases the underlying file handle. Append must not be called
// after Close.
func (g *GeneratedPasswordLog) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.file.Close()
}
