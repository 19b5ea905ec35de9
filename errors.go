/*
Copyright © 2025 Deltacron
*/

package main

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

func logf(cfg *Config, format string, args ...any) {
	if !cfg.verbose {
		return
	}

	log.Printf("%s | "+format, append([]any{time.Now().Format(logDate)}, args...)...)
}

// errorKind classifies game action failures: invalid transitions are logged
// and dropped, the rest are surfaced to the originating connection only.
type errorKind int

const (
	errInvalidTransition errorKind = iota
	errNotFound
	errExhausted
)

type actionError struct {
	kind errorKind
	msg  string
}

func (e *actionError) Error() string {
	return e.msg
}

func invalidTransition(format string, args ...any) error {
	return &actionError{kind: errInvalidTransition, msg: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...any) error {
	return &actionError{kind: errNotFound, msg: fmt.Sprintf(format, args...)}
}

func exhausted(format string, args ...any) error {
	return &actionError{kind: errExhausted, msg: fmt.Sprintf(format, args...)}
}

func kindOf(err error) (errorKind, bool) {
	var ae *actionError
	if errors.As(err, &ae) {
		return ae.kind, true
	}
	return 0, false
}

func newPage(title, body string) string {
	var htmlBody strings.Builder

	htmlBody.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
	htmlBody.WriteString(getFavicon())
	htmlBody.WriteString(`<style>`)
	htmlBody.WriteString(`html,body,a{display:block;height:100%;width:100%;text-decoration:none;color:inherit;cursor:auto;}</style>`)
	htmlBody.WriteString(fmt.Sprintf("<title>%s</title></head>", title))
	htmlBody.WriteString(fmt.Sprintf("<body><a href=\"/\">%s</a></body></html>", body))

	return htmlBody.String()
}
