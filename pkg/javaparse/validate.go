package javaparse

import (
	"strings"
	"unicode/utf8"

	"github.com/javalang/javaparse/pkg/javaparse/ast"
	"github.com/javalang/javaparse/pkg/javaparse/errors"
	"github.com/javalang/javaparse/pkg/javaparse/security"
)

// validateSource decodes raw bytes as UTF-8 and enforces the size/content
// bounds a source must satisfy before lexing begins. It
// rejects invalid UTF-8 (a decoded U+FFFD is the tell), oversized input,
// and sources that are entirely whitespace.
func validateSource(raw []byte, guard *security.Guard, filePath string) (string, *errors.Error) {
	if len(raw) == 0 {
		return "", &errors.Error{
			Type: errors.ErrorTypeValidation,
			Message: "source is empty",
			Location: ast.Location{File: filePath},
		}
	}

	text := string(raw)
	if !utf8.ValidString(text) || strings.ContainsRune(text, utf8.RuneError) {
		return "", &errors.Error{
			Type: errors.ErrorTypeValidation,
			Message: "source is not valid UTF-8",
			Location: ast.Location{File: filePath},
		}
	}

	if err := guard.CheckSource(len(raw), utf8.RuneCountInString(text)); err != nil {
		err.Location = ast.Location{File: filePath}
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", &errors.Error{
			Type: errors.ErrorTypeValidation,
			Message: "source is entirely whitespace",
			Location: ast.Location{File: filePath},
		}
	}

	return text, nil
}
