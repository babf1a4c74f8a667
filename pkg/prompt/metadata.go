// Package prompt collects namespace metadata interactively before export.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-nwbext/pkg/namespace"
)

// ErrDeclined is returned when the user rejects the summary confirmation.
var ErrDeclined = errors.New("prompt: export declined")

// Metadata asks for the namespace version, author and contact, offering
// defaults as pre-filled answers, then confirms the result.
func Metadata(ctx context.Context, driver Driver, defaults namespace.Metadata) (namespace.Metadata, error) {
	if driver == nil {
		return namespace.Metadata{}, errors.New("prompt: driver is required")
	}
	out := defaults

	questions := []struct {
		message string
		help    string
		target  *string
	}{
		{"Namespace version", "Semantic version written to the namespace document", &out.Version},
		{"Author", "Person or lab maintaining the extension", &out.Author},
		{"Contact", "Email address for questions about the extension", &out.Contact},
	}
	for _, q := range questions {
		answer, err := driver.Input(ctx, InputConfig{
			Message:   q.message,
			Default:   *q.target,
			Help:      q.help,
			Validator: required(q.message),
		})
		if err != nil {
			return namespace.Metadata{}, err
		}
		*q.target = strings.TrimSpace(answer)
	}

	ok, err := driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Export %s %s by %s <%s>?", out.Name, out.Version, out.Author, out.Contact),
		Default: true,
	})
	if err != nil {
		return namespace.Metadata{}, err
	}
	if !ok {
		return namespace.Metadata{}, ErrDeclined
	}
	return out, nil
}

func required(label string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", strings.ToLower(label))
		}
		return nil
	}
}
