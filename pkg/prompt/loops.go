package prompt

import (
	"context"
	"errors"
	"strings"
)

// ErrNoOptions is returned by SelectValue when there is nothing to choose.
var ErrNoOptions = errors.New("prompt: no options to choose from")

// SelectConfig describes a validated choice among displayed values.
type SelectConfig struct {
	// Attribute is the characteristic being chosen, used in messages.
	Attribute string
	Options   []string
	// Note is printed after the option list when set.
	Note string
}

// SelectValue lists the options and asks until the trimmed answer matches one
// of them exactly.
func SelectValue(ctx context.Context, driver Driver, cfg SelectConfig) (string, error) {
	if driver == nil {
		return "", errors.New("prompt: driver is nil")
	}
	if len(cfg.Options) == 0 {
		return "", ErrNoOptions
	}

	if err := driver.Info(ctx, "Available "+cfg.Attribute+" values:"); err != nil {
		return "", err
	}
	valid := make(map[string]struct{}, len(cfg.Options))
	for _, option := range cfg.Options {
		valid[option] = struct{}{}
		if err := driver.Info(ctx, "- "+option); err != nil {
			return "", err
		}
	}
	if cfg.Note != "" {
		if err := driver.Info(ctx, "\n"+cfg.Note+"\n"); err != nil {
			return "", err
		}
	}

	message := "Enter a " + cfg.Attribute + " from the list above:"
	for {
		answer, err := driver.Input(ctx, InputConfig{Message: message})
		if err != nil {
			return "", err
		}
		answer = strings.TrimSpace(answer)
		if _, ok := valid[answer]; ok {
			return answer, nil
		}
		if err := driver.Info(ctx, "That "+cfg.Attribute+" is not in the list."); err != nil {
			return "", err
		}
	}
}

// SearchTerm asks until a non-blank answer is given and returns it trimmed.
func SearchTerm(ctx context.Context, driver Driver, message string) (string, error) {
	if driver == nil {
		return "", errors.New("prompt: driver is nil")
	}
	if message == "" {
		message = "Enter a name of an animal:"
	}
	for {
		answer, err := driver.Input(ctx, InputConfig{Message: message})
		if err != nil {
			return "", err
		}
		if trimmed := strings.TrimSpace(answer); trimmed != "" {
			return trimmed, nil
		}
		if err := driver.Info(ctx, "The search term cannot be empty."); err != nil {
			return "", err
		}
	}
}
