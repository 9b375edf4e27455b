package jsparse

import (
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// StripTypes removes TypeScript syntax from src, returning plain JavaScript.
// The result is re-printed by esbuild, so spans of a program parsed from it
// refer to the stripped text.
func StripTypes(filename, src string) (string, error) {
	result := api.Transform(src, api.TransformOptions{
		Loader:     api.LoaderTS,
		Sourcefile: filename,
		Target:     api.ESNext,
		Format:     api.FormatDefault,
		LogLevel:   api.LogLevelSilent,
	})

	if len(result.Errors) > 0 {
		var msgs []string
		for _, msg := range result.Errors {
			if msg.Location != nil {
				msgs = append(msgs, fmt.Sprintf("%s:%d:%d: %s",
					msg.Location.File,
					msg.Location.Line,
					msg.Location.Column,
					msg.Text))
			} else {
				msgs = append(msgs, msg.Text)
			}
		}
		return "", fmt.Errorf("esbuild errors:\n%s", strings.Join(msgs, "\n"))
	}

	return string(result.Code), nil
}
