package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/RonaldDijks/chime/foundation/core/error"
)

// Output formats accepted by --format
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(format string) (string, error) {
	switch f := strings.ToLower(format); f {
	case formatText, formatJSON, formatYAML:
		return f, nil
	default:
		return "", mdwerror.Newf("unknown output format %q", format).
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("allowed", "text, json, yaml")
	}
}

// writeOutput writes v as JSON or YAML, or text for the text format
func writeOutput(w io.Writer, format string, v interface{}, text string) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return mdwerror.Wrap(err, "failed to encode JSON").WithCode(mdwerror.CodeInternal)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case formatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return mdwerror.Wrap(err, "failed to encode YAML").WithCode(mdwerror.CodeInternal)
		}
		_, err = w.Write(data)
		return err

	default:
		_, err := fmt.Fprintln(w, text)
		return err
	}
}
