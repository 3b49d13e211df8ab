package netfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/skyroute/skyroute/pkg/search"
)

// WriteResult serializes a query result as indented JSON.
func WriteResult(res search.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// WriteResultFile writes a query result to a JSON file, creating or
// overwriting it.
func WriteResultFile(res search.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteResult(res, f)
}
