// Package runfile reads the optional runfile.json that supplies a default
// command list when pmrun is invoked without commands.
package runfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is looked up in the working directory only.
const FileName = "runfile.json"

// Path returns the runfile path for dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load returns the commands listed in <dir>/runfile.json.
//
// A missing file, a top level that is not an object, or a "commands" value
// that is missing, null or not an array all yield no commands. Invalid JSON
// and non-string entries in the array are errors.
func Load(dir string) ([]string, error) {
	path := Path(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", FileName, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, nil
	}
	list, ok := obj["commands"].([]any)
	if !ok {
		return nil, nil
	}

	commands := make([]string, 0, len(list))
	for i, v := range list {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("parse %s: commands[%d] is %T, want string", path, i, v)
		}
		commands = append(commands, s)
	}
	return commands, nil
}
