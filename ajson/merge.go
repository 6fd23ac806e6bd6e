package ajson

import (
	"dario.cat/mergo"
	"encoding/json"
	"errors"
	"github.com/hjson/hjson-go/v4"
	"os"
	"reflect"
	"regexp"
)

// MergeOptions defines how the JSON configs should be processed.
type MergeOptions struct {
	Files         []string `json:"files,omitempty"`         // List of file paths to merge, in order
	UseHJSON      bool     `json:"useHJSON,omitempty"`      // Whether files are in HJSON format
	StripComments bool     `json:"stripComments,omitempty"` // If true, strip comments from JSON
}

// StripComments removes both // and /* */ comments from JSON text.
func StripComments(input []byte) []byte {
	re := regexp.MustCompile(`(?m)//.*$|/\*[\s\S]*?\*/`)
	return re.ReplaceAll(input, []byte{})
}

// loadFileToMerge loads a single config file into a map, respecting options.
func loadFileToMerge(path string, useHjson bool, stripComments bool) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("invalid file path: " + err.Error())
	}

	var result map[string]interface{}
	if useHjson {
		if err = hjson.Unmarshal(data, &result); err != nil {
			return nil, errors.New("failed to parse HJSON file: " + err.Error())
		}
	} else {
		if stripComments {
			data = StripComments(data)
		}
		if err = json.Unmarshal(data, &result); err != nil {
			return nil, errors.New("failed to parse JSON file: " + err.Error())
		}
	}
	return result, nil
}

// MergeConfigs merges multiple config files based on the provided options.
func MergeConfigs(opts MergeOptions) (map[string]interface{}, error) {
	if len(opts.Files) == 0 {
		return nil, errors.New("no config files provided")
	}

	final := make(map[string]interface{})

	for _, file := range opts.Files {
		current, err := loadFileToMerge(file, opts.UseHJSON, opts.StripComments)
		if err != nil {
			return nil, errors.New("failed to load config file: " + file + ": " + err.Error())
		}

		err = mergo.Merge(&final, current, mergo.WithOverride)
		if err != nil {
			return nil, errors.New("failed to merge config file: " + file + ": " + err.Error())
		}
	}

	return final, nil
}

// MergeConfigsInto loads and merges config files into a typed target (e.g., struct pointer).
// It calls MergeConfigs, then decodes the result into the target interface.
func MergeConfigsInto(target interface{}, opts MergeOptions) error {
	if target == nil {
		return errors.New("target cannot be nil")
	}
	if reflect.ValueOf(target).Kind() != reflect.Ptr {
		return errors.New("target must be a pointer")
	}

	mergedMap, err := MergeConfigs(opts)
	if err != nil {
		return err
	}

	mergedBytes, err := json.Marshal(mergedMap)
	if err != nil {
		return errors.New("failed to marshal merged map: " + err.Error())
	}

	if err = json.Unmarshal(mergedBytes, target); err != nil {
		return errors.New("failed to unmarshal into target: " + err.Error())
	}

	return nil
}

