package packet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// LoadFile reads an ordered packet list from a file, with the format
// selected by extension (.yaml/.yml, .json or .csv). A malformed file is
// rejected wholesale with the first offending packet named; semantic
// validation of well-formed packets (type codes, arity, value ranges) is
// left to Packet.Record.
func LoadFile(path string) ([]Packet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading packets file: %w", err)
	}

	var packets []Packet
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		packets, err = parseYAML(data)
	case ".json":
		packets, err = parseJSON(data)
	case ".csv":
		packets, err = parseCSV(data)
	default:
		return nil, fmt.Errorf("unsupported file format %q (use .yaml, .json or .csv)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	if len(packets) == 0 {
		return nil, fmt.Errorf("packets file %s is empty", path)
	}
	return packets, nil
}

// parseYAML parses a document with a top-level "packets" list:
//
//	packets:
//	  - workout_type: SWM
//	    data: [720, 1, 80, 25, 40]
func parseYAML(data []byte) ([]Packet, error) {
	var doc struct {
		Packets []struct {
			WorkoutType string `yaml:"workout_type"`
			Data        []any  `yaml:"data"`
		} `yaml:"packets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	packets := make([]Packet, 0, len(doc.Packets))
	for i, p := range doc.Packets {
		if p.WorkoutType == "" {
			return nil, fmt.Errorf("packet %d: missing workout_type", i)
		}
		if p.Data == nil {
			return nil, fmt.Errorf("packet %d: missing data", i)
		}
		values, err := numericValues(p.Data)
		if err != nil {
			return nil, fmt.Errorf("packet %d: %w", i, err)
		}
		packets = append(packets, Packet{WorkoutType: p.WorkoutType, Data: values})
	}
	return packets, nil
}

// numericValues converts a decoded YAML value list into floats, rejecting
// non-numeric and out-of-range values.
func numericValues(raw []any) ([]float64, error) {
	values := make([]float64, 0, len(raw))
	for i, v := range raw {
		switch n := v.(type) {
		case int:
			values = append(values, float64(n))
		case int64:
			values = append(values, float64(n))
		case uint64:
			// yaml.v3 decodes to uint64 only for integers above MaxInt64.
			return nil, fmt.Errorf("data value %d is out of range: %d", i, n)
		case float64:
			values = append(values, n)
		default:
			return nil, fmt.Errorf("data value %d is not a number: %v", i, v)
		}
	}
	return values, nil
}

// parseJSON parses an array of packet objects:
//
//	[{"workout_type": "SWM", "data": [720, 1, 80, 25, 40]}]
func parseJSON(data []byte) ([]Packet, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("JSON must be an array of packet objects")
	}

	var packets []Packet
	var parseErr error
	root.ForEach(func(_, item gjson.Result) bool {
		i := len(packets)
		code := item.Get("workout_type")
		if code.Type != gjson.String {
			parseErr = fmt.Errorf("packet %d: missing workout_type", i)
			return false
		}
		values := item.Get("data")
		if !values.IsArray() {
			parseErr = fmt.Errorf("packet %d: data must be an array of numbers", i)
			return false
		}

		p := Packet{WorkoutType: code.String()}
		for j, v := range values.Array() {
			if v.Type != gjson.Number {
				parseErr = fmt.Errorf("packet %d: data value %d is not a number: %s", i, j, v.Raw)
				return false
			}
			p.Data = append(p.Data, v.Float())
		}
		packets = append(packets, p)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return packets, nil
}

// parseCSV parses one packet per row: the first field is the workout
// type, the remaining fields are data values. Rows may differ in length;
// an optional "workout_type" header row is skipped.
func parseCSV(data []byte) ([]Packet, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	packets := make([]Packet, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeaderRow(row) {
			continue
		}
		n := len(packets)
		if len(row) < 2 {
			return nil, fmt.Errorf("packet %d: want a workout type and at least one value", n)
		}
		values := make([]float64, 0, len(row)-1)
		for j, field := range row[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("packet %d: data value %d is not a number: %q", n, j, field)
			}
			values = append(values, v)
		}
		packets = append(packets, Packet{WorkoutType: strings.TrimSpace(row[0]), Data: values})
	}
	return packets, nil
}

func isHeaderRow(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "workout_type")
}
