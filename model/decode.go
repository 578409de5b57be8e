package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a design file.
type Format int

const (
	FormatBpmn Format = iota + 1
	FormatJson
	FormatYaml
)

// MapFormat maps a file extension, with or without leading dot, to a format.
func MapFormat(ext string) Format {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "bpmn", "xml":
		return FormatBpmn
	case "json":
		return FormatJson
	case "yaml", "yml":
		return FormatYaml
	default:
		return 0
	}
}

func (v Format) String() string {
	switch v {
	case FormatBpmn:
		return "BPMN"
	case FormatJson:
		return "JSON"
	case FormatYaml:
		return "YAML"
	default:
		return ""
	}
}

var (
	activityListType = reflect.TypeOf(ActivityList(nil))
	jsonUnmarshaler  = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
)

// Decode decodes process definitions from r.
// JSON and YAML documents contain exactly one process, while a BPMN XML document can contain multiple processes.
func Decode(r io.Reader, format Format) ([]*ProcessDefinition, error) {
	switch format {
	case FormatBpmn:
		return DecodeBpmn(r)
	case FormatJson:
		decoder := json.NewDecoder(r)
		decoder.UseNumber()

		var data map[string]any
		if err := decoder.Decode(&data); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("JSON is empty")
			}
			return nil, fmt.Errorf("failed to decode JSON: %v", err)
		}

		process, err := decodeProcess(data)
		if err != nil {
			return nil, err
		}
		return []*ProcessDefinition{process}, nil
	case FormatYaml:
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML: %v", err)
		}
		if len(bytes.TrimSpace(b)) == 0 {
			return nil, errors.New("YAML is empty")
		}

		var data map[string]any
		if err := yaml.Unmarshal(b, &data); err != nil {
			return nil, fmt.Errorf("failed to decode YAML: %v", err)
		}

		process, err := decodeProcess(data)
		if err != nil {
			return nil, err
		}
		return []*ProcessDefinition{process}, nil
	default:
		return nil, fmt.Errorf("unsupported format %d", format)
	}
}

// DecodeFile decodes the process definitions of a file. The format is determined by the file extension.
func DecodeFile(fileName string) ([]*ProcessDefinition, error) {
	format := MapFormat(filepath.Ext(fileName))
	if format == 0 {
		return nil, fmt.Errorf("file %s has an unsupported extension", fileName)
	}

	f, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %v", fileName, err)
	}

	defer f.Close()

	processes, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("file %s: %v", fileName, err)
	}
	return processes, nil
}

func decodeProcess(data map[string]any) (*ProcessDefinition, error) {
	var process ProcessDefinition
	if err := decodeInto(data, &process); err != nil {
		return nil, fmt.Errorf("failed to decode process: %v", err)
	}
	return &process, nil
}

func decodeInto(data any, result any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			decodeActivityList,
			decodeEnum,
		),
		ErrorUnused: true,
		Result:      result,
		Squash:      true,
		TagName:     "json",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(data)
}

// decodeActivityList creates a concrete activity for each list item, using the item's "type".
func decodeActivityList(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != activityListType {
		return data, nil
	}
	if from.Kind() != reflect.Slice {
		return nil, fmt.Errorf("expected activities to be a list, but was %s", from.Kind())
	}

	items := reflect.ValueOf(data)

	activities := make(ActivityList, 0, items.Len())
	for i := 0; i < items.Len(); i++ {
		item, ok := items.Index(i).Interface().(map[string]any)
		if !ok {
			return nil, fmt.Errorf("activity %d: expected a mapping", i)
		}

		typeValue, _ := item["type"].(string)

		var activity Activity
		switch MapFlowNodeType(typeValue) {
		case NodeAutomaticTask:
			activity = &AutomaticTask{}
		case NodeCallActivity:
			activity = &CallActivity{}
		case NodeManualTask:
			activity = &ManualTask{}
		case NodeReceiveTask:
			activity = &ReceiveTask{}
		case NodeSendTask:
			activity = &SendTask{}
		case NodeSubProcess:
			activity = &SubProcess{}
		case NodeUserTask:
			activity = &UserTask{}
		default:
			return nil, fmt.Errorf("activity %d: invalid activity type '%s'", i, typeValue)
		}

		fields := make(map[string]any, len(item))
		for k, v := range item {
			if k != "type" {
				fields[k] = v
			}
		}

		if err := decodeInto(fields, activity); err != nil {
			return nil, fmt.Errorf("activity %d: %v", i, err)
		}

		activities = append(activities, activity)
	}

	return activities, nil
}

// decodeEnum decodes string values into enum types, using their JSON unmarshal function.
func decodeEnum(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Int {
		return data, nil
	}
	if !reflect.PointerTo(to).Implements(jsonUnmarshaler) {
		return data, nil
	}

	v := reflect.New(to)
	if err := v.Interface().(json.Unmarshaler).UnmarshalJSON([]byte(strconv.Quote(data.(string)))); err != nil {
		return nil, err
	}
	return v.Elem().Interface(), nil
}
