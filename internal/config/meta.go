package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "save_on_exit"
		case reflect.Int:
			if fieldName == "max_log_files" {
				return DefaultMaxLogFiles
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "editor":
			return "code"
		case "restore":
			return DefaultRestore
		case "storage":
			return DefaultStorage
		default:
			return "example"
		}
	case reflect.Slice:
		if fieldName == "search_path_exclude" {
			return []string{"/**/node_modules/**"}
		}
		return []string{"example1", "example2"}
	}

	return nil
}
