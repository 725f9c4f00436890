package workflows

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/jpkuehn/S3.Forms/models"
)

// Workflow settings are declared as struct fields tagged with `setting:"Name"`.
// Optional `description` and `view` tags describe the setting to editors.
// Embedded structs contribute their settings.

// BindSettings copies a workflow's stored settings into a tagged settings struct
func BindSettings(dst interface{}, settings map[string]string) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("settings target must be a pointer to a struct, got %T", dst)
	}
	return bindStruct(v.Elem(), settings)
}

func bindStruct(v reflect.Value, settings map[string]string) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := bindStruct(v.Field(i), settings); err != nil {
				return err
			}
			continue
		}

		name, ok := field.Tag.Lookup("setting")
		if !ok || !field.IsExported() {
			continue
		}
		raw, ok := lookupSetting(settings, name)
		if !ok {
			continue
		}

		switch field.Type.Kind() {
		case reflect.String:
			v.Field(i).SetString(raw)
		case reflect.Bool:
			v.Field(i).SetBool(parseBool(raw))
		case reflect.Int, reflect.Int64:
			if strings.TrimSpace(raw) == "" {
				continue
			}
			n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
			if err != nil {
				return fmt.Errorf("setting %s: %w", name, err)
			}
			v.Field(i).SetInt(n)
		default:
			return fmt.Errorf("setting %s: unsupported type %s", name, field.Type)
		}
	}
	return nil
}

// lookupSetting finds a setting by name, ignoring case
func lookupSetting(settings map[string]string, name string) (string, bool) {
	if raw, ok := settings[name]; ok {
		return raw, true
	}
	for k, raw := range settings {
		if strings.EqualFold(k, name) {
			return raw, true
		}
	}
	return "", false
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "on", "yes":
		return true
	}
	return false
}

// SettingsMap returns every declared setting of a settings struct as name → string
func SettingsMap(src interface{}) map[string]string {
	out := make(map[string]string)
	v := reflect.Indirect(reflect.ValueOf(src))
	if v.Kind() != reflect.Struct {
		return out
	}
	collectSettings(v, out)
	return out
}

func collectSettings(v reflect.Value, out map[string]string) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			collectSettings(v.Field(i), out)
			continue
		}
		name, ok := field.Tag.Lookup("setting")
		if !ok || !field.IsExported() {
			continue
		}
		out[name] = fmt.Sprint(v.Field(i).Interface())
	}
}

// DescribeSettings lists the setting descriptors of a settings struct type
func DescribeSettings(src interface{}) []models.SettingDescriptor {
	t := reflect.TypeOf(src)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	var out []models.SettingDescriptor
	describe(t, &out)
	return out
}

func describe(t reflect.Type, out *[]models.SettingDescriptor) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			describe(field.Type, out)
			continue
		}
		name, ok := field.Tag.Lookup("setting")
		if !ok {
			continue
		}
		view := field.Tag.Get("view")
		if view == "" {
			view = "textfield"
			if field.Type.Kind() == reflect.Bool {
				view = "checkbox"
			}
		}
		*out = append(*out, models.SettingDescriptor{
			Name:        name,
			Description: field.Tag.Get("description"),
			View:        view,
		})
	}
}
