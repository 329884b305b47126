package image

import (
	"encoding/json"
	"fmt"
	"strings"

	"jajresources.com/image-gateway/app/utils/functional"
)

// TagList is raw tag input: either one comma separated string or a list of tags.
type TagList struct {
	values []string
	joined bool
}

func TagsFromString(raw string) TagList {
	return TagList{values: []string{raw}, joined: true}
}

func TagsFromSlice(raw []string) TagList {
	return TagList{values: raw}
}

// TagsFromForm treats a single form value as a comma separated string and
// repeated values as a list.
func TagsFromForm(values []string) TagList {
	if len(values) == 1 {
		return TagsFromString(values[0])
	}
	return TagsFromSlice(values)
}

func (t TagList) IsZero() bool {
	return len(t.values) == 0
}

func (t *TagList) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch value := raw.(type) {
	case nil:
		*t = TagList{}
	case string:
		*t = TagsFromString(value)
	case []any:
		*t = TagsFromSlice(functional.Map(value, func(item any) string {
			if item == nil {
				return ""
			}
			return fmt.Sprint(item)
		}))
	default:
		return fmt.Errorf("tags must be a string or a list of strings")
	}
	return nil
}

// NormalizeTags is the single tag cleaning rule for create and update: split a
// joined string on commas, trim, lower-case, drop empties and duplicates.
func NormalizeTags(raw TagList) []string {
	values := raw.values
	if raw.joined {
		values = strings.Split(raw.values[0], ",")
	}
	return CleanTags(values)
}

// CleanTags applies the normalization rule to already separated tags.
func CleanTags(values []string) []string {
	cleaned := functional.Map(values, func(tag string) string {
		return strings.ToLower(strings.TrimSpace(tag))
	})
	return functional.Distinct(functional.Filter(cleaned, func(tag string) bool {
		return tag != ""
	}))
}
