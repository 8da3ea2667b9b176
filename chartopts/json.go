// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chartopts

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// UnmarshalJSON decodes the known keys and keeps any other scalar key in
// Attrs, so callers can pass presentation attributes inline:
//
//	{"seriesType":"line","color":"red","stroke-dasharray":"4 2"}
func (in *SeriesInput) UnmarshalJSON(b []byte) error {
	type known SeriesInput
	var k known
	if err := json.Unmarshal(b, &k); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for key, val := range raw {
		switch key {
		case "seriesType", "lineOptions", "color", "attrs":
			continue
		}
		s, ok := scalarString(val)
		if !ok {
			return fmt.Errorf("option %q: only string, number or bool values are passed through", key)
		}
		if k.Attrs == nil {
			k.Attrs = make(map[string]string)
		}
		if _, exists := k.Attrs[key]; !exists {
			k.Attrs[key] = s
		}
	}

	*in = SeriesInput(k)
	return nil
}

func scalarString(raw json.RawMessage) (string, bool) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}
