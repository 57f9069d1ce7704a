package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// IntOrString holds a sets/reps value that may be a plain number or free
// text like "8-12", "5 min" or "40 sec". It marshals back to whichever form
// it was created from, so documents round-trip unchanged.
type IntOrString struct {
	IsString bool
	IntVal   int
	StrVal   string
}

func FromInt(i int) IntOrString {
	return IntOrString{IntVal: i}
}

func FromString(s string) IntOrString {
	return IntOrString{IsString: true, StrVal: s}
}

func (v IntOrString) MarshalJSON() ([]byte, error) {
	if v.IsString {
		return json.Marshal(v.StrVal)
	}
	return json.Marshal(v.IntVal)
}

func (v *IntOrString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		v.IsString = true
		v.IntVal = 0
		return json.Unmarshal(data, &v.StrVal)
	}
	// Numbers may arrive as floats; truncate like the rest of the app does.
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	v.IsString = false
	v.StrVal = ""
	v.IntVal = int(f)
	return nil
}

// Int coerces the value for arithmetic: numeric values pass through, text is
// parsed to its leading integer ("8-12" -> 8, "5 min" -> 5) and anything
// without a leading integer counts as 0. Free-text forms never abort a
// computation.
func (v IntOrString) Int() int {
	if !v.IsString {
		return v.IntVal
	}
	s := strings.TrimSpace(v.StrVal)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func (v IntOrString) String() string {
	if v.IsString {
		return v.StrVal
	}
	return strconv.Itoa(v.IntVal)
}
