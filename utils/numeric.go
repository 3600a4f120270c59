// utils/numeric.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexFloat is a float64 that also accepts JSON string values, e.g. both
// 2380 and "2380" unmarshal to 2380. Spreadsheet-sourced payloads send
// monetary amounts and quantities as strings.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) && len(s) >= 2 {
		s = s[1 : len(s)-1]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("valor numérico inválido: %q", s)
	}
	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) Float64() float64 {
	return float64(f)
}
