package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores an ordered list of strings as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, (*[]string)(l))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(l))
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// IntList stores an ordered list of integers as a JSON column. Used for
// author ordering, where the relation table itself carries no order.
type IntList []int

func (l IntList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]int(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *IntList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, (*[]int)(l))
	case string:
		return json.Unmarshal([]byte(v), (*[]int)(l))
	default:
		return fmt.Errorf("cannot scan %T into IntList", value)
	}
}

func (l IntList) Contains(id int) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}
