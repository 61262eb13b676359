package uci

import (
	"fmt"
	"strconv"
	"strings"
)

// Option is an engine setting announced on "uci" and changed by "setoption".
type Option interface {
	UciName() string
	UciString() string
	Set(s string) error
}

type BoolOption struct {
	Name  string
	Value *bool
}

func (o *BoolOption) UciName() string { return o.Name }

func (o *BoolOption) UciString() string {
	return "option name " + o.Name + " type check default " + strconv.FormatBool(*o.Value)
}

func (o *BoolOption) Set(s string) error {
	var v, err = strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("%v: %w", o.Name, err)
	}
	*o.Value = v
	return nil
}

// IntOption is a spin option limited to [Min, Max].
type IntOption struct {
	Name  string
	Min   int
	Max   int
	Value *int
}

func (o *IntOption) UciName() string { return o.Name }

func (o *IntOption) UciString() string {
	return fmt.Sprintf("option name %s type spin default %d min %d max %d", o.Name, *o.Value, o.Min, o.Max)
}

func (o *IntOption) Set(s string) error {
	var v, err = strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%v: %w", o.Name, err)
	}
	if v < o.Min || v > o.Max {
		return fmt.Errorf("%v: %d outside [%d, %d]", o.Name, v, o.Min, o.Max)
	}
	*o.Value = v
	return nil
}

// ComboOption takes one of Values, matched without case.
type ComboOption struct {
	Name   string
	Values []string
	Value  *string
}

func (o *ComboOption) UciName() string { return o.Name }

func (o *ComboOption) UciString() string {
	return fmt.Sprintf("option name %s type combo default %s var %s",
		o.Name, *o.Value, strings.Join(o.Values, " var "))
}

func (o *ComboOption) Set(s string) error {
	for _, v := range o.Values {
		if strings.EqualFold(v, s) {
			*o.Value = v
			return nil
		}
	}
	return fmt.Errorf("%v: unknown value %q", o.Name, s)
}
