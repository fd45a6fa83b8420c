package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

type decoder struct {
	writer io.Writer
}

// NewDecoder creates a decoder that writes to the given writer.
// Decoder implements io.Writer that takes []bytes with single
// log event in JSON and writes it in human readable form
func NewDecoder(writer io.Writer) io.Writer {
	return &decoder{writer: writer}
}

func (d *decoder) Write(p []byte) (n int, err error) {
	var data map[string]interface{}
	err = json.Unmarshal(p, &data)
	if err != nil {
		return 0, err
	}
	_, err = io.WriteString(d.writer, decode(data))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

func decode(data map[string]interface{}) string {
	if event, ok := data[Event]; ok && event == Genesis {
		return fmt.Sprintln("Beginning of time at", data[Genesis])
	}
	var ret strings.Builder
	if val, ok := data[Time]; ok {
		fmt.Fprintf(&ret, "%6v|", val)
	}
	if val, ok := data[Level]; ok {
		if s, isStr := val.(string); isStr {
			if i, err := strconv.Atoi(s); err == nil {
				fmt.Fprintf(&ret, "%5v|", zerolog.Level(i))
			} else {
				fmt.Fprintf(&ret, "%5v|", s)
			}
		}
	}
	if val, ok := data[Service]; ok {
		if f, isNum := val.(float64); isNum {
			fmt.Fprintf(&ret, "%s:%7v|", fieldNameDict[Service], serviceTypeDict[int(f)])
		}
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		if k == Time || k == Service || k == Event || k == Level {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		name := k
		if f, ok := fieldNameDict[k]; ok {
			name = f
		}
		fmt.Fprintf(&ret, "%8s = %-6v|", name, data[k])
	}
	if val, ok := data[Event]; ok {
		s := fmt.Sprint(val)
		if human, in := eventTypeDict[s]; in {
			s = human
		}
		ret.WriteString("  " + s)
	}
	ret.WriteString("\n")
	return ret.String()
}
