package log

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// LogMessageWire is the JSON wire format of a log record sent by a guest.
type LogMessageWire struct {
	Timestamp time.Time     `json:"timestamp"`
	Attrs     []LogAttrWire `json:"attrs,omitempty"`
	Level     string        `json:"level"`
	Message   string        `json:"message"`
	Source    string        `json:"source,omitempty"`
}

// LogAttrWire represents a single slog attribute for wire transfer.
type LogAttrWire struct {
	Key   string `json:"key"`
	Type  string `json:"type"`  // "string", "int64", "uint64", "bool", "float64", "time", "duration", "error", "json", "any"
	Value string `json:"value"` // String representation of the value
}

// NewLogMessage converts a slog.Record to its wire form. Group attributes are
// flattened into dotted keys.
func NewLogMessage(record slog.Record) LogMessageWire {
	msg := LogMessageWire{
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}
	record.Attrs(func(attr slog.Attr) bool {
		msg.Attrs = appendLogAttrWire(msg.Attrs, "", attr)
		return true
	})
	return msg
}

func appendLogAttrWire(dst []LogAttrWire, prefix string, attr slog.Attr) []LogAttrWire {
	attr.Value = attr.Value.Resolve()
	if attr.Value.Kind() == slog.KindGroup {
		for _, a := range attr.Value.Group() {
			dst = appendLogAttrWire(dst, prefix+attr.Key+".", a)
		}
		return dst
	}
	wire := toLogAttrWire(attr)
	wire.Key = prefix + wire.Key
	return append(dst, wire)
}

// toLogAttrWire converts a slog.Attr to LogAttrWire.
func toLogAttrWire(attr slog.Attr) LogAttrWire {
	wire := LogAttrWire{Key: attr.Key}
	attr.Value = attr.Value.Resolve()

	switch attr.Value.Kind() {
	case slog.KindString:
		wire.Type = "string"
		wire.Value = attr.Value.String()
	case slog.KindInt64:
		wire.Type = "int64"
		wire.Value = strconv.FormatInt(attr.Value.Int64(), 10)
	case slog.KindUint64:
		wire.Type = "uint64"
		wire.Value = strconv.FormatUint(attr.Value.Uint64(), 10)
	case slog.KindBool:
		wire.Type = "bool"
		wire.Value = strconv.FormatBool(attr.Value.Bool())
	case slog.KindFloat64:
		wire.Type = "float64"
		wire.Value = strconv.FormatFloat(attr.Value.Float64(), 'g', -1, 64)
	case slog.KindTime:
		wire.Type = "time"
		wire.Value = attr.Value.Time().Format(time.RFC3339Nano)
	case slog.KindDuration:
		wire.Type = "duration"
		wire.Value = attr.Value.Duration().String()
	case slog.KindAny:
		v := attr.Value.Any()
		switch {
		case v == nil:
			wire.Type = "any"
			wire.Value = "<nil>"
		default:
			if err, isErr := v.(error); isErr {
				wire.Type = "error"
				wire.Value = err.Error()
			} else if data, marshalErr := json.Marshal(v); marshalErr == nil {
				wire.Type = "json"
				wire.Value = string(data)
			} else {
				wire.Type = "any"
				wire.Value = fmt.Sprintf("%v", v)
			}
		}
	default:
		wire.Type = "any"
		wire.Value = fmt.Sprintf("%v", attr.Value.Any())
	}
	return wire
}

// toAttr restores the typed attribute. Values that fail to parse are kept as strings.
func (w LogAttrWire) toAttr() slog.Attr {
	switch w.Type {
	case "int64":
		if v, err := strconv.ParseInt(w.Value, 10, 64); err == nil {
			return slog.Int64(w.Key, v)
		}
	case "uint64":
		if v, err := strconv.ParseUint(w.Value, 10, 64); err == nil {
			return slog.Uint64(w.Key, v)
		}
	case "bool":
		if v, err := strconv.ParseBool(w.Value); err == nil {
			return slog.Bool(w.Key, v)
		}
	case "float64":
		if v, err := strconv.ParseFloat(w.Value, 64); err == nil {
			return slog.Float64(w.Key, v)
		}
	case "time":
		if v, err := time.Parse(time.RFC3339Nano, w.Value); err == nil {
			return slog.Time(w.Key, v)
		}
	case "duration":
		if v, err := time.ParseDuration(w.Value); err == nil {
			return slog.Duration(w.Key, v)
		}
	case "json":
		if json.Valid([]byte(w.Value)) {
			return slog.Any(w.Key, json.RawMessage(RedactJSON([]byte(w.Value))))
		}
	}
	return slog.String(w.Key, w.Value)
}

// Emit replays a guest log record into logger. Unknown levels are logged at
// info; the record's source, if any, is added as the "source" attribute.
func Emit(ctx context.Context, logger *slog.Logger, msg LogMessageWire) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(msg.Level)); err != nil {
		level = slog.LevelInfo
	}
	if !logger.Enabled(ctx, level) {
		return
	}

	attrs := make([]slog.Attr, 0, len(msg.Attrs)+2)
	if msg.Source != "" {
		attrs = append(attrs, slog.String("source", msg.Source))
	}
	if !msg.Timestamp.IsZero() {
		attrs = append(attrs, slog.Time("guest_time", msg.Timestamp))
	}
	for _, a := range msg.Attrs {
		attrs = append(attrs, a.toAttr())
	}
	logger.LogAttrs(ctx, level, msg.Message, attrs...)
}
