package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Field helpers for the task-graph domain

func Component(name string) Field {
	return String("component", name)
}

func NodeID(id string) Field {
	return String("node_id", id)
}

func NodeKind(kind string) Field {
	return String("node_type", kind)
}

func URL(u string) Field {
	return String("url", u)
}

func Nodes(n int) Field {
	return Int("nodes", n)
}

func Edges(n int) Field {
	return Int("edges", n)
}

func Operation(op string) Field {
	return String("operation", op)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Path(p string) Field {
	return String("path", p)
}
