//go:build wasilog_nokv

package wasi

import (
	"strings"

	"github.com/trickstertwo/wasilog"
)

func hasKeyValues(*wasilog.Record) bool { return false }

func appendKeyValues(*strings.Builder, *wasilog.Record) {}
