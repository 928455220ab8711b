//go:build wasip1

package logging

import "unsafe"

//go:wasmimport wasi:logging/logging log
//go:noescape
func wasmimportLog(level uint32, context0 *uint8, context1 uint32, message0 *uint8, message1 uint32)

func defaultLog(level Level, context, message string) {
	wasmimportLog(uint32(level),
		unsafe.StringData(context), uint32(len(context)),
		unsafe.StringData(message), uint32(len(message)))
}
