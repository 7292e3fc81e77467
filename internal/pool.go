package internal

import "sync"

// BufferPool holds scratch byte slices for encoding state once per tick.
var BufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 0, 128)
		return &buf
	},
}
