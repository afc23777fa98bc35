package colorconv

// DefaultChunkSize is the number of elements a parallel batch hands to one
// worker at a time.
const DefaultChunkSize = 4096

// BatchOption configures a bulk conversion.
// Use functional options to customize batch behavior.
//
// Example:
//
//	// Serial conversion
//	rgb := colorconv.ToRGB(labs)
//
//	// Parallel conversion on a shared pool
//	pool := colorconv.NewPool(0)
//	defer pool.Close()
//	rgb := colorconv.ToRGB(labs, colorconv.WithPool(pool))
type BatchOption func(*batchOptions)

// batchOptions holds optional configuration for bulk conversion.
type batchOptions struct {
	pool      *Pool
	chunkSize int
}

// defaultBatchOptions returns the default batch options.
func defaultBatchOptions() batchOptions {
	return batchOptions{
		pool:      nil, // serial
		chunkSize: DefaultChunkSize,
	}
}

// WithPool runs the batch on p. Inputs no longer than one chunk, and closed
// or nil pools, are converted serially on the calling goroutine.
func WithPool(p *Pool) BatchOption {
	return func(o *batchOptions) {
		o.pool = p
	}
}

// WithChunkSize sets how many contiguous elements one worker converts per
// task. Values <= 0 keep the default.
func WithChunkSize(n int) BatchOption {
	return func(o *batchOptions) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}
