package sink

import (
	"bufio"
	"sync/atomic"

	"github.com/hyp3rd/ewrap"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/xiaojitui007/asynclog"
)

const (
	// DefaultMaxSizeMB is the default size in MB of a log file before rotation.
	DefaultMaxSizeMB = 100
	// fileBufferSize is the size of the in-process write buffer in front of
	// the log file. Flush pushes it through.
	fileBufferSize = 64 * 1024
)

// FileConfig holds configuration for a rotating file sink.
type FileConfig struct {
	// Path is the path to the log file.
	Path string
	// MaxSizeMB is the max size in MB before rotation.
	MaxSizeMB int
	// MaxBackups is the maximum number of rotated files to retain (0 = no limit).
	MaxBackups int
	// MaxAgeDays is the maximum age of rotated files in days before deletion (0 = no deletion).
	MaxAgeDays int
	// Compress determines if rotated files should be gzip-compressed.
	Compress bool
	// LocalTime uses local time instead of UTC for rotated file names.
	LocalTime bool
}

// File is a rotating, file-backed sink. Formatted records accumulate in an
// in-process buffer; Flush pushes them through to the file. Rotation,
// retention, and compression are handled by lumberjack.
//
// Write, Flush, Rotate, and Close must be called from a single goroutine;
// the asynclog writer satisfies this. ApproximateSize is safe from any
// goroutine.
type File struct {
	out      *lumberjack.Logger
	buffered *bufio.Writer
	accepted atomic.Int64
	scratch  []byte
}

// NewFile creates a rotating file sink at the configured path. The file is
// created lazily on first write.
func NewFile(config FileConfig) (*File, error) {
	if config.Path == "" {
		return nil, ewrap.New("log file path cannot be empty")
	}

	if config.MaxSizeMB <= 0 {
		config.MaxSizeMB = DefaultMaxSizeMB
	}

	out := &lumberjack.Logger{
		Filename:   config.Path,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAgeDays,
		Compress:   config.Compress,
		LocalTime:  config.LocalTime,
	}

	return &File{
		out:      out,
		buffered: bufio.NewWriterSize(out, fileBufferSize),
	}, nil
}

// Write formats and buffers the records in order.
func (f *File) Write(records []asynclog.Record) error {
	for _, r := range records {
		f.scratch = formatRecord(f.scratch[:0], r)

		n, err := f.buffered.Write(f.scratch)
		f.accepted.Add(int64(n))

		if err != nil {
			return ewrap.Wrap(err, "writing to log file")
		}
	}

	return nil
}

// Flush pushes buffered records through to the log file.
func (f *File) Flush() error {
	err := f.buffered.Flush()
	if err != nil {
		return ewrap.Wrap(err, "flushing log file")
	}

	return nil
}

// ApproximateSize reports the bytes accepted by the sink. The value is
// approximate since buffered data may not have reached the file yet and
// rotation resets the file on disk.
func (f *File) ApproximateSize() int64 {
	return f.accepted.Load()
}

// Rotate forces an immediate rotation of the log file.
func (f *File) Rotate() error {
	err := f.Flush()
	if err != nil {
		return err
	}

	err = f.out.Rotate()
	if err != nil {
		return ewrap.Wrap(err, "rotating log file")
	}

	return nil
}

// Close flushes buffered records and closes the log file.
func (f *File) Close() error {
	err := f.Flush()
	if err != nil {
		return err
	}

	err = f.out.Close()
	if err != nil {
		return ewrap.Wrap(err, "closing log file")
	}

	return nil
}

var _ asynclog.Sink = (*File)(nil)
