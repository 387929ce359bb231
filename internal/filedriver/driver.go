package filedriver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"dario.cat/mergo"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/op/go-logging"

	"github.com/chronos-tachyon/compressor"
)

var log = logging.MustGetLogger("compressor/filedriver")

// Options configures a Driver.  Zero fields take their value from
// DefaultOptions.
type Options struct {
	// FileMode is the permission given to created output files.
	FileMode os.FileMode
}

// DefaultOptions holds the defaults applied by New.
var DefaultOptions = Options{
	FileMode: 0644,
}

// Driver runs codecs against files of one filesystem.
type Driver struct {
	fs   billy.Filesystem
	opts Options
}

// New returns a Driver for the given filesystem.
func New(fsys billy.Filesystem, opts Options) (*Driver, error) {
	if err := mergo.Merge(&opts, DefaultOptions); err != nil {
		return nil, err
	}
	return &Driver{fs: fsys, opts: opts}, nil
}

// Compress reads the text file at input, compresses it with codec, and
// writes the result to output, which must not exist.
func (d *Driver) Compress(input string, output string, codec compressor.Codec) (Report, error) {
	return d.run(Compress, input, output, codec)
}

// Decompress reads the compressed file at input, decompresses it with codec,
// and writes the text to output, which must not exist.
func (d *Driver) Decompress(input string, output string, codec compressor.Codec) (Report, error) {
	return d.run(Decompress, input, output, codec)
}

func (d *Driver) run(dir Direction, input string, output string, codec compressor.Codec) (Report, error) {
	log.Debugf("compression method: %v", codec)
	log.Debugf("input path: %s", input)
	log.Debugf("output path: %s", output)

	if _, err := d.fs.Stat(output); err == nil {
		return Report{}, outputExistsError(dir, output)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Report{}, ioError(dir, "output", output, err)
	}

	start := time.Now()

	data, err := util.ReadFile(d.fs, input)
	if err != nil {
		return Report{}, ioError(dir, "input", input, err)
	}

	var result []byte
	switch dir {
	case Compress:
		result, err = codec.Compress(string(data))
	case Decompress:
		var text string
		text, err = codec.Decompress(data)
		result = []byte(text)
	}
	if err != nil {
		log.Debugf("%s failed: %v", dir, err)
		return Report{}, codecError(dir, err)
	}

	if err := d.writeNew(dir, output, result); err != nil {
		return Report{}, err
	}

	report := Report{
		Method:    methodName(codec),
		Direction: dir,
		Elapsed:   time.Since(start),
	}
	if dir == Compress {
		report.DecompressedSize, report.CompressedSize = int64(len(data)), int64(len(result))
	} else {
		report.DecompressedSize, report.CompressedSize = int64(len(result)), int64(len(data))
	}

	log.Debugf("size (decompressed): %.2f KB", kilobytes(report.DecompressedSize))
	log.Debugf("size (compressed): %.2f KB", kilobytes(report.CompressedSize))
	log.Infof("%s %s -> %s in %v", dir, input, output, report.Elapsed)
	return report, nil
}

// writeNew creates path exclusively and writes data to it.  The file is
// removed again if writing fails.
func (d *Driver) writeNew(dir Direction, path string, data []byte) error {
	f, err := d.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, d.opts.FileMode)
	if errors.Is(err, fs.ErrExist) {
		return outputExistsError(dir, path)
	}
	if err != nil {
		return ioError(dir, "output", path, err)
	}

	_, err = f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if removeErr := d.fs.Remove(path); removeErr != nil {
			log.Warningf("removing partial output %s: %v", path, removeErr)
		}
		return ioError(dir, "output", path, err)
	}
	return nil
}

func methodName(codec compressor.Codec) string {
	if s, ok := codec.(fmt.Stringer); ok {
		return s.String()
	}
	return "unknown"
}
