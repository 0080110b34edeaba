// Package dump writes diagnostic captures of modem data: hex renderings
// of binary payloads and text dumps of baseband/passband signal buffers.
//
// The helpers are stateless and independent of the logger; they share no
// lock with it and may run concurrently with logging and with each
// other. Dump files are created fresh on every call, truncating any
// previous capture of the same name.
package dump

import (
	"bufio"
	"encoding/hex"
	"os"
	"strconv"

	"github.com/hyp3rd/ewrap"
)

const (
	// basebandDecimals is the fixed number of fractional digits per
	// baseband component, matching what offline analysis tooling parses.
	basebandDecimals = 6

	// sampleLineCap comfortably holds one formatted sample line.
	sampleLineCap = 64
)

// HexString renders data as lowercase hex, two characters per byte.
func HexString(data []byte) string {
	return hex.EncodeToString(data)
}

// AppendHex appends the lowercase hex rendering of data to dst and
// returns the extended slice, letting callers reuse scratch storage
// across payloads.
func AppendHex(dst, data []byte) []byte {
	return hex.AppendEncode(dst, data)
}

// Baseband writes one "real,imag" line per complex sample to the file
// at path, created or truncated. Components use fixed six-decimal
// notation.
func Baseband(path string, signal []complex64) error {
	file, err := create(path)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(file)
	buf := make([]byte, 0, sampleLineCap)

	for _, sample := range signal {
		buf = buf[:0]
		buf = strconv.AppendFloat(buf, float64(real(sample)), 'f', basebandDecimals, 64)
		buf = append(buf, ',')
		buf = strconv.AppendFloat(buf, float64(imag(sample)), 'f', basebandDecimals, 64)
		buf = append(buf, '\n')

		_, err = writer.Write(buf)
		if err != nil {
			_ = file.Close()

			return ewrap.Wrap(err, "writing baseband dump")
		}
	}

	return finish(file, writer)
}

// Passband writes one decimal integer per line to the file at path,
// created or truncated.
func Passband(path string, signal []int32) error {
	file, err := create(path)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(file)
	buf := make([]byte, 0, sampleLineCap)

	for _, sample := range signal {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(sample), 10)
		buf = append(buf, '\n')

		_, err = writer.Write(buf)
		if err != nil {
			_ = file.Close()

			return ewrap.Wrap(err, "writing passband dump")
		}
	}

	return finish(file, writer)
}

func create(path string) (*os.File, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, ewrap.Wrapf(err, "opening dump file").
			WithMetadata("path", path)
	}

	return file, nil
}

func finish(file *os.File, writer *bufio.Writer) error {
	err := writer.Flush()
	if err != nil {
		_ = file.Close()

		return ewrap.Wrap(err, "flushing dump file")
	}

	err = file.Close()
	if err != nil {
		return ewrap.Wrap(err, "closing dump file")
	}

	return nil
}
