package operation

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/hoppxi/zbacklight/pkg/backlightinfo"
	"go.uber.org/zap"
)

var ErrInvalidOption = errors.New("Invalid option")

// Display applies brightness operations to one backlight device.
type Display struct {
	Paths backlightinfo.Paths
	Out   io.Writer
	Log   *zap.Logger
}

func NewDisplay(paths backlightinfo.Paths, out io.Writer, log *zap.Logger) *Display {
	if out == nil {
		out = os.Stdout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Display{Paths: paths, Out: out, Log: log}
}

// WriteRaw writes value as decimal ASCII to an existing control file.
func WriteRaw(path string, value int) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return backlightinfo.PathError(path, err)
	}

	if err := writeValue(f, path, value); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return backlightinfo.PathError(path, err)
	}
	return nil
}

// writeValue writes value in one call; a short write is an error.
func writeValue(w io.Writer, path string, value int) error {
	buf := []byte(strconv.Itoa(value))
	n, err := w.Write(buf)
	if err == nil && n != len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return backlightinfo.PathError(path, err)
	}
	return nil
}

// Target converts a percentage into the raw value Set would write.
// The result is never below 1 so the backlight is not switched off.
func Target(info backlightinfo.BrightnessInfo, value float64) (int, error) {
	if info.Max <= 0 {
		return 0, fmt.Errorf("%w: %d", backlightinfo.ErrInvalidMax, info.Max)
	}

	if value <= 0 {
		value = 0
	} else if value > 100 {
		value = 100
	}

	target := int(value / 100.0 * float64(info.Max))
	if target <= 0 {
		target = 1
	}
	return target, nil
}

func (d *Display) Get(info backlightinfo.BrightnessInfo) error {
	ratio, err := info.Ratio()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(d.Out, "Current brightness: %0.02f%%\n", ratio)
	return err
}

func (d *Display) Set(info backlightinfo.BrightnessInfo, value float64) error {
	target, err := Target(info, value)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(d.Out, "Setting brightness to %d\n", target); err != nil {
		return err
	}
	d.Log.Debug("write control file", zap.String("path", d.Paths.Target), zap.Int("value", target))
	return WriteRaw(d.Paths.Target, target)
}

func (d *Display) Inc(info backlightinfo.BrightnessInfo, delta float64) error {
	ratio, err := info.Ratio()
	if err != nil {
		return err
	}
	return d.Set(info, ratio+delta)
}

func (d *Display) Dec(info backlightinfo.BrightnessInfo, delta float64) error {
	ratio, err := info.Ratio()
	if err != nil {
		return err
	}
	return d.Set(info, ratio-delta)
}

// Apply dispatches op against the loaded snapshot.
func (d *Display) Apply(op Operation, info backlightinfo.BrightnessInfo) error {
	d.Log.Debug("apply operation", zap.Stringer("kind", op.Kind), zap.Float64("value", op.Value))

	switch op.Kind {
	case Get:
		return d.Get(info)
	case Set:
		return d.Set(info, op.Value)
	case Inc:
		return d.Inc(info, op.Value)
	case Dec:
		return d.Dec(info, op.Value)
	default:
		return ErrInvalidOption
	}
}
