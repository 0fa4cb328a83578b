package backlightinfo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	CurrentBrightness = "/sys/class/backlight/intel_backlight/actual_brightness"
	MaxBrightness     = "/sys/class/backlight/intel_backlight/max_brightness"
	TargetBrightness  = "/sys/class/backlight/intel_backlight/brightness"
)

// readLimit caps how much of a control file is read.
const readLimit = 256

var ErrInvalidMax = errors.New("invalid max_brightness value")

// Paths names the three backlight control files.
type Paths struct {
	Current string
	Max     string
	Target  string
}

func DefaultPaths() Paths {
	return Paths{
		Current: CurrentBrightness,
		Max:     MaxBrightness,
		Target:  TargetBrightness,
	}
}

type BrightnessInfo struct {
	Current int `json:"current" yaml:"current"`
	Max     int `json:"max" yaml:"max"`
}

// Ratio returns the current brightness as a percentage of max.
func (b BrightnessInfo) Ratio() (float64, error) {
	if b.Max <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMax, b.Max)
	}
	return float64(b.Current) / float64(b.Max) * 100.0, nil
}

// PathError builds the diagnostic for a failed control file access: the path
// followed by the system error text.
func PathError(path string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return fmt.Errorf("%s: %w", path, err)
}

var leadingInt = regexp.MustCompile(`^[ \t\n\v\f\r]*[+-]?[0-9]+`)

// ParseLeadingInt parses the base 10 integer at the start of s, skipping
// leading whitespace. Anything after the digits is ignored and input without
// digits yields 0. Values outside the int range saturate at the nearest
// bound, as strtol does.
func ParseLeadingInt(s string) (int, error) {
	m := leadingInt.FindString(s)
	if m == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(strings.TrimLeft(m, " \t\n\v\f\r"))
	if errors.Is(err, strconv.ErrRange) {
		// Atoi already returns the clamped value
		return v, nil
	}
	return v, err
}

// ReadRaw reads a raw integer value from a control file.
func ReadRaw(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, PathError(path, err)
	}
	defer f.Close()

	buf := make([]byte, readLimit)
	n, err := f.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, PathError(path, err)
	}

	v, err := ParseLeadingInt(string(buf[:n]))
	if err != nil {
		return 0, PathError(path, err)
	}
	return v, nil
}

// Load reads the current and maximum brightness.
func Load(paths Paths, log *zap.Logger) (*BrightnessInfo, error) {
	current, err := ReadRaw(paths.Current)
	if err != nil {
		return nil, err
	}
	log.Debug("read control file", zap.String("path", paths.Current), zap.Int("value", current))

	maxVal, err := ReadRaw(paths.Max)
	if err != nil {
		return nil, err
	}
	log.Debug("read control file", zap.String("path", paths.Max), zap.Int("value", maxVal))

	return &BrightnessInfo{
		Current: current,
		Max:     maxVal,
	}, nil
}

type snapshot struct {
	Current int     `json:"current" yaml:"current"`
	Max     int     `json:"max" yaml:"max"`
	Percent float64 `json:"percent" yaml:"percent"`
}

func (b BrightnessInfo) snapshot() (snapshot, error) {
	ratio, err := b.Ratio()
	if err != nil {
		return snapshot{}, err
	}
	return snapshot{Current: b.Current, Max: b.Max, Percent: ratio}, nil
}

func (b BrightnessInfo) JSON() ([]byte, error) {
	s, err := b.snapshot()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(s, "", "  ")
}

func (b BrightnessInfo) YAML() ([]byte, error) {
	s, err := b.snapshot()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(s)
}
