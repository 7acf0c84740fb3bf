package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/akyairhashvil/countmedown/internal/countdown"
	"github.com/akyairhashvil/countmedown/internal/util"
)

// Record is the persisted set of countdown inputs.
type Record struct {
	TimeIn   string `yaml:"time_in"`
	Prefix   string `yaml:"prefix"`
	Ending   string `yaml:"ending"`
	Step     int    `yaml:"step"`
	FilePath string `yaml:"filepath"`
}

func NewRecord(timeIn, prefix, ending string, step int, filePath string) Record {
	return Record{
		TimeIn:   timeIn,
		Prefix:   prefix,
		Ending:   ending,
		Step:     step,
		FilePath: filePath,
	}
}

// DefaultRecord returns the inputs shown before anything has been saved.
func DefaultRecord() Record {
	path := DefaultTUIFileName
	if wd, err := os.Getwd(); err == nil {
		path = filepath.Join(wd, DefaultTUIFileName)
	}
	return NewRecord(DefaultTimeIn, DefaultTUIPrefix, DefaultTUIEnding, DefaultStep, path)
}

// Fields returns the five values in declaration order.
func (r Record) Fields() (timeIn, prefix, ending string, step int, filePath string) {
	return r.TimeIn, r.Prefix, r.Ending, r.Step, r.FilePath
}

// Seconds parses TimeIn as a relative duration.
func (r Record) Seconds() (uint32, error) {
	return countdown.ParseRelative(r.TimeIn)
}

// Plan builds a countdown plan from the record.
func (r Record) Plan() (countdown.Plan, error) {
	secs, err := r.Seconds()
	if err != nil {
		return countdown.Plan{}, err
	}
	plan := countdown.Plan{
		TotalSeconds: secs,
		Prefix:       r.Prefix,
		Ending:       r.Ending,
		Step:         r.Step,
		Path:         r.FilePath,
	}
	return plan, plan.Validate()
}

func (r Record) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, errors.Wrap(err, "encode config")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encode config")
	}
	return buf.Bytes(), nil
}

func UnmarshalRecord(data []byte) (Record, error) {
	var r Record
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		return Record{}, errors.Wrap(err, "decode config")
	}
	return r, nil
}

// DefaultPath is <user config dir>/CountMeDown/countmedown.yaml.
func DefaultPath() string {
	return filepath.Join(util.ConfigDir(ConfigDirName), ConfigFileName)
}

func Save(path string, r Record) error {
	data, err := r.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create config dir for %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write config %s", path)
	}
	return nil
}

func Load(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, errors.Wrapf(err, "read config %s", path)
	}
	r, err := UnmarshalRecord(data)
	if err != nil {
		return Record{}, errors.Wrapf(err, "load config %s", path)
	}
	return r, nil
}

// LoadOptional treats a missing or corrupt file as no configuration.
func LoadOptional(path string) (Record, bool) {
	r, err := Load(path)
	if err != nil {
		return Record{}, false
	}
	return r, true
}
