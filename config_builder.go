package modemlog

import (
	"io"
	"os"
)

// ConfigBuilder provides a fluent API for constructing logger
// configurations. It allows for more readable and chainable setup.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new builder seeded with DefaultConfig.
// This is the entry point for the fluent configuration API.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: DefaultConfig(),
	}
}

// WithLevel sets the verbosity threshold.
// Example: builder.WithLevel(modemlog.DebugLevel).
func (b *ConfigBuilder) WithLevel(level Level) *ConfigBuilder {
	b.config.Level = level

	return b
}

// WithDebugLevel is a convenience method for WithLevel(DebugLevel).
func (b *ConfigBuilder) WithDebugLevel() *ConfigBuilder {
	return b.WithLevel(DebugLevel)
}

// WithInfoLevel is a convenience method for WithLevel(InfoLevel).
func (b *ConfigBuilder) WithInfoLevel() *ConfigBuilder {
	return b.WithLevel(InfoLevel)
}

// WithOutput sets the output destination.
// Example: builder.WithOutput(os.Stderr).
func (b *ConfigBuilder) WithOutput(output io.Writer) *ConfigBuilder {
	b.config.Output = output

	return b
}

// WithConsoleOutput directs records to stdout.
// This is a convenience method for WithOutput(os.Stdout).
func (b *ConfigBuilder) WithConsoleOutput() *ConfigBuilder {
	b.config.Output = os.Stdout

	return b
}

// WithFileOutput directs records to a file, created if missing and
// appended to if present. The file is opened when New runs.
// Example: builder.WithFileOutput("/var/log/modem-0.log").
func (b *ConfigBuilder) WithFileOutput(path string) *ConfigBuilder {
	b.config.FilePath = path

	return b
}

// WithMaxBackups sets how many numbered backups rotation shifts when
// the file path names a rotating series. Values below 2 disable
// rotation.
// Example: builder.WithFileOutput("phy-0.log").WithMaxBackups(5).
func (b *ConfigBuilder) WithMaxBackups(count int) *ConfigBuilder {
	b.config.MaxBackups = count

	return b
}

// WithColorMode selects when severity tags are colored.
// Example: builder.WithColorMode(modemlog.ColorModeAuto).
func (b *ConfigBuilder) WithColorMode(mode ColorMode) *ConfigBuilder {
	b.config.Color.Mode = mode

	return b
}

// WithTagColors replaces the severity tag palette.
func (b *ConfigBuilder) WithTagColors(colors map[string]string) *ConfigBuilder {
	b.config.Color.TagColors = colors

	return b
}

// WithExitFunc replaces os.Exit for abort records.
func (b *ConfigBuilder) WithExitFunc(exit func(int)) *ConfigBuilder {
	b.config.ExitFunc = exit

	return b
}

// Build creates a Config object from the builder.
func (b *ConfigBuilder) Build() Config {
	return b.config
}
