// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const envName = "ZWOPARSE_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	logFilePath    string
}

// New computes the application paths from the XDG base directories. Setting
// ZWOPARSE_ENV keeps separate config and log files per environment.
func New() (*Paths, error) {
	xdg.Reload()

	p := &Paths{
		configDir:      "zwoparse",
		configFileName: "config.yml",
		logFileName:    "zwoparse.log",
	}

	p.applyEnvironmentOverrides()

	if err := p.computePaths(); err != nil {
		return nil, err
	}

	return p, nil
}

// Dir is the name of the application directory inside the XDG base
// directories.
func (p *Paths) Dir() string {
	return p.configDir
}

// ConfigFilePath returns the location of the config file.
func (p *Paths) ConfigFilePath() string {
	return p.configFilePath
}

// LogFilePath returns the location of the log file.
func (p *Paths) LogFilePath() string {
	return p.logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.logFileName = fmt.Sprintf("zwoparse_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return err
	}

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
