package state

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"fuzzyfolders/internal/config"
	"fuzzyfolders/internal/constants"
	"fuzzyfolders/internal/spotlight"
)

// State carries everything an invocation needs, threaded explicitly into
// every command constructor. Nothing here is global; one State is built
// per process and discarded on exit.
type State struct {
	Settings    *config.Settings
	Home        string
	DataDir     string
	WorkflowDir string
	Indexer     spotlight.Indexer
	Log         *zap.SugaredLogger
}

func New() (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	log := NewLogger()

	dataDir := ResolveDataDir(home)
	settings, err := LoadSettings(dataDir)
	if err != nil {
		return nil, err
	}

	// Alfred runs workflow scripts with the workflow folder as the
	// working directory, so info.plist and README.html live here.
	workflowDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workflow directory: %w", err)
	}

	return &State{
		Settings:    settings,
		Home:        home,
		DataDir:     dataDir,
		WorkflowDir: workflowDir,
		Indexer:     spotlight.MDFind{Log: log},
		Log:         log,
	}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}
	return home, nil
}

// ResolveDataDir prefers the per-workflow data directory Alfred exports,
// falling back to a dotdir under home for use outside the launcher.
func ResolveDataDir(home string) string {
	viper.BindEnv("workflow_data", "alfred_workflow_data")
	viper.SetDefault("workflow_data", filepath.Join(home, constants.DataDir))
	return viper.GetString("workflow_data")
}

func LoadSettings(dataDir string) (*config.Settings, error) {
	if err := config.EnsureSettingsExist(dataDir); err != nil {
		return nil, err
	}
	return config.Load(dataDir)
}

// NewLogger builds a stderr logger; stdout belongs to the feedback
// document. Debug level follows Alfred's debug panel.
func NewLogger() *zap.SugaredLogger {
	viper.BindEnv("debug", "alfred_debug")

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if !viper.GetBool("debug") {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
