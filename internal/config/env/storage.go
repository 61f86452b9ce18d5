package env

import (
	"fmt"
	"os"

	"clicker_backend/internal/config"
)

const (
	saveStorageEnvName = "SAVE_STORAGE"
	saveDirEnvName     = "SAVE_DIR"

	StoragePG   = "pg"
	StorageFile = "file"

	defaultSaveDir = "data/saves"
)

type storageConfig struct {
	backend string
	dir     string
}

func NewStorageConfig() (config.StorageConfig, error) {
	backend := os.Getenv(saveStorageEnvName)
	if len(backend) == 0 {
		backend = StoragePG
	}
	if backend != StoragePG && backend != StorageFile {
		return nil, fmt.Errorf("unknown save storage %q, want %s or %s", backend, StoragePG, StorageFile)
	}

	dir := os.Getenv(saveDirEnvName)
	if len(dir) == 0 {
		dir = defaultSaveDir
	}

	return &storageConfig{
		backend: backend,
		dir:     dir,
	}, nil
}

func (cfg *storageConfig) Backend() string {
	return cfg.backend
}

func (cfg *storageConfig) Dir() string {
	return cfg.dir
}
