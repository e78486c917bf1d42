package storage

import (
	"fmt"

	"github.com/dtroode/sc-task/internal/config"
)

// New builds the backend selected by sc.Backend. Call Init on the result before use.
func New(sc config.StorageConfig, mc config.MinIOConfig) (Storage, error) {
	switch sc.Backend {
	case "", "local":
		return NewLocal(sc.Root)
	case "minio":
		return NewMinIO(mc)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", sc.Backend)
	}
}
