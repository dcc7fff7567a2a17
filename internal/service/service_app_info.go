package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-staffing/internal/config"
	"github.com/MKhiriev/go-staffing/internal/logger"
)

// appInfoService serves the version reported by GET /version.
type appInfoService struct {
	version string
}

// NewAppInfoService returns ErrVersionIsNotSpecified when cfg.Version is
// blank. Config loading fills [config.DefaultVersion] (or the linked build
// version), so this only fails for hand-built configs.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("app info service created")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
