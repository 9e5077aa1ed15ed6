package app

import (
	"strings"

	"github.com/wowbook/clarity-backend/internal/platform/logger"
	"github.com/wowbook/clarity-backend/internal/utils"
)

type Config struct {
	Mode               string
	Port               string
	AllowOrigins       []string
	ProgramCatalogPath string
}

func LoadConfig(log *logger.Logger) Config {
	mode := utils.GetEnv("APP_MODE", "development", log)
	port := utils.GetEnv("PORT", "8080", log)
	origins := utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173", log)
	catalogPath := utils.GetEnv("PROGRAM_CATALOG_PATH", "", log)
	return Config{
		Mode:               mode,
		Port:               port,
		AllowOrigins:       splitOrigins(origins),
		ProgramCatalogPath: catalogPath,
	}
}

func splitOrigins(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
