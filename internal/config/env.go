package config

import (
	"strconv"
	"strings"
)

type lookupFunc func(key string) (string, bool)

// firstEnv первое непустое значение из списка переменных
func firstEnv(lookup lookupFunc, keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

func (c *Config) applyEnv(lookup lookupFunc) {
	if v, ok := firstEnv(lookup, "PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.HTTPPort = port
		} else {
			c.Server.HTTPPort = -1
		}
	}
	if v, ok := firstEnv(lookup, "LOG_LEVEL"); ok {
		c.Logs.Level = v
	}

	// Backend
	if v, ok := firstEnv(lookup, "API_BASE_URL"); ok {
		c.Backend.URL = v
	}
	if v, ok := firstEnv(lookup, "API_PROTOCOL"); ok {
		c.Backend.Protocol = v
	}
	if v, ok := firstEnv(lookup, "API_HOST"); ok {
		c.Backend.Host = v
	}
	if v, ok := firstEnv(lookup, "API_PORT"); ok {
		c.Backend.Port = v
	}
	if v, ok := firstEnv(lookup, "API_GATEWAY"); ok {
		c.Gateway.URL = v
	}

	// Хранилище
	storageTypeSet := false
	if v, ok := firstEnv(lookup, "STORAGE_TYPE"); ok {
		c.Storage.Type = strings.ToLower(v)
		storageTypeSet = true
	}
	if v, ok := firstEnv(lookup, "STORAGE_PATH"); ok {
		c.Storage.Path = v
	}
	if v, ok := firstEnv(lookup, "STORAGE_PROXY_URL"); ok {
		c.Storage.ProxyURL = v
	}
	if v, ok := lookup("SAVE_TO_SERVER"); ok {
		c.Export.SaveToServer = strings.TrimSpace(v) != "false"
	}

	// S3, поддерживаются обе схемы имен
	if v, ok := firstEnv(lookup, "AWS_ACCESS_KEY_ID", "ACESS_KEY_S3"); ok {
		c.S3.AccessKeyID = v
	}
	if v, ok := firstEnv(lookup, "AWS_SECRET_ACCESS_KEY", "ACESS_SECRET_KEY"); ok {
		c.S3.SecretAccessKey = v
	}
	if v, ok := firstEnv(lookup, "AWS_REGION", "S3_REGION"); ok {
		c.S3.Region = v
	}
	if v, ok := firstEnv(lookup, "AWS_S3_BUCKET", "S3_BUCKET_NAME"); ok {
		c.S3.Bucket = v
	}
	if v, ok := firstEnv(lookup, "S3_BUCKET_ENDPOINT", "AWS_S3_ENDPOINT"); ok {
		c.S3.Endpoint = v
	}

	// Ключи заданы, тип не задан явно: используем S3
	if !storageTypeSet && c.S3.HasCredentials() {
		c.Storage.Type = StorageS3
	}

	// Реестр
	if v, ok := firstEnv(lookup, "DB_HOST"); ok {
		c.Database.Host = v
		c.Database.Enabled = true
	}
	if v, ok := firstEnv(lookup, "DB_PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			c.Database.Port = port
		}
	}
	if v, ok := firstEnv(lookup, "DB_USER"); ok {
		c.Database.User = v
	}
	if v, ok := firstEnv(lookup, "DB_PASSWORD"); ok {
		c.Database.Password = v
	}
	if v, ok := firstEnv(lookup, "DB_NAME"); ok {
		c.Database.DBName = v
	}

	if v, ok := firstEnv(lookup, "TZ_LOCATION"); ok {
		c.Workflow.Timezone = v
	}
	if v, ok := firstEnv(lookup, "CUSTOMER_LOOKUP_POLICY"); ok {
		c.Workflow.LookupPolicy = v
	}
	if v, ok := firstEnv(lookup, "OTEL_EXPORTER_OTLP_ENDPOINT"); ok {
		c.Tracing.OTLPEndpoint = v
		c.Tracing.Enabled = true
	}
}
