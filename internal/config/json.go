package config

import (
	"encoding/json"
	"os"

	"github.com/editiq/editiq/internal/flagx"
	"github.com/editiq/editiq/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be written either as a string like "30s"
// or as integer nanoseconds. Absent fields keep their current values.
type JsonConfig struct {
	DatabaseDSN     string         `json:"database_dsn"`
	DataDir         string         `json:"data_dir"`
	DemoUserID      string         `json:"demo_user_id"`
	UserID          string         `json:"user_id"`
	S3RootUser      string         `json:"s3_root_user"`
	S3RootPassword  string         `json:"s3_root_password"`
	S3Bucket        string         `json:"s3_bucket"`
	S3Region        string         `json:"s3_region"`
	S3BaseEndpoint  string         `json:"s3_base_endpoint"`
	S3UploadTimeout timex.Duration `json:"s3_upload_timeout"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flag. With no such flag the function is a no-op. Read or unmarshal
// errors panic; configuration failures should stop startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DemoUserID != "" {
		cfg.DemoUserID = jc.DemoUserID
	}
	if jc.UserID != "" {
		cfg.UserID = jc.UserID
	}
	if jc.S3RootUser != "" {
		cfg.S3RootUser = jc.S3RootUser
	}
	if jc.S3RootPassword != "" {
		cfg.S3RootPassword = jc.S3RootPassword
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = jc.S3BaseEndpoint
	}
	if jc.S3UploadTimeout.Duration != 0 {
		cfg.S3UploadTimeout = jc.S3UploadTimeout.Duration
	}
}
