package config

import (
	"time"
)

type MediaConfig struct {
	Provider      string            `yaml:"provider"`
	UploadTimeout time.Duration     `yaml:"upload_timeout"`
	ImgBB         *ImgBBMediaConfig `yaml:"imgbb"`
	AWS           *AWSMediaConfig   `yaml:"aws"`
}

type ImgBBMediaConfig struct {
	APIKey   string `yaml:"api_key"`
	Endpoint string `yaml:"endpoint"`
}

type AWSMediaConfig struct {
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	CDNDomain string `yaml:"cdn_domain"`
}

func loadMediaConfig() *MediaConfig {
	return &MediaConfig{
		Provider:      getEnv("MEDIA_PROVIDER", "imgbb"),
		UploadTimeout: getEnvAsDuration("MEDIA_UPLOAD_TIMEOUT", 15*time.Second),
		ImgBB: &ImgBBMediaConfig{
			APIKey:   getEnv("IMGBB_API_KEY", ""),
			Endpoint: getEnv("IMGBB_ENDPOINT", "https://api.imgbb.com/1/upload"),
		},
		AWS: &AWSMediaConfig{
			Region:    getEnv("AWS_S3_REGION", "us-east-1"),
			Bucket:    getEnv("AWS_S3_BUCKET", ""),
			CDNDomain: getEnv("AWS_CLOUDFRONT_DOMAIN", ""),
		},
	}
}
