package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marvelapi/internal/config"
)

func TestArtworkKeys(t *testing.T) {
	assert.Equal(t, "characters/1009610.jpg", CharacterArtworkKey(1009610))
	assert.Equal(t, "comics/42.jpg", ComicArtworkKey(42))
}

func TestNewMinIO_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.MinIOConfig
		wantErr string
	}{
		{"missing endpoint", config.MinIOConfig{}, "minio endpoint is required"},
		{"missing credentials", config.MinIOConfig{Endpoint: "localhost:9000", Bucket: "art"}, "minio credentials are required"},
		{"missing bucket", config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"}, "minio bucket is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinIO(tt.cfg)
			assert.EqualError(t, err, tt.wantErr)
			assert.Nil(t, s)
		})
	}
}
