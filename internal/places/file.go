package places

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/mesafe/internal/models"
	"github.com/spf13/viper"
)

// FileSource reads a table from a YAML, JSON or TOML file of the form
//
//	places:
//	  - name: Ankara
//	    latitude: 39.9334
//	    longitude: 32.8597
//
// The format is chosen from the file extension.
type FileSource struct {
	path string
}

// NewFileSource returns a FileSource reading path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and validates the file.
func (fs *FileSource) Load(_ context.Context) (*Table, error) {
	vpr := viper.New()
	vpr.SetConfigFile(fs.path)
	if err := vpr.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read places file: %w", err)
	}

	var doc struct {
		Places []models.PlaceCoordinate `mapstructure:"places"`
	}
	if err := vpr.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode places file: %w", err)
	}

	return NewTable(doc.Places)
}
