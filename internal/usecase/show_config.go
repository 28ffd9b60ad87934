package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct{}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	EffectiveConfig *domain.Config        // Merged configuration
	Sources         []domain.ConfigSource // Config files consulted, in merge order
}

// ShowConfig displays the effective configuration and where it came from.
type ShowConfig struct {
	loader domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(loader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{loader: loader}
}

// Execute loads the configuration.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	cfg, err := uc.loader.Load()
	if err != nil {
		return nil, err
	}

	return &ShowConfigOutput{
		EffectiveConfig: cfg,
		Sources:         uc.loader.Sources(),
	}, nil
}
