package impl

import (
	"academy/config"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/fingerprint"
	"academy/internal/usecase"

	"github.com/pkg/errors"
)

type fingerprintService struct {
	generator *fingerprint.Generator
}

// NewFingerprintService builds the generator for the configured schema version.
func NewFingerprintService(cfg *config.Config) (usecase.FingerprintUsecase, error) {
	version := fingerprint.DefaultVersion
	if cfg.Fingerprint != nil && cfg.Fingerprint.SchemaVersion != "" {
		version = cfg.Fingerprint.SchemaVersion
	}

	generator, err := fingerprint.NewGenerator(version)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fingerprint generator")
	}

	return &fingerprintService{generator: generator}, nil
}

func (srv *fingerprintService) Generate(env *fingerprint.Environment) (*fingerprint.Result, error) {
	result, err := srv.generator.Generate(env)
	if err != nil {
		if errors.Is(err, fingerprint.ErrUnsupportedEnvironment) {
			return nil, domainerrors.ErrUnsupportedEnvironment.WithDetails(err.Error())
		}

		return nil, errors.Wrap(err, "failed to generate fingerprint")
	}

	return result, nil
}
