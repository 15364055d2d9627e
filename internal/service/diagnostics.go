package service

import "foodshare-api/internal/repo"

type DiagnosticsService struct {
	diagnosticsRepo repo.Diagnostics
}

func NewDiagnosticsService(repos *repo.Repositories) *DiagnosticsService {
	return &DiagnosticsService{repos.Diagnostics}
}

func (s *DiagnosticsService) Ping() error {
	if err := s.diagnosticsRepo.Ping(); err != nil {
		return storeError(err)
	}

	return nil
}
