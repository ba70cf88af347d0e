package dashboarding

import (
	"errors"
	"fmt"
)

// Erros específicos do dashboard
var (
	// Erros de validação
	ErrInvalidKind = errors.New("invalid metric kind")

	// Erros de dados
	ErrDatasetNotLoaded = errors.New("dataset not loaded")
	ErrChannelNotFound  = errors.New("channel not found")
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrInvalidData      = errors.New("invalid data for calculation")

	// Erros de serviço
	ErrLoadDataset     = errors.New("error loading dataset")
	ErrArchiveDisabled = errors.New("snapshot archive is disabled")
	ErrFetchSnapshots  = errors.New("error fetching snapshots")
)

// DashboardError é um erro com o código da API e detalhes adicionais
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
