package service

import (
	"context"

	"custody-gateway/internal/core/domain"
	"custody-gateway/internal/core/ports"
	"custody-gateway/pkg/apperror"
)

// reportingService implements ports.ReportingService.
type reportingService struct {
	transferRepo ports.TransferRepository
	vault        ports.VaultService
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	transferRepo ports.TransferRepository,
	vault ports.VaultService,
) ports.ReportingService {
	return &reportingService{
		transferRepo: transferRepo,
		vault:        vault,
	}
}

// ListTransfers returns a paginated slice of journal entries.
func (s *reportingService) ListTransfers(ctx context.Context, params ports.TransferListParams) ([]domain.Transfer, int64, error) {
	transfers, total, err := s.transferRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	return transfers, total, nil
}

// GetTransferStats returns aggregated journal statistics for a principal.
func (s *reportingService) GetTransferStats(ctx context.Context, principal domain.Address) (*ports.TransferStats, error) {
	stats, err := s.transferRepo.GetStats(ctx, principal)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return stats, nil
}

// CustodyBalance returns the vault's holding of an amount-based asset.
func (s *reportingService) CustodyBalance(ctx context.Context, asset domain.AssetClass) (int64, error) {
	if err := asset.Validate(); err != nil {
		return 0, apperror.Validation(err.Error())
	}
	switch asset.Kind {
	case domain.AssetKindNative:
		return s.vault.NativeCustody(ctx)
	case domain.AssetKindFungible:
		return s.vault.FungibleCustody(ctx, asset.Token)
	default:
		return 0, apperror.Validation("custody balance requires a divisible asset")
	}
}
