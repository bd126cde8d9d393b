package pgsql

import (
	portsrepo "github.com/PriceTrackr/price_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ReceiptRepo: newPgxReceiptRepository(dbPool),
		CouponRepo:  newPgxCouponRepository(dbPool),
		ClaimRepo:   newPgxClaimRepository(dbPool),
		SettingRepo: newPgxSettingRepository(dbPool),
		UserRepo:    newPgxUserRepository(dbPool),
	}
}
