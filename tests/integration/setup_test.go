package integration

import (
	"github.com/rs/zerolog"

	"github.com/finvault/balance-ledger/internal/adapter/repository/postgres"
	"github.com/finvault/balance-ledger/internal/usecase"
	"github.com/finvault/balance-ledger/tests/testutil"
)

// deps bundles the use cases under test, wired against a real database.
type deps struct {
	ledgerUC      *usecase.LedgerUseCase
	transferUC    *usecase.TransferUseCase
	historyUC     *usecase.HistoryUseCase
	snapshotUC    *usecase.SnapshotUseCase
	consistencyUC *usecase.ConsistencyUseCase
}

func newDeps(testDB *testutil.TestDB) *deps {
	pool := testDB.Pool

	txManager := postgres.NewTxManager(pool)
	balanceRepo := postgres.NewBalanceRepository(pool)
	operationRepo := postgres.NewOperationRepository(pool)
	snapshotRepo := postgres.NewSnapshotRepository(pool)
	retrier := postgres.NewRetrier(zerolog.Nop())
	idGen := postgres.NewULIDGenerator()

	return &deps{
		ledgerUC:      usecase.NewLedgerUseCase(txManager, balanceRepo, operationRepo, retrier, nil, idGen, nil),
		transferUC:    usecase.NewTransferUseCase(txManager, balanceRepo, operationRepo, retrier, nil, idGen, nil),
		historyUC:     usecase.NewHistoryUseCase(operationRepo),
		snapshotUC:    usecase.NewSnapshotUseCase(txManager, balanceRepo, snapshotRepo, idGen, nil),
		consistencyUC: usecase.NewConsistencyUseCase(balanceRepo),
	}
}
