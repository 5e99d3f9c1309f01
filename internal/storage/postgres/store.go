package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"feeTierScope/internal/aggregate"
	"feeTierScope/internal/model"
	"feeTierScope/internal/source"
)

// latestTVLQuery reads the most recent window TVL of every pool for one
// ordering of a token pair from an indexer's pools/pool_window_metrics tables.
const latestTVLQuery = `
	SELECT p.fee::bigint, m.tvl0::text, m.tvl1::text
	FROM pools p
	JOIN LATERAL (
		SELECT tvl0, tvl1
		FROM pool_window_metrics
		WHERE chain_id = p.chain_id AND pool_address = p.pool_address
		ORDER BY window_start_ts DESC
		LIMIT 1
	) m ON true
	WHERE lower(p.token0) = $1 AND lower(p.token1) = $2
	ORDER BY p.fee
`

// Store reads pool TVL records from Postgres. It never writes.
type Store struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewStore(ctx context.Context, dsn string, logger *zap.Logger) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool, logger: logger}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) Kind() source.Kind { return source.KindPostgres }

// Records returns the latest TVL of every pool of pair, in both orderings.
func (s *Store) Records(ctx context.Context, pair model.TokenPair) ([]model.LiquidityRecord, error) {
	return source.BothOrderings(ctx, pair, s.tvlRecords)
}

func (s *Store) tvlRecords(ctx context.Context, token0, token1 string) ([]model.LiquidityRecord, error) {
	rows, err := s.pool.Query(ctx, latestTVLQuery, token0, token1)
	if err != nil {
		return nil, fmt.Errorf("query pool tvl: %w", err)
	}

	scanned, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (tvlRow, error) {
		var r tvlRow
		err := row.Scan(&r.Fee, &r.TVL0, &r.TVL1)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan pool tvl: %w", err)
	}

	records := make([]model.LiquidityRecord, 0, len(scanned))
	for _, r := range scanned {
		record, err := r.record()
		if err != nil {
			s.logger.Warn("drop pool tvl row", zap.Int64("fee", r.Fee), zap.Error(err))
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

type tvlRow struct {
	Fee  int64
	TVL0 *string
	TVL1 *string
}

// record converts a row; missing TVL components count as zero.
func (r tvlRow) record() (model.LiquidityRecord, error) {
	if r.Fee < 0 || r.Fee > int64(^uint32(0)) {
		return model.LiquidityRecord{}, fmt.Errorf("%w: %d", model.ErrUnknownFeeTier, r.Fee)
	}
	tier, err := model.FeeTierFromAmount(uint32(r.Fee))
	if err != nil {
		return model.LiquidityRecord{}, err
	}
	tvl0, err := parseNullable(r.TVL0)
	if err != nil {
		return model.LiquidityRecord{}, err
	}
	tvl1, err := parseNullable(r.TVL1)
	if err != nil {
		return model.LiquidityRecord{}, err
	}
	return model.TVLRecord(tier, tvl0, tvl1), nil
}

func parseNullable(value *string) (decimal.Decimal, error) {
	if value == nil {
		return decimal.Zero, nil
	}
	return aggregate.ParseWeight(*value)
}

var _ source.Source = (*Store)(nil)
