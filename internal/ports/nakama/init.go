package nakama

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/runtime"

	"baosam/internal/advisor"
	"baosam/internal/config"
	"baosam/internal/engine"
	"baosam/internal/events"
	"baosam/internal/traininglog"
)

// module bundles the wired services behind the RPC handlers.
type module struct {
	cfg       config.Config
	advisor   *advisor.Advisor
	orders    *engine.OrderProvider
	store     *traininglog.Store
	publisher *events.Publisher
}

// InitModule wires the declaration services and registers the RPCs with the
// Nakama runtime. The training log and event publisher are optional: they
// come up only when the config names their endpoints, and a failure there
// degrades to decision-only serving rather than blocking module load.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	cfg := config.Default()
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		if path := env[envConfigPath]; path != "" {
			loaded, err := config.Load(path)
			if err != nil {
				return err
			}
			cfg = loaded
		}
	}

	scorer := engine.NewScorer(engine.DefaultStrengthConfig)
	chain := advisor.NewChain(
		advisor.NewPatternProvider(cfg.ModelDir),
		advisor.NewHeuristicProvider(scorer),
	)

	m := &module{
		cfg:     cfg,
		advisor: advisor.New(scorer, cfg.Gate, cfg.EngineSearch(), chain, cfg.Advisor),
		orders:  engine.NewOrderProvider(engine.NewDecomposer(scorer), nil),
	}

	if cfg.TrainingLogPath != "" {
		store, err := traininglog.Open(cfg.TrainingLogPath)
		if err != nil {
			logger.Warn("Declaration log unavailable at %s: %v", cfg.TrainingLogPath, err)
		} else {
			m.store = store
		}
	}
	if cfg.NATSURL != "" {
		publisher, err := events.NewPublisher(cfg.NATSURL, cfg.EventSubject)
		if err != nil {
			logger.Warn("Event publisher unavailable at %s: %v", cfg.NATSURL, err)
		} else {
			m.publisher = publisher
		}
	}

	if err := initializer.RegisterRpc(RpcDeclareCheck, m.rpcDeclareCheck); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcOrderedSequence, m.rpcOrderedSequence); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcDeclareStats, m.rpcDeclareStats); err != nil {
		return err
	}

	logger.Info("Bao Sam Go module loaded.")
	return nil
}
