package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/heroiclabs/nakama-common/runtime"

	"baosam/internal/advisor"
	"baosam/internal/domain"
	"baosam/internal/events"
	"baosam/internal/traininglog"
)

type declareCheckRequest struct {
	GameID string  `json:"game_id"`
	Hand   []int32 `json:"hand"`
}

type declareCheckResponse struct {
	advisor.Decision
	GameID   string `json:"game_id,omitempty"`
	PlayerID string `json:"player_id,omitempty"`
}

// rpcDeclareCheck evaluates a hand for declaration and returns the full
// decision record. The decision is logged and published when those sinks
// are wired; sink failures never fail the call.
func (m *module) rpcDeclareCheck(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	var req declareCheckRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		logger.Error("declare_check [User:%s]: bad payload: %v", userID, err)
		return "", runtime.NewError("invalid payload", 3)
	}

	hand, err := parseHand(req.Hand)
	if err != nil {
		logger.Error("declare_check [User:%s]: %v", userID, err)
		return "", runtime.NewError(err.Error(), 3)
	}

	decision := m.advisor.Decide(hand)
	logger.Info("declare_check [User:%s]: declare=%v reason=%s prob=%.3f",
		userID, decision.Declare, decision.Reason, decision.WinProbability)

	m.record(logger, req.GameID, userID, hand, decision)

	resp := declareCheckResponse{Decision: decision, GameID: req.GameID, PlayerID: userID}
	out, err := json.Marshal(resp)
	if err != nil {
		logger.Error("declare_check [User:%s]: marshal response: %v", userID, err)
		return "", runtime.NewError("internal error", 13)
	}
	return string(out), nil
}

// record fans the decision out to the training log and the event bus.
func (m *module) record(logger runtime.Logger, gameID, playerID string, hand []domain.Card, decision advisor.Decision) {
	numCombos, numCards := 0, len(hand)
	var combos []domain.Combo
	if decision.Sequence != nil {
		combos = decision.Sequence.Combos
		numCombos = len(combos)
	}

	if m.store != nil {
		err := m.store.Append(traininglog.Record{
			GameID:    gameID,
			PlayerID:  playerID,
			Hand:      hand,
			Sequence:  combos,
			Declared:  decision.Declare,
			NumCombos: numCombos,
			NumCards:  numCards,
		})
		if err != nil {
			logger.Warn("declare_check: log append failed: %v", err)
		}
	}

	if m.publisher != nil {
		err := m.publisher.Publish(events.DeclarationEvent{
			GameID:         gameID,
			PlayerID:       playerID,
			Declared:       decision.Declare,
			Reason:         decision.Reason,
			WinProbability: decision.WinProbability,
			NumCombos:      numCombos,
			NumCards:       numCards,
		})
		if err != nil {
			logger.Warn("declare_check: event publish failed: %v", err)
		}
	}
}

// rpcDeclareStats returns aggregate stats from the declaration log.
func (m *module) rpcDeclareStats(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	if m.store == nil {
		return "", runtime.NewError("declaration log not configured", 12)
	}

	stats, err := m.store.Aggregate()
	if err != nil {
		logger.Error("declare_stats: %v", err)
		return "", runtime.NewError("internal error", 13)
	}

	out, err := json.Marshal(stats)
	if err != nil {
		return "", runtime.NewError("internal error", 13)
	}
	return string(out), nil
}
