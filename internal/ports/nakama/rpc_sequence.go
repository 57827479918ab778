package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/heroiclabs/nakama-common/runtime"

	"baosam/internal/domain"
	"baosam/internal/engine"
)

type orderedSequenceRequest struct {
	Hand     []int32 `json:"hand"`
	Strategy string  `json:"strategy"`
	// TopK asks for ranked full sequences alongside the ordering; zero
	// skips the search.
	TopK int `json:"top_k"`
}

type orderedSequenceResponse struct {
	Strategy  string            `json:"strategy"`
	Combos    []domain.Combo    `json:"combos"`
	Sequences []domain.Sequence `json:"sequences,omitempty"`
}

// rpcOrderedSequence decomposes a hand and orders the combos under the
// requested strategy. An empty strategy defaults to strongest-first.
func (m *module) rpcOrderedSequence(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	var req orderedSequenceRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		logger.Error("ordered_sequence [User:%s]: bad payload: %v", userID, err)
		return "", runtime.NewError("invalid payload", 3)
	}

	hand, err := parseHand(req.Hand)
	if err != nil {
		logger.Error("ordered_sequence [User:%s]: %v", userID, err)
		return "", runtime.NewError(err.Error(), 3)
	}

	strategy := engine.OrderStrategy(req.Strategy)
	if req.Strategy == "" {
		strategy = engine.OrderStrengthDesc
	}

	resp := orderedSequenceResponse{
		Strategy: string(strategy),
		Combos:   m.orders.Ordered(hand, strategy),
	}
	if req.TopK > 0 {
		resp.Sequences = m.advisor.Sequences(hand, req.TopK, true)
	}

	out, err := json.Marshal(resp)
	if err != nil {
		logger.Error("ordered_sequence [User:%s]: marshal response: %v", userID, err)
		return "", runtime.NewError("internal error", 13)
	}
	return string(out), nil
}
