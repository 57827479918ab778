package nakama

const (
	// RpcDeclareCheck evaluates a hand for an all-in declaration.
	RpcDeclareCheck = "declare_check"

	// RpcOrderedSequence returns a hand's decomposition under a named
	// ordering strategy, plus the top ranked play sequences.
	RpcOrderedSequence = "ordered_sequence"

	// RpcDeclareStats returns aggregate stats from the declaration log.
	RpcDeclareStats = "declare_stats"
)

// envConfigPath is the Nakama runtime env key pointing at the JSON config.
const envConfigPath = "baosam_config"
