package workflow

// =============================================================================
// Kind - Closed Node Type Enum
// =============================================================================

// Kind identifies one of the supported node types.
type Kind int

// Supported node kinds, in catalog order.
const (
	KindAgent Kind = iota
	KindGroupChat
	KindSequential
	KindParallel
)

// KindInfo holds the static display metadata for a node kind.
//
// Color is an opaque presentational tag (an ANSI-256 color) consumed by
// the display layer through a [Decorator]; core logic never branches on it.
type KindInfo struct {
	Label       string
	Color       string
	Description string
}

// Info returns the catalog entry for the kind. The switch is exhaustive
// over the closed set of kinds, so adding a kind is a compile-time change
// here rather than a runtime table edit.
func (k Kind) Info() KindInfo {
	switch k {
	case KindAgent:
		return KindInfo{
			Label:       "Agent",
			Color:       "36",
			Description: "A single LLM-backed assistant that handles one role in the workflow.",
		}
	case KindGroupChat:
		return KindInfo{
			Label:       "Group Chat",
			Color:       "220",
			Description: "A conversation hub where multiple agents exchange messages.",
		}
	case KindSequential:
		return KindInfo{
			Label:       "Sequential",
			Color:       "35",
			Description: "Runs its downstream agents one after another.",
		}
	case KindParallel:
		return KindInfo{
			Label:       "Parallel",
			Color:       "75",
			Description: "Fans work out to downstream agents concurrently.",
		}
	default:
		return KindInfo{Label: "Unknown", Color: "240", Description: "Unrecognized node kind."}
	}
}

// Slug returns the lowercase token used in default node names.
func (k Kind) Slug() string {
	switch k {
	case KindAgent:
		return "agent"
	case KindGroupChat:
		return "group_chat"
	case KindSequential:
		return "sequential"
	case KindParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// String returns the display label.
func (k Kind) String() string { return k.Info().Label }

// Kinds lists all supported kinds in catalog order.
func Kinds() []Kind {
	return []Kind{KindAgent, KindGroupChat, KindSequential, KindParallel}
}
