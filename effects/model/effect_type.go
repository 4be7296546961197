package effectmodel

type EffectEnum string

const (
	EffectLog  EffectEnum = "typed_basics_go_effect_enum_log"
	EffectTask EffectEnum = "typed_basics_go_effect_enum_task"
)

type EffectScopeConfig struct {
	BufferSize int // default: 1
	NumWorkers int // default: 1
}

func NewEffectScopeConfig(bufferSize int, numWorkers int) EffectScopeConfig {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return EffectScopeConfig{
		BufferSize: bufferSize,
		NumWorkers: numWorkers,
	}
}

// Partitionable is implemented by every effect payload.
// Payloads sharing a PartitionKey are handled by the same worker, in order.
type Partitionable interface {
	PartitionKey() string
}
