package argscache

// DefaultNumShards is the shard count used when a caller has no preference.
const DefaultNumShards = 16

type Config struct {
	NumShards int // default: 1
}

func NewConfig(numShards int) Config {
	if numShards <= 0 {
		numShards = 1
	}
	return Config{
		NumShards: numShards,
	}
}
