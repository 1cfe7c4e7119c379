package flowart

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Seed hold the primary seed used for random numbers.
// Nothing global is seeded; every consumer asks for its own generator with Rand.
type Seed struct {
	intSeed int64
}

// Jan 1, 2020 (to make filenames a little smaller)
const epoch2020 = 1577836800

// Init initializes the seed
// `hexSeed` is either the empty string or a hex value
func Init(hexSeed string) (Seed, error) {
	if hexSeed != "" {
		return ParseSeed(hexSeed)
	}
	return TimeSeed(), nil
}

// TimeSeed returns a seed derived from the wall clock.
func TimeSeed() Seed {
	return Seed{intSeed: time.Now().UnixNano() - epoch2020}
}

// NewSeed wraps an explicit seed value.
func NewSeed(v int64) Seed {
	return Seed{intSeed: v}
}

// ParseSeed reads the hex seed part of a filename.
func ParseSeed(hexSeed string) (Seed, error) {
	v, err := strconv.ParseInt(hexSeed, 16, 64)
	if err != nil {
		return Seed{}, fmt.Errorf("bad seed %q: %w", hexSeed, err)
	}
	return Seed{intSeed: v}, nil
}

// GetSeed returns the rand initialization seed
func (s Seed) GetSeed() int64 {
	return s.intSeed
}

func (s Seed) String() string {
	return fmt.Sprintf("%x", s.intSeed)
}

// Rand returns a fresh generator; two calls on the same seed produce the same stream.
func (s Seed) Rand() *rand.Rand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], uint64(s.intSeed))
	return rand.New(rand.NewChaCha8(key))
}

// GetFilename returns a string to use for this file
func (s Seed) GetFilename(prefix, ext string) string {
	return fmt.Sprintf("%s%s-%x%s", prefix, getGitHash(), s.intSeed, ext)
}

func getGitHash() string {
	cmdOut, err := exec.Command("git", "rev-parse", "--verify", "HEAD").Output()
	if err != nil {
		return ""
	}
	hash := strings.TrimSpace(string(cmdOut))
	if len(hash) < 7 {
		return hash
	}
	return hash[0:7]
}
