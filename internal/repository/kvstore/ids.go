package kvstore

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// newID returns a random identifier for a stored record. uuid.NewRandom
// only fails when the platform entropy source does; the timestamp
// fallback has far less entropy and exists only so saves keep working
// in that case.
func newID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		log.Warn().Err(err).Msg("UUID generation failed, using timestamp fallback")
		return fmt.Sprintf("%x-%x", time.Now().UnixNano(), rand.Int63())
	}
	return id.String()
}
