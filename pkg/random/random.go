package random

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const anuEndpoint = "https://qrng.anu.edu.au/API/jsonI.php"

// requestTimeout bounds the external call; on expiry the fallback is taken
// without the caller ever seeing a timeout error.
const requestTimeout = 10 * time.Second

type Source struct {
	UseExternal bool
	client      *http.Client
}

func New(useExternal bool) *Source {
	return &Source{
		UseExternal: useExternal,
		client:      &http.Client{Timeout: requestTimeout},
	}
}

var Default = New(true)

// RandomBytes always succeeds: any failure of the external source falls
// back to crypto/rand, logged at Warn so the fallback is never silent.
func (s *Source) RandomBytes(n int) []byte {
	if s.UseExternal {
		if b := s.fetchExternal(n); b != nil {
			log.Debug().Int("n", n).Msg("random bytes served from external QRNG")
			return b
		}
		log.Warn().Int("n", n).Msg("external QRNG unavailable, falling back to crypto/rand")
	}
	return fallbackBytes(n)
}

type anuResponse struct {
	Success bool     `json:"success"`
	Data    []uint16 `json:"data"`
}

// fetchExternal returns nil on any failure so the caller can fall back
// without inspecting an error value.
func (s *Source) fetchExternal(n int) []byte {
	numWords := (n + 1) / 2
	if numWords > 1024 {
		numWords = 1024 // ANU's per-request cap for uint16 blocks
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	url := anuEndpoint + "?length=" + strconv.Itoa(numWords) + "&type=uint16&size=1"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil
	}

	var parsed anuResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil
	}
	if !parsed.Success || len(parsed.Data) < numWords {
		return nil
	}

	out := make([]byte, numWords*2)
	for i, word := range parsed.Data[:numWords] {
		binary.BigEndian.PutUint16(out[i*2:], word)
	}
	if len(out) < n {
		return nil
	}
	return out[:n]
}

func fallbackBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("random: crypto/rand unavailable: " + err.Error())
	}
	return b
}

func RandomBytes(n int) []byte {
	return Default.RandomBytes(n)
}
